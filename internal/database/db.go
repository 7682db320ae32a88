package database

import (
	"github.com/Baaaki/sportclub/internal/config"
	"github.com/Baaaki/sportclub/internal/models"
	"github.com/Baaaki/sportclub/internal/utils"
	"github.com/Baaaki/sportclub/pkg/logger"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	logger.Log.Info("Database connected")
	return db, nil
}

// Migrate creates or updates the club schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Team{},
		&models.Player{},
		&models.Performance{},
		&models.Training{},
		&models.TrainingAttendance{},
		&models.Message{},
	)
}

// EnsureAdmin creates the approved seed administrator account if it does not
// exist yet. Idempotent across restarts.
func EnsureAdmin(db *gorm.DB, email, password string) error {
	var count int64
	if err := db.Model(&models.User{}).Where("username = ?", models.AdminUsername).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	admin := &models.User{
		Username:     models.AdminUsername,
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
		Approved:     true,
	}
	if err := db.Create(admin).Error; err != nil {
		return err
	}

	logger.Log.Info("Seed administrator created",
		zap.Uint("user_id", admin.ID),
		zap.String("email", email),
	)
	return nil
}
