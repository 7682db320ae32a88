package main

import (
	"log"
	"os"

	"github.com/Baaaki/sportclub/internal/config"
	"github.com/Baaaki/sportclub/internal/database"
	"github.com/Baaaki/sportclub/internal/models"
	"github.com/Baaaki/sportclub/internal/utils"
	"github.com/Baaaki/sportclub/pkg/logger"
)

// Seeds the approved administrator account and, with SEED_DEMO=true, a demo
// coach with one team. Safe to run repeatedly.
func main() {
	cfg := config.Load()

	if err := logger.Init(!cfg.IsProduction()); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	if cfg.AdminPassword == "" {
		log.Fatal("ADMIN_PASSWORD must be set to seed the administrator")
	}
	if err := database.EnsureAdmin(db, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatalf("Failed to seed administrator: %v", err)
	}
	log.Println("Administrator account ready")

	if os.Getenv("SEED_DEMO") != "true" {
		return
	}

	var count int64
	if err := db.Model(&models.User{}).Where("username = ?", "democoach").Count(&count).Error; err != nil {
		log.Fatalf("Seed check failed: %v", err)
	}
	if count > 0 {
		log.Println("Demo data already present")
		return
	}

	hash, err := utils.HashPassword("coachpass123")
	if err != nil {
		log.Fatalf("Failed to hash demo password: %v", err)
	}

	coach := &models.User{
		Username:     "democoach",
		Email:        "coach@example.com",
		PasswordHash: hash,
		Role:         models.RoleCoach,
		Approved:     true,
	}
	if err := db.Create(coach).Error; err != nil {
		log.Fatalf("Failed to create demo coach: %v", err)
	}

	team := &models.Team{
		Name:    "Demo Eagles",
		Season:  "2026/27",
		CoachID: coach.ID,
	}
	if err := db.Create(team).Error; err != nil {
		log.Fatalf("Failed to create demo team: %v", err)
	}

	log.Println("Demo coach and team created")
}
