package repository

import (
	"errors"

	"github.com/Baaaki/sportclub/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// WithTx returns a repository bound to the given transaction.
func (r *UserRepository) WithTx(tx *gorm.DB) *UserRepository {
	return &UserRepository{db: tx}
}

func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// ListPending returns unapproved accounts, oldest first.
func (r *UserRepository) ListPending() ([]models.User, error) {
	var users []models.User
	err := r.db.Where("approved = ?", false).Order("created_at ASC").Find(&users).Error
	return users, err
}

// ListAll returns every account except the reserved seed administrator.
func (r *UserRepository) ListAll() ([]models.User, error) {
	var users []models.User
	err := r.db.Where("username <> ?", models.AdminUsername).Order("created_at DESC").Find(&users).Error
	return users, err
}

func (r *UserRepository) SetApproved(id uint) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).Update("approved", true).Error
}

// Delete hard-deletes the account row.
func (r *UserRepository) Delete(id uint) error {
	return r.db.Delete(&models.User{}, id).Error
}
