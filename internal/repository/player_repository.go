package repository

import (
	"errors"

	"github.com/Baaaki/sportclub/internal/models"
	"gorm.io/gorm"
)

type PlayerRepository struct {
	db *gorm.DB
}

func NewPlayerRepository(db *gorm.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) WithTx(tx *gorm.DB) *PlayerRepository {
	return &PlayerRepository{db: tx}
}

func (r *PlayerRepository) Create(player *models.Player) error {
	return r.db.Create(player).Error
}

func (r *PlayerRepository) GetByID(id uint) (*models.Player, error) {
	var player models.Player
	err := r.db.First(&player, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &player, nil
}

// GetByUserID returns the profile claimed by the given account, if any.
func (r *PlayerRepository) GetByUserID(userID uint) (*models.Player, error) {
	var player models.Player
	err := r.db.Where("user_id = ?", userID).First(&player).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &player, nil
}

func (r *PlayerRepository) GetByName(name string) (*models.Player, error) {
	var player models.Player
	err := r.db.Where("name = ?", name).First(&player).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &player, nil
}

// FindPlaceholderByName returns the unregistered placeholder with the given
// display name. Multiple placeholders may share a name; the lowest ID wins so
// the match is deterministic.
func (r *PlayerRepository) FindPlaceholderByName(name string) (*models.Player, error) {
	var player models.Player
	err := r.db.Where("name = ? AND user_id IS NULL", name).Order("id ASC").First(&player).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &player, nil
}

func (r *PlayerRepository) ListByTeam(teamID uint) ([]models.Player, error) {
	var players []models.Player
	err := r.db.Where("team_id = ?", teamID).Order("name ASC").Find(&players).Error
	return players, err
}

// ListUnassigned returns the available pool: profiles with no team.
func (r *PlayerRepository) ListUnassigned() ([]models.Player, error) {
	var players []models.Player
	err := r.db.Where("team_id IS NULL").Order("name ASC").Find(&players).Error
	return players, err
}

// ListRegisteredByCoach returns players with a linked account on any of the
// coach's teams (the coach's chat partners).
func (r *PlayerRepository) ListRegisteredByCoach(coachID uint) ([]models.Player, error) {
	var players []models.Player
	err := r.db.
		Joins("JOIN teams ON teams.id = players.team_id").
		Where("teams.coach_id = ? AND players.user_id IS NOT NULL", coachID).
		Order("players.name ASC").
		Find(&players).Error
	return players, err
}

func (r *PlayerRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Player{}).Count(&count).Error
	return count, err
}

// SetTeam assigns or clears (nil) the player's team reference.
func (r *PlayerRepository) SetTeam(playerID uint, teamID *uint) error {
	return r.db.Model(&models.Player{}).Where("id = ?", playerID).Update("team_id", teamID).Error
}

// SetUser claims a profile for an account. The reference is never cleared
// once set.
func (r *PlayerRepository) SetUser(playerID, userID uint) error {
	return r.db.Model(&models.Player{}).Where("id = ?", playerID).Update("user_id", userID).Error
}

func (r *PlayerRepository) DeleteByTeam(teamID uint) error {
	return r.db.Where("team_id = ?", teamID).Delete(&models.Player{}).Error
}

func (r *PlayerRepository) DeleteByUser(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.Player{}).Error
}
