package repository

import (
	"github.com/Baaaki/sportclub/internal/models"
	"gorm.io/gorm"
)

type PerformanceRepository struct {
	db *gorm.DB
}

func NewPerformanceRepository(db *gorm.DB) *PerformanceRepository {
	return &PerformanceRepository{db: db}
}

func (r *PerformanceRepository) WithTx(tx *gorm.DB) *PerformanceRepository {
	return &PerformanceRepository{db: tx}
}

func (r *PerformanceRepository) Create(perf *models.Performance) error {
	return r.db.Create(perf).Error
}

// ListByPlayer returns the player's records ordered by date ascending.
func (r *PerformanceRepository) ListByPlayer(playerID uint) ([]models.Performance, error) {
	var perfs []models.Performance
	err := r.db.Where("player_id = ?", playerID).Order("date ASC, id ASC").Find(&perfs).Error
	return perfs, err
}

// ListByTeam returns every record of every player currently on the team,
// ordered by date ascending.
func (r *PerformanceRepository) ListByTeam(teamID uint) ([]models.Performance, error) {
	var perfs []models.Performance
	err := r.db.
		Joins("JOIN players ON players.id = performances.player_id").
		Where("players.team_id = ?", teamID).
		Order("performances.date ASC, performances.id ASC").
		Find(&perfs).Error
	return perfs, err
}

// DeleteByTeamPlayers removes the records of every player on the team.
// Used by the account deletion cascade.
func (r *PerformanceRepository) DeleteByTeamPlayers(teamID uint) error {
	return r.db.
		Where("player_id IN (?)", r.db.Model(&models.Player{}).Select("id").Where("team_id = ?", teamID)).
		Delete(&models.Performance{}).Error
}

func (r *PerformanceRepository) DeleteByPlayer(playerID uint) error {
	return r.db.Where("player_id = ?", playerID).Delete(&models.Performance{}).Error
}
