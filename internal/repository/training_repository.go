package repository

import (
	"time"

	"github.com/Baaaki/sportclub/internal/models"
	"gorm.io/gorm"
)

type TrainingRepository struct {
	db *gorm.DB
}

func NewTrainingRepository(db *gorm.DB) *TrainingRepository {
	return &TrainingRepository{db: db}
}

func (r *TrainingRepository) WithTx(tx *gorm.DB) *TrainingRepository {
	return &TrainingRepository{db: tx}
}

// Create inserts the training together with its attendance rows.
func (r *TrainingRepository) Create(training *models.Training) error {
	return r.db.Create(training).Error
}

func (r *TrainingRepository) ListByTeam(teamID uint) ([]models.Training, error) {
	var trainings []models.Training
	err := r.db.
		Preload("Attendees").
		Where("team_id = ?", teamID).
		Order("date DESC").
		Find(&trainings).Error
	return trainings, err
}

// ListByCoach returns trainings across all the coach's teams, newest first.
func (r *TrainingRepository) ListByCoach(coachID uint) ([]models.Training, error) {
	var trainings []models.Training
	err := r.db.
		Preload("Attendees").
		Joins("JOIN teams ON teams.id = trainings.team_id").
		Where("teams.coach_id = ?", coachID).
		Order("trainings.date DESC").
		Find(&trainings).Error
	return trainings, err
}

// DeletePastByCoach purges the coach's trainings dated strictly before the
// given cutoff, attendance rows included. Returns the number of trainings
// removed.
func (r *TrainingRepository) DeletePastByCoach(coachID uint, before time.Time) (int64, error) {
	past := r.db.Model(&models.Training{}).Select("trainings.id").
		Joins("JOIN teams ON teams.id = trainings.team_id").
		Where("teams.coach_id = ? AND trainings.date < ?", coachID, before)

	if err := r.db.Where("training_id IN (?)", past).Delete(&models.TrainingAttendance{}).Error; err != nil {
		return 0, err
	}

	res := r.db.Where("id IN (?)", past).Delete(&models.Training{})
	return res.RowsAffected, res.Error
}

// DeleteAttendanceByPlayer removes a player's attendance rows. Used by the
// account deletion cascade; the trainings themselves stay.
func (r *TrainingRepository) DeleteAttendanceByPlayer(playerID uint) error {
	return r.db.Where("player_id = ?", playerID).Delete(&models.TrainingAttendance{}).Error
}

// DeleteByTeam removes all trainings for a team, attendance rows included.
// Used by the account deletion cascade.
func (r *TrainingRepository) DeleteByTeam(teamID uint) error {
	teamTrainings := r.db.Model(&models.Training{}).Select("id").Where("team_id = ?", teamID)

	if err := r.db.Where("training_id IN (?)", teamTrainings).Delete(&models.TrainingAttendance{}).Error; err != nil {
		return err
	}
	return r.db.Where("team_id = ?", teamID).Delete(&models.Training{}).Error
}
