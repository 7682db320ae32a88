package service

import (
	"fmt"
	"time"

	"github.com/Baaaki/sportclub/internal/models"
	"github.com/Baaaki/sportclub/internal/repository"
	"github.com/Baaaki/sportclub/pkg/logger"
	"go.uber.org/zap"
)

// TrainingService schedules team trainings and handles the lazy purge of
// past-dated sessions.
type TrainingService struct {
	teams    *repository.TeamRepository
	players  *repository.PlayerRepository
	training *repository.TrainingRepository

	// now is swappable for tests.
	now func() time.Time
}

func NewTrainingService(
	teams *repository.TeamRepository,
	players *repository.PlayerRepository,
	training *repository.TrainingRepository,
) *TrainingService {
	return &TrainingService{
		teams:    teams,
		players:  players,
		training: training,
		now:      time.Now,
	}
}

// ScheduleInput describes one training session. Attendees is the set of
// players expected at the session; all of them must be on the team.
type ScheduleInput struct {
	TeamID    uint
	Date      time.Time
	Focus     string
	Duration  int
	Attendees []uint
}

func (s *TrainingService) Schedule(caller Caller, input ScheduleInput) (*models.Training, error) {
	if !caller.IsCoach() {
		return nil, ErrCoachOnly
	}
	if input.Duration <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive", ErrValidation)
	}

	team, err := s.teams.GetByID(input.TeamID)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, ErrTeamNotFound
	}
	if team.CoachID != caller.ID {
		return nil, ErrNotTeamOwner
	}

	roster, err := s.players.ListByTeam(input.TeamID)
	if err != nil {
		return nil, err
	}
	onTeam := make(map[uint]bool, len(roster))
	for _, p := range roster {
		onTeam[p.ID] = true
	}

	training := &models.Training{
		TeamID:   input.TeamID,
		Date:     input.Date,
		Focus:    input.Focus,
		Duration: input.Duration,
	}
	for _, playerID := range input.Attendees {
		if !onTeam[playerID] {
			return nil, ErrAttendeeNotInTeam
		}
		training.Attendees = append(training.Attendees, models.TrainingAttendance{PlayerID: playerID})
	}

	if err := s.training.Create(training); err != nil {
		return nil, err
	}

	logger.Log.Info("Training scheduled",
		zap.Uint("training_id", training.ID),
		zap.Uint("team_id", input.TeamID),
		zap.Time("date", input.Date),
		zap.Int("attendees", len(training.Attendees)),
	)
	return training, nil
}

// PurgeExpired removes the coach's trainings dated strictly before today.
// Invoked synchronously whenever the coach loads their dashboard or training
// list; a failure aborts that request.
func (s *TrainingService) PurgeExpired(caller Caller) error {
	if !caller.IsCoach() {
		return ErrCoachOnly
	}

	today := s.today()
	removed, err := s.training.DeletePastByCoach(caller.ID, today)
	if err != nil {
		return err
	}
	if removed > 0 {
		logger.Log.Info("Purged past trainings",
			zap.Uint("coach_id", caller.ID),
			zap.Int64("removed", removed),
		)
	}
	return nil
}

// CoachTrainings purges expired sessions and then lists what remains across
// the coach's teams, newest first.
func (s *TrainingService) CoachTrainings(caller Caller) ([]models.Training, error) {
	if err := s.PurgeExpired(caller); err != nil {
		return nil, err
	}
	return s.training.ListByCoach(caller.ID)
}

// PlayerTrainings lists the sessions of the calling player's team.
func (s *TrainingService) PlayerTrainings(caller Caller) ([]models.Training, error) {
	if !caller.IsPlayer() {
		return nil, ErrPlayerOnly
	}

	profile, err := s.players.GetByUserID(caller.ID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	if profile.TeamID == nil {
		return []models.Training{}, nil
	}
	return s.training.ListByTeam(*profile.TeamID)
}

// today truncates the clock to midnight so only strictly past dates purge.
func (s *TrainingService) today() time.Time {
	now := s.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
