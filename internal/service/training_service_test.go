package service

import (
	"testing"
	"time"

	"github.com/Baaaki/sportclub/internal/models"
	"github.com/Baaaki/sportclub/internal/repository"
	"github.com/Baaaki/sportclub/internal/testutil"
	"github.com/Baaaki/sportclub/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// Pinned clock so the purge boundary is deterministic.
var trainingTestNow = time.Date(2026, 6, 15, 10, 30, 0, 0, time.UTC)

type TrainingServiceTestSuite struct {
	suite.Suite
	testDB *testutil.TestDatabase
	svc    *TrainingService
	coach  *models.User
	team   *models.Team
}

func (s *TrainingServiceTestSuite) SetupSuite() {
	logger.Init(false)
	s.testDB = testutil.SetupTestDatabase(s.T())
}

func (s *TrainingServiceTestSuite) TearDownSuite() {
	s.testDB.Teardown(s.T())
}

func (s *TrainingServiceTestSuite) SetupTest() {
	testutil.CleanDatabase(s.T(), s.testDB.DB)

	db := s.testDB.DB
	s.svc = NewTrainingService(
		repository.NewTeamRepository(db),
		repository.NewPlayerRepository(db),
		repository.NewTrainingRepository(db),
	)
	s.svc.now = func() time.Time { return trainingTestNow }

	s.coach = testutil.CreateUser(s.T(), db, "coach1", models.RoleCoach, true)
	s.team = testutil.CreateTeam(s.T(), db, "Eagles", s.coach.ID)
}

func (s *TrainingServiceTestSuite) coachCaller() Caller {
	return Caller{ID: s.coach.ID, Role: models.RoleCoach}
}

func (s *TrainingServiceTestSuite) TestScheduleWithAttendees() {
	db := s.testDB.DB
	first := testutil.CreatePlaceholder(s.T(), db, "robin", &s.team.ID)
	second := testutil.CreatePlaceholder(s.T(), db, "sam", &s.team.ID)

	training, err := s.svc.Schedule(s.coachCaller(), ScheduleInput{
		TeamID:    s.team.ID,
		Date:      trainingTestNow.AddDate(0, 0, 3),
		Focus:     "Set pieces",
		Duration:  75,
		Attendees: []uint{first.ID, second.ID},
	})
	assert.NoError(s.T(), err)
	assert.NotZero(s.T(), training.ID)

	var attendance int64
	db.Model(&models.TrainingAttendance{}).Where("training_id = ?", training.ID).Count(&attendance)
	assert.Equal(s.T(), int64(2), attendance)
}

func (s *TrainingServiceTestSuite) TestScheduleRejectsOutsideAttendee() {
	db := s.testDB.DB
	outsider := testutil.CreatePlaceholder(s.T(), db, "stranger", nil)

	_, err := s.svc.Schedule(s.coachCaller(), ScheduleInput{
		TeamID:    s.team.ID,
		Date:      trainingTestNow.AddDate(0, 0, 3),
		Focus:     "Set pieces",
		Duration:  75,
		Attendees: []uint{outsider.ID},
	})
	assert.ErrorIs(s.T(), err, ErrValidation)

	var count int64
	db.Model(&models.Training{}).Count(&count)
	assert.Equal(s.T(), int64(0), count)
}

func (s *TrainingServiceTestSuite) TestScheduleRequiresPositiveDuration() {
	_, err := s.svc.Schedule(s.coachCaller(), ScheduleInput{
		TeamID:   s.team.ID,
		Date:     trainingTestNow.AddDate(0, 0, 3),
		Duration: 0,
	})
	assert.ErrorIs(s.T(), err, ErrValidation)
}

func (s *TrainingServiceTestSuite) TestScheduleForeignTeamForbidden() {
	db := s.testDB.DB
	rival := testutil.CreateUser(s.T(), db, "coach2", models.RoleCoach, true)
	foreign := testutil.CreateTeam(s.T(), db, "Hawks", rival.ID)

	_, err := s.svc.Schedule(s.coachCaller(), ScheduleInput{
		TeamID:   foreign.ID,
		Date:     trainingTestNow.AddDate(0, 0, 3),
		Duration: 60,
	})
	assert.ErrorIs(s.T(), err, ErrForbidden)
}

func (s *TrainingServiceTestSuite) TestPurgeRemovesOnlyStrictlyPast() {
	db := s.testDB.DB
	past := testutil.CreateTraining(s.T(), db, s.team.ID, "2026-06-14")
	today := testutil.CreateTraining(s.T(), db, s.team.ID, "2026-06-15")
	future := testutil.CreateTraining(s.T(), db, s.team.ID, "2026-06-20")

	assert.NoError(s.T(), s.svc.PurgeExpired(s.coachCaller()))

	var remaining []models.Training
	db.Order("date ASC").Find(&remaining)
	assert.Len(s.T(), remaining, 2)
	assert.Equal(s.T(), today.ID, remaining[0].ID)
	assert.Equal(s.T(), future.ID, remaining[1].ID)

	var gone int64
	db.Model(&models.Training{}).Where("id = ?", past.ID).Count(&gone)
	assert.Equal(s.T(), int64(0), gone)
}

func (s *TrainingServiceTestSuite) TestPurgeDropsAttendanceRows() {
	db := s.testDB.DB
	player := testutil.CreatePlaceholder(s.T(), db, "robin", &s.team.ID)
	past := testutil.CreateTraining(s.T(), db, s.team.ID, "2026-06-01")
	assert.NoError(s.T(), db.Create(&models.TrainingAttendance{TrainingID: past.ID, PlayerID: player.ID}).Error)

	assert.NoError(s.T(), s.svc.PurgeExpired(s.coachCaller()))

	var attendance int64
	db.Model(&models.TrainingAttendance{}).Count(&attendance)
	assert.Equal(s.T(), int64(0), attendance)
}

func (s *TrainingServiceTestSuite) TestPurgeLeavesOtherCoachesAlone() {
	db := s.testDB.DB
	rival := testutil.CreateUser(s.T(), db, "coach2", models.RoleCoach, true)
	foreign := testutil.CreateTeam(s.T(), db, "Hawks", rival.ID)
	theirs := testutil.CreateTraining(s.T(), db, foreign.ID, "2026-06-01")

	assert.NoError(s.T(), s.svc.PurgeExpired(s.coachCaller()))

	var kept int64
	db.Model(&models.Training{}).Where("id = ?", theirs.ID).Count(&kept)
	assert.Equal(s.T(), int64(1), kept)
}

func (s *TrainingServiceTestSuite) TestCoachTrainingsPurgesFirst() {
	db := s.testDB.DB
	testutil.CreateTraining(s.T(), db, s.team.ID, "2026-06-10")
	upcoming := testutil.CreateTraining(s.T(), db, s.team.ID, "2026-06-20")

	trainings, err := s.svc.CoachTrainings(s.coachCaller())
	assert.NoError(s.T(), err)
	assert.Len(s.T(), trainings, 1)
	assert.Equal(s.T(), upcoming.ID, trainings[0].ID)
}

func (s *TrainingServiceTestSuite) TestPlayerTrainings() {
	db := s.testDB.DB
	account := testutil.CreateUser(s.T(), db, "robin", models.RolePlayer, true)
	testutil.CreateLinkedPlayer(s.T(), db, "robin", &s.team.ID, account.ID)
	testutil.CreateTraining(s.T(), db, s.team.ID, "2026-06-20")

	trainings, err := s.svc.PlayerTrainings(Caller{ID: account.ID, Role: models.RolePlayer})
	assert.NoError(s.T(), err)
	assert.Len(s.T(), trainings, 1)
}

func (s *TrainingServiceTestSuite) TestPlayerTrainingsWithoutTeam() {
	db := s.testDB.DB
	account := testutil.CreateUser(s.T(), db, "robin", models.RolePlayer, true)
	testutil.CreateLinkedPlayer(s.T(), db, "robin", nil, account.ID)

	trainings, err := s.svc.PlayerTrainings(Caller{ID: account.ID, Role: models.RolePlayer})
	assert.NoError(s.T(), err)
	assert.Empty(s.T(), trainings)
}

func TestTrainingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TrainingServiceTestSuite))
}
