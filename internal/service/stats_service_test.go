package service_test

import (
	"testing"
	"time"

	"github.com/Baaaki/sportclub/internal/models"
	"github.com/Baaaki/sportclub/internal/repository"
	"github.com/Baaaki/sportclub/internal/service"
	"github.com/Baaaki/sportclub/internal/testutil"
	"github.com/Baaaki/sportclub/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type StatsServiceTestSuite struct {
	suite.Suite
	testDB *testutil.TestDatabase
	svc    *service.StatsService
	coach  *models.User
	team   *models.Team
	player *models.Player
}

func (s *StatsServiceTestSuite) SetupSuite() {
	logger.Init(false)
	s.testDB = testutil.SetupTestDatabase(s.T())
}

func (s *StatsServiceTestSuite) TearDownSuite() {
	s.testDB.Teardown(s.T())
}

func (s *StatsServiceTestSuite) SetupTest() {
	testutil.CleanDatabase(s.T(), s.testDB.DB)

	db := s.testDB.DB
	s.svc = service.NewStatsService(
		repository.NewTeamRepository(db),
		repository.NewPlayerRepository(db),
		repository.NewPerformanceRepository(db),
	)

	s.coach = testutil.CreateUser(s.T(), db, "coach1", models.RoleCoach, true)
	s.team = testutil.CreateTeam(s.T(), db, "Eagles", s.coach.ID)
	s.player = testutil.CreatePlaceholder(s.T(), db, "robin", &s.team.ID)
}

func (s *StatsServiceTestSuite) coachCaller() service.Caller {
	return service.Caller{ID: s.coach.ID, Role: models.RoleCoach}
}

func matchDate(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func (s *StatsServiceTestSuite) TestRecordPerformanceDerivesPassAccuracy() {
	perf, err := s.svc.RecordPerformance(s.coachCaller(), s.player.ID, service.PerformanceInput{
		Date:            matchDate("2026-03-01"),
		Goals:           2,
		Assists:         1,
		PassesCompleted: 37,
		PassesAttempted: 50,
		Tackles:         4,
		Rating:          8.5,
	})
	assert.NoError(s.T(), err)
	assert.Equal(s.T(), 74.0, perf.PassAccuracy)
	assert.NotZero(s.T(), perf.ID)
}

func (s *StatsServiceTestSuite) TestRecordPerformanceNoPassesAttempted() {
	perf, err := s.svc.RecordPerformance(s.coachCaller(), s.player.ID, service.PerformanceInput{
		Date:   matchDate("2026-03-01"),
		Rating: 6,
	})
	assert.NoError(s.T(), err)
	assert.Equal(s.T(), 0.0, perf.PassAccuracy)
}

func (s *StatsServiceTestSuite) TestRecordPerformanceRatingRange() {
	for _, rating := range []float64{-0.1, 10.5} {
		_, err := s.svc.RecordPerformance(s.coachCaller(), s.player.ID, service.PerformanceInput{
			Date:   matchDate("2026-03-01"),
			Rating: rating,
		})
		assert.ErrorIs(s.T(), err, service.ErrValidation)
	}
}

func (s *StatsServiceTestSuite) TestRecordPerformanceForeignPlayerForbidden() {
	db := s.testDB.DB
	rival := testutil.CreateUser(s.T(), db, "coach2", models.RoleCoach, true)
	foreignTeam := testutil.CreateTeam(s.T(), db, "Hawks", rival.ID)
	foreignPlayer := testutil.CreatePlaceholder(s.T(), db, "other", &foreignTeam.ID)

	_, err := s.svc.RecordPerformance(s.coachCaller(), foreignPlayer.ID, service.PerformanceInput{
		Date:   matchDate("2026-03-01"),
		Rating: 7,
	})
	assert.ErrorIs(s.T(), err, service.ErrForbidden)
}

func (s *StatsServiceTestSuite) TestPlayerTotals() {
	db := s.testDB.DB
	first := testutil.CreatePerformance(s.T(), db, s.player.ID, "2026-03-01", 7)
	second := testutil.CreatePerformance(s.T(), db, s.player.ID, "2026-03-08", 8)

	totals, err := s.svc.PlayerTotals(s.player.ID)
	assert.NoError(s.T(), err)
	assert.Equal(s.T(), 2, totals.Appearances)
	assert.Equal(s.T(), first.Goals+second.Goals, totals.Goals)
	assert.Equal(s.T(), first.Assists+second.Assists, totals.Assists)
}

func (s *StatsServiceTestSuite) TestPlayerTotalsWithoutRecords() {
	totals, err := s.svc.PlayerTotals(s.player.ID)
	assert.NoError(s.T(), err)
	assert.Equal(s.T(), 0, totals.Appearances)
	assert.Equal(s.T(), 0, totals.Goals)
}

func (s *StatsServiceTestSuite) TestPlayerSeriesOrderedByDate() {
	db := s.testDB.DB
	testutil.CreatePerformance(s.T(), db, s.player.ID, "2026-03-08", 8)
	testutil.CreatePerformance(s.T(), db, s.player.ID, "2026-03-01", 6)

	series, err := s.svc.PlayerSeries(s.player.ID)
	assert.NoError(s.T(), err)
	assert.Equal(s.T(), []string{"2026-03-01", "2026-03-08"}, series.Labels)
	assert.Equal(s.T(), []float64{6, 8}, series.Values)
}

func (s *StatsServiceTestSuite) TestTeamSeriesAveragesPerDate() {
	db := s.testDB.DB
	teammate := testutil.CreatePlaceholder(s.T(), db, "sam", &s.team.ID)

	// Two same-date records for one player plus one from a teammate:
	// the mean is taken across records, not per player.
	testutil.CreatePerformance(s.T(), db, s.player.ID, "2026-03-01", 6)
	testutil.CreatePerformance(s.T(), db, s.player.ID, "2026-03-01", 8)
	testutil.CreatePerformance(s.T(), db, teammate.ID, "2026-03-01", 7)
	testutil.CreatePerformance(s.T(), db, s.player.ID, "2026-03-08", 9)

	series, err := s.svc.TeamSeries(s.team.ID)
	assert.NoError(s.T(), err)
	assert.Equal(s.T(), []string{"2026-03-01", "2026-03-08"}, series.Labels)
	assert.Equal(s.T(), []float64{7.0, 9.0}, series.Values)
}

func (s *StatsServiceTestSuite) TestTeamSeriesEmptyTeam() {
	empty := testutil.CreateTeam(s.T(), s.testDB.DB, "Hollow", s.coach.ID)

	series, err := s.svc.TeamSeries(empty.ID)
	assert.NoError(s.T(), err)
	assert.Empty(s.T(), series.Labels)
	assert.Empty(s.T(), series.Values)
}

func (s *StatsServiceTestSuite) TestTeamSeriesUnknownTeam() {
	_, err := s.svc.TeamSeries(9999)
	assert.ErrorIs(s.T(), err, service.ErrNotFound)
}

func TestStatsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StatsServiceTestSuite))
}
