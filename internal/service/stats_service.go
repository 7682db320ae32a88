package service

import (
	"math"
	"sort"
	"time"

	"github.com/Baaaki/sportclub/internal/models"
	"github.com/Baaaki/sportclub/internal/repository"
	"github.com/Baaaki/sportclub/pkg/logger"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// StatsService records performances and serves the aggregation endpoints.
type StatsService struct {
	teams   *repository.TeamRepository
	players *repository.PlayerRepository
	perfs   *repository.PerformanceRepository
}

func NewStatsService(
	teams *repository.TeamRepository,
	players *repository.PlayerRepository,
	perfs *repository.PerformanceRepository,
) *StatsService {
	return &StatsService{
		teams:   teams,
		players: players,
		perfs:   perfs,
	}
}

// PerformanceInput is one stat line as submitted by a coach.
type PerformanceInput struct {
	Date            time.Time
	Goals           int
	Assists         int
	PassesCompleted int
	PassesAttempted int
	Tackles         int
	Rating          float64
}

// RecordPerformance appends an immutable stat line for a player on one of
// the caller's teams. Pass accuracy is derived once here because the record
// never changes afterwards.
func (s *StatsService) RecordPerformance(caller Caller, playerID uint, input PerformanceInput) (*models.Performance, error) {
	if !caller.IsCoach() {
		return nil, ErrCoachOnly
	}
	if input.Rating < 0 || input.Rating > 10 {
		return nil, ErrRatingOutOfRange
	}

	player, err := s.players.GetByID(playerID)
	if err != nil {
		return nil, err
	}
	if player == nil {
		return nil, ErrPlayerNotFound
	}
	if player.TeamID == nil {
		return nil, ErrNotTeamOwner
	}

	team, err := s.teams.GetByID(*player.TeamID)
	if err != nil {
		return nil, err
	}
	if team == nil || team.CoachID != caller.ID {
		return nil, ErrNotTeamOwner
	}

	perf := &models.Performance{
		PlayerID:        playerID,
		Date:            input.Date,
		Goals:           input.Goals,
		Assists:         input.Assists,
		PassesCompleted: input.PassesCompleted,
		PassesAttempted: input.PassesAttempted,
		Tackles:         input.Tackles,
		Rating:          input.Rating,
	}
	if input.PassesAttempted > 0 {
		perf.PassAccuracy = round2(float64(input.PassesCompleted) / float64(input.PassesAttempted) * 100)
	}

	if err := s.perfs.Create(perf); err != nil {
		return nil, err
	}

	logger.Log.Info("Performance recorded",
		zap.Uint("player_id", playerID),
		zap.Uint("coach_id", caller.ID),
		zap.Float64("rating", input.Rating),
	)
	return perf, nil
}

// Totals are the career sums across all of a player's records.
type Totals struct {
	Goals           int `json:"goals"`
	Assists         int `json:"assists"`
	Tackles         int `json:"tackles"`
	PassesCompleted int `json:"passes_completed"`
	PassesAttempted int `json:"passes_attempted"`
	Appearances     int `json:"appearances"`
}

func sumTotals(perfs []models.Performance) Totals {
	totals := Totals{Appearances: len(perfs)}
	for _, p := range perfs {
		totals.Goals += p.Goals
		totals.Assists += p.Assists
		totals.Tackles += p.Tackles
		totals.PassesCompleted += p.PassesCompleted
		totals.PassesAttempted += p.PassesAttempted
	}
	return totals
}

// PlayerTotals sums the player's records. A player with no records gets all
// zeroes, not an error.
func (s *StatsService) PlayerTotals(playerID uint) (*Totals, error) {
	player, err := s.players.GetByID(playerID)
	if err != nil {
		return nil, err
	}
	if player == nil {
		return nil, ErrPlayerNotFound
	}

	perfs, err := s.perfs.ListByPlayer(playerID)
	if err != nil {
		return nil, err
	}
	totals := sumTotals(perfs)
	return &totals, nil
}

// Series is the chart payload of the two JSON endpoints: dates ascending and
// one value per date.
type Series struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// PlayerSeries returns every rating of the player ordered by date ascending.
func (s *StatsService) PlayerSeries(playerID uint) (*Series, error) {
	perfs, err := s.perfs.ListByPlayer(playerID)
	if err != nil {
		return nil, err
	}

	series := &Series{Labels: []string{}, Values: []float64{}}
	for _, p := range perfs {
		series.Labels = append(series.Labels, p.Date.Format(dateLayout))
		series.Values = append(series.Values, p.Rating)
	}
	return series, nil
}

// TeamSeries averages ratings per date across every player on the team,
// dates ascending, means rounded to 2 decimals. A team without players or
// records yields an empty series; an unknown team is NotFound.
func (s *StatsService) TeamSeries(teamID uint) (*Series, error) {
	team, err := s.teams.GetByID(teamID)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, ErrTeamNotFound
	}

	perfs, err := s.perfs.ListByTeam(teamID)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]float64)
	for _, p := range perfs {
		key := p.Date.Format(dateLayout)
		grouped[key] = append(grouped[key], p.Rating)
	}

	dates := make([]string, 0, len(grouped))
	for d := range grouped {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	series := &Series{Labels: []string{}, Values: []float64{}}
	for _, d := range dates {
		ratings := grouped[d]
		var sum float64
		for _, r := range ratings {
			sum += r
		}
		series.Labels = append(series.Labels, d)
		series.Values = append(series.Values, round2(sum/float64(len(ratings))))
	}
	return series, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
