package service

import (
	"fmt"
	"strings"

	"github.com/Baaaki/sportclub/internal/models"
	"github.com/Baaaki/sportclub/internal/repository"
	"github.com/Baaaki/sportclub/pkg/logger"
	"go.uber.org/zap"
)

// RosterService covers the coach-scoped team and player mutations plus the
// read surfaces built on them.
type RosterService struct {
	users   *repository.UserRepository
	teams   *repository.TeamRepository
	players *repository.PlayerRepository
	perfs   *repository.PerformanceRepository
}

func NewRosterService(
	users *repository.UserRepository,
	teams *repository.TeamRepository,
	players *repository.PlayerRepository,
	perfs *repository.PerformanceRepository,
) *RosterService {
	return &RosterService{
		users:   users,
		teams:   teams,
		players: players,
		perfs:   perfs,
	}
}

// CreateTeam creates a team owned by the calling coach. Team names are
// globally unique: a name held by any coach, the caller included, conflicts.
func (s *RosterService) CreateTeam(caller Caller, name, season string) (*models.Team, error) {
	if !caller.IsCoach() {
		return nil, ErrCoachOnly
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: team name is required", ErrValidation)
	}

	existing, err := s.teams.GetByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		logger.Log.Warn("Team name conflict",
			zap.String("name", name),
			zap.Uint("coach_id", caller.ID),
			zap.Uint("holder_coach_id", existing.CoachID),
		)
		return nil, ErrTeamNameTaken
	}

	team := &models.Team{
		Name:    name,
		Season:  season,
		CoachID: caller.ID,
	}
	if err := s.teams.Create(team); err != nil {
		return nil, err
	}

	logger.Log.Info("Team created",
		zap.Uint("team_id", team.ID),
		zap.String("name", name),
		zap.Uint("coach_id", caller.ID),
	)
	return team, nil
}

// MyTeams lists the calling coach's teams.
func (s *RosterService) MyTeams(caller Caller) ([]models.Team, error) {
	if !caller.IsCoach() {
		return nil, ErrCoachOnly
	}
	return s.teams.ListByCoach(caller.ID)
}

// TeamPlayers lists the team roster. Admins can view any team; coaches only
// their own.
func (s *RosterService) TeamPlayers(caller Caller, teamID uint) (*models.Team, []models.Player, error) {
	team, err := s.teams.GetByID(teamID)
	if err != nil {
		return nil, nil, err
	}
	if team == nil {
		return nil, nil, ErrTeamNotFound
	}

	if !caller.IsAdmin() && !(caller.IsCoach() && team.CoachID == caller.ID) {
		return nil, nil, ErrNotTeamOwner
	}

	players, err := s.players.ListByTeam(teamID)
	if err != nil {
		return nil, nil, err
	}
	return team, players, nil
}

// AvailablePlayers lists the unassigned pool (profiles with no team).
func (s *RosterService) AvailablePlayers(caller Caller) ([]models.Player, error) {
	if !caller.IsCoach() {
		return nil, ErrCoachOnly
	}
	return s.players.ListUnassigned()
}

// CreatePlayer adds an unregistered placeholder to one of the coach's teams.
// Display names are unique across all profiles; an approved account with a
// matching username later claims the placeholder.
func (s *RosterService) CreatePlayer(caller Caller, name, position string, age int, teamID uint) (*models.Player, error) {
	if !caller.IsCoach() {
		return nil, ErrCoachOnly
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: player name is required", ErrValidation)
	}
	if age < 0 {
		return nil, fmt.Errorf("%w: age cannot be negative", ErrValidation)
	}

	team, err := s.teams.GetByID(teamID)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, ErrTeamNotFound
	}
	if team.CoachID != caller.ID {
		return nil, ErrNotTeamOwner
	}

	existing, err := s.players.GetByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrPlayerExists
	}

	player := &models.Player{
		Name:     name,
		Position: position,
		Age:      age,
		TeamID:   &teamID,
		UserID:   nil, // unregistered until an approved account claims it
	}
	if err := s.players.Create(player); err != nil {
		return nil, err
	}

	logger.Log.Info("Placeholder player created",
		zap.Uint("player_id", player.ID),
		zap.String("name", name),
		zap.Uint("team_id", teamID),
		zap.Uint("coach_id", caller.ID),
	)
	return player, nil
}

// AssignPlayer puts a player on one of the calling coach's teams.
func (s *RosterService) AssignPlayer(caller Caller, playerID, teamID uint) error {
	if !caller.IsCoach() {
		return ErrCoachOnly
	}

	player, err := s.players.GetByID(playerID)
	if err != nil {
		return err
	}
	if player == nil {
		return ErrPlayerNotFound
	}

	team, err := s.teams.GetByID(teamID)
	if err != nil {
		return err
	}
	if team == nil {
		return ErrTeamNotFound
	}
	if team.CoachID != caller.ID {
		return ErrNotTeamOwner
	}

	if err := s.players.SetTeam(playerID, &teamID); err != nil {
		return err
	}

	logger.Log.Info("Player assigned to team",
		zap.Uint("player_id", playerID),
		zap.Uint("team_id", teamID),
		zap.Uint("coach_id", caller.ID),
	)
	return nil
}

// UnassignPlayer moves a player back to the available pool. The profile
// itself is never deleted here, only the team reference is cleared.
func (s *RosterService) UnassignPlayer(caller Caller, playerID uint) error {
	if !caller.IsCoach() {
		return ErrCoachOnly
	}

	player, err := s.players.GetByID(playerID)
	if err != nil {
		return err
	}
	if player == nil {
		return ErrPlayerNotFound
	}
	if player.TeamID == nil {
		return fmt.Errorf("%w: player has no team", ErrValidation)
	}

	team, err := s.teams.GetByID(*player.TeamID)
	if err != nil {
		return err
	}
	if team == nil || team.CoachID != caller.ID {
		return ErrNotTeamOwner
	}

	if err := s.players.SetTeam(playerID, nil); err != nil {
		return err
	}

	logger.Log.Info("Player unassigned",
		zap.Uint("player_id", playerID),
		zap.Uint("team_id", team.ID),
		zap.Uint("coach_id", caller.ID),
	)
	return nil
}

// PlayerDetail bundles a profile with its team, full performance history and
// career totals.
type PlayerDetail struct {
	Player       models.Player        `json:"player"`
	Team         *models.Team         `json:"team,omitempty"`
	Performances []models.Performance `json:"performances"`
	Totals       Totals               `json:"totals"`
}

func (s *RosterService) PlayerDetail(playerID uint) (*PlayerDetail, error) {
	player, err := s.players.GetByID(playerID)
	if err != nil {
		return nil, err
	}
	if player == nil {
		return nil, ErrPlayerNotFound
	}

	var team *models.Team
	if player.TeamID != nil {
		team, err = s.teams.GetByID(*player.TeamID)
		if err != nil {
			return nil, err
		}
	}

	perfs, err := s.perfs.ListByPlayer(playerID)
	if err != nil {
		return nil, err
	}

	return &PlayerDetail{
		Player:       *player,
		Team:         team,
		Performances: perfs,
		Totals:       sumTotals(perfs),
	}, nil
}

// PlayerHome is the player dashboard: own profile, coach and history.
type PlayerHome struct {
	Player       models.Player        `json:"player"`
	Team         *models.Team         `json:"team,omitempty"`
	Coach        *models.User         `json:"coach,omitempty"`
	Performances []models.Performance `json:"performances"`
}

func (s *RosterService) PlayerHome(caller Caller) (*PlayerHome, error) {
	if !caller.IsPlayer() {
		return nil, ErrPlayerOnly
	}

	player, err := s.players.GetByUserID(caller.ID)
	if err != nil {
		return nil, err
	}
	if player == nil {
		return nil, ErrProfileNotFound
	}

	home := &PlayerHome{Player: *player}

	if player.TeamID != nil {
		team, err := s.teams.GetByID(*player.TeamID)
		if err != nil {
			return nil, err
		}
		home.Team = team
		if team != nil {
			coach, err := s.users.GetByID(team.CoachID)
			if err != nil {
				return nil, err
			}
			home.Coach = coach
		}
	}

	perfs, err := s.perfs.ListByPlayer(player.ID)
	if err != nil {
		return nil, err
	}
	home.Performances = perfs

	return home, nil
}
