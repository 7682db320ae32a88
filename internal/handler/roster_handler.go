package handler

import (
	"net/http"

	"github.com/Baaaki/sportclub/internal/middleware"
	"github.com/Baaaki/sportclub/internal/service"
	"github.com/gin-gonic/gin"
)

type RosterHandler struct {
	rosterService   *service.RosterService
	trainingService *service.TrainingService
}

func NewRosterHandler(rosterService *service.RosterService, trainingService *service.TrainingService) *RosterHandler {
	return &RosterHandler{
		rosterService:   rosterService,
		trainingService: trainingService,
	}
}

type CreateTeamRequest struct {
	Name   string `json:"name" binding:"required"`
	Season string `json:"season"`
}

type CreatePlayerRequest struct {
	Name     string `json:"name" binding:"required"`
	Position string `json:"position"`
	Age      int    `json:"age"`
	TeamID   uint   `json:"team_id" binding:"required"`
}

type AssignPlayerRequest struct {
	TeamID uint `json:"team_id" binding:"required"`
}

// CoachDashboard purges expired trainings and then returns the coach's
// teams, mirroring the lazy purge the original dashboard performed.
// GET /api/coach/dashboard
func (h *RosterHandler) CoachDashboard(c *gin.Context) {
	caller, _ := middleware.GetCaller(c)

	if err := h.trainingService.PurgeExpired(caller); err != nil {
		respondError(c, err)
		return
	}

	teams, err := h.rosterService.MyTeams(caller)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"teams": teams,
	})
}

// CreateTeam creates a team owned by the caller. POST /api/teams
func (h *RosterHandler) CreateTeam(c *gin.Context) {
	caller, _ := middleware.GetCaller(c)

	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	team, err := h.rosterService.CreateTeam(caller, req.Name, req.Season)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Team created",
		"team":    team,
	})
}

// MyTeams lists the caller's teams. GET /api/teams
func (h *RosterHandler) MyTeams(c *gin.Context) {
	caller, _ := middleware.GetCaller(c)

	teams, err := h.rosterService.MyTeams(caller)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"teams": teams})
}

// TeamPlayers lists a team's roster. GET /api/teams/:id/players
func (h *RosterHandler) TeamPlayers(c *gin.Context) {
	caller, _ := middleware.GetCaller(c)
	teamID, ok := pathID(c)
	if !ok {
		return
	}

	team, players, err := h.rosterService.TeamPlayers(caller, teamID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"team":    team,
		"players": players,
	})
}

// AvailablePlayers lists the unassigned pool. GET /api/players/available
func (h *RosterHandler) AvailablePlayers(c *gin.Context) {
	caller, _ := middleware.GetCaller(c)

	players, err := h.rosterService.AvailablePlayers(caller)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"players": players})
}

// CreatePlayer adds an unregistered placeholder. POST /api/players
func (h *RosterHandler) CreatePlayer(c *gin.Context) {
	caller, _ := middleware.GetCaller(c)

	var req CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	player, err := h.rosterService.CreatePlayer(caller, req.Name, req.Position, req.Age, req.TeamID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Player created",
		"player":  player,
	})
}

// AssignPlayer puts a player on one of the caller's teams.
// POST /api/players/:id/assign
func (h *RosterHandler) AssignPlayer(c *gin.Context) {
	caller, _ := middleware.GetCaller(c)
	playerID, ok := pathID(c)
	if !ok {
		return
	}

	var req AssignPlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.rosterService.AssignPlayer(caller, playerID, req.TeamID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Player assigned"})
}

// UnassignPlayer moves a player to the available pool.
// POST /api/players/:id/unassign
func (h *RosterHandler) UnassignPlayer(c *gin.Context) {
	caller, _ := middleware.GetCaller(c)
	playerID, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.rosterService.UnassignPlayer(caller, playerID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Player moved to available pool"})
}

// PlayerDetail returns a profile with history and totals. GET /api/players/:id
func (h *RosterHandler) PlayerDetail(c *gin.Context) {
	playerID, ok := pathID(c)
	if !ok {
		return
	}

	detail, err := h.rosterService.PlayerDetail(playerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// PlayerHome is the player's own dashboard. GET /api/me/dashboard
func (h *RosterHandler) PlayerHome(c *gin.Context) {
	caller, _ := middleware.GetCaller(c)

	home, err := h.rosterService.PlayerHome(caller)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, home)
}
