package handler

import (
	"net/http"

	"github.com/Baaaki/sportclub/internal/middleware"
	"github.com/Baaaki/sportclub/internal/service"
	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	statsService *service.StatsService
}

func NewStatsHandler(statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

type RecordPerformanceRequest struct {
	Date            string  `json:"date" binding:"required"`
	Goals           int     `json:"goals"`
	Assists         int     `json:"assists"`
	PassesCompleted int     `json:"passes_completed"`
	PassesAttempted int     `json:"passes_attempted"`
	Tackles         int     `json:"tackles"`
	Rating          float64 `json:"rating"`
}

// RecordPerformance appends a stat line for a player.
// POST /api/players/:id/stats
func (h *StatsHandler) RecordPerformance(c *gin.Context) {
	caller, _ := middleware.GetCaller(c)
	playerID, ok := pathID(c)
	if !ok {
		return
	}

	var req RecordPerformanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	perf, err := h.statsService.RecordPerformance(caller, playerID, service.PerformanceInput{
		Date:            date,
		Goals:           req.Goals,
		Assists:         req.Assists,
		PassesCompleted: req.PassesCompleted,
		PassesAttempted: req.PassesAttempted,
		Tackles:         req.Tackles,
		Rating:          req.Rating,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Performance recorded",
		"performance": perf,
	})
}

// PlayerTotals returns career sums. GET /api/players/:id/totals
func (h *StatsHandler) PlayerTotals(c *gin.Context) {
	playerID, ok := pathID(c)
	if !ok {
		return
	}

	totals, err := h.statsService.PlayerTotals(playerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, totals)
}

// PlayerSeries is the per-player chart endpoint.
// GET /api/players/:id/performance
func (h *StatsHandler) PlayerSeries(c *gin.Context) {
	playerID, ok := pathID(c)
	if !ok {
		return
	}

	series, err := h.statsService.PlayerSeries(playerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, series)
}

// TeamSeries is the team-averaged chart endpoint.
// GET /api/teams/:id/performance
func (h *StatsHandler) TeamSeries(c *gin.Context) {
	teamID, ok := pathID(c)
	if !ok {
		return
	}

	series, err := h.statsService.TeamSeries(teamID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, series)
}
