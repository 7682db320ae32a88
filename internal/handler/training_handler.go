package handler

import (
	"net/http"

	"github.com/Baaaki/sportclub/internal/middleware"
	"github.com/Baaaki/sportclub/internal/service"
	"github.com/gin-gonic/gin"
)

type TrainingHandler struct {
	trainingService *service.TrainingService
}

func NewTrainingHandler(trainingService *service.TrainingService) *TrainingHandler {
	return &TrainingHandler{
		trainingService: trainingService,
	}
}

type ScheduleTrainingRequest struct {
	TeamID    uint   `json:"team_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Focus     string `json:"focus"`
	Duration  int    `json:"duration" binding:"required"`
	Attendees []uint `json:"attendees"`
}

// Schedule creates a training session with its attendee set.
// POST /api/trainings
func (h *TrainingHandler) Schedule(c *gin.Context) {
	caller, _ := middleware.GetCaller(c)

	var req ScheduleTrainingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	training, err := h.trainingService.Schedule(caller, service.ScheduleInput{
		TeamID:    req.TeamID,
		Date:      date,
		Focus:     req.Focus,
		Duration:  req.Duration,
		Attendees: req.Attendees,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Training scheduled",
		"training": training,
	})
}

// CoachTrainings lists the coach's upcoming trainings (past ones purge on
// the way). GET /api/trainings
func (h *TrainingHandler) CoachTrainings(c *gin.Context) {
	caller, _ := middleware.GetCaller(c)

	trainings, err := h.trainingService.CoachTrainings(caller)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"trainings": trainings})
}

// PlayerTrainings lists the caller's team trainings. GET /api/me/trainings
func (h *TrainingHandler) PlayerTrainings(c *gin.Context) {
	caller, _ := middleware.GetCaller(c)

	trainings, err := h.trainingService.PlayerTrainings(caller)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"trainings": trainings})
}
