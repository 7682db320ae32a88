package handler

import (
	"net/http"
	"strconv"

	"github.com/Baaaki/sportclub/internal/middleware"
	"github.com/Baaaki/sportclub/internal/service"
	"github.com/Baaaki/sportclub/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AdminHandler struct {
	approvalService *service.ApprovalService
}

func NewAdminHandler(approvalService *service.ApprovalService) *AdminHandler {
	return &AdminHandler{
		approvalService: approvalService,
	}
}

// Dashboard returns pending registrations, all accounts and club totals.
// GET /api/admin/dashboard
func (h *AdminHandler) Dashboard(c *gin.Context) {
	caller, _ := middleware.GetCaller(c)

	pending, err := h.approvalService.PendingUsers(caller)
	if err != nil {
		respondError(c, err)
		return
	}
	users, err := h.approvalService.ListUsers(caller)
	if err != nil {
		respondError(c, err)
		return
	}
	teamCount, playerCount, err := h.approvalService.Overview(caller)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"pending":       pending,
		"users":         users,
		"total_teams":   teamCount,
		"total_players": playerCount,
	})
}

// Approve approves a pending account and links the player profile.
// POST /api/admin/users/:id/approve
func (h *AdminHandler) Approve(c *gin.Context) {
	caller, _ := middleware.GetCaller(c)
	userID, ok := pathID(c)
	if !ok {
		return
	}

	logger.Log.Info("Admin approving account",
		zap.Uint("admin_id", caller.ID),
		zap.Uint("target_user_id", userID),
	)

	if err := h.approvalService.Approve(caller, userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Account approved",
	})
}

// Reject deletes a pending registration.
// POST /api/admin/users/:id/reject
func (h *AdminHandler) Reject(c *gin.Context) {
	caller, _ := middleware.GetCaller(c)
	userID, ok := pathID(c)
	if !ok {
		return
	}

	logger.Log.Info("Admin rejecting account",
		zap.Uint("admin_id", caller.ID),
		zap.Uint("target_user_id", userID),
	)

	if err := h.approvalService.Reject(caller, userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Account rejected and deleted",
	})
}

// DeleteUser removes an account together with everything it owns.
// DELETE /api/admin/users/:id
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	caller, _ := middleware.GetCaller(c)
	userID, ok := pathID(c)
	if !ok {
		return
	}

	logger.Log.Info("Admin deleting account",
		zap.Uint("admin_id", caller.ID),
		zap.Uint("target_user_id", userID),
	)

	if err := h.approvalService.DeleteAccount(caller, userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Account deleted",
	})
}

// pathID parses the :id path parameter, writing a 400 on failure.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid id",
		})
		return 0, false
	}
	return uint(id), true
}
