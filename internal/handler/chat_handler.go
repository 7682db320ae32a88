package handler

import (
	"net/http"

	"github.com/Baaaki/sportclub/internal/middleware"
	"github.com/Baaaki/sportclub/internal/service"
	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	chatService *service.ChatService
}

func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
	}
}

type SendMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

// Partners lists who the caller can message. GET /api/chat/partners
func (h *ChatHandler) Partners(c *gin.Context) {
	caller, _ := middleware.GetCaller(c)

	partners, err := h.chatService.Partners(caller)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"partners": partners})
}

// Conversation returns the full exchange with another account, oldest
// first. Clients poll this endpoint. GET /api/chat/:id/messages
func (h *ChatHandler) Conversation(c *gin.Context) {
	caller, _ := middleware.GetCaller(c)
	otherID, ok := pathID(c)
	if !ok {
		return
	}

	messages, err := h.chatService.Conversation(caller, otherID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

// Send stores a message to another account. POST /api/chat/:id/messages
func (h *ChatHandler) Send(c *gin.Context) {
	caller, _ := middleware.GetCaller(c)
	receiverID, ok := pathID(c)
	if !ok {
		return
	}

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	msg, err := h.chatService.Send(caller, receiverID, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Message sent",
		"data":    msg,
	})
}
