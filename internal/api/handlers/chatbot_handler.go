package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Gajendran57/GoalGrid/internal/api/dto"
	"github.com/Gajendran57/GoalGrid/internal/api/middleware"
	"github.com/Gajendran57/GoalGrid/internal/domain/chatbot"
	"github.com/Gajendran57/GoalGrid/internal/domain/user"
	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// ChatbotHandler handles Telegram link management and the bot webhook
type ChatbotHandler struct {
	service       chatbot.Service
	webhookSecret string
}

// NewChatbotHandler creates a new ChatbotHandler instance
func NewChatbotHandler(service chatbot.Service, webhookSecret string) *ChatbotHandler {
	return &ChatbotHandler{
		service:       service,
		webhookSecret: webhookSecret,
	}
}

// CreateLinkCode godoc
// @Summary Issue a Telegram link code
// @Description Issue a one-time code the user sends to the bot with /start to attach their chat
// @Tags chatbot
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.LinkCodeResponse "Code issued"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 503 {object} map[string]string "Bot disabled"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/chatbot/link [post]
func (h *ChatbotHandler) CreateLinkCode(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	code, ttl, err := h.service.IssueLinkCode(c.Request.Context(), userID)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, chatbot.ErrBotDisabled) {
			statusCode = http.StatusServiceUnavailable
		}
		c.JSON(statusCode, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": dto.LinkCodeResponse{
		Code:      code,
		ExpiresIn: int(ttl.Seconds()),
		Hint:      fmt.Sprintf("Send /start %s to the bot", code),
	}})
}

// Unlink godoc
// @Summary Unlink the Telegram chat
// @Description Detach the Telegram chat from the authenticated account
// @Tags chatbot
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string "Chat unlinked"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/chatbot/link [delete]
func (h *ChatbotHandler) Unlink(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	if err := h.service.Unlink(c.Request.Context(), userID); err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, user.ErrUserNotFound) {
			statusCode = http.StatusNotFound
		}
		c.JSON(statusCode, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"status": "unlinked"}})
}

// Webhook godoc
// @Summary Telegram webhook
// @Description Receive one Telegram update; the path secret stands in for authentication
// @Tags chatbot
// @Accept json
// @Produce json
// @Param secret path string true "Webhook secret from configuration"
// @Success 200 {object} map[string]bool "Update accepted"
// @Failure 404 {object} map[string]string "Unknown secret"
// @Router /api/chatbot/webhook/{secret} [post]
func (h *ChatbotHandler) Webhook(c *gin.Context) {
	if h.webhookSecret == "" || c.Param("secret") != h.webhookSecret {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	var update tgbotapi.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed update"})
		return
	}

	// Telegram retries on non-200; failures are logged and swallowed so
	// a poison update cannot wedge the webhook.
	if err := h.service.HandleUpdate(c.Request.Context(), update); err != nil {
		log.Errorf("Webhook update handling failed: %v", err)
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
