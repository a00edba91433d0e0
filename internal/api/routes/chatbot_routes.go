package routes

import (
	"time"

	"github.com/Gajendran57/GoalGrid/internal/api/handlers"
	"github.com/Gajendran57/GoalGrid/internal/api/middleware"
	"github.com/Gajendran57/GoalGrid/pkg/security/auth"
	"github.com/gin-gonic/gin"
)

type ChatbotRoutes struct {
	handler     *handlers.ChatbotHandler
	jwtSecret   string
	rateLimiter auth.RateLimiter
}

func NewChatbotRoutes(handler *handlers.ChatbotHandler, jwtSecret string, rateLimiter auth.RateLimiter) *ChatbotRoutes {
	return &ChatbotRoutes{
		handler:     handler,
		jwtSecret:   jwtSecret,
		rateLimiter: rateLimiter,
	}
}

// RegisterRoutes registers link management behind auth and the Telegram
// webhook outside it; the webhook authenticates by its path secret.
func (r *ChatbotRoutes) RegisterRoutes(router *gin.Engine) {
	linked := router.Group("/api/chatbot")
	linked.Use(middleware.NewAuthMiddleware(r.jwtSecret))
	{
		linked.POST("/link", middleware.RateLimitMiddleware(r.rateLimiter.WithLimit(10, time.Minute)), r.handler.CreateLinkCode)
		linked.DELETE("/link", r.handler.Unlink)
	}

	router.POST("/api/chatbot/webhook/:secret", r.handler.Webhook)
}
