package routes

import (
	"github.com/Gajendran57/GoalGrid/internal/api/dto"
	"github.com/Gajendran57/GoalGrid/internal/api/handlers"
	"github.com/Gajendran57/GoalGrid/internal/api/middleware"
	"github.com/Gajendran57/GoalGrid/pkg/security/auth"
	"github.com/gin-gonic/gin"
)

type AuthRoutes struct {
	handler     *handlers.AuthHandler
	jwtSecret   string
	rateLimiter auth.RateLimiter
}

func NewAuthRoutes(handler *handlers.AuthHandler, jwtSecret string, rateLimiter auth.RateLimiter) *AuthRoutes {
	return &AuthRoutes{
		handler:     handler,
		jwtSecret:   jwtSecret,
		rateLimiter: rateLimiter,
	}
}

// RegisterRoutes sets up the authentication routes
func (r *AuthRoutes) RegisterRoutes(router *gin.Engine) {
	validation := middleware.NewValidationMiddleware()

	authGroup := router.Group("/api/auth")
	{
		// Public routes with strict rate limiting against credential
		// stuffing
		public := authGroup.Group("")
		public.Use(middleware.RateLimitMiddleware(r.rateLimiter))
		{
			public.POST("/register", validation.ValidateRequest(&dto.RegisterRequest{}), r.handler.Register)
			public.POST("/login", validation.ValidateRequest(&dto.LoginRequest{}), r.handler.Login)
		}

		protected := authGroup.Group("")
		protected.Use(middleware.NewAuthMiddleware(r.jwtSecret))
		{
			protected.GET("/me", r.handler.Me)
		}
	}
}
