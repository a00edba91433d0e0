package routes

import (
	"time"

	"github.com/Gajendran57/GoalGrid/internal/api/handlers"
	"github.com/Gajendran57/GoalGrid/internal/api/middleware"
	"github.com/gin-gonic/gin"
)

type DashboardRoutes struct {
	handler   *handlers.DashboardHandler
	jwtSecret string
}

func NewDashboardRoutes(handler *handlers.DashboardHandler, jwtSecret string) *DashboardRoutes {
	return &DashboardRoutes{
		handler:   handler,
		jwtSecret: jwtSecret,
	}
}

// RegisterRoutes registers the dashboard route. The short TTL is a
// backstop; tracking and habit writes wipe the entry immediately.
func (d *DashboardRoutes) RegisterRoutes(router *gin.Engine, cache *middleware.CacheMiddleware) {
	dashboard := router.Group("/api/dashboard")
	dashboard.Use(middleware.NewAuthMiddleware(d.jwtSecret))

	dashboard.GET("", cache.CachePageWithTTL("dashboard", 5*time.Minute), d.handler.GetDashboard)
}
