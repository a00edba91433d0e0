package routes

import (
	"time"

	"github.com/Gajendran57/GoalGrid/internal/api/handlers"
	"github.com/Gajendran57/GoalGrid/internal/api/middleware"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

type AnalyticsRoutes struct {
	handler   *handlers.AnalyticsHandler
	jwtSecret string
}

func NewAnalyticsRoutes(handler *handlers.AnalyticsHandler, jwtSecret string) *AnalyticsRoutes {
	return &AnalyticsRoutes{
		handler:   handler,
		jwtSecret: jwtSecret,
	}
}

// RegisterRoutes registers the analytics routes. Both endpoints are
// read-heavy aggregations, so they sit behind the response cache.
func (a *AnalyticsRoutes) RegisterRoutes(router *gin.Engine, cache *middleware.CacheMiddleware) {
	analytics := router.Group("/api/analytics")
	analytics.Use(middleware.NewAuthMiddleware(a.jwtSecret))

	analytics.GET("", gzip.Gzip(gzip.DefaultCompression), cache.CachePageWithTTL("analytics", 10*time.Minute), a.handler.GetPeriodAnalytics)
	analytics.GET("/streaks", cache.CachePageWithTTL("streaks", 10*time.Minute), a.handler.GetStreaks)
}
