package routes

import (
	"time"

	"github.com/Gajendran57/GoalGrid/internal/api/dto"
	"github.com/Gajendran57/GoalGrid/internal/api/handlers"
	"github.com/Gajendran57/GoalGrid/internal/api/middleware"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

type HabitsRoutes struct {
	handler   *handlers.HabitsHandler
	jwtSecret string
}

func NewHabitsRoutes(handler *handlers.HabitsHandler, jwtSecret string) *HabitsRoutes {
	return &HabitsRoutes{
		handler:   handler,
		jwtSecret: jwtSecret,
	}
}

// RegisterRoutes registers all habit routes. Compression runs before
// the cache middleware so cached entries hold plain JSON.
func (h *HabitsRoutes) RegisterRoutes(router *gin.Engine, cache *middleware.CacheMiddleware) {
	validation := middleware.NewValidationMiddleware()

	habits := router.Group("/api/habits")
	habits.Use(middleware.NewAuthMiddleware(h.jwtSecret))

	habits.GET("", gzip.Gzip(gzip.DefaultCompression), cache.CachePageWithTTL("habit_list", 5*time.Minute), h.handler.ListHabits)
	habits.POST("", validation.ValidateRequest(&dto.CreateHabitRequest{}), h.handler.CreateHabit)

	habits.GET("/:id", cache.CacheResponse(), h.handler.GetHabit)
	habits.PUT("/:id", validation.ValidateRequest(&dto.UpdateHabitRequest{}), h.handler.UpdateHabit)
	habits.DELETE("/:id", h.handler.ArchiveHabit)
	habits.POST("/:id/restore", h.handler.RestoreHabit)

	// Tracking and history; records stay uncached so the today view is
	// always fresh after a checkmark
	habits.POST("/:id/track", validation.ValidateRequest(&dto.TrackHabitRequest{}), h.handler.TrackHabit)
	habits.GET("/:id/records", gzip.Gzip(gzip.DefaultCompression), h.handler.GetHabitRecords)
	habits.GET("/:id/events", h.handler.GetHabitEvents)
}
