package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Gajendran57/GoalGrid/internal/api/middleware"
	"github.com/Gajendran57/GoalGrid/internal/domain/habits"
	"github.com/gin-gonic/gin"
)

// AnalyticsHandler serves streak and period analytics
type AnalyticsHandler struct {
	service habits.Service
}

// NewAnalyticsHandler creates a new AnalyticsHandler instance
func NewAnalyticsHandler(service habits.Service) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// GetStreaks godoc
// @Summary Get streaks for all active habits
// @Description Get current streak, best streak and total completions per active habit
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {array} habits.HabitStreak "Streaks retrieved successfully"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/analytics/streaks [get]
func (h *AnalyticsHandler) GetStreaks(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	streaks, err := h.service.GetStreaks(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": streaks})
}

// GetPeriodAnalytics godoc
// @Summary Get period analytics
// @Description Get daily series, category totals, per-habit success rates and a summary for a date window
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param start_date query string false "Window start (YYYY-MM-DD), defaults to 29 days ago"
// @Param end_date query string false "Window end (YYYY-MM-DD), defaults to today"
// @Success 200 {object} habits.PeriodAnalytics "Analytics retrieved successfully"
// @Failure 400 {object} map[string]string "Malformed or inverted date window"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/analytics [get]
func (h *AnalyticsHandler) GetPeriodAnalytics(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	end := habits.Today()
	start := end.AddDate(0, 0, -29)

	if raw := c.Query("start_date"); raw != "" {
		parsed, err := time.Parse(habits.DateLayout, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "start_date must be YYYY-MM-DD"})
			return
		}
		start = parsed
	}
	if raw := c.Query("end_date"); raw != "" {
		parsed, err := time.Parse(habits.DateLayout, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must be YYYY-MM-DD"})
			return
		}
		end = parsed
	}

	analytics, err := h.service.GetPeriodAnalytics(c.Request.Context(), userID, start, end)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, habits.ErrInvalidDateRange) {
			statusCode = http.StatusBadRequest
		}
		c.JSON(statusCode, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": analytics})
}
