package handlers

import (
	"net/http"

	"github.com/Gajendran57/GoalGrid/internal/api/middleware"
	"github.com/Gajendran57/GoalGrid/internal/domain/habits"
	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the today view
type DashboardHandler struct {
	service habits.Service
}

// NewDashboardHandler creates a new DashboardHandler instance
func NewDashboardHandler(service habits.Service) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// GetDashboard godoc
// @Summary Get the dashboard
// @Description Get every active habit with its completion state for today plus summary stats
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} habits.Dashboard "Dashboard retrieved successfully"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	dashboard, err := h.service.GetDashboard(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": dashboard})
}
