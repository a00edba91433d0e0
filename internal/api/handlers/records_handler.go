package handlers

import (
	"net/http"

	"github.com/Gajendran57/GoalGrid/internal/api/middleware"
	"github.com/Gajendran57/GoalGrid/internal/domain/habits"
	"github.com/gin-gonic/gin"
)

// RecordsHandler serves the cross-habit record listing
type RecordsHandler struct {
	service habits.Service
}

// NewRecordsHandler creates a new RecordsHandler instance
func NewRecordsHandler(service habits.Service) *RecordsHandler {
	return &RecordsHandler{service: service}
}

// ListRecords godoc
// @Summary List recent records across all habits
// @Description Get the authenticated user's tracking records within a trailing day window, newest first
// @Tags records
// @Produce json
// @Security BearerAuth
// @Param days query int false "Window size in days" default(30)
// @Success 200 {array} dto.RecordResponse "Records retrieved successfully"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/records [get]
func (h *RecordsHandler) ListRecords(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	records, err := h.service.GetUserRecords(c.Request.Context(), userID, parseDaysQuery(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": RecordsToResponse(records)})
}
