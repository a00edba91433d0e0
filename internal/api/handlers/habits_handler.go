package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Gajendran57/GoalGrid/internal/api/dto"
	"github.com/Gajendran57/GoalGrid/internal/api/middleware"
	"github.com/Gajendran57/GoalGrid/internal/domain/habits"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HabitsHandler handles HTTP requests for habit operations
type HabitsHandler struct {
	service habits.Service
}

// NewHabitsHandler creates a new HabitsHandler instance
func NewHabitsHandler(service habits.Service) *HabitsHandler {
	return &HabitsHandler{service: service}
}

// CreateHabit godoc
// @Summary Create a new habit
// @Description Create a new habit with the provided information
// @Tags habits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param habit body dto.CreateHabitRequest true "Habit creation request"
// @Success 201 {object} dto.HabitResponse "Habit created successfully"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/habits [post]
func (h *HabitsHandler) CreateHabit(c *gin.Context) {
	var req dto.CreateHabitRequest
	validatedModel, exists := c.Get("validated_model")

	if exists {
		if validatedPtr, ok := validatedModel.(*dto.CreateHabitRequest); ok {
			req = *validatedPtr
		} else {
			log.Errorf("Invalid model type: %T, expected *dto.CreateHabitRequest", validatedModel)
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid model type from validation"})
			return
		}
	} else {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	input := habits.CreateHabitInput{
		UserID:          userID,
		Name:            req.Name,
		Description:     req.Description,
		HabitType:       habits.HabitType(req.HabitType),
		TargetValue:     req.TargetValue,
		TargetUnit:      req.TargetUnit,
		Frequency:       habits.HabitFrequency(req.Frequency),
		Category:        req.Category,
		Color:           req.Color,
		ReminderEnabled: req.ReminderEnabled,
		ReminderTime:    req.ReminderTime,
	}

	created, err := h.service.CreateHabit(c.Request.Context(), input)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, habits.ErrInvalidInput) {
			statusCode = http.StatusBadRequest
		}
		c.JSON(statusCode, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": HabitToResponse(created)})
}

// ListHabits godoc
// @Summary List habits
// @Description List the authenticated user's habits with status filter and pagination
// @Tags habits
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter" Enums(active, archived, all) default(active)
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(50)
// @Success 200 {object} dto.HabitListResponse "Habits retrieved successfully"
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/habits [get]
func (h *HabitsHandler) ListHabits(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	filter := habits.HabitFilter{UserID: &userID}

	switch status := c.DefaultQuery("status", "active"); status {
	case "all":
		// no status constraint
	case string(habits.HabitStatusActive), string(habits.HabitStatusArchived):
		habitStatus := habits.HabitStatus(status)
		filter.Status = &habitStatus
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be active, archived or all"})
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "50"))
	if err != nil || pageSize < 1 || pageSize > 200 {
		pageSize = 50
	}
	filter.Page = page
	filter.PageSize = pageSize

	list, total, err := h.service.ListHabits(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": dto.HabitListResponse{
		Habits:     HabitsToResponse(list),
		TotalCount: total,
		Page:       page,
		PageSize:   pageSize,
	}})
}

// GetHabit godoc
// @Summary Get a habit by ID
// @Description Get detailed information about a specific habit
// @Tags habits
// @Produce json
// @Security BearerAuth
// @Param id path string true "Habit ID" format(uuid)
// @Success 200 {object} dto.HabitResponse "Habit details retrieved successfully"
// @Failure 400 {object} map[string]string "Invalid habit ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Habit not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/habits/{id} [get]
func (h *HabitsHandler) GetHabit(c *gin.Context) {
	id, userID, ok := h.habitParams(c)
	if !ok {
		return
	}

	habit, err := h.service.GetHabit(c.Request.Context(), id, userID)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, habits.ErrHabitNotFound) {
			statusCode = http.StatusNotFound
		}
		c.JSON(statusCode, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": HabitToResponse(habit)})
}

// UpdateHabit godoc
// @Summary Update a habit
// @Description Update a habit; absent fields keep their stored values
// @Tags habits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Habit ID" format(uuid)
// @Param habit body dto.UpdateHabitRequest true "Habit update request"
// @Success 200 {object} dto.HabitResponse "Habit updated successfully"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Habit not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/habits/{id} [put]
func (h *HabitsHandler) UpdateHabit(c *gin.Context) {
	id, userID, ok := h.habitParams(c)
	if !ok {
		return
	}

	var req dto.UpdateHabitRequest
	validatedModel, exists := c.Get("validated_model")

	if exists {
		if validatedPtr, ok := validatedModel.(*dto.UpdateHabitRequest); ok {
			req = *validatedPtr
		} else {
			log.Errorf("Invalid model type: %T, expected *dto.UpdateHabitRequest", validatedModel)
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid model type from validation"})
			return
		}
	} else {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	input := habits.UpdateHabitInput{
		Name:            req.Name,
		Description:     req.Description,
		TargetValue:     req.TargetValue,
		TargetUnit:      req.TargetUnit,
		Category:        req.Category,
		Color:           req.Color,
		ReminderEnabled: req.ReminderEnabled,
		ReminderTime:    req.ReminderTime,
	}
	if req.HabitType != nil {
		habitType := habits.HabitType(*req.HabitType)
		input.HabitType = &habitType
	}
	if req.Frequency != nil {
		frequency := habits.HabitFrequency(*req.Frequency)
		input.Frequency = &frequency
	}

	updated, err := h.service.UpdateHabit(c.Request.Context(), id, userID, input)
	if err != nil {
		statusCode := http.StatusInternalServerError
		switch {
		case errors.Is(err, habits.ErrHabitNotFound):
			statusCode = http.StatusNotFound
		case errors.Is(err, habits.ErrInvalidInput):
			statusCode = http.StatusBadRequest
		}
		c.JSON(statusCode, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": HabitToResponse(updated)})
}

// ArchiveHabit godoc
// @Summary Archive a habit
// @Description Move a habit to the archived state; its records are kept
// @Tags habits
// @Produce json
// @Security BearerAuth
// @Param id path string true "Habit ID" format(uuid)
// @Success 200 {object} map[string]string "Habit archived successfully"
// @Failure 400 {object} map[string]string "Invalid habit ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Habit not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/habits/{id} [delete]
func (h *HabitsHandler) ArchiveHabit(c *gin.Context) {
	id, userID, ok := h.habitParams(c)
	if !ok {
		return
	}

	if err := h.service.ArchiveHabit(c.Request.Context(), id, userID); err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, habits.ErrHabitNotFound) {
			statusCode = http.StatusNotFound
		}
		c.JSON(statusCode, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"status": "archived"}})
}

// RestoreHabit godoc
// @Summary Restore an archived habit
// @Description Move an archived habit back to the active state
// @Tags habits
// @Produce json
// @Security BearerAuth
// @Param id path string true "Habit ID" format(uuid)
// @Success 200 {object} map[string]string "Habit restored successfully"
// @Failure 400 {object} map[string]string "Invalid habit ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Habit not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/habits/{id}/restore [post]
func (h *HabitsHandler) RestoreHabit(c *gin.Context) {
	id, userID, ok := h.habitParams(c)
	if !ok {
		return
	}

	if err := h.service.RestoreHabit(c.Request.Context(), id, userID); err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, habits.ErrHabitNotFound) {
			statusCode = http.StatusNotFound
		}
		c.JSON(statusCode, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"status": "active"}})
}

// TrackHabit godoc
// @Summary Track a habit
// @Description Record completion for a calendar date; one record per habit per date
// @Tags habits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Habit ID" format(uuid)
// @Param record body dto.TrackHabitRequest true "Tracking request"
// @Success 200 {object} dto.RecordResponse "Record upserted successfully"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Habit not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/habits/{id}/track [post]
func (h *HabitsHandler) TrackHabit(c *gin.Context) {
	id, userID, ok := h.habitParams(c)
	if !ok {
		return
	}

	var req dto.TrackHabitRequest
	validatedModel, exists := c.Get("validated_model")

	if exists {
		if validatedPtr, ok := validatedModel.(*dto.TrackHabitRequest); ok {
			req = *validatedPtr
		} else {
			log.Errorf("Invalid model type: %T, expected *dto.TrackHabitRequest", validatedModel)
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid model type from validation"})
			return
		}
	} else {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	input := habits.TrackHabitInput{
		Completed: req.Completed,
		Value:     req.Value,
		Notes:     req.Notes,
	}
	if req.Date != "" {
		date, err := habits.ParseFlexibleDate(req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD or RFC3339"})
			return
		}
		input.Date = date
	}

	record, err := h.service.TrackHabit(c.Request.Context(), id, userID, input)
	if err != nil {
		statusCode := http.StatusInternalServerError
		switch {
		case errors.Is(err, habits.ErrHabitNotFound):
			statusCode = http.StatusNotFound
		case errors.Is(err, habits.ErrInvalidInput):
			statusCode = http.StatusBadRequest
		}
		c.JSON(statusCode, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": RecordToResponse(record)})
}

// GetHabitRecords godoc
// @Summary Get records for a habit
// @Description Get tracking records for a habit within a trailing day window, newest first
// @Tags habits
// @Produce json
// @Security BearerAuth
// @Param id path string true "Habit ID" format(uuid)
// @Param days query int false "Window size in days" default(30)
// @Success 200 {array} dto.RecordResponse "Records retrieved successfully"
// @Failure 400 {object} map[string]string "Invalid habit ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Habit not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/habits/{id}/records [get]
func (h *HabitsHandler) GetHabitRecords(c *gin.Context) {
	id, userID, ok := h.habitParams(c)
	if !ok {
		return
	}

	records, err := h.service.GetHabitRecords(c.Request.Context(), id, userID, parseDaysQuery(c))
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, habits.ErrHabitNotFound) {
			statusCode = http.StatusNotFound
		}
		c.JSON(statusCode, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": RecordsToResponse(records)})
}

// GetHabitEvents godoc
// @Summary Get the activity trail for a habit
// @Description Get recent activity trail entries for a habit, newest first
// @Tags habits
// @Produce json
// @Security BearerAuth
// @Param id path string true "Habit ID" format(uuid)
// @Param limit query int false "Maximum entries" default(50)
// @Success 200 {array} dto.EventResponse "Events retrieved successfully"
// @Failure 400 {object} map[string]string "Invalid habit ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Habit not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/habits/{id}/events [get]
func (h *HabitsHandler) GetHabitEvents(c *gin.Context) {
	id, userID, ok := h.habitParams(c)
	if !ok {
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit < 1 || limit > 500 {
		limit = 50
	}

	events, err := h.service.GetHabitEvents(c.Request.Context(), id, userID, limit)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, habits.ErrHabitNotFound) {
			statusCode = http.StatusNotFound
		}
		c.JSON(statusCode, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": EventsToResponse(events)})
}

// habitParams pulls the habit id from the path and the user id from
// the auth middleware, writing the error response itself on failure.
func (h *HabitsHandler) habitParams(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid habit ID"})
		return uuid.Nil, uuid.Nil, false
	}

	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return uuid.Nil, uuid.Nil, false
	}

	return id, userID, true
}

// parseDaysQuery reads the trailing window size shared by the record
// listing endpoints.
func parseDaysQuery(c *gin.Context) int {
	days, err := strconv.Atoi(c.DefaultQuery("days", "30"))
	if err != nil || days < 1 || days > 366 {
		return habits.DefaultRecordWindowDays
	}
	return days
}
