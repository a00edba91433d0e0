package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateHabitRequest represents the request to create a new habit
type CreateHabitRequest struct {
	Name            string   `json:"name" binding:"required" validate:"required,not_empty" example:"Morning run"`
	Description     string   `json:"description" example:"5km before breakfast"`
	HabitType       string   `json:"habit_type" validate:"omitempty,oneof=yes_no quantifiable time_based" example:"yes_no"`
	TargetValue     *float64 `json:"target_value,omitempty" example:"5"`
	TargetUnit      string   `json:"target_unit,omitempty" example:"km"`
	Frequency       string   `json:"frequency" validate:"omitempty,oneof=daily weekly custom" example:"daily"`
	Category        string   `json:"category" example:"health"`
	Color           string   `json:"color" example:"#8B5CF6"`
	ReminderEnabled bool     `json:"reminder_enabled"`
	ReminderTime    string   `json:"reminder_time" validate:"omitempty,hhmm" example:"07:30"`
}

// UpdateHabitRequest represents a partial update; absent fields keep
// their stored values.
type UpdateHabitRequest struct {
	Name            *string  `json:"name,omitempty"`
	Description     *string  `json:"description,omitempty"`
	HabitType       *string  `json:"habit_type,omitempty" validate:"omitempty,oneof=yes_no quantifiable time_based"`
	TargetValue     *float64 `json:"target_value,omitempty"`
	TargetUnit      *string  `json:"target_unit,omitempty"`
	Frequency       *string  `json:"frequency,omitempty" validate:"omitempty,oneof=daily weekly custom"`
	Category        *string  `json:"category,omitempty"`
	Color           *string  `json:"color,omitempty"`
	ReminderEnabled *bool    `json:"reminder_enabled,omitempty"`
	ReminderTime    *string  `json:"reminder_time,omitempty" validate:"omitempty,hhmm"`
}

// TrackHabitRequest represents one tracking call. Date accepts
// "YYYY-MM-DD" or RFC3339 and defaults to today when absent.
type TrackHabitRequest struct {
	Date      string   `json:"date,omitempty" example:"2025-03-15"`
	Completed bool     `json:"completed"`
	Value     *float64 `json:"value,omitempty" example:"5"`
	Notes     string   `json:"notes,omitempty" example:"felt great"`
}

// HabitResponse represents a habit in API responses
type HabitResponse struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	HabitType       string    `json:"habit_type"`
	TargetValue     *float64  `json:"target_value,omitempty"`
	TargetUnit      string    `json:"target_unit,omitempty"`
	Frequency       string    `json:"frequency"`
	Category        string    `json:"category"`
	Color           string    `json:"color"`
	ReminderEnabled bool      `json:"reminder_enabled"`
	ReminderTime    string    `json:"reminder_time,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// HabitListResponse represents the response for listing habits
type HabitListResponse struct {
	Habits     []HabitResponse `json:"habits"`
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
}

// RecordResponse represents a tracking record in API responses. Date
// is the bare calendar date.
type RecordResponse struct {
	ID        uuid.UUID `json:"id"`
	HabitID   uuid.UUID `json:"habit_id"`
	Date      string    `json:"date" example:"2025-03-15"`
	Completed bool      `json:"completed"`
	Value     *float64  `json:"value,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EventResponse represents an activity trail entry
type EventResponse struct {
	ID        uuid.UUID   `json:"id"`
	HabitID   uuid.UUID   `json:"habit_id"`
	Event     string      `json:"event"`
	Metadata  interface{} `json:"metadata,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}
