package handlers

import (
	"github.com/Gajendran57/GoalGrid/internal/api/dto"
	"github.com/Gajendran57/GoalGrid/internal/domain/habits"
	"github.com/Gajendran57/GoalGrid/internal/domain/user"
)

// HabitToResponse converts a habits.Habit domain model to a dto.HabitResponse
func HabitToResponse(habit *habits.Habit) *dto.HabitResponse {
	if habit == nil {
		return nil
	}
	return &dto.HabitResponse{
		ID:              habit.ID,
		UserID:          habit.UserID,
		Name:            habit.Name,
		Description:     habit.Description,
		HabitType:       string(habit.HabitType),
		TargetValue:     habit.TargetValue,
		TargetUnit:      habit.TargetUnit,
		Frequency:       string(habit.Frequency),
		Category:        habit.Category,
		Color:           habit.Color,
		ReminderEnabled: habit.ReminderEnabled,
		ReminderTime:    habit.ReminderTime,
		Status:          string(habit.Status),
		CreatedAt:       habit.CreatedAt,
		UpdatedAt:       habit.UpdatedAt,
	}
}

// HabitsToResponse converts a slice of habits to response DTOs
func HabitsToResponse(list []habits.Habit) []dto.HabitResponse {
	responses := make([]dto.HabitResponse, 0, len(list))
	for i := range list {
		responses = append(responses, *HabitToResponse(&list[i]))
	}
	return responses
}

// RecordToResponse converts a habits.HabitRecord to a dto.RecordResponse
func RecordToResponse(record *habits.HabitRecord) *dto.RecordResponse {
	if record == nil {
		return nil
	}
	return &dto.RecordResponse{
		ID:        record.ID,
		HabitID:   record.HabitID,
		Date:      habits.FormatDate(record.Date),
		Completed: record.Completed,
		Value:     record.Value,
		Notes:     record.Notes,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}
}

// RecordsToResponse converts a slice of records to response DTOs
func RecordsToResponse(records []habits.HabitRecord) []dto.RecordResponse {
	responses := make([]dto.RecordResponse, 0, len(records))
	for i := range records {
		responses = append(responses, *RecordToResponse(&records[i]))
	}
	return responses
}

// EventToResponse converts a habits.HabitEvent to a dto.EventResponse
func EventToResponse(event *habits.HabitEvent) *dto.EventResponse {
	if event == nil {
		return nil
	}
	resp := &dto.EventResponse{
		ID:        event.ID,
		HabitID:   event.HabitID,
		Event:     string(event.Event),
		CreatedAt: event.CreatedAt,
	}
	if len(event.Metadata) > 0 {
		resp.Metadata = event.Metadata
	}
	return resp
}

// EventsToResponse converts a slice of events to response DTOs
func EventsToResponse(events []habits.HabitEvent) []dto.EventResponse {
	responses := make([]dto.EventResponse, 0, len(events))
	for i := range events {
		responses = append(responses, *EventToResponse(&events[i]))
	}
	return responses
}

// UserToResponse converts a user.User to a dto.UserResponse. The
// password hash and raw chat id never leave the server.
func UserToResponse(u *user.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Status:         string(u.Status),
		TelegramLinked: u.IsLinked(),
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}
