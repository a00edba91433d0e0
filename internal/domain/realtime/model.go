package realtime

import (
	"time"
)

// ActivityEvent is one live update pushed to a connected client. Events
// mirror the habit activity trail: creations, archives, restores,
// completions and streak milestones.
type ActivityEvent struct {
	ID        string            `json:"id"`
	UserID    string            `json:"user_id"`
	HabitID   string            `json:"habit_id"`
	HabitName string            `json:"habit_name"`
	Event     string            `json:"event"`
	Date      string            `json:"date,omitempty"`
	Data      map[string]string `json:"data,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}
