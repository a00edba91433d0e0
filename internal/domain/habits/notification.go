package habits

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Notifier delivers habit messages to a user's linked chat. The
// chatbot package provides the Telegram implementation; a nil notifier
// disables outbound messages.
type Notifier interface {
	NotifyMilestone(ctx context.Context, userID uuid.UUID, habit *Habit, streakDays int) error
	NotifyReminder(ctx context.Context, userID uuid.UUID, habit *Habit) error
}

// MilestoneDays are the streak lengths that trigger a congratulation.
var MilestoneDays = []int{7, 30, 100, 365}

// IsMilestone reports whether the streak just hit a milestone length.
func IsMilestone(streak int) bool {
	for _, m := range MilestoneDays {
		if streak == m {
			return true
		}
	}
	return false
}

// MilestoneMessage renders the congratulation text for a streak milestone.
func MilestoneMessage(habit *Habit, days int) string {
	return fmt.Sprintf("Congratulations! You've kept up \"%s\" for %d days in a row.", habit.Name, days)
}

// ReminderMessage renders the reminder text for an unfinished habit.
func ReminderMessage(habit *Habit) string {
	return fmt.Sprintf("Reminder: don't forget to complete \"%s\" today.", habit.Name)
}
