package chatbot

import (
	"fmt"
	"strings"

	"github.com/Gajendran57/GoalGrid/internal/domain/habits"
)

// Replies are plain text on purpose. Habit names come straight from
// user input, and skipping Telegram parse modes means they never need
// escaping.

const helpText = `Here's what I can do:
/today - your habit checklist for today
/track <habit name> - mark a habit done for today
/streak - current and best streaks per habit
/help - this message`

const welcomeText = "Hi! I'm the GoalGrid bot. Link me to your account by sending " +
	"/start <code> with a link code from the app, then try /today."

const notLinkedText = "This chat isn't linked to a GoalGrid account yet. " +
	"Open the app, request a link code and send me /start <code>."

const invalidCodeText = "That code didn't work. Link codes expire after a few minutes, " +
	"so grab a fresh one from the app and try /start <code> again."

const chatTakenText = "This chat is already linked to another account. " +
	"Unlink it there first, then try again."

const missingTrackArgText = "Tell me which habit to track, like: /track Morning run"

func linkedText(name string) string {
	return fmt.Sprintf("Linked! Nice to meet you, %s. Send /today to see your checklist.", name)
}

func unknownCommandText(command string) string {
	return fmt.Sprintf("I don't know /%s.\n\n%s", command, helpText)
}

// todayText renders a dashboard as a checklist message.
func todayText(dashboard *habits.Dashboard) string {
	if len(dashboard.Habits) == 0 {
		return "You have no active habits yet. Create one in the app and check back."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Today (%s): %d of %d done\n", dashboard.Date, dashboard.Stats.CompletedToday, dashboard.Stats.TotalHabits)
	for _, item := range dashboard.Habits {
		mark := "⬜"
		if item.IsCompletedToday {
			mark = "✅"
		}
		fmt.Fprintf(&b, "%s %s\n", mark, item.Habit.Name)
	}
	if dashboard.Stats.CompletedToday < dashboard.Stats.TotalHabits {
		b.WriteString("\nMark one done with /track <habit name>.")
	}
	return strings.TrimRight(b.String(), "\n")
}

// streaksText renders per-habit streak lines.
func streaksText(list []habits.HabitStreak) string {
	if len(list) == 0 {
		return "No active habits to report streaks for yet."
	}

	var b strings.Builder
	b.WriteString("Your streaks:\n")
	for _, s := range list {
		fmt.Fprintf(&b, "%s: current %d, best %d\n", s.Name, s.Current, s.Best)
	}
	return strings.TrimRight(b.String(), "\n")
}

// trackedText confirms a completion, with the streak when it is worth
// mentioning.
func trackedText(habit *habits.Habit, streak *habits.StreakResult) string {
	if streak != nil && streak.Current > 1 {
		return fmt.Sprintf("Done! %q is checked off for today. That's %d days in a row.", habit.Name, streak.Current)
	}
	return fmt.Sprintf("Done! %q is checked off for today.", habit.Name)
}

// unknownHabitText answers a /track miss with the names that would
// have worked.
func unknownHabitText(name string, available []habits.Habit) string {
	if len(available) == 0 {
		return fmt.Sprintf("I couldn't find an active habit called %q. Create one in the app first.", name)
	}

	names := make([]string, len(available))
	for i, h := range available {
		names[i] = h.Name
	}
	return fmt.Sprintf("I couldn't find an active habit called %q. Your habits: %s. Try /track with one of those names.",
		name, strings.Join(names, ", "))
}
