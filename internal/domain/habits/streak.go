package habits

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// StreakResult holds the streak figures for one habit.
type StreakResult struct {
	Current          int `json:"current_streak"`
	Best             int `json:"best_streak"`
	TotalCompletions int `json:"total_completions"`
}

// HabitStreak pairs a habit's identity with its streak figures for
// list responses.
type HabitStreak struct {
	HabitID uuid.UUID `json:"habit_id"`
	Name    string    `json:"name"`
	Color   string    `json:"color"`
	StreakResult
}

// ComputeStreak derives streak figures from a habit's completion
// records. Records may arrive in any order; only completed entries
// count. The current streak walks backward from today and stops at the
// first missing day, so an incomplete today yields 0. The best streak
// is the longest run of calendar-consecutive dates anywhere in the
// history.
func ComputeStreak(records []HabitRecord, today time.Time) StreakResult {
	today = NormalizeDate(today)

	dates := completedDates(records)
	if len(dates) == 0 {
		return StreakResult{}
	}

	result := StreakResult{TotalCompletions: len(dates)}

	// Current streak: descending scan anchored at today.
	desc := make([]time.Time, len(dates))
	copy(desc, dates)
	sort.Slice(desc, func(i, j int) bool { return desc[i].After(desc[j]) })

	cursor := today
	for _, d := range desc {
		if !d.Equal(cursor) {
			break
		}
		result.Current++
		cursor = cursor.AddDate(0, 0, -1)
	}

	// Best streak: longest run of consecutive dates in ascending order.
	asc := dates
	sort.Slice(asc, func(i, j int) bool { return asc[i].Before(asc[j]) })

	run := 1
	best := 1
	for i := 1; i < len(asc); i++ {
		if asc[i].Equal(asc[i-1].AddDate(0, 0, 1)) {
			run++
		} else {
			run = 1
		}
		if run > best {
			best = run
		}
	}
	result.Best = best

	return result
}

// completedDates extracts the unique, normalized dates of completed
// records. Duplicate dates collapse to one entry so an upstream
// invariant breach cannot double-count a day.
func completedDates(records []HabitRecord) []time.Time {
	seen := make(map[time.Time]struct{}, len(records))
	dates := make([]time.Time, 0, len(records))
	for _, r := range records {
		if !r.Completed {
			continue
		}
		d := NormalizeDate(r.Date)
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		dates = append(dates, d)
	}
	return dates
}
