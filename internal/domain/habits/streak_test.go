package habits

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func completedOn(habitID uuid.UUID, dates ...time.Time) []HabitRecord {
	records := make([]HabitRecord, 0, len(dates))
	for _, d := range dates {
		records = append(records, HabitRecord{
			ID:        uuid.New(),
			HabitID:   habitID,
			Date:      d,
			Completed: true,
		})
	}
	return records
}

func TestComputeStreak(t *testing.T) {
	today := day(2025, 3, 15)
	habitID := uuid.New()

	tests := []struct {
		name     string
		records  []HabitRecord
		expected StreakResult
	}{
		{
			name:     "no records",
			records:  nil,
			expected: StreakResult{},
		},
		{
			name:     "only today",
			records:  completedOn(habitID, today),
			expected: StreakResult{Current: 1, Best: 1, TotalCompletions: 1},
		},
		{
			name: "three consecutive days ending today",
			records: completedOn(habitID,
				day(2025, 3, 13), day(2025, 3, 14), today),
			expected: StreakResult{Current: 3, Best: 3, TotalCompletions: 3},
		},
		{
			name: "run ending yesterday yields no current streak",
			records: completedOn(habitID,
				day(2025, 3, 13), day(2025, 3, 14)),
			expected: StreakResult{Current: 0, Best: 2, TotalCompletions: 2},
		},
		{
			name: "best run longer than current",
			records: completedOn(habitID,
				// current run: 14th and 15th
				day(2025, 3, 14), today,
				// older run of five: 5th through 9th
				day(2025, 3, 5), day(2025, 3, 6), day(2025, 3, 7),
				day(2025, 3, 8), day(2025, 3, 9)),
			expected: StreakResult{Current: 2, Best: 5, TotalCompletions: 7},
		},
		{
			name: "unsorted input",
			records: completedOn(habitID,
				today, day(2025, 3, 13), day(2025, 3, 14)),
			expected: StreakResult{Current: 3, Best: 3, TotalCompletions: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ComputeStreak(tt.records, today)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestComputeStreakIgnoresIncompleteRecords(t *testing.T) {
	today := day(2025, 3, 15)
	habitID := uuid.New()

	records := completedOn(habitID, today, day(2025, 3, 14))
	records = append(records, HabitRecord{
		ID:        uuid.New(),
		HabitID:   habitID,
		Date:      day(2025, 3, 13),
		Completed: false,
	})

	result := ComputeStreak(records, today)
	assert.Equal(t, StreakResult{Current: 2, Best: 2, TotalCompletions: 2}, result)
}

func TestComputeStreakCollapsesDuplicateDates(t *testing.T) {
	today := day(2025, 3, 15)
	habitID := uuid.New()

	records := completedOn(habitID, today, today, day(2025, 3, 14))
	result := ComputeStreak(records, today)

	assert.Equal(t, 2, result.TotalCompletions, "duplicate dates must count once")
	assert.Equal(t, 2, result.Current)
}

func TestComputeStreakNormalizesTimestamps(t *testing.T) {
	today := day(2025, 3, 15)
	habitID := uuid.New()

	// Same calendar days with stray time components and zones.
	loc := time.FixedZone("UTC+5", 5*3600)
	records := []HabitRecord{
		{ID: uuid.New(), HabitID: habitID, Date: time.Date(2025, 3, 15, 9, 30, 0, 0, loc), Completed: true},
		{ID: uuid.New(), HabitID: habitID, Date: time.Date(2025, 3, 14, 23, 59, 59, 0, time.UTC), Completed: true},
	}

	result := ComputeStreak(records, today)
	assert.Equal(t, StreakResult{Current: 2, Best: 2, TotalCompletions: 2}, result)
}

func TestIsMilestone(t *testing.T) {
	assert.True(t, IsMilestone(7))
	assert.True(t, IsMilestone(30))
	assert.True(t, IsMilestone(100))
	assert.True(t, IsMilestone(365))

	assert.False(t, IsMilestone(0))
	assert.False(t, IsMilestone(1))
	assert.False(t, IsMilestone(8))
	assert.False(t, IsMilestone(31))
}
