package habits

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func record(habitID uuid.UUID, d time.Time, completed bool) HabitRecord {
	return HabitRecord{
		ID:        uuid.New(),
		HabitID:   habitID,
		Date:      d,
		Completed: completed,
	}
}

func TestComputePeriodAnalytics(t *testing.T) {
	start := day(2025, 3, 1)
	end := day(2025, 3, 7)

	exercise := Habit{ID: uuid.New(), Name: "Exercise", Category: "health", Color: "#FF0000"}
	journal := Habit{ID: uuid.New(), Name: "Journal", Color: "#00FF00"}
	habitList := []Habit{exercise, journal}

	records := []HabitRecord{
		record(exercise.ID, day(2025, 3, 1), true),
		record(exercise.ID, day(2025, 3, 2), true),
		record(exercise.ID, day(2025, 3, 3), true),
		record(journal.ID, day(2025, 3, 1), true),
		record(journal.ID, day(2025, 3, 2), false),
	}

	analytics := ComputePeriodAnalytics(habitList, records, start, end)

	assert.Equal(t, "2025-03-01", analytics.StartDate)
	assert.Equal(t, "2025-03-07", analytics.EndDate)

	// Every calendar day appears, even without records.
	assert.Len(t, analytics.DailySeries, 7)
	assert.Equal(t, DailyStat{Date: "2025-03-01", Completed: 2, Total: 2, CompletionRate: 100}, analytics.DailySeries[0])
	assert.Equal(t, DailyStat{Date: "2025-03-02", Completed: 1, Total: 2, CompletionRate: 50}, analytics.DailySeries[1])
	assert.Equal(t, DailyStat{Date: "2025-03-03", Completed: 1, Total: 2, CompletionRate: 50}, analytics.DailySeries[2])
	for i := 3; i < 7; i++ {
		assert.Equal(t, 0, analytics.DailySeries[i].Completed)
		assert.Equal(t, 2, analytics.DailySeries[i].Total)
		assert.Equal(t, 0.0, analytics.DailySeries[i].CompletionRate)
	}

	// Category totals count one opportunity per habit per window day.
	assert.Equal(t, CategoryStat{Completed: 3, Total: 7}, analytics.CategoryStats["health"])
	assert.Equal(t, CategoryStat{Completed: 1, Total: 7}, analytics.CategoryStats[UncategorizedKey])

	// Success rates cover tracked days only, ranked best first.
	assert.Len(t, analytics.HabitStats, 2)
	assert.Equal(t, exercise.ID, analytics.HabitStats[0].HabitID)
	assert.Equal(t, 100.0, analytics.HabitStats[0].SuccessRate)
	assert.Equal(t, journal.ID, analytics.HabitStats[1].HabitID)
	assert.Equal(t, 50.0, analytics.HabitStats[1].SuccessRate)
	assert.Equal(t, 2, analytics.HabitStats[1].Total, "incomplete records still count as tracked")

	assert.Equal(t, 2, analytics.Summary.TotalHabits)
	assert.Equal(t, 4, analytics.Summary.TotalCompletions)
	// Mean of the seven daily rates: (100+50+50+0+0+0+0)/7.
	assert.Equal(t, 28.6, analytics.Summary.AverageCompletionRate)
}

func TestComputePeriodAnalyticsNoHabits(t *testing.T) {
	analytics := ComputePeriodAnalytics(nil, nil, day(2025, 3, 1), day(2025, 3, 3))

	assert.Len(t, analytics.DailySeries, 3)
	for _, stat := range analytics.DailySeries {
		assert.Equal(t, 0, stat.Total)
		assert.Equal(t, 0.0, stat.CompletionRate, "zero habits must not divide by zero")
	}
	assert.Empty(t, analytics.CategoryStats)
	assert.Empty(t, analytics.HabitStats)
	assert.Equal(t, AnalyticsSummary{}, analytics.Summary)
}

func TestComputePeriodAnalyticsInvertedWindow(t *testing.T) {
	analytics := ComputePeriodAnalytics(nil, nil, day(2025, 3, 7), day(2025, 3, 1))

	assert.Empty(t, analytics.DailySeries)
	assert.Empty(t, analytics.HabitStats)
}

func TestComputePeriodAnalyticsSingleDay(t *testing.T) {
	d := day(2025, 3, 5)
	h := Habit{ID: uuid.New(), Name: "Read", Category: "learning"}

	analytics := ComputePeriodAnalytics([]Habit{h}, []HabitRecord{record(h.ID, d, true)}, d, d)

	assert.Len(t, analytics.DailySeries, 1)
	assert.Equal(t, 100.0, analytics.DailySeries[0].CompletionRate)
	assert.Equal(t, CategoryStat{Completed: 1, Total: 1}, analytics.CategoryStats["learning"])
	assert.Equal(t, 100.0, analytics.Summary.AverageCompletionRate)
}

func TestAssembleDashboard(t *testing.T) {
	today := day(2025, 3, 15)

	exercise := Habit{ID: uuid.New(), Name: "Exercise", Status: HabitStatusActive}
	journal := Habit{ID: uuid.New(), Name: "Journal", Status: HabitStatusActive}
	read := Habit{ID: uuid.New(), Name: "Read", Status: HabitStatusActive}

	records := []HabitRecord{
		record(exercise.ID, today, true),
		record(journal.ID, today, false),
		// Stale record from another day must not leak into today.
		record(read.ID, day(2025, 3, 14), true),
	}

	dashboard := AssembleDashboard([]Habit{exercise, journal, read}, records, today)

	assert.Equal(t, "2025-03-15", dashboard.Date)
	assert.Len(t, dashboard.Habits, 3)

	assert.True(t, dashboard.Habits[0].IsCompletedToday)
	assert.NotNil(t, dashboard.Habits[0].TodayRecord)

	assert.False(t, dashboard.Habits[1].IsCompletedToday, "an incomplete record does not complete the day")
	assert.NotNil(t, dashboard.Habits[1].TodayRecord)

	assert.False(t, dashboard.Habits[2].IsCompletedToday)
	assert.Nil(t, dashboard.Habits[2].TodayRecord)

	assert.Equal(t, DashboardStats{TotalHabits: 3, CompletedToday: 1, CompletionRate: 33.3}, dashboard.Stats)
}

func TestAssembleDashboardEmpty(t *testing.T) {
	dashboard := AssembleDashboard(nil, nil, day(2025, 3, 15))

	assert.Empty(t, dashboard.Habits)
	assert.Equal(t, DashboardStats{}, dashboard.Stats)
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, 0.0, Percentage(5, 0))
	assert.Equal(t, 50.0, Percentage(1, 2))
	assert.Equal(t, 33.3, Percentage(1, 3))
	assert.Equal(t, 66.7, Percentage(2, 3))
	assert.Equal(t, 100.0, Percentage(3, 3))
}
