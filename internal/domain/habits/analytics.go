package habits

import (
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
)

// DailyStat is one entry of the per-day completion series.
type DailyStat struct {
	Date           string  `json:"date"`
	Completed      int     `json:"completed"`
	Total          int     `json:"total"`
	CompletionRate float64 `json:"completion_rate"`
}

// CategoryStat aggregates completions per habit category. Total counts
// one opportunity per habit per window day regardless of frequency; a
// carried-over business rule.
type CategoryStat struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

// HabitStat ranks one habit by its success rate over tracked days.
type HabitStat struct {
	HabitID     uuid.UUID `json:"habit_id"`
	Name        string    `json:"name"`
	Color       string    `json:"color"`
	Completed   int       `json:"completed"`
	Total       int       `json:"total"`
	SuccessRate float64   `json:"success_rate"`
}

// AnalyticsSummary rolls the window up to headline numbers.
type AnalyticsSummary struct {
	TotalHabits           int     `json:"total_habits"`
	TotalCompletions      int     `json:"total_completions"`
	AverageCompletionRate float64 `json:"average_completion_rate"`
}

// PeriodAnalytics is the full analytics payload for a date window.
type PeriodAnalytics struct {
	StartDate     string                  `json:"start_date"`
	EndDate       string                  `json:"end_date"`
	DailySeries   []DailyStat             `json:"daily_series"`
	CategoryStats map[string]CategoryStat `json:"category_stats"`
	HabitStats    []HabitStat             `json:"habit_stats"`
	Summary       AnalyticsSummary        `json:"summary"`
}

// UncategorizedKey groups habits that carry no category.
const UncategorizedKey = "uncategorized"

// ComputePeriodAnalytics aggregates a user's records over the closed
// window [start, end]. habits are the user's active habits; records
// are every record in the window regardless of completion state. Days
// without activity still appear in the series.
func ComputePeriodAnalytics(habitList []Habit, records []HabitRecord, start, end time.Time) PeriodAnalytics {
	start = NormalizeDate(start)
	end = NormalizeDate(end)

	analytics := PeriodAnalytics{
		StartDate:     FormatDate(start),
		EndDate:       FormatDate(end),
		DailySeries:   []DailyStat{},
		CategoryStats: make(map[string]CategoryStat),
		HabitStats:    []HabitStat{},
	}
	if end.Before(start) {
		return analytics
	}

	completedByDay := make(map[string]int)
	trackedByHabit := make(map[uuid.UUID]int)
	completedByHabit := make(map[uuid.UUID]int)
	for _, r := range records {
		trackedByHabit[r.HabitID]++
		if r.Completed {
			completedByDay[FormatDate(NormalizeDate(r.Date))]++
			completedByHabit[r.HabitID]++
		}
	}

	windowDays := int(end.Sub(start).Hours()/24) + 1
	total := len(habitList)

	// Per-day series over every calendar day in the window.
	rateSum := 0.0
	completionSum := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := FormatDate(d)
		completed := completedByDay[key]
		rate := Percentage(completed, total)
		analytics.DailySeries = append(analytics.DailySeries, DailyStat{
			Date:           key,
			Completed:      completed,
			Total:          total,
			CompletionRate: rate,
		})
		rateSum += rate
		completionSum += completed
	}

	// Category totals assume one opportunity per habit per day.
	for _, h := range habitList {
		key := h.Category
		if key == "" {
			key = UncategorizedKey
		}
		stat := analytics.CategoryStats[key]
		stat.Total += windowDays
		stat.Completed += completedByHabit[h.ID]
		analytics.CategoryStats[key] = stat
	}

	// Per-habit success over tracked days only, ranked descending.
	for _, h := range habitList {
		tracked := trackedByHabit[h.ID]
		completed := completedByHabit[h.ID]
		analytics.HabitStats = append(analytics.HabitStats, HabitStat{
			HabitID:     h.ID,
			Name:        h.Name,
			Color:       h.Color,
			Completed:   completed,
			Total:       tracked,
			SuccessRate: Percentage(completed, tracked),
		})
	}
	sort.SliceStable(analytics.HabitStats, func(i, j int) bool {
		return analytics.HabitStats[i].SuccessRate > analytics.HabitStats[j].SuccessRate
	})

	avg := 0.0
	if len(analytics.DailySeries) > 0 {
		avg = Round1(rateSum / float64(len(analytics.DailySeries)))
	}
	analytics.Summary = AnalyticsSummary{
		TotalHabits:           total,
		TotalCompletions:      completionSum,
		AverageCompletionRate: avg,
	}

	return analytics
}

// DashboardHabit is one active habit annotated with today's state.
type DashboardHabit struct {
	Habit            Habit        `json:"habit"`
	TodayRecord      *HabitRecord `json:"today_record,omitempty"`
	IsCompletedToday bool         `json:"is_completed_today"`
}

// DashboardStats summarizes today across all active habits.
type DashboardStats struct {
	TotalHabits    int     `json:"total_habits"`
	CompletedToday int     `json:"completed_today"`
	CompletionRate float64 `json:"completion_rate"`
}

// Dashboard is the "today" view for one user.
type Dashboard struct {
	Date   string           `json:"date"`
	Habits []DashboardHabit `json:"habits"`
	Stats  DashboardStats   `json:"stats"`
}

// AssembleDashboard joins active habits with today's records.
func AssembleDashboard(habitList []Habit, todaysRecords []HabitRecord, today time.Time) Dashboard {
	today = NormalizeDate(today)

	recordByHabit := make(map[uuid.UUID]*HabitRecord, len(todaysRecords))
	for i := range todaysRecords {
		r := &todaysRecords[i]
		if NormalizeDate(r.Date).Equal(today) {
			recordByHabit[r.HabitID] = r
		}
	}

	dashboard := Dashboard{
		Date:   FormatDate(today),
		Habits: make([]DashboardHabit, 0, len(habitList)),
	}

	completed := 0
	for _, h := range habitList {
		view := DashboardHabit{Habit: h}
		if rec, ok := recordByHabit[h.ID]; ok {
			view.TodayRecord = rec
			view.IsCompletedToday = rec.Completed
		}
		if view.IsCompletedToday {
			completed++
		}
		dashboard.Habits = append(dashboard.Habits, view)
	}

	dashboard.Stats = DashboardStats{
		TotalHabits:    len(habitList),
		CompletedToday: completed,
		CompletionRate: Percentage(completed, len(habitList)),
	}

	return dashboard
}

// Round1 rounds to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Percentage computes part/whole as a percentage rounded to one
// decimal. A zero denominator yields 0.
func Percentage(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return Round1(float64(part) / float64(whole) * 100)
}
