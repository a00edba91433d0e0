package transfer

import (
	"time"
)

// SnapshotVersion is written into every export and checked on import
const SnapshotVersion = 1

// Snapshot is a user's complete habit data in portable form. Habit ids
// inside a snapshot are only remap keys; import always mints fresh ones.
type Snapshot struct {
	Version    int            `json:"version"`
	ExportedAt time.Time      `json:"exported_at"`
	Habits     []HabitExport  `json:"habits"`
	Records    []RecordExport `json:"records"`
}

// HabitExport carries one habit definition
type HabitExport struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description,omitempty"`
	HabitType       string   `json:"habit_type"`
	TargetValue     *float64 `json:"target_value,omitempty"`
	TargetUnit      string   `json:"target_unit,omitempty"`
	Frequency       string   `json:"frequency"`
	Category        string   `json:"category,omitempty"`
	Color           string   `json:"color,omitempty"`
	ReminderEnabled bool     `json:"reminder_enabled"`
	ReminderTime    string   `json:"reminder_time,omitempty"`
	Status          string   `json:"status"`
}

// RecordExport carries one completion entry. Date stays a string in the
// wire format; import skips entries it cannot parse.
type RecordExport struct {
	HabitID   string   `json:"habit_id"`
	Date      string   `json:"date"`
	Completed bool     `json:"completed"`
	Value     *float64 `json:"value,omitempty"`
	Notes     string   `json:"notes,omitempty"`
}

// ImportSummary reports what an import actually did
type ImportSummary struct {
	HabitsImported  int `json:"habits_imported"`
	RecordsImported int `json:"records_imported"`
	RecordsSkipped  int `json:"records_skipped"`
}
