package habits

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// HabitType describes how completion of a habit is measured.
type HabitType string

const (
	HabitTypeYesNo        HabitType = "yes_no"
	HabitTypeQuantifiable HabitType = "quantifiable"
	HabitTypeTimeBased    HabitType = "time_based"
)

// HabitFrequency is the cadence a habit is intended to follow.
type HabitFrequency string

const (
	FrequencyDaily  HabitFrequency = "daily"
	FrequencyWeekly HabitFrequency = "weekly"
	FrequencyCustom HabitFrequency = "custom"
)

// HabitStatus is the lifecycle state of a habit. Archiving replaces
// deletion so historical records stay attributable.
type HabitStatus string

const (
	HabitStatusActive   HabitStatus = "active"
	HabitStatusArchived HabitStatus = "archived"
)

// DefaultColor is assigned when a habit is created without one.
const DefaultColor = "#8B5CF6"

type Habit struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID          uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Name            string         `gorm:"size:255;not null" json:"name"`
	Description     string         `gorm:"type:text" json:"description"`
	HabitType       HabitType      `gorm:"size:20;not null;default:'yes_no'" json:"habit_type"`
	TargetValue     *float64       `json:"target_value,omitempty"`
	TargetUnit      string         `gorm:"size:50" json:"target_unit,omitempty"`
	Frequency       HabitFrequency `gorm:"size:20;not null;default:'daily'" json:"frequency"`
	Category        string         `gorm:"size:100;index" json:"category"`
	Color           string         `gorm:"size:20;not null;default:'#8B5CF6'" json:"color"`
	ReminderEnabled bool           `gorm:"not null;default:false" json:"reminder_enabled"`
	ReminderTime    string         `gorm:"size:5" json:"reminder_time,omitempty"` // "HH:MM"
	Status          HabitStatus    `gorm:"size:20;not null;default:'active';index" json:"status"`
	CreatedAt       time.Time      `gorm:"not null;default:current_timestamp" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"not null;default:current_timestamp;autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the Habit model
func (Habit) TableName() string {
	return "habits"
}

// IsActive reports whether the habit is in the active lifecycle state.
func (h *Habit) IsActive() bool {
	return h.Status == HabitStatusActive
}

// HabitRecord is one completion entry for a (habit, calendar date)
// pair. The unique index enforces at most one record per habit per
// date; writes go through an atomic upsert.
type HabitRecord struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	HabitID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_habit_date,priority:1" json:"habit_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_user_date,priority:1" json:"user_id"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:idx_habit_date,priority:2;index:idx_user_date,priority:2" json:"date"`
	Completed bool      `gorm:"not null;default:false" json:"completed"`
	Value     *float64  `json:"value,omitempty"`
	Notes     string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time `gorm:"not null;default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:current_timestamp;autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the HabitRecord model
func (HabitRecord) TableName() string {
	return "habit_records"
}

// EventType classifies entries in the habit activity trail.
type EventType string

const (
	EventHabitCreated  EventType = "created"
	EventHabitArchived EventType = "archived"
	EventHabitRestored EventType = "restored"
	EventHabitTracked  EventType = "tracked"
	EventMilestone     EventType = "milestone"
)

// HabitEvent is an append-only activity trail entry.
type HabitEvent struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	HabitID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"habit_id"`
	Event     EventType      `gorm:"size:30;not null" json:"event"`
	Metadata  datatypes.JSON `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt time.Time      `gorm:"not null;default:current_timestamp" json:"created_at"`
}

// TableName specifies the table name for the HabitEvent model
func (HabitEvent) TableName() string {
	return "habit_events"
}

// CreateHabitInput represents the input for creating a new habit
type CreateHabitInput struct {
	UserID          uuid.UUID
	Name            string
	Description     string
	HabitType       HabitType
	TargetValue     *float64
	TargetUnit      string
	Frequency       HabitFrequency
	Category        string
	Color           string
	ReminderEnabled bool
	ReminderTime    string
}

// UpdateHabitInput represents a partial-field merge update; nil fields
// leave the stored value untouched.
type UpdateHabitInput struct {
	Name            *string
	Description     *string
	HabitType       *HabitType
	TargetValue     *float64
	TargetUnit      *string
	Frequency       *HabitFrequency
	Category        *string
	Color           *string
	ReminderEnabled *bool
	ReminderTime    *string
}

// TrackHabitInput represents one tracking call. Date defaults to today
// when zero.
type TrackHabitInput struct {
	Date      time.Time
	Completed bool
	Value     *float64
	Notes     string
}

// ValidHabitType reports whether t is one of the supported types.
func ValidHabitType(t HabitType) bool {
	switch t {
	case HabitTypeYesNo, HabitTypeQuantifiable, HabitTypeTimeBased:
		return true
	}
	return false
}

// ValidFrequency reports whether f is one of the supported cadences.
func ValidFrequency(f HabitFrequency) bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyCustom:
		return true
	}
	return false
}

// BeforeCreate is called before inserting a new habit
func (h *Habit) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	if h.Color == "" {
		h.Color = DefaultColor
	}
	if h.Status == "" {
		h.Status = HabitStatusActive
	}
	h.CreatedAt = time.Now()
	h.UpdatedAt = time.Now()
	return nil
}

// BeforeUpdate is called before updating a habit
func (h *Habit) BeforeUpdate(tx *gorm.DB) error {
	h.UpdatedAt = time.Now()
	return nil
}

// BeforeCreate is called before inserting a new record
func (r *HabitRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	r.Date = NormalizeDate(r.Date)
	r.CreatedAt = time.Now()
	r.UpdatedAt = time.Now()
	return nil
}

// BeforeCreate is called before inserting a new event
func (e *HabitEvent) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	e.CreatedAt = time.Now()
	return nil
}
