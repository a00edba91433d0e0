package habits

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Gajendran57/GoalGrid/internal/infrastructure/persistence/postgres/connection"
)

var (
	ErrHabitNotFound  = errors.New("habit not found")
	ErrRecordNotFound = errors.New("record not found")
	ErrInvalidInput   = errors.New("invalid input")
)

// HabitFilter defines the filtering options for habits
type HabitFilter struct {
	UserID   *uuid.UUID
	Status   *HabitStatus
	Category *string
	Page     int
	PageSize int
}

// RecordFilter defines the filtering options for habit records
type RecordFilter struct {
	UserID        uuid.UUID
	HabitID       *uuid.UUID
	StartDate     *time.Time
	EndDate       *time.Time
	CompletedOnly bool
	Limit         int
}

// Repository defines the interface for habit persistence operations.
// Record dates are normalized to bare UTC calendar dates on every
// write and read so nothing downstream sees a time component.
type Repository interface {
	Create(ctx context.Context, habit *Habit) error
	FindByID(ctx context.Context, id, userID uuid.UUID) (*Habit, error)
	FindAll(ctx context.Context, filter HabitFilter) ([]Habit, int64, error)
	FindActive(ctx context.Context, userID uuid.UUID) ([]Habit, error)
	FindActiveByName(ctx context.Context, userID uuid.UUID, name string) (*Habit, error)
	Update(ctx context.Context, habit *Habit) error
	SetStatus(ctx context.Context, id, userID uuid.UUID, status HabitStatus) error

	UpsertRecord(ctx context.Context, record *HabitRecord) error
	FindRecords(ctx context.Context, filter RecordFilter) ([]HabitRecord, error)
	FindRecordsByDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]HabitRecord, error)
	FindCompletedRecords(ctx context.Context, habitID, userID uuid.UUID, limit int) ([]HabitRecord, error)
	HasRecordOn(ctx context.Context, habitID uuid.UUID, date time.Time) (bool, error)

	CreateEvent(ctx context.Context, event *HabitEvent) error
	FindEvents(ctx context.Context, habitID, userID uuid.UUID, limit int) ([]HabitEvent, error)

	FindDueReminders(ctx context.Context, hhmm string, today time.Time) ([]Habit, error)
}

type repository struct {
	db *connection.Database
}

func NewRepository(db *connection.Database) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, habit *Habit) error {
	return r.db.WithContext(ctx).Create(habit).Error
}

func (r *repository) FindByID(ctx context.Context, id, userID uuid.UUID) (*Habit, error) {
	var habit Habit
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&habit)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrHabitNotFound
		}
		return nil, result.Error
	}
	return &habit, nil
}

func (r *repository) FindAll(ctx context.Context, filter HabitFilter) ([]Habit, int64, error) {
	var habitList []Habit
	var total int64
	query := r.db.WithContext(ctx).Model(&Habit{})

	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.PageSize == 0 {
		filter.PageSize = 1000
	}

	err := query.Order("created_at ASC").
		Offset(filter.Page * filter.PageSize).
		Limit(filter.PageSize).
		Find(&habitList).Error
	if err != nil {
		return nil, 0, err
	}

	return habitList, total, nil
}

func (r *repository) FindActive(ctx context.Context, userID uuid.UUID) ([]Habit, error) {
	var habitList []Habit
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, HabitStatusActive).
		Order("created_at ASC").
		Find(&habitList).Error
	return habitList, err
}

func (r *repository) FindActiveByName(ctx context.Context, userID uuid.UUID, name string) (*Habit, error) {
	var habit Habit
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ? AND LOWER(name) = LOWER(?)", userID, HabitStatusActive, name).
		First(&habit)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrHabitNotFound
		}
		return nil, result.Error
	}
	return &habit, nil
}

func (r *repository) Update(ctx context.Context, habit *Habit) error {
	result := r.db.WithContext(ctx).Save(habit)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrHabitNotFound
	}
	return nil
}

func (r *repository) SetStatus(ctx context.Context, id, userID uuid.UUID, status HabitStatus) error {
	result := r.db.WithContext(ctx).Model(&Habit{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrHabitNotFound
	}
	return nil
}

// UpsertRecord writes one record per (habit, date) atomically. A
// second track on the same date overwrites completed/value/notes in
// place instead of inserting a duplicate.
func (r *repository) UpsertRecord(ctx context.Context, record *HabitRecord) error {
	record.Date = NormalizeDate(record.Date)

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "habit_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"completed", "value", "notes", "updated_at"}),
	}).Create(record).Error
	if err != nil {
		return err
	}

	// Reload so the caller sees the stored row (original id on conflict).
	return r.db.WithContext(ctx).
		Where("habit_id = ? AND date = ?", record.HabitID, record.Date).
		First(record).Error
}

func (r *repository) FindRecords(ctx context.Context, filter RecordFilter) ([]HabitRecord, error) {
	var records []HabitRecord
	query := r.db.WithContext(ctx).Model(&HabitRecord{}).
		Where("user_id = ?", filter.UserID)

	if filter.HabitID != nil {
		query = query.Where("habit_id = ?", *filter.HabitID)
	}
	if filter.StartDate != nil {
		query = query.Where("date >= ?", NormalizeDate(*filter.StartDate))
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", NormalizeDate(*filter.EndDate))
	}
	if filter.CompletedOnly {
		query = query.Where("completed = ?", true)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	if err := query.Order("date DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return normalizeRecords(records), nil
}

func (r *repository) FindRecordsByDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]HabitRecord, error) {
	var records []HabitRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, NormalizeDate(date)).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return normalizeRecords(records), nil
}

func (r *repository) FindCompletedRecords(ctx context.Context, habitID, userID uuid.UUID, limit int) ([]HabitRecord, error) {
	var records []HabitRecord
	query := r.db.WithContext(ctx).
		Where("habit_id = ? AND user_id = ? AND completed = ?", habitID, userID, true).
		Order("date DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return normalizeRecords(records), nil
}

func (r *repository) HasRecordOn(ctx context.Context, habitID uuid.UUID, date time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&HabitRecord{}).
		Where("habit_id = ? AND date = ? AND completed = ?", habitID, NormalizeDate(date), true).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) CreateEvent(ctx context.Context, event *HabitEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *repository) FindEvents(ctx context.Context, habitID, userID uuid.UUID, limit int) ([]HabitEvent, error) {
	var events []HabitEvent
	if limit <= 0 {
		limit = 50
	}
	err := r.db.WithContext(ctx).
		Where("habit_id = ? AND user_id = ?", habitID, userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&events).Error
	return events, err
}

// FindDueReminders returns active habits whose reminder matches the
// given wall-clock minute and that have no completed record today.
func (r *repository) FindDueReminders(ctx context.Context, hhmm string, today time.Time) ([]Habit, error) {
	var habitList []Habit
	err := r.db.WithContext(ctx).
		Where("status = ? AND reminder_enabled = ? AND reminder_time = ?", HabitStatusActive, true, hhmm).
		Where("NOT EXISTS (SELECT 1 FROM habit_records hr WHERE hr.habit_id = habits.id AND hr.date = ? AND hr.completed = ?)",
			NormalizeDate(today), true).
		Find(&habitList).Error
	return habitList, err
}

// normalizeRecords pins every date to a bare UTC calendar date and
// drops rows whose date could not be decoded, so one corrupt row
// cannot poison streaks or analytics.
func normalizeRecords(records []HabitRecord) []HabitRecord {
	out := records[:0]
	for _, rec := range records {
		if rec.Date.IsZero() {
			continue
		}
		rec.Date = NormalizeDate(rec.Date)
		out = append(out, rec)
	}
	return out
}
