package habits

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/Gajendran57/GoalGrid/internal/infrastructure/cache"
	"github.com/Gajendran57/GoalGrid/pkg/broker"
)

var (
	ErrInvalidDateRange = errors.New("invalid date range")
)

// StreakRecordLimit caps how many completed records feed a streak
// computation.
const StreakRecordLimit = 365

// DefaultRecordWindowDays is the records query window when the client
// does not pass one.
const DefaultRecordWindowDays = 30

type Service interface {
	CreateHabit(ctx context.Context, input CreateHabitInput) (*Habit, error)
	GetHabit(ctx context.Context, id, userID uuid.UUID) (*Habit, error)
	GetActiveByName(ctx context.Context, userID uuid.UUID, name string) (*Habit, error)
	ListHabits(ctx context.Context, filter HabitFilter) ([]Habit, int64, error)
	UpdateHabit(ctx context.Context, id, userID uuid.UUID, input UpdateHabitInput) (*Habit, error)
	ArchiveHabit(ctx context.Context, id, userID uuid.UUID) error
	RestoreHabit(ctx context.Context, id, userID uuid.UUID) error

	TrackHabit(ctx context.Context, id, userID uuid.UUID, input TrackHabitInput) (*HabitRecord, error)
	GetHabitRecords(ctx context.Context, id, userID uuid.UUID, days int) ([]HabitRecord, error)
	GetUserRecords(ctx context.Context, userID uuid.UUID, days int) ([]HabitRecord, error)
	GetHabitEvents(ctx context.Context, id, userID uuid.UUID, limit int) ([]HabitEvent, error)

	GetStreaks(ctx context.Context, userID uuid.UUID) ([]HabitStreak, error)
	GetHabitStreak(ctx context.Context, id, userID uuid.UUID) (*HabitStreak, error)
	GetPeriodAnalytics(ctx context.Context, userID uuid.UUID, start, end time.Time) (*PeriodAnalytics, error)
	GetDashboard(ctx context.Context, userID uuid.UUID) (*Dashboard, error)

	DueReminders(ctx context.Context, hhmm string) ([]Habit, error)

	// SetNotifier wires the chat notifier after construction; the
	// chatbot service depends on this service, so it cannot be a
	// constructor argument.
	SetNotifier(n Notifier)
}

type service struct {
	repo     Repository
	redis    *cache.RedisClient
	bus      broker.MessageBroker
	notifier Notifier
	logger   *zap.Logger
}

func NewService(repo Repository, redis *cache.RedisClient, bus broker.MessageBroker, logger *zap.Logger) Service {
	return &service{
		repo:   repo,
		redis:  redis,
		bus:    bus,
		logger: logger,
	}
}

func (s *service) SetNotifier(n Notifier) {
	s.notifier = n
}

func (s *service) CreateHabit(ctx context.Context, input CreateHabitInput) (*Habit, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if input.HabitType == "" {
		input.HabitType = HabitTypeYesNo
	}
	if !ValidHabitType(input.HabitType) {
		return nil, fmt.Errorf("%w: unknown habit type %q", ErrInvalidInput, input.HabitType)
	}
	if input.Frequency == "" {
		input.Frequency = FrequencyDaily
	}
	if !ValidFrequency(input.Frequency) {
		return nil, fmt.Errorf("%w: unknown frequency %q", ErrInvalidInput, input.Frequency)
	}
	if input.ReminderTime != "" {
		if _, err := time.Parse("15:04", input.ReminderTime); err != nil {
			return nil, fmt.Errorf("%w: reminder time must be HH:MM", ErrInvalidInput)
		}
	}

	habit := &Habit{
		ID:              uuid.New(),
		UserID:          input.UserID,
		Name:            input.Name,
		Description:     input.Description,
		HabitType:       input.HabitType,
		TargetValue:     input.TargetValue,
		TargetUnit:      input.TargetUnit,
		Frequency:       input.Frequency,
		Category:        input.Category,
		Color:           input.Color,
		ReminderEnabled: input.ReminderEnabled,
		ReminderTime:    input.ReminderTime,
		Status:          HabitStatusActive,
	}

	if err := s.repo.Create(ctx, habit); err != nil {
		return nil, err
	}

	s.recordEvent(ctx, habit, EventHabitCreated, map[string]interface{}{
		"name":       habit.Name,
		"habit_type": habit.HabitType,
	})
	s.invalidateCaches(ctx, habit.UserID)
	s.publishActivity(ctx, habit, string(EventHabitCreated), "")

	return habit, nil
}

func (s *service) GetHabit(ctx context.Context, id, userID uuid.UUID) (*Habit, error) {
	return s.repo.FindByID(ctx, id, userID)
}

func (s *service) GetActiveByName(ctx context.Context, userID uuid.UUID, name string) (*Habit, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: habit name is required", ErrInvalidInput)
	}
	return s.repo.FindActiveByName(ctx, userID, name)
}

func (s *service) ListHabits(ctx context.Context, filter HabitFilter) ([]Habit, int64, error) {
	return s.repo.FindAll(ctx, filter)
}

func (s *service) UpdateHabit(ctx context.Context, id, userID uuid.UUID, input UpdateHabitInput) (*Habit, error) {
	habit, err := s.repo.FindByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	// Track if anything changed
	changed := false

	if input.Name != nil && habit.Name != *input.Name {
		habit.Name = *input.Name
		changed = true
	}
	if input.Description != nil && habit.Description != *input.Description {
		habit.Description = *input.Description
		changed = true
	}
	if input.HabitType != nil && habit.HabitType != *input.HabitType {
		if !ValidHabitType(*input.HabitType) {
			return nil, fmt.Errorf("%w: unknown habit type %q", ErrInvalidInput, *input.HabitType)
		}
		habit.HabitType = *input.HabitType
		changed = true
	}
	if input.TargetValue != nil {
		if habit.TargetValue == nil || *habit.TargetValue != *input.TargetValue {
			habit.TargetValue = input.TargetValue
			changed = true
		}
	}
	if input.TargetUnit != nil && habit.TargetUnit != *input.TargetUnit {
		habit.TargetUnit = *input.TargetUnit
		changed = true
	}
	if input.Frequency != nil && habit.Frequency != *input.Frequency {
		if !ValidFrequency(*input.Frequency) {
			return nil, fmt.Errorf("%w: unknown frequency %q", ErrInvalidInput, *input.Frequency)
		}
		habit.Frequency = *input.Frequency
		changed = true
	}
	if input.Category != nil && habit.Category != *input.Category {
		habit.Category = *input.Category
		changed = true
	}
	if input.Color != nil && habit.Color != *input.Color {
		habit.Color = *input.Color
		changed = true
	}
	if input.ReminderEnabled != nil && habit.ReminderEnabled != *input.ReminderEnabled {
		habit.ReminderEnabled = *input.ReminderEnabled
		changed = true
	}
	if input.ReminderTime != nil && habit.ReminderTime != *input.ReminderTime {
		if *input.ReminderTime != "" {
			if _, err := time.Parse("15:04", *input.ReminderTime); err != nil {
				return nil, fmt.Errorf("%w: reminder time must be HH:MM", ErrInvalidInput)
			}
		}
		habit.ReminderTime = *input.ReminderTime
		changed = true
	}

	if !changed {
		return habit, nil
	}

	if err := s.repo.Update(ctx, habit); err != nil {
		return nil, err
	}
	s.invalidateCaches(ctx, habit.UserID)

	return habit, nil
}

func (s *service) ArchiveHabit(ctx context.Context, id, userID uuid.UUID) error {
	habit, err := s.repo.FindByID(ctx, id, userID)
	if err != nil {
		return err
	}

	if err := s.repo.SetStatus(ctx, id, userID, HabitStatusArchived); err != nil {
		return err
	}

	s.recordEvent(ctx, habit, EventHabitArchived, map[string]interface{}{"name": habit.Name})
	s.invalidateCaches(ctx, userID)
	s.publishActivity(ctx, habit, string(EventHabitArchived), "")

	return nil
}

func (s *service) RestoreHabit(ctx context.Context, id, userID uuid.UUID) error {
	habit, err := s.repo.FindByID(ctx, id, userID)
	if err != nil {
		return err
	}

	if err := s.repo.SetStatus(ctx, id, userID, HabitStatusActive); err != nil {
		return err
	}

	s.recordEvent(ctx, habit, EventHabitRestored, map[string]interface{}{"name": habit.Name})
	s.invalidateCaches(ctx, userID)
	s.publishActivity(ctx, habit, string(EventHabitRestored), "")

	return nil
}

// TrackHabit records one completion entry per (habit, date). A second
// call on the same date overwrites the stored values. Archived habits
// still accept records so historical backfill keeps working.
func (s *service) TrackHabit(ctx context.Context, id, userID uuid.UUID, input TrackHabitInput) (*HabitRecord, error) {
	habit, err := s.repo.FindByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	date := input.Date
	if date.IsZero() {
		date = Today()
	}
	date = NormalizeDate(date)

	record := &HabitRecord{
		ID:        uuid.New(),
		HabitID:   habit.ID,
		UserID:    userID,
		Date:      date,
		Completed: input.Completed,
		Value:     input.Value,
		Notes:     input.Notes,
	}

	if err := s.repo.UpsertRecord(ctx, record); err != nil {
		return nil, err
	}

	s.recordEvent(ctx, habit, EventHabitTracked, map[string]interface{}{
		"date":      FormatDate(date),
		"completed": input.Completed,
		"value":     input.Value,
	})

	if input.Completed {
		s.checkMilestone(ctx, habit, userID)
	}

	s.invalidateCaches(ctx, userID)
	s.publishActivity(ctx, habit, string(EventHabitTracked), FormatDate(date))

	return record, nil
}

// checkMilestone recomputes the current streak after a completion and
// fires a milestone event when it lands exactly on a milestone length.
func (s *service) checkMilestone(ctx context.Context, habit *Habit, userID uuid.UUID) {
	records, err := s.repo.FindCompletedRecords(ctx, habit.ID, userID, StreakRecordLimit)
	if err != nil {
		s.logger.Error("Failed to load records for milestone check",
			zap.String("habit_id", habit.ID.String()), zap.Error(err))
		return
	}

	streak := ComputeStreak(records, Today())
	if !IsMilestone(streak.Current) {
		return
	}

	s.recordEvent(ctx, habit, EventMilestone, map[string]interface{}{
		"name":        habit.Name,
		"streak_days": streak.Current,
	})

	if s.notifier != nil {
		if err := s.notifier.NotifyMilestone(ctx, userID, habit, streak.Current); err != nil {
			s.logger.Error("Failed to send milestone notification",
				zap.String("habit_id", habit.ID.String()), zap.Error(err))
		}
	}
}

func (s *service) GetHabitRecords(ctx context.Context, id, userID uuid.UUID, days int) ([]HabitRecord, error) {
	if _, err := s.repo.FindByID(ctx, id, userID); err != nil {
		return nil, err
	}

	start := Today().AddDate(0, 0, -clampWindow(days))
	return s.repo.FindRecords(ctx, RecordFilter{
		UserID:    userID,
		HabitID:   &id,
		StartDate: &start,
	})
}

func (s *service) GetUserRecords(ctx context.Context, userID uuid.UUID, days int) ([]HabitRecord, error) {
	start := Today().AddDate(0, 0, -clampWindow(days))
	return s.repo.FindRecords(ctx, RecordFilter{
		UserID:    userID,
		StartDate: &start,
	})
}

func (s *service) GetHabitEvents(ctx context.Context, id, userID uuid.UUID, limit int) ([]HabitEvent, error) {
	if _, err := s.repo.FindByID(ctx, id, userID); err != nil {
		return nil, err
	}
	return s.repo.FindEvents(ctx, id, userID, limit)
}

func (s *service) GetStreaks(ctx context.Context, userID uuid.UUID) ([]HabitStreak, error) {
	habitList, err := s.repo.FindActive(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := Today()
	streaks := make([]HabitStreak, 0, len(habitList))
	for _, h := range habitList {
		records, err := s.repo.FindCompletedRecords(ctx, h.ID, userID, StreakRecordLimit)
		if err != nil {
			return nil, err
		}
		streaks = append(streaks, HabitStreak{
			HabitID:      h.ID,
			Name:         h.Name,
			Color:        h.Color,
			StreakResult: ComputeStreak(records, today),
		})
	}

	return streaks, nil
}

func (s *service) GetHabitStreak(ctx context.Context, id, userID uuid.UUID) (*HabitStreak, error) {
	habit, err := s.repo.FindByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	records, err := s.repo.FindCompletedRecords(ctx, habit.ID, userID, StreakRecordLimit)
	if err != nil {
		return nil, err
	}

	return &HabitStreak{
		HabitID:      habit.ID,
		Name:         habit.Name,
		Color:        habit.Color,
		StreakResult: ComputeStreak(records, Today()),
	}, nil
}

func (s *service) GetPeriodAnalytics(ctx context.Context, userID uuid.UUID, start, end time.Time) (*PeriodAnalytics, error) {
	start = NormalizeDate(start)
	end = NormalizeDate(end)
	if end.Before(start) {
		return nil, ErrInvalidDateRange
	}

	habitList, err := s.repo.FindActive(ctx, userID)
	if err != nil {
		return nil, err
	}

	records, err := s.repo.FindRecords(ctx, RecordFilter{
		UserID:    userID,
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		return nil, err
	}

	analytics := ComputePeriodAnalytics(habitList, records, start, end)
	return &analytics, nil
}

// DueReminders returns active habits with a reminder set for the given
// wall-clock minute that have not been completed today.
func (s *service) DueReminders(ctx context.Context, hhmm string) ([]Habit, error) {
	if _, err := time.Parse("15:04", hhmm); err != nil {
		return nil, fmt.Errorf("%w: reminder time must be HH:MM", ErrInvalidInput)
	}
	return s.repo.FindDueReminders(ctx, hhmm, Today())
}

func (s *service) GetDashboard(ctx context.Context, userID uuid.UUID) (*Dashboard, error) {
	habitList, err := s.repo.FindActive(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := Today()
	todaysRecords, err := s.repo.FindRecordsByDate(ctx, userID, today)
	if err != nil {
		return nil, err
	}

	dashboard := AssembleDashboard(habitList, todaysRecords, today)
	return &dashboard, nil
}

// recordEvent appends to the activity trail; failures are logged and
// never fail the primary operation.
func (s *service) recordEvent(ctx context.Context, habit *Habit, event EventType, metadata map[string]interface{}) {
	var meta datatypes.JSON
	if metadata != nil {
		if raw, err := json.Marshal(metadata); err == nil {
			meta = datatypes.JSON(raw)
		}
	}

	entry := &HabitEvent{
		ID:       uuid.New(),
		UserID:   habit.UserID,
		HabitID:  habit.ID,
		Event:    event,
		Metadata: meta,
	}
	if err := s.repo.CreateEvent(ctx, entry); err != nil {
		s.logger.Error("Failed to record habit event",
			zap.String("habit_id", habit.ID.String()),
			zap.String("event", string(event)),
			zap.Error(err))
	}
}

func (s *service) invalidateCaches(ctx context.Context, userID uuid.UUID) {
	if s.redis == nil {
		return
	}
	if err := s.redis.InvalidateUserCache(ctx, userID.String()); err != nil {
		s.logger.Error("Failed to invalidate user cache",
			zap.String("user_id", userID.String()), zap.Error(err))
	}
}

func (s *service) publishActivity(ctx context.Context, habit *Habit, event, date string) {
	if s.bus == nil {
		return
	}
	msg, err := broker.NewActivityMessage(habit.UserID.String(), habit.ID.String(), habit.Name, event, date, nil)
	if err != nil {
		s.logger.Error("Failed to build activity message", zap.Error(err))
		return
	}
	if err := s.bus.Publish(ctx, broker.TopicHabitActivity, msg.Payload, msg.Attributes); err != nil {
		s.logger.Error("Failed to publish habit activity", zap.Error(err))
	}
}

func clampWindow(days int) int {
	if days <= 0 {
		return DefaultRecordWindowDays
	}
	if days > StreakRecordLimit {
		return StreakRecordLimit
	}
	return days
}
