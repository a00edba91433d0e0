package transfer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Gajendran57/GoalGrid/internal/domain/habits"
	"github.com/Gajendran57/GoalGrid/internal/infrastructure/cache"
)

var (
	// ErrUnsupportedVersion is returned for snapshots written by a
	// newer format than this build understands.
	ErrUnsupportedVersion = errors.New("unsupported snapshot version")
	// ErrEmptySnapshot is returned when an import carries no habits
	ErrEmptySnapshot = errors.New("snapshot contains no habits")
)

// Service moves complete habit datasets in and out of an account
type Service interface {
	Export(ctx context.Context, userID uuid.UUID) (*Snapshot, error)
	Import(ctx context.Context, userID uuid.UUID, snapshot *Snapshot) (*ImportSummary, error)
}

type service struct {
	repo   habits.Repository
	redis  *cache.RedisClient
	logger *zap.Logger
}

func NewService(repo habits.Repository, redis *cache.RedisClient, logger *zap.Logger) Service {
	return &service{
		repo:   repo,
		redis:  redis,
		logger: logger,
	}
}

// Export serializes every habit (archived included) and every record
// the user owns. Dates leave as bare YYYY-MM-DD strings.
func (s *service) Export(ctx context.Context, userID uuid.UUID) (*Snapshot, error) {
	habitList, _, err := s.repo.FindAll(ctx, habits.HabitFilter{UserID: &userID})
	if err != nil {
		return nil, fmt.Errorf("loading habits: %w", err)
	}

	records, err := s.repo.FindRecords(ctx, habits.RecordFilter{UserID: userID})
	if err != nil {
		return nil, fmt.Errorf("loading records: %w", err)
	}

	snapshot := &Snapshot{
		Version:    SnapshotVersion,
		ExportedAt: time.Now().UTC(),
		Habits:     make([]HabitExport, 0, len(habitList)),
		Records:    make([]RecordExport, 0, len(records)),
	}

	for _, h := range habitList {
		snapshot.Habits = append(snapshot.Habits, HabitExport{
			ID:              h.ID.String(),
			Name:            h.Name,
			Description:     h.Description,
			HabitType:       string(h.HabitType),
			TargetValue:     h.TargetValue,
			TargetUnit:      h.TargetUnit,
			Frequency:       string(h.Frequency),
			Category:        h.Category,
			Color:           h.Color,
			ReminderEnabled: h.ReminderEnabled,
			ReminderTime:    h.ReminderTime,
			Status:          string(h.Status),
		})
	}

	for _, r := range records {
		snapshot.Records = append(snapshot.Records, RecordExport{
			HabitID:   r.HabitID.String(),
			Date:      habits.FormatDate(r.Date),
			Completed: r.Completed,
			Value:     r.Value,
			Notes:     r.Notes,
		})
	}

	s.logger.Info("Exported habit snapshot",
		zap.String("user_id", userID.String()),
		zap.Int("habits", len(snapshot.Habits)),
		zap.Int("records", len(snapshot.Records)))

	return snapshot, nil
}

// Import recreates the snapshot under the given user with fresh ids.
// Records pointing at unknown habits or carrying unreadable dates are
// skipped and counted, never fatal. Duplicate (habit, date) pairs
// collapse through the upsert, last entry wins.
func (s *service) Import(ctx context.Context, userID uuid.UUID, snapshot *Snapshot) (*ImportSummary, error) {
	if snapshot.Version > SnapshotVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, snapshot.Version)
	}
	if len(snapshot.Habits) == 0 {
		return nil, ErrEmptySnapshot
	}

	summary := &ImportSummary{}
	idMap := make(map[string]uuid.UUID, len(snapshot.Habits))

	for _, h := range snapshot.Habits {
		habit := s.habitFromExport(userID, h)
		if err := s.repo.Create(ctx, habit); err != nil {
			return summary, fmt.Errorf("creating habit %q: %w", h.Name, err)
		}
		if h.ID != "" {
			idMap[h.ID] = habit.ID
		}
		summary.HabitsImported++
	}

	for _, r := range snapshot.Records {
		habitID, ok := idMap[r.HabitID]
		if !ok {
			summary.RecordsSkipped++
			continue
		}

		date, err := habits.ParseFlexibleDate(r.Date)
		if err != nil {
			s.logger.Warn("Skipping record with unreadable date",
				zap.String("habit_id", r.HabitID),
				zap.String("date", r.Date))
			summary.RecordsSkipped++
			continue
		}

		record := &habits.HabitRecord{
			ID:        uuid.New(),
			HabitID:   habitID,
			UserID:    userID,
			Date:      date,
			Completed: r.Completed,
			Value:     r.Value,
			Notes:     r.Notes,
		}
		if err := s.repo.UpsertRecord(ctx, record); err != nil {
			return summary, fmt.Errorf("importing record for habit %s: %w", r.HabitID, err)
		}
		summary.RecordsImported++
	}

	if s.redis != nil {
		if err := s.redis.InvalidateUserCache(ctx, userID.String()); err != nil {
			s.logger.Error("Failed to invalidate user cache after import",
				zap.String("user_id", userID.String()), zap.Error(err))
		}
	}

	s.logger.Info("Imported habit snapshot",
		zap.String("user_id", userID.String()),
		zap.Int("habits", summary.HabitsImported),
		zap.Int("records", summary.RecordsImported),
		zap.Int("skipped", summary.RecordsSkipped))

	return summary, nil
}

// habitFromExport maps one exported definition onto a new habit. Enum
// fields fall back to their defaults rather than failing the import.
func (s *service) habitFromExport(userID uuid.UUID, h HabitExport) *habits.Habit {
	habitType := habits.HabitType(h.HabitType)
	if !habits.ValidHabitType(habitType) {
		habitType = habits.HabitTypeYesNo
	}
	frequency := habits.HabitFrequency(h.Frequency)
	if !habits.ValidFrequency(frequency) {
		frequency = habits.FrequencyDaily
	}
	status := habits.HabitStatus(h.Status)
	if status != habits.HabitStatusActive && status != habits.HabitStatusArchived {
		status = habits.HabitStatusActive
	}
	reminderTime := h.ReminderTime
	if reminderTime != "" {
		if _, err := time.Parse("15:04", reminderTime); err != nil {
			reminderTime = ""
		}
	}

	return &habits.Habit{
		ID:              uuid.New(),
		UserID:          userID,
		Name:            h.Name,
		Description:     h.Description,
		HabitType:       habitType,
		TargetValue:     h.TargetValue,
		TargetUnit:      h.TargetUnit,
		Frequency:       frequency,
		Category:        h.Category,
		Color:           h.Color,
		ReminderEnabled: h.ReminderEnabled,
		ReminderTime:    reminderTime,
		Status:          status,
	}
}
