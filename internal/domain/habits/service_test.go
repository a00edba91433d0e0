package habits

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// mockRepository is an in-memory Repository for service tests.
type mockRepository struct {
	habits  map[uuid.UUID]*Habit
	records map[uuid.UUID]map[string]*HabitRecord
	events  []HabitEvent
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		habits:  make(map[uuid.UUID]*Habit),
		records: make(map[uuid.UUID]map[string]*HabitRecord),
	}
}

func (m *mockRepository) Create(ctx context.Context, habit *Habit) error {
	clone := *habit
	m.habits[habit.ID] = &clone
	return nil
}

func (m *mockRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*Habit, error) {
	habit, ok := m.habits[id]
	if !ok || habit.UserID != userID {
		return nil, ErrHabitNotFound
	}
	clone := *habit
	return &clone, nil
}

func (m *mockRepository) FindAll(ctx context.Context, filter HabitFilter) ([]Habit, int64, error) {
	var out []Habit
	for _, h := range m.habits {
		if filter.UserID != nil && h.UserID != *filter.UserID {
			continue
		}
		if filter.Status != nil && h.Status != *filter.Status {
			continue
		}
		if filter.Category != nil && h.Category != *filter.Category {
			continue
		}
		out = append(out, *h)
	}
	return out, int64(len(out)), nil
}

func (m *mockRepository) FindActive(ctx context.Context, userID uuid.UUID) ([]Habit, error) {
	status := HabitStatusActive
	habits, _, err := m.FindAll(ctx, HabitFilter{UserID: &userID, Status: &status})
	return habits, err
}

func (m *mockRepository) FindActiveByName(ctx context.Context, userID uuid.UUID, name string) (*Habit, error) {
	for _, h := range m.habits {
		if h.UserID == userID && h.Status == HabitStatusActive && strings.EqualFold(h.Name, name) {
			clone := *h
			return &clone, nil
		}
	}
	return nil, ErrHabitNotFound
}

func (m *mockRepository) Update(ctx context.Context, habit *Habit) error {
	if _, ok := m.habits[habit.ID]; !ok {
		return ErrHabitNotFound
	}
	clone := *habit
	m.habits[habit.ID] = &clone
	return nil
}

func (m *mockRepository) SetStatus(ctx context.Context, id, userID uuid.UUID, status HabitStatus) error {
	habit, ok := m.habits[id]
	if !ok || habit.UserID != userID {
		return ErrHabitNotFound
	}
	habit.Status = status
	return nil
}

func (m *mockRepository) UpsertRecord(ctx context.Context, record *HabitRecord) error {
	record.Date = NormalizeDate(record.Date)
	key := FormatDate(record.Date)
	if m.records[record.HabitID] == nil {
		m.records[record.HabitID] = make(map[string]*HabitRecord)
	}
	if existing, ok := m.records[record.HabitID][key]; ok {
		existing.Completed = record.Completed
		existing.Value = record.Value
		existing.Notes = record.Notes
		*record = *existing
		return nil
	}
	clone := *record
	m.records[record.HabitID][key] = &clone
	return nil
}

func (m *mockRepository) FindRecords(ctx context.Context, filter RecordFilter) ([]HabitRecord, error) {
	var out []HabitRecord
	for habitID, byDate := range m.records {
		if filter.HabitID != nil && habitID != *filter.HabitID {
			continue
		}
		for _, r := range byDate {
			if r.UserID != filter.UserID {
				continue
			}
			if filter.StartDate != nil && r.Date.Before(*filter.StartDate) {
				continue
			}
			if filter.EndDate != nil && r.Date.After(*filter.EndDate) {
				continue
			}
			if filter.CompletedOnly && !r.Completed {
				continue
			}
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *mockRepository) FindRecordsByDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]HabitRecord, error) {
	date = NormalizeDate(date)
	return m.FindRecords(ctx, RecordFilter{UserID: userID, StartDate: &date, EndDate: &date})
}

func (m *mockRepository) FindCompletedRecords(ctx context.Context, habitID, userID uuid.UUID, limit int) ([]HabitRecord, error) {
	return m.FindRecords(ctx, RecordFilter{UserID: userID, HabitID: &habitID, CompletedOnly: true, Limit: limit})
}

func (m *mockRepository) HasRecordOn(ctx context.Context, habitID uuid.UUID, date time.Time) (bool, error) {
	_, ok := m.records[habitID][FormatDate(NormalizeDate(date))]
	return ok, nil
}

func (m *mockRepository) CreateEvent(ctx context.Context, event *HabitEvent) error {
	m.events = append(m.events, *event)
	return nil
}

func (m *mockRepository) FindEvents(ctx context.Context, habitID, userID uuid.UUID, limit int) ([]HabitEvent, error) {
	var out []HabitEvent
	for _, e := range m.events {
		if e.HabitID == habitID && e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *mockRepository) FindDueReminders(ctx context.Context, hhmm string, today time.Time) ([]Habit, error) {
	var out []Habit
	for _, h := range m.habits {
		if h.Status != HabitStatusActive || !h.ReminderEnabled || h.ReminderTime != hhmm {
			continue
		}
		if rec, ok := m.records[h.ID][FormatDate(NormalizeDate(today))]; ok && rec.Completed {
			continue
		}
		out = append(out, *h)
	}
	return out, nil
}

func (m *mockRepository) eventCount(habitID uuid.UUID, event EventType) int {
	n := 0
	for _, e := range m.events {
		if e.HabitID == habitID && e.Event == event {
			n++
		}
	}
	return n
}

// mockNotifier records notification calls.
type mockNotifier struct {
	milestones []int
}

func (m *mockNotifier) NotifyMilestone(ctx context.Context, userID uuid.UUID, habit *Habit, streakDays int) error {
	m.milestones = append(m.milestones, streakDays)
	return nil
}

func (m *mockNotifier) NotifyReminder(ctx context.Context, userID uuid.UUID, habit *Habit) error {
	return nil
}

func newTestService(repo Repository) Service {
	return NewService(repo, nil, nil, zap.NewNop())
}

func TestCreateHabitValidation(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name    string
		input   CreateHabitInput
		wantErr bool
	}{
		{
			name:    "missing name",
			input:   CreateHabitInput{UserID: userID},
			wantErr: true,
		},
		{
			name:    "unknown habit type",
			input:   CreateHabitInput{UserID: userID, Name: "Run", HabitType: "sometimes"},
			wantErr: true,
		},
		{
			name:    "unknown frequency",
			input:   CreateHabitInput{UserID: userID, Name: "Run", Frequency: "fortnightly"},
			wantErr: true,
		},
		{
			name:    "malformed reminder time",
			input:   CreateHabitInput{UserID: userID, Name: "Run", ReminderTime: "9am"},
			wantErr: true,
		},
		{
			name:    "valid with defaults",
			input:   CreateHabitInput{UserID: userID, Name: "Run"},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(newMockRepository())
			habit, err := svc.CreateHabit(context.Background(), tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, HabitTypeYesNo, habit.HabitType)
			assert.Equal(t, FrequencyDaily, habit.Frequency)
			assert.Equal(t, HabitStatusActive, habit.Status)
		})
	}
}

func TestCreateHabitRecordsEvent(t *testing.T) {
	repo := newMockRepository()
	svc := newTestService(repo)

	habit, err := svc.CreateHabit(context.Background(), CreateHabitInput{UserID: uuid.New(), Name: "Meditate"})
	assert.NoError(t, err)
	assert.Equal(t, 1, repo.eventCount(habit.ID, EventHabitCreated))
}

func TestTrackHabitUpsertsByDate(t *testing.T) {
	repo := newMockRepository()
	svc := newTestService(repo)
	ctx := context.Background()

	habit, err := svc.CreateHabit(ctx, CreateHabitInput{UserID: uuid.New(), Name: "Read"})
	assert.NoError(t, err)

	date := day(2025, 3, 10)
	first, err := svc.TrackHabit(ctx, habit.ID, habit.UserID, TrackHabitInput{Date: date, Completed: true})
	assert.NoError(t, err)

	notes := "20 pages"
	second, err := svc.TrackHabit(ctx, habit.ID, habit.UserID, TrackHabitInput{Date: date, Completed: false, Notes: notes})
	assert.NoError(t, err)

	// Same day tracks twice, one stored record with the latest values.
	assert.Equal(t, first.ID, second.ID)
	assert.False(t, second.Completed)
	assert.Equal(t, notes, second.Notes)
	assert.Len(t, repo.records[habit.ID], 1)
	assert.Equal(t, 2, repo.eventCount(habit.ID, EventHabitTracked))
}

func TestTrackHabitDefaultsToToday(t *testing.T) {
	repo := newMockRepository()
	svc := newTestService(repo)
	ctx := context.Background()

	habit, err := svc.CreateHabit(ctx, CreateHabitInput{UserID: uuid.New(), Name: "Stretch"})
	assert.NoError(t, err)

	rec, err := svc.TrackHabit(ctx, habit.ID, habit.UserID, TrackHabitInput{Completed: true})
	assert.NoError(t, err)
	assert.Equal(t, Today(), rec.Date)
}

func TestTrackHabitUnknownHabit(t *testing.T) {
	svc := newTestService(newMockRepository())

	_, err := svc.TrackHabit(context.Background(), uuid.New(), uuid.New(), TrackHabitInput{Completed: true})
	assert.ErrorIs(t, err, ErrHabitNotFound)
}

func TestTrackHabitFiresMilestone(t *testing.T) {
	repo := newMockRepository()
	svc := newTestService(repo)
	notifier := &mockNotifier{}
	svc.SetNotifier(notifier)
	ctx := context.Background()

	habit, err := svc.CreateHabit(ctx, CreateHabitInput{UserID: uuid.New(), Name: "Run"})
	assert.NoError(t, err)

	// Six days already done, today makes seven.
	for i := 6; i >= 1; i-- {
		_, err := svc.TrackHabit(ctx, habit.ID, habit.UserID, TrackHabitInput{
			Date:      Today().AddDate(0, 0, -i),
			Completed: true,
		})
		assert.NoError(t, err)
	}
	assert.Empty(t, notifier.milestones)

	_, err = svc.TrackHabit(ctx, habit.ID, habit.UserID, TrackHabitInput{Completed: true})
	assert.NoError(t, err)

	assert.Equal(t, []int{7}, notifier.milestones)
	assert.Equal(t, 1, repo.eventCount(habit.ID, EventMilestone))
}

func TestArchiveAndRestoreHabit(t *testing.T) {
	repo := newMockRepository()
	svc := newTestService(repo)
	ctx := context.Background()

	habit, err := svc.CreateHabit(ctx, CreateHabitInput{UserID: uuid.New(), Name: "Write"})
	assert.NoError(t, err)

	assert.NoError(t, svc.ArchiveHabit(ctx, habit.ID, habit.UserID))
	active, err := repo.FindActive(ctx, habit.UserID)
	assert.NoError(t, err)
	assert.Empty(t, active, "archived habits leave the active set")

	// Archived habits still accept backfill records.
	_, err = svc.TrackHabit(ctx, habit.ID, habit.UserID, TrackHabitInput{Completed: true})
	assert.NoError(t, err)

	assert.NoError(t, svc.RestoreHabit(ctx, habit.ID, habit.UserID))
	active, err = repo.FindActive(ctx, habit.UserID)
	assert.NoError(t, err)
	assert.Len(t, active, 1)

	assert.Equal(t, 1, repo.eventCount(habit.ID, EventHabitArchived))
	assert.Equal(t, 1, repo.eventCount(habit.ID, EventHabitRestored))
}

func TestGetActiveByName(t *testing.T) {
	repo := newMockRepository()
	svc := newTestService(repo)
	ctx := context.Background()

	habit, err := svc.CreateHabit(ctx, CreateHabitInput{UserID: uuid.New(), Name: "Morning Run"})
	assert.NoError(t, err)

	found, err := svc.GetActiveByName(ctx, habit.UserID, "morning run")
	assert.NoError(t, err)
	assert.Equal(t, habit.ID, found.ID)

	_, err = svc.GetActiveByName(ctx, habit.UserID, "evening run")
	assert.ErrorIs(t, err, ErrHabitNotFound)

	_, err = svc.GetActiveByName(ctx, habit.UserID, "   ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetPeriodAnalyticsRejectsInvertedRange(t *testing.T) {
	svc := newTestService(newMockRepository())

	_, err := svc.GetPeriodAnalytics(context.Background(), uuid.New(), day(2025, 3, 7), day(2025, 3, 1))
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestDueRemindersValidatesMinute(t *testing.T) {
	svc := newTestService(newMockRepository())

	_, err := svc.DueReminders(context.Background(), "25:99")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDueRemindersSkipsCompletedToday(t *testing.T) {
	repo := newMockRepository()
	svc := newTestService(repo)
	ctx := context.Background()

	userID := uuid.New()
	first, err := svc.CreateHabit(ctx, CreateHabitInput{
		UserID: userID, Name: "Run", ReminderEnabled: true, ReminderTime: "08:00",
	})
	assert.NoError(t, err)
	second, err := svc.CreateHabit(ctx, CreateHabitInput{
		UserID: userID, Name: "Read", ReminderEnabled: true, ReminderTime: "08:00",
	})
	assert.NoError(t, err)

	_, err = svc.TrackHabit(ctx, first.ID, userID, TrackHabitInput{Completed: true})
	assert.NoError(t, err)

	due, err := svc.DueReminders(ctx, "08:00")
	assert.NoError(t, err)
	assert.Len(t, due, 1)
	assert.Equal(t, second.ID, due[0].ID)
}

func TestGetDashboard(t *testing.T) {
	repo := newMockRepository()
	svc := newTestService(repo)
	ctx := context.Background()

	userID := uuid.New()
	done, err := svc.CreateHabit(ctx, CreateHabitInput{UserID: userID, Name: "Run"})
	assert.NoError(t, err)
	_, err = svc.CreateHabit(ctx, CreateHabitInput{UserID: userID, Name: "Read"})
	assert.NoError(t, err)

	_, err = svc.TrackHabit(ctx, done.ID, userID, TrackHabitInput{Completed: true})
	assert.NoError(t, err)

	dashboard, err := svc.GetDashboard(ctx, userID)
	assert.NoError(t, err)

	assert.Equal(t, 2, dashboard.Stats.TotalHabits)
	assert.Equal(t, 1, dashboard.Stats.CompletedToday)
	assert.Equal(t, 50.0, dashboard.Stats.CompletionRate)
}
