package transfer

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/Gajendran57/GoalGrid/internal/domain/habits"
)

// fakeRepo is an in-memory habits.Repository; only the methods the
// transfer service touches do real work.
type fakeRepo struct {
	habits  []habits.Habit
	records []habits.HabitRecord
}

func (f *fakeRepo) Create(ctx context.Context, habit *habits.Habit) error {
	f.habits = append(f.habits, *habit)
	return nil
}

func (f *fakeRepo) FindByID(ctx context.Context, id, userID uuid.UUID) (*habits.Habit, error) {
	for i := range f.habits {
		if f.habits[i].ID == id && f.habits[i].UserID == userID {
			return &f.habits[i], nil
		}
	}
	return nil, habits.ErrHabitNotFound
}

func (f *fakeRepo) FindAll(ctx context.Context, filter habits.HabitFilter) ([]habits.Habit, int64, error) {
	var out []habits.Habit
	for _, h := range f.habits {
		if filter.UserID != nil && h.UserID != *filter.UserID {
			continue
		}
		if filter.Status != nil && h.Status != *filter.Status {
			continue
		}
		out = append(out, h)
	}
	return out, int64(len(out)), nil
}

func (f *fakeRepo) FindActive(ctx context.Context, userID uuid.UUID) ([]habits.Habit, error) {
	status := habits.HabitStatusActive
	list, _, err := f.FindAll(ctx, habits.HabitFilter{UserID: &userID, Status: &status})
	return list, err
}

func (f *fakeRepo) FindActiveByName(ctx context.Context, userID uuid.UUID, name string) (*habits.Habit, error) {
	for i := range f.habits {
		if f.habits[i].UserID == userID && strings.EqualFold(f.habits[i].Name, name) {
			return &f.habits[i], nil
		}
	}
	return nil, habits.ErrHabitNotFound
}

func (f *fakeRepo) Update(ctx context.Context, habit *habits.Habit) error { return nil }

func (f *fakeRepo) SetStatus(ctx context.Context, id, userID uuid.UUID, status habits.HabitStatus) error {
	return nil
}

func (f *fakeRepo) UpsertRecord(ctx context.Context, record *habits.HabitRecord) error {
	for i := range f.records {
		if f.records[i].HabitID == record.HabitID && f.records[i].Date.Equal(record.Date) {
			f.records[i] = *record
			return nil
		}
	}
	f.records = append(f.records, *record)
	return nil
}

func (f *fakeRepo) FindRecords(ctx context.Context, filter habits.RecordFilter) ([]habits.HabitRecord, error) {
	var out []habits.HabitRecord
	for _, r := range f.records {
		if r.UserID != filter.UserID {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRepo) FindRecordsByDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]habits.HabitRecord, error) {
	return nil, nil
}

func (f *fakeRepo) FindCompletedRecords(ctx context.Context, habitID, userID uuid.UUID, limit int) ([]habits.HabitRecord, error) {
	return nil, nil
}

func (f *fakeRepo) HasRecordOn(ctx context.Context, habitID uuid.UUID, date time.Time) (bool, error) {
	return false, nil
}

func (f *fakeRepo) CreateEvent(ctx context.Context, event *habits.HabitEvent) error { return nil }

func (f *fakeRepo) FindEvents(ctx context.Context, habitID, userID uuid.UUID, limit int) ([]habits.HabitEvent, error) {
	return nil, nil
}

func (f *fakeRepo) FindDueReminders(ctx context.Context, hhmm string, today time.Time) ([]habits.Habit, error) {
	return nil, nil
}

func newTestService(repo habits.Repository) Service {
	return NewService(repo, nil, zap.NewNop())
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExportRoundTripsThroughImport(t *testing.T) {
	ctx := context.Background()
	source := &fakeRepo{}
	exporter := newTestService(source)

	userID := uuid.New()
	target := 5.0
	habit := habits.Habit{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        "Morning run",
		HabitType:   habits.HabitTypeQuantifiable,
		TargetValue: &target,
		TargetUnit:  "km",
		Frequency:   habits.FrequencyDaily,
		Category:    "health",
		Color:       "#FF0000",
		Status:      habits.HabitStatusArchived,
	}
	source.habits = append(source.habits, habit)
	source.records = append(source.records, habits.HabitRecord{
		ID:        uuid.New(),
		HabitID:   habit.ID,
		UserID:    userID,
		Date:      day(2025, 3, 10),
		Completed: true,
		Notes:     "5k",
	})

	snapshot, err := exporter.Export(ctx, userID)
	assert.NoError(t, err)
	assert.Equal(t, SnapshotVersion, snapshot.Version)
	assert.Len(t, snapshot.Habits, 1)
	assert.Len(t, snapshot.Records, 1)
	assert.Equal(t, "2025-03-10", snapshot.Records[0].Date)

	// Import into a fresh account.
	dest := &fakeRepo{}
	importer := newTestService(dest)
	newUserID := uuid.New()

	summary, err := importer.Import(ctx, newUserID, snapshot)
	assert.NoError(t, err)
	assert.Equal(t, 1, summary.HabitsImported)
	assert.Equal(t, 1, summary.RecordsImported)
	assert.Equal(t, 0, summary.RecordsSkipped)

	imported := dest.habits[0]
	assert.NotEqual(t, habit.ID, imported.ID, "import mints fresh ids")
	assert.Equal(t, newUserID, imported.UserID)
	assert.Equal(t, habit.Name, imported.Name)
	assert.Equal(t, habits.HabitStatusArchived, imported.Status)
	assert.Equal(t, 5.0, *imported.TargetValue)

	record := dest.records[0]
	assert.Equal(t, imported.ID, record.HabitID, "records follow the remapped habit id")
	assert.Equal(t, day(2025, 3, 10), record.Date)
	assert.True(t, record.Completed)
}

func TestImportRejectsNewerVersion(t *testing.T) {
	svc := newTestService(&fakeRepo{})

	_, err := svc.Import(context.Background(), uuid.New(), &Snapshot{
		Version: SnapshotVersion + 1,
		Habits:  []HabitExport{{Name: "Run"}},
	})
	assert.ErrorIs(t, err, ErrUnsupportedVersion)
}

func TestImportRejectsEmptySnapshot(t *testing.T) {
	svc := newTestService(&fakeRepo{})

	_, err := svc.Import(context.Background(), uuid.New(), &Snapshot{Version: SnapshotVersion})
	assert.ErrorIs(t, err, ErrEmptySnapshot)
}

func TestImportSkipsBrokenRecords(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)

	snapshot := &Snapshot{
		Version: SnapshotVersion,
		Habits:  []HabitExport{{ID: "h1", Name: "Run"}},
		Records: []RecordExport{
			{HabitID: "h1", Date: "2025-03-10", Completed: true},
			{HabitID: "orphan", Date: "2025-03-10", Completed: true},
			{HabitID: "h1", Date: "not a date", Completed: true},
		},
	}

	summary, err := svc.Import(context.Background(), uuid.New(), snapshot)
	assert.NoError(t, err)
	assert.Equal(t, 1, summary.HabitsImported)
	assert.Equal(t, 1, summary.RecordsImported)
	assert.Equal(t, 2, summary.RecordsSkipped)
}

func TestImportDefaultsBrokenEnums(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)

	snapshot := &Snapshot{
		Version: SnapshotVersion,
		Habits: []HabitExport{{
			Name:         "Run",
			HabitType:    "sometimes",
			Frequency:    "fortnightly",
			Status:       "paused",
			ReminderTime: "9am",
		}},
	}

	_, err := svc.Import(context.Background(), uuid.New(), snapshot)
	assert.NoError(t, err)

	imported := repo.habits[0]
	assert.Equal(t, habits.HabitTypeYesNo, imported.HabitType)
	assert.Equal(t, habits.FrequencyDaily, imported.Frequency)
	assert.Equal(t, habits.HabitStatusActive, imported.Status)
	assert.Empty(t, imported.ReminderTime)
}

func TestImportCollapsesDuplicateDates(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)

	snapshot := &Snapshot{
		Version: SnapshotVersion,
		Habits:  []HabitExport{{ID: "h1", Name: "Run"}},
		Records: []RecordExport{
			{HabitID: "h1", Date: "2025-03-10", Completed: false},
			{HabitID: "h1", Date: "2025-03-10", Completed: true, Notes: "second wins"},
		},
	}

	summary, err := svc.Import(context.Background(), uuid.New(), snapshot)
	assert.NoError(t, err)
	assert.Equal(t, 2, summary.RecordsImported)

	assert.Len(t, repo.records, 1)
	assert.True(t, repo.records[0].Completed)
	assert.Equal(t, "second wins", repo.records[0].Notes)
}
