package chatbot

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/Gajendran57/GoalGrid/internal/domain/habits"
	"github.com/Gajendran57/GoalGrid/internal/domain/user"
	"github.com/Gajendran57/GoalGrid/pkg/logger"
)

// recorderBot captures outbound messages instead of calling Telegram.
type recorderBot struct {
	sent    []tgbotapi.Chattable
	sendErr error
}

func (r *recorderBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if r.sendErr != nil {
		return tgbotapi.Message{}, r.sendErr
	}
	r.sent = append(r.sent, c)
	return tgbotapi.Message{}, nil
}

func (r *recorderBot) lastText(t *testing.T) string {
	t.Helper()
	if len(r.sent) == 0 {
		t.Fatal("no message was sent")
	}
	msg, ok := r.sent[len(r.sent)-1].(tgbotapi.MessageConfig)
	if !ok {
		t.Fatalf("unexpected chattable type: %T", r.sent[len(r.sent)-1])
	}
	return msg.Text
}

// fakeUserService resolves chats and users from in-memory maps.
type fakeUserService struct {
	byChat map[int64]*user.User
	byID   map[uuid.UUID]*user.User
}

func newFakeUserService() *fakeUserService {
	return &fakeUserService{
		byChat: make(map[int64]*user.User),
		byID:   make(map[uuid.UUID]*user.User),
	}
}

func (f *fakeUserService) add(u *user.User) {
	f.byID[u.ID] = u
	if u.TelegramChatID != nil {
		f.byChat[*u.TelegramChatID] = u
	}
}

func (f *fakeUserService) Register(ctx context.Context, input user.CreateUserInput) (*user.User, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeUserService) Authenticate(ctx context.Context, email, password string) (*user.User, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeUserService) GetUser(ctx context.Context, id uuid.UUID) (*user.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserService) LinkTelegramChat(ctx context.Context, userID uuid.UUID, chatID int64) (*user.User, error) {
	u, ok := f.byID[userID]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	u.TelegramChatID = &chatID
	f.byChat[chatID] = u
	return u, nil
}

func (f *fakeUserService) UnlinkTelegramChat(ctx context.Context, userID uuid.UUID) error {
	u, ok := f.byID[userID]
	if !ok {
		return user.ErrUserNotFound
	}
	if u.TelegramChatID != nil {
		delete(f.byChat, *u.TelegramChatID)
		u.TelegramChatID = nil
	}
	return nil
}

func (f *fakeUserService) GetByTelegramChat(ctx context.Context, chatID int64) (*user.User, error) {
	u, ok := f.byChat[chatID]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

// fakeHabitService serves canned answers and records track calls.
type fakeHabitService struct {
	active    []habits.Habit
	dashboard *habits.Dashboard
	streaks   []habits.HabitStreak
	tracked   []uuid.UUID
}

func (f *fakeHabitService) CreateHabit(ctx context.Context, input habits.CreateHabitInput) (*habits.Habit, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeHabitService) GetHabit(ctx context.Context, id, userID uuid.UUID) (*habits.Habit, error) {
	return nil, habits.ErrHabitNotFound
}

func (f *fakeHabitService) GetActiveByName(ctx context.Context, userID uuid.UUID, name string) (*habits.Habit, error) {
	for i := range f.active {
		if strings.EqualFold(f.active[i].Name, name) {
			return &f.active[i], nil
		}
	}
	return nil, habits.ErrHabitNotFound
}

func (f *fakeHabitService) ListHabits(ctx context.Context, filter habits.HabitFilter) ([]habits.Habit, int64, error) {
	return f.active, int64(len(f.active)), nil
}

func (f *fakeHabitService) UpdateHabit(ctx context.Context, id, userID uuid.UUID, input habits.UpdateHabitInput) (*habits.Habit, error) {
	return nil, habits.ErrHabitNotFound
}

func (f *fakeHabitService) ArchiveHabit(ctx context.Context, id, userID uuid.UUID) error {
	return habits.ErrHabitNotFound
}

func (f *fakeHabitService) RestoreHabit(ctx context.Context, id, userID uuid.UUID) error {
	return habits.ErrHabitNotFound
}

func (f *fakeHabitService) TrackHabit(ctx context.Context, id, userID uuid.UUID, input habits.TrackHabitInput) (*habits.HabitRecord, error) {
	f.tracked = append(f.tracked, id)
	return &habits.HabitRecord{ID: uuid.New(), HabitID: id, UserID: userID, Completed: input.Completed}, nil
}

func (f *fakeHabitService) GetHabitRecords(ctx context.Context, id, userID uuid.UUID, days int) ([]habits.HabitRecord, error) {
	return nil, nil
}

func (f *fakeHabitService) GetUserRecords(ctx context.Context, userID uuid.UUID, days int) ([]habits.HabitRecord, error) {
	return nil, nil
}

func (f *fakeHabitService) GetHabitEvents(ctx context.Context, id, userID uuid.UUID, limit int) ([]habits.HabitEvent, error) {
	return nil, nil
}

func (f *fakeHabitService) GetStreaks(ctx context.Context, userID uuid.UUID) ([]habits.HabitStreak, error) {
	return f.streaks, nil
}

func (f *fakeHabitService) GetHabitStreak(ctx context.Context, id, userID uuid.UUID) (*habits.HabitStreak, error) {
	for _, s := range f.streaks {
		if s.HabitID == id {
			streak := s
			return &streak, nil
		}
	}
	return nil, habits.ErrHabitNotFound
}

func (f *fakeHabitService) GetPeriodAnalytics(ctx context.Context, userID uuid.UUID, start, end time.Time) (*habits.PeriodAnalytics, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeHabitService) GetDashboard(ctx context.Context, userID uuid.UUID) (*habits.Dashboard, error) {
	return f.dashboard, nil
}

func (f *fakeHabitService) DueReminders(ctx context.Context, hhmm string) ([]habits.Habit, error) {
	return nil, nil
}

func (f *fakeHabitService) SetNotifier(n habits.Notifier) {}

func testLogger() *logger.Logger {
	return &logger.Logger{Logger: zap.NewNop()}
}

// commandUpdate builds an inbound update the way Telegram delivers
// commands, with a bot_command entity covering the leading token.
func commandUpdate(chatID int64, text string) tgbotapi.Update {
	length := len(text)
	if i := strings.Index(text, " "); i >= 0 {
		length = i
	}
	return tgbotapi.Update{
		Message: &tgbotapi.Message{
			Chat: &tgbotapi.Chat{ID: chatID},
			Text: text,
			Entities: []tgbotapi.MessageEntity{
				{Type: "bot_command", Offset: 0, Length: length},
			},
		},
	}
}

func plainUpdate(chatID int64, text string) tgbotapi.Update {
	return tgbotapi.Update{
		Message: &tgbotapi.Message{
			Chat: &tgbotapi.Chat{ID: chatID},
			Text: text,
		},
	}
}

func linkedUser(chatID int64) *user.User {
	return &user.User{
		ID:             uuid.New(),
		Name:           "Ada",
		Email:          "ada@example.com",
		Status:         user.UserStatusActive,
		TelegramChatID: &chatID,
	}
}

func TestHandleUpdateIgnoresEmptyUpdate(t *testing.T) {
	bot := &recorderBot{}
	svc := NewService(bot, newFakeUserService(), &fakeHabitService{}, nil, nil, testLogger())

	assert.NoError(t, svc.HandleUpdate(context.Background(), tgbotapi.Update{}))
	assert.Empty(t, bot.sent)
}

func TestHandleUpdatePlainTextAnswersHelp(t *testing.T) {
	bot := &recorderBot{}
	svc := NewService(bot, newFakeUserService(), &fakeHabitService{}, nil, nil, testLogger())

	assert.NoError(t, svc.HandleUpdate(context.Background(), plainUpdate(7, "hello there")))
	assert.Equal(t, helpText, bot.lastText(t))
}

func TestHandleStartWithoutCode(t *testing.T) {
	bot := &recorderBot{}
	svc := NewService(bot, newFakeUserService(), &fakeHabitService{}, nil, nil, testLogger())

	assert.NoError(t, svc.HandleUpdate(context.Background(), commandUpdate(7, "/start")))
	assert.Equal(t, welcomeText, bot.lastText(t))
}

func TestHandleUnknownCommand(t *testing.T) {
	bot := &recorderBot{}
	svc := NewService(bot, newFakeUserService(), &fakeHabitService{}, nil, nil, testLogger())

	assert.NoError(t, svc.HandleUpdate(context.Background(), commandUpdate(7, "/banana")))
	assert.Contains(t, bot.lastText(t), "I don't know /banana")
}

func TestHandleTodayRequiresLink(t *testing.T) {
	bot := &recorderBot{}
	svc := NewService(bot, newFakeUserService(), &fakeHabitService{}, nil, nil, testLogger())

	assert.NoError(t, svc.HandleUpdate(context.Background(), commandUpdate(7, "/today")))
	assert.Equal(t, notLinkedText, bot.lastText(t))
}

func TestHandleTodayRendersChecklist(t *testing.T) {
	bot := &recorderBot{}
	users := newFakeUserService()
	users.add(linkedUser(7))

	habitSvc := &fakeHabitService{
		dashboard: &habits.Dashboard{
			Date: "2025-03-15",
			Habits: []habits.DashboardHabit{
				{Habit: habits.Habit{Name: "Run"}, IsCompletedToday: true},
				{Habit: habits.Habit{Name: "Read"}},
			},
			Stats: habits.DashboardStats{TotalHabits: 2, CompletedToday: 1, CompletionRate: 50},
		},
	}
	svc := NewService(bot, users, habitSvc, nil, nil, testLogger())

	assert.NoError(t, svc.HandleUpdate(context.Background(), commandUpdate(7, "/today")))

	text := bot.lastText(t)
	assert.Contains(t, text, "1 of 2 done")
	assert.Contains(t, text, "✅ Run")
	assert.Contains(t, text, "⬜ Read")
	assert.Contains(t, text, "/track")
}

func TestHandleTrackMissingArgument(t *testing.T) {
	bot := &recorderBot{}
	users := newFakeUserService()
	users.add(linkedUser(7))
	svc := NewService(bot, users, &fakeHabitService{}, nil, nil, testLogger())

	assert.NoError(t, svc.HandleUpdate(context.Background(), commandUpdate(7, "/track")))
	assert.Equal(t, missingTrackArgText, bot.lastText(t))
}

func TestHandleTrackChecksOffHabit(t *testing.T) {
	bot := &recorderBot{}
	users := newFakeUserService()
	users.add(linkedUser(7))

	habit := habits.Habit{ID: uuid.New(), Name: "Morning run", Status: habits.HabitStatusActive}
	habitSvc := &fakeHabitService{
		active: []habits.Habit{habit},
		streaks: []habits.HabitStreak{
			{HabitID: habit.ID, Name: habit.Name, StreakResult: habits.StreakResult{Current: 3, Best: 5}},
		},
	}
	svc := NewService(bot, users, habitSvc, nil, nil, testLogger())

	// Name matching is case-insensitive.
	assert.NoError(t, svc.HandleUpdate(context.Background(), commandUpdate(7, "/track morning RUN")))

	assert.Equal(t, []uuid.UUID{habit.ID}, habitSvc.tracked)
	text := bot.lastText(t)
	assert.Contains(t, text, "checked off")
	assert.Contains(t, text, "3 days in a row")
}

func TestHandleTrackUnknownHabitListsNames(t *testing.T) {
	bot := &recorderBot{}
	users := newFakeUserService()
	users.add(linkedUser(7))

	habitSvc := &fakeHabitService{
		active: []habits.Habit{{Name: "Run"}, {Name: "Read"}},
	}
	svc := NewService(bot, users, habitSvc, nil, nil, testLogger())

	assert.NoError(t, svc.HandleUpdate(context.Background(), commandUpdate(7, "/track Yoga")))

	text := bot.lastText(t)
	assert.Contains(t, text, `"Yoga"`)
	assert.Contains(t, text, "Run, Read")
	assert.Empty(t, habitSvc.tracked)
}

func TestHandleStreakRendersFigures(t *testing.T) {
	bot := &recorderBot{}
	users := newFakeUserService()
	users.add(linkedUser(7))

	habitSvc := &fakeHabitService{
		streaks: []habits.HabitStreak{
			{Name: "Run", StreakResult: habits.StreakResult{Current: 4, Best: 9}},
		},
	}
	svc := NewService(bot, users, habitSvc, nil, nil, testLogger())

	assert.NoError(t, svc.HandleUpdate(context.Background(), commandUpdate(7, "/streak")))
	assert.Contains(t, bot.lastText(t), "Run: current 4, best 9")
}

func TestHandleUpdateSendFailureSurfaces(t *testing.T) {
	bot := &recorderBot{sendErr: errors.New("network down")}
	svc := NewService(bot, newFakeUserService(), &fakeHabitService{}, nil, nil, testLogger())

	err := svc.HandleUpdate(context.Background(), commandUpdate(7, "/help"))
	assert.ErrorContains(t, err, "failed to send telegram message")
}

func TestIssueLinkCodeWithBotDisabled(t *testing.T) {
	svc := NewService(nil, newFakeUserService(), &fakeHabitService{}, nil, nil, testLogger())

	_, _, err := svc.IssueLinkCode(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrBotDisabled)
}

func TestNotifyMilestoneSkipsWhenBotDisabled(t *testing.T) {
	svc := NewService(nil, newFakeUserService(), &fakeHabitService{}, nil, nil, testLogger())

	// The nil outbox would panic if the disabled path tried to enqueue.
	err := svc.NotifyMilestone(context.Background(), uuid.New(), &habits.Habit{Name: "Run"}, 7)
	assert.NoError(t, err)
}

func TestNotifyMilestoneSkipsUnlinkedUser(t *testing.T) {
	users := newFakeUserService()
	unlinked := &user.User{ID: uuid.New(), Name: "Ada", Status: user.UserStatusActive}
	users.add(unlinked)

	svc := NewService(&recorderBot{}, users, &fakeHabitService{}, nil, nil, testLogger())

	err := svc.NotifyMilestone(context.Background(), unlinked.ID, &habits.Habit{Name: "Run"}, 7)
	assert.NoError(t, err)
}
