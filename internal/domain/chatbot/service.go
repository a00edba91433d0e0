package chatbot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Gajendran57/GoalGrid/internal/domain/habits"
	"github.com/Gajendran57/GoalGrid/internal/domain/user"
	"github.com/Gajendran57/GoalGrid/pkg/broker"
	"github.com/Gajendran57/GoalGrid/pkg/logger"
)

var ErrBotDisabled = errors.New("telegram bot is disabled")

// Sender is the outbound Telegram surface. *tgbotapi.BotAPI satisfies
// it; tests swap in a recorder.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Service owns the Telegram side of the product: link codes, inbound
// webhook commands and outbound delivery of queued messages. It also
// implements habits.Notifier, so the habit service can announce
// milestones without knowing Telegram exists.
type Service interface {
	IssueLinkCode(ctx context.Context, userID uuid.UUID) (string, time.Duration, error)
	Unlink(ctx context.Context, userID uuid.UUID) error
	HandleUpdate(ctx context.Context, update tgbotapi.Update) error

	// StartDispatcher drains the outbox queue and delivers jobs through
	// the bot. It blocks until ctx is cancelled, so callers run it on
	// its own goroutine.
	StartDispatcher(ctx context.Context)

	habits.Notifier
}

type service struct {
	bot          Sender
	userService  user.Service
	habitService habits.Service
	codes        *LinkCodeStore
	outbox       *broker.OutboxQueue
	logger       *logger.Logger
}

// NewService wires the chatbot. bot may be nil when Telegram is
// disabled; replies and outbox delivery then turn into no-ops.
func NewService(bot Sender, userService user.Service, habitService habits.Service, codes *LinkCodeStore, outbox *broker.OutboxQueue, log *logger.Logger) Service {
	return &service{
		bot:          bot,
		userService:  userService,
		habitService: habitService,
		codes:        codes,
		outbox:       outbox,
		logger:       log,
	}
}

func (s *service) IssueLinkCode(ctx context.Context, userID uuid.UUID) (string, time.Duration, error) {
	if s.bot == nil {
		return "", 0, ErrBotDisabled
	}

	code, err := s.codes.Issue(ctx, userID)
	if err != nil {
		return "", 0, fmt.Errorf("failed to issue link code: %w", err)
	}

	s.logger.Info("Issued telegram link code", zap.String("user_id", userID.String()))
	return code, s.codes.TTL(), nil
}

func (s *service) Unlink(ctx context.Context, userID uuid.UUID) error {
	return s.userService.UnlinkTelegramChat(ctx, userID)
}

// HandleUpdate dispatches one inbound Telegram update. Unknown
// commands and unusable arguments answer with guidance; an error
// return means delivery itself failed, not that the user typed
// something wrong.
func (s *service) HandleUpdate(ctx context.Context, update tgbotapi.Update) error {
	message := update.Message
	if message == nil || message.Chat == nil {
		return nil
	}
	chatID := message.Chat.ID

	if !message.IsCommand() {
		return s.reply(chatID, helpText)
	}

	switch message.Command() {
	case "start":
		return s.handleStart(ctx, chatID, strings.TrimSpace(message.CommandArguments()))
	case "today":
		return s.withLinkedUser(ctx, chatID, s.handleToday)
	case "track":
		name := strings.TrimSpace(message.CommandArguments())
		return s.withLinkedUser(ctx, chatID, func(ctx context.Context, chatID int64, owner *user.User) error {
			return s.handleTrack(ctx, chatID, owner, name)
		})
	case "streak":
		return s.withLinkedUser(ctx, chatID, s.handleStreak)
	case "help":
		return s.reply(chatID, helpText)
	default:
		return s.reply(chatID, unknownCommandText(message.Command()))
	}
}

func (s *service) handleStart(ctx context.Context, chatID int64, code string) error {
	if code == "" {
		return s.reply(chatID, welcomeText)
	}

	userID, err := s.codes.Claim(ctx, strings.ToUpper(code))
	if err != nil {
		if errors.Is(err, ErrCodeNotFound) {
			return s.reply(chatID, invalidCodeText)
		}
		return fmt.Errorf("failed to claim link code: %w", err)
	}

	owner, err := s.userService.LinkTelegramChat(ctx, userID, chatID)
	if err != nil {
		if errors.Is(err, user.ErrChatAlreadyLinked) {
			return s.reply(chatID, chatTakenText)
		}
		return fmt.Errorf("failed to link telegram chat: %w", err)
	}

	s.logger.Info("Telegram chat linked",
		zap.String("user_id", owner.ID.String()),
		zap.Int64("chat_id", chatID))

	return s.reply(chatID, linkedText(owner.Name))
}

type linkedHandler func(ctx context.Context, chatID int64, owner *user.User) error

// withLinkedUser resolves the chat to its account and answers with
// linking guidance when there is none.
func (s *service) withLinkedUser(ctx context.Context, chatID int64, fn linkedHandler) error {
	owner, err := s.userService.GetByTelegramChat(ctx, chatID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return s.reply(chatID, notLinkedText)
		}
		return fmt.Errorf("failed to resolve telegram chat: %w", err)
	}
	return fn(ctx, chatID, owner)
}

func (s *service) handleToday(ctx context.Context, chatID int64, owner *user.User) error {
	dashboard, err := s.habitService.GetDashboard(ctx, owner.ID)
	if err != nil {
		return fmt.Errorf("failed to load dashboard: %w", err)
	}
	return s.reply(chatID, todayText(dashboard))
}

func (s *service) handleTrack(ctx context.Context, chatID int64, owner *user.User, name string) error {
	if name == "" {
		return s.reply(chatID, missingTrackArgText)
	}

	habit, err := s.habitService.GetActiveByName(ctx, owner.ID, name)
	if err != nil {
		if errors.Is(err, habits.ErrHabitNotFound) {
			return s.replyUnknownHabit(ctx, chatID, owner, name)
		}
		return fmt.Errorf("failed to look up habit: %w", err)
	}

	if _, err := s.habitService.TrackHabit(ctx, habit.ID, owner.ID, habits.TrackHabitInput{Completed: true}); err != nil {
		return fmt.Errorf("failed to track habit: %w", err)
	}

	// Streak display is best effort; the completion already stuck.
	var streak *habits.StreakResult
	if habitStreak, err := s.habitService.GetHabitStreak(ctx, habit.ID, owner.ID); err == nil {
		streak = &habitStreak.StreakResult
	}

	return s.reply(chatID, trackedText(habit, streak))
}

func (s *service) replyUnknownHabit(ctx context.Context, chatID int64, owner *user.User, name string) error {
	status := habits.HabitStatusActive
	active, _, err := s.habitService.ListHabits(ctx, habits.HabitFilter{UserID: &owner.ID, Status: &status})
	if err != nil {
		s.logger.Warn("Failed to list habits for guidance",
			zap.String("user_id", owner.ID.String()), zap.Error(err))
		active = nil
	}
	return s.reply(chatID, unknownHabitText(name, active))
}

func (s *service) handleStreak(ctx context.Context, chatID int64, owner *user.User) error {
	streaks, err := s.habitService.GetStreaks(ctx, owner.ID)
	if err != nil {
		return fmt.Errorf("failed to load streaks: %w", err)
	}
	return s.reply(chatID, streaksText(streaks))
}

// NotifyMilestone queues a congratulation for the habit owner's
// linked chat.
func (s *service) NotifyMilestone(ctx context.Context, userID uuid.UUID, habit *habits.Habit, streakDays int) error {
	return s.enqueueFor(ctx, userID, broker.JobKindMilestone, habits.MilestoneMessage(habit, streakDays))
}

// NotifyReminder queues a reminder for the habit owner's linked chat.
func (s *service) NotifyReminder(ctx context.Context, userID uuid.UUID, habit *habits.Habit) error {
	return s.enqueueFor(ctx, userID, broker.JobKindReminder, habits.ReminderMessage(habit))
}

// enqueueFor puts a message on the outbox when the user has a linked
// chat. Unlinked users are silently skipped; with the bot disabled
// nothing is queued at all, so jobs cannot pile up unconsumed.
func (s *service) enqueueFor(ctx context.Context, userID uuid.UUID, kind broker.JobKind, text string) error {
	if s.bot == nil {
		return nil
	}

	owner, err := s.userService.GetUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load user for notification: %w", err)
	}
	if !owner.IsLinked() {
		return nil
	}

	if _, err := s.outbox.Enqueue(ctx, kind, *owner.TelegramChatID, text); err != nil {
		return fmt.Errorf("failed to enqueue chat job: %w", err)
	}
	return nil
}

func (s *service) StartDispatcher(ctx context.Context) {
	if s.bot == nil {
		return
	}

	s.logger.Info("Starting telegram dispatcher")
	s.outbox.Consume(ctx, func(ctx context.Context, job *broker.ChatJob) error {
		_, err := s.bot.Send(tgbotapi.NewMessage(job.ChatID, job.Text))
		return err
	})
}

func (s *service) reply(chatID int64, text string) error {
	if s.bot == nil {
		return nil
	}

	if _, err := s.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		return fmt.Errorf("failed to send telegram message: %w", err)
	}
	return nil
}
