package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Gajendran57/GoalGrid/internal/domain/habits"
	"github.com/Gajendran57/GoalGrid/internal/infrastructure/cache"
	"github.com/Gajendran57/GoalGrid/pkg/logger"
)

// Scheduler drives the time-based background work: per-minute reminder
// dispatch into the chat outbox and the midnight cache rollover.
type Scheduler struct {
	habitService habits.Service
	notifier     habits.Notifier
	cache        *cache.RedisClient
	logger       *logger.Logger
}

func NewScheduler(habitService habits.Service, notifier habits.Notifier, redis *cache.RedisClient, logger *logger.Logger) *Scheduler {
	return &Scheduler{
		habitService: habitService,
		notifier:     notifier,
		cache:        redis,
		logger:       logger,
	}
}

func (s *Scheduler) Start() {
	go s.reminderLoop()

	// Calculate time until next midnight
	now := time.Now()
	nextMidnight := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
	timeUntilMidnight := nextMidnight.Sub(now)

	s.logger.Info("Habit scheduler initialized",
		zap.Time("current_time", now),
		zap.Time("next_rollover", nextMidnight),
		zap.Duration("time_until_rollover", timeUntilMidnight),
	)

	go func() {
		// Wait until first midnight
		time.Sleep(timeUntilMidnight)

		s.runDailyRollover()

		// Then run every 24 hours
		ticker := time.NewTicker(24 * time.Hour)
		for range ticker.C {
			s.runDailyRollover()
		}
	}()
}

// reminderLoop wakes once a minute and dispatches reminders whose
// configured HH:MM matches the current wall-clock minute.
func (s *Scheduler) reminderLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for t := range ticker.C {
		s.dispatchReminders(t.Format("15:04"))
	}
}

// dispatchReminders queues a reminder for every due habit. The query
// already filters out habits completed today; the notifier skips
// owners without a linked chat.
func (s *Scheduler) dispatchReminders(hhmm string) {
	if s.notifier == nil {
		return
	}
	ctx := context.Background()

	due, err := s.habitService.DueReminders(ctx, hhmm)
	if err != nil {
		s.logger.Error("Failed to load due reminders",
			zap.String("minute", hhmm),
			zap.Error(err),
		)
		return
	}
	if len(due) == 0 {
		return
	}

	queued := 0
	for _, habit := range due {
		if err := s.notifier.NotifyReminder(ctx, habit.UserID, &habit); err != nil {
			s.logger.Error("Failed to queue reminder",
				zap.String("habit_id", habit.ID.String()),
				zap.Error(err),
			)
			continue
		}
		queued++
	}

	s.logger.Info("Dispatched habit reminders",
		zap.String("minute", hhmm),
		zap.Int("due", len(due)),
		zap.Int("queued", queued),
	)
}

// runDailyRollover clears cached responses at the date boundary. The
// dashboard embeds is_completed_today, which goes stale the moment the
// calendar day changes.
func (s *Scheduler) runDailyRollover() {
	ctx := context.Background()
	startTime := time.Now()

	s.logger.Info("Starting daily cache rollover", zap.Time("start_time", startTime))

	if err := s.cache.ClearByPattern(ctx, "http:*"); err != nil {
		s.logger.Error("Failed to clear cached responses", zap.Error(err))
	}

	s.logger.Info("Completed daily cache rollover",
		zap.Time("end_time", time.Now()),
		zap.Duration("duration", time.Since(startTime)),
	)
}
