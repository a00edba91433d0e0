package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Gajendran57/GoalGrid/pkg/logger"
)

// JobKind identifies the type of outbound chat delivery.
type JobKind string

const (
	JobKindReminder  JobKind = "reminder"
	JobKindMilestone JobKind = "milestone"
)

// ChatJob is one queued outbound message for the chat dispatcher.
type ChatJob struct {
	ID        string    `json:"id"`
	Kind      JobKind   `json:"kind"`
	ChatID    int64     `json:"chat_id"`
	Text      string    `json:"text"`
	Attempts  int       `json:"attempts"`
	CreatedAt time.Time `json:"created_at"`
}

// ChatJobHandler delivers a single job. A returned error requeues the
// job until maxAttempts is reached.
type ChatJobHandler func(ctx context.Context, job *ChatJob) error

// OutboxQueue is a Redis-list backed job queue for outbound chat
// messages (reminders, milestone congratulations). Producers LPUSH,
// the consumer loop BRPOPs.
type OutboxQueue struct {
	redis       *redis.Client
	queueKey    string
	maxAttempts int
	log         *logger.Logger
}

// NewOutboxQueue creates the queue on an existing Redis client.
func NewOutboxQueue(client *redis.Client, log *logger.Logger) *OutboxQueue {
	return &OutboxQueue{
		redis:       client,
		queueKey:    "goalgrid:outbox",
		maxAttempts: 3,
		log:         log,
	}
}

// Enqueue adds a job to the queue
func (q *OutboxQueue) Enqueue(ctx context.Context, kind JobKind, chatID int64, text string) (string, error) {
	job := ChatJob{
		ID:        uuid.New().String(),
		Kind:      kind,
		ChatID:    chatID,
		Text:      text,
		CreatedAt: time.Now(),
	}

	payload, err := json.Marshal(job)
	if err != nil {
		return "", fmt.Errorf("failed to serialize chat job: %w", err)
	}

	if err := q.redis.LPush(ctx, q.queueKey, payload).Err(); err != nil {
		return "", fmt.Errorf("failed to enqueue chat job: %w", err)
	}

	q.log.Info("Chat job enqueued",
		zap.String("job_id", job.ID),
		zap.String("kind", string(kind)),
		zap.Int64("chat_id", chatID))

	return job.ID, nil
}

// Consume blocks on the queue and hands jobs to the handler until the
// context is cancelled. Failed jobs are requeued with an attempt count.
func (q *OutboxQueue) Consume(ctx context.Context, handler ChatJobHandler) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		res, err := q.redis.BRPop(ctx, 5*time.Second, q.queueKey).Result()
		if err != nil {
			if err == redis.Nil || ctx.Err() != nil {
				continue
			}
			q.log.Error("Outbox pop failed", zap.Error(err))
			time.Sleep(time.Second)
			continue
		}
		if len(res) < 2 {
			continue
		}

		var job ChatJob
		if err := json.Unmarshal([]byte(res[1]), &job); err != nil {
			q.log.Error("Dropping malformed chat job", zap.Error(err))
			continue
		}

		if err := handler(ctx, &job); err != nil {
			job.Attempts++
			if job.Attempts >= q.maxAttempts {
				q.log.Error("Chat job dropped after retries",
					zap.String("job_id", job.ID),
					zap.Int("attempts", job.Attempts),
					zap.Error(err))
				continue
			}
			if payload, mErr := json.Marshal(job); mErr == nil {
				q.redis.LPush(ctx, q.queueKey, payload)
			}
			q.log.Warn("Chat job requeued",
				zap.String("job_id", job.ID),
				zap.Int("attempts", job.Attempts),
				zap.Error(err))
		}
	}
}

// Len reports the number of pending jobs.
func (q *OutboxQueue) Len(ctx context.Context) (int64, error) {
	return q.redis.LLen(ctx, q.queueKey).Result()
}
