package broker

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// redisChannelPrefix namespaces bus channels away from cache keys and
// the chat outbox living on the same Redis.
const redisChannelPrefix = "goalgrid:bus:"

// RedisBroker is a MessageBroker over Redis pub/sub. Unlike the
// in-memory broker it reaches subscribers in every running instance,
// so a habit tracked on one node shows up on dashboards served by
// another.
type RedisBroker struct {
	client *redis.Client
	logger *logrus.Logger

	mu     sync.Mutex
	subs   map[string]*redisSubscription
	closed bool
}

type redisSubscription struct {
	id     string
	topic  string
	pubsub *redis.PubSub
	broker *RedisBroker

	mu     sync.Mutex
	closed bool
}

// NewRedisBroker creates a broker on an established Redis connection
func NewRedisBroker(client *redis.Client, logger *logrus.Logger) *RedisBroker {
	return &RedisBroker{
		client: client,
		logger: logger,
		subs:   make(map[string]*redisSubscription),
	}
}

// Publish publishes a message to a topic
func (b *RedisBroker) Publish(ctx context.Context, topic string, payload []byte, attributes map[string]string) error {
	b.mu.Lock()
	closed := b.closed
	b.mu.Unlock()
	if closed {
		return errors.New("broker is closed")
	}

	msg := &Message{
		ID:          uuid.New().String(),
		Topic:       topic,
		Payload:     payload,
		PublishedAt: time.Now(),
		Attributes:  attributes,
	}

	raw, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	return b.client.Publish(ctx, redisChannelPrefix+topic, raw).Err()
}

// Subscribe subscribes to a topic. Delivery runs on a goroutine owned
// by the subscription and stops when it is unsubscribed.
func (b *RedisBroker) Subscribe(ctx context.Context, topic string, handler MessageHandler) (Subscription, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil, errors.New("broker is closed")
	}

	pubsub := b.client.Subscribe(ctx, redisChannelPrefix+topic)
	sub := &redisSubscription{
		id:     uuid.New().String(),
		topic:  topic,
		pubsub: pubsub,
		broker: b,
	}
	b.subs[sub.id] = sub

	go func() {
		for raw := range pubsub.Channel() {
			var msg Message
			if err := json.Unmarshal([]byte(raw.Payload), &msg); err != nil {
				b.logger.WithError(err).WithField("topic", topic).Error("Discarding undecodable bus message")
				continue
			}

			// Detached context: the publishing request must not cancel
			// delivery
			if err := handler(context.Background(), &msg); err != nil {
				b.logger.WithError(err).WithField("message_id", msg.ID).Error("Error processing message")
			}
		}
	}()

	return sub, nil
}

// Close closes every open subscription
func (b *RedisBroker) Close() error {
	b.mu.Lock()
	subs := make([]*redisSubscription, 0, len(b.subs))
	for _, sub := range b.subs {
		subs = append(subs, sub)
	}
	b.closed = true
	b.mu.Unlock()

	var firstErr error
	for _, sub := range subs {
		if err := sub.Unsubscribe(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// ID returns the subscription ID
func (s *redisSubscription) ID() string {
	return s.id
}

// Topic returns the topic name
func (s *redisSubscription) Topic() string {
	return s.topic
}

// IsClosed returns whether the subscription is closed
func (s *redisSubscription) IsClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Unsubscribe stops delivery; closing the pubsub ends the channel the
// delivery goroutine ranges over.
func (s *redisSubscription) Unsubscribe() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	s.broker.mu.Lock()
	delete(s.broker.subs, s.id)
	s.broker.mu.Unlock()

	return s.pubsub.Close()
}
