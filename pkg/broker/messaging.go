package broker

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Common errors
var (
	ErrQueueNotFound     = errors.New("queue not found")
	ErrMessageProcessing = errors.New("message processing error")
)

// Message represents a generic message on the bus
type Message struct {
	ID          string            `json:"id"`
	Topic       string            `json:"topic"`
	Payload     []byte            `json:"payload"`
	PublishedAt time.Time         `json:"published_at"`
	Attributes  map[string]string `json:"attributes,omitempty"`
}

// MessageHandler is a function that processes messages
type MessageHandler func(context.Context, *Message) error

// MessageBroker defines an interface for a message broker
type MessageBroker interface {
	// Publish publishes a message to a topic
	Publish(ctx context.Context, topic string, payload []byte, attributes map[string]string) error

	// Subscribe subscribes to a topic with a handler function
	Subscribe(ctx context.Context, topic string, handler MessageHandler) (Subscription, error)

	// Close closes the message broker
	Close() error
}

// Subscription represents a subscription to a topic
type Subscription interface {
	// ID returns the subscription ID
	ID() string

	// Topic returns the topic name
	Topic() string

	// Unsubscribe unsubscribes from the topic
	Unsubscribe() error

	// IsClosed returns true if the subscription is closed
	IsClosed() bool
}

// InMemoryBroker is a simple in-memory implementation of MessageBroker.
// It carries habit activity events between the tracking service and the
// realtime push layer inside a single process.
type InMemoryBroker struct {
	topics        map[string][]*Message
	subscriptions map[string]map[string]MessageHandler
	mu            sync.RWMutex
	logger        *logrus.Logger
	queueSize     int
	closed        bool
}

// subscription implements the Subscription interface
type subscription struct {
	id        string
	topic     string
	broker    *InMemoryBroker
	closed    bool
	closeChan chan struct{}
}

// NewInMemoryBroker creates a new in-memory message broker
func NewInMemoryBroker(logger *logrus.Logger, queueSize int) *InMemoryBroker {
	if queueSize <= 0 {
		queueSize = 1000 // Default queue size
	}

	return &InMemoryBroker{
		topics:        make(map[string][]*Message),
		subscriptions: make(map[string]map[string]MessageHandler),
		logger:        logger,
		queueSize:     queueSize,
	}
}

// Publish publishes a message to a topic
func (b *InMemoryBroker) Publish(ctx context.Context, topic string, payload []byte, attributes map[string]string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return errors.New("broker is closed")
	}

	if _, exists := b.topics[topic]; !exists {
		b.topics[topic] = make([]*Message, 0)
		b.subscriptions[topic] = make(map[string]MessageHandler)
	}

	msg := &Message{
		ID:          uuid.New().String(),
		Topic:       topic,
		Payload:     payload,
		PublishedAt: time.Now(),
		Attributes:  attributes,
	}

	// Retain only the most recent messages per topic
	b.topics[topic] = append(b.topics[topic], msg)
	if len(b.topics[topic]) > b.queueSize {
		b.topics[topic] = b.topics[topic][len(b.topics[topic])-b.queueSize:]
	}

	// Notify subscribers asynchronously
	if subs, ok := b.subscriptions[topic]; ok && len(subs) > 0 {
		for _, handler := range subs {
			go b.processMessage(handler, msg)
		}
	}

	return nil
}

// Subscribe subscribes to a topic
func (b *InMemoryBroker) Subscribe(ctx context.Context, topic string, handler MessageHandler) (Subscription, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil, errors.New("broker is closed")
	}

	if _, exists := b.topics[topic]; !exists {
		b.topics[topic] = make([]*Message, 0)
		b.subscriptions[topic] = make(map[string]MessageHandler)
	}

	subID := uuid.New().String()
	b.subscriptions[topic][subID] = handler

	sub := &subscription{
		id:        subID,
		topic:     topic,
		broker:    b,
		closeChan: make(chan struct{}),
	}

	return sub, nil
}

// processMessage processes a message with a handler
func (b *InMemoryBroker) processMessage(handler MessageHandler, msg *Message) {
	// Detached context: the publishing request must not cancel delivery
	processingCtx := context.Background()

	if err := handler(processingCtx, msg); err != nil {
		b.logger.WithError(err).WithField("message_id", msg.ID).Error("Error processing message")
	}
}

// Close closes the broker
func (b *InMemoryBroker) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}

	b.closed = true
	b.topics = nil
	b.subscriptions = nil

	return nil
}

// ID returns the subscription ID
func (s *subscription) ID() string {
	return s.id
}

// Topic returns the topic name
func (s *subscription) Topic() string {
	return s.topic
}

// IsClosed returns whether the subscription is closed
func (s *subscription) IsClosed() bool {
	return s.closed
}

// Unsubscribe unsubscribes from the topic
func (s *subscription) Unsubscribe() error {
	s.broker.mu.Lock()
	defer s.broker.mu.Unlock()

	if s.closed {
		return nil
	}

	if subs, ok := s.broker.subscriptions[s.topic]; ok {
		delete(subs, s.id)
	}

	s.closed = true
	close(s.closeChan)

	return nil
}

// ActivityMessage is the payload published on the habits activity topic
// whenever a habit is created, archived, or tracked.
type ActivityMessage struct {
	UserID    string            `json:"user_id"`
	HabitID   string            `json:"habit_id"`
	HabitName string            `json:"habit_name"`
	Event     string            `json:"event"`
	Date      string            `json:"date,omitempty"`
	Data      map[string]string `json:"data,omitempty"`
}

// TopicHabitActivity is the topic carrying habit lifecycle and
// tracking events to realtime subscribers.
const TopicHabitActivity = "habits.activity"

// NewActivityMessage builds a broker message for a habit event.
func NewActivityMessage(userID, habitID, habitName, event, date string, data map[string]string) (*Message, error) {
	payload, err := json.Marshal(ActivityMessage{
		UserID:    userID,
		HabitID:   habitID,
		HabitName: habitName,
		Event:     event,
		Date:      date,
		Data:      data,
	})
	if err != nil {
		return nil, err
	}

	return &Message{
		ID:          uuid.New().String(),
		Topic:       TopicHabitActivity,
		Payload:     payload,
		PublishedAt: time.Now(),
		Attributes: map[string]string{
			"event": event,
			"user":  userID,
		},
	}, nil
}
