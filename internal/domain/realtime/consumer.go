package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Gajendran57/GoalGrid/pkg/broker"
)

// Consumer bridges the habit activity topic into the websocket hub
type Consumer interface {
	// Start starts the consumer
	Start(ctx context.Context) error

	// Stop stops the consumer
	Stop() error

	// IsRunning returns true if the consumer is running
	IsRunning() bool
}

// brokerConsumer implements the Consumer interface
type brokerConsumer struct {
	messageBroker broker.MessageBroker
	hub           Hub
	logger        *logrus.Logger
	topicName     string
	subscription  broker.Subscription
	isRunning     bool
}

// NewBrokerConsumer creates a consumer that routes habit activity
// messages to each user's open connections.
func NewBrokerConsumer(messageBroker broker.MessageBroker, hub Hub, logger *logrus.Logger) Consumer {
	return &brokerConsumer{
		messageBroker: messageBroker,
		hub:           hub,
		logger:        logger,
		topicName:     broker.TopicHabitActivity,
		isRunning:     false,
	}
}

// Start starts the consumer
func (c *brokerConsumer) Start(ctx context.Context) error {
	if c.isRunning {
		return errors.New("consumer already running")
	}

	sub, err := c.messageBroker.Subscribe(ctx, c.topicName, c.handleMessage)
	if err != nil {
		c.logger.WithError(err).Error("Failed to subscribe to activity topic")
		return err
	}

	c.subscription = sub
	c.isRunning = true

	c.logger.WithFields(logrus.Fields{
		"topic":        c.topicName,
		"subscription": sub.ID(),
	}).Info("Activity consumer started")

	return nil
}

// Stop stops the consumer
func (c *brokerConsumer) Stop() error {
	if !c.isRunning {
		return nil
	}

	if c.subscription != nil {
		if err := c.subscription.Unsubscribe(); err != nil {
			c.logger.WithError(err).Error("Failed to unsubscribe from activity topic")
			return err
		}
	}

	c.isRunning = false
	c.subscription = nil

	c.logger.Info("Activity consumer stopped")

	return nil
}

// IsRunning returns true if the consumer is running
func (c *brokerConsumer) IsRunning() bool {
	return c.isRunning
}

// handleMessage fans one activity message out to the owner's connections
func (c *brokerConsumer) handleMessage(ctx context.Context, message *broker.Message) error {
	var activity broker.ActivityMessage
	if err := json.Unmarshal(message.Payload, &activity); err != nil {
		c.logger.WithError(err).Error("Failed to unmarshal activity message")
		return err
	}

	event := &ActivityEvent{
		ID:        message.ID,
		UserID:    activity.UserID,
		HabitID:   activity.HabitID,
		HabitName: activity.HabitName,
		Event:     activity.Event,
		Date:      activity.Date,
		Data:      activity.Data,
		Timestamp: message.PublishedAt,
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	return c.hub.Publish(activity.UserID, event)
}
