package realtime

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/Gajendran57/GoalGrid/pkg/broker"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestConsumerBridgesBrokerToHub(t *testing.T) {
	bus := broker.NewInMemoryBroker(quietLogger(), 8)
	defer bus.Close()

	h := NewHub(4)
	consumer := NewBrokerConsumer(bus, h, quietLogger())

	assert.NoError(t, consumer.Start(context.Background()))
	assert.True(t, consumer.IsRunning())

	events, cancel, err := h.Subscribe("alice")
	assert.NoError(t, err)
	defer cancel()

	msg, err := broker.NewActivityMessage("alice", "h1", "Morning run", "habit_tracked", "2025-03-15", nil)
	assert.NoError(t, err)
	assert.NoError(t, bus.Publish(context.Background(), broker.TopicHabitActivity, msg.Payload, msg.Attributes))

	ev := receiveEvent(t, events)
	assert.Equal(t, "alice", ev.UserID)
	assert.Equal(t, "Morning run", ev.HabitName)
	assert.Equal(t, "habit_tracked", ev.Event)
	assert.Equal(t, "2025-03-15", ev.Date)
	assert.False(t, ev.Timestamp.IsZero())
}

func TestConsumerStartTwice(t *testing.T) {
	bus := broker.NewInMemoryBroker(quietLogger(), 8)
	defer bus.Close()

	consumer := NewBrokerConsumer(bus, NewHub(4), quietLogger())

	assert.NoError(t, consumer.Start(context.Background()))
	assert.Error(t, consumer.Start(context.Background()))
}

func TestConsumerStop(t *testing.T) {
	bus := broker.NewInMemoryBroker(quietLogger(), 8)
	defer bus.Close()

	h := NewHub(4)
	consumer := NewBrokerConsumer(bus, h, quietLogger())

	assert.NoError(t, consumer.Start(context.Background()))
	assert.NoError(t, consumer.Stop())
	assert.False(t, consumer.IsRunning())

	// Stopping an idle consumer is a no-op.
	assert.NoError(t, consumer.Stop())

	events, cancel, err := h.Subscribe("alice")
	assert.NoError(t, err)
	defer cancel()

	msg, err := broker.NewActivityMessage("alice", "h1", "Morning run", "habit_tracked", "", nil)
	assert.NoError(t, err)
	assert.NoError(t, bus.Publish(context.Background(), broker.TopicHabitActivity, msg.Payload, msg.Attributes))

	select {
	case ev := <-events:
		t.Fatalf("stopped consumer still delivered %+v", ev)
	case <-time.After(100 * time.Millisecond):
	}
}
