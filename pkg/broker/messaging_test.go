package broker

import (
	"context"
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func receiveMessage(t *testing.T, ch <-chan *Message) *Message {
	t.Helper()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for message")
		return nil
	}
}

func TestInMemoryBrokerDelivers(t *testing.T) {
	bus := NewInMemoryBroker(quietLogger(), 8)
	defer bus.Close()

	received := make(chan *Message, 1)
	_, err := bus.Subscribe(context.Background(), "orders", func(ctx context.Context, msg *Message) error {
		received <- msg
		return nil
	})
	assert.NoError(t, err)

	attrs := map[string]string{"kind": "test"}
	assert.NoError(t, bus.Publish(context.Background(), "orders", []byte(`{"n":1}`), attrs))

	msg := receiveMessage(t, received)
	assert.NotEmpty(t, msg.ID)
	assert.Equal(t, "orders", msg.Topic)
	assert.JSONEq(t, `{"n":1}`, string(msg.Payload))
	assert.Equal(t, attrs, msg.Attributes)
	assert.False(t, msg.PublishedAt.IsZero())
}

func TestInMemoryBrokerFansOut(t *testing.T) {
	bus := NewInMemoryBroker(quietLogger(), 8)
	defer bus.Close()

	first := make(chan *Message, 1)
	second := make(chan *Message, 1)
	ctx := context.Background()

	_, err := bus.Subscribe(ctx, "orders", func(ctx context.Context, msg *Message) error {
		first <- msg
		return nil
	})
	assert.NoError(t, err)
	_, err = bus.Subscribe(ctx, "orders", func(ctx context.Context, msg *Message) error {
		second <- msg
		return nil
	})
	assert.NoError(t, err)

	assert.NoError(t, bus.Publish(ctx, "orders", []byte("x"), nil))

	assert.Equal(t, "orders", receiveMessage(t, first).Topic)
	assert.Equal(t, "orders", receiveMessage(t, second).Topic)
}

func TestInMemoryBrokerUnsubscribe(t *testing.T) {
	bus := NewInMemoryBroker(quietLogger(), 8)
	defer bus.Close()

	received := make(chan *Message, 1)
	sub, err := bus.Subscribe(context.Background(), "orders", func(ctx context.Context, msg *Message) error {
		received <- msg
		return nil
	})
	assert.NoError(t, err)

	assert.NoError(t, sub.Unsubscribe())
	assert.True(t, sub.IsClosed())
	assert.NoError(t, sub.Unsubscribe(), "second unsubscribe is a no-op")

	assert.NoError(t, bus.Publish(context.Background(), "orders", []byte("x"), nil))

	select {
	case msg := <-received:
		t.Fatalf("unsubscribed handler still got %+v", msg)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestInMemoryBrokerClose(t *testing.T) {
	bus := NewInMemoryBroker(quietLogger(), 8)

	assert.NoError(t, bus.Close())
	assert.NoError(t, bus.Close(), "second close is a no-op")

	assert.Error(t, bus.Publish(context.Background(), "orders", []byte("x"), nil))
	_, err := bus.Subscribe(context.Background(), "orders", func(ctx context.Context, msg *Message) error {
		return nil
	})
	assert.Error(t, err)
}

func TestNewActivityMessage(t *testing.T) {
	msg, err := NewActivityMessage("u1", "h1", "Morning run", "habit_tracked", "2025-03-15", map[string]string{"streak": "4"})
	assert.NoError(t, err)

	assert.Equal(t, TopicHabitActivity, msg.Topic)
	assert.Equal(t, "habit_tracked", msg.Attributes["event"])
	assert.Equal(t, "u1", msg.Attributes["user"])

	var activity ActivityMessage
	assert.NoError(t, json.Unmarshal(msg.Payload, &activity))
	assert.Equal(t, "u1", activity.UserID)
	assert.Equal(t, "h1", activity.HabitID)
	assert.Equal(t, "Morning run", activity.HabitName)
	assert.Equal(t, "2025-03-15", activity.Date)
	assert.Equal(t, "4", activity.Data["streak"])
}
