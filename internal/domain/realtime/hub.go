package realtime

import (
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Hub fans activity events out to connected websocket clients. Each
// user id is a topic; one user can hold several open connections.
type Hub interface {
	// Subscribe returns a channel of events for a user plus a cancel
	// function that must be called when the connection closes.
	Subscribe(userID string) (<-chan *ActivityEvent, func(), error)

	// Publish delivers an event to every open subscription of a user
	Publish(userID string, event *ActivityEvent) error
}

type hub struct {
	mutex     sync.Mutex
	topics    map[string]map[string]chan *ActivityEvent
	topicSize int
}

// NewHub creates a new subscription hub. topicSize bounds the per
// connection buffer; slow clients drop events rather than block.
func NewHub(topicSize int) Hub {
	if topicSize <= 0 {
		topicSize = 16
	}
	return &hub{
		topics:    make(map[string]map[string]chan *ActivityEvent),
		topicSize: topicSize,
	}
}

// Subscribe subscribes to a user's event stream
func (h *hub) Subscribe(userID string) (<-chan *ActivityEvent, func(), error) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if _, exists := h.topics[userID]; !exists {
		h.topics[userID] = make(map[string]chan *ActivityEvent)
	}

	ch := make(chan *ActivityEvent, h.topicSize)
	subscriberID := uuid.New().String()
	h.topics[userID][subscriberID] = ch

	cancel := func() {
		h.mutex.Lock()
		defer h.mutex.Unlock()

		if topicMap, exists := h.topics[userID]; exists {
			delete(topicMap, subscriberID)

			// Clean up topic if no subscribers left
			if len(topicMap) == 0 {
				delete(h.topics, userID)
			}
		}

		close(ch)
	}

	return ch, cancel, nil
}

// Publish publishes an event to all of a user's subscriptions. Sends
// are non-blocking; a subscriber with a full buffer loses the event.
func (h *hub) Publish(userID string, event *ActivityEvent) error {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	subscribers, exists := h.topics[userID]
	if !exists {
		return nil // No open connections, nothing to do
	}

	logrus.WithFields(logrus.Fields{
		"event_id":    event.ID,
		"user_id":     userID,
		"subscribers": len(subscribers),
	}).Debug("Publishing activity event to subscribers")

	for _, ch := range subscribers {
		select {
		case ch <- event:
		default:
			logrus.WithFields(logrus.Fields{
				"event_id": event.ID,
				"user_id":  userID,
			}).Warn("Dropping activity event (subscriber buffer full)")
		}
	}

	return nil
}
