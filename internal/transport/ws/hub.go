package ws

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"
)

// Message is the event-feed envelope format
type Message struct {
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
}

// Subscriber is one connected dashboard client
type Subscriber struct {
	Send chan []byte
}

// Hub fans adaptation and interaction events out to dashboard subscribers
type Hub struct {
	subscribers map[*Subscriber]bool
	mu          sync.RWMutex

	register   chan *Subscriber
	unregister chan *Subscriber
	events     chan []byte

	logger *zap.Logger
}

// NewHub creates the hub and starts its event loop
func NewHub(logger *zap.Logger) *Hub {
	h := &Hub{
		subscribers: make(map[*Subscriber]bool),
		register:    make(chan *Subscriber),
		unregister:  make(chan *Subscriber),
		events:      make(chan []byte, 256),
		logger:      logger,
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			h.subscribers[sub] = true
			h.mu.Unlock()
			h.logger.Debug("dashboard subscriber connected",
				zap.Int("subscribers", h.count()))

		case sub := <-h.unregister:
			h.mu.Lock()
			if h.subscribers[sub] {
				delete(h.subscribers, sub)
				close(sub.Send)
			}
			h.mu.Unlock()
			h.logger.Debug("dashboard subscriber disconnected",
				zap.Int("subscribers", h.count()))

		case data := <-h.events:
			h.mu.RLock()
			for sub := range h.subscribers {
				select {
				case sub.Send <- data:
				default:
					// Drop the event if the subscriber's buffer is full.
				}
			}
			h.mu.RUnlock()
		}
	}
}

func (h *Hub) count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}

// Register adds a subscriber
func (h *Hub) Register(sub *Subscriber) {
	h.register <- sub
}

// Unregister removes a subscriber
func (h *Hub) Unregister(sub *Subscriber) {
	h.unregister <- sub
}

// Publish broadcasts an event to all subscribers (implements
// service.Broadcaster)
func (h *Hub) Publish(event string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		h.logger.Warn("event payload not serializable", zap.String("event", event), zap.Error(err))
		return
	}
	msg, _ := json.Marshal(&Message{Event: event, Payload: data})
	select {
	case h.events <- msg:
	default:
		// Feed is best-effort; never block a request on slow dashboards.
	}
}
