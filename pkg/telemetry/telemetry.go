package telemetry

import (
	"sync"
	"time"
)

// EventType identifies the kind of telemetry event.
type EventType string

const (
	EventImageLoaded    EventType = "image.loaded"
	EventImageFailed    EventType = "image.failed"
	EventConfigReloaded EventType = "config.reloaded"
	EventRenderComplete EventType = "render.completed"
)

// Event describes a state change hosts can react to, typically by
// scheduling another render pass.
type Event struct {
	Type      EventType      `json:"type"`
	Timestamp time.Time      `json:"timestamp"`
	SessionID string         `json:"sessionId,omitempty"`
	Key       string         `json:"key,omitempty"`
	Data      map[string]any `json:"data,omitempty"`
}

// subscriberBuffer bounds each subscription; Publish drops events for a
// subscriber whose buffer is full.
const subscriberBuffer = 64

type subscription struct {
	events chan Event
	types  map[EventType]struct{}
}

func (s *subscription) wants(t EventType) bool {
	if len(s.types) == 0 {
		return true
	}
	_, ok := s.types[t]
	return ok
}

// Hub fans events out to subscribers. A nil Hub discards everything.
type Hub struct {
	mu     sync.RWMutex
	subs   map[*subscription]struct{}
	closed bool
}

func NewHub() *Hub {
	return &Hub{subs: make(map[*subscription]struct{})}
}

// Publish stamps event and offers it to every interested subscriber
// without blocking.
func (h *Hub) Publish(event Event) {
	if h == nil {
		return
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		return
	}
	for sub := range h.subs {
		if !sub.wants(event.Type) {
			continue
		}
		select {
		case sub.events <- event:
		default:
		}
	}
}

// Subscribe returns a channel of future events of the given types (all
// types when none are given) and a func that ends the subscription. After
// Close the channel is returned already closed.
func (h *Hub) Subscribe(types ...EventType) (<-chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		done := make(chan Event)
		close(done)
		return done, func() {}
	}
	sub := &subscription{events: make(chan Event, subscriberBuffer)}
	if len(types) > 0 {
		sub.types = make(map[EventType]struct{}, len(types))
		for _, t := range types {
			sub.types[t] = struct{}{}
		}
	}
	h.subs[sub] = struct{}{}
	return sub.events, func() { h.drop(sub) }
}

func (h *Hub) drop(sub *subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.subs[sub]; ok {
		delete(h.subs, sub)
		close(sub.events)
	}
}

// Close ends every subscription. Later publishes are ignored.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for sub := range h.subs {
		close(sub.events)
		delete(h.subs, sub)
	}
}
