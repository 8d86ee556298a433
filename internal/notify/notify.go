// Package notify carries the "cart changed" signal from the cart engine to
// its observers (badge counters, websocket feeds). The event has no payload
// beyond the owning user id; consumers re-query the cart as needed.
package notify

import (
	"context"
	"sync"
)

// Notifier is implemented by anything that wants to hear about successful
// cart mutations.
type Notifier interface {
	CartChanged(ctx context.Context, userID string)
}

// Hub is an in-process Notifier fanning events out to channel subscribers.
type Hub struct {
	mu   sync.Mutex
	next int
	subs map[int]chan string
}

func NewHub() *Hub {
	return &Hub{subs: make(map[int]chan string)}
}

// Subscribe registers a listener and returns its event channel together with
// a cancel func. Slow listeners drop events instead of blocking publishers.
func (h *Hub) Subscribe() (<-chan string, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.next
	h.next++
	ch := make(chan string, 16)
	h.subs[id] = ch

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if sub, ok := h.subs[id]; ok {
			delete(h.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// CartChanged publishes the owning user id to every subscriber.
func (h *Hub) CartChanged(_ context.Context, userID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, ch := range h.subs {
		select {
		case ch <- userID:
		default:
		}
	}
}

// Multi fans a notification out to several notifiers.
type Multi []Notifier

func (m Multi) CartChanged(ctx context.Context, userID string) {
	for _, n := range m {
		n.CartChanged(ctx, userID)
	}
}
