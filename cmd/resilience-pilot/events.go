package main

import (
	"sync"
	"time"
)

// eventType classifies an entry on the chaos event stream.
type eventType string

const (
	eventChaosEnabled  eventType = "chaos_enabled"
	eventChaosReset    eventType = "chaos_reset"
	eventChaosInjected eventType = "chaos_injected"
	eventHeartbeat     eventType = "heartbeat"
)

// event is a single chaos state change, delivered to SSE and WebSocket
// subscribers and kept in the recent-events ring.
type event struct {
	Type        eventType `json:"type"`
	Timestamp   time.Time `json:"timestamp"`
	Mode        string    `json:"mode,omitempty"`
	Probability float64   `json:"probability,omitempty"`
	Detail      string    `json:"detail,omitempty"`
}

// subscriberBuffer is the per-subscriber channel capacity. A subscriber that
// falls further behind than this starts losing events.
const subscriberBuffer = 16

// eventBus fans chaos events out to stream subscribers. Publishing never
// blocks. The bus also keeps a bounded ring of recent events for /info.
type eventBus struct {
	mu          sync.Mutex
	subscribers map[chan event]struct{}
	recent      []event
	recentSize  int
	closed      bool
}

func newEventBus(recentSize int) *eventBus {
	if recentSize < 0 {
		recentSize = 0
	}
	return &eventBus{
		subscribers: make(map[chan event]struct{}),
		recentSize:  recentSize,
	}
}

// subscribe registers a new subscriber channel. The caller must drain it and
// call unsubscribe when done.
func (b *eventBus) subscribe() chan event {
	ch := make(chan event, subscriberBuffer)
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		close(ch)
		return ch
	}
	b.subscribers[ch] = struct{}{}
	return ch
}

// unsubscribe removes a subscriber and closes its channel.
func (b *eventBus) unsubscribe(ch chan event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.subscribers[ch]; ok {
		delete(b.subscribers, ch)
		close(ch)
	}
}

// publish delivers ev to all subscribers without blocking and appends it to
// the recent-events ring. Events overflowing a subscriber's buffer are
// dropped for that subscriber only.
func (b *eventBus) publish(ev event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}

	if b.recentSize > 0 {
		b.recent = append(b.recent, ev)
		if len(b.recent) > b.recentSize {
			b.recent = b.recent[1:]
		}
	}

	for ch := range b.subscribers {
		select {
		case ch <- ev:
		default:
		}
	}
}

// recentEvents returns a copy of the ring, oldest first.
func (b *eventBus) recentEvents() []event {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]event, len(b.recent))
	copy(out, b.recent)
	return out
}

// close shuts the bus down and closes all subscriber channels.
func (b *eventBus) close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for ch := range b.subscribers {
		close(ch)
	}
	b.subscribers = nil
}

// publishChaosEvent emits a state-change event carrying the current chaos
// probability.
func (a *app) publishChaosEvent(t eventType, mode string) {
	_, p := a.chaos.snapshot()
	a.events.publish(event{
		Type:        t,
		Timestamp:   time.Now(),
		Mode:        mode,
		Probability: p,
	})
}
