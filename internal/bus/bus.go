package bus

import (
	"strings"
	"sync"
	"sync/atomic"
)

// Bus is an in-process publish/subscribe event bus with namespace filtering.
// Publish never blocks: a subscriber whose buffer is full misses the event
// and is flagged as lagged so it can resynchronize from the store.
type Bus struct {
	mu   sync.RWMutex
	subs map[int]*Subscription
	next int
}

// Subscription receives events whose Kind starts with its namespace.
type Subscription struct {
	C <-chan Event

	ch        chan Event
	namespace string
	lagged    atomic.Bool
	dropped   atomic.Uint64
	close     func()
	closeOnce sync.Once
}

// New creates a new event bus.
func New() *Bus {
	return &Bus{
		subs: make(map[int]*Subscription),
	}
}

// Publish sends an event to all subscribers whose namespace is a prefix of event.Kind.
func (b *Bus) Publish(evt Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, sub := range b.subs {
		if strings.HasPrefix(evt.Kind, sub.namespace) {
			select {
			case sub.ch <- evt:
			default:
				sub.dropped.Add(1)
				sub.lagged.Store(true)
			}
		}
	}
}

// Subscribe registers a subscriber for the given namespace prefix.
// bufSize controls the channel buffer.
func (b *Bus) Subscribe(namespace string, bufSize int) *Subscription {
	ch := make(chan Event, bufSize)
	sub := &Subscription{C: ch, ch: ch, namespace: namespace}

	b.mu.Lock()
	id := b.next
	b.next++
	b.subs[id] = sub
	b.mu.Unlock()

	sub.close = func() {
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
	}
	return sub
}

// Lagged reports whether events were dropped since the last call, and resets the flag.
func (s *Subscription) Lagged() bool {
	return s.lagged.Swap(false)
}

// Dropped returns the total number of events this subscriber missed.
func (s *Subscription) Dropped() uint64 {
	return s.dropped.Load()
}

// Close unsubscribes. No event is sent to C after Close returns. Safe to call twice.
func (s *Subscription) Close() {
	s.closeOnce.Do(s.close)
}
