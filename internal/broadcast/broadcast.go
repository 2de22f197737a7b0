// Package broadcast fans publish notifications out to connected listeners.
// It is the server-side counterpart of the dashboard's cross-tab refresh
// signal: delivery is best effort and listeners react by refetching, so
// dropped or duplicated events are harmless.
package broadcast

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

const subscriberBuffer = 4

// Event announces that the published content changed.
type Event struct {
	Id   string    `json:"id"`
	Type string    `json:"type"`
	At   time.Time `json:"at"`
}

// EventPublished is the only event type emitted today.
const EventPublished = "published"

// Broadcaster is an in-process publish/subscribe hub.
type Broadcaster struct {
	mu   sync.Mutex
	subs map[int]chan Event
	next int
}

func New() *Broadcaster {
	return &Broadcaster{
		subs: make(map[int]chan Event),
	}
}

// Publish notifies every subscriber and returns the emitted event. Sends
// never block: a subscriber whose buffer is full misses the event and
// catches up on its next refetch.
func (b *Broadcaster) Publish() Event {
	ev := Event{
		Id:   uuid.NewString(),
		Type: EventPublished,
		At:   time.Now(),
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs {
		select {
		case ch <- ev:
		default:
		}
	}
	return ev
}

// Subscribe registers a listener. The returned cancel func must be called
// to release the subscription.
func (b *Broadcaster) Subscribe() (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.next
	b.next++
	ch := make(chan Event, subscriberBuffer)
	b.subs[id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if _, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(ch)
		}
	}
	return ch, cancel
}

// Len returns the number of active subscribers.
func (b *Broadcaster) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
