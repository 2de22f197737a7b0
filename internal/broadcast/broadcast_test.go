package broadcast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishReachesSubscribers(t *testing.T) {
	b := New()

	ch1, cancel1 := b.Subscribe()
	ch2, cancel2 := b.Subscribe()
	defer cancel1()
	defer cancel2()

	assert.Equal(t, 2, b.Len())

	ev := b.Publish()
	assert.Equal(t, EventPublished, ev.Type)
	assert.NotEmpty(t, ev.Id)

	for _, ch := range []<-chan Event{ch1, ch2} {
		select {
		case got := <-ch:
			assert.Equal(t, ev.Id, got.Id)
		case <-time.After(time.Second):
			t.Fatal("subscriber did not receive the event")
		}
	}
}

func TestCancelRemovesSubscriber(t *testing.T) {
	b := New()

	ch, cancel := b.Subscribe()
	cancel()
	assert.Equal(t, 0, b.Len())

	// channel is closed after cancel
	_, open := <-ch
	assert.False(t, open)

	// double cancel is safe
	cancel()
}

func TestSlowSubscriberDropsEvents(t *testing.T) {
	b := New()

	ch, cancel := b.Subscribe()
	defer cancel()

	// overflow the buffer; Publish must never block
	done := make(chan struct{})
	go func() {
		for i := 0; i < subscriberBuffer*3; i++ {
			b.Publish()
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked on a slow subscriber")
	}

	// the subscriber still sees up to its buffer worth of events
	received := 0
	for {
		select {
		case <-ch:
			received++
			continue
		default:
		}
		break
	}
	require.LessOrEqual(t, received, subscriberBuffer)
	require.Positive(t, received)
}
