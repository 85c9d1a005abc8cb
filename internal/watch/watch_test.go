package watch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPublishWithoutSubscribers(t *testing.T) {
	b := New()
	// Must not block or panic.
	b.Publish()
	b.Publish()
}

func TestSubscriberReceivesSignal(t *testing.T) {
	b := New()
	sub := b.Subscribe()
	defer sub.Cancel()

	b.Publish()
	select {
	case <-sub.Notify():
	case <-time.After(time.Second):
		t.Fatal("signal not delivered")
	}
}

func TestSignalsCoalesce(t *testing.T) {
	b := New()
	sub := b.Subscribe()
	defer sub.Cancel()

	b.Publish()
	b.Publish()
	b.Publish()

	<-sub.Notify()
	select {
	case <-sub.Notify():
		t.Fatal("unread signals should collapse into one")
	default:
	}
}

func TestSlowSubscriberDoesNotBlockPublisher(t *testing.T) {
	b := New()
	sub := b.Subscribe()
	defer sub.Cancel()

	done := make(chan struct{})
	go func() {
		// The subscriber never reads; publishing must still return.
		for i := 0; i < 1000; i++ {
			b.Publish()
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("publisher blocked on an unread subscriber")
	}
}

func TestMultipleSubscribersObserveSameSignal(t *testing.T) {
	b := New()
	first := b.Subscribe()
	defer first.Cancel()
	second := b.Subscribe()
	defer second.Cancel()

	b.Publish()

	for _, sub := range []*Subscription{first, second} {
		select {
		case <-sub.Notify():
		case <-time.After(time.Second):
			t.Fatal("signal not delivered to every subscriber")
		}
	}
}

func TestCancelStopsDelivery(t *testing.T) {
	b := New()
	sub := b.Subscribe()
	sub.Cancel()

	b.Publish()
	select {
	case <-sub.Notify():
		t.Fatal("cancelled subscription received a signal")
	default:
	}

	// Cancel is idempotent.
	sub.Cancel()
	assert.NotPanics(t, func() { sub.Cancel() })
}
