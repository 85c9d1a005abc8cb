// Package watch implements a single-slot broadcast signal. Each published
// signal carries no payload; subscribers re-query whatever state they care
// about. A subscriber that has not consumed its pending signal does not
// receive another one, and a slow subscriber never blocks the publisher.
package watch

import "sync"

type Broadcaster struct {
	mu   sync.Mutex
	subs map[*Subscription]struct{}
}

func New() *Broadcaster {
	return &Broadcaster{subs: make(map[*Subscription]struct{})}
}

// Publish signals every current subscriber. If a subscriber already has an
// unread signal pending, the new one is dropped (latest wins).
func (b *Broadcaster) Publish() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for s := range b.subs {
		select {
		case s.ch <- struct{}{}:
		default:
		}
	}
}

// Subscribe registers a new subscriber. The caller must Cancel it when done.
func (b *Broadcaster) Subscribe() *Subscription {
	s := &Subscription{b: b, ch: make(chan struct{}, 1)}
	b.mu.Lock()
	b.subs[s] = struct{}{}
	b.mu.Unlock()
	return s
}

// Subscription is one subscriber's view of the broadcast.
type Subscription struct {
	b  *Broadcaster
	ch chan struct{}
}

// Notify returns the channel that receives at most one pending signal.
func (s *Subscription) Notify() <-chan struct{} {
	return s.ch
}

// Cancel removes the subscription. It is safe to call more than once.
func (s *Subscription) Cancel() {
	s.b.mu.Lock()
	delete(s.b.subs, s)
	s.b.mu.Unlock()
}
