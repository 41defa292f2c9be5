// Package livefeed fans match updates out to in-process subscribers.
package livefeed

import (
	"context"
	"sync"
	"sync/atomic"
)

// Update is one message pushed to the subscribers of a match.
type Update struct {
	MatchID int64
	Kind    string
	Payload any
}

const (
	KindPhase    = "phase"
	KindEvent    = "event"
	KindDeleted  = "event_deleted"
	KindTimeline = "timeline"
)

// DefaultBuffer is the per-subscriber queue length.
const DefaultBuffer = 16

type subscriber struct {
	ch chan Update
}

// Broker keeps subscriptions per match. Slow subscribers lose updates
// instead of blocking publishers.
type Broker struct {
	mu      sync.RWMutex
	buffer  int
	subs    map[int64]map[*subscriber]struct{}
	dropped atomic.Int64
}

func NewBroker(buffer int) *Broker {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	return &Broker{
		buffer: buffer,
		subs:   make(map[int64]map[*subscriber]struct{}),
	}
}

// Subscribe returns a channel of updates for matchID and a cancel func that
// closes it. The channel is also closed when ctx is done.
func (b *Broker) Subscribe(ctx context.Context, matchID int64) (<-chan Update, func()) {
	sub := &subscriber{ch: make(chan Update, b.buffer)}

	b.mu.Lock()
	if b.subs[matchID] == nil {
		b.subs[matchID] = make(map[*subscriber]struct{})
	}
	b.subs[matchID][sub] = struct{}{}
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs[matchID], sub)
			if len(b.subs[matchID]) == 0 {
				delete(b.subs, matchID)
			}
			b.mu.Unlock()
			close(sub.ch)
		})
	}

	go func() {
		<-ctx.Done()
		cancel()
	}()

	return sub.ch, cancel
}

// Publish delivers u to every current subscriber of u.MatchID.
func (b *Broker) Publish(u Update) {
	if b == nil {
		return
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	for sub := range b.subs[u.MatchID] {
		select {
		case sub.ch <- u:
		default:
			b.dropped.Add(1)
		}
	}
}

// Dropped counts updates discarded because a subscriber queue was full.
func (b *Broker) Dropped() int64 {
	return b.dropped.Load()
}

func (b *Broker) Subscribers(matchID int64) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[matchID])
}
