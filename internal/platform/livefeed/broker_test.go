package livefeed

import (
	"context"
	"testing"
	"time"
)

func TestBroker_PublishReachesMatchSubscribers(t *testing.T) {
	t.Parallel()

	b := NewBroker(4)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mine, stopMine := b.Subscribe(ctx, 7)
	defer stopMine()
	other, stopOther := b.Subscribe(ctx, 8)
	defer stopOther()

	b.Publish(Update{MatchID: 7, Kind: KindEvent, Payload: "goal"})

	select {
	case u := <-mine:
		if u.Kind != KindEvent || u.Payload != "goal" {
			t.Fatalf("unexpected update: %+v", u)
		}
	case <-time.After(time.Second):
		t.Fatalf("expected update for match 7")
	}

	select {
	case u := <-other:
		t.Fatalf("match 8 should not receive updates of match 7: %+v", u)
	default:
	}
}

func TestBroker_SlowSubscriberDoesNotBlock(t *testing.T) {
	t.Parallel()

	b := NewBroker(1)
	ch, stop := b.Subscribe(context.Background(), 1)
	defer stop()

	b.Publish(Update{MatchID: 1, Kind: KindPhase})
	b.Publish(Update{MatchID: 1, Kind: KindPhase})

	if len(ch) != 1 || b.Dropped() != 1 {
		t.Fatalf("expected one buffered update, got %d dropped=%d", len(ch), b.Dropped())
	}
}

func TestBroker_ContextCancelUnsubscribes(t *testing.T) {
	t.Parallel()

	b := NewBroker(1)
	ctx, cancel := context.WithCancel(context.Background())
	ch, _ := b.Subscribe(ctx, 3)
	cancel()

	select {
	case _, ok := <-ch:
		if ok {
			t.Fatalf("expected closed channel")
		}
	case <-time.After(time.Second):
		t.Fatalf("subscription was not closed")
	}
	if n := b.Subscribers(3); n != 0 {
		t.Fatalf("expected no subscribers, got %d", n)
	}
}
