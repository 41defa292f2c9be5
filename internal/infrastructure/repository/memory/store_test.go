package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/matchday/internal/domain/event"
	"github.com/riskibarqy/matchday/internal/domain/formation"
	"github.com/riskibarqy/matchday/internal/domain/match"
	"github.com/riskibarqy/matchday/internal/domain/player"
	"github.com/riskibarqy/matchday/internal/domain/store"
)

func intp(v int) *int { return &v }

func TestStore_DoRestoresSnapshotOnError(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	if err := s.Seed(ctx, SeedRoster()[:2]); err != nil {
		t.Fatalf("seed: %v", err)
	}

	errBoom := errors.New("boom")
	err := s.Do(ctx, func(ctx context.Context, repos store.Repositories) error {
		m, err := repos.Matches.Create(ctx, match.Session{Opponent: "Alpha", MatchDate: "2026-03-01"})
		if err != nil {
			return err
		}
		if _, err := repos.Events.Append(ctx, event.Event{MatchID: m.ID, Type: event.TypeNote, Half: 1}); err != nil {
			return err
		}
		if err := repos.Players.Delete(ctx, 1); err != nil {
			return err
		}
		return errBoom
	})
	if !errors.Is(err, errBoom) {
		t.Fatalf("expected callback error, got %v", err)
	}

	repos := s.Repositories()
	matches, _ := repos.Matches.List(ctx)
	events, _ := repos.Events.ListAll(ctx)
	players, _ := repos.Players.List(ctx)
	if len(matches) != 0 || len(events) != 0 || len(players) != 2 {
		t.Fatalf("state not restored: matches=%d events=%d players=%d", len(matches), len(events), len(players))
	}
}

func TestFormationRepository_PartialUpsertAndConstraint(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	repos := s.Repositories()

	p, _ := repos.Players.Create(ctx, player.Player{Name: "Mid", Position: player.PositionMidfielder})
	m, _ := repos.Matches.Create(ctx, match.Session{Opponent: "Alpha", MatchDate: "2026-03-01"})

	if err := repos.Formations.UpsertBatch(ctx, []formation.Assignment{{MatchID: m.ID, PlayerID: p.ID, Status: formation.StatusBench, MinutesPlayed: intp(20)}}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := repos.Formations.UpsertBatch(ctx, []formation.Assignment{{MatchID: m.ID, PlayerID: p.ID, Status: formation.StatusStarter}}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	items, _ := repos.Formations.ListByMatch(ctx, m.ID)
	if len(items) != 1 || !items[0].IsStarter() || items[0].Minutes() != 20 {
		t.Fatalf("unexpected formation: %+v", items)
	}

	err := repos.Formations.UpsertBatch(ctx, []formation.Assignment{{MatchID: m.ID, PlayerID: 99, Status: formation.StatusBench}})
	if !errors.Is(err, store.ErrConstraint) {
		t.Fatalf("expected constraint error, got %v", err)
	}
}

func TestPlayerRepository_AdjustSuspensionsOnlyPositive(t *testing.T) {
	ctx := context.Background()
	repos := NewStore().Repositories()

	a, _ := repos.Players.Create(ctx, player.Player{Name: "A", SuspensionDays: 2})
	b, _ := repos.Players.Create(ctx, player.Player{Name: "B"})

	if err := repos.Players.AdjustSuspensions(ctx, []int64{a.ID, b.ID}, -1); err != nil {
		t.Fatalf("adjust: %v", err)
	}
	if err := repos.Players.AdjustSuspensions(ctx, []int64{a.ID, b.ID}, 1); err != nil {
		t.Fatalf("adjust: %v", err)
	}

	gotA, _, _ := repos.Players.GetByID(ctx, a.ID)
	gotB, _, _ := repos.Players.GetByID(ctx, b.ID)
	if gotA.SuspensionDays != 2 || gotB.SuspensionDays != 0 {
		t.Fatalf("unexpected counters: a=%d b=%d", gotA.SuspensionDays, gotB.SuspensionDays)
	}
}

func TestEventRepository_OrdersTimeline(t *testing.T) {
	ctx := context.Background()
	repos := NewStore().Repositories()
	m, _ := repos.Matches.Create(ctx, match.Session{Opponent: "Alpha", MatchDate: "2026-03-01"})

	_, err := repos.Events.AppendBatch(ctx, []event.Event{
		{MatchID: m.ID, Type: event.TypeCorner, Half: 2, Minute: 5},
		{MatchID: m.ID, Type: event.TypeOffside, Half: 1, Minute: 40},
		{MatchID: m.ID, Type: event.TypeNote, Half: 2, Minute: 5},
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	items, _ := repos.Events.ListByMatch(ctx, m.ID)
	if items[0].Type != event.TypeOffside || items[1].Type != event.TypeCorner || items[2].Type != event.TypeNote {
		t.Fatalf("unexpected order: %+v", items)
	}

	if _, err := repos.Events.Append(ctx, event.Event{MatchID: 4242, Type: event.TypeNote, Half: 1}); !errors.Is(err, store.ErrConstraint) {
		t.Fatalf("expected constraint error, got %v", err)
	}
}
