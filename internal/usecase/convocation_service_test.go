package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/matchday/internal/domain/formation"
	"github.com/riskibarqy/matchday/internal/infrastructure/repository/memory"
)

func newConvocationService(t *testing.T) (*ConvocationService, []int64) {
	t.Helper()

	ctx := context.Background()
	st := memory.NewStore()
	if err := st.Seed(ctx, memory.SeedRoster()); err != nil {
		t.Fatalf("seed roster: %v", err)
	}
	players, err := st.Repositories().Players.List(ctx)
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	ids := make([]int64, 0, len(players))
	for _, p := range players {
		ids = append(ids, p.ID)
	}
	return NewConvocationService(st, st.Repositories().Convocations), ids
}

func TestConvocationService_CreateRejectsUnknownPlayer(t *testing.T) {
	t.Parallel()

	svc, ids := newConvocationService(t)
	_, err := svc.CreateConvocation(context.Background(), ConvocationInput{
		Opponent:  "Virtus",
		MatchDate: "2026-03-08",
		PlayerIDs: []int64{ids[0], 9999},
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestConvocationService_BuildFormationGetsOrCreatesMatch(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, ids := newConvocationService(t)

	conv, err := svc.CreateConvocation(ctx, ConvocationInput{
		Name:        "Giornata 12",
		Opponent:    "Virtus",
		MatchDate:   "2026-03-08",
		PlayerIDs:   ids[:14],
		KickoffTime: "15:00",
	})
	if err != nil {
		t.Fatalf("create convocation: %v", err)
	}

	first, err := svc.BuildFormation(ctx, conv.ID, ids[:11])
	if err != nil {
		t.Fatalf("build formation: %v", err)
	}
	if first.Match.ConvocationID == nil || *first.Match.ConvocationID != conv.ID {
		t.Fatalf("match should be linked to the convocation: %+v", first.Match)
	}
	if len(first.Formation) != 14 || formation.CountStarters(first.Formation) != 11 {
		t.Fatalf("unexpected formation: %+v", first.Formation)
	}

	starters := append([]int64{ids[11]}, ids[1:11]...)
	second, err := svc.BuildFormation(ctx, conv.ID, starters)
	if err != nil {
		t.Fatalf("rebuild formation: %v", err)
	}
	if second.Match.ID != first.Match.ID {
		t.Fatalf("expected the same match to be reused, got %d and %d", first.Match.ID, second.Match.ID)
	}
	for _, row := range second.Formation {
		if row.PlayerID == ids[0] && row.IsStarter() {
			t.Fatalf("player %d should be back on the bench", ids[0])
		}
	}

	if _, err := svc.BuildFormation(ctx, conv.ID, ids[:10]); !errors.Is(err, formation.ErrInvalidFormation) {
		t.Fatalf("expected ten starters to be rejected, got %v", err)
	}
	if _, err := svc.BuildFormation(ctx, conv.ID, append(ids[:10:10], ids[15])); !errors.Is(err, formation.ErrInvalidFormation) {
		t.Fatalf("expected a starter outside the call-up to be rejected, got %v", err)
	}
}

func TestConvocationService_UpdateReplacesPlayers(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, ids := newConvocationService(t)

	conv, err := svc.CreateConvocation(ctx, ConvocationInput{Opponent: "Virtus", MatchDate: "2026-03-08", PlayerIDs: ids[:3]})
	if err != nil {
		t.Fatalf("create convocation: %v", err)
	}
	updated, err := svc.UpdateConvocation(ctx, conv.ID, ConvocationInput{Opponent: "Virtus", MatchDate: "2026-03-09", PlayerIDs: ids[3:5]})
	if err != nil {
		t.Fatalf("update convocation: %v", err)
	}
	if updated.MatchDate != "2026-03-09" || len(updated.PlayerIDs) != 2 || updated.PlayerIDs[0] != ids[3] {
		t.Fatalf("unexpected convocation: %+v", updated)
	}

	if err := svc.DeleteConvocation(ctx, conv.ID); err != nil {
		t.Fatalf("delete convocation: %v", err)
	}
	if _, err := svc.GetConvocation(ctx, conv.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
