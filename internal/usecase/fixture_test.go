package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/matchday/internal/domain/formation"
	"github.com/riskibarqy/matchday/internal/domain/match"
	"github.com/riskibarqy/matchday/internal/domain/store"
	"github.com/riskibarqy/matchday/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/matchday/internal/platform/livefeed"
)

type matchFixture struct {
	store    *memory.Store
	repos    store.Repositories
	matchID  int64
	starters []int64
	bench    []int64
}

// newMatchFixture seeds the demo roster and a match with eleven starters
// and five bench players.
func newMatchFixture(t *testing.T) matchFixture {
	t.Helper()

	ctx := context.Background()
	st := memory.NewStore()
	if err := st.Seed(ctx, memory.SeedRoster()); err != nil {
		t.Fatalf("seed roster: %v", err)
	}
	repos := st.Repositories()

	players, err := repos.Players.List(ctx)
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	m, err := repos.Matches.Create(ctx, match.Session{Opponent: "Virtus", MatchDate: "2026-03-01", Phase: match.PhaseNotStarted})
	if err != nil {
		t.Fatalf("create match: %v", err)
	}

	fx := matchFixture{store: st, repos: repos, matchID: m.ID}
	rows := make([]formation.Assignment, 0, len(players))
	for i, p := range players {
		status := formation.StatusBench
		if i < formation.StartersRequired {
			status = formation.StatusStarter
			fx.starters = append(fx.starters, p.ID)
		} else {
			fx.bench = append(fx.bench, p.ID)
		}
		rows = append(rows, formation.Assignment{MatchID: m.ID, PlayerID: p.ID, Status: status})
	}
	if err := repos.Formations.UpsertBatch(ctx, rows); err != nil {
		t.Fatalf("save formation: %v", err)
	}
	return fx
}

func (fx matchFixture) sessions(maxSubs int) *SessionService {
	svc := NewSessionService(fx.store, fx.repos, livefeed.NewBroker(4), maxSubs)
	kickoff := time.Date(2026, 3, 1, 15, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return kickoff }
	return svc
}

func (fx matchFixture) minutesOf(t *testing.T, playerID int64) formation.Assignment {
	t.Helper()

	rows, err := fx.repos.Formations.ListByMatch(context.Background(), fx.matchID)
	if err != nil {
		t.Fatalf("list formation: %v", err)
	}
	for _, row := range rows {
		if row.PlayerID == playerID {
			return row
		}
	}
	t.Fatalf("player %d not in formation", playerID)
	return formation.Assignment{}
}

func intp(v int) *int { return &v }

func idp(v int64) *int64 { return &v }
