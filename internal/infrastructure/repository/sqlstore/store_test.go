package sqlstore

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/matchday/internal/domain/attendance"
	"github.com/riskibarqy/matchday/internal/domain/convocation"
	"github.com/riskibarqy/matchday/internal/domain/event"
	"github.com/riskibarqy/matchday/internal/domain/formation"
	"github.com/riskibarqy/matchday/internal/domain/match"
	"github.com/riskibarqy/matchday/internal/domain/player"
	"github.com/riskibarqy/matchday/internal/domain/store"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	dsn := SQLiteDSN(filepath.Join(t.TempDir(), "matchday.db"))
	if err := Migrate("sqlite", dsn); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	return New(db, DialectSQLite)
}

func intp(v int) *int { return &v }
func idp(v int64) *int64 { return &v }

func seedPlayer(t *testing.T, repo player.Repository, name string, pos player.Position) player.Player {
	t.Helper()
	p, err := repo.Create(context.Background(), player.Player{
		Name:              name,
		Position:          pos,
		ConvocationStatus: player.StatusAvailable,
		IsConvocato:       true,
	})
	if err != nil {
		t.Fatalf("create player %s: %v", name, err)
	}
	return p
}

func TestRebind(t *testing.T) {
	lite := conn{dialect: DialectSQLite}
	got := lite.rebind("SELECT id FROM players WHERE id = $1 AND name = $12")
	if got != "SELECT id FROM players WHERE id = ?1 AND name = ?12" {
		t.Fatalf("unexpected sqlite query: %s", got)
	}

	pg := conn{dialect: DialectPostgres}
	if q := "SELECT $1"; pg.rebind(q) != q {
		t.Fatalf("postgres query should be untouched")
	}
}

func TestDialectForDriver(t *testing.T) {
	for driver, want := range map[string]Dialect{"postgres": DialectPostgres, "pgx": DialectPostgres, "sqlite": DialectSQLite} {
		got, err := DialectForDriver(driver)
		if err != nil || got != want {
			t.Fatalf("driver %s: got %q, %v", driver, got, err)
		}
	}
	if _, err := DialectForDriver("mysql"); err == nil {
		t.Fatalf("expected unsupported driver error")
	}
}

func TestPlayerRepository_CRUDAndCounters(t *testing.T) {
	ctx := context.Background()
	repos := newTestStore(t).Repositories()

	keeper := seedPlayer(t, repos.Players, "Keeper", player.PositionGoalkeeper)
	striker := seedPlayer(t, repos.Players, "Striker", player.PositionForward)

	keeper.SuspensionDays = 2
	if err := repos.Players.Update(ctx, keeper); err != nil {
		t.Fatalf("update: %v", err)
	}

	if err := repos.Players.AdjustSuspensions(ctx, []int64{keeper.ID, striker.ID}, -1); err != nil {
		t.Fatalf("adjust suspensions: %v", err)
	}
	if err := repos.Players.AdjustCards(ctx, striker.ID, 1, 0); err != nil {
		t.Fatalf("adjust cards: %v", err)
	}

	got, ok, err := repos.Players.GetByID(ctx, keeper.ID)
	if err != nil || !ok {
		t.Fatalf("get keeper: ok=%v err=%v", ok, err)
	}
	if got.SuspensionDays != 1 {
		t.Fatalf("expected suspension 1, got %d", got.SuspensionDays)
	}

	other, _, _ := repos.Players.GetByID(ctx, striker.ID)
	if other.SuspensionDays != 0 || other.YellowCards != 1 {
		t.Fatalf("unexpected striker counters: %+v", other)
	}

	list, err := repos.Players.GetByIDs(ctx, []int64{striker.ID, 999})
	if err != nil || len(list) != 1 {
		t.Fatalf("get by ids: %+v %v", list, err)
	}

	if err := repos.Players.Delete(ctx, striker.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := repos.Players.GetByID(ctx, striker.ID); ok {
		t.Fatalf("expected striker to be gone")
	}
}

func TestFormationRepository_UpsertKeepsMinutes(t *testing.T) {
	ctx := context.Background()
	repos := newTestStore(t).Repositories()

	p := seedPlayer(t, repos.Players, "Mid", player.PositionMidfielder)
	m, err := repos.Matches.Create(ctx, match.Session{Opponent: "Alpha", MatchDate: "2026-03-01"})
	if err != nil {
		t.Fatalf("create match: %v", err)
	}

	err = repos.Formations.UpsertBatch(ctx, []formation.Assignment{
		{MatchID: m.ID, PlayerID: p.ID, Status: formation.StatusBench, MinutesPlayed: intp(28), MinuteEntered: intp(65)},
	})
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	err = repos.Formations.UpsertBatch(ctx, []formation.Assignment{
		{MatchID: m.ID, PlayerID: p.ID, Status: formation.StatusStarter},
	})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	items, err := repos.Formations.ListByMatch(ctx, m.ID)
	if err != nil || len(items) != 1 {
		t.Fatalf("list formations: %+v %v", items, err)
	}
	if items[0].Status != formation.StatusStarter || items[0].Minutes() != 28 || *items[0].MinuteEntered != 65 {
		t.Fatalf("unexpected assignment: %+v", items[0])
	}

	ok, err := repos.Formations.UpdateMinutes(ctx, formation.MinutesUpdate{MatchID: m.ID, PlayerID: p.ID, MinutesPlayed: intp(90)})
	if err != nil || !ok {
		t.Fatalf("update minutes: ok=%v err=%v", ok, err)
	}
	ok, err = repos.Formations.UpdateMinutes(ctx, formation.MinutesUpdate{MatchID: m.ID, PlayerID: 999, MinutesPlayed: intp(1)})
	if err != nil || ok {
		t.Fatalf("expected missing row to report false: ok=%v err=%v", ok, err)
	}

	if err := repos.Formations.ResetMinutes(ctx, m.ID); err != nil {
		t.Fatalf("reset minutes: %v", err)
	}
	items, _ = repos.Formations.ListByMatch(ctx, m.ID)
	if items[0].Minutes() != 0 || items[0].MinuteEntered != nil {
		t.Fatalf("expected reset minutes: %+v", items[0])
	}
}

func TestFormationRepository_UnknownPlayerIsConstraint(t *testing.T) {
	ctx := context.Background()
	repos := newTestStore(t).Repositories()

	m, err := repos.Matches.Create(ctx, match.Session{Opponent: "Alpha", MatchDate: "2026-03-01"})
	if err != nil {
		t.Fatalf("create match: %v", err)
	}
	err = repos.Formations.UpsertBatch(ctx, []formation.Assignment{{MatchID: m.ID, PlayerID: 4242, Status: formation.StatusStarter}})
	if !errors.Is(err, store.ErrConstraint) {
		t.Fatalf("expected constraint error, got %v", err)
	}
}

func TestEventRepository_TimelineOrder(t *testing.T) {
	ctx := context.Background()
	repos := newTestStore(t).Repositories()

	p := seedPlayer(t, repos.Players, "Nine", player.PositionForward)
	m, _ := repos.Matches.Create(ctx, match.Session{Opponent: "Beta", MatchDate: "2026-03-08"})

	saved, err := repos.Events.AppendBatch(ctx, []event.Event{
		{MatchID: m.ID, Type: event.TypeGoal, PlayerID: idp(p.ID), Half: 2, Minute: 10},
		{MatchID: m.ID, Type: event.TypeNote, Half: 1, Minute: 30, Description: "pressing"},
		{MatchID: m.ID, Type: event.TypeRating, PlayerID: idp(p.ID), Rating: intp(7), Half: 2, Minute: 10},
	})
	if err != nil {
		t.Fatalf("append batch: %v", err)
	}
	if len(saved) != 3 || saved[0].ID == 0 || saved[0].ID >= saved[2].ID {
		t.Fatalf("unexpected ids: %+v", saved)
	}

	items, err := repos.Events.ListByMatch(ctx, m.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if items[0].Type != event.TypeNote || items[1].Type != event.TypeGoal || items[2].Type != event.TypeRating {
		t.Fatalf("unexpected order: %+v", items)
	}
	if items[2].Rating == nil || *items[2].Rating != 7 {
		t.Fatalf("rating not persisted: %+v", items[2])
	}

	// deleting the player keeps its events
	if err := repos.Players.Delete(ctx, p.ID); err != nil {
		t.Fatalf("delete player: %v", err)
	}
	n, err := repos.Events.DeleteByMatch(ctx, m.ID)
	if err != nil || n != 3 {
		t.Fatalf("delete by match: n=%d err=%v", n, err)
	}
}

func TestConvocationRepository_PlayersRoundTrip(t *testing.T) {
	ctx := context.Background()
	repos := newTestStore(t).Repositories()

	a := seedPlayer(t, repos.Players, "A", player.PositionDefender)
	b := seedPlayer(t, repos.Players, "B", player.PositionDefender)
	c := seedPlayer(t, repos.Players, "C", player.PositionDefender)

	created, err := repos.Convocations.Create(ctx, convocation.Convocation{
		Name:      "Round 4",
		MatchDate: "2026-03-15",
		Opponent:  "Gamma",
		PlayerIDs: []int64{b.ID, a.ID},
	})
	if err != nil {
		t.Fatalf("create convocation: %v", err)
	}

	got, ok, err := repos.Convocations.GetByID(ctx, created.ID)
	if err != nil || !ok {
		t.Fatalf("get convocation: ok=%v err=%v", ok, err)
	}
	if len(got.PlayerIDs) != 2 || got.PlayerIDs[0] != b.ID {
		t.Fatalf("unexpected players: %+v", got.PlayerIDs)
	}

	got.PlayerIDs = []int64{c.ID}
	got.Notes = "bring both kits"
	if err := repos.Convocations.Update(ctx, got); err != nil {
		t.Fatalf("update convocation: %v", err)
	}
	list, err := repos.Convocations.List(ctx)
	if err != nil || len(list) != 1 {
		t.Fatalf("list convocations: %+v %v", list, err)
	}
	if len(list[0].PlayerIDs) != 1 || list[0].PlayerIDs[0] != c.ID || list[0].Notes != "bring both kits" {
		t.Fatalf("unexpected convocation: %+v", list[0])
	}

	if err := repos.Convocations.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete convocation: %v", err)
	}
	if _, ok, _ := repos.Convocations.GetByID(ctx, created.ID); ok {
		t.Fatalf("expected convocation to be gone")
	}
}

func TestAttendanceRepository_Upsert(t *testing.T) {
	ctx := context.Background()
	repos := newTestStore(t).Repositories()
	p := seedPlayer(t, repos.Players, "A", player.PositionDefender)

	for _, status := range []attendance.Status{attendance.StatusAbsent, attendance.StatusPresent} {
		if err := repos.Attendances.UpsertBatch(ctx, []attendance.Attendance{{Date: "2026-03-02", PlayerID: p.ID, Status: status}}); err != nil {
			t.Fatalf("upsert: %v", err)
		}
	}

	items, err := repos.Attendances.ListByDate(ctx, "2026-03-02")
	if err != nil || len(items) != 1 || items[0].Status != attendance.StatusPresent {
		t.Fatalf("unexpected attendances: %+v %v", items, err)
	}
	n, err := repos.Attendances.DeleteByDate(ctx, "2026-03-02")
	if err != nil || n != 1 {
		t.Fatalf("delete by date: n=%d err=%v", n, err)
	}
}

func TestStore_DoRollsBack(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	errBoom := errors.New("boom")
	err := s.Do(ctx, func(ctx context.Context, repos store.Repositories) error {
		if _, err := repos.Matches.Create(ctx, match.Session{Opponent: "Delta", MatchDate: "2026-04-01"}); err != nil {
			return err
		}
		return errBoom
	})
	if !errors.Is(err, errBoom) {
		t.Fatalf("expected callback error, got %v", err)
	}

	items, err := s.Repositories().Matches.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected rollback, found %d matches", len(items))
	}

	err = s.Do(ctx, func(ctx context.Context, repos store.Repositories) error {
		_, err := repos.Matches.Create(ctx, match.Session{Opponent: "Delta", MatchDate: "2026-04-01", GoalsFor: intp(2), GoalsAgainst: intp(2)})
		return err
	})
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	items, _ = s.Repositories().Matches.List(ctx)
	if len(items) != 1 || items[0].Phase != match.PhaseNotStarted {
		t.Fatalf("unexpected matches after commit: %+v", items)
	}
	if result, ok := items[0].Result(); !ok || result != match.ResultDraw {
		t.Fatalf("unexpected result: %v %v", result, ok)
	}
}
