package memory

import (
	"context"
	"maps"
	"sync"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/matchday/internal/domain/attendance"
	"github.com/riskibarqy/matchday/internal/domain/convocation"
	"github.com/riskibarqy/matchday/internal/domain/event"
	"github.com/riskibarqy/matchday/internal/domain/formation"
	"github.com/riskibarqy/matchday/internal/domain/match"
	"github.com/riskibarqy/matchday/internal/domain/player"
	"github.com/riskibarqy/matchday/internal/domain/store"
)

type formationKey struct {
	matchID  int64
	playerID int64
}

type attendanceKey struct {
	date     string
	playerID int64
}

type dataset struct {
	players      map[int64]player.Player
	matches      map[int64]match.Session
	formations   map[formationKey]formation.Assignment
	events       map[int64]event.Event
	attendances  map[attendanceKey]attendance.Attendance
	convocations map[int64]convocation.Convocation
	seq          int64
}

func newDataset() dataset {
	return dataset{
		players:      make(map[int64]player.Player),
		matches:      make(map[int64]match.Session),
		formations:   make(map[formationKey]formation.Assignment),
		events:       make(map[int64]event.Event),
		attendances:  make(map[attendanceKey]attendance.Attendance),
		convocations: make(map[int64]convocation.Convocation),
	}
}

// Stored values are never mutated in place, so copying the maps is enough
// for a snapshot.
func (d dataset) clone() dataset {
	return dataset{
		players:      maps.Clone(d.players),
		matches:      maps.Clone(d.matches),
		formations:   maps.Clone(d.formations),
		events:       maps.Clone(d.events),
		attendances:  maps.Clone(d.attendances),
		convocations: maps.Clone(d.convocations),
		seq:          d.seq,
	}
}

func (d *dataset) nextID() int64 {
	d.seq++
	return d.seq
}

// Store is the in-process backend. Do serialises units of work and restores
// the previous state when the callback fails.
type Store struct {
	mu   sync.RWMutex
	data dataset
}

var _ store.UnitOfWork = (*Store)(nil)

func NewStore() *Store {
	return &Store{data: newDataset()}
}

// Repositories returns repositories that lock the store per call.
func (s *Store) Repositories() store.Repositories {
	return s.bind(true)
}

func (s *Store) Do(ctx context.Context, fn func(ctx context.Context, repos store.Repositories) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.data.clone()
	if err := fn(ctx, s.bind(false)); err != nil {
		s.data = snapshot
		return err
	}
	return nil
}

func (s *Store) bind(locking bool) store.Repositories {
	return store.Repositories{
		Players:      &PlayerRepository{s: s, locking: locking},
		Matches:      &MatchRepository{s: s, locking: locking},
		Formations:   &FormationRepository{s: s, locking: locking},
		Events:       &EventRepository{s: s, locking: locking},
		Attendances:  &AttendanceRepository{s: s, locking: locking},
		Convocations: &ConvocationRepository{s: s, locking: locking},
	}
}

// view and update take the store lock unless the caller already holds it
// inside Do.
func (s *Store) view(locking bool, fn func(d *dataset)) {
	if locking {
		s.mu.RLock()
		defer s.mu.RUnlock()
	}
	fn(&s.data)
}

func (s *Store) update(locking bool, fn func(d *dataset) error) error {
	if locking {
		s.mu.Lock()
		defer s.mu.Unlock()
	}
	return fn(&s.data)
}

func constraintErr(format string, args ...any) error {
	return crerr.Wrapf(store.ErrConstraint, format, args...)
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}

func cloneInt64(v *int64) *int64 {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}
