package memory

import (
	"context"
	"sort"
	"time"

	"github.com/riskibarqy/matchday/internal/domain/match"
)

type MatchRepository struct {
	s       *Store
	locking bool
}

var _ match.Repository = (*MatchRepository)(nil)

func (r *MatchRepository) List(_ context.Context) ([]match.Session, error) {
	var out []match.Session
	r.s.view(r.locking, func(d *dataset) {
		out = make([]match.Session, 0, len(d.matches))
		for _, m := range d.matches {
			out = append(out, cloneSession(m))
		}
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].MatchDate != out[j].MatchDate {
			return out[i].MatchDate > out[j].MatchDate
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *MatchRepository) GetByID(_ context.Context, id int64) (match.Session, bool, error) {
	var (
		m  match.Session
		ok bool
	)
	r.s.view(r.locking, func(d *dataset) {
		m, ok = d.matches[id]
	})
	return cloneSession(m), ok, nil
}

func (r *MatchRepository) GetByConvocationID(_ context.Context, convocationID int64) (match.Session, bool, error) {
	var (
		found match.Session
		ok    bool
	)
	r.s.view(r.locking, func(d *dataset) {
		for _, m := range d.matches {
			if m.ConvocationID == nil || *m.ConvocationID != convocationID {
				continue
			}
			if !ok || m.ID < found.ID {
				found, ok = m, true
			}
		}
	})
	return cloneSession(found), ok, nil
}

func (r *MatchRepository) Create(_ context.Context, item match.Session) (match.Session, error) {
	err := r.s.update(r.locking, func(d *dataset) error {
		ts := time.Now().UTC()
		item = cloneSession(item)
		if item.Phase == "" {
			item.Phase = match.PhaseNotStarted
		}
		item.ID = d.nextID()
		item.CreatedAt = ts
		item.UpdatedAt = ts
		d.matches[item.ID] = item
		return nil
	})
	return cloneSession(item), err
}

func (r *MatchRepository) Update(_ context.Context, item match.Session) error {
	return r.s.update(r.locking, func(d *dataset) error {
		current, ok := d.matches[item.ID]
		if !ok {
			return nil
		}
		item = cloneSession(item)
		item.CreatedAt = current.CreatedAt
		item.UpdatedAt = time.Now().UTC()
		d.matches[item.ID] = item
		return nil
	})
}

// Delete cascades to formations and events like the SQL schema does.
func (r *MatchRepository) Delete(_ context.Context, id int64) error {
	return r.s.update(r.locking, func(d *dataset) error {
		delete(d.matches, id)
		for key := range d.formations {
			if key.matchID == id {
				delete(d.formations, key)
			}
		}
		for eid, e := range d.events {
			if e.MatchID == id {
				delete(d.events, eid)
			}
		}
		return nil
	})
}

func cloneSession(m match.Session) match.Session {
	m.GoalsFor = cloneInt(m.GoalsFor)
	m.GoalsAgainst = cloneInt(m.GoalsAgainst)
	m.ConvocationID = cloneInt64(m.ConvocationID)
	m.StartTime = cloneTime(m.StartTime)
	m.PhaseStartedAt = cloneTime(m.PhaseStartedAt)
	m.FinalizedAt = cloneTime(m.FinalizedAt)
	return m
}

func cloneTime(v *time.Time) *time.Time {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}
