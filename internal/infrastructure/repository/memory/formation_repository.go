package memory

import (
	"context"
	"sort"

	"github.com/riskibarqy/matchday/internal/domain/formation"
)

type FormationRepository struct {
	s       *Store
	locking bool
}

var _ formation.Repository = (*FormationRepository)(nil)

func (r *FormationRepository) ListAll(_ context.Context) ([]formation.Assignment, error) {
	return r.collect(func(formation.Assignment) bool { return true }), nil
}

func (r *FormationRepository) ListByMatch(_ context.Context, matchID int64) ([]formation.Assignment, error) {
	out := r.collect(func(a formation.Assignment) bool { return a.MatchID == matchID })
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Status != out[j].Status {
			return out[i].IsStarter()
		}
		return out[i].PlayerID < out[j].PlayerID
	})
	return out, nil
}

func (r *FormationRepository) collect(keep func(formation.Assignment) bool) []formation.Assignment {
	out := make([]formation.Assignment, 0)
	r.s.view(r.locking, func(d *dataset) {
		for _, a := range d.formations {
			if keep(a) {
				out = append(out, cloneAssignment(a))
			}
		}
	})
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].MatchID != out[j].MatchID {
			return out[i].MatchID < out[j].MatchID
		}
		return out[i].PlayerID < out[j].PlayerID
	})
	return out
}

func (r *FormationRepository) UpsertBatch(_ context.Context, items []formation.Assignment) error {
	return r.s.update(r.locking, func(d *dataset) error {
		for _, item := range items {
			if _, ok := d.matches[item.MatchID]; !ok {
				return constraintErr("formation references unknown match %d", item.MatchID)
			}
			if _, ok := d.players[item.PlayerID]; !ok {
				return constraintErr("formation references unknown player %d", item.PlayerID)
			}
			key := formationKey{matchID: item.MatchID, playerID: item.PlayerID}
			next := cloneAssignment(item)
			if current, ok := d.formations[key]; ok {
				if next.MinutesPlayed == nil {
					next.MinutesPlayed = current.MinutesPlayed
				}
				if next.MinuteEntered == nil {
					next.MinuteEntered = current.MinuteEntered
				}
			}
			d.formations[key] = next
		}
		return nil
	})
}

func (r *FormationRepository) UpdateMinutes(_ context.Context, update formation.MinutesUpdate) (bool, error) {
	var found bool
	err := r.s.update(r.locking, func(d *dataset) error {
		key := formationKey{matchID: update.MatchID, playerID: update.PlayerID}
		current, ok := d.formations[key]
		if !ok {
			return nil
		}
		found = true
		if update.MinutesPlayed != nil {
			current.MinutesPlayed = cloneInt(update.MinutesPlayed)
		}
		if update.MinuteEntered != nil {
			current.MinuteEntered = cloneInt(update.MinuteEntered)
		}
		d.formations[key] = current
		return nil
	})
	return found, err
}

func (r *FormationRepository) ResetMinutes(_ context.Context, matchID int64) error {
	return r.s.update(r.locking, func(d *dataset) error {
		for key, a := range d.formations {
			if key.matchID != matchID {
				continue
			}
			zero := 0
			a.MinutesPlayed = &zero
			a.MinuteEntered = nil
			d.formations[key] = a
		}
		return nil
	})
}

func (r *FormationRepository) DeleteByMatch(_ context.Context, matchID int64) error {
	return r.s.update(r.locking, func(d *dataset) error {
		for key := range d.formations {
			if key.matchID == matchID {
				delete(d.formations, key)
			}
		}
		return nil
	})
}

func cloneAssignment(a formation.Assignment) formation.Assignment {
	a.MinutesPlayed = cloneInt(a.MinutesPlayed)
	a.MinuteEntered = cloneInt(a.MinuteEntered)
	return a
}
