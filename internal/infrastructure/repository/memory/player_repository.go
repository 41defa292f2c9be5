package memory

import (
	"context"
	"sort"
	"time"

	"github.com/riskibarqy/matchday/internal/domain/player"
)

type PlayerRepository struct {
	s       *Store
	locking bool
}

var _ player.Repository = (*PlayerRepository)(nil)

func (r *PlayerRepository) List(_ context.Context) ([]player.Player, error) {
	var out []player.Player
	r.s.view(r.locking, func(d *dataset) {
		out = make([]player.Player, 0, len(d.players))
		for _, p := range d.players {
			out = append(out, p)
		}
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, id int64) (player.Player, bool, error) {
	var (
		p  player.Player
		ok bool
	)
	r.s.view(r.locking, func(d *dataset) {
		p, ok = d.players[id]
	})
	return p, ok, nil
}

func (r *PlayerRepository) GetByIDs(_ context.Context, ids []int64) ([]player.Player, error) {
	out := make([]player.Player, 0, len(ids))
	r.s.view(r.locking, func(d *dataset) {
		for _, id := range ids {
			if p, ok := d.players[id]; ok {
				out = append(out, p)
			}
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *PlayerRepository) Create(_ context.Context, item player.Player) (player.Player, error) {
	err := r.s.update(r.locking, func(d *dataset) error {
		ts := time.Now().UTC()
		item.ID = d.nextID()
		item.CreatedAt = ts
		item.UpdatedAt = ts
		d.players[item.ID] = item
		return nil
	})
	return item, err
}

func (r *PlayerRepository) Update(_ context.Context, item player.Player) error {
	return r.s.update(r.locking, func(d *dataset) error {
		current, ok := d.players[item.ID]
		if !ok {
			return nil
		}
		item.CreatedAt = current.CreatedAt
		item.UpdatedAt = time.Now().UTC()
		d.players[item.ID] = item
		return nil
	})
}

// Delete removes the player with its formation and attendance rows; events
// keep the orphaned id.
func (r *PlayerRepository) Delete(_ context.Context, id int64) error {
	return r.s.update(r.locking, func(d *dataset) error {
		delete(d.players, id)
		for key := range d.formations {
			if key.playerID == id {
				delete(d.formations, key)
			}
		}
		for key := range d.attendances {
			if key.playerID == id {
				delete(d.attendances, key)
			}
		}
		for cid, c := range d.convocations {
			c.PlayerIDs = removeID(c.PlayerIDs, id)
			d.convocations[cid] = c
		}
		return nil
	})
}

func (r *PlayerRepository) AdjustSuspensions(_ context.Context, ids []int64, delta int) error {
	return r.s.update(r.locking, func(d *dataset) error {
		for _, id := range ids {
			p, ok := d.players[id]
			if !ok || p.SuspensionDays <= 0 {
				continue
			}
			p.SuspensionDays = max(0, p.SuspensionDays+delta)
			p.UpdatedAt = time.Now().UTC()
			d.players[id] = p
		}
		return nil
	})
}

func (r *PlayerRepository) AdjustCards(_ context.Context, id int64, yellow, red int) error {
	return r.s.update(r.locking, func(d *dataset) error {
		p, ok := d.players[id]
		if !ok {
			return nil
		}
		p.YellowCards = max(0, p.YellowCards+yellow)
		p.RedCards = max(0, p.RedCards+red)
		p.UpdatedAt = time.Now().UTC()
		d.players[id] = p
		return nil
	})
}

func removeID(ids []int64, id int64) []int64 {
	out := make([]int64, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
