package memory

import (
	"context"
	"sort"
	"time"

	"github.com/riskibarqy/matchday/internal/domain/convocation"
)

type ConvocationRepository struct {
	s       *Store
	locking bool
}

var _ convocation.Repository = (*ConvocationRepository)(nil)

func (r *ConvocationRepository) List(_ context.Context) ([]convocation.Convocation, error) {
	var out []convocation.Convocation
	r.s.view(r.locking, func(d *dataset) {
		out = make([]convocation.Convocation, 0, len(d.convocations))
		for _, c := range d.convocations {
			out = append(out, cloneConvocation(c))
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

func (r *ConvocationRepository) GetByID(_ context.Context, id int64) (convocation.Convocation, bool, error) {
	var (
		c  convocation.Convocation
		ok bool
	)
	r.s.view(r.locking, func(d *dataset) {
		c, ok = d.convocations[id]
	})
	return cloneConvocation(c), ok, nil
}

func (r *ConvocationRepository) Create(_ context.Context, item convocation.Convocation) (convocation.Convocation, error) {
	err := r.s.update(r.locking, func(d *dataset) error {
		if err := checkPlayers(d, item.PlayerIDs); err != nil {
			return err
		}
		ts := time.Now().UTC()
		item = cloneConvocation(item)
		item.ID = d.nextID()
		item.CreatedAt = ts
		item.UpdatedAt = ts
		d.convocations[item.ID] = item
		return nil
	})
	return cloneConvocation(item), err
}

func (r *ConvocationRepository) Update(_ context.Context, item convocation.Convocation) error {
	return r.s.update(r.locking, func(d *dataset) error {
		current, ok := d.convocations[item.ID]
		if !ok {
			return nil
		}
		if err := checkPlayers(d, item.PlayerIDs); err != nil {
			return err
		}
		item = cloneConvocation(item)
		item.CreatedAt = current.CreatedAt
		item.UpdatedAt = time.Now().UTC()
		d.convocations[item.ID] = item
		return nil
	})
}

// Delete detaches matches created from the convocation.
func (r *ConvocationRepository) Delete(_ context.Context, id int64) error {
	return r.s.update(r.locking, func(d *dataset) error {
		delete(d.convocations, id)
		for mid, m := range d.matches {
			if m.ConvocationID != nil && *m.ConvocationID == id {
				m.ConvocationID = nil
				d.matches[mid] = m
			}
		}
		return nil
	})
}

func checkPlayers(d *dataset, ids []int64) error {
	for _, id := range ids {
		if _, ok := d.players[id]; !ok {
			return constraintErr("convocation references unknown player %d", id)
		}
	}
	return nil
}

func cloneConvocation(c convocation.Convocation) convocation.Convocation {
	c.PlayerIDs = append([]int64{}, c.PlayerIDs...)
	return c
}
