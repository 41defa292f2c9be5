package memory

import (
	"context"
	"sort"
	"time"

	"github.com/riskibarqy/matchday/internal/domain/event"
)

type EventRepository struct {
	s       *Store
	locking bool
}

var _ event.Repository = (*EventRepository)(nil)

func (r *EventRepository) ListAll(_ context.Context) ([]event.Event, error) {
	return r.collect(func(event.Event) bool { return true }), nil
}

func (r *EventRepository) ListByMatch(_ context.Context, matchID int64) ([]event.Event, error) {
	return r.collect(func(e event.Event) bool { return e.MatchID == matchID }), nil
}

func (r *EventRepository) collect(keep func(event.Event) bool) []event.Event {
	out := make([]event.Event, 0)
	r.s.view(r.locking, func(d *dataset) {
		for _, e := range d.events {
			if keep(e) {
				out = append(out, cloneEvent(e))
			}
		}
	})
	event.Sort(out)
	sort.SliceStable(out, func(i, j int) bool { return out[i].MatchID < out[j].MatchID })
	return out
}

func (r *EventRepository) GetByID(_ context.Context, id int64) (event.Event, bool, error) {
	var (
		e  event.Event
		ok bool
	)
	r.s.view(r.locking, func(d *dataset) {
		e, ok = d.events[id]
	})
	return cloneEvent(e), ok, nil
}

func (r *EventRepository) Append(_ context.Context, item event.Event) (event.Event, error) {
	err := r.s.update(r.locking, func(d *dataset) error {
		var err error
		item, err = appendEvent(d, item)
		return err
	})
	return item, err
}

func (r *EventRepository) AppendBatch(_ context.Context, items []event.Event) ([]event.Event, error) {
	out := make([]event.Event, 0, len(items))
	err := r.s.update(r.locking, func(d *dataset) error {
		for _, item := range items {
			saved, err := appendEvent(d, item)
			if err != nil {
				return err
			}
			out = append(out, saved)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func appendEvent(d *dataset, item event.Event) (event.Event, error) {
	if _, ok := d.matches[item.MatchID]; !ok {
		return event.Event{}, constraintErr("event references unknown match %d", item.MatchID)
	}
	item = cloneEvent(item)
	item.ID = d.nextID()
	item.CreatedAt = time.Now().UTC()
	d.events[item.ID] = item
	return cloneEvent(item), nil
}

func (r *EventRepository) Delete(_ context.Context, id int64) error {
	return r.s.update(r.locking, func(d *dataset) error {
		delete(d.events, id)
		return nil
	})
}

func (r *EventRepository) DeleteByMatch(_ context.Context, matchID int64) (int, error) {
	n := 0
	err := r.s.update(r.locking, func(d *dataset) error {
		for id, e := range d.events {
			if e.MatchID == matchID {
				delete(d.events, id)
				n++
			}
		}
		return nil
	})
	return n, err
}

func cloneEvent(e event.Event) event.Event {
	e.PlayerID = cloneInt64(e.PlayerID)
	e.SecondPlayerID = cloneInt64(e.SecondPlayerID)
	e.Rating = cloneInt(e.Rating)
	return e
}
