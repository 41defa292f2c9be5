package sqlstore

import (
	"context"
	"fmt"

	"github.com/riskibarqy/matchday/internal/domain/event"
	qb "github.com/riskibarqy/matchday/internal/platform/querybuilder"
)

type EventRepository struct {
	db conn
}

var _ event.Repository = (*EventRepository)(nil)

func (r *EventRepository) ListAll(ctx context.Context) ([]event.Event, error) {
	query, args, err := qb.Select(eventSelectColumns...).From("match_events").
		OrderBy(eventTimelineOrder...).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list events query: %w", err)
	}
	return r.list(ctx, query, args)
}

func (r *EventRepository) ListByMatch(ctx context.Context, matchID int64) ([]event.Event, error) {
	query, args, err := qb.Select(eventSelectColumns...).From("match_events").
		Where(qb.Eq("match_id", matchID)).
		OrderBy(eventTimelineOrder...).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list events by match query: %w", err)
	}
	return r.list(ctx, query, args)
}

func (r *EventRepository) list(ctx context.Context, query string, args []any) ([]event.Event, error) {
	var rows []eventTableModel
	if err := r.db.selectRows(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	out := make([]event.Event, 0, len(rows))
	for _, row := range rows {
		out = append(out, eventFromRow(row))
	}
	return out, nil
}

func (r *EventRepository) GetByID(ctx context.Context, id int64) (event.Event, bool, error) {
	query, args, err := qb.Select(eventSelectColumns...).From("match_events").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return event.Event{}, false, fmt.Errorf("build get event query: %w", err)
	}

	var row eventTableModel
	if err := r.db.get(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return event.Event{}, false, nil
		}
		return event.Event{}, false, fmt.Errorf("get event: %w", err)
	}
	return eventFromRow(row), true, nil
}

func (r *EventRepository) Append(ctx context.Context, item event.Event) (event.Event, error) {
	ts := now()
	query, args, err := qb.InsertModel("match_events", eventToInsert(item, ts), "RETURNING id")
	if err != nil {
		return event.Event{}, fmt.Errorf("build insert event query: %w", err)
	}

	var id int64
	if err := r.db.get(ctx, &id, query, args...); err != nil {
		return event.Event{}, wrapWrite(err, "insert event")
	}
	item.ID = id
	item.CreatedAt = ts
	return item, nil
}

// AppendBatch inserts row by row so every event gets its id back in input order.
func (r *EventRepository) AppendBatch(ctx context.Context, items []event.Event) ([]event.Event, error) {
	out := make([]event.Event, 0, len(items))
	for _, item := range items {
		saved, err := r.Append(ctx, item)
		if err != nil {
			return nil, err
		}
		out = append(out, saved)
	}
	return out, nil
}

func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := qb.DeleteFrom("match_events").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete event query: %w", err)
	}
	if _, err := r.db.exec(ctx, query, args...); err != nil {
		return wrapWrite(err, "delete event")
	}
	return nil
}

func (r *EventRepository) DeleteByMatch(ctx context.Context, matchID int64) (int, error) {
	query, args, err := qb.DeleteFrom("match_events").Where(qb.Eq("match_id", matchID)).ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build delete events by match query: %w", err)
	}
	res, err := r.db.exec(ctx, query, args...)
	if err != nil {
		return 0, wrapWrite(err, "delete events by match")
	}
	return affected(res), nil
}
