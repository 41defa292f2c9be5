package sqlstore

import (
	"context"
	"fmt"

	"github.com/riskibarqy/matchday/internal/domain/match"
	qb "github.com/riskibarqy/matchday/internal/platform/querybuilder"
)

type MatchRepository struct {
	db conn
}

var _ match.Repository = (*MatchRepository)(nil)

func (r *MatchRepository) List(ctx context.Context) ([]match.Session, error) {
	query, args, err := qb.Select(matchSelectColumns...).From("matches").
		OrderBy("match_date DESC", "id DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.selectRows(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	out := make([]match.Session, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchFromRow(row))
	}
	return out, nil
}

func (r *MatchRepository) GetByID(ctx context.Context, id int64) (match.Session, bool, error) {
	return r.getOne(ctx, qb.Eq("id", id))
}

func (r *MatchRepository) GetByConvocationID(ctx context.Context, convocationID int64) (match.Session, bool, error) {
	return r.getOne(ctx, qb.Eq("convocation_id", convocationID))
}

func (r *MatchRepository) getOne(ctx context.Context, cond qb.Condition) (match.Session, bool, error) {
	query, args, err := qb.Select(matchSelectColumns...).From("matches").
		Where(cond).
		OrderBy("id").
		Limit(1).
		ToSQL()
	if err != nil {
		return match.Session{}, false, fmt.Errorf("build get match query: %w", err)
	}

	var row matchTableModel
	if err := r.db.get(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Session{}, false, nil
		}
		return match.Session{}, false, fmt.Errorf("get match: %w", err)
	}
	return matchFromRow(row), true, nil
}

func (r *MatchRepository) Create(ctx context.Context, item match.Session) (match.Session, error) {
	ts := now()
	if item.Phase == "" {
		item.Phase = match.PhaseNotStarted
	}
	model := matchInsertModel{
		Opponent:        item.Opponent,
		MatchDate:       item.MatchDate,
		IsHome:          item.IsHome,
		GoalsFor:        nullInt(item.GoalsFor),
		GoalsAgainst:    nullInt(item.GoalsAgainst),
		StartTime:       nullTime(item.StartTime),
		ExtraTimeFirst:  item.ExtraTimeFirst,
		ExtraTimeSecond: item.ExtraTimeSecond,
		FormationLabel:  item.FormationLabel,
		Phase:           string(item.Phase),
		PhaseStartedAt:  nullTime(item.PhaseStartedAt),
		ConvocationID:   nullInt64(item.ConvocationID),
		FinalizedAt:     nullTime(item.FinalizedAt),
		CreatedAt:       ts,
		UpdatedAt:       ts,
	}
	query, args, err := qb.InsertModel("matches", model, "RETURNING id")
	if err != nil {
		return match.Session{}, fmt.Errorf("build insert match query: %w", err)
	}

	var id int64
	if err := r.db.get(ctx, &id, query, args...); err != nil {
		return match.Session{}, wrapWrite(err, "insert match")
	}

	item.ID = id
	item.CreatedAt = ts
	item.UpdatedAt = ts
	return item, nil
}

func (r *MatchRepository) Update(ctx context.Context, item match.Session) error {
	query, args, err := qb.Update("matches").
		Set("opponent", item.Opponent).
		Set("match_date", item.MatchDate).
		Set("is_home", item.IsHome).
		Set("goals_for", nullInt(item.GoalsFor)).
		Set("goals_against", nullInt(item.GoalsAgainst)).
		Set("start_time", nullTime(item.StartTime)).
		Set("extra_time_first", item.ExtraTimeFirst).
		Set("extra_time_second", item.ExtraTimeSecond).
		Set("formation_label", item.FormationLabel).
		Set("phase", string(item.Phase)).
		Set("phase_started_at", nullTime(item.PhaseStartedAt)).
		Set("convocation_id", nullInt64(item.ConvocationID)).
		Set("finalized_at", nullTime(item.FinalizedAt)).
		Set("updated_at", now()).
		Where(qb.Eq("id", item.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update match query: %w", err)
	}
	if _, err := r.db.exec(ctx, query, args...); err != nil {
		return wrapWrite(err, "update match")
	}
	return nil
}

func (r *MatchRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := qb.DeleteFrom("matches").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete match query: %w", err)
	}
	if _, err := r.db.exec(ctx, query, args...); err != nil {
		return wrapWrite(err, "delete match")
	}
	return nil
}
