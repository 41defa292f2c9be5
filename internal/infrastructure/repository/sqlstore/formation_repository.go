package sqlstore

import (
	"context"
	"fmt"

	"github.com/riskibarqy/matchday/internal/domain/formation"
	qb "github.com/riskibarqy/matchday/internal/platform/querybuilder"
)

type FormationRepository struct {
	db conn
}

var _ formation.Repository = (*FormationRepository)(nil)

func (r *FormationRepository) ListAll(ctx context.Context) ([]formation.Assignment, error) {
	query, args, err := qb.Select(formationSelectColumns...).From("formations").
		OrderBy("match_id", "player_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list formations query: %w", err)
	}
	return r.list(ctx, query, args)
}

func (r *FormationRepository) ListByMatch(ctx context.Context, matchID int64) ([]formation.Assignment, error) {
	query, args, err := qb.Select(formationSelectColumns...).From("formations").
		Where(qb.Eq("match_id", matchID)).
		OrderBy("status DESC", "player_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list formations by match query: %w", err)
	}
	return r.list(ctx, query, args)
}

func (r *FormationRepository) list(ctx context.Context, query string, args []any) ([]formation.Assignment, error) {
	var rows []formationTableModel
	if err := r.db.selectRows(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list formations: %w", err)
	}

	out := make([]formation.Assignment, 0, len(rows))
	for _, row := range rows {
		out = append(out, formationFromRow(row))
	}
	return out, nil
}

func (r *FormationRepository) UpsertBatch(ctx context.Context, items []formation.Assignment) error {
	if len(items) == 0 {
		return nil
	}

	rows := make([]formationTableModel, 0, len(items))
	for _, item := range items {
		rows = append(rows, formationToRow(item))
	}
	query, args, err := qb.InsertModels("formations", rows, formationUpsertSuffix)
	if err != nil {
		return fmt.Errorf("build upsert formations query: %w", err)
	}
	if _, err := r.db.exec(ctx, query, args...); err != nil {
		return wrapWrite(err, "upsert formations")
	}
	return nil
}

func (r *FormationRepository) UpdateMinutes(ctx context.Context, update formation.MinutesUpdate) (bool, error) {
	b := qb.Update("formations")
	if update.MinutesPlayed != nil {
		b.Set("minutes_played", *update.MinutesPlayed)
	}
	if update.MinuteEntered != nil {
		b.Set("minute_entered", *update.MinuteEntered)
	}
	query, args, err := b.
		Where(qb.Eq("match_id", update.MatchID), qb.Eq("player_id", update.PlayerID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build update minutes query: %w", err)
	}

	res, err := r.db.exec(ctx, query, args...)
	if err != nil {
		return false, wrapWrite(err, "update minutes")
	}
	return affected(res) > 0, nil
}

func (r *FormationRepository) ResetMinutes(ctx context.Context, matchID int64) error {
	query, args, err := qb.Update("formations").
		Set("minutes_played", 0).
		SetExpr("minute_entered", "NULL").
		Where(qb.Eq("match_id", matchID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build reset minutes query: %w", err)
	}
	if _, err := r.db.exec(ctx, query, args...); err != nil {
		return wrapWrite(err, "reset minutes")
	}
	return nil
}

func (r *FormationRepository) DeleteByMatch(ctx context.Context, matchID int64) error {
	query, args, err := qb.DeleteFrom("formations").Where(qb.Eq("match_id", matchID)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete formations query: %w", err)
	}
	if _, err := r.db.exec(ctx, query, args...); err != nil {
		return wrapWrite(err, "delete formations")
	}
	return nil
}
