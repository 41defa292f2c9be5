package sqlstore

import (
	"context"
	"fmt"

	"github.com/riskibarqy/matchday/internal/domain/player"
	qb "github.com/riskibarqy/matchday/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db conn
}

var _ player.Repository = (*PlayerRepository)(nil)

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	query, args, err := qb.Select(playerSelectColumns...).From("players").
		OrderBy("name", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.selectRows(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerFromRow(row))
	}
	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, id int64) (player.Player, bool, error) {
	query, args, err := qb.Select(playerSelectColumns...).From("players").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build get player query: %w", err)
	}

	var row playerTableModel
	if err := r.db.get(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("get player: %w", err)
	}
	return playerFromRow(row), true, nil
}

func (r *PlayerRepository) GetByIDs(ctx context.Context, ids []int64) ([]player.Player, error) {
	if len(ids) == 0 {
		return []player.Player{}, nil
	}

	query, args, err := qb.Select(playerSelectColumns...).From("players").
		Where(qb.In("id", qb.Int64s(ids))).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build get players by ids query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.selectRows(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("get players by ids: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerFromRow(row))
	}
	return out, nil
}

func (r *PlayerRepository) Create(ctx context.Context, item player.Player) (player.Player, error) {
	ts := now()
	model := playerInsertModel{
		Name:              item.Name,
		ShirtNumber:       item.ShirtNumber,
		Position:          string(item.Position),
		ConvocationStatus: string(item.ConvocationStatus),
		IsConvocato:       item.IsConvocato,
		SuspensionDays:    item.SuspensionDays,
		YellowCards:       item.YellowCards,
		RedCards:          item.RedCards,
		CreatedAt:         ts,
		UpdatedAt:         ts,
	}
	query, args, err := qb.InsertModel("players", model, "RETURNING id")
	if err != nil {
		return player.Player{}, fmt.Errorf("build insert player query: %w", err)
	}

	var id int64
	if err := r.db.get(ctx, &id, query, args...); err != nil {
		return player.Player{}, wrapWrite(err, "insert player")
	}

	item.ID = id
	item.CreatedAt = ts
	item.UpdatedAt = ts
	return item, nil
}

func (r *PlayerRepository) Update(ctx context.Context, item player.Player) error {
	query, args, err := qb.Update("players").
		Set("name", item.Name).
		Set("shirt_number", item.ShirtNumber).
		Set("position", string(item.Position)).
		Set("convocation_status", string(item.ConvocationStatus)).
		Set("is_convocato", item.IsConvocato).
		Set("suspension_days", item.SuspensionDays).
		Set("yellow_cards", item.YellowCards).
		Set("red_cards", item.RedCards).
		Set("updated_at", now()).
		Where(qb.Eq("id", item.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update player query: %w", err)
	}

	if _, err := r.db.exec(ctx, query, args...); err != nil {
		return wrapWrite(err, "update player")
	}
	return nil
}

func (r *PlayerRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := qb.DeleteFrom("players").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete player query: %w", err)
	}
	if _, err := r.db.exec(ctx, query, args...); err != nil {
		return wrapWrite(err, "delete player")
	}
	return nil
}

func (r *PlayerRepository) AdjustSuspensions(ctx context.Context, ids []int64, delta int) error {
	if len(ids) == 0 || delta == 0 {
		return nil
	}

	query, args, err := qb.Update("players").
		SetExpr("suspension_days", "CASE WHEN suspension_days + ? < 0 THEN 0 ELSE suspension_days + ? END", delta, delta).
		Set("updated_at", now()).
		Where(qb.In("id", qb.Int64s(ids)), qb.Gt("suspension_days", 0)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build adjust suspensions query: %w", err)
	}
	if _, err := r.db.exec(ctx, query, args...); err != nil {
		return wrapWrite(err, "adjust suspensions")
	}
	return nil
}

func (r *PlayerRepository) AdjustCards(ctx context.Context, id int64, yellow, red int) error {
	if yellow == 0 && red == 0 {
		return nil
	}

	query, args, err := qb.Update("players").
		SetExpr("yellow_cards", "CASE WHEN yellow_cards + ? < 0 THEN 0 ELSE yellow_cards + ? END", yellow, yellow).
		SetExpr("red_cards", "CASE WHEN red_cards + ? < 0 THEN 0 ELSE red_cards + ? END", red, red).
		Set("updated_at", now()).
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build adjust cards query: %w", err)
	}
	if _, err := r.db.exec(ctx, query, args...); err != nil {
		return wrapWrite(err, "adjust cards")
	}
	return nil
}
