package sqlstore

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/matchday/internal/domain/convocation"
	qb "github.com/riskibarqy/matchday/internal/platform/querybuilder"
)

type convocationTableModel struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	MatchDate   string    `db:"match_date"`
	Opponent    string    `db:"opponent"`
	ArrivalTime string    `db:"arrival_time"`
	KickoffTime string    `db:"kickoff_time"`
	Address     string    `db:"address"`
	Notes       string    `db:"notes"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type convocationInsertModel struct {
	Name        string    `db:"name"`
	MatchDate   string    `db:"match_date"`
	Opponent    string    `db:"opponent"`
	ArrivalTime string    `db:"arrival_time"`
	KickoffTime string    `db:"kickoff_time"`
	Address     string    `db:"address"`
	Notes       string    `db:"notes"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type convocationPlayerModel struct {
	ConvocationID int64 `db:"convocation_id"`
	PlayerID      int64 `db:"player_id"`
	SortOrder     int   `db:"sort_order"`
}

var convocationSelectColumns = []string{
	"id",
	"name",
	"match_date",
	"opponent",
	"arrival_time",
	"kickoff_time",
	"address",
	"notes",
	"created_at",
	"updated_at",
}

// ConvocationRepository stores call-up sheets with their players in
// convocation_players. Writes touching both tables belong in a unit of work.
type ConvocationRepository struct {
	db conn
}

var _ convocation.Repository = (*ConvocationRepository)(nil)

func (r *ConvocationRepository) List(ctx context.Context) ([]convocation.Convocation, error) {
	query, args, err := qb.Select(convocationSelectColumns...).From("convocations").
		OrderBy("match_date DESC", "id DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list convocations query: %w", err)
	}

	var rows []convocationTableModel
	if err := r.db.selectRows(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list convocations: %w", err)
	}
	if len(rows) == 0 {
		return []convocation.Convocation{}, nil
	}

	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	players, err := r.playersOf(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]convocation.Convocation, 0, len(rows))
	for _, row := range rows {
		out = append(out, convocationFromRow(row, players[row.ID]))
	}
	return out, nil
}

func (r *ConvocationRepository) GetByID(ctx context.Context, id int64) (convocation.Convocation, bool, error) {
	query, args, err := qb.Select(convocationSelectColumns...).From("convocations").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return convocation.Convocation{}, false, fmt.Errorf("build get convocation query: %w", err)
	}

	var row convocationTableModel
	if err := r.db.get(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return convocation.Convocation{}, false, nil
		}
		return convocation.Convocation{}, false, fmt.Errorf("get convocation: %w", err)
	}

	players, err := r.playersOf(ctx, []int64{id})
	if err != nil {
		return convocation.Convocation{}, false, err
	}
	return convocationFromRow(row, players[id]), true, nil
}

func (r *ConvocationRepository) Create(ctx context.Context, item convocation.Convocation) (convocation.Convocation, error) {
	ts := now()
	model := convocationInsertModel{
		Name:        item.Name,
		MatchDate:   item.MatchDate,
		Opponent:    item.Opponent,
		ArrivalTime: item.ArrivalTime,
		KickoffTime: item.KickoffTime,
		Address:     item.Address,
		Notes:       item.Notes,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}
	query, args, err := qb.InsertModel("convocations", model, "RETURNING id")
	if err != nil {
		return convocation.Convocation{}, fmt.Errorf("build insert convocation query: %w", err)
	}

	var id int64
	if err := r.db.get(ctx, &id, query, args...); err != nil {
		return convocation.Convocation{}, wrapWrite(err, "insert convocation")
	}
	if err := r.insertPlayers(ctx, id, item.PlayerIDs); err != nil {
		return convocation.Convocation{}, err
	}

	item.ID = id
	item.CreatedAt = ts
	item.UpdatedAt = ts
	return item, nil
}

func (r *ConvocationRepository) Update(ctx context.Context, item convocation.Convocation) error {
	query, args, err := qb.Update("convocations").
		Set("name", item.Name).
		Set("match_date", item.MatchDate).
		Set("opponent", item.Opponent).
		Set("arrival_time", item.ArrivalTime).
		Set("kickoff_time", item.KickoffTime).
		Set("address", item.Address).
		Set("notes", item.Notes).
		Set("updated_at", now()).
		Where(qb.Eq("id", item.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update convocation query: %w", err)
	}
	if _, err := r.db.exec(ctx, query, args...); err != nil {
		return wrapWrite(err, "update convocation")
	}

	if err := r.deletePlayers(ctx, item.ID); err != nil {
		return err
	}
	return r.insertPlayers(ctx, item.ID, item.PlayerIDs)
}

func (r *ConvocationRepository) Delete(ctx context.Context, id int64) error {
	if err := r.deletePlayers(ctx, id); err != nil {
		return err
	}
	query, args, err := qb.DeleteFrom("convocations").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete convocation query: %w", err)
	}
	if _, err := r.db.exec(ctx, query, args...); err != nil {
		return wrapWrite(err, "delete convocation")
	}
	return nil
}

func (r *ConvocationRepository) playersOf(ctx context.Context, ids []int64) (map[int64][]int64, error) {
	query, args, err := qb.Select("convocation_id", "player_id", "sort_order").From("convocation_players").
		Where(qb.In("convocation_id", qb.Int64s(ids))).
		OrderBy("convocation_id", "sort_order", "player_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list convocation players query: %w", err)
	}

	var rows []convocationPlayerModel
	if err := r.db.selectRows(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list convocation players: %w", err)
	}

	out := make(map[int64][]int64, len(ids))
	for _, row := range rows {
		out[row.ConvocationID] = append(out[row.ConvocationID], row.PlayerID)
	}
	return out, nil
}

func (r *ConvocationRepository) insertPlayers(ctx context.Context, convocationID int64, playerIDs []int64) error {
	if len(playerIDs) == 0 {
		return nil
	}
	rows := make([]convocationPlayerModel, 0, len(playerIDs))
	for i, playerID := range playerIDs {
		rows = append(rows, convocationPlayerModel{
			ConvocationID: convocationID,
			PlayerID:      playerID,
			SortOrder:     i,
		})
	}
	query, args, err := qb.InsertModels("convocation_players", rows, "")
	if err != nil {
		return fmt.Errorf("build insert convocation players query: %w", err)
	}
	if _, err := r.db.exec(ctx, query, args...); err != nil {
		return wrapWrite(err, "insert convocation players")
	}
	return nil
}

func (r *ConvocationRepository) deletePlayers(ctx context.Context, convocationID int64) error {
	query, args, err := qb.DeleteFrom("convocation_players").Where(qb.Eq("convocation_id", convocationID)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete convocation players query: %w", err)
	}
	if _, err := r.db.exec(ctx, query, args...); err != nil {
		return wrapWrite(err, "delete convocation players")
	}
	return nil
}

func convocationFromRow(row convocationTableModel, playerIDs []int64) convocation.Convocation {
	if playerIDs == nil {
		playerIDs = []int64{}
	}
	return convocation.Convocation{
		ID:          row.ID,
		Name:        row.Name,
		MatchDate:   row.MatchDate,
		Opponent:    row.Opponent,
		PlayerIDs:   playerIDs,
		ArrivalTime: row.ArrivalTime,
		KickoffTime: row.KickoffTime,
		Address:     row.Address,
		Notes:       row.Notes,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
