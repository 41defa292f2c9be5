package sqlstore

import (
	"context"
	"fmt"

	"github.com/riskibarqy/matchday/internal/domain/attendance"
	qb "github.com/riskibarqy/matchday/internal/platform/querybuilder"
)

type attendanceTableModel struct {
	Date     string `db:"date"`
	PlayerID int64  `db:"player_id"`
	Status   string `db:"status"`
}

type AttendanceRepository struct {
	db conn
}

var _ attendance.Repository = (*AttendanceRepository)(nil)

func (r *AttendanceRepository) ListAll(ctx context.Context) ([]attendance.Attendance, error) {
	query, args, err := qb.Select("date", "player_id", "status").From("attendances").
		OrderBy("date DESC", "player_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list attendances query: %w", err)
	}
	return r.list(ctx, query, args)
}

func (r *AttendanceRepository) ListByDate(ctx context.Context, date string) ([]attendance.Attendance, error) {
	query, args, err := qb.Select("date", "player_id", "status").From("attendances").
		Where(qb.Eq("date", date)).
		OrderBy("player_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list attendances by date query: %w", err)
	}
	return r.list(ctx, query, args)
}

func (r *AttendanceRepository) list(ctx context.Context, query string, args []any) ([]attendance.Attendance, error) {
	var rows []attendanceTableModel
	if err := r.db.selectRows(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list attendances: %w", err)
	}

	out := make([]attendance.Attendance, 0, len(rows))
	for _, row := range rows {
		out = append(out, attendance.Attendance{
			Date:     row.Date,
			PlayerID: row.PlayerID,
			Status:   attendance.Status(row.Status),
		})
	}
	return out, nil
}

func (r *AttendanceRepository) UpsertBatch(ctx context.Context, items []attendance.Attendance) error {
	if len(items) == 0 {
		return nil
	}

	rows := make([]attendanceTableModel, 0, len(items))
	for _, item := range items {
		rows = append(rows, attendanceTableModel{
			Date:     item.Date,
			PlayerID: item.PlayerID,
			Status:   string(item.Status),
		})
	}
	query, args, err := qb.InsertModels("attendances", rows, "ON CONFLICT (date, player_id) DO UPDATE SET status = EXCLUDED.status")
	if err != nil {
		return fmt.Errorf("build upsert attendances query: %w", err)
	}
	if _, err := r.db.exec(ctx, query, args...); err != nil {
		return wrapWrite(err, "upsert attendances")
	}
	return nil
}

func (r *AttendanceRepository) DeleteByDate(ctx context.Context, date string) (int, error) {
	query, args, err := qb.DeleteFrom("attendances").Where(qb.Eq("date", date)).ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build delete attendances query: %w", err)
	}
	res, err := r.db.exec(ctx, query, args...)
	if err != nil {
		return 0, wrapWrite(err, "delete attendances")
	}
	return affected(res), nil
}
