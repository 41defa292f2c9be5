package memory

import (
	"context"
	"sort"

	"github.com/riskibarqy/matchday/internal/domain/attendance"
)

type AttendanceRepository struct {
	s       *Store
	locking bool
}

var _ attendance.Repository = (*AttendanceRepository)(nil)

func (r *AttendanceRepository) ListAll(_ context.Context) ([]attendance.Attendance, error) {
	return r.collect(func(attendance.Attendance) bool { return true }), nil
}

func (r *AttendanceRepository) ListByDate(_ context.Context, date string) ([]attendance.Attendance, error) {
	return r.collect(func(a attendance.Attendance) bool { return a.Date == date }), nil
}

func (r *AttendanceRepository) collect(keep func(attendance.Attendance) bool) []attendance.Attendance {
	out := make([]attendance.Attendance, 0)
	r.s.view(r.locking, func(d *dataset) {
		for _, a := range d.attendances {
			if keep(a) {
				out = append(out, a)
			}
		}
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].PlayerID < out[j].PlayerID
	})
	return out
}

func (r *AttendanceRepository) UpsertBatch(_ context.Context, items []attendance.Attendance) error {
	return r.s.update(r.locking, func(d *dataset) error {
		for _, item := range items {
			if _, ok := d.players[item.PlayerID]; !ok {
				return constraintErr("attendance references unknown player %d", item.PlayerID)
			}
		}
		for _, item := range items {
			d.attendances[attendanceKey{date: item.Date, playerID: item.PlayerID}] = item
		}
		return nil
	})
}

func (r *AttendanceRepository) DeleteByDate(_ context.Context, date string) (int, error) {
	n := 0
	err := r.s.update(r.locking, func(d *dataset) error {
		for key := range d.attendances {
			if key.date == date {
				delete(d.attendances, key)
				n++
			}
		}
		return nil
	})
	return n, err
}
