package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/matchday/internal/domain/attendance"
	"github.com/riskibarqy/matchday/internal/domain/store"
)

type AttendanceService struct {
	uow            store.UnitOfWork
	attendanceRepo attendance.Repository
}

func NewAttendanceService(uow store.UnitOfWork, attendanceRepo attendance.Repository) *AttendanceService {
	return &AttendanceService{
		uow:            uow,
		attendanceRepo: attendanceRepo,
	}
}

type AttendanceEntry struct {
	PlayerID int64
	Status   string
}

// ListAttendances returns every record, or the records of one training
// date when date is set.
func (s *AttendanceService) ListAttendances(ctx context.Context, date string) ([]attendance.Attendance, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AttendanceService.ListAttendances")
	defer span.End()

	date = strings.TrimSpace(date)
	if date == "" {
		items, err := s.attendanceRepo.ListAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("list attendances: %w", err)
		}
		return items, nil
	}

	if err := attendance.ValidateDate(date); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	items, err := s.attendanceRepo.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("list attendances by date: %w", err)
	}
	return items, nil
}

// RecordAttendances upserts the outcome of one training session.
func (s *AttendanceService) RecordAttendances(ctx context.Context, date string, entries []AttendanceEntry) ([]attendance.Attendance, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AttendanceService.RecordAttendances")
	defer span.End()

	date = strings.TrimSpace(date)
	if err := attendance.ValidateDate(date); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: attendances are required", ErrInvalidInput)
	}

	index := make(map[int64]int, len(entries))
	items := make([]attendance.Attendance, 0, len(entries))
	for i, entry := range entries {
		if entry.PlayerID <= 0 {
			return nil, fmt.Errorf("%w: attendances[%d]: player id is required", ErrInvalidInput, i)
		}
		status, err := attendance.ParseStatus(entry.Status)
		if err != nil {
			return nil, fmt.Errorf("%w: attendances[%d]: %w", ErrInvalidInput, i, err)
		}
		row := attendance.Attendance{Date: date, PlayerID: entry.PlayerID, Status: status}
		if pos, dup := index[entry.PlayerID]; dup {
			items[pos] = row
			continue
		}
		index[entry.PlayerID] = len(items)
		items = append(items, row)
	}

	var saved []attendance.Attendance
	err := s.uow.Do(ctx, func(ctx context.Context, repos store.Repositories) error {
		if err := repos.Attendances.UpsertBatch(ctx, items); err != nil {
			return fmt.Errorf("upsert attendances: %w", err)
		}
		var err error
		saved, err = repos.Attendances.ListByDate(ctx, date)
		if err != nil {
			return fmt.Errorf("list attendances by date: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

func (s *AttendanceService) DeleteAttendances(ctx context.Context, date string) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AttendanceService.DeleteAttendances")
	defer span.End()

	date = strings.TrimSpace(date)
	if err := attendance.ValidateDate(date); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	n, err := s.attendanceRepo.DeleteByDate(ctx, date)
	if err != nil {
		return 0, fmt.Errorf("delete attendances: %w", err)
	}
	return n, nil
}
