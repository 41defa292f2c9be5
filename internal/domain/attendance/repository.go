package attendance

import "context"

// Repository exposes training attendance persistence operations.
type Repository interface {
	ListAll(ctx context.Context) ([]Attendance, error)
	ListByDate(ctx context.Context, date string) ([]Attendance, error)
	UpsertBatch(ctx context.Context, items []Attendance) error
	DeleteByDate(ctx context.Context, date string) (int, error)
}
