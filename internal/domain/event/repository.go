package event

import "context"

// Repository exposes match timeline persistence operations.
type Repository interface {
	ListAll(ctx context.Context) ([]Event, error)
	ListByMatch(ctx context.Context, matchID int64) ([]Event, error)
	GetByID(ctx context.Context, id int64) (Event, bool, error)
	Append(ctx context.Context, item Event) (Event, error)
	AppendBatch(ctx context.Context, items []Event) ([]Event, error)
	Delete(ctx context.Context, id int64) error
	DeleteByMatch(ctx context.Context, matchID int64) (int, error)
}
