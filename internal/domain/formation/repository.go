package formation

import "context"

// Repository exposes formation persistence operations.
type Repository interface {
	ListAll(ctx context.Context) ([]Assignment, error)
	ListByMatch(ctx context.Context, matchID int64) ([]Assignment, error)
	// UpsertBatch writes status for every row; minutes fields are only
	// written when present.
	UpsertBatch(ctx context.Context, items []Assignment) error
	UpdateMinutes(ctx context.Context, update MinutesUpdate) (bool, error)
	ResetMinutes(ctx context.Context, matchID int64) error
	DeleteByMatch(ctx context.Context, matchID int64) error
}
