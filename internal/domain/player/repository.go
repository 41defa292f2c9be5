package player

import "context"

// Repository exposes roster persistence operations.
type Repository interface {
	List(ctx context.Context) ([]Player, error)
	GetByID(ctx context.Context, id int64) (Player, bool, error)
	GetByIDs(ctx context.Context, ids []int64) ([]Player, error)
	Create(ctx context.Context, item Player) (Player, error)
	Update(ctx context.Context, item Player) error
	Delete(ctx context.Context, id int64) error
	// AdjustSuspensions adds delta to the suspension counter of the given
	// players whose counter is currently above zero.
	AdjustSuspensions(ctx context.Context, ids []int64, delta int) error
	AdjustCards(ctx context.Context, id int64, yellow, red int) error
}
