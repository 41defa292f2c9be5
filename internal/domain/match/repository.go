package match

import "context"

// Repository exposes match session persistence operations.
type Repository interface {
	List(ctx context.Context) ([]Session, error)
	GetByID(ctx context.Context, id int64) (Session, bool, error)
	GetByConvocationID(ctx context.Context, convocationID int64) (Session, bool, error)
	Create(ctx context.Context, item Session) (Session, error)
	Update(ctx context.Context, item Session) error
	Delete(ctx context.Context, id int64) error
}
