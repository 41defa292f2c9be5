package convocation

import "context"

// Repository exposes call-up sheet persistence operations.
type Repository interface {
	List(ctx context.Context) ([]Convocation, error)
	GetByID(ctx context.Context, id int64) (Convocation, bool, error)
	Create(ctx context.Context, item Convocation) (Convocation, error)
	Update(ctx context.Context, item Convocation) error
	Delete(ctx context.Context, id int64) error
}
