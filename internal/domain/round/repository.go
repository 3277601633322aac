package round

import "context"

// Repository describes round persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, id int64) (Round, bool, error)
	GetByReference(ctx context.Context, reference string) (Round, bool, error)
	List(ctx context.Context, offset, limit int) ([]Round, error)
	ListBySeason(ctx context.Context, seasonID int64, offset, limit int) ([]Round, error)
	Create(ctx context.Context, r Round) (Round, error)
	Update(ctx context.Context, r Round) error
	Delete(ctx context.Context, id int64) error
}
