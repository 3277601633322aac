package team

import "context"

// Repository describes team persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, id int64) (Team, bool, error)
	GetByReference(ctx context.Context, reference string) (Team, bool, error)
	List(ctx context.Context, offset, limit int) ([]Team, error)
	Create(ctx context.Context, t Team) (Team, error)
	Update(ctx context.Context, t Team) error
	Delete(ctx context.Context, id int64) error
}
