package driver

import "context"

// Repository describes driver persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, id int64) (Driver, bool, error)
	GetByReference(ctx context.Context, reference string) (Driver, bool, error)
	List(ctx context.Context, offset, limit int) ([]Driver, error)
	Create(ctx context.Context, d Driver) (Driver, error)
	Update(ctx context.Context, d Driver) error
	Delete(ctx context.Context, id int64) error
}
