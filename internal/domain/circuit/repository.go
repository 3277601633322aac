package circuit

import "context"

// Repository describes circuit persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, id int64) (Circuit, bool, error)
	GetByReference(ctx context.Context, reference string) (Circuit, bool, error)
	List(ctx context.Context, offset, limit int) ([]Circuit, error)
	Create(ctx context.Context, c Circuit) (Circuit, error)
	Update(ctx context.Context, c Circuit) error
	Delete(ctx context.Context, id int64) error
}
