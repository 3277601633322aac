package result

import "context"

// Repository describes result persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, id int64) (Result, bool, error)
	List(ctx context.Context, offset, limit int) ([]Result, error)
	ListBySession(ctx context.Context, sessionID int64, offset, limit int) ([]Result, error)
	Create(ctx context.Context, r Result) (Result, error)
	Update(ctx context.Context, r Result) error
	Delete(ctx context.Context, id int64) error
}
