package importjob

import "context"

// Repository describes import-job registry persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, id string) (Job, bool, error)
	List(ctx context.Context, offset, limit int) ([]Job, error)
	Create(ctx context.Context, j Job) (Job, error)
	Update(ctx context.Context, j Job) error
	Delete(ctx context.Context, id string) error
}
