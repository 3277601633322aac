package teamdriver

import "context"

// Repository describes team-driver pairing persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, id int64) (TeamDriver, bool, error)
	GetByTriple(ctx context.Context, teamID, driverID int64, seasonYear int) (TeamDriver, bool, error)
	List(ctx context.Context, offset, limit int) ([]TeamDriver, error)
	ListBySeasonYear(ctx context.Context, seasonYear int, offset, limit int) ([]TeamDriver, error)
	Create(ctx context.Context, td TeamDriver) (TeamDriver, error)
	Delete(ctx context.Context, id int64) error
}
