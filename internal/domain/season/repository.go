package season

import "context"

// Repository describes season persistence needs from use cases.
// GetByYear reports absence through the bool, not an error: "not yet
// imported" is the expected case importers branch on.
type Repository interface {
	GetByID(ctx context.Context, id int64) (Season, bool, error)
	GetByYear(ctx context.Context, year int) (Season, bool, error)
	List(ctx context.Context, offset, limit int) ([]Season, error)
	Create(ctx context.Context, s Season) (Season, error)
	Update(ctx context.Context, s Season) error
	Delete(ctx context.Context, id int64) error
}
