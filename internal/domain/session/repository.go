package session

import "context"

// Repository describes session persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, id int64) (Session, bool, error)
	List(ctx context.Context, offset, limit int) ([]Session, error)
	ListByRound(ctx context.Context, roundID int64, offset, limit int) ([]Session, error)
	Create(ctx context.Context, s Session) (Session, error)
	Update(ctx context.Context, s Session) error
	Delete(ctx context.Context, id int64) error
}
