package division

import "context"

type Repository interface {
	List(ctx context.Context) ([]Division, error)
	GetByID(ctx context.Context, divisionID int64) (Division, bool, error)
	Create(ctx context.Context, item Division) (Division, error)
	Update(ctx context.Context, item Division) error
	Delete(ctx context.Context, divisionID int64) error
}
