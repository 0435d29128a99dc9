package location

import "context"

type Repository interface {
	List(ctx context.Context) ([]Location, error)
	GetByID(ctx context.Context, locationID int64) (Location, bool, error)
	Create(ctx context.Context, item Location) (Location, error)
	Update(ctx context.Context, item Location) error
	Delete(ctx context.Context, locationID int64) error
}
