package game

import "context"

// Repository loads and persists games together with their goals and bookings.
// Loaded goals carry the scorer with all team affiliations.
type Repository interface {
	List(ctx context.Context, filter Filter) ([]Game, error)
	ListByDivision(ctx context.Context, divisionID int64) ([]Game, error)
	GetByID(ctx context.Context, gameID int64) (Game, bool, error)
	Create(ctx context.Context, item Game) (Game, error)
	Update(ctx context.Context, item Game) error
	Delete(ctx context.Context, gameID int64) error
}
