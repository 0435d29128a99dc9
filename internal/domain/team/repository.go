package team

import "context"

// Repository describes team persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Team, error)
	GetByID(ctx context.Context, teamID int64) (Team, bool, error)
	Create(ctx context.Context, item Team) (Team, error)
	Update(ctx context.Context, item Team) error
	Delete(ctx context.Context, teamID int64) error
}
