package memory

import (
	"context"
	"fmt"

	"github.com/riskibarqy/leaguerly/internal/domain/location"
)

type LocationRepository struct {
	rows *table[location.Location]
}

func NewLocationRepository(locations []location.Location) *LocationRepository {
	return &LocationRepository{rows: newTable(locations, func(l location.Location) int64 { return l.ID })}
}

func (r *LocationRepository) List(_ context.Context) ([]location.Location, error) {
	return r.rows.list(nil), nil
}

func (r *LocationRepository) GetByID(_ context.Context, locationID int64) (location.Location, bool, error) {
	item, ok := r.rows.get(locationID)
	return item, ok, nil
}

func (r *LocationRepository) Create(_ context.Context, item location.Location) (location.Location, error) {
	return r.rows.insert(item, func(l *location.Location, id int64) { l.ID = id }), nil
}

func (r *LocationRepository) Update(_ context.Context, item location.Location) error {
	if !r.rows.replace(item.ID, item) {
		return fmt.Errorf("location %d not found", item.ID)
	}
	return nil
}

func (r *LocationRepository) Delete(_ context.Context, locationID int64) error {
	if !r.rows.remove(locationID) {
		return fmt.Errorf("location %d not found", locationID)
	}
	return nil
}
