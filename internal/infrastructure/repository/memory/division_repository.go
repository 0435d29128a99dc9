package memory

import (
	"context"
	"fmt"

	"github.com/riskibarqy/leaguerly/internal/domain/division"
)

type DivisionRepository struct {
	rows *table[division.Division]
}

func NewDivisionRepository(divisions []division.Division) *DivisionRepository {
	return &DivisionRepository{rows: newTable(divisions, func(d division.Division) int64 { return d.ID })}
}

func (r *DivisionRepository) List(_ context.Context) ([]division.Division, error) {
	return r.rows.list(nil), nil
}

func (r *DivisionRepository) GetByID(_ context.Context, divisionID int64) (division.Division, bool, error) {
	item, ok := r.rows.get(divisionID)
	return item, ok, nil
}

func (r *DivisionRepository) Create(_ context.Context, item division.Division) (division.Division, error) {
	return r.rows.insert(item, func(d *division.Division, id int64) { d.ID = id }), nil
}

func (r *DivisionRepository) Update(_ context.Context, item division.Division) error {
	if !r.rows.replace(item.ID, item) {
		return fmt.Errorf("division %d not found", item.ID)
	}
	return nil
}

func (r *DivisionRepository) Delete(_ context.Context, divisionID int64) error {
	if !r.rows.remove(divisionID) {
		return fmt.Errorf("division %d not found", divisionID)
	}
	return nil
}
