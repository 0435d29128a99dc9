package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/leaguerly/internal/domain/location"
	qb "github.com/riskibarqy/leaguerly/internal/platform/querybuilder"
)

type LocationRepository struct {
	db *sqlx.DB
}

func NewLocationRepository(db *sqlx.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

func (r *LocationRepository) List(ctx context.Context) ([]location.Location, error) {
	query, args, err := qb.Select("*").From("locations").
		Where(qb.IsNull("deleted_at")).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select locations query: %w", err)
	}

	var rows []locationTableModel
	if err := selectRows(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select locations: %w", err)
	}

	out := make([]location.Location, 0, len(rows))
	for _, row := range rows {
		out = append(out, location.Location{ID: row.ID, Name: row.Name, Address: row.Address})
	}
	return out, nil
}

func (r *LocationRepository) GetByID(ctx context.Context, locationID int64) (location.Location, bool, error) {
	query, args, err := qb.Select("*").From("locations").
		Where(qb.Eq("id", locationID), qb.IsNull("deleted_at")).
		Limit(1).
		ToSQL()
	if err != nil {
		return location.Location{}, false, fmt.Errorf("build select location by id query: %w", err)
	}

	var row locationTableModel
	if err := getRow(ctx, r.db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return location.Location{}, false, nil
		}
		return location.Location{}, false, fmt.Errorf("select location by id: %w", err)
	}
	return location.Location{ID: row.ID, Name: row.Name, Address: row.Address}, true, nil
}

func (r *LocationRepository) Create(ctx context.Context, item location.Location) (location.Location, error) {
	query, args, err := qb.InsertModel("locations", locationWriteModel{Name: item.Name, Address: item.Address}).
		Returning("id").
		ToSQL()
	if err != nil {
		return location.Location{}, fmt.Errorf("build insert location query: %w", err)
	}

	if err := r.db.GetContext(ctx, &item.ID, query, args...); err != nil {
		return location.Location{}, mapWriteError("insert location", err)
	}
	return item, nil
}

func (r *LocationRepository) Update(ctx context.Context, item location.Location) error {
	query, args, err := qb.UpdateModel("locations", locationWriteModel{Name: item.Name, Address: item.Address}).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", item.ID), qb.IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update location query: %w", err)
	}
	return execAffectingOne(ctx, r.db, "update location", query, args...)
}

func (r *LocationRepository) Delete(ctx context.Context, locationID int64) error {
	query, args, err := qb.SoftDelete("locations", locationID)
	if err != nil {
		return fmt.Errorf("build soft delete location query: %w", err)
	}
	return execAffectingOne(ctx, r.db, "soft delete location", query, args...)
}
