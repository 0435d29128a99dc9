package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/leaguerly/internal/domain/division"
	qb "github.com/riskibarqy/leaguerly/internal/platform/querybuilder"
)

type DivisionRepository struct {
	db *sqlx.DB
}

func NewDivisionRepository(db *sqlx.DB) *DivisionRepository {
	return &DivisionRepository{db: db}
}

func (r *DivisionRepository) List(ctx context.Context) ([]division.Division, error) {
	query, args, err := qb.Select("*").From("divisions").
		Where(qb.IsNull("deleted_at")).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select divisions query: %w", err)
	}

	var rows []divisionTableModel
	if err := selectRows(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select divisions: %w", err)
	}

	out := make([]division.Division, 0, len(rows))
	for _, row := range rows {
		out = append(out, divisionFromRow(row))
	}
	return out, nil
}

func (r *DivisionRepository) GetByID(ctx context.Context, divisionID int64) (division.Division, bool, error) {
	query, args, err := qb.Select("*").From("divisions").
		Where(qb.Eq("id", divisionID), qb.IsNull("deleted_at")).
		Limit(1).
		ToSQL()
	if err != nil {
		return division.Division{}, false, fmt.Errorf("build select division by id query: %w", err)
	}

	var row divisionTableModel
	if err := getRow(ctx, r.db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return division.Division{}, false, nil
		}
		return division.Division{}, false, fmt.Errorf("select division by id: %w", err)
	}
	return divisionFromRow(row), true, nil
}

func (r *DivisionRepository) Create(ctx context.Context, item division.Division) (division.Division, error) {
	query, args, err := qb.InsertModel("divisions", divisionWriteModel{Name: item.Name, Season: item.Season}).
		Returning("id").
		ToSQL()
	if err != nil {
		return division.Division{}, fmt.Errorf("build insert division query: %w", err)
	}

	if err := r.db.GetContext(ctx, &item.ID, query, args...); err != nil {
		return division.Division{}, mapWriteError("insert division", err)
	}
	return item, nil
}

func (r *DivisionRepository) Update(ctx context.Context, item division.Division) error {
	query, args, err := qb.UpdateModel("divisions", divisionWriteModel{Name: item.Name, Season: item.Season}).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", item.ID), qb.IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update division query: %w", err)
	}
	return execAffectingOne(ctx, r.db, "update division", query, args...)
}

func (r *DivisionRepository) Delete(ctx context.Context, divisionID int64) error {
	query, args, err := qb.SoftDelete("divisions", divisionID)
	if err != nil {
		return fmt.Errorf("build soft delete division query: %w", err)
	}
	return execAffectingOne(ctx, r.db, "soft delete division", query, args...)
}

func divisionFromRow(row divisionTableModel) division.Division {
	return division.Division{ID: row.ID, Name: row.Name, Season: row.Season}
}
