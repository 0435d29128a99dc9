package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/leaguerly/internal/domain/team"
	qb "github.com/riskibarqy/leaguerly/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	query, args, err := qb.Select("*").From("teams").
		Where(qb.IsNull("deleted_at")).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams query: %w", err)
	}

	var rows []teamTableModel
	if err := selectRows(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, teamFromRow(row))
	}
	return out, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID int64) (team.Team, bool, error) {
	query, args, err := qb.Select("*").From("teams").
		Where(qb.Eq("id", teamID), qb.IsNull("deleted_at")).
		Limit(1).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build select team by id query: %w", err)
	}

	var row teamTableModel
	if err := getRow(ctx, r.db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("select team by id: %w", err)
	}
	return teamFromRow(row), true, nil
}

func (r *TeamRepository) Create(ctx context.Context, item team.Team) (team.Team, error) {
	query, args, err := qb.InsertModel("teams", teamWriteModelFrom(item)).
		Returning("id").
		ToSQL()
	if err != nil {
		return team.Team{}, fmt.Errorf("build insert team query: %w", err)
	}

	if err := r.db.GetContext(ctx, &item.ID, query, args...); err != nil {
		return team.Team{}, mapWriteError("insert team", err)
	}
	return item, nil
}

func (r *TeamRepository) Update(ctx context.Context, item team.Team) error {
	query, args, err := qb.UpdateModel("teams", teamWriteModelFrom(item)).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", item.ID), qb.IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update team query: %w", err)
	}
	return execAffectingOne(ctx, r.db, "update team", query, args...)
}

func (r *TeamRepository) Delete(ctx context.Context, teamID int64) error {
	query, args, err := qb.SoftDelete("teams", teamID)
	if err != nil {
		return fmt.Errorf("build soft delete team query: %w", err)
	}
	return execAffectingOne(ctx, r.db, "soft delete team", query, args...)
}

func teamFromRow(row teamTableModel) team.Team {
	return team.Team{ID: row.ID, Name: row.Name, Short: row.Short, ImageURL: row.ImageURL}
}
