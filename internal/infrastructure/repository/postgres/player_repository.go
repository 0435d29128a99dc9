package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/leaguerly/internal/domain/player"
	qb "github.com/riskibarqy/leaguerly/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	query, args, err := qb.Select("*").From("players").
		Where(qb.IsNull("deleted_at")).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players query: %w", err)
	}
	return r.selectPlayers(ctx, query, args...)
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, teamID int64) ([]player.Player, error) {
	query, args, err := qb.Select("*").From("players").
		Where(
			qb.Expr("id IN (SELECT player_id FROM player_teams WHERE team_id = ?)", teamID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("number", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players by team query: %w", err)
	}
	return r.selectPlayers(ctx, query, args...)
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID int64) (player.Player, bool, error) {
	items, err := r.GetByIDs(ctx, []int64{playerID})
	if err != nil {
		return player.Player{}, false, err
	}
	if len(items) == 0 {
		return player.Player{}, false, nil
	}
	return items[0], true, nil
}

func (r *PlayerRepository) GetByIDs(ctx context.Context, playerIDs []int64) ([]player.Player, error) {
	if len(playerIDs) == 0 {
		return []player.Player{}, nil
	}

	query, args, err := qb.Select("*").From("players").
		Where(qb.Any("id", pq.Array(playerIDs)), qb.IsNull("deleted_at")).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players by ids query: %w", err)
	}
	return r.selectPlayers(ctx, query, args...)
}

func (r *PlayerRepository) Create(ctx context.Context, item player.Player) (player.Player, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return player.Player{}, fmt.Errorf("begin tx insert player: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query, args, err := qb.InsertModel("players", playerWriteModel{Name: item.Name, Number: item.Number}).
		Returning("id").
		ToSQL()
	if err != nil {
		return player.Player{}, fmt.Errorf("build insert player query: %w", err)
	}
	if err := tx.GetContext(ctx, &item.ID, query, args...); err != nil {
		return player.Player{}, mapWriteError("insert player", err)
	}
	if err := replaceAffiliations(ctx, tx, item.ID, item.TeamIDs); err != nil {
		return player.Player{}, err
	}

	if err := tx.Commit(); err != nil {
		return player.Player{}, fmt.Errorf("commit insert player tx: %w", err)
	}
	return item, nil
}

func (r *PlayerRepository) Update(ctx context.Context, item player.Player) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx update player: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query, args, err := qb.UpdateModel("players", playerWriteModel{Name: item.Name, Number: item.Number}).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", item.ID), qb.IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update player query: %w", err)
	}
	if err := execAffectingOne(ctx, tx, "update player", query, args...); err != nil {
		return err
	}
	if err := replaceAffiliations(ctx, tx, item.ID, item.TeamIDs); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit update player tx: %w", err)
	}
	return nil
}

func (r *PlayerRepository) Delete(ctx context.Context, playerID int64) error {
	query, args, err := qb.SoftDelete("players", playerID)
	if err != nil {
		return fmt.Errorf("build soft delete player query: %w", err)
	}
	return execAffectingOne(ctx, r.db, "soft delete player", query, args...)
}

func (r *PlayerRepository) selectPlayers(ctx context.Context, query string, args ...any) ([]player.Player, error) {
	var rows []playerTableModel
	if err := selectRows(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players: %w", err)
	}
	return withAffiliations(ctx, r.db, rows)
}

// withAffiliations loads team ids for the given player rows in one query.
func withAffiliations(ctx context.Context, db sqlx.QueryerContext, rows []playerTableModel) ([]player.Player, error) {
	out := make([]player.Player, 0, len(rows))
	if len(rows) == 0 {
		return out, nil
	}

	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}

	query, args, err := qb.Select("player_id", "team_id").From("player_teams").
		Where(qb.Any("player_id", pq.Array(ids))).
		OrderBy("player_id", "team_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select player teams query: %w", err)
	}

	var links []playerTeamTableModel
	if err := selectRows(ctx, db, &links, query, args...); err != nil {
		return nil, fmt.Errorf("select player teams: %w", err)
	}

	teamIDs := make(map[int64][]int64, len(rows))
	for _, link := range links {
		teamIDs[link.PlayerID] = append(teamIDs[link.PlayerID], link.TeamID)
	}
	for _, row := range rows {
		out = append(out, player.Player{
			ID:      row.ID,
			Name:    row.Name,
			Number:  row.Number,
			TeamIDs: teamIDs[row.ID],
		})
	}
	return out, nil
}

func replaceAffiliations(ctx context.Context, tx *sqlx.Tx, playerID int64, teamIDs []int64) error {
	query, args, err := qb.DeleteFrom("player_teams").Where(qb.Eq("player_id", playerID)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete player teams query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete player teams: %w", err)
	}
	if len(teamIDs) == 0 {
		return nil
	}

	insert := qb.InsertInto("player_teams").Columns("player_id", "team_id")
	for _, teamID := range teamIDs {
		insert = insert.Values(playerID, teamID)
	}
	query, args, err = insert.Suffix("ON CONFLICT DO NOTHING").ToSQL()
	if err != nil {
		return fmt.Errorf("build insert player teams query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return mapWriteError("insert player teams", err)
	}
	return nil
}
