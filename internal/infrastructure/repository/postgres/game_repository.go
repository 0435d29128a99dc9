package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/leaguerly/internal/domain/game"
	"github.com/riskibarqy/leaguerly/internal/domain/player"
	qb "github.com/riskibarqy/leaguerly/internal/platform/querybuilder"
)

type GameRepository struct {
	db *sqlx.DB
}

func NewGameRepository(db *sqlx.DB) *GameRepository {
	return &GameRepository{db: db}
}

func (r *GameRepository) List(ctx context.Context, filter game.Filter) ([]game.Game, error) {
	conditions := []qb.Condition{qb.IsNull("deleted_at")}
	if filter.DivisionID > 0 {
		conditions = append(conditions, qb.Eq("division_id", filter.DivisionID))
	}

	query, args, err := qb.Select("*").From("games").
		Where(conditions...).
		OrderBy("game_date", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select games query: %w", err)
	}

	var rows []gameTableModel
	if err := selectRows(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select games: %w", err)
	}
	return r.hydrate(ctx, rows)
}

func (r *GameRepository) ListByDivision(ctx context.Context, divisionID int64) ([]game.Game, error) {
	return r.List(ctx, game.Filter{DivisionID: divisionID})
}

func (r *GameRepository) GetByID(ctx context.Context, gameID int64) (game.Game, bool, error) {
	query, args, err := qb.Select("*").From("games").
		Where(qb.Eq("id", gameID), qb.IsNull("deleted_at")).
		Limit(1).
		ToSQL()
	if err != nil {
		return game.Game{}, false, fmt.Errorf("build select game by id query: %w", err)
	}

	var row gameTableModel
	if err := getRow(ctx, r.db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return game.Game{}, false, nil
		}
		return game.Game{}, false, fmt.Errorf("select game by id: %w", err)
	}

	items, err := r.hydrate(ctx, []gameTableModel{row})
	if err != nil {
		return game.Game{}, false, err
	}
	return items[0], true, nil
}

func (r *GameRepository) Create(ctx context.Context, item game.Game) (game.Game, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return game.Game{}, fmt.Errorf("begin tx insert game: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query, args, err := qb.InsertModel("games", gameWriteModelFrom(item)).
		Returning("id").
		ToSQL()
	if err != nil {
		return game.Game{}, fmt.Errorf("build insert game query: %w", err)
	}
	if err := tx.GetContext(ctx, &item.ID, query, args...); err != nil {
		return game.Game{}, mapWriteError("insert game", err)
	}
	if err := replaceGameEvents(ctx, tx, &item); err != nil {
		return game.Game{}, err
	}

	if err := tx.Commit(); err != nil {
		return game.Game{}, fmt.Errorf("commit insert game tx: %w", err)
	}
	return item, nil
}

// Update rewrites the game row and replaces its goals and bookings atomically.
func (r *GameRepository) Update(ctx context.Context, item game.Game) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx update game: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query, args, err := qb.UpdateModel("games", gameWriteModelFrom(item)).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", item.ID), qb.IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update game query: %w", err)
	}
	if err := execAffectingOne(ctx, tx, "update game", query, args...); err != nil {
		return err
	}
	if err := replaceGameEvents(ctx, tx, &item); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit update game tx: %w", err)
	}
	return nil
}

func (r *GameRepository) Delete(ctx context.Context, gameID int64) error {
	query, args, err := qb.SoftDelete("games", gameID)
	if err != nil {
		return fmt.Errorf("build soft delete game query: %w", err)
	}
	return execAffectingOne(ctx, r.db, "soft delete game", query, args...)
}

func replaceGameEvents(ctx context.Context, tx *sqlx.Tx, item *game.Game) error {
	for _, table := range []string{"goals", "bookings"} {
		query, args, err := qb.DeleteFrom(table).Where(qb.Eq("game_id", item.ID)).ToSQL()
		if err != nil {
			return fmt.Errorf("build delete %s query: %w", table, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("delete %s: %w", table, err)
		}
	}

	for i := range item.Goals {
		goal := &item.Goals[i]
		goal.GameID = item.ID
		query, args, err := qb.InsertModel("goals", goalWriteModel{GameID: item.ID, PlayerID: goal.PlayerID, Count: goal.Count}).
			Returning("id").
			ToSQL()
		if err != nil {
			return fmt.Errorf("build insert goal query: %w", err)
		}
		if err := tx.GetContext(ctx, &goal.ID, query, args...); err != nil {
			return mapWriteError("insert goal", err)
		}
	}

	for i := range item.Bookings {
		booking := &item.Bookings[i]
		booking.GameID = item.ID
		query, args, err := qb.InsertModel("bookings", bookingWriteModel{
			GameID:   item.ID,
			PlayerID: booking.PlayerID,
			Card:     string(booking.Card),
			Minute:   booking.Minute,
		}).
			Returning("id").
			ToSQL()
		if err != nil {
			return fmt.Errorf("build insert booking query: %w", err)
		}
		if err := tx.GetContext(ctx, &booking.ID, query, args...); err != nil {
			return mapWriteError("insert booking", err)
		}
	}

	return nil
}

// hydrate attaches goals with fully affiliated scorers and bookings.
func (r *GameRepository) hydrate(ctx context.Context, rows []gameTableModel) ([]game.Game, error) {
	out := make([]game.Game, 0, len(rows))
	if len(rows) == 0 {
		return out, nil
	}

	gameIDs := make([]int64, 0, len(rows))
	for _, row := range rows {
		gameIDs = append(gameIDs, row.ID)
	}

	goalsQuery, goalsArgs, err := qb.Select("id", "game_id", "player_id", "goal_count").From("goals").
		Where(qb.Any("game_id", pq.Array(gameIDs))).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select goals query: %w", err)
	}
	var goals []goalTableModel
	if err := selectRows(ctx, r.db, &goals, goalsQuery, goalsArgs...); err != nil {
		return nil, fmt.Errorf("select goals: %w", err)
	}

	bookingsQuery, bookingsArgs, err := qb.Select("id", "game_id", "player_id", "card", "minute").From("bookings").
		Where(qb.Any("game_id", pq.Array(gameIDs))).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select bookings query: %w", err)
	}
	var bookings []bookingTableModel
	if err := selectRows(ctx, r.db, &bookings, bookingsQuery, bookingsArgs...); err != nil {
		return nil, fmt.Errorf("select bookings: %w", err)
	}

	scorers, err := r.loadScorers(ctx, goals)
	if err != nil {
		return nil, err
	}

	goalsByGame := make(map[int64][]game.Goal, len(rows))
	for _, g := range goals {
		goalsByGame[g.GameID] = append(goalsByGame[g.GameID], game.Goal{
			ID:       g.ID,
			GameID:   g.GameID,
			PlayerID: g.PlayerID,
			Scorer:   scorers[g.PlayerID],
			Count:    g.Count,
		})
	}
	bookingsByGame := make(map[int64][]game.Booking, len(rows))
	for _, b := range bookings {
		bookingsByGame[b.GameID] = append(bookingsByGame[b.GameID], game.Booking{
			ID:       b.ID,
			GameID:   b.GameID,
			PlayerID: b.PlayerID,
			Card:     game.Card(b.Card),
			Minute:   b.Minute,
		})
	}

	for _, row := range rows {
		out = append(out, game.Game{
			ID:                 row.ID,
			Date:               row.GameDate,
			DivisionID:         row.DivisionID,
			LocationID:         row.LocationID,
			HomeTeamID:         row.HomeTeamID,
			AwayTeamID:         row.AwayTeamID,
			WasForfeited:       row.WasForfeited,
			ForfeitingTeamID:   nullInt64Ptr(row.ForfeitingTeamID),
			IncludeInStandings: row.IncludeInStandings,
			Goals:              goalsByGame[row.ID],
			Bookings:           bookingsByGame[row.ID],
		})
	}
	return out, nil
}

// loadScorers includes soft-deleted players so historical goals keep counting.
func (r *GameRepository) loadScorers(ctx context.Context, goals []goalTableModel) (map[int64]player.Player, error) {
	out := make(map[int64]player.Player)
	if len(goals) == 0 {
		return out, nil
	}

	ids := make([]int64, 0, len(goals))
	seen := make(map[int64]struct{}, len(goals))
	for _, g := range goals {
		if _, ok := seen[g.PlayerID]; ok {
			continue
		}
		seen[g.PlayerID] = struct{}{}
		ids = append(ids, g.PlayerID)
	}

	query, args, err := qb.Select("*").From("players").
		Where(qb.Any("id", pq.Array(ids))).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select scorers query: %w", err)
	}
	var rows []playerTableModel
	if err := selectRows(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select scorers: %w", err)
	}

	players, err := withAffiliations(ctx, r.db, rows)
	if err != nil {
		return nil, err
	}
	for _, p := range players {
		out[p.ID] = p
	}
	return out, nil
}
