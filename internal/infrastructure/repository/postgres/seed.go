package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/leaguerly/internal/infrastructure/repository/memory"
)

// BootstrapSeed loads the demo league into an empty database. Explicit ids
// are kept so seeded games reference seeded teams, then sequences are moved
// past them.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM divisions WHERE deleted_at IS NULL`); err != nil {
		return fmt.Errorf("count divisions for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	exec := func(label, query string, arg map[string]any) error {
		sqlQuery, args, err := sqlx.Named(query, arg)
		if err != nil {
			return fmt.Errorf("bind seed %s query: %w", label, err)
		}
		if _, err := tx.ExecContext(ctx, tx.Rebind(sqlQuery), args...); err != nil {
			return fmt.Errorf("seed %s: %w", label, err)
		}
		return nil
	}

	for _, d := range memory.SeedDivisions() {
		if err := exec(fmt.Sprintf("division %d", d.ID), `
INSERT INTO divisions (id, name, season)
VALUES (:id, :name, :season)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":     d.ID,
			"name":   d.Name,
			"season": d.Season,
		}); err != nil {
			return err
		}
	}

	for _, l := range memory.SeedLocations() {
		if err := exec(fmt.Sprintf("location %d", l.ID), `
INSERT INTO locations (id, name, address)
VALUES (:id, :name, :address)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":      l.ID,
			"name":    l.Name,
			"address": l.Address,
		}); err != nil {
			return err
		}
	}

	for _, t := range memory.SeedTeams() {
		if err := exec(fmt.Sprintf("team %d", t.ID), `
INSERT INTO teams (id, name, short, image_url)
VALUES (:id, :name, :short, :image_url)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":        t.ID,
			"name":      t.Name,
			"short":     t.Short,
			"image_url": t.ImageURL,
		}); err != nil {
			return err
		}
	}

	for _, p := range memory.SeedPlayers() {
		label := fmt.Sprintf("player %d", p.ID)
		if err := exec(label, `
INSERT INTO players (id, name, number)
VALUES (:id, :name, :number)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":     p.ID,
			"name":   p.Name,
			"number": p.Number,
		}); err != nil {
			return err
		}
		for _, teamID := range p.TeamIDs {
			if err := exec(label+" affiliation", `
INSERT INTO player_teams (player_id, team_id)
VALUES (:player_id, :team_id)
ON CONFLICT DO NOTHING`, map[string]any{
				"player_id": p.ID,
				"team_id":   teamID,
			}); err != nil {
				return err
			}
		}
	}

	for _, g := range memory.SeedGames() {
		label := fmt.Sprintf("game %d", g.ID)
		if err := exec(label, `
INSERT INTO games (id, division_id, location_id, home_team_id, away_team_id, game_date, was_forfeited, forfeiting_team_id, include_in_standings)
VALUES (:id, :division_id, :location_id, :home_team_id, :away_team_id, :game_date, :was_forfeited, :forfeiting_team_id, :include_in_standings)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":                   g.ID,
			"division_id":          g.DivisionID,
			"location_id":          g.LocationID,
			"home_team_id":         g.HomeTeamID,
			"away_team_id":         g.AwayTeamID,
			"game_date":            g.Date.UTC(),
			"was_forfeited":        g.WasForfeited,
			"forfeiting_team_id":   nullInt64(g.ForfeitingTeamID),
			"include_in_standings": g.IncludeInStandings,
		}); err != nil {
			return err
		}
		for _, goal := range g.Goals {
			if err := exec(label+" goal", `
INSERT INTO goals (game_id, player_id, goal_count)
VALUES (:game_id, :player_id, :goal_count)`, map[string]any{
				"game_id":    g.ID,
				"player_id":  goal.PlayerID,
				"goal_count": goal.Count,
			}); err != nil {
				return err
			}
		}
		for _, booking := range g.Bookings {
			if err := exec(label+" booking", `
INSERT INTO bookings (game_id, player_id, card, minute)
VALUES (:game_id, :player_id, :card, :minute)`, map[string]any{
				"game_id":   g.ID,
				"player_id": booking.PlayerID,
				"card":      string(booking.Card),
				"minute":    booking.Minute,
			}); err != nil {
				return err
			}
		}
	}

	for _, table := range []string{"divisions", "locations", "teams", "players", "games"} {
		query := fmt.Sprintf(`SELECT setval(pg_get_serial_sequence('%s', 'id'), COALESCE((SELECT MAX(id) FROM %s), 1))`, table, table)
		if _, err := tx.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("reset %s id sequence: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}
	return nil
}
