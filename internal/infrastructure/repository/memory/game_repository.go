package memory

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/riskibarqy/leaguerly/internal/domain/game"
	"github.com/riskibarqy/leaguerly/internal/domain/player"
)

// GameRepository stores games with their goals and bookings. Scorers are
// resolved against the player repository on every read so affiliation
// changes are reflected.
type GameRepository struct {
	rows      *table[game.Game]
	players   *PlayerRepository
	nextChild atomic.Int64
}

func NewGameRepository(games []game.Game, players *PlayerRepository) *GameRepository {
	r := &GameRepository{players: players}
	var maxChild int64
	stored := make([]game.Game, 0, len(games))
	for _, g := range games {
		g = cloneGame(g)
		for i := range g.Goals {
			if g.Goals[i].ID > maxChild {
				maxChild = g.Goals[i].ID
			}
		}
		for i := range g.Bookings {
			if g.Bookings[i].ID > maxChild {
				maxChild = g.Bookings[i].ID
			}
		}
		stored = append(stored, g)
	}
	r.rows = newTable(stored, func(g game.Game) int64 { return g.ID })
	r.nextChild.Store(maxChild)
	return r
}

func (r *GameRepository) List(_ context.Context, filter game.Filter) ([]game.Game, error) {
	items := r.rows.list(func(g game.Game) bool {
		return filter.DivisionID == 0 || g.DivisionID == filter.DivisionID
	})
	return r.hydrate(items), nil
}

func (r *GameRepository) ListByDivision(ctx context.Context, divisionID int64) ([]game.Game, error) {
	return r.List(ctx, game.Filter{DivisionID: divisionID})
}

func (r *GameRepository) GetByID(_ context.Context, gameID int64) (game.Game, bool, error) {
	item, ok := r.rows.get(gameID)
	if !ok {
		return game.Game{}, false, nil
	}
	return r.hydrate([]game.Game{item})[0], true, nil
}

func (r *GameRepository) Create(_ context.Context, item game.Game) (game.Game, error) {
	created := r.rows.insert(r.prepare(item), func(g *game.Game, id int64) {
		g.ID = id
		for i := range g.Goals {
			g.Goals[i].GameID = id
		}
		for i := range g.Bookings {
			g.Bookings[i].GameID = id
		}
	})
	return cloneGame(created), nil
}

func (r *GameRepository) Update(_ context.Context, item game.Game) error {
	if !r.rows.replace(item.ID, r.prepare(item)) {
		return fmt.Errorf("game %d not found", item.ID)
	}
	return nil
}

func (r *GameRepository) Delete(_ context.Context, gameID int64) error {
	if !r.rows.remove(gameID) {
		return fmt.Errorf("game %d not found", gameID)
	}
	return nil
}

// prepare copies the game, assigns ids to new goals and bookings and drops
// resolved scorers so only player ids are stored.
func (r *GameRepository) prepare(item game.Game) game.Game {
	item = cloneGame(item)
	for i := range item.Goals {
		item.Goals[i].ID = r.nextChild.Add(1)
		item.Goals[i].GameID = item.ID
		item.Goals[i].Scorer = player.Player{ID: item.Goals[i].PlayerID}
	}
	for i := range item.Bookings {
		item.Bookings[i].ID = r.nextChild.Add(1)
		item.Bookings[i].GameID = item.ID
	}
	return item
}

func (r *GameRepository) hydrate(items []game.Game) []game.Game {
	ids := make([]int64, 0)
	for _, g := range items {
		for _, goal := range g.Goals {
			ids = append(ids, goal.PlayerID)
		}
	}
	scorers := r.players.scorers(ids)

	out := make([]game.Game, 0, len(items))
	for _, g := range items {
		g = cloneGame(g)
		for i := range g.Goals {
			if scorer, ok := scorers[g.Goals[i].PlayerID]; ok {
				g.Goals[i].Scorer = scorer
			}
		}
		out = append(out, g)
	}
	return out
}

func cloneGame(item game.Game) game.Game {
	item.Goals = append([]game.Goal(nil), item.Goals...)
	item.Bookings = append([]game.Booking(nil), item.Bookings...)
	if item.ForfeitingTeamID != nil {
		id := *item.ForfeitingTeamID
		item.ForfeitingTeamID = &id
	}
	return item
}
