package memory

import (
	"context"
	"fmt"

	"github.com/riskibarqy/leaguerly/internal/domain/player"
)

type PlayerRepository struct {
	rows *table[player.Player]
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	return &PlayerRepository{rows: newTable(clonePlayers(players), func(p player.Player) int64 { return p.ID })}
}

func (r *PlayerRepository) List(_ context.Context) ([]player.Player, error) {
	return clonePlayers(r.rows.list(nil)), nil
}

func (r *PlayerRepository) ListByTeam(_ context.Context, teamID int64) ([]player.Player, error) {
	return clonePlayers(r.rows.list(func(p player.Player) bool { return p.PlaysFor(teamID) })), nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID int64) (player.Player, bool, error) {
	item, ok := r.rows.get(playerID)
	return clonePlayer(item), ok, nil
}

func (r *PlayerRepository) GetByIDs(_ context.Context, playerIDs []int64) ([]player.Player, error) {
	out := make([]player.Player, 0, len(playerIDs))
	for _, id := range playerIDs {
		if item, ok := r.rows.get(id); ok {
			out = append(out, clonePlayer(item))
		}
	}
	return out, nil
}

// scorers resolves goal scorers including deleted players so recorded
// results do not change after a player is removed.
func (r *PlayerRepository) scorers(playerIDs []int64) map[int64]player.Player {
	out := make(map[int64]player.Player, len(playerIDs))
	for _, id := range playerIDs {
		if item, ok := r.rows.getWithDeleted(id); ok {
			out[id] = clonePlayer(item)
		}
	}
	return out
}

func (r *PlayerRepository) Create(_ context.Context, item player.Player) (player.Player, error) {
	created := r.rows.insert(clonePlayer(item), func(p *player.Player, id int64) { p.ID = id })
	return clonePlayer(created), nil
}

func (r *PlayerRepository) Update(_ context.Context, item player.Player) error {
	if !r.rows.replace(item.ID, clonePlayer(item)) {
		return fmt.Errorf("player %d not found", item.ID)
	}
	return nil
}

func (r *PlayerRepository) Delete(_ context.Context, playerID int64) error {
	if !r.rows.remove(playerID) {
		return fmt.Errorf("player %d not found", playerID)
	}
	return nil
}

func clonePlayer(item player.Player) player.Player {
	item.TeamIDs = append([]int64(nil), item.TeamIDs...)
	return item
}

func clonePlayers(items []player.Player) []player.Player {
	out := make([]player.Player, 0, len(items))
	for _, item := range items {
		out = append(out, clonePlayer(item))
	}
	return out
}
