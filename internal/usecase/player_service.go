package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/leaguerly/internal/domain/player"
	"github.com/riskibarqy/leaguerly/internal/domain/team"
)

type PlayerService struct {
	teamRepo   team.Repository
	playerRepo player.Repository
}

func NewPlayerService(teamRepo team.Repository, playerRepo player.Repository) *PlayerService {
	return &PlayerService{
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
	}
}

func (s *PlayerService) ListByTeam(ctx context.Context, teamID int64) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListByTeam")
	defer span.End()

	if teamID <= 0 {
		return nil, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	_, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: team=%d", ErrNotFound, teamID)
	}

	items, err := s.playerRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list players by team: %w", err)
	}

	return items, nil
}

func (s *PlayerService) Get(ctx context.Context, playerID int64) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Get")
	defer span.End()

	if playerID <= 0 {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	item, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%d", ErrNotFound, playerID)
	}

	return item, nil
}

func (s *PlayerService) Create(ctx context.Context, item player.Player) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Create")
	defer span.End()

	item, err := s.prepare(ctx, item)
	if err != nil {
		return player.Player{}, err
	}

	created, err := s.playerRepo.Create(ctx, item)
	if err != nil {
		return player.Player{}, fmt.Errorf("create player: %w", err)
	}

	return created, nil
}

func (s *PlayerService) Update(ctx context.Context, item player.Player) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Update")
	defer span.End()

	if _, err := s.Get(ctx, item.ID); err != nil {
		return player.Player{}, err
	}

	item, err := s.prepare(ctx, item)
	if err != nil {
		return player.Player{}, err
	}
	if err := s.playerRepo.Update(ctx, item); err != nil {
		return player.Player{}, fmt.Errorf("update player: %w", err)
	}

	return item, nil
}

func (s *PlayerService) Delete(ctx context.Context, playerID int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Delete")
	defer span.End()

	if _, err := s.Get(ctx, playerID); err != nil {
		return err
	}
	if err := s.playerRepo.Delete(ctx, playerID); err != nil {
		return fmt.Errorf("delete player: %w", err)
	}

	return nil
}

// prepare normalizes the player and checks every affiliated team exists.
func (s *PlayerService) prepare(ctx context.Context, item player.Player) (player.Player, error) {
	item.Name = strings.TrimSpace(item.Name)
	item.TeamIDs = uniqueIDs(item.TeamIDs)
	if err := item.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	for _, teamID := range item.TeamIDs {
		_, exists, err := s.teamRepo.GetByID(ctx, teamID)
		if err != nil {
			return player.Player{}, fmt.Errorf("get team: %w", err)
		}
		if !exists {
			return player.Player{}, fmt.Errorf("%w: unknown team=%d", ErrInvalidInput, teamID)
		}
	}

	return item, nil
}

func uniqueIDs(ids []int64) []int64 {
	out := make([]int64, 0, len(ids))
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
