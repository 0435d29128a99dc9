package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/leaguerly/internal/domain/division"
	"github.com/riskibarqy/leaguerly/internal/domain/game"
	"github.com/riskibarqy/leaguerly/internal/domain/location"
	"github.com/riskibarqy/leaguerly/internal/domain/player"
	"github.com/riskibarqy/leaguerly/internal/domain/team"
)

type GameService struct {
	gameRepo     game.Repository
	divisionRepo division.Repository
	locationRepo location.Repository
	teamRepo     team.Repository
	playerRepo   player.Repository
}

func NewGameService(
	gameRepo game.Repository,
	divisionRepo division.Repository,
	locationRepo location.Repository,
	teamRepo team.Repository,
	playerRepo player.Repository,
) *GameService {
	return &GameService{
		gameRepo:     gameRepo,
		divisionRepo: divisionRepo,
		locationRepo: locationRepo,
		teamRepo:     teamRepo,
		playerRepo:   playerRepo,
	}
}

// List returns games of one division, or every game when divisionID is zero.
func (s *GameService) List(ctx context.Context, divisionID int64) ([]game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.List")
	defer span.End()

	if divisionID < 0 {
		return nil, fmt.Errorf("%w: invalid division id", ErrInvalidInput)
	}

	var (
		items []game.Game
		err   error
	)
	if divisionID > 0 {
		if err := s.requireDivision(ctx, divisionID); err != nil {
			return nil, err
		}
		items, err = s.gameRepo.ListByDivision(ctx, divisionID)
	} else {
		items, err = s.gameRepo.List(ctx, game.Filter{})
	}
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}

	teams, err := s.teamsByID(ctx)
	if err != nil {
		return nil, err
	}

	return attachTeams(items, teams), nil
}

func (s *GameService) Get(ctx context.Context, gameID int64) (game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.Get")
	defer span.End()

	item, err := s.get(ctx, gameID)
	if err != nil {
		return game.Game{}, err
	}

	teams, err := s.teamsByID(ctx)
	if err != nil {
		return game.Game{}, err
	}

	return attachTeams([]game.Game{item}, teams)[0], nil
}

// Create schedules a new game. Goals and bookings are recorded through Update.
func (s *GameService) Create(ctx context.Context, item game.Game) (game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.Create")
	defer span.End()

	item.ID = 0
	item.Goals = nil
	item.Bookings = nil
	if err := s.prepare(ctx, &item); err != nil {
		return game.Game{}, err
	}

	created, err := s.gameRepo.Create(ctx, item)
	if err != nil {
		return game.Game{}, fmt.Errorf("create game: %w", err)
	}

	return created, nil
}

// Update replaces the stored game including its goals and bookings.
func (s *GameService) Update(ctx context.Context, item game.Game) (_ game.Game, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.Update", gameAttr(item.ID), divisionAttr(item.DivisionID))
	defer func() { endUsecaseSpan(span, err) }()

	if _, err := s.get(ctx, item.ID); err != nil {
		return game.Game{}, err
	}
	if err := s.prepare(ctx, &item); err != nil {
		return game.Game{}, err
	}
	if err := s.gameRepo.Update(ctx, item); err != nil {
		return game.Game{}, fmt.Errorf("update game: %w", err)
	}

	return item, nil
}

func (s *GameService) Delete(ctx context.Context, gameID int64) (err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.Delete", gameAttr(gameID))
	defer func() { endUsecaseSpan(span, err) }()

	if _, err := s.get(ctx, gameID); err != nil {
		return err
	}
	if err := s.gameRepo.Delete(ctx, gameID); err != nil {
		return fmt.Errorf("delete game: %w", err)
	}

	return nil
}

func (s *GameService) get(ctx context.Context, gameID int64) (game.Game, error) {
	if gameID <= 0 {
		return game.Game{}, fmt.Errorf("%w: game id is required", ErrInvalidInput)
	}

	item, exists, err := s.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return game.Game{}, fmt.Errorf("get game: %w", err)
	}
	if !exists {
		return game.Game{}, fmt.Errorf("%w: game=%d", ErrNotFound, gameID)
	}

	return item, nil
}

// prepare validates the game, checks its references and resolves goal scorers.
func (s *GameService) prepare(ctx context.Context, item *game.Game) error {
	for i := range item.Goals {
		item.Goals[i].GameID = item.ID
	}
	for i := range item.Bookings {
		item.Bookings[i].GameID = item.ID
	}
	if err := item.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	_, exists, err := s.divisionRepo.GetByID(ctx, item.DivisionID)
	if err != nil {
		return fmt.Errorf("get division: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: unknown division=%d", ErrInvalidInput, item.DivisionID)
	}

	_, exists, err = s.locationRepo.GetByID(ctx, item.LocationID)
	if err != nil {
		return fmt.Errorf("get location: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: unknown location=%d", ErrInvalidInput, item.LocationID)
	}

	for _, teamID := range []int64{item.HomeTeamID, item.AwayTeamID} {
		_, exists, err := s.teamRepo.GetByID(ctx, teamID)
		if err != nil {
			return fmt.Errorf("get team: %w", err)
		}
		if !exists {
			return fmt.Errorf("%w: unknown team=%d", ErrInvalidInput, teamID)
		}
	}

	return s.resolvePlayers(ctx, item)
}

func (s *GameService) resolvePlayers(ctx context.Context, item *game.Game) error {
	if len(item.Goals) == 0 && len(item.Bookings) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(item.Goals)+len(item.Bookings))
	for _, goal := range item.Goals {
		ids = append(ids, goal.PlayerID)
	}
	for _, booking := range item.Bookings {
		ids = append(ids, booking.PlayerID)
	}
	ids = uniqueIDs(ids)

	players, err := s.playerRepo.GetByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("get players by ids: %w", err)
	}
	byID := make(map[int64]player.Player, len(players))
	for _, p := range players {
		byID[p.ID] = p
	}

	for i, goal := range item.Goals {
		scorer, ok := byID[goal.PlayerID]
		if !ok {
			return fmt.Errorf("%w: unknown scorer=%d", ErrInvalidInput, goal.PlayerID)
		}
		item.Goals[i].Scorer = scorer
	}
	for _, booking := range item.Bookings {
		if _, ok := byID[booking.PlayerID]; !ok {
			return fmt.Errorf("%w: unknown booked player=%d", ErrInvalidInput, booking.PlayerID)
		}
	}

	return nil
}

func (s *GameService) requireDivision(ctx context.Context, divisionID int64) error {
	_, exists, err := s.divisionRepo.GetByID(ctx, divisionID)
	if err != nil {
		return fmt.Errorf("get division: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: division=%d", ErrNotFound, divisionID)
	}
	return nil
}

func (s *GameService) teamsByID(ctx context.Context) (map[int64]team.Team, error) {
	return loadTeams(ctx, s.teamRepo)
}

func loadTeams(ctx context.Context, teamRepo team.Repository) (map[int64]team.Team, error) {
	items, err := teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	out := make(map[int64]team.Team, len(items))
	for _, item := range items {
		out[item.ID] = item
	}
	return out, nil
}

func attachTeams(games []game.Game, teams map[int64]team.Team) []game.Game {
	out := make([]game.Game, 0, len(games))
	for _, g := range games {
		if t, ok := teams[g.HomeTeamID]; ok {
			g.HomeTeam = t
		}
		if t, ok := teams[g.AwayTeamID]; ok {
			g.AwayTeam = t
		}
		out = append(out, g)
	}
	return out
}
