package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/leaguerly/internal/domain/team"
)

type TeamService struct {
	teamRepo team.Repository
}

func NewTeamService(teamRepo team.Repository) *TeamService {
	return &TeamService{teamRepo: teamRepo}
}

func (s *TeamService) List(ctx context.Context) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.List")
	defer span.End()

	items, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	return items, nil
}

func (s *TeamService) Get(ctx context.Context, teamID int64) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Get")
	defer span.End()

	if teamID <= 0 {
		return team.Team{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	item, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%d", ErrNotFound, teamID)
	}

	return item, nil
}

func (s *TeamService) Create(ctx context.Context, item team.Team) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Create")
	defer span.End()

	item = normalizeTeam(item)
	if err := item.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.teamRepo.Create(ctx, item)
	if err != nil {
		return team.Team{}, fmt.Errorf("create team: %w", err)
	}

	return created, nil
}

func (s *TeamService) Update(ctx context.Context, item team.Team) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Update")
	defer span.End()

	if _, err := s.Get(ctx, item.ID); err != nil {
		return team.Team{}, err
	}

	item = normalizeTeam(item)
	if err := item.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.teamRepo.Update(ctx, item); err != nil {
		return team.Team{}, fmt.Errorf("update team: %w", err)
	}

	return item, nil
}

func (s *TeamService) Delete(ctx context.Context, teamID int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Delete")
	defer span.End()

	if _, err := s.Get(ctx, teamID); err != nil {
		return err
	}
	if err := s.teamRepo.Delete(ctx, teamID); err != nil {
		return fmt.Errorf("delete team: %w", err)
	}

	return nil
}

func normalizeTeam(item team.Team) team.Team {
	item.Name = strings.TrimSpace(item.Name)
	item.Short = strings.ToUpper(strings.TrimSpace(item.Short))
	item.ImageURL = strings.TrimSpace(item.ImageURL)
	return item
}
