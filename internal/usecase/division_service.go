package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/leaguerly/internal/domain/division"
)

type DivisionService struct {
	divisionRepo division.Repository
}

func NewDivisionService(divisionRepo division.Repository) *DivisionService {
	return &DivisionService{divisionRepo: divisionRepo}
}

func (s *DivisionService) List(ctx context.Context) ([]division.Division, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DivisionService.List")
	defer span.End()

	items, err := s.divisionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list divisions: %w", err)
	}

	return items, nil
}

func (s *DivisionService) Get(ctx context.Context, divisionID int64) (division.Division, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DivisionService.Get")
	defer span.End()

	if divisionID <= 0 {
		return division.Division{}, fmt.Errorf("%w: division id is required", ErrInvalidInput)
	}

	item, exists, err := s.divisionRepo.GetByID(ctx, divisionID)
	if err != nil {
		return division.Division{}, fmt.Errorf("get division: %w", err)
	}
	if !exists {
		return division.Division{}, fmt.Errorf("%w: division=%d", ErrNotFound, divisionID)
	}

	return item, nil
}

func (s *DivisionService) Create(ctx context.Context, item division.Division) (division.Division, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DivisionService.Create")
	defer span.End()

	item.Name = strings.TrimSpace(item.Name)
	item.Season = strings.TrimSpace(item.Season)
	if err := item.Validate(); err != nil {
		return division.Division{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.divisionRepo.Create(ctx, item)
	if err != nil {
		return division.Division{}, fmt.Errorf("create division: %w", err)
	}

	return created, nil
}

func (s *DivisionService) Update(ctx context.Context, item division.Division) (division.Division, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DivisionService.Update")
	defer span.End()

	if _, err := s.Get(ctx, item.ID); err != nil {
		return division.Division{}, err
	}

	item.Name = strings.TrimSpace(item.Name)
	item.Season = strings.TrimSpace(item.Season)
	if err := item.Validate(); err != nil {
		return division.Division{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.divisionRepo.Update(ctx, item); err != nil {
		return division.Division{}, fmt.Errorf("update division: %w", err)
	}

	return item, nil
}

func (s *DivisionService) Delete(ctx context.Context, divisionID int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.DivisionService.Delete")
	defer span.End()

	if _, err := s.Get(ctx, divisionID); err != nil {
		return err
	}
	if err := s.divisionRepo.Delete(ctx, divisionID); err != nil {
		return fmt.Errorf("delete division: %w", err)
	}

	return nil
}
