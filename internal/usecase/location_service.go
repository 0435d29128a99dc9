package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/leaguerly/internal/domain/location"
)

type LocationService struct {
	locationRepo location.Repository
}

func NewLocationService(locationRepo location.Repository) *LocationService {
	return &LocationService{locationRepo: locationRepo}
}

func (s *LocationService) List(ctx context.Context) ([]location.Location, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LocationService.List")
	defer span.End()

	items, err := s.locationRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}

	return items, nil
}

func (s *LocationService) Get(ctx context.Context, locationID int64) (location.Location, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LocationService.Get")
	defer span.End()

	if locationID <= 0 {
		return location.Location{}, fmt.Errorf("%w: location id is required", ErrInvalidInput)
	}

	item, exists, err := s.locationRepo.GetByID(ctx, locationID)
	if err != nil {
		return location.Location{}, fmt.Errorf("get location: %w", err)
	}
	if !exists {
		return location.Location{}, fmt.Errorf("%w: location=%d", ErrNotFound, locationID)
	}

	return item, nil
}

func (s *LocationService) Create(ctx context.Context, item location.Location) (location.Location, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LocationService.Create")
	defer span.End()

	item.Name = strings.TrimSpace(item.Name)
	item.Address = strings.TrimSpace(item.Address)
	if err := item.Validate(); err != nil {
		return location.Location{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.locationRepo.Create(ctx, item)
	if err != nil {
		return location.Location{}, fmt.Errorf("create location: %w", err)
	}

	return created, nil
}

func (s *LocationService) Update(ctx context.Context, item location.Location) (location.Location, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LocationService.Update")
	defer span.End()

	if _, err := s.Get(ctx, item.ID); err != nil {
		return location.Location{}, err
	}

	item.Name = strings.TrimSpace(item.Name)
	item.Address = strings.TrimSpace(item.Address)
	if err := item.Validate(); err != nil {
		return location.Location{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.locationRepo.Update(ctx, item); err != nil {
		return location.Location{}, fmt.Errorf("update location: %w", err)
	}

	return item, nil
}

func (s *LocationService) Delete(ctx context.Context, locationID int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.LocationService.Delete")
	defer span.End()

	if _, err := s.Get(ctx, locationID); err != nil {
		return err
	}
	if err := s.locationRepo.Delete(ctx, locationID); err != nil {
		return fmt.Errorf("delete location: %w", err)
	}

	return nil
}
