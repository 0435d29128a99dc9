package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/riskibarqy/leaguerly/internal/domain/division"
	"github.com/riskibarqy/leaguerly/internal/domain/game"
	"github.com/riskibarqy/leaguerly/internal/domain/team"
)

type stubDivisionRepository struct {
	division.Repository
	items []division.Division
	err   error
}

func (s *stubDivisionRepository) List(context.Context) ([]division.Division, error) {
	return s.items, s.err
}

func (s *stubDivisionRepository) GetByID(_ context.Context, divisionID int64) (division.Division, bool, error) {
	if s.err != nil {
		return division.Division{}, false, s.err
	}
	for _, item := range s.items {
		if item.ID == divisionID {
			return item, true, nil
		}
	}
	return division.Division{}, false, nil
}

type stubGameRepository struct {
	game.Repository
	byDivision map[int64][]game.Game
	err        error
}

func (s *stubGameRepository) ListByDivision(_ context.Context, divisionID int64) ([]game.Game, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.byDivision[divisionID], nil
}

type stubTeamRepository struct {
	team.Repository
	items []team.Team
}

func (s *stubTeamRepository) List(context.Context) ([]team.Team, error) {
	return s.items, nil
}

type recordingStandingsRecorder struct {
	mu        sync.Mutex
	divisions []int64
}

func (r *recordingStandingsRecorder) ObserveStandings(divisionID int64, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.divisions = append(r.divisions, divisionID)
}
