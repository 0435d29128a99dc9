package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/leaguerly/internal/domain/division"
	"github.com/riskibarqy/leaguerly/internal/domain/game"
	"github.com/riskibarqy/leaguerly/internal/domain/standing"
	"github.com/riskibarqy/leaguerly/internal/domain/team"
	"github.com/riskibarqy/leaguerly/internal/platform/logging"
	"github.com/sourcegraph/conc/pool"
)

const defaultStandingsWorkers = 4

// StandingsRecorder receives the duration of each table computation.
type StandingsRecorder interface {
	ObserveStandings(divisionID int64, elapsed time.Duration)
}

type DivisionStandings struct {
	Division division.Division
	Rows     []standing.Row
}

type StandingService struct {
	divisionRepo division.Repository
	gameRepo     game.Repository
	teamRepo     team.Repository
	recorder     StandingsRecorder
	workers      int
	logger       *logging.Logger
}

func NewStandingService(
	divisionRepo division.Repository,
	gameRepo game.Repository,
	teamRepo team.Repository,
	recorder StandingsRecorder,
	workers int,
) *StandingService {
	if workers <= 0 {
		workers = defaultStandingsWorkers
	}

	return &StandingService{
		divisionRepo: divisionRepo,
		gameRepo:     gameRepo,
		teamRepo:     teamRepo,
		recorder:     recorder,
		workers:      workers,
		logger:       logging.Default(),
	}
}

// ListByDivision computes the current table of one division.
func (s *StandingService) ListByDivision(ctx context.Context, divisionID int64) (_ DivisionStandings, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.ListByDivision", divisionAttr(divisionID))
	defer func() { endUsecaseSpan(span, err) }()

	if divisionID <= 0 {
		return DivisionStandings{}, fmt.Errorf("%w: division id is required", ErrInvalidInput)
	}

	var (
		item   division.Division
		exists bool
		games  []game.Game
		teams  map[int64]team.Team
	)

	loaders := pool.New().WithContext(ctx).WithCancelOnError()
	loaders.Go(func(ctx context.Context) error {
		var err error
		item, exists, err = s.divisionRepo.GetByID(ctx, divisionID)
		if err != nil {
			return fmt.Errorf("get division: %w", err)
		}
		return nil
	})
	loaders.Go(func(ctx context.Context) error {
		var err error
		games, err = s.gameRepo.ListByDivision(ctx, divisionID)
		if err != nil {
			return fmt.Errorf("list games by division: %w", err)
		}
		return nil
	})
	loaders.Go(func(ctx context.Context) error {
		var err error
		teams, err = loadTeams(ctx, s.teamRepo)
		return err
	})
	if err := loaders.Wait(); err != nil {
		return DivisionStandings{}, err
	}
	if !exists {
		return DivisionStandings{}, fmt.Errorf("%w: division=%d", ErrNotFound, divisionID)
	}

	return DivisionStandings{
		Division: item,
		Rows:     s.calculate(ctx, divisionID, attachTeams(games, teams)),
	}, nil
}

// ListAll computes every division's table, ordered by division id.
func (s *StandingService) ListAll(ctx context.Context) (_ []DivisionStandings, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.ListAll")
	defer func() { endUsecaseSpan(span, err) }()

	divisions, err := s.divisionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list divisions: %w", err)
	}
	if len(divisions) == 0 {
		return []DivisionStandings{}, nil
	}

	teams, err := loadTeams(ctx, s.teamRepo)
	if err != nil {
		return nil, err
	}

	workerPool, err := ants.NewPool(s.workers)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer workerPool.Release()

	type tableResult struct {
		table DivisionStandings
		err   error
	}
	results := make(chan tableResult, len(divisions))

	var workers sync.WaitGroup
	for _, item := range divisions {
		item := item
		workers.Add(1)
		if err := workerPool.Submit(func() {
			defer workers.Done()

			games, err := s.gameRepo.ListByDivision(ctx, item.ID)
			if err != nil {
				results <- tableResult{err: fmt.Errorf("list games by division %d: %w", item.ID, err)}
				return
			}
			results <- tableResult{table: DivisionStandings{
				Division: item,
				Rows:     s.calculate(ctx, item.ID, attachTeams(games, teams)),
			}}
		}); err != nil {
			workers.Done()
			return nil, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(results)

	out := make([]DivisionStandings, 0, len(divisions))
	for row := range results {
		if row.err != nil {
			return nil, row.err
		}
		out = append(out, row.table)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Division.ID < out[j].Division.ID
	})

	return out, nil
}

func (s *StandingService) calculate(ctx context.Context, divisionID int64, games []game.Game) []standing.Row {
	start := time.Now()
	rows := standing.Rows(standing.Calculate(games))
	elapsed := time.Since(start)
	if s.recorder != nil {
		s.recorder.ObserveStandings(divisionID, elapsed)
	}
	s.logger.DebugContext(ctx, "standings computed",
		"division_id", divisionID,
		"games", len(games),
		"teams", len(rows),
		"elapsed", elapsed,
	)
	return rows
}
