package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/leaguerly/internal/domain/division"
	"github.com/riskibarqy/leaguerly/internal/domain/game"
	"github.com/riskibarqy/leaguerly/internal/domain/player"
	"github.com/riskibarqy/leaguerly/internal/domain/team"
	"github.com/riskibarqy/leaguerly/internal/platform/logging"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func countedGame(divisionID, home, away int64, homeGoals, awayGoals int) game.Game {
	g := game.Game{DivisionID: divisionID, HomeTeamID: home, AwayTeamID: away, IncludeInStandings: true}
	if homeGoals > 0 {
		g.Goals = append(g.Goals, game.Goal{Scorer: player.Player{TeamIDs: []int64{home}}, Count: homeGoals})
	}
	if awayGoals > 0 {
		g.Goals = append(g.Goals, game.Goal{Scorer: player.Player{TeamIDs: []int64{away}}, Count: awayGoals})
	}
	return g
}

func newStandingFixture() (*stubDivisionRepository, *stubGameRepository, *stubTeamRepository) {
	divisions := &stubDivisionRepository{items: []division.Division{
		{ID: 2, Name: "Second", Season: "2026"},
		{ID: 1, Name: "Premier", Season: "2026"},
	}}
	games := &stubGameRepository{byDivision: map[int64][]game.Game{
		1: {countedGame(1, 10, 20, 2, 1), countedGame(1, 20, 30, 0, 0)},
		2: {countedGame(2, 40, 50, 0, 3)},
	}}
	teams := &stubTeamRepository{items: []team.Team{
		{ID: 10, Name: "Harbour FC"},
		{ID: 20, Name: "Hill United"},
		{ID: 30, Name: "River Rovers"},
		{ID: 40, Name: "Valley Town"},
		{ID: 50, Name: "Coast City"},
	}}
	return divisions, games, teams
}

func TestStandingService_ListByDivision(t *testing.T) {
	t.Parallel()

	divisions, games, teams := newStandingFixture()
	recorder := &recordingStandingsRecorder{}
	service := NewStandingService(divisions, games, teams, recorder, 2)

	got, err := service.ListByDivision(context.Background(), 1)
	if err != nil {
		t.Fatalf("list standings: %v", err)
	}
	if got.Division.Name != "Premier" {
		t.Fatalf("unexpected division: %+v", got.Division)
	}
	if len(got.Rows) != 3 {
		t.Fatalf("unexpected row count: %d", len(got.Rows))
	}
	first := got.Rows[0]
	if first.Position != 1 || first.TeamID != 10 || first.Team.Name != "Harbour FC" || first.Points() != 3 {
		t.Fatalf("unexpected leader: %+v", first)
	}
	if len(recorder.divisions) != 1 || recorder.divisions[0] != 1 {
		t.Fatalf("expected one recorded computation for division 1, got %v", recorder.divisions)
	}
}

func TestStandingService_ListByDivision_Errors(t *testing.T) {
	t.Parallel()

	divisions, games, teams := newStandingFixture()
	service := NewStandingService(divisions, games, teams, nil, 0)

	if _, err := service.ListByDivision(context.Background(), 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := service.ListByDivision(context.Background(), 99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	boom := errors.New("db down")
	failing := NewStandingService(divisions, &stubGameRepository{err: boom}, teams, nil, 0)
	if _, err := failing.ListByDivision(context.Background(), 1); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped repository error, got %v", err)
	}
}

func TestStandingService_ListAll(t *testing.T) {
	t.Parallel()

	divisions, games, teams := newStandingFixture()
	recorder := &recordingStandingsRecorder{}
	service := NewStandingService(divisions, games, teams, recorder, 2)

	got, err := service.ListAll(context.Background())
	if err != nil {
		t.Fatalf("list all standings: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("unexpected table count: %d", len(got))
	}
	if got[0].Division.ID != 1 || got[1].Division.ID != 2 {
		t.Fatalf("tables must be ordered by division id: %d, %d", got[0].Division.ID, got[1].Division.ID)
	}
	if leader := got[1].Rows[0]; leader.TeamID != 50 || leader.Team.Name != "Coast City" {
		t.Fatalf("unexpected division 2 leader: %+v", leader)
	}
	if len(recorder.divisions) != 2 {
		t.Fatalf("expected two recorded computations, got %v", recorder.divisions)
	}
}

func TestStandingService_ListAll_PropagatesErrors(t *testing.T) {
	t.Parallel()

	divisions, _, teams := newStandingFixture()
	boom := errors.New("db down")
	service := NewStandingService(divisions, &stubGameRepository{err: boom}, teams, nil, 1)

	if _, err := service.ListAll(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped repository error, got %v", err)
	}
}

func TestStandingService_ListByDivision_LogsComputeTiming(t *testing.T) {
	t.Parallel()

	divisions, games, teams := newStandingFixture()
	core, logs := observer.New(logging.LevelDebug)
	service := NewStandingService(divisions, games, teams, nil, 1)
	service.logger = logging.FromZap(zap.New(core))

	if _, err := service.ListByDivision(context.Background(), 1); err != nil {
		t.Fatalf("list standings: %v", err)
	}

	entries := logs.FilterMessage("standings computed").All()
	if len(entries) != 1 {
		t.Fatalf("expected one timing entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["division_id"] != int64(1) || fields["games"] != int64(2) || fields["teams"] != int64(3) {
		t.Fatalf("unexpected timing fields: %+v", fields)
	}
	if _, ok := fields["elapsed"]; !ok {
		t.Fatalf("missing elapsed field: %+v", fields)
	}
}
