package standing

import (
	"reflect"
	"testing"

	"github.com/riskibarqy/leaguerly/internal/domain/game"
	"github.com/riskibarqy/leaguerly/internal/domain/player"
	"github.com/riskibarqy/leaguerly/internal/domain/team"
)

// played builds a counted game where each side scores through one of its own players.
func played(home, away int64, homeGoals, awayGoals int) game.Game {
	g := game.Game{HomeTeamID: home, AwayTeamID: away, IncludeInStandings: true}
	if homeGoals > 0 {
		g.Goals = append(g.Goals, game.Goal{Scorer: player.Player{ID: home * 100, TeamIDs: []int64{home}}, Count: homeGoals})
	}
	if awayGoals > 0 {
		g.Goals = append(g.Goals, game.Goal{Scorer: player.Player{ID: away * 100, TeamIDs: []int64{away}}, Count: awayGoals})
	}
	return g
}

func teamOrder(rows []Standing) []int64 {
	out := make([]int64, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.TeamID)
	}
	return out
}

func find(t *testing.T, rows []Standing, teamID int64) Standing {
	t.Helper()
	for _, row := range rows {
		if row.TeamID == teamID {
			return row
		}
	}
	t.Fatalf("team %d missing from table", teamID)
	return Standing{}
}

func TestCalculateHomeWin(t *testing.T) {
	t.Parallel()

	rows := Calculate([]game.Game{played(1, 2, 2, 1)})
	if got := teamOrder(rows); !reflect.DeepEqual(got, []int64{1, 2}) {
		t.Fatalf("unexpected order: %v", got)
	}

	home := find(t, rows, 1)
	if home.Wins != 1 || home.Losses != 0 || home.GoalsFor != 2 || home.GoalsAgainst != 1 || home.Points() != 3 {
		t.Fatalf("unexpected home standing: %+v points=%d", home, home.Points())
	}
	away := find(t, rows, 2)
	if away.Losses != 1 || away.Wins != 0 || away.Points() != 0 || away.GoalDifferential() != -1 {
		t.Fatalf("unexpected away standing: %+v points=%d", away, away.Points())
	}
}

func TestCalculateTieKeepsInputOrder(t *testing.T) {
	t.Parallel()

	rows := Calculate([]game.Game{played(1, 2, 1, 1)})
	if got := teamOrder(rows); !reflect.DeepEqual(got, []int64{1, 2}) {
		t.Fatalf("unexpected order: %v", got)
	}
	for _, row := range rows {
		if row.Ties != 1 || row.Points() != 1 || row.GamesPlayed != 1 {
			t.Fatalf("unexpected tie standing: %+v", row)
		}
	}
}

func TestCalculateForfeitCostsAPoint(t *testing.T) {
	t.Parallel()

	forfeiter := int64(1)
	g := played(1, 2, 3, 0)
	g.WasForfeited = true
	g.ForfeitingTeamID = &forfeiter

	rows := Calculate([]game.Game{g})
	a := find(t, rows, 1)
	if a.Forfeits != 1 {
		t.Fatalf("expected one forfeit, got %+v", a)
	}
	if a.Points() != 2 {
		t.Fatalf("expected win minus forfeit = 2 points, got %d", a.Points())
	}
	if b := find(t, rows, 2); b.Forfeits != 0 {
		t.Fatalf("opponent must not be charged the forfeit: %+v", b)
	}
}

func TestCalculateExcludedGameIsIgnored(t *testing.T) {
	t.Parallel()

	friendly := played(1, 2, 4, 0)
	friendly.IncludeInStandings = false

	rows := Calculate([]game.Game{friendly, played(2, 3, 1, 0)})
	a := find(t, rows, 1)
	if a != (Standing{TeamID: 1, Team: team.Team{ID: 1}}) {
		t.Fatalf("excluded game must leave team 1 at zero: %+v", a)
	}
	b := find(t, rows, 2)
	if b.GamesPlayed != 1 || b.GoalsFor != 1 || b.GoalsAgainst != 0 || b.Losses != 0 {
		t.Fatalf("excluded game leaked into team 2: %+v", b)
	}
}

func TestCalculateThreeWayTieUsesGoalDifferential(t *testing.T) {
	t.Parallel()

	// A cycle of results: each team wins once, loses once.
	games := []game.Game{
		played(1, 2, 1, 0),
		played(2, 3, 5, 0),
		played(3, 1, 1, 0),
	}

	rows := Calculate(games)
	for _, row := range rows {
		if row.Points() != 3 {
			t.Fatalf("expected all teams on 3 points, got %+v", row)
		}
	}
	if got := teamOrder(rows); !reflect.DeepEqual(got, []int64{2, 1, 3}) {
		t.Fatalf("unexpected order: %v", got)
	}
}

func TestCalculateThreeWayTieIgnoresMeetingsInsideGroup(t *testing.T) {
	t.Parallel()

	// Teams 1, 2 and 3 finish on 3 points. Team 1 beat team 2, but team 2
	// has the better season goal differential from its win over team 4.
	games := []game.Game{
		played(1, 2, 1, 0),
		played(2, 4, 9, 0),
		played(3, 4, 1, 0),
		played(4, 1, 1, 0),
		played(4, 3, 1, 0),
		played(4, 2, 1, 0),
	}

	rows := Calculate(games)
	for _, id := range []int64{1, 2, 3} {
		if got := find(t, rows, id).Points(); got != 3 {
			t.Fatalf("team %d: expected 3 points, got %d", id, got)
		}
	}
	if got := teamOrder(rows); !reflect.DeepEqual(got, []int64{4, 2, 1, 3}) {
		t.Fatalf("unexpected order: %v", got)
	}
}

func TestCalculateHeadToHeadBreaksPairTie(t *testing.T) {
	t.Parallel()

	games := []game.Game{
		played(1, 2, 1, 0),
		played(2, 3, 5, 0),
		played(1, 4, 0, 0),
		played(2, 4, 0, 0),
	}

	rows := Calculate(games)
	// Team 2 has the better season goal differential, team 1 won the meeting.
	if find(t, rows, 2).GoalDifferential() <= find(t, rows, 1).GoalDifferential() {
		t.Fatalf("fixture must give team 2 the better goal differential")
	}
	if got := teamOrder(rows); !reflect.DeepEqual(got, []int64{1, 2, 4, 3}) {
		t.Fatalf("unexpected order: %v", got)
	}

	// The pair order matches the last-resort order of the meeting alone.
	meeting := lastResort(aggregate([]game.Game{games[0]}))
	if got := teamOrder(meeting); !reflect.DeepEqual(got, teamOrder(rows[:2])) {
		t.Fatalf("pair order %v does not match head-to-head order %v", teamOrder(rows[:2]), got)
	}

	// Rows carry full-season statistics, not the head-to-head ones.
	if first := rows[0]; first.GamesPlayed != 2 || first.Points() != 4 {
		t.Fatalf("expected full-season row for team 1, got %+v", first)
	}
}

func TestCalculateHeadToHeadFallback(t *testing.T) {
	t.Parallel()

	excludedMeeting := played(1, 2, 1, 0)
	excludedMeeting.IncludeInStandings = false

	tests := []struct {
		name  string
		games []game.Game
	}{
		{
			name:  "never met",
			games: []game.Game{played(1, 3, 1, 0), played(2, 4, 3, 0)},
		},
		{
			name:  "meeting does not count",
			games: []game.Game{played(1, 3, 1, 0), played(2, 4, 3, 0), excludedMeeting},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rows := Calculate(tt.games)
			if got := teamOrder(rows); !reflect.DeepEqual(got, []int64{2, 1, 3, 4}) {
				t.Fatalf("unexpected order: %v", got)
			}
		})
	}
}

func TestCalculateEmpty(t *testing.T) {
	t.Parallel()

	if rows := Calculate(nil); len(rows) != 0 {
		t.Fatalf("expected empty table, got %v", rows)
	}
}

func TestCalculateProperties(t *testing.T) {
	t.Parallel()

	forfeiter := int64(6)
	forfeit := played(6, 1, 0, 2)
	forfeit.WasForfeited = true
	forfeit.ForfeitingTeamID = &forfeiter
	friendly := played(7, 1, 3, 3)
	friendly.IncludeInStandings = false

	games := []game.Game{
		played(1, 2, 2, 1),
		played(3, 4, 0, 0),
		played(5, 1, 1, 1),
		played(2, 3, 4, 2),
		played(4, 5, 1, 0),
		played(2, 5, 0, 3),
		forfeit,
		friendly,
	}
	snapshot := append([]game.Game(nil), games...)

	rows := Calculate(games)

	for i := 1; i < len(rows); i++ {
		if rows[i-1].Points() < rows[i].Points() {
			t.Fatalf("points not descending at %d: %v", i, rows)
		}
	}

	want := map[int64]bool{}
	for _, g := range games {
		want[g.HomeTeamID] = true
		want[g.AwayTeamID] = true
	}
	if len(rows) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(rows))
	}
	for _, row := range rows {
		if !want[row.TeamID] {
			t.Fatalf("unexpected team %d", row.TeamID)
		}
		delete(want, row.TeamID)
	}

	if again := Calculate(games); !reflect.DeepEqual(again, rows) {
		t.Fatalf("second run differs:\n%v\n%v", rows, again)
	}
	if !reflect.DeepEqual(games, snapshot) {
		t.Fatalf("input games were modified")
	}
	if seven := find(t, rows, 7); seven.GamesPlayed != 0 || seven.Points() != 0 {
		t.Fatalf("team with only an excluded game must have zero stats: %+v", seven)
	}
}

func TestCalculateCarriesTeamDisplay(t *testing.T) {
	t.Parallel()

	g := played(1, 2, 1, 0)
	g.HomeTeam = team.Team{ID: 1, Name: "Harbour FC"}
	g.AwayTeam = team.Team{ID: 2, Name: "Hill United"}

	rows := Calculate([]game.Game{g})
	if rows[0].Team.Name != "Harbour FC" || rows[1].Team.Name != "Hill United" {
		t.Fatalf("unexpected team display: %+v", rows)
	}
}

func TestRows(t *testing.T) {
	t.Parallel()

	rows := Rows(Calculate([]game.Game{played(1, 2, 0, 1)}))
	if len(rows) != 2 || rows[0].Position != 1 || rows[0].TeamID != 2 || rows[1].Position != 2 {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}
