package memory

import (
	"time"

	"github.com/riskibarqy/leaguerly/internal/domain/division"
	"github.com/riskibarqy/leaguerly/internal/domain/game"
	"github.com/riskibarqy/leaguerly/internal/domain/location"
	"github.com/riskibarqy/leaguerly/internal/domain/player"
	"github.com/riskibarqy/leaguerly/internal/domain/team"
)

const (
	DivisionIDPremier = int64(1)
	DivisionIDFirst   = int64(2)
)

func SeedDivisions() []division.Division {
	return []division.Division{
		{ID: DivisionIDPremier, Name: "Premier Division", Season: "2026 Spring"},
		{ID: DivisionIDFirst, Name: "First Division", Season: "2026 Spring"},
	}
}

func SeedLocations() []location.Location {
	return []location.Location{
		{ID: 1, Name: "Riverside Fields", Address: "12 River Rd"},
		{ID: 2, Name: "Northgate Park", Address: "400 Northgate Ave"},
	}
}

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: 1, Name: "Harbour FC", Short: "HFC"},
		{ID: 2, Name: "Hill United", Short: "HIL"},
		{ID: 3, Name: "River Rovers", Short: "RIV"},
		{ID: 4, Name: "Valley Town", Short: "VAL"},
		{ID: 5, Name: "Coast City", Short: "CST"},
		{ID: 6, Name: "Forest Athletic", Short: "FOR"},
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: 1, Name: "Alex Moreno", Number: 9, TeamIDs: []int64{1}},
		{ID: 2, Name: "Jordan Pike", Number: 10, TeamIDs: []int64{1}},
		{ID: 3, Name: "Casey Lund", Number: 7, TeamIDs: []int64{2}},
		{ID: 4, Name: "Riley Osei", Number: 11, TeamIDs: []int64{2, 3}},
		{ID: 5, Name: "Morgan Hale", Number: 8, TeamIDs: []int64{3}},
		{ID: 6, Name: "Taylor Brandt", Number: 4, TeamIDs: []int64{4}},
		{ID: 7, Name: "Sam Okafor", Number: 9, TeamIDs: []int64{5}},
		{ID: 8, Name: "Jamie Kerr", Number: 14, TeamIDs: []int64{6}},
	}
}

func SeedGames() []game.Game {
	forfeitingTeam := int64(4)

	return []game.Game{
		{
			ID: 1, DivisionID: DivisionIDPremier, LocationID: 1,
			Date:       time.Date(2026, 3, 7, 10, 0, 0, 0, time.UTC),
			HomeTeamID: 1, AwayTeamID: 2, IncludeInStandings: true,
			Goals: []game.Goal{
				{ID: 1, GameID: 1, PlayerID: 1, Count: 2},
				{ID: 2, GameID: 1, PlayerID: 3, Count: 1},
			},
			Bookings: []game.Booking{
				{ID: 3, GameID: 1, PlayerID: 3, Card: game.CardYellow, Minute: 41},
			},
		},
		{
			ID: 2, DivisionID: DivisionIDPremier, LocationID: 2,
			Date:       time.Date(2026, 3, 7, 12, 0, 0, 0, time.UTC),
			HomeTeamID: 3, AwayTeamID: 4, IncludeInStandings: true,
			Goals: []game.Goal{
				{ID: 4, GameID: 2, PlayerID: 5, Count: 1},
				{ID: 5, GameID: 2, PlayerID: 6, Count: 1},
			},
		},
		{
			ID: 3, DivisionID: DivisionIDPremier, LocationID: 1,
			Date:       time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
			HomeTeamID: 2, AwayTeamID: 3, IncludeInStandings: true,
			Goals: []game.Goal{
				{ID: 6, GameID: 3, PlayerID: 4, Count: 1},
			},
		},
		{
			ID: 4, DivisionID: DivisionIDPremier, LocationID: 2,
			Date:       time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
			HomeTeamID: 4, AwayTeamID: 1, IncludeInStandings: true,
			WasForfeited: true, ForfeitingTeamID: &forfeitingTeam,
			Goals: []game.Goal{
				{ID: 7, GameID: 4, PlayerID: 2, Count: 3},
			},
		},
		{
			ID: 5, DivisionID: DivisionIDPremier, LocationID: 1,
			Date:       time.Date(2026, 3, 21, 18, 0, 0, 0, time.UTC),
			HomeTeamID: 1, AwayTeamID: 3, IncludeInStandings: false,
			Goals: []game.Goal{
				{ID: 8, GameID: 5, PlayerID: 5, Count: 4},
			},
		},
		{
			ID: 6, DivisionID: DivisionIDFirst, LocationID: 2,
			Date:       time.Date(2026, 3, 8, 10, 0, 0, 0, time.UTC),
			HomeTeamID: 5, AwayTeamID: 6, IncludeInStandings: true,
			Goals: []game.Goal{
				{ID: 9, GameID: 6, PlayerID: 7, Count: 2},
				{ID: 10, GameID: 6, PlayerID: 8, Count: 2},
			},
		},
	}
}
