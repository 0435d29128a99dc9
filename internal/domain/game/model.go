package game

import (
	"fmt"
	"time"

	"github.com/riskibarqy/leaguerly/internal/domain/player"
	"github.com/riskibarqy/leaguerly/internal/domain/team"
)

type Card string

const (
	CardYellow Card = "YELLOW"
	CardRed    Card = "RED"
)

// Game is one scheduled fixture between two teams inside a division.
type Game struct {
	ID                 int64
	Date               time.Time
	DivisionID         int64
	LocationID         int64
	HomeTeamID         int64
	AwayTeamID         int64
	HomeTeam           team.Team
	AwayTeam           team.Team
	WasForfeited       bool
	ForfeitingTeamID   *int64
	IncludeInStandings bool
	Goals              []Goal
	Bookings           []Booking
}

// Goal is a tally of goals scored by one player in a game.
type Goal struct {
	ID       int64
	GameID   int64
	PlayerID int64
	Scorer   player.Player
	Count    int
}

// Booking is a disciplinary card shown to a player.
type Booking struct {
	ID       int64
	GameID   int64
	PlayerID int64
	Card     Card
	Minute   int
}

// Filter narrows game listings. Zero values mean no filtering.
type Filter struct {
	DivisionID int64
}

func (g Game) Validate() error {
	if g.DivisionID <= 0 {
		return fmt.Errorf("game division id is required")
	}
	if g.LocationID <= 0 {
		return fmt.Errorf("game location id is required")
	}
	if g.HomeTeamID <= 0 || g.AwayTeamID <= 0 {
		return fmt.Errorf("game home and away team ids are required")
	}
	if g.HomeTeamID == g.AwayTeamID {
		return fmt.Errorf("game home and away team must differ")
	}
	if g.Date.IsZero() {
		return fmt.Errorf("game date is required")
	}
	if g.WasForfeited && g.ForfeitingTeamID == nil {
		return fmt.Errorf("forfeited game requires a forfeiting team id")
	}
	if g.ForfeitingTeamID != nil && !g.Involves(*g.ForfeitingTeamID) {
		return fmt.Errorf("forfeiting team %d did not play in this game", *g.ForfeitingTeamID)
	}
	for _, goal := range g.Goals {
		if goal.PlayerID <= 0 {
			return fmt.Errorf("goal player id is required")
		}
		if goal.Count <= 0 {
			return fmt.Errorf("goal count must be greater than zero")
		}
	}
	for _, booking := range g.Bookings {
		if booking.PlayerID <= 0 {
			return fmt.Errorf("booking player id is required")
		}
		if booking.Card != CardYellow && booking.Card != CardRed {
			return fmt.Errorf("invalid booking card: %s", booking.Card)
		}
		if booking.Minute < 0 {
			return fmt.Errorf("booking minute cannot be negative")
		}
	}

	return nil
}

// Involves reports whether teamID played as home or away side.
func (g Game) Involves(teamID int64) bool {
	return g.HomeTeamID == teamID || g.AwayTeamID == teamID
}

// ForfeitedBy reports whether teamID forfeited this game.
func (g Game) ForfeitedBy(teamID int64) bool {
	return g.WasForfeited && g.ForfeitingTeamID != nil && *g.ForfeitingTeamID == teamID
}

func (g Game) HomeTeamScore() int {
	return CalculateScore(g).HomeTeamScore
}

func (g Game) AwayTeamScore() int {
	return CalculateScore(g).AwayTeamScore
}
