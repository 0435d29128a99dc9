package httpapi

import (
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/leaguerly/internal/domain/division"
	"github.com/riskibarqy/leaguerly/internal/domain/game"
	"github.com/riskibarqy/leaguerly/internal/domain/location"
	"github.com/riskibarqy/leaguerly/internal/domain/player"
	"github.com/riskibarqy/leaguerly/internal/domain/standing"
	"github.com/riskibarqy/leaguerly/internal/domain/team"
	"github.com/riskibarqy/leaguerly/internal/usecase"
)

type divisionRequest struct {
	Name   string `json:"name" validate:"required,max=100"`
	Season string `json:"season" validate:"required,max=50"`
}

type teamRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Short    string `json:"short" validate:"max=5"`
	ImageURL string `json:"imageUrl" validate:"omitempty,url"`
}

type locationRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Address string `json:"address" validate:"max=200"`
}

type playerRequest struct {
	Name    string  `json:"name" validate:"required,max=100"`
	Number  int     `json:"number" validate:"min=0,max=99"`
	TeamIDs []int64 `json:"teamIds" validate:"required,min=1,dive,gt=0"`
}

type gameRequest struct {
	Date               string           `json:"date" validate:"required"`
	DivisionID         int64            `json:"divisionId" validate:"gt=0"`
	LocationID         int64            `json:"locationId" validate:"gt=0"`
	HomeTeamID         int64            `json:"homeTeamId" validate:"gt=0"`
	AwayTeamID         int64            `json:"awayTeamId" validate:"gt=0,nefield=HomeTeamID"`
	WasForfeited       bool             `json:"wasForfeited"`
	ForfeitingTeamID   *int64           `json:"forfeitingTeamId" validate:"required_if=WasForfeited true,omitempty,gt=0"`
	IncludeInStandings *bool            `json:"includeInStandings"`
	Goals              []goalRequest    `json:"goals" validate:"dive"`
	Bookings           []bookingRequest `json:"bookings" validate:"dive"`
}

type goalRequest struct {
	PlayerID int64 `json:"playerId" validate:"gt=0"`
	Count    int   `json:"count" validate:"gt=0"`
}

type bookingRequest struct {
	PlayerID int64  `json:"playerId" validate:"gt=0"`
	Card     string `json:"card" validate:"required,oneof=YELLOW RED"`
	Minute   int    `json:"minute" validate:"min=0,max=150"`
}

func (req gameRequest) toGame(id int64) (game.Game, error) {
	date, err := time.Parse(time.RFC3339, strings.TrimSpace(req.Date))
	if err != nil {
		return game.Game{}, fmt.Errorf("%w: date must be RFC3339", usecase.ErrInvalidInput)
	}

	include := true
	if req.IncludeInStandings != nil {
		include = *req.IncludeInStandings
	}

	item := game.Game{
		ID:                 id,
		Date:               date.UTC(),
		DivisionID:         req.DivisionID,
		LocationID:         req.LocationID,
		HomeTeamID:         req.HomeTeamID,
		AwayTeamID:         req.AwayTeamID,
		WasForfeited:       req.WasForfeited,
		IncludeInStandings: include,
	}
	if req.WasForfeited && req.ForfeitingTeamID != nil {
		forfeiting := *req.ForfeitingTeamID
		item.ForfeitingTeamID = &forfeiting
	}
	for _, g := range req.Goals {
		item.Goals = append(item.Goals, game.Goal{PlayerID: g.PlayerID, Count: g.Count})
	}
	for _, b := range req.Bookings {
		item.Bookings = append(item.Bookings, game.Booking{PlayerID: b.PlayerID, Card: game.Card(b.Card), Minute: b.Minute})
	}
	return item, nil
}

type divisionDTO struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Season string `json:"season"`
}

type teamDTO struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Short    string `json:"short"`
	ImageURL string `json:"imageUrl,omitempty"`
}

type locationDTO struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

type playerDTO struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Number  int     `json:"number"`
	TeamIDs []int64 `json:"teamIds"`
}

type gameDTO struct {
	ID                 int64        `json:"id"`
	Date               string       `json:"date"`
	DivisionID         int64        `json:"divisionId"`
	LocationID         int64        `json:"locationId"`
	HomeTeam           teamDTO      `json:"homeTeam"`
	AwayTeam           teamDTO      `json:"awayTeam"`
	Score              scoreDTO     `json:"score"`
	WasForfeited       bool         `json:"wasForfeited"`
	ForfeitingTeamID   *int64       `json:"forfeitingTeamId,omitempty"`
	IncludeInStandings bool         `json:"includeInStandings"`
	Goals              []goalDTO    `json:"goals"`
	Bookings           []bookingDTO `json:"bookings"`
}

type scoreDTO struct {
	Home     int    `json:"home"`
	Away     int    `json:"away"`
	WinnerID *int64 `json:"winnerTeamId,omitempty"`
}

type goalDTO struct {
	ID         int64  `json:"id"`
	PlayerID   int64  `json:"playerId"`
	PlayerName string `json:"playerName"`
	Count      int    `json:"count"`
}

type bookingDTO struct {
	ID       int64  `json:"id"`
	PlayerID int64  `json:"playerId"`
	Card     string `json:"card"`
	Minute   int    `json:"minute"`
}

type standingRowDTO struct {
	Position         int     `json:"position"`
	Team             teamDTO `json:"team"`
	GamesPlayed      int     `json:"gamesPlayed"`
	Wins             int     `json:"wins"`
	Losses           int     `json:"losses"`
	Ties             int     `json:"ties"`
	Forfeits         int     `json:"forfeits"`
	GoalsFor         int     `json:"goalsFor"`
	GoalsAgainst     int     `json:"goalsAgainst"`
	GoalDifferential int     `json:"goalDifferential"`
	Points           int     `json:"points"`
}

type divisionStandingsDTO struct {
	Division divisionDTO      `json:"division"`
	Rows     []standingRowDTO `json:"rows"`
}

func divisionToDTO(v division.Division) divisionDTO {
	return divisionDTO{ID: v.ID, Name: v.Name, Season: v.Season}
}

func teamToDTO(v team.Team) teamDTO {
	return teamDTO{ID: v.ID, Name: v.Name, Short: v.Short, ImageURL: v.ImageURL}
}

func locationToDTO(v location.Location) locationDTO {
	return locationDTO{ID: v.ID, Name: v.Name, Address: v.Address}
}

func playerToDTO(v player.Player) playerDTO {
	teamIDs := append([]int64{}, v.TeamIDs...)
	return playerDTO{ID: v.ID, Name: v.Name, Number: v.Number, TeamIDs: teamIDs}
}

func gameToDTO(v game.Game) gameDTO {
	score := game.CalculateScore(v)
	out := gameDTO{
		ID:                 v.ID,
		Date:               v.Date.UTC().Format(time.RFC3339),
		DivisionID:         v.DivisionID,
		LocationID:         v.LocationID,
		HomeTeam:           teamToDTO(v.HomeTeam),
		AwayTeam:           teamToDTO(v.AwayTeam),
		Score:              scoreDTO{Home: score.HomeTeamScore, Away: score.AwayTeamScore},
		WasForfeited:       v.WasForfeited,
		ForfeitingTeamID:   v.ForfeitingTeamID,
		IncludeInStandings: v.IncludeInStandings,
		Goals:              make([]goalDTO, 0, len(v.Goals)),
		Bookings:           make([]bookingDTO, 0, len(v.Bookings)),
	}
	out.HomeTeam.ID = v.HomeTeamID
	out.AwayTeam.ID = v.AwayTeamID
	if winner, ok := score.WinningTeamID(); ok {
		out.Score.WinnerID = &winner
	}
	for _, g := range v.Goals {
		out.Goals = append(out.Goals, goalDTO{ID: g.ID, PlayerID: g.PlayerID, PlayerName: g.Scorer.Name, Count: g.Count})
	}
	for _, b := range v.Bookings {
		out.Bookings = append(out.Bookings, bookingDTO{ID: b.ID, PlayerID: b.PlayerID, Card: string(b.Card), Minute: b.Minute})
	}
	return out
}

func standingRowsToDTO(rows []standing.Row) []standingRowDTO {
	out := make([]standingRowDTO, 0, len(rows))
	for _, row := range rows {
		t := teamToDTO(row.Team)
		t.ID = row.TeamID
		out = append(out, standingRowDTO{
			Position:         row.Position,
			Team:             t,
			GamesPlayed:      row.GamesPlayed,
			Wins:             row.Wins,
			Losses:           row.Losses,
			Ties:             row.Ties,
			Forfeits:         row.Forfeits,
			GoalsFor:         row.GoalsFor,
			GoalsAgainst:     row.GoalsAgainst,
			GoalDifferential: row.GoalDifferential(),
			Points:           row.Points(),
		})
	}
	return out
}

func divisionStandingsToDTO(v usecase.DivisionStandings) divisionStandingsDTO {
	return divisionStandingsDTO{
		Division: divisionToDTO(v.Division),
		Rows:     standingRowsToDTO(v.Rows),
	}
}
