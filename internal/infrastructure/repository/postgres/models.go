package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/leaguerly/internal/domain/game"
	"github.com/riskibarqy/leaguerly/internal/domain/team"
)

type divisionTableModel struct {
	ID        int64      `db:"id"`
	Name      string     `db:"name"`
	Season    string     `db:"season"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

// Write models hold the columns a repository sets on insert and update.
type divisionWriteModel struct {
	Name   string `db:"name"`
	Season string `db:"season"`
}

type teamTableModel struct {
	ID        int64      `db:"id"`
	Name      string     `db:"name"`
	Short     string     `db:"short"`
	ImageURL  string     `db:"image_url"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

type teamWriteModel struct {
	Name     string `db:"name"`
	Short    string `db:"short"`
	ImageURL string `db:"image_url"`
}

type locationTableModel struct {
	ID        int64      `db:"id"`
	Name      string     `db:"name"`
	Address   string     `db:"address"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

type locationWriteModel struct {
	Name    string `db:"name"`
	Address string `db:"address"`
}

type playerTableModel struct {
	ID        int64      `db:"id"`
	Name      string     `db:"name"`
	Number    int        `db:"number"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

type playerWriteModel struct {
	Name   string `db:"name"`
	Number int    `db:"number"`
}

type playerTeamTableModel struct {
	PlayerID int64 `db:"player_id"`
	TeamID   int64 `db:"team_id"`
}

type gameTableModel struct {
	ID                 int64         `db:"id"`
	DivisionID         int64         `db:"division_id"`
	LocationID         int64         `db:"location_id"`
	HomeTeamID         int64         `db:"home_team_id"`
	AwayTeamID         int64         `db:"away_team_id"`
	GameDate           time.Time     `db:"game_date"`
	WasForfeited       bool          `db:"was_forfeited"`
	ForfeitingTeamID   sql.NullInt64 `db:"forfeiting_team_id"`
	IncludeInStandings bool          `db:"include_in_standings"`
	CreatedAt          time.Time     `db:"created_at"`
	UpdatedAt          time.Time     `db:"updated_at"`
	DeletedAt          *time.Time    `db:"deleted_at"`
}

type gameWriteModel struct {
	DivisionID         int64         `db:"division_id"`
	LocationID         int64         `db:"location_id"`
	HomeTeamID         int64         `db:"home_team_id"`
	AwayTeamID         int64         `db:"away_team_id"`
	GameDate           time.Time     `db:"game_date"`
	WasForfeited       bool          `db:"was_forfeited"`
	ForfeitingTeamID   sql.NullInt64 `db:"forfeiting_team_id"`
	IncludeInStandings bool          `db:"include_in_standings"`
}

type goalWriteModel struct {
	GameID   int64 `db:"game_id"`
	PlayerID int64 `db:"player_id"`
	Count    int   `db:"goal_count"`
}

type bookingWriteModel struct {
	GameID   int64  `db:"game_id"`
	PlayerID int64  `db:"player_id"`
	Card     string `db:"card"`
	Minute   int    `db:"minute"`
}

type goalTableModel struct {
	ID       int64 `db:"id"`
	GameID   int64 `db:"game_id"`
	PlayerID int64 `db:"player_id"`
	Count    int   `db:"goal_count"`
}

type bookingTableModel struct {
	ID       int64  `db:"id"`
	GameID   int64  `db:"game_id"`
	PlayerID int64  `db:"player_id"`
	Card     string `db:"card"`
	Minute   int    `db:"minute"`
}

func teamWriteModelFrom(item team.Team) teamWriteModel {
	return teamWriteModel{Name: item.Name, Short: item.Short, ImageURL: item.ImageURL}
}

func gameWriteModelFrom(item game.Game) gameWriteModel {
	return gameWriteModel{
		DivisionID:         item.DivisionID,
		LocationID:         item.LocationID,
		HomeTeamID:         item.HomeTeamID,
		AwayTeamID:         item.AwayTeamID,
		GameDate:           item.Date.UTC(),
		WasForfeited:       item.WasForfeited,
		ForfeitingTeamID:   nullInt64(item.ForfeitingTeamID),
		IncludeInStandings: item.IncludeInStandings,
	}
}
