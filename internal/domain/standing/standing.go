package standing

import (
	"sort"

	"github.com/riskibarqy/leaguerly/internal/domain/game"
	"github.com/riskibarqy/leaguerly/internal/domain/team"
)

// Standing is a team's aggregate record over a set of games.
type Standing struct {
	TeamID       int64
	Team         team.Team
	GamesPlayed  int
	Wins         int
	Losses       int
	Ties         int
	Forfeits     int
	GoalsFor     int
	GoalsAgainst int
}

func (s Standing) Points() int {
	return 3*s.Wins + s.Ties - s.Forfeits
}

func (s Standing) GoalDifferential() int {
	return s.GoalsFor - s.GoalsAgainst
}

// Calculate builds the league table for games, ordered best to worst.
// Every team appearing in games gets a row, even when none of its games
// count toward standings.
func Calculate(games []game.Game) []Standing {
	return sortTable(aggregate(games), games)
}

func aggregate(games []game.Game) []Standing {
	teams := participants(games)
	out := make([]Standing, 0, len(teams))
	for _, t := range teams {
		row := Standing{TeamID: t.ID, Team: t}
		for _, g := range games {
			if !g.IncludeInStandings || !g.Involves(t.ID) {
				continue
			}

			score := game.CalculateScore(g)
			row.GamesPlayed++
			if winner, ok := score.WinningTeamID(); ok && winner == t.ID {
				row.Wins++
			}
			if loser, ok := score.LosingTeamID(); ok && loser == t.ID {
				row.Losses++
			}
			if score.IsTie() {
				row.Ties++
			}
			if g.ForfeitedBy(t.ID) {
				row.Forfeits++
			}
			row.GoalsFor += score.GoalsFor(t.ID)
			row.GoalsAgainst += score.GoalsAgainst(t.ID)
		}
		out = append(out, row)
	}

	return out
}

// participants returns distinct teams by id: home sides in game order first,
// then away sides not seen yet.
func participants(games []game.Game) []team.Team {
	seen := make(map[int64]struct{}, len(games))
	out := make([]team.Team, 0, len(games))
	add := func(id int64, display team.Team) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		display.ID = id
		out = append(out, display)
	}

	for _, g := range games {
		add(g.HomeTeamID, g.HomeTeam)
	}
	for _, g := range games {
		add(g.AwayTeamID, g.AwayTeam)
	}

	return out
}

func sortTable(standings []Standing, games []game.Game) []Standing {
	byPoints := append([]Standing(nil), standings...)
	sort.SliceStable(byPoints, func(i, j int) bool {
		return byPoints[i].Points() > byPoints[j].Points()
	})

	out := make([]Standing, 0, len(byPoints))
	for start := 0; start < len(byPoints); {
		end := start + 1
		for end < len(byPoints) && byPoints[end].Points() == byPoints[start].Points() {
			end++
		}

		group := byPoints[start:end]
		switch len(group) {
		case 1:
			out = append(out, group[0])
		case 2:
			out = append(out, headToHead(group, games)...)
		default:
			out = append(out, lastResort(group)...)
		}
		start = end
	}

	return out
}

// headToHead orders a pair tied on points by their results against each
// other, returning the full-season rows in the resolved order.
func headToHead(pair []Standing, games []game.Game) []Standing {
	between := make([]game.Game, 0)
	for _, g := range games {
		if !g.IncludeInStandings {
			continue
		}
		if inGroup(pair, g.HomeTeamID) && inGroup(pair, g.AwayTeamID) {
			between = append(between, g)
		}
	}

	resolved := aggregate(between)
	if len(resolved) == 0 {
		resolved = pair
	}
	resolved = lastResort(resolved)

	full := make(map[int64]Standing, len(pair))
	for _, s := range pair {
		full[s.TeamID] = s
	}
	out := make([]Standing, 0, len(pair))
	for _, s := range resolved {
		out = append(out, full[s.TeamID])
	}

	return out
}

func inGroup(group []Standing, teamID int64) bool {
	for _, s := range group {
		if s.TeamID == teamID {
			return true
		}
	}
	return false
}

// lastResort orders by points then goal differential; remaining ties keep
// their input order.
func lastResort(standings []Standing) []Standing {
	out := append([]Standing(nil), standings...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Points() != out[j].Points() {
			return out[i].Points() > out[j].Points()
		}
		return out[i].GoalDifferential() > out[j].GoalDifferential()
	})

	return out
}
