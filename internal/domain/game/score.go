package game

// Score is the goal-based result of a single game.
type Score struct {
	HomeTeamID    int64
	AwayTeamID    int64
	HomeTeamScore int
	AwayTeamScore int
}

// CalculateScore sums goal tallies per side. A goal counts for a side when its
// scorer is affiliated with that team; goals by players affiliated with
// neither side count for nobody.
func CalculateScore(g Game) Score {
	score := Score{
		HomeTeamID: g.HomeTeamID,
		AwayTeamID: g.AwayTeamID,
	}
	for _, goal := range g.Goals {
		if goal.Scorer.PlaysFor(g.HomeTeamID) {
			score.HomeTeamScore += goal.Count
		}
		if goal.Scorer.PlaysFor(g.AwayTeamID) {
			score.AwayTeamScore += goal.Count
		}
	}

	return score
}

// IsTie reports whether both sides scored the same number of goals.
func (s Score) IsTie() bool {
	return s.HomeTeamScore == s.AwayTeamScore
}

// WinningTeamID returns false when the game is tied.
func (s Score) WinningTeamID() (int64, bool) {
	switch {
	case s.HomeTeamScore > s.AwayTeamScore:
		return s.HomeTeamID, true
	case s.AwayTeamScore > s.HomeTeamScore:
		return s.AwayTeamID, true
	default:
		return 0, false
	}
}

// LosingTeamID returns false when the game is tied.
func (s Score) LosingTeamID() (int64, bool) {
	switch {
	case s.HomeTeamScore > s.AwayTeamScore:
		return s.AwayTeamID, true
	case s.AwayTeamScore > s.HomeTeamScore:
		return s.HomeTeamID, true
	default:
		return 0, false
	}
}

// GoalsFor returns the goals scored by teamID. Any team other than the home
// side is read as the away side.
func (s Score) GoalsFor(teamID int64) int {
	if teamID == s.HomeTeamID {
		return s.HomeTeamScore
	}
	return s.AwayTeamScore
}

// GoalsAgainst returns the goals conceded by teamID.
func (s Score) GoalsAgainst(teamID int64) int {
	if teamID == s.HomeTeamID {
		return s.AwayTeamScore
	}
	return s.HomeTeamScore
}
