package player

import (
	"fmt"
	"strings"
)

// Player is a registered athlete. A player can be affiliated with several
// teams, e.g. across seasons.
type Player struct {
	ID      int64
	Name    string
	Number  int
	TeamIDs []int64
}

func (p Player) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("player name is required")
	}
	if p.Number < 0 || p.Number > 99 {
		return fmt.Errorf("player number must be between 0 and 99")
	}
	if len(p.TeamIDs) == 0 {
		return fmt.Errorf("player must be affiliated with at least one team")
	}
	for _, teamID := range p.TeamIDs {
		if teamID <= 0 {
			return fmt.Errorf("invalid player team id: %d", teamID)
		}
	}

	return nil
}

// PlaysFor reports whether the player is affiliated with teamID.
func (p Player) PlaysFor(teamID int64) bool {
	for _, id := range p.TeamIDs {
		if id == teamID {
			return true
		}
	}
	return false
}
