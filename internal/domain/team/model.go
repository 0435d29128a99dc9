package team

import (
	"fmt"
	"strings"
)

// Team is a club competing in one or more divisions.
type Team struct {
	ID       int64
	Name     string
	Short    string
	ImageURL string
}

func (t Team) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("team name is required")
	}
	if len(t.Short) > 5 {
		return fmt.Errorf("team short name must be at most 5 characters")
	}

	return nil
}
