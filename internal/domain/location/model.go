package location

import (
	"fmt"
	"strings"
)

// Location is a venue where games are played.
type Location struct {
	ID      int64
	Name    string
	Address string
}

func (l Location) Validate() error {
	if strings.TrimSpace(l.Name) == "" {
		return fmt.Errorf("location name is required")
	}

	return nil
}
