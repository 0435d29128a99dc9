package division

import (
	"fmt"
	"strings"
)

// Division groups games into one competition table.
type Division struct {
	ID     int64
	Name   string
	Season string
}

func (d Division) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("division name is required")
	}
	if strings.TrimSpace(d.Season) == "" {
		return fmt.Errorf("division season is required")
	}

	return nil
}
