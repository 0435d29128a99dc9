package user

import "strings"

// Principal is the authenticated caller resolved from a bearer token.
type Principal struct {
	UserID string
	Email  string
	Roles  []string
}

func (p Principal) HasRole(role string) bool {
	role = strings.TrimSpace(role)
	if role == "" {
		return false
	}
	for _, r := range p.Roles {
		if strings.EqualFold(strings.TrimSpace(r), role) {
			return true
		}
	}
	return false
}
