package id

import (
	"fmt"

	"github.com/google/uuid"
)

const maxExternalIDLength = 128

// Generator creates opaque IDs for request correlation.
type Generator interface {
	NewID() (string, error)
}

// UUIDGenerator issues time-ordered UUIDv7 strings so ids sort roughly by
// arrival in log search.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) NewID() (string, error) {
	v, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generate uuid v7: %w", err)
	}

	return v.String(), nil
}

// ValidExternal reports whether a caller supplied id is safe to echo back and
// log: non-empty, bounded, and limited to [A-Za-z0-9._-].
func ValidExternal(raw string) bool {
	if raw == "" || len(raw) > maxExternalIDLength {
		return false
	}
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-', c == '_', c == '.':
		default:
			return false
		}
	}
	return true
}
