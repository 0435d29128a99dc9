package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestIsCallerError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "invalid input", err: fmt.Errorf("%w: unknown scorer=9", ErrInvalidInput), want: true},
		{name: "not found", err: fmt.Errorf("%w: division=3", ErrNotFound), want: true},
		{name: "conflict", err: ErrConflict, want: true},
		{name: "forbidden", err: ErrForbidden, want: true},
		{name: "dependency", err: fmt.Errorf("verify token: %w", ErrDependencyUnavailable), want: false},
		{name: "repository", err: errors.New("connection reset"), want: false},
	}

	for _, tc := range tests {
		if got := isCallerError(tc.err); got != tc.want {
			t.Fatalf("%s: isCallerError=%v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestStartUsecaseSpan_WithoutParentIsNoop(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	gotCtx, span := startUsecaseSpan(ctx, "usecase.StandingService.ListByDivision", divisionAttr(1))
	if gotCtx != ctx {
		t.Fatalf("expected context to be returned unchanged")
	}
	if span.IsRecording() {
		t.Fatalf("expected a no-op span without a parent")
	}

	// Ending a no-op span with an error must be safe.
	endUsecaseSpan(span, errors.New("db down"))
}
