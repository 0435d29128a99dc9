package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/riskibarqy/leaguerly/internal/usecase"
)

func TestIsBindParameterMismatch(t *testing.T) {
	t.Run("matches bind mismatch error", func(t *testing.T) {
		err := fakeErr("pq: bind message supplies 2 parameters, but prepared statement \"\" requires 1 (08P01)")
		if !isBindParameterMismatch(err) {
			t.Fatalf("expected true for bind mismatch error")
		}
	})

	t.Run("ignores unrelated error", func(t *testing.T) {
		err := fakeErr("pq: relation games does not exist")
		if isBindParameterMismatch(err) {
			t.Fatalf("expected false for unrelated error")
		}
	})
}

func TestIsUnnamedPreparedStatementMissing(t *testing.T) {
	t.Run("matches statement missing message", func(t *testing.T) {
		err := fakeErr("pq: unnamed prepared statement does not exist (26000)")
		if !isUnnamedPreparedStatementMissing(err) {
			t.Fatalf("expected true for statement missing error")
		}
	})

	t.Run("matches by 26000 code", func(t *testing.T) {
		err := fakeErr("pq: prepared statement missing (26000)")
		if !isUnnamedPreparedStatementMissing(err) {
			t.Fatalf("expected true for 26000 prepared statement error")
		}
	})

	t.Run("ignores unrelated error", func(t *testing.T) {
		if isUnnamedPreparedStatementMissing(fakeErr("pq: relation games does not exist")) {
			t.Fatalf("expected false for unrelated error")
		}
	})
}

func TestMapWriteError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "unique", err: &pq.Error{Code: pqUniqueViolation, Constraint: "teams_name_key"}, want: usecase.ErrConflict},
		{name: "foreign key", err: &pq.Error{Code: pqForeignKeyViolation}, want: usecase.ErrInvalidInput},
		{name: "wrapped check", err: fmt.Errorf("exec: %w", &pq.Error{Code: pqCheckViolation}), want: usecase.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mapWriteError("insert team", tt.err); !errors.Is(got, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}

	plain := errors.New("connection refused")
	if got := mapWriteError("insert team", plain); !errors.Is(got, plain) || errors.Is(got, usecase.ErrConflict) {
		t.Fatalf("unexpected mapping for plain error: %v", got)
	}
	if mapWriteError("noop", nil) != nil {
		t.Fatalf("nil error must stay nil")
	}
}

func TestNullInt64RoundTrip(t *testing.T) {
	if nullInt64(nil).Valid || nullInt64Ptr(sql.NullInt64{}) != nil {
		t.Fatalf("nil must map to SQL NULL")
	}
	v := int64(4)
	if got := nullInt64Ptr(nullInt64(&v)); got == nil || *got != 4 {
		t.Fatalf("unexpected value: %v", got)
	}
}

type fakeErr string

func (e fakeErr) Error() string { return string(e) }
