package main

import (
	"errors"
	"testing"

	"github.com/riskibarqy/leaguerly/internal/platform/logging"
)

func TestParseSteps(t *testing.T) {
	t.Parallel()

	tests := []struct {
		args    []string
		want    int
		wantErr bool
	}{
		{args: nil, want: 1},
		{args: []string{" 3 "}, want: 3},
		{args: []string{"0"}, wantErr: true},
		{args: []string{"two"}, wantErr: true},
	}
	for _, tc := range tests {
		got, err := parseSteps(tc.args)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("parseSteps(%v): expected error", tc.args)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Fatalf("parseSteps(%v)=%d,%v want %d", tc.args, got, err, tc.want)
		}
	}
}

func TestParseVersionAndTarget(t *testing.T) {
	t.Parallel()

	if v, err := parseVersion("3"); err != nil || v != 3 {
		t.Fatalf("parseVersion: got %d,%v", v, err)
	}
	if _, err := parseVersion("-1"); err == nil {
		t.Fatalf("expected error for negative version")
	}
	if v, err := parseTarget("2"); err != nil || v != 2 {
		t.Fatalf("parseTarget: got %d,%v", v, err)
	}
	if _, err := parseTarget("latest"); err == nil {
		t.Fatalf("expected error for non numeric target")
	}
}

func TestWithMigrationsTable(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"postgres://u:p@localhost:5432/leaguerly":                        "postgres://u:p@localhost:5432/leaguerly?x-migrations-table=schema_migrations",
		"postgres://u:p@localhost:5432/leaguerly?sslmode=disable":        "postgres://u:p@localhost:5432/leaguerly?sslmode=disable&x-migrations-table=schema_migrations",
		"postgres://u:p@localhost:5432/leaguerly?x-migrations-table=mig": "postgres://u:p@localhost:5432/leaguerly?x-migrations-table=mig",
	}
	for in, want := range tests {
		if got := withMigrationsTable(in); got != want {
			t.Fatalf("withMigrationsTable(%q)=%q, want %q", in, got, want)
		}
	}
}

func TestRun_RequiresCommandAndDBURL(t *testing.T) {
	if err := run(nil, logging.NewNop()); !errors.Is(err, errUsage) {
		t.Fatalf("expected usage error, got %v", err)
	}

	t.Setenv("DB_URL", "")
	if err := run([]string{"up"}, logging.NewNop()); err == nil {
		t.Fatalf("expected error without DB_URL")
	}
}
