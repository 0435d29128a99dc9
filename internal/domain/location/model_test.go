package location

import "testing"

func TestLocationValidate(t *testing.T) {
	t.Parallel()

	if err := (Location{Name: "Riverside Park"}).Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
	if err := (Location{Name: "\t", Address: "1 Quay St"}).Validate(); err == nil {
		t.Fatalf("expected error for blank name")
	}
}
