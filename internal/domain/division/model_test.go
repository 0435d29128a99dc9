package division

import "testing"

func TestDivisionValidate(t *testing.T) {
	t.Parallel()

	if err := (Division{Name: "Premier", Season: "2026"}).Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
	if err := (Division{Name: " ", Season: "2026"}).Validate(); err == nil {
		t.Fatalf("expected error for blank name")
	}
	if err := (Division{Name: "Premier"}).Validate(); err == nil {
		t.Fatalf("expected error for missing season")
	}
}
