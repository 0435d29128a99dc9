package user

import "testing"

func TestPrincipalHasRole(t *testing.T) {
	t.Parallel()

	p := Principal{UserID: "u-1", Roles: []string{"member", " Admin "}}
	if !p.HasRole("admin") {
		t.Fatalf("expected admin role match")
	}
	if p.HasRole("owner") {
		t.Fatalf("did not expect owner role")
	}
	if p.HasRole(" ") {
		t.Fatalf("blank role must never match")
	}
}
