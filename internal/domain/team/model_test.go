package team

import "testing"

func TestTeamValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		team    Team
		wantErr bool
	}{
		{name: "valid", team: Team{Name: "Harbour FC", Short: "HFC"}},
		{name: "valid without short", team: Team{Name: "Harbour FC"}},
		{name: "blank name", team: Team{Name: "  ", Short: "HFC"}, wantErr: true},
		{name: "short too long", team: Team{Name: "Harbour FC", Short: "HARBOUR"}, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.team.Validate()
			if tc.wantErr && err == nil {
				t.Fatalf("expected validation error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected validation error: %v", err)
			}
		})
	}
}
