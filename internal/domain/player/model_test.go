package player

import "testing"

func TestPlayerValidate(t *testing.T) {
	tests := []struct {
		name    string
		in      Player
		wantErr bool
	}{
		{name: "valid", in: Player{Name: "Sam Kerr", Number: 20, TeamIDs: []int64{1}}},
		{name: "missing name", in: Player{Name: " ", TeamIDs: []int64{1}}, wantErr: true},
		{name: "no affiliation", in: Player{Name: "Sam Kerr"}, wantErr: true},
		{name: "bad team id", in: Player{Name: "Sam Kerr", TeamIDs: []int64{0}}, wantErr: true},
		{name: "number out of range", in: Player{Name: "Sam Kerr", Number: 100, TeamIDs: []int64{1}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() err=%v wantErr=%v", err, tt.wantErr)
			}
		})
	}
}

func TestPlayerPlaysFor(t *testing.T) {
	p := Player{Name: "Multi Club", TeamIDs: []int64{3, 7}}
	if !p.PlaysFor(7) {
		t.Fatalf("expected affiliation with team 7")
	}
	if p.PlaysFor(4) {
		t.Fatalf("did not expect affiliation with team 4")
	}
}
