package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("id", "home_team_id", "away_team_id").
		From("games").
		Where(Eq("division_id", int64(2)), IsNull("deleted_at")).
		OrderBy("game_date", "id").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id, home_team_id, away_team_id FROM games WHERE division_id = $1 AND deleted_at IS NULL ORDER BY game_date, id LIMIT 10"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != int64(2) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_AnyAndExpr(t *testing.T) {
	ids := []int64{4, 9}
	query, args, err := Select("player_id", "team_id").
		From("player_teams").
		Where(Any("player_id", ids), Expr("team_id <> ?", int64(1))).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT player_id, team_id FROM player_teams WHERE player_id = ANY($1) AND team_id <> $2"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("teams").
		Columns("name", "short").
		Values("Harbour FC", "HFC").
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO teams (name, short) VALUES ($1, $2) RETURNING id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "Harbour FC" || args[1] != "HFC" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertModel(t *testing.T) {
	type row struct {
		ID     int64  `db:"-"`
		Name   string `db:"name"`
		Season string `db:"season,omitempty"`
		note   string
	}

	query, args, err := InsertModel("divisions", row{Name: "Premier", Season: "2026", note: "x"}).
		Returning("id").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert model query: %v", err)
	}

	wantQuery := "INSERT INTO divisions (name, season) VALUES ($1, $2) RETURNING id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "Premier" || args[1] != "2026" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateModel(t *testing.T) {
	type row struct {
		Name    string `db:"name"`
		Address string `db:"address"`
	}

	query, args, err := UpdateModel("locations", &row{Name: "Riverside Park", Address: "1 Quay St"}).
		SetExpr("updated_at", "NOW()").
		Where(Eq("id", int64(4)), IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		t.Fatalf("build update model query: %v", err)
	}

	wantQuery := "UPDATE locations SET name = $1, address = $2, updated_at = NOW() WHERE id = $3 AND deleted_at IS NULL"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[2] != int64(4) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestModelErrorsSurfaceFromToSQL(t *testing.T) {
	type untagged struct{ Name string }
	var nilRow *untagged

	tests := []struct {
		name  string
		build func() (string, []any, error)
	}{
		{name: "insert non struct", build: InsertModel("teams", 42).ToSQL},
		{name: "insert nil pointer", build: InsertModel("teams", nilRow).ToSQL},
		{name: "insert without db tags", build: InsertModel("teams", untagged{Name: "x"}).ToSQL},
		{name: "update without db tags", build: UpdateModel("teams", untagged{Name: "x"}).Where(Eq("id", 1)).ToSQL},
	}
	for _, tc := range tests {
		if query, _, err := tc.build(); err == nil {
			t.Fatalf("%s: expected error, got query %q", tc.name, query)
		}
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("teams").
		Set("name", "Harbour Athletic").
		SetExpr("updated_at", "NOW()").
		Where(Eq("id", int64(1))).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE teams SET name = $1, updated_at = NOW() WHERE id = $2"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "Harbour Athletic" || args[1] != int64(1) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestDeleteBuilder(t *testing.T) {
	query, args, err := DeleteFrom("goals").Where(Eq("game_id", int64(7))).ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}
	if query != "DELETE FROM goals WHERE game_id = $1" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 1 || args[0] != int64(7) {
		t.Fatalf("unexpected args: %+v", args)
	}

	if _, _, err := DeleteFrom("goals").ToSQL(); err == nil {
		t.Fatalf("expected error for unconditional delete")
	}
}

func TestSoftDelete(t *testing.T) {
	query, args, err := SoftDelete("games", 12)
	if err != nil {
		t.Fatalf("build soft delete query: %v", err)
	}

	wantQuery := "UPDATE games SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != int64(12) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateBuilder_RequiresCondition(t *testing.T) {
	if _, _, err := Update("games").Set("was_forfeited", true).ToSQL(); err == nil {
		t.Fatalf("expected error for unconditional update")
	}
	if _, _, err := DeleteFrom("bookings").ToSQL(); err == nil {
		t.Fatalf("expected error for unconditional delete")
	}
}
