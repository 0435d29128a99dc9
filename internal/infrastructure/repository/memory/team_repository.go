package memory

import (
	"context"
	"fmt"

	"github.com/riskibarqy/leaguerly/internal/domain/team"
)

type TeamRepository struct {
	rows *table[team.Team]
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	return &TeamRepository{rows: newTable(teams, func(t team.Team) int64 { return t.ID })}
}

func (r *TeamRepository) List(_ context.Context) ([]team.Team, error) {
	return r.rows.list(nil), nil
}

func (r *TeamRepository) GetByID(_ context.Context, teamID int64) (team.Team, bool, error) {
	item, ok := r.rows.get(teamID)
	return item, ok, nil
}

func (r *TeamRepository) Create(_ context.Context, item team.Team) (team.Team, error) {
	return r.rows.insert(item, func(t *team.Team, id int64) { t.ID = id }), nil
}

func (r *TeamRepository) Update(_ context.Context, item team.Team) error {
	if !r.rows.replace(item.ID, item) {
		return fmt.Errorf("team %d not found", item.ID)
	}
	return nil
}

func (r *TeamRepository) Delete(_ context.Context, teamID int64) error {
	if !r.rows.remove(teamID) {
		return fmt.Errorf("team %d not found", teamID)
	}
	return nil
}
