package cache

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/riskibarqy/leaguerly/internal/domain/division"
	"github.com/riskibarqy/leaguerly/internal/domain/location"
	"github.com/riskibarqy/leaguerly/internal/domain/player"
	"github.com/riskibarqy/leaguerly/internal/domain/team"
	basecache "github.com/riskibarqy/leaguerly/internal/platform/cache"
)

type cachedByID[T any] struct {
	value  T
	exists bool
}

func loadList[T any](ctx context.Context, store *basecache.Store, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	v, err := store.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return append([]T(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]T)
	return append([]T(nil), items...), nil
}

func loadByID[T any](ctx context.Context, store *basecache.Store, key string, load func(context.Context) (T, bool, error)) (T, bool, error) {
	v, err := store.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return cachedByID[T]{value: item, exists: exists}, nil
	})
	if err != nil {
		var zero T
		return zero, false, err
	}

	cached, _ := v.(cachedByID[T])
	return cached.value, cached.exists, nil
}

func idKey(prefix string, id int64) string {
	return prefix + strconv.FormatInt(id, 10)
}

type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	return loadList(ctx, r.cache, "team:list", r.next.List)
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID int64) (team.Team, bool, error) {
	return loadByID(ctx, r.cache, idKey("team:id:", teamID), func(ctx context.Context) (team.Team, bool, error) {
		return r.next.GetByID(ctx, teamID)
	})
}

func (r *TeamRepository) Create(ctx context.Context, item team.Team) (team.Team, error) {
	created, err := r.next.Create(ctx, item)
	if err != nil {
		return team.Team{}, err
	}
	r.cache.DeletePrefix(ctx, "team:")
	return created, nil
}

func (r *TeamRepository) Update(ctx context.Context, item team.Team) error {
	if err := r.next.Update(ctx, item); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "team:")
	return nil
}

func (r *TeamRepository) Delete(ctx context.Context, teamID int64) error {
	if err := r.next.Delete(ctx, teamID); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "team:")
	r.cache.DeletePrefix(ctx, "player:")
	return nil
}

type DivisionRepository struct {
	next  division.Repository
	cache *basecache.Store
}

func NewDivisionRepository(next division.Repository, cache *basecache.Store) *DivisionRepository {
	return &DivisionRepository{next: next, cache: cache}
}

func (r *DivisionRepository) List(ctx context.Context) ([]division.Division, error) {
	return loadList(ctx, r.cache, "division:list", r.next.List)
}

func (r *DivisionRepository) GetByID(ctx context.Context, divisionID int64) (division.Division, bool, error) {
	return loadByID(ctx, r.cache, idKey("division:id:", divisionID), func(ctx context.Context) (division.Division, bool, error) {
		return r.next.GetByID(ctx, divisionID)
	})
}

func (r *DivisionRepository) Create(ctx context.Context, item division.Division) (division.Division, error) {
	created, err := r.next.Create(ctx, item)
	if err != nil {
		return division.Division{}, err
	}
	r.cache.DeletePrefix(ctx, "division:")
	return created, nil
}

func (r *DivisionRepository) Update(ctx context.Context, item division.Division) error {
	if err := r.next.Update(ctx, item); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "division:")
	return nil
}

func (r *DivisionRepository) Delete(ctx context.Context, divisionID int64) error {
	if err := r.next.Delete(ctx, divisionID); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "division:")
	return nil
}

type LocationRepository struct {
	next  location.Repository
	cache *basecache.Store
}

func NewLocationRepository(next location.Repository, cache *basecache.Store) *LocationRepository {
	return &LocationRepository{next: next, cache: cache}
}

func (r *LocationRepository) List(ctx context.Context) ([]location.Location, error) {
	return loadList(ctx, r.cache, "location:list", r.next.List)
}

func (r *LocationRepository) GetByID(ctx context.Context, locationID int64) (location.Location, bool, error) {
	return loadByID(ctx, r.cache, idKey("location:id:", locationID), func(ctx context.Context) (location.Location, bool, error) {
		return r.next.GetByID(ctx, locationID)
	})
}

func (r *LocationRepository) Create(ctx context.Context, item location.Location) (location.Location, error) {
	created, err := r.next.Create(ctx, item)
	if err != nil {
		return location.Location{}, err
	}
	r.cache.DeletePrefix(ctx, "location:")
	return created, nil
}

func (r *LocationRepository) Update(ctx context.Context, item location.Location) error {
	if err := r.next.Update(ctx, item); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "location:")
	return nil
}

func (r *LocationRepository) Delete(ctx context.Context, locationID int64) error {
	if err := r.next.Delete(ctx, locationID); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "location:")
	return nil
}

type PlayerRepository struct {
	next  player.Repository
	cache *basecache.Store
}

func NewPlayerRepository(next player.Repository, cache *basecache.Store) *PlayerRepository {
	return &PlayerRepository{next: next, cache: cache}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	items, err := loadList(ctx, r.cache, "player:list", r.next.List)
	return clonePlayers(items), err
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, teamID int64) ([]player.Player, error) {
	items, err := loadList(ctx, r.cache, idKey("player:team:", teamID), func(ctx context.Context) ([]player.Player, error) {
		return r.next.ListByTeam(ctx, teamID)
	})
	return clonePlayers(items), err
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID int64) (player.Player, bool, error) {
	item, exists, err := loadByID(ctx, r.cache, idKey("player:id:", playerID), func(ctx context.Context) (player.Player, bool, error) {
		return r.next.GetByID(ctx, playerID)
	})
	item.TeamIDs = append([]int64(nil), item.TeamIDs...)
	return item, exists, err
}

func (r *PlayerRepository) GetByIDs(ctx context.Context, playerIDs []int64) ([]player.Player, error) {
	ids := append([]int64(nil), playerIDs...)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.FormatInt(id, 10))
	}

	items, err := loadList(ctx, r.cache, "player:ids:"+strings.Join(parts, ","), func(ctx context.Context) ([]player.Player, error) {
		return r.next.GetByIDs(ctx, ids)
	})
	return clonePlayers(items), err
}

func (r *PlayerRepository) Create(ctx context.Context, item player.Player) (player.Player, error) {
	created, err := r.next.Create(ctx, item)
	if err != nil {
		return player.Player{}, err
	}
	r.cache.DeletePrefix(ctx, "player:")
	return created, nil
}

func (r *PlayerRepository) Update(ctx context.Context, item player.Player) error {
	if err := r.next.Update(ctx, item); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "player:")
	return nil
}

func (r *PlayerRepository) Delete(ctx context.Context, playerID int64) error {
	if err := r.next.Delete(ctx, playerID); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "player:")
	return nil
}

func clonePlayers(items []player.Player) []player.Player {
	if items == nil {
		return nil
	}
	out := make([]player.Player, 0, len(items))
	for _, item := range items {
		item.TeamIDs = append([]int64(nil), item.TeamIDs...)
		out = append(out, item)
	}
	return out
}
