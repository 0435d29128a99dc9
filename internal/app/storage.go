package app

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/leaguerly/internal/config"
	"github.com/riskibarqy/leaguerly/internal/domain/division"
	"github.com/riskibarqy/leaguerly/internal/domain/game"
	"github.com/riskibarqy/leaguerly/internal/domain/location"
	"github.com/riskibarqy/leaguerly/internal/domain/player"
	"github.com/riskibarqy/leaguerly/internal/domain/team"
	cacherepo "github.com/riskibarqy/leaguerly/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/leaguerly/internal/infrastructure/repository/memory"
	postgresrepo "github.com/riskibarqy/leaguerly/internal/infrastructure/repository/postgres"
	basecache "github.com/riskibarqy/leaguerly/internal/platform/cache"
	"github.com/riskibarqy/leaguerly/internal/platform/logging"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

type repositories struct {
	divisions division.Repository
	teams     team.Repository
	locations location.Repository
	players   player.Repository
	games     game.Repository
	cache     *basecache.Store
	db        *sqlx.DB
}

func (r repositories) Close() error {
	if r.db == nil {
		return nil
	}
	return r.db.Close()
}

func buildRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, error) {
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		db, err := openDatabase(ctx, cfg)
		if err != nil {
			return repositories{}, err
		}
		if err := postgresrepo.BootstrapSeed(ctx, db); err != nil {
			_ = db.Close()
			return repositories{}, fmt.Errorf("bootstrap seed: %w", err)
		}

		repos := repositories{
			divisions: postgresrepo.NewDivisionRepository(db),
			teams:     postgresrepo.NewTeamRepository(db),
			locations: postgresrepo.NewLocationRepository(db),
			players:   postgresrepo.NewPlayerRepository(db),
			games:     postgresrepo.NewGameRepository(db),
			db:        db,
		}
		if cfg.CacheEnabled {
			repos = withReadCache(repos, cfg)
			logger.Debug("read cache enabled", "ttl", cfg.CacheTTL)
		}

		logger.InfoContext(ctx, "storage ready",
			"driver", cfg.StorageDriver,
			"db_name", dbNameFromURL(cfg.DBURL),
			"cache_enabled", cfg.CacheEnabled,
		)
		return repos, nil
	default:
		players := memory.NewPlayerRepository(memory.SeedPlayers())
		repos := repositories{
			divisions: memory.NewDivisionRepository(memory.SeedDivisions()),
			teams:     memory.NewTeamRepository(memory.SeedTeams()),
			locations: memory.NewLocationRepository(memory.SeedLocations()),
			players:   players,
			games:     memory.NewGameRepository(memory.SeedGames(), players),
		}

		logger.InfoContext(ctx, "storage ready", "driver", config.StorageMemory)
		return repos, nil
	}
}

// withReadCache wraps the reference-data repositories. Games stay uncached so
// standings always reflect the latest results.
func withReadCache(repos repositories, cfg config.Config) repositories {
	store := basecache.NewStore(cfg.CacheTTL)
	repos.cache = store
	repos.divisions = cacherepo.NewDivisionRepository(repos.divisions, store)
	repos.teams = cacherepo.NewTeamRepository(repos.teams, store)
	repos.locations = cacherepo.NewLocationRepository(repos.locations, store)
	repos.players = cacherepo.NewPlayerRepository(repos.players, store)
	return repos
}

func openDatabase(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	opts := []otelsql.Option{
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	}
	if name := dbNameFromURL(dsn); name != "" {
		opts = append(opts, otelsql.WithDBName(name))
	}

	db, err := otelsqlx.Open("postgres", dsn, opts...)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxOpenConns)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}
