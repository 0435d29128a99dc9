package app

import (
	"context"
	"net/http"

	"github.com/riskibarqy/leaguerly/internal/config"
	"github.com/riskibarqy/leaguerly/internal/infrastructure/account"
	"github.com/riskibarqy/leaguerly/internal/interfaces/httpapi"
	"github.com/riskibarqy/leaguerly/internal/platform/logging"
	"github.com/riskibarqy/leaguerly/internal/platform/metrics"
	"github.com/riskibarqy/leaguerly/internal/platform/resilience"
	"github.com/riskibarqy/leaguerly/internal/usecase"
)

const metricsNamespace = "leaguerly"

// NewHTTPServer composes storage, services and the router. The returned close
// func releases resources owned by the server, such as the database pool.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	repos, err := buildRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	var (
		registry *metrics.Registry
		recorder usecase.StandingsRecorder
		httpRec  httpapi.HTTPRecorder
		promHTTP http.Handler
	)
	if cfg.MetricsEnabled {
		registry = metrics.NewRegistry(metricsNamespace)
		recorder = registry
		httpRec = registry
		promHTTP = registry.Handler()
	}

	services := httpapi.Services{
		Divisions: usecase.NewDivisionService(repos.divisions),
		Teams:     usecase.NewTeamService(repos.teams),
		Locations: usecase.NewLocationService(repos.locations),
		Players:   usecase.NewPlayerService(repos.teams, repos.players),
		Games:     usecase.NewGameService(repos.games, repos.divisions, repos.locations, repos.teams, repos.players),
		Standings: usecase.NewStandingService(repos.divisions, repos.games, repos.teams, recorder, cfg.StandingsWorkers),
	}

	accountClient := newAccountClient(cfg, logger)
	var verifier httpapi.TokenVerifier
	if accountClient != nil {
		verifier = accountClient
	} else {
		logger.WarnContext(ctx, "account service not configured, admin routes will reject requests",
			"reason", "ACCOUNT_BASE_URL empty",
		)
	}

	handler := httpapi.NewHandler(services, healthFunc(cfg, repos, accountClient), logger)
	router := httpapi.NewRouter(handler, httpapi.RouterConfig{
		ServiceName:        cfg.ServiceName,
		Verifier:           verifier,
		AdminRole:          cfg.AccountAdminRole,
		Logger:             logger,
		Metrics:            httpRec,
		MetricsHandler:     promHTTP,
		SwaggerEnabled:     cfg.SwaggerEnabled,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, repos.Close, nil
}

func newAccountClient(cfg config.Config, logger *logging.Logger) *account.Client {
	if cfg.AccountBaseURL == "" {
		return nil
	}

	return account.NewClient(account.ClientConfig{
		BaseURL:        cfg.AccountBaseURL,
		IntrospectPath: cfg.AccountIntrospectPath,
		AdminKey:       cfg.AccountAdminKey,
		Timeout:        cfg.AccountTimeout,
		CacheTTL:       cfg.AccountCacheTTL,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.AccountCircuitEnabled,
			FailureThreshold: cfg.AccountCircuitFailureCount,
			OpenTimeout:      cfg.AccountCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.AccountCircuitHalfOpenMaxReq,
		},
		Logger: logger,
	})
}

func healthFunc(cfg config.Config, repos repositories, accountClient *account.Client) httpapi.HealthFunc {
	return func(ctx context.Context) map[string]any {
		out := map[string]any{
			"service": cfg.ServiceName,
			"version": cfg.ServiceVersion,
			"storage": cfg.StorageDriver,
		}
		if repos.db != nil {
			if err := repos.db.PingContext(ctx); err != nil {
				out["database"] = "unavailable"
			} else {
				out["database"] = "ok"
			}
		}
		if repos.cache != nil {
			out["cache"] = repos.cache.Stats()
		}
		if accountClient != nil {
			out["account"] = map[string]any{
				"circuit": accountClient.BreakerState(),
				"cache":   accountClient.CacheStats(),
			}
		}
		return out
	}
}
