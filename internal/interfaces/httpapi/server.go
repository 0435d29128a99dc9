package httpapi

import (
	"net/http"

	"github.com/riskibarqy/leaguerly/internal/platform/id"
	"github.com/riskibarqy/leaguerly/internal/platform/logging"
)

type RouterConfig struct {
	ServiceName        string
	Verifier           TokenVerifier
	AdminRole          string
	Logger             *logging.Logger
	Metrics            HTTPRecorder
	MetricsHandler     http.Handler
	SwaggerEnabled     bool
	CORSAllowedOrigins []string
	RequestIDs         id.Generator
}

// NewRouter wires routes and wraps them, outermost first, in tracing,
// request ids, metrics, request logging, CORS and panic recovery.
func NewRouter(handler *Handler, cfg RouterConfig) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, cfg)
	registerPublicRoutes(mux, handler)
	registerAdminRoutes(mux, handler, cfg.Verifier, cfg.AdminRole)

	var root http.Handler = recoverPanic(logger, mux)
	root = CORS(cfg.CORSAllowedOrigins, root)
	root = RequestLogging(logger, root)
	root = RequestMetrics(cfg.Metrics, mux, root)
	root = RequestID(cfg.RequestIDs, root)
	return RequestTracing(cfg.ServiceName, root)
}
