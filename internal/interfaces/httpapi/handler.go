package httpapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/leaguerly/internal/platform/logging"
	"github.com/riskibarqy/leaguerly/internal/usecase"
)

const maxRequestBody = 1 << 20

// HealthFunc reports component details for /healthz, e.g. cache statistics.
type HealthFunc func(ctx context.Context) map[string]any

type Handler struct {
	divisionService *usecase.DivisionService
	teamService     *usecase.TeamService
	locationService *usecase.LocationService
	playerService   *usecase.PlayerService
	gameService     *usecase.GameService
	standingService *usecase.StandingService
	health          HealthFunc
	logger          *logging.Logger
	validator       *validator.Validate
}

type Services struct {
	Divisions *usecase.DivisionService
	Teams     *usecase.TeamService
	Locations *usecase.LocationService
	Players   *usecase.PlayerService
	Games     *usecase.GameService
	Standings *usecase.StandingService
}

func NewHandler(services Services, health HealthFunc, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		divisionService: services.Divisions,
		teamService:     services.Teams,
		locationService: services.Locations,
		playerService:   services.Players,
		gameService:     services.Games,
		standingService: services.Standings,
		health:          health,
		logger:          logger,
		validator:       validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	payload := map[string]any{"status": "ok"}
	if h.health != nil {
		for key, value := range h.health(ctx) {
			payload[key] = value
		}
	}

	writeSuccess(ctx, w, http.StatusOK, payload)
}

func (h *Handler) decodeRequest(ctx context.Context, r *http.Request, dst any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.decodeRequest")
	defer span.End()

	decoder := sonic.ConfigDefault.NewDecoder(io.LimitReader(r.Body, maxRequestBody))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}

	return h.validateRequest(ctx, dst)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func pathID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", usecase.ErrInvalidInput, name)
	}
	return id, nil
}

func queryID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", usecase.ErrInvalidInput, name)
	}
	return id, nil
}
