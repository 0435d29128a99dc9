package account

import (
	"context"
	"fmt"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/leaguerly/internal/domain/user"
	"github.com/riskibarqy/leaguerly/internal/platform/cache"
	"github.com/riskibarqy/leaguerly/internal/platform/logging"
	"github.com/riskibarqy/leaguerly/internal/platform/resilience"
	"github.com/riskibarqy/leaguerly/internal/usecase"
	"github.com/valyala/fasthttp"
)

const defaultTimeout = 3 * time.Second

var errAccountTransient = crerr.New("account service transient failure")

type ClientConfig struct {
	BaseURL        string
	IntrospectPath string
	AdminKey       string
	Timeout        time.Duration
	CacheTTL       time.Duration
	CircuitBreaker resilience.CircuitBreakerConfig
	Logger         *logging.Logger
}

// Client resolves bearer tokens to principals through the account service
// introspection endpoint.
type Client struct {
	http          *fasthttp.Client
	introspectURL string
	adminKey      string
	timeout       time.Duration
	principals    *cache.Store
	breaker       *resilience.CircuitBreaker
	logger        *logging.Logger
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	var principals *cache.Store
	if cfg.CacheTTL > 0 {
		principals = cache.NewStore(cfg.CacheTTL)
	}

	breakerCfg := cfg.CircuitBreaker
	breakerCfg.OnStateChange = func(from, to resilience.CircuitState) {
		if to == resilience.CircuitStateOpen {
			logger.Warn("account circuit opened", "from", from)
			return
		}
		logger.Info("account circuit state changed", "from", from, "to", to)
	}

	return &Client{
		http: &fasthttp.Client{
			Name:                "leaguerly-account-client",
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
			MaxIdleConnDuration: 30 * time.Second,
		},
		introspectURL: buildURL(cfg.BaseURL, cfg.IntrospectPath),
		adminKey:      strings.TrimSpace(cfg.AdminKey),
		timeout:       timeout,
		principals:    principals,
		breaker:       breakerCfg.Build(),
		logger:        logger,
	}
}

func (c *Client) VerifyAccessToken(ctx context.Context, token string) (user.Principal, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return user.Principal{}, fmt.Errorf("%w: token is required", usecase.ErrUnauthorized)
	}

	if c.principals == nil {
		return c.verify(ctx, token)
	}

	value, err := c.principals.GetOrLoad(ctx, hashToken(token), func(ctx context.Context) (any, error) {
		return c.verify(ctx, token)
	})
	if err != nil {
		return user.Principal{}, err
	}
	principal, ok := value.(user.Principal)
	if !ok {
		return user.Principal{}, fmt.Errorf("unexpected cached principal type %T", value)
	}
	return principal, nil
}

// BreakerState reports the introspection circuit state, "disabled" when off.
func (c *Client) BreakerState() string {
	if c.breaker == nil {
		return "disabled"
	}
	return string(c.breaker.State())
}

func (c *Client) CacheStats() cache.Stats {
	if c.principals == nil {
		return cache.Stats{}
	}
	return c.principals.Stats()
}

func (c *Client) verify(ctx context.Context, token string) (user.Principal, error) {
	var principal user.Principal
	err := c.breaker.Execute(func() error {
		var err error
		principal, err = c.introspect(ctx, token)
		return err
	}, isCircuitFailure)
	if err == nil {
		return principal, nil
	}

	if crerr.Is(err, resilience.ErrCircuitOpen) {
		c.logger.WarnContext(ctx, "account circuit breaker rejected request", "state", c.BreakerState())
		return user.Principal{}, fmt.Errorf("%w: account service circuit open", usecase.ErrDependencyUnavailable)
	}
	if isCircuitFailure(err) {
		c.logger.WarnContext(ctx, "account introspection failed", "error", err)
		return user.Principal{}, fmt.Errorf("%w: %v", usecase.ErrDependencyUnavailable, err)
	}
	return user.Principal{}, err
}

func (c *Client) introspect(ctx context.Context, token string) (user.Principal, error) {
	if err := ctx.Err(); err != nil {
		return user.Principal{}, err
	}

	body, err := sonic.Marshal(introspectRequest{Token: token})
	if err != nil {
		return user.Principal{}, fmt.Errorf("marshal introspect request: %w", err)
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.introspectURL)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.Header.Set("Accept", "application/json")
	if c.adminKey != "" {
		req.Header.Set("x-admin-key", c.adminKey)
	}
	req.SetBody(body)

	if err := c.http.DoDeadline(req, resp, c.deadline(ctx)); err != nil {
		return user.Principal{}, crerr.Mark(crerr.Wrap(err, "request account introspection"), errAccountTransient)
	}

	status := resp.StatusCode()
	switch {
	case status == fasthttp.StatusUnauthorized:
		return user.Principal{}, fmt.Errorf("%w: introspection denied", usecase.ErrUnauthorized)
	case status == fasthttp.StatusForbidden:
		return user.Principal{}, fmt.Errorf("%w: account service rejected admin key", usecase.ErrDependencyUnavailable)
	case status == fasthttp.StatusTooManyRequests || status >= fasthttp.StatusInternalServerError:
		return user.Principal{}, crerr.Mark(crerr.Newf("account introspection status %d", status), errAccountTransient)
	case status != fasthttp.StatusOK:
		return user.Principal{}, fmt.Errorf("%w: account introspection status %d", usecase.ErrDependencyUnavailable, status)
	}

	var decoded introspectResponse
	if err := sonic.Unmarshal(resp.Body(), &decoded); err != nil {
		return user.Principal{}, fmt.Errorf("%w: decode introspect response: %v", usecase.ErrDependencyUnavailable, err)
	}
	if !decoded.Active {
		return user.Principal{}, fmt.Errorf("%w: inactive token", usecase.ErrUnauthorized)
	}
	if strings.TrimSpace(decoded.UserID) == "" {
		return user.Principal{}, fmt.Errorf("%w: introspect response has empty user_id", usecase.ErrDependencyUnavailable)
	}

	return user.Principal{
		UserID: decoded.UserID,
		Email:  decoded.Email,
		Roles:  decoded.Roles,
	}, nil
}

func (c *Client) deadline(ctx context.Context) time.Time {
	deadline := time.Now().Add(c.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		return ctxDeadline
	}
	return deadline
}

type introspectRequest struct {
	Token string `json:"token"`
}

type introspectResponse struct {
	Active bool     `json:"active"`
	UserID string   `json:"user_id"`
	Email  string   `json:"email"`
	Roles  []string `json:"roles"`
}
