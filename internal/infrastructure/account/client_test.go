package account

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/leaguerly/internal/platform/logging"
	"github.com/riskibarqy/leaguerly/internal/platform/resilience"
	"github.com/riskibarqy/leaguerly/internal/usecase"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newTestClient(baseURL string, adminKey string, cacheTTL time.Duration, breaker resilience.CircuitBreakerConfig) *Client {
	return NewClient(ClientConfig{
		BaseURL:        baseURL,
		IntrospectPath: "/v1/auth/introspect",
		AdminKey:       adminKey,
		Timeout:        2 * time.Second,
		CacheTTL:       cacheTTL,
		CircuitBreaker: breaker,
		Logger:         logging.NewNop(),
	})
}

func writeJSON(w http.ResponseWriter, payload any) {
	body, _ := sonic.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(body)
}

func TestClientVerifyAccessToken_SendsAdminKeyAndParsesResponse(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method: %s", r.Method)
		}
		if r.URL.Path != "/v1/auth/introspect" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("x-admin-key"); got != "admin-secret" {
			t.Errorf("unexpected x-admin-key: %s", got)
		}

		var req map[string]string
		if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		if req["token"] != "token-abc" {
			t.Errorf("unexpected token value: %s", req["token"])
		}

		writeJSON(w, map[string]any{
			"active":  true,
			"user_id": "user-123",
			"email":   "ref@example.com",
			"roles":   []string{"admin", "viewer"},
		})
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, "admin-secret", 0, resilience.CircuitBreakerConfig{})

	principal, err := client.VerifyAccessToken(context.Background(), "token-abc")
	if err != nil {
		t.Fatalf("verify token failed: %v", err)
	}
	if principal.UserID != "user-123" {
		t.Fatalf("unexpected user id: %s", principal.UserID)
	}
	if principal.Email != "ref@example.com" {
		t.Fatalf("unexpected email: %s", principal.Email)
	}
	if !principal.HasRole("admin") {
		t.Fatalf("expected admin role, got %v", principal.Roles)
	}
}

func TestClientVerifyAccessToken_EmptyToken(t *testing.T) {
	t.Parallel()

	client := newTestClient("http://127.0.0.1:1", "", 0, resilience.CircuitBreakerConfig{})
	_, err := client.VerifyAccessToken(context.Background(), "  ")
	if !errors.Is(err, usecase.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestClientVerifyAccessToken_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		payload any
		want    error
	}{
		{name: "inactive token", status: http.StatusOK, payload: map[string]any{"active": false}, want: usecase.ErrUnauthorized},
		{name: "token rejected", status: http.StatusUnauthorized, want: usecase.ErrUnauthorized},
		{name: "admin key rejected", status: http.StatusForbidden, want: usecase.ErrDependencyUnavailable},
		{name: "server error", status: http.StatusBadGateway, want: usecase.ErrDependencyUnavailable},
		{name: "missing user id", status: http.StatusOK, payload: map[string]any{"active": true}, want: usecase.ErrDependencyUnavailable},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tc.payload == nil {
					w.WriteHeader(tc.status)
					_, _ = w.Write([]byte(`{"error":"nope"}`))
					return
				}
				writeJSON(w, tc.payload)
			}))
			defer srv.Close()

			client := newTestClient(srv.URL, "admin-secret", 0, resilience.CircuitBreakerConfig{})
			_, err := client.VerifyAccessToken(context.Background(), "token-abc")
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestClientVerifyAccessToken_UsesPrincipalCache(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeJSON(w, map[string]any{"active": true, "user_id": "user-cache"})
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, "admin-secret", time.Minute, resilience.CircuitBreakerConfig{})

	for i := 0; i < 2; i++ {
		principal, err := client.VerifyAccessToken(context.Background(), "cached-token")
		if err != nil {
			t.Fatalf("verify token failed: %v", err)
		}
		if principal.UserID != "user-cache" {
			t.Fatalf("unexpected user id: %s", principal.UserID)
		}
	}

	if calls.Load() != 1 {
		t.Fatalf("expected one introspection call with cache, got %d", calls.Load())
	}
	if stats := client.CacheStats(); stats.Entries != 1 || stats.Hits != 1 {
		t.Fatalf("unexpected cache stats: %+v", stats)
	}
}

func TestClientVerifyAccessToken_DoesNotCacheRejections(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeJSON(w, map[string]any{"active": false})
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, "admin-secret", time.Minute, resilience.CircuitBreakerConfig{})
	for i := 0; i < 2; i++ {
		if _, err := client.VerifyAccessToken(context.Background(), "bad-token"); !errors.Is(err, usecase.ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	}
	if calls.Load() != 2 {
		t.Fatalf("expected rejected token to be introspected twice, got %d", calls.Load())
	}
}

func TestClientVerifyAccessToken_CircuitOpensOnTransientFailures(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	core, logs := observer.New(zapcore.InfoLevel)
	client := NewClient(ClientConfig{
		BaseURL:        srv.URL,
		IntrospectPath: "/v1/auth/introspect",
		AdminKey:       "admin-secret",
		Timeout:        2 * time.Second,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 1,
			OpenTimeout:      time.Minute,
			HalfOpenMaxReq:   1,
		},
		Logger: logging.FromZap(zap.New(core)),
	})

	for i := 0; i < 3; i++ {
		_, err := client.VerifyAccessToken(context.Background(), "token-abc")
		if !errors.Is(err, usecase.ErrDependencyUnavailable) {
			t.Fatalf("attempt %d: expected ErrDependencyUnavailable, got %v", i, err)
		}
	}
	if calls.Load() != 1 {
		t.Fatalf("expected breaker to stop calls after first failure, got %d", calls.Load())
	}
	if state := client.BreakerState(); state != string(resilience.CircuitStateOpen) {
		t.Fatalf("expected open breaker, got %s", state)
	}
	if n := logs.FilterMessage("account circuit opened").Len(); n != 1 {
		t.Fatalf("expected one circuit opened log, got %d", n)
	}
}

func TestClientVerifyAccessToken_UnauthorizedDoesNotTripBreaker(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, "", 0, resilience.CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 1,
		OpenTimeout:      time.Minute,
		HalfOpenMaxReq:   1,
	})
	for i := 0; i < 2; i++ {
		if _, err := client.VerifyAccessToken(context.Background(), "token-abc"); !errors.Is(err, usecase.ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	}
	if state := client.BreakerState(); state != string(resilience.CircuitStateClosed) {
		t.Fatalf("expected closed breaker, got %s", state)
	}
}

func TestBuildURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		base, path, want string
	}{
		{base: "https://accounts.example.com/", path: "v1/auth/introspect", want: "https://accounts.example.com/v1/auth/introspect"},
		{base: "https://accounts.example.com", path: "", want: "https://accounts.example.com"},
		{base: "https://ignored", path: "https://override.example.com/x", want: "https://override.example.com/x"},
	}
	for _, tc := range tests {
		if got := buildURL(tc.base, tc.path); got != tc.want {
			t.Fatalf("buildURL(%q, %q) = %q, want %q", tc.base, tc.path, got, tc.want)
		}
	}
}

func TestHashToken(t *testing.T) {
	t.Parallel()

	key := hashToken("secret-token")
	if strings.Contains(key, "secret-token") {
		t.Fatalf("hashed key leaks token: %s", key)
	}
	if key != hashToken("secret-token") {
		t.Fatalf("hash must be stable")
	}
}
