package httpapi

import (
	"context"

	"github.com/riskibarqy/leaguerly/internal/domain/user"
	"github.com/riskibarqy/leaguerly/internal/platform/logging"
)

type contextKey string

const principalContextKey contextKey = "auth_principal"

func withPrincipal(ctx context.Context, p user.Principal) context.Context {
	return context.WithValue(ctx, principalContextKey, p)
}

func principalFromContext(ctx context.Context) (user.Principal, bool) {
	p, ok := ctx.Value(principalContextKey).(user.Principal)
	return p, ok
}

func withRequestID(ctx context.Context, requestID string) context.Context {
	return logging.WithRequestID(ctx, requestID)
}

func requestIDFromContext(ctx context.Context) string {
	return logging.RequestIDFromContext(ctx)
}
