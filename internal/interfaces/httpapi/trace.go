package httpapi

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const handlerSpanPrefix = "httpapi.Handler."

var (
	apiTracer = otel.Tracer("leaguerly/internal/interfaces/httpapi")
	noopSpan  = trace.SpanFromContext(context.Background())
)

// startSpan opens handler spans under the otelhttp request span. Middleware
// and helper names get a no-op span, as do requests on filtered routes like
// /healthz that carry no parent.
func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	if !shouldCreateHTTPAPISpan(name) || !trace.SpanContextFromContext(ctx).IsValid() {
		return ctx, noopSpan
	}
	return apiTracer.Start(ctx, name, trace.WithAttributes(spanAttributes(ctx)...))
}

func shouldCreateHTTPAPISpan(name string) bool {
	return strings.HasPrefix(name, handlerSpanPrefix) && len(name) > len(handlerSpanPrefix)
}

// spanAttributes tags handler spans with the request id and, on admin
// routes, the calling user.
func spanAttributes(ctx context.Context) []attribute.KeyValue {
	var attrs []attribute.KeyValue
	if id := requestIDFromContext(ctx); id != "" {
		attrs = append(attrs, attribute.String("leaguerly.request_id", id))
	}
	if p, ok := principalFromContext(ctx); ok && p.UserID != "" {
		attrs = append(attrs, attribute.String("enduser.id", p.UserID))
	}
	return attrs
}
