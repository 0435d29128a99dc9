package usecase

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var usecaseTracer = otel.Tracer("leaguerly/internal/usecase")

// startUsecaseSpan opens a child span only under a live request span.
func startUsecaseSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if name == "" || !trace.SpanContextFromContext(ctx).IsValid() {
		return ctx, trace.SpanFromContext(context.Background())
	}
	return usecaseTracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// endUsecaseSpan marks span as failed for dependency and internal errors.
// Caller mistakes (invalid input, not found, auth) are recorded as events.
func endUsecaseSpan(span trace.Span, err error) {
	defer span.End()
	if err == nil {
		return
	}
	span.RecordError(err)
	if isCallerError(err) {
		return
	}
	span.SetStatus(codes.Error, err.Error())
}

func isCallerError(err error) bool {
	for _, target := range []error{ErrInvalidInput, ErrNotFound, ErrUnauthorized, ErrForbidden, ErrConflict} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func divisionAttr(id int64) attribute.KeyValue {
	return attribute.Int64("leaguerly.division_id", id)
}

func gameAttr(id int64) attribute.KeyValue {
	return attribute.Int64("leaguerly.game_id", id)
}
