package logging

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]Level{
		"debug":   LevelDebug,
		" WARN ":  LevelWarn,
		"warning": LevelWarn,
		"error":   LevelError,
		"info":    LevelInfo,
		"":        LevelInfo,
		"verbose": LevelInfo,
	}
	for raw, want := range tests {
		if got := ParseLevel(raw); got != want {
			t.Fatalf("ParseLevel(%q)=%s, want %s", raw, got, want)
		}
	}
}

func TestLogger_InfoContextAddsTraceFields(t *testing.T) {
	core, logs := observer.New(LevelDebug)
	logger := FromZap(zap.New(core))

	traceID, _ := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	spanID, _ := trace.SpanIDFromHex("00f067aa0ba902b7")
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	}))

	logger.InfoContext(ctx, "standings computed", "division_id", int64(1), "error", errors.New("boom"))

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["trace_id"] != traceID.String() {
		t.Fatalf("unexpected trace_id: %v", fields["trace_id"])
	}
	if fields["span_id"] != spanID.String() {
		t.Fatalf("unexpected span_id: %v", fields["span_id"])
	}
	if fields["division_id"] != int64(1) {
		t.Fatalf("unexpected division_id: %v", fields["division_id"])
	}
	if fields["error"] != "boom" {
		t.Fatalf("unexpected error field: %v", fields["error"])
	}
}

func TestLogger_MirrorReceivesEnabledRecordsOnly(t *testing.T) {
	core, _ := observer.New(LevelInfo)
	logger := FromZap(zap.New(core))

	var got []string
	SetMirror(func(_ context.Context, _ Level, msg string, _ ...any) {
		got = append(got, msg)
	})
	t.Cleanup(func() { SetMirror(nil) })

	logger.Debug("dropped")
	logger.Info("kept")
	logger.WarnContext(context.Background(), "kept too")

	if len(got) != 2 || got[0] != "kept" || got[1] != "kept too" {
		t.Fatalf("unexpected mirrored messages: %v", got)
	}

	SetMirror(nil)
	logger.Info("after reset")
	if len(got) != 2 {
		t.Fatalf("expected mirror to be removed, got %v", got)
	}
}

func TestLogger_NilIsSafe(t *testing.T) {
	t.Parallel()

	var logger *Logger
	logger.Info("nil logger")
	if logger.With("k", "v") == nil {
		t.Fatalf("expected non-nil logger from nil With")
	}
	if err := logger.Sync(); err != nil {
		t.Fatalf("sync nil logger: %v", err)
	}
}

func TestLogger_ContextCarriesRequestID(t *testing.T) {
	core, logs := observer.New(LevelDebug)
	logger := FromZap(zap.New(core))

	var mirrored [][]any
	SetMirror(func(_ context.Context, _ Level, _ string, args ...any) {
		mirrored = append(mirrored, args)
	})
	t.Cleanup(func() { SetMirror(nil) })

	ctx := WithRequestID(context.Background(), "req-7")
	if got := RequestIDFromContext(ctx); got != "req-7" {
		t.Fatalf("RequestIDFromContext=%q", got)
	}

	args := make([]any, 2, 4)
	args[0], args[1] = "division_id", int64(1)
	logger.DebugContext(ctx, "standings computed", args...)
	logger.Info("no context")

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["request_id"]; got != "req-7" {
		t.Fatalf("unexpected request_id: %v", got)
	}
	if _, ok := entries[1].ContextMap()["request_id"]; ok {
		t.Fatalf("request_id must only come from context")
	}
	if len(mirrored) != 2 || len(mirrored[0]) != 4 || mirrored[0][2] != "request_id" || mirrored[0][3] != "req-7" {
		t.Fatalf("unexpected mirrored args: %v", mirrored)
	}
	if spare := args[:4]; spare[2] != nil {
		t.Fatalf("caller args backing array was modified: %v", spare)
	}
}
