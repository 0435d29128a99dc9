package observability

import (
	"errors"
	"testing"
	"time"

	otellog "go.opentelemetry.io/otel/log"
	"go.uber.org/zap/zapcore"
)

func TestIsHealthCheckRequestLog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		msg  string
		args []any
		want bool
	}{
		{name: "health check", msg: "http request", args: []any{"method", "GET", "path", "/healthz"}, want: true},
		{name: "metrics scrape", msg: "http request", args: []any{"path", "/metrics"}, want: true},
		{name: "standings request", msg: "http request", args: []any{"path", "/v1/standings"}, want: false},
		{name: "other event", msg: "storage ready", args: []any{"path", "/healthz"}, want: false},
	}
	for _, tc := range tests {
		if got := isHealthCheckRequestLog(tc.msg, tc.args); got != tc.want {
			t.Fatalf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestLogAttributes(t *testing.T) {
	t.Parallel()

	attrs := logAttributes([]any{"division_id", int64(2), "route", "GET /v1/standings", "error", errors.New("boom"), "dangling"})
	if len(attrs) != 4 {
		t.Fatalf("expected 4 attributes, got %d", len(attrs))
	}
	if attrs[0].Key != "division_id" || attrs[0].Value.AsInt64() != 2 {
		t.Fatalf("unexpected division_id attribute")
	}
	if attrs[1].Value.AsString() != "GET /v1/standings" {
		t.Fatalf("unexpected route attribute")
	}
	if attrs[2].Value.AsString() != "boom" {
		t.Fatalf("unexpected error attribute")
	}
	if attrs[3].Key != "dangling" || attrs[3].Value.Kind() != otellog.KindEmpty {
		t.Fatalf("unexpected dangling attribute")
	}
}

func TestToLogValue(t *testing.T) {
	t.Parallel()

	m := toLogValue(map[string]any{"hits": uint64(3), "entries": 1}, 0)
	if m.Kind() != otellog.KindMap || len(m.AsMap()) != 2 {
		t.Fatalf("expected map with 2 items, got %s", m.Kind())
	}

	s := toLogValue([]int64{1, 3, 2}, 0)
	if s.Kind() != otellog.KindSlice || len(s.AsSlice()) != 3 {
		t.Fatalf("expected slice with 3 items, got %s", s.Kind())
	}

	if got := toLogValue(1500*time.Millisecond, 0).AsString(); got != "1.5s" {
		t.Fatalf("unexpected duration value: %q", got)
	}

	var nilPtr *int
	if toLogValue(nilPtr, 0).Kind() != otellog.KindEmpty {
		t.Fatalf("expected empty value for nil pointer")
	}
}

func TestToOTelSeverity(t *testing.T) {
	t.Parallel()

	if toOTelSeverity(zapcore.WarnLevel) != otellog.SeverityWarn {
		t.Fatalf("unexpected warn severity")
	}
	if toOTelSeverity(zapcore.ErrorLevel) != otellog.SeverityError {
		t.Fatalf("unexpected error severity")
	}
}
