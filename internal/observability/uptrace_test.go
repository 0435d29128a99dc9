package observability

import (
	"context"
	"testing"

	"github.com/riskibarqy/leaguerly/internal/config"
	"github.com/riskibarqy/leaguerly/internal/platform/logging"
)

func TestInitUptrace_Disabled(t *testing.T) {
	tests := []config.Config{
		{UptraceEnabled: false, ServiceName: "leaguerly-api", ServiceVersion: "dev", AppEnv: config.EnvDev},
		{UptraceEnabled: true, UptraceDSN: "  ", ServiceName: "leaguerly-api", ServiceVersion: "dev", AppEnv: config.EnvDev},
	}

	for _, cfg := range tests {
		shutdown, err := InitUptrace(cfg, logging.NewNop())
		if err != nil {
			t.Fatalf("init uptrace: %v", err)
		}
		if err := shutdown(context.Background()); err != nil {
			t.Fatalf("shutdown uptrace: %v", err)
		}
	}
}

func TestInitPyroscope_Disabled(t *testing.T) {
	stop, err := InitPyroscope(config.Config{PyroscopeEnabled: false}, nil)
	if err != nil {
		t.Fatalf("init pyroscope: %v", err)
	}
	if err := stop(); err != nil {
		t.Fatalf("stop pyroscope: %v", err)
	}
}

func TestStartPprofServer_Disabled(t *testing.T) {
	srv, err := StartPprofServer(config.Config{PprofEnabled: false}, logging.NewNop())
	if err != nil {
		t.Fatalf("start pprof: %v", err)
	}
	if srv != nil {
		t.Fatalf("expected no pprof server when disabled")
	}
	if err := StopPprofServer(srv, nil, 0); err != nil {
		t.Fatalf("stop nil pprof server: %v", err)
	}
}
