package observability

import (
	"context"
	"errors"
	"testing"

	"github.com/skillsenselab/authkit/logger"
)

func testLogger() *logger.Logger {
	return logger.NewDefault("observability-test")
}

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults("authkit", "1.2.3", "development")
	if cfg.Endpoint != "localhost:4318" {
		t.Errorf("expected default endpoint, got %q", cfg.Endpoint)
	}
	if cfg.SampleRate != 1.0 {
		t.Errorf("expected sample rate 1.0, got %v", cfg.SampleRate)
	}
	if !cfg.Insecure {
		t.Error("expected insecure export outside production")
	}
	if cfg.ServiceName != "authkit" || cfg.ServiceVersion != "1.2.3" {
		t.Errorf("service identity not stamped: %+v", cfg)
	}
}

func TestInit_Disabled(t *testing.T) {
	tp, err := Init(context.Background(), Config{Enabled: false}, testLogger())
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if tp != nil {
		t.Error("expected nil provider when disabled")
	}
}

func TestStartSpan(t *testing.T) {
	ctx, span := StartSpan(context.Background(), SpanLogin)
	if span == nil {
		t.Fatal("expected a span (no-op without a provider)")
	}
	defer span.End()

	// No-op span: these must not panic.
	SetSpanAttribute(ctx, "user.id", "abc")
	SetSpanAttribute(ctx, "attempt", 2)
	SetSpanError(ctx, errors.New("boom"))
}

func TestServiceHealth_Aggregation(t *testing.T) {
	sh := NewServiceHealth("authkit", "1.0.0")
	if sh.Status != HealthStatusUp {
		t.Fatalf("expected up, got %q", sh.Status)
	}

	sh.AddComponent(Health{Name: "database", Status: HealthStatusUp})
	if sh.Status != HealthStatusUp {
		t.Errorf("expected up, got %q", sh.Status)
	}

	sh.AddComponent(Health{Name: "cache", Status: HealthStatusDegraded})
	if sh.Status != HealthStatusDegraded {
		t.Errorf("expected degraded, got %q", sh.Status)
	}

	sh.AddComponent(Health{Name: "database", Status: HealthStatusDown, Message: "connection refused"})
	if sh.Status != HealthStatusDown {
		t.Errorf("expected down, got %q", sh.Status)
	}

	// Degraded never upgrades an already-down service.
	sh.AddComponent(Health{Name: "cache", Status: HealthStatusDegraded})
	if sh.Status != HealthStatusDown {
		t.Errorf("expected down to stick, got %q", sh.Status)
	}
}

func TestHealthCheckFunc(t *testing.T) {
	checker := HealthCheckFunc(func(ctx context.Context) Health {
		return Health{Name: "database", Status: HealthStatusUp}
	})
	h := checker.CheckHealth(context.Background())
	if h.Status != HealthStatusUp {
		t.Errorf("expected up, got %q", h.Status)
	}
}
