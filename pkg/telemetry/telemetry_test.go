package telemetry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/ghuser/storefront/pkg/config"
)

func baseConfig() *config.Config {
	return &config.Config{
		ServiceName:    "test-service",
		ServiceVersion: "test",
		Environment:    config.EnvTest,
		OtelEndpoint:   "", // disabled
	}
}

func TestSetup_NoOtelEndpoint(t *testing.T) {
	shutdown, handler, err := Setup(context.Background(), baseConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if shutdown == nil {
		t.Fatal("expected non-nil shutdown")
	}
	if handler == nil {
		t.Fatal("expected non-nil metrics handler")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_MetricsHandlerServesPrometheusFormat(t *testing.T) {
	_, handler, err := Setup(context.Background(), baseConfig())
	if err != nil {
		t.Fatalf("setup: %v", err)
	}

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/metrics", http.NoBody))

	if rr.Code != 200 {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	ct := rr.Header().Get("Content-Type")
	if !strings.Contains(ct, "text/plain") {
		t.Errorf("expected text/plain content-type, got %q", ct)
	}
}

func TestSetup_MetricsExposeOTelInstruments(t *testing.T) {
	shutdown, handler, err := Setup(context.Background(), baseConfig())
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	defer shutdown(context.Background()) //nolint:errcheck

	counter, err := otel.Meter("telemetry-test").Int64Counter("storefront.test.hits")
	if err != nil {
		t.Fatalf("counter: %v", err)
	}
	counter.Add(context.Background(), 2)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/metrics", http.NoBody))

	body := rr.Body.String()
	if !strings.Contains(body, "storefront_test_hits") && !strings.Contains(body, "storefront.test.hits") {
		t.Errorf("expected OTel counter in exposition, got:\n%s", body)
	}
	if !strings.Contains(body, "go_goroutines") {
		t.Error("expected Go runtime collector metrics")
	}
}

func TestSetupSentry_EmptyDSNIsNoop(t *testing.T) {
	if err := SetupSentry(baseConfig()); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestTracesSampleRate(t *testing.T) {
	if got := tracesSampleRate(&config.Config{Environment: config.EnvProduction}); got != 0.2 {
		t.Errorf("production: got %v, want 0.2", got)
	}
	if got := tracesSampleRate(&config.Config{Environment: config.EnvDevelopment}); got != 1.0 {
		t.Errorf("development: got %v, want 1.0", got)
	}
}

func TestNewResource_DescribesService(t *testing.T) {
	cfg := baseConfig()
	cfg.ServiceVersion = "2.3.4"
	res, err := newResource(context.Background(), cfg)
	if err != nil {
		t.Fatalf("resource: %v", err)
	}

	want := map[attribute.Key]string{
		"service.namespace":      "storefront",
		"service.name":           "test-service",
		"service.version":        "2.3.4",
		"deployment.environment": config.EnvTest,
	}
	set := res.Set()
	for key, value := range want {
		got, ok := set.Value(key)
		if !ok {
			t.Errorf("missing resource attribute %s", key)
			continue
		}
		if got.AsString() != value {
			t.Errorf("%s: got %q, want %q", key, got.AsString(), value)
		}
	}
}

func TestSetup_InstallsTraceContextPropagator(t *testing.T) {
	shutdown, _, err := Setup(context.Background(), baseConfig())
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	defer shutdown(context.Background()) //nolint:errcheck

	fields := strings.Join(otel.GetTextMapPropagator().Fields(), ",")
	for _, want := range []string{"traceparent", "baggage"} {
		if !strings.Contains(fields, want) {
			t.Errorf("propagator fields %q missing %q", fields, want)
		}
	}
}

func TestSetup_MetricsExposeServiceTarget(t *testing.T) {
	shutdown, handler, err := Setup(context.Background(), baseConfig())
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	defer shutdown(context.Background()) //nolint:errcheck

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/metrics", http.NoBody))

	body := rr.Body.String()
	if !strings.Contains(body, `service_namespace="storefront"`) {
		t.Errorf("expected service namespace on target_info, got:\n%s", body)
	}
	if !strings.Contains(body, "storefront_process_") {
		t.Error("expected namespaced process collector metrics")
	}
}
