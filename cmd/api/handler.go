package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/ghuser/storefront/docs/swagger"
	"github.com/ghuser/storefront/pkg/app"
	"github.com/ghuser/storefront/pkg/errhttp"
	"github.com/ghuser/storefront/pkg/httpx"
	"github.com/ghuser/storefront/pkg/logger"
	"github.com/ghuser/storefront/pkg/telemetry"
	itemApi "github.com/ghuser/storefront/services/item/application/api"
	userApi "github.com/ghuser/storefront/services/user/application/api"
)

// newHandler builds the full HTTP surface. metrics may be nil.
func newHandler(a *app.Application, metrics http.Handler, startedAt time.Time) *chi.Mux {
	cfg := a.Config
	r := httpx.NewRouter(
		httpx.ServerConfig{
			ServiceName:        cfg.ServiceName,
			IsDevelopment:      !cfg.IsProduction(),
			CORSAllowedOrigins: cfg.CORSOrigin,
			RateLimitRequests:  cfg.RateLimitRequests,
			RateLimitWindow:    cfg.RateLimitWindow,
			BodyLimitBytes:     cfg.BodyLimitBytes,
		},
		logger.Middleware(a.Logger),
		logger.Recovery(a.Logger),
		telemetry.SentryMiddleware(),
		otelhttp.NewMiddleware(cfg.ServiceName),
	)

	// Set before mounting so sub-routers inherit them.
	r.NotFound(errhttp.NotFound)
	r.MethodNotAllowed(errhttp.NotFound)

	checks := httpx.HealthChecks{}
	if a.EventBus != nil {
		checks["event_bus"] = a.EventBus
	}
	r.Get("/health", httpx.HealthHandler(httpx.HealthInfo{Version: cfg.ServiceVersion, StartedAt: startedAt}))
	r.Get("/health/live", httpx.LiveHandler)
	r.Get("/health/ready", httpx.ReadyHandler(checks))

	if metrics != nil {
		r.Get("/metrics", metrics.ServeHTTP)
	}
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Route("/api", func(r chi.Router) {
		registerRoutes(r, a)
	})
	return r
}

// registerRoutes mounts all service routes under /api.
// Add new services here.
func registerRoutes(r chi.Router, a *app.Application) {
	itemApi.ItemRoutes(r, a)
	userApi.UserRoutes(r, a)
}
