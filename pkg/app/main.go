package app

import (
	"time"

	"github.com/ghuser/storefront/pkg/config"
	"github.com/ghuser/storefront/pkg/events"
	"github.com/ghuser/storefront/pkg/logger"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to all service <Resource>Routes calls during server initialization.
//
// Logging: app.Logger is backed by a trace-aware handler; use slog's context methods
// and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "record created", "record_id", id)
//	app.Logger.ErrorContext(ctx, "publish failed", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Config   *config.Config
	Logger   logger.Logger
	EventBus *events.EventBus
	// Now is the clock used to stamp records; nil means time.Now.
	Now func() time.Time
}

// Clock returns a.Now, falling back to time.Now.
func (a *Application) Clock() func() time.Time {
	if a.Now == nil {
		return time.Now
	}
	return a.Now
}
