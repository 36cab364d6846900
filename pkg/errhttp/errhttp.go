// Package errhttp is the terminal stage that turns a handler error into the
// {"status":"error","message":...} envelope.
package errhttp

import (
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ghuser/storefront/pkg/apperr"
	"github.com/ghuser/storefront/pkg/httpx"
	"github.com/ghuser/storefront/pkg/logger"
)

// NotFoundMessage is sent for any request that matches no route.
const NotFoundMessage = "Not Found"

// WriteError writes err to w. Operational *apperr.Error values (also when
// wrapped) are sent verbatim at their status code. Anything else is logged,
// reported to Sentry when a hub is attached to the request, and answered with
// a generic 500 so no internal detail reaches the client.
func WriteError(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	if ae, ok := apperr.As(err); ok && ae.Operational {
		httpx.JSONError(w, status(ae), ae.Message)
		return
	}

	ctx := r.Context()
	log.ErrorContext(ctx, "unhandled error",
		"error", err,
		"method", r.Method,
		"path", r.URL.Path,
		"request_id", middleware.GetReqID(ctx),
	)
	if hub := sentry.GetHubFromContext(ctx); hub != nil {
		hub.CaptureException(err)
	}
	httpx.JSONError(w, http.StatusInternalServerError, httpx.InternalErrorMessage)
}

// NotFound answers unmatched routes and unmatched methods alike.
func NotFound(w http.ResponseWriter, _ *http.Request) {
	httpx.JSONError(w, http.StatusNotFound, NotFoundMessage)
}

func status(ae *apperr.Error) int {
	switch ae.Kind {
	case apperr.KindValidation:
		return http.StatusBadRequest
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindUnauthorized:
		return http.StatusUnauthorized
	case apperr.KindInternal:
		if ae.StatusCode != 0 {
			return ae.StatusCode
		}
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
