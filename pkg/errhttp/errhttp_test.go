package errhttp

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ghuser/storefront/pkg/apperr"
	"github.com/ghuser/storefront/pkg/config"
	"github.com/ghuser/storefront/pkg/logger"
)

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	return body
}

func TestWriteError_StatusCodes(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"validation", apperr.Validation("Email already exists"), http.StatusBadRequest, "Email already exists"},
		{"not found", apperr.NotFound("Item 7 not found"), http.StatusNotFound, "Item 7 not found"},
		{"not found default message", apperr.NotFound(""), http.StatusNotFound, "Resource not found"},
		{"unauthorized", apperr.Unauthorized(""), http.StatusUnauthorized, "Unauthorized"},
		{"base with status", apperr.New("Gone", http.StatusGone), http.StatusGone, "Gone"},
		{"base default status", apperr.New("boom", 0), http.StatusInternalServerError, "boom"},
		{"wrapped not found", fmt.Errorf("get item: %w", apperr.NotFound("Item 3 not found")), http.StatusNotFound, "Item 3 not found"},
		{"unknown error", errors.New("something unexpected"), http.StatusInternalServerError, "Internal server error"},
		{"generic wrapped error", fmt.Errorf("context: %w", errors.New("db down")), http.StatusInternalServerError, "Internal server error"},
		{"non-operational apperr", &apperr.Error{Kind: apperr.KindValidation, Message: "secret", StatusCode: 400}, http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/api/items/1", http.NoBody)
			WriteError(w, r, logger.Discard(), tt.err)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
			body := decode(t, w)
			if body["status"] != "error" {
				t.Errorf("status field: got %q, want error", body["status"])
			}
			if body["message"] != tt.wantMessage {
				t.Errorf("message: got %q, want %q", body["message"], tt.wantMessage)
			}
		})
	}
}

func TestWriteError_LogsUnexpectedOnly(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, &config.Config{LogLevel: "debug", Environment: config.EnvDevelopment})
	r := httptest.NewRequest(http.MethodPost, "/api/users", http.NoBody)

	WriteError(httptest.NewRecorder(), r, log, apperr.Validation("bad input"))
	if buf.Len() != 0 {
		t.Fatalf("operational errors must not be logged, got %q", buf.String())
	}

	WriteError(httptest.NewRecorder(), r, log, errors.New("nil map write"))
	out := buf.String()
	for _, want := range []string{"unhandled error", "nil map write", "/api/users"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q: %s", want, out)
		}
	}
}

func TestWriteError_ContentType(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, httptest.NewRequest(http.MethodGet, "/", http.NoBody), logger.Discard(), apperr.NotFound(""))

	if ct := w.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Fatalf("unexpected Content-Type %q", ct)
	}
}

func TestNotFound(t *testing.T) {
	w := httptest.NewRecorder()
	NotFound(w, httptest.NewRequest(http.MethodGet, "/nope", http.NoBody))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if body := decode(t, w); body["message"] != NotFoundMessage || body["status"] != "error" {
		t.Errorf("unexpected body: %v", body)
	}
}
