package httpx

import (
	"encoding/json"
	"net/http"
)

// InternalErrorMessage is the only message clients see for unexpected failures.
const InternalErrorMessage = "Internal server error"

// ErrorBody is the envelope written for every failed request.
type ErrorBody struct {
	Status  string `json:"status" example:"error"`
	Message string `json:"message" example:"Item 42 not found"`
} // @name ErrorBody

// DataBody is the envelope for single-record responses.
type DataBody[T any] struct {
	Data T `json:"data"`
}

// ListBody is the envelope for collection responses.
type ListBody[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

// JSON writes v as JSON with the given status code. Content-Type and
// X-Content-Type-Options headers are set automatically. Encoding errors are
// silently discarded; use this for handler responses, not for streaming.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// JSONError writes the standard {"status":"error","message":...} envelope.
func JSONError(w http.ResponseWriter, status int, message string) {
	JSON(w, status, ErrorBody{Status: "error", Message: message})
}

// Data writes {"data": v}.
func Data[T any](w http.ResponseWriter, status int, v T) {
	JSON(w, status, DataBody[T]{Data: v})
}

// List writes {"data": items, "total": len(items)}. A nil slice is sent as [].
func List[T any](w http.ResponseWriter, items []T) {
	if items == nil {
		items = []T{}
	}
	JSON(w, http.StatusOK, ListBody[T]{Data: items, Total: len(items)})
}

// NoContent writes an empty 204 response.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
