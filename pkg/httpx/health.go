package httpx

import (
	"context"
	"math"
	"net/http"
	"runtime"
	"sort"
	"time"
)

// HealthChecker is satisfied by any infrastructure dependency that exposes
// a Ping method (the EventBus qualifies).
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// HealthChecks maps a dependency name to its readiness probe.
type HealthChecks map[string]HealthChecker

// HealthInfo is the static part of the /health payload.
type HealthInfo struct {
	Version   string
	StartedAt time.Time
}

type memoryStats struct {
	Used  int64 `json:"used"`
	Total int64 `json:"total"`
}

type healthResponse struct {
	Status    string      `json:"status"`
	Timestamp string      `json:"timestamp"`
	Uptime    float64     `json:"uptime"`
	Version   string      `json:"version"`
	Memory    memoryStats `json:"memory"`
}

type statusResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// HealthHandler reports process health: uptime in seconds and heap usage in MB.
func HealthHandler(info HealthInfo) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		var ms runtime.MemStats
		runtime.ReadMemStats(&ms)

		now := time.Now()
		JSON(w, http.StatusOK, healthResponse{
			Status:    "healthy",
			Timestamp: now.UTC().Format("2006-01-02T15:04:05.000Z07:00"),
			Uptime:    now.Sub(info.StartedAt).Seconds(),
			Version:   info.Version,
			Memory: memoryStats{
				Used:  toMegabytes(ms.HeapAlloc),
				Total: toMegabytes(ms.HeapSys),
			},
		})
	}
}

// LiveHandler answers the liveness probe.
func LiveHandler(w http.ResponseWriter, _ *http.Request) {
	JSON(w, http.StatusOK, statusResponse{Status: "alive"})
}

// ReadyHandler returns an http.HandlerFunc that probes all registered
// HealthCheckers and reports 503 with the failing names if any of them fail.
func ReadyHandler(checks HealthChecks) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		names := make([]string, 0, len(checks))
		for name := range checks {
			names = append(names, name)
		}
		sort.Strings(names)

		failed := map[string]string{}
		for _, name := range names {
			if err := checks[name].Ping(ctx); err != nil {
				failed[name] = "unreachable"
			}
		}

		if len(failed) > 0 {
			JSON(w, http.StatusServiceUnavailable, statusResponse{Status: "not ready", Checks: failed})
			return
		}
		JSON(w, http.StatusOK, statusResponse{Status: "ready"})
	}
}

func toMegabytes(b uint64) int64 {
	return int64(math.Round(float64(b) / 1024 / 1024))
}
