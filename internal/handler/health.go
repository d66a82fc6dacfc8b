package handler

import (
	"context"
	"log/slog"
	"maps"
	"net/http"
	"slices"
)

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthChecker defines the interface for components that can report health
type HealthChecker interface {
	CheckHealth(ctx context.Context) error
}

// HealthCheckFunc adapts a function to HealthChecker.
type HealthCheckFunc func(ctx context.Context) error

func (f HealthCheckFunc) CheckHealth(ctx context.Context) error {
	return f(ctx)
}

// HandleHealthz provides a basic liveness check
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: StatusOK})
	}
}

// HandleReadyz runs every named check and reports the first failure, in name
// order, with a 503.
func HandleReadyz(checks map[string]HealthChecker) http.HandlerFunc {
	names := slices.Sorted(maps.Keys(checks))

	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		for _, name := range names {
			if err := checks[name].CheckHealth(ctx); err != nil {
				slog.Error(LogMsgReadinessFailed, "check", name, "error", err)
				respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
					Status:  StatusUnavailable,
					Message: name + " unavailable",
				})
				return
			}
		}

		respondJSON(w, http.StatusOK, HealthResponse{Status: StatusOK})
	}
}
