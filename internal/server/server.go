// Package server exposes the bot's operational HTTP surface: health probes,
// Prometheus metrics and a small read-only view of the reset tracker.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/resetbot/internal/handler"
	"github.com/osse101/resetbot/internal/logger"
	"github.com/osse101/resetbot/internal/metrics"
)

// Tracker is the read-only view of the reset tracker served over HTTP.
type Tracker interface {
	handler.CountdownReporter
	handler.StatusReporter
}

// Config wires the server to the rest of the bot.
type Config struct {
	Addr    string
	Version string
	Tracker Tracker
	Bot     handler.BotHealthReporter
	// Checks run on /readyz, keyed by component name.
	Checks map[string]handler.HealthChecker
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(cfg Config) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.Addr,
			Handler:           NewRouter(cfg),
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}
}

// NewRouter builds the chi router. Exposed for tests.
func NewRouter(cfg Config) http.Handler {
	r := chi.NewRouter()

	r.Use(SecurityHeadersMiddleware())
	r.Use(RequestSizeLimitMiddleware(maxRequestBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(cfg.Checks))
	r.Get("/version", handler.HandleVersion(cfg.Version))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		if cfg.Tracker != nil {
			r.Get("/reset", handler.HandleGetReset(cfg.Tracker))
			r.Get("/users/{userID}/status", handler.HandleGetUserStatus(cfg.Tracker, func(r *http.Request) string {
				return chi.URLParam(r, "userID")
			}))
		}
		if cfg.Bot != nil {
			r.Get("/bot", handler.HandleBotHealth(cfg.Bot))
		}
	})

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, p := range quietPaths {
			if strings.HasPrefix(r.URL.Path, p) {
				next.ServeHTTP(w, r)
				return
			}
		}

		start := time.Now()
		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		logger.FromContext(ctx).Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"remote_addr", r.RemoteAddr,
			"duration_ms", duration.Milliseconds())
	})
}

// Start serves until Stop is called. It returns nil after a clean Stop.
func (s *Server) Start() error {
	slog.Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
