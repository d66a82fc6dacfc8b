package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/resetbot/internal/dailies"
	"github.com/osse101/resetbot/internal/discord"
	"github.com/osse101/resetbot/internal/handler"
	"github.com/osse101/resetbot/internal/resetclock"
)

type stubTracker struct{}

func (stubTracker) Countdown() dailies.CountdownReport {
	now := time.Date(2024, 6, 4, 1, 47, 15, 0, time.UTC)
	return dailies.CountdownReport{
		GameName:     "Genshin",
		ServerRegion: "NA",
		Countdown:    resetclock.CountdownAt(now, 4, 0),
	}
}

func (stubTracker) Status(userID string) dailies.UserStatus {
	return dailies.UserStatus{Subscribed: userID == "42"}
}

type stubBot struct{ connected bool }

func (b stubBot) Health() discord.HealthStatus {
	return discord.HealthStatus{Connected: b.connected}
}

func serve(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter(t *testing.T) {
	failing := handler.HealthCheckFunc(func(context.Context) error { return errors.New("down") })
	router := NewRouter(Config{
		Version: "test",
		Tracker: stubTracker{},
		Bot:     stubBot{connected: true},
		Checks:  map[string]handler.HealthChecker{"discord": failing},
	})

	tests := []struct {
		name     string
		path     string
		wantCode int
		wantBody string
	}{
		{"liveness", "/healthz", http.StatusOK, `"status":"ok"`},
		{"readiness fails", "/readyz", http.StatusServiceUnavailable, `"discord unavailable"`},
		{"version", "/version", http.StatusOK, `"version":"test"`},
		{"reset", "/api/v1/reset", http.StatusOK, `"seconds_until_reset":7965`},
		{"user status", "/api/v1/users/42/status", http.StatusOK, `"subscribed":true`},
		{"bot", "/api/v1/bot", http.StatusOK, `"connected":true`},
		{"metrics", "/metrics", http.StatusOK, "resetbot_"},
		{"unknown", "/nope", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, router, tt.path)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
			assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
		})
	}
}

func TestRouter_OptionalRoutes(t *testing.T) {
	router := NewRouter(Config{})

	assert.Equal(t, http.StatusNotFound, serve(t, router, "/api/v1/reset").Code)
	assert.Equal(t, http.StatusNotFound, serve(t, router, "/api/v1/bot").Code)
	assert.Equal(t, http.StatusOK, serve(t, router, "/readyz").Code)
}

func TestServer_StartStop(t *testing.T) {
	srv := NewServer(Config{Addr: "127.0.0.1:0"})

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	// Give ListenAndServe a moment to bind before shutting down.
	time.Sleep(50 * time.Millisecond)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, srv.Stop(ctx))

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}
