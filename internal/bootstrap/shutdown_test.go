package bootstrap

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	calls []string
}

type fakeServer struct {
	rec *recorder
	err error
}

func (f fakeServer) Stop(context.Context) error {
	f.rec.calls = append(f.rec.calls, "server")
	return f.err
}

type fakeTracker struct{ rec *recorder }

func (f fakeTracker) Shutdown(context.Context) error {
	f.rec.calls = append(f.rec.calls, "tracker")
	return nil
}

type fakeBot struct{ rec *recorder }

func (f fakeBot) Stop() error {
	f.rec.calls = append(f.rec.calls, "bot")
	return errors.New("already closed")
}

type fakePool struct{ rec *recorder }

func (f fakePool) Close() {
	f.rec.calls = append(f.rec.calls, "db")
}

func TestGracefulShutdown_Order(t *testing.T) {
	rec := &recorder{}

	GracefulShutdown(context.Background(), ShutdownComponents{
		Server:  fakeServer{rec: rec, err: context.DeadlineExceeded},
		Tracker: fakeTracker{rec: rec},
		Bot:     fakeBot{rec: rec},
		DBPool:  fakePool{rec: rec},
	})

	assert.Equal(t, []string{"server", "tracker", "bot", "db"}, rec.calls,
		"errors do not stop the sequence")
}

func TestGracefulShutdown_SkipsNil(t *testing.T) {
	rec := &recorder{}

	require.NotPanics(t, func() {
		GracefulShutdown(context.Background(), ShutdownComponents{Tracker: fakeTracker{rec: rec}})
	})
	assert.Equal(t, []string{"tracker"}, rec.calls)
}

func TestLoadReminderSeed_WithoutDatabase(t *testing.T) {
	cfg := testConfig(t.TempDir())
	cfg.DefaultReminderPool = []string{"1", "2", "1"}

	ids, pool, err := LoadReminderSeed(context.Background(), cfg)

	require.NoError(t, err)
	assert.Nil(t, pool)
	assert.Equal(t, []string{"1", "2"}, ids)
}
