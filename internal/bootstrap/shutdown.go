package bootstrap

import (
	"context"
	"log/slog"
)

type stoppable interface {
	Stop(ctx context.Context) error
}

type shutdownable interface {
	Shutdown(ctx context.Context) error
}

type closable interface {
	Close()
}

type botStopper interface {
	Stop() error
}

// ShutdownComponents holds all components that need graceful shutdown.
// Nil fields are skipped.
type ShutdownComponents struct {
	Server  stoppable
	Tracker shutdownable
	Bot     botStopper
	DBPool  closable
}

// GracefulShutdown stops the components in order:
// 1. HTTP server (stop accepting probes)
// 2. Reset tracker (cancel both ticks, wait for an in-flight tick)
// 3. Discord session
// 4. Database pool
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	slog.Info(LogMsgShuttingDown)

	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if c.Tracker != nil {
		if err := c.Tracker.Shutdown(ctx); err != nil {
			slog.Error(LogMsgTrackerShutdown, "error", err)
		}
	}

	if c.Bot != nil {
		if err := c.Bot.Stop(); err != nil {
			slog.Error(LogMsgBotShutdown, "error", err)
		}
	}

	if c.DBPool != nil {
		c.DBPool.Close()
	}

	slog.Info(LogMsgStopped)
}
