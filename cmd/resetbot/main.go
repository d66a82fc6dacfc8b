package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/resetbot/internal/bootstrap"
	"github.com/osse101/resetbot/internal/config"
	"github.com/osse101/resetbot/internal/dailies"
	"github.com/osse101/resetbot/internal/discord"
	"github.com/osse101/resetbot/internal/handler"
	"github.com/osse101/resetbot/internal/reminder"
	"github.com/osse101/resetbot/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		return 1
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Failed to set up logging", "error", err)
		return 1
	}
	defer logFile.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	seedIDs, dbPool, err := bootstrap.LoadReminderSeed(ctx, cfg)
	if err != nil {
		slog.Error("Failed to load reminder pool", "error", err)
		return 1
	}

	// The bot session is needed by the notifier and presence, and the
	// tracker is needed by the bot's command handlers.
	bot, err := discord.New(discord.Config{
		Token:   cfg.DiscordToken,
		AppID:   cfg.DiscordAppID,
		GuildID: cfg.DiscordGuildID,
	}, nil)
	if err != nil {
		slog.Error("Failed to create bot", "error", err)
		return 1
	}

	notifier, err := discord.NewNotifier(bot.Session, cfg.DMChannelCacheSize, cfg.DMRatePerSec)
	if err != nil {
		slog.Error("Failed to create notifier", "error", err)
		return 1
	}

	tracker, err := dailies.NewService(dailies.Config{
		ResetHourUTC:            cfg.ResetHourUTC,
		ResetMinuteUTC:          cfg.ResetMinuteUTC,
		GameName:                cfg.GameName,
		ServerRegion:            cfg.ServerRegion,
		AnnounceOnReset:         cfg.AnnounceOnReset,
		StatusReflectsCountdown: cfg.StatusReflectsCountdown,
		AnnouncementChannelID:   cfg.AnnouncementChannelID,
	}, reminder.NewRegistry(seedIDs...), notifier, discord.NewPresence(bot.Session))
	if err != nil {
		slog.Error("Failed to create reset tracker", "error", err)
		return 1
	}
	bot.SetTracker(tracker)

	discord.RegisterDefaultCommands(bot.Registry)

	checks := map[string]handler.HealthChecker{"discord": bot}
	components := bootstrap.ShutdownComponents{Tracker: tracker, Bot: bot}
	if dbPool != nil {
		checks["database"] = handler.HealthCheckFunc(dbPool.Ping)
		components.DBPool = dbPool
	}

	srv := server.NewServer(server.Config{
		Addr:    cfg.HealthAddr(),
		Version: cfg.Version,
		Tracker: tracker,
		Bot:     bot,
		Checks:  checks,
	})
	components.Server = srv
	go func() {
		if err := srv.Start(); err != nil {
			slog.Error("HTTP server failed", "error", err)
		}
	}()

	if err := bot.Start(); err != nil {
		slog.Error("Failed to start bot", "error", err)
		shutdown(components)
		return 1
	}

	if err := bot.RegisterCommands(bot.Registry, cfg.ForceCommandUpdate); err != nil {
		// The bot still works if the commands were registered before.
		slog.Error("Failed to register commands", "error", err)
	}

	<-ctx.Done()
	shutdown(components)
	return 0
}

func shutdown(c bootstrap.ShutdownComponents) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(ctx, c)
}
