package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/osse101/resetbot/internal/config"
	"github.com/osse101/resetbot/internal/logger"
)

// SetupLogger initializes the application logger with file and stdout output.
// It creates the log directory, removes old session logs, and installs the
// default slog logger. The caller must close the returned file.
func SetupLogger(cfg *config.Config) (*os.File, error) {
	return setupLogger(cfg, os.Stdout, time.Now())
}

func setupLogger(cfg *config.Config, stdout io.Writer, now time.Time) (*os.File, error) {
	if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedCreateLogsDir, err)
	}

	cleanupLogs(cfg.LogDir, LogFileRetentionCount)

	name := fmt.Sprintf(LogFileNamePattern, now.Format(LogFileTimestampFormat))
	logFile, err := os.OpenFile(filepath.Join(cfg.LogDir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedOpenLogFile, err)
	}

	logCfg := logger.NewConfig(cfg.LogLevel, cfg.LogFormat, logger.DefaultServiceName,
		cfg.Version, cfg.Environment, cfg.AddSource()).WithDebug(cfg.Debug)
	logger.InitLoggerWithWriter(logCfg, io.MultiWriter(stdout, logFile))

	slog.Info(LogMsgLoggingInitialized, "level", logCfg.LogLevel(), "file", logFile.Name())
	slog.Info(LogMsgStartingResetBot,
		"environment", cfg.Environment,
		"version", cfg.Version)
	slog.Debug(LogMsgConfigurationLoaded,
		"reset_hour_utc", cfg.ResetHourUTC,
		"reset_minute_utc", cfg.ResetMinuteUTC,
		"game", cfg.GameName,
		"region", cfg.ServerRegion,
		"announce_on_reset", cfg.AnnounceOnReset,
		"status_reflects_countdown", cfg.StatusReflectsCountdown,
		"seeded_users", len(cfg.DefaultReminderPool),
		"database", cfg.DatabaseURL != "")

	return logFile, nil
}

// cleanupLogs removes the oldest session logs so that at most keep remain.
// Session file names sort in time order.
func cleanupLogs(logDir string, keep int) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var logFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			logFiles = append(logFiles, entry.Name())
		}
	}

	for i := 0; i < len(logFiles)-keep; i++ {
		if err := os.Remove(filepath.Join(logDir, logFiles[i])); err != nil {
			fmt.Fprintf(os.Stderr, "%s %s: %v\n", LogMsgFailedDeleteOldLog, logFiles[i], err)
		}
	}
}
