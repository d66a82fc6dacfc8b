package bootstrap

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0o755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0o644
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat sorts lexically in time order
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of older log files kept next to the new one
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingResetBot    = "Starting resetbot"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// =============================================================================
// Seed Store
// =============================================================================

const (
	LogMsgSeedStoreDisabled = "DATABASE_URL not set, reminder pool seeded from configuration only"
	ErrMsgSeedStore         = "failed to open reminder seed store"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDown         = "Shutting down..."
	LogMsgStopped              = "Shutdown complete"
	LogMsgServerForcedShutdown = "HTTP server forced to shutdown"
	LogMsgTrackerShutdown      = "Daily reset tracker shutdown failed"
	LogMsgBotShutdown          = "Discord bot shutdown failed"
)
