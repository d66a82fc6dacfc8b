package discord

import "time"

// Presence
const (
	presenceStatus = "dnd"
)

// Notifier defaults, used when the configured values are not positive
const (
	DefaultDMChannelCacheSize = 512
	DefaultDMRatePerSecond    = 5.0
	dmBurst                   = 1
)

// respondTimeout bounds a single interaction reply.
const respondTimeout = 3 * time.Second

// Log messages
const (
	LogMsgBotRunning         = "Discord bot is now running"
	LogMsgBotReady           = "Bot is ready"
	LogMsgTrackerStartFailed = "Failed to start daily reset tracker"
	LogMsgCheckingCommands   = "Checking Discord commands..."
	LogMsgCommandsForced     = "Force update enabled - replacing all commands"
	LogMsgCommandsUnchanged  = "Commands unchanged, skipping registration"
	LogMsgCommandsChanged    = "Commands changed, updating..."
	LogMsgCommandsUpdated    = "Commands updated successfully"
	LogMsgCommandReceived    = "Slash command received"
	LogMsgRespondFailed      = "Failed to respond to interaction"
	LogMsgDMChannelCached    = "Opened direct message channel"
)
