package config

// Environment variable names
const (
	EnvDiscordToken            = "DISCORD_TOKEN"
	EnvDiscordAppID            = "DISCORD_APP_ID"
	EnvDiscordGuildID          = "DISCORD_GUILD_ID"
	EnvForceCommandUpdate      = "DISCORD_FORCE_COMMAND_UPDATE"
	EnvResetHourUTC            = "RESET_HOUR_UTC"
	EnvResetMinuteUTC          = "RESET_MINUTE_UTC"
	EnvGameName                = "GAME_NAME"
	EnvServerRegion            = "SERVER_REGION"
	EnvAnnounceOnReset         = "ANNOUNCE_ON_RESET"
	EnvStatusReflectsCountdown = "STATUS_REFLECTS_COUNTDOWN"
	EnvAnnouncementChannelID   = "ANNOUNCEMENT_CHANNEL_ID"
	EnvDefaultReminderPool     = "DEFAULT_REMINDER_POOL"
	EnvDebug                   = "DEBUG"
	EnvLogLevel                = "LOG_LEVEL"
	EnvLogFormat               = "LOG_FORMAT"
	EnvLogDir                  = "LOG_DIR"
	EnvEnvironment             = "ENVIRONMENT"
	EnvVersion                 = "VERSION"
	EnvHealthPort              = "HEALTH_PORT"
	EnvDMRatePerSec            = "DM_RATE_PER_SEC"
	EnvDMChannelCacheSize      = "DM_CHANNEL_CACHE_SIZE"
	EnvDatabaseURL             = "DATABASE_URL"
)

// Defaults
const (
	DefaultResetHourUTC       = 9
	DefaultResetMinuteUTC     = 0
	DefaultGameName           = "Genshin"
	DefaultServerRegion       = "NA"
	DefaultLogLevel           = "info"
	DefaultLogFormat          = "text"
	DefaultLogDir             = "logs"
	DefaultEnvironment        = "dev"
	DefaultVersion            = "dev"
	DefaultHealthPort         = 8082
	DefaultDMRatePerSec       = 5.0
	DefaultDMChannelCacheSize = 512
)

// poolSeparator splits DEFAULT_REMINDER_POOL entries
const poolSeparator = ","
