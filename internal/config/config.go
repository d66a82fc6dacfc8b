package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/osse101/resetbot/internal/resetclock"
)

// Config holds the application configuration. It is loaded once at startup
// and never mutated afterwards.
type Config struct {
	DiscordToken       string `validate:"required"`
	DiscordAppID       string `validate:"required,numeric"`
	DiscordGuildID     string `validate:"omitempty,numeric"`
	ForceCommandUpdate bool

	ResetHourUTC   int `validate:"min=0,max=23"`
	ResetMinuteUTC int `validate:"min=0,max=59"`

	GameName                string `validate:"required"`
	ServerRegion            string `validate:"required"`
	AnnounceOnReset         bool
	StatusReflectsCountdown bool
	AnnouncementChannelID   string   `validate:"required_if=AnnounceOnReset true,omitempty,numeric"`
	DefaultReminderPool     []string `validate:"dive,numeric"`
	Debug                   bool

	LogLevel    string `validate:"oneof=debug info warn warning error DEBUG INFO WARN WARNING ERROR"`
	LogFormat   string `validate:"oneof=text json"`
	LogDir      string `validate:"required"`
	Environment string
	Version     string

	HealthPort         int     `validate:"min=1,max=65535"`
	DMRatePerSec       float64 `validate:"gt=0"`
	DMChannelCacheSize int     `validate:"min=1"`
	DatabaseURL        string
}

// Load loads the configuration from environment variables, reading a .env
// file first when one exists.
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		DiscordToken:          getEnv(EnvDiscordToken, ""),
		DiscordAppID:          getEnv(EnvDiscordAppID, ""),
		DiscordGuildID:        getEnv(EnvDiscordGuildID, ""),
		GameName:              getEnv(EnvGameName, DefaultGameName),
		ServerRegion:          getEnv(EnvServerRegion, DefaultServerRegion),
		AnnouncementChannelID: getEnv(EnvAnnouncementChannelID, ""),
		DefaultReminderPool:   splitList(getEnv(EnvDefaultReminderPool, "")),
		LogLevel:              getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:             getEnv(EnvLogFormat, DefaultLogFormat),
		LogDir:                getEnv(EnvLogDir, DefaultLogDir),
		Environment:           getEnv(EnvEnvironment, DefaultEnvironment),
		Version:               getEnv(EnvVersion, DefaultVersion),
		DatabaseURL:           getEnv(EnvDatabaseURL, ""),
	}

	var err error
	if cfg.ResetHourUTC, err = getEnvInt(EnvResetHourUTC, DefaultResetHourUTC); err != nil {
		return nil, err
	}
	if cfg.ResetMinuteUTC, err = getEnvInt(EnvResetMinuteUTC, DefaultResetMinuteUTC); err != nil {
		return nil, err
	}
	if cfg.HealthPort, err = getEnvInt(EnvHealthPort, DefaultHealthPort); err != nil {
		return nil, err
	}
	if cfg.DMChannelCacheSize, err = getEnvInt(EnvDMChannelCacheSize, DefaultDMChannelCacheSize); err != nil {
		return nil, err
	}
	if cfg.DMRatePerSec, err = getEnvFloat(EnvDMRatePerSec, DefaultDMRatePerSec); err != nil {
		return nil, err
	}
	if cfg.AnnounceOnReset, err = getEnvBool(EnvAnnounceOnReset, true); err != nil {
		return nil, err
	}
	if cfg.StatusReflectsCountdown, err = getEnvBool(EnvStatusReflectsCountdown, true); err != nil {
		return nil, err
	}
	if cfg.Debug, err = getEnvBool(EnvDebug, false); err != nil {
		return nil, err
	}
	if cfg.ForceCommandUpdate, err = getEnvBool(EnvForceCommandUpdate, false); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return strings.TrimSpace(value)
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &resetclock.ConfigurationError{Field: key, Value: raw, Err: fmt.Errorf("%w: %w", ErrNotAnInteger, err)}
	}
	return v, nil
}

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &resetclock.ConfigurationError{Field: key, Value: raw, Err: fmt.Errorf("%w: %w", ErrNotANumber, err)}
	}
	return v, nil
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, &resetclock.ConfigurationError{Field: key, Value: raw, Err: fmt.Errorf("%w: %w", ErrNotABool, err)}
	}
	return v, nil
}

// splitList parses "1, 2,,3" into [1 2 3].
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, poolSeparator) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// AddSource reports whether log lines should carry file:line.
func (c *Config) AddSource() bool {
	return c.Environment == DefaultEnvironment || c.Environment == "development"
}

// HealthAddr is the listen address of the health/metrics server.
func (c *Config) HealthAddr() string {
	return ":" + strconv.Itoa(c.HealthPort)
}
