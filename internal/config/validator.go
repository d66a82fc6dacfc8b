package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/resetbot/internal/resetclock"
)

var (
	ErrNotAnInteger = errors.New("not an integer")
	ErrNotANumber   = errors.New("not a number")
	ErrNotABool     = errors.New("not a boolean")
)

// fieldEnv maps struct fields back to the variable a user has to fix.
var fieldEnv = map[string]string{
	"DiscordToken":          EnvDiscordToken,
	"DiscordAppID":          EnvDiscordAppID,
	"DiscordGuildID":        EnvDiscordGuildID,
	"ResetHourUTC":          EnvResetHourUTC,
	"ResetMinuteUTC":        EnvResetMinuteUTC,
	"GameName":              EnvGameName,
	"ServerRegion":          EnvServerRegion,
	"AnnouncementChannelID": EnvAnnouncementChannelID,
	"DefaultReminderPool":   EnvDefaultReminderPool,
	"LogLevel":              EnvLogLevel,
	"LogFormat":             EnvLogFormat,
	"LogDir":                EnvLogDir,
	"HealthPort":            EnvHealthPort,
	"DMRatePerSec":          EnvDMRatePerSec,
	"DMChannelCacheSize":    EnvDMChannelCacheSize,
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks every field and reports the first problem as a
// *resetclock.ConfigurationError. Reset time errors also match
// resetclock.ErrInvalidResetHour / ErrInvalidResetMinute.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) || len(verrs) == 0 {
			return fmt.Errorf("%w: %w", resetclock.ErrInvalidConfig, err)
		}
		return toConfigurationError(verrs[0])
	}
	return resetclock.Validate(c.ResetHourUTC, c.ResetMinuteUTC)
}

func toConfigurationError(fe validator.FieldError) error {
	// dive errors carry the element index, e.g. DefaultReminderPool[1]
	field, _, _ := strings.Cut(fe.StructField(), "[")
	env, ok := fieldEnv[field]
	if !ok {
		env = fe.Namespace()
	}

	cause := fmt.Errorf("failed %q rule", fe.ActualTag())
	if fe.Param() != "" {
		cause = fmt.Errorf("failed %q rule (%s)", fe.ActualTag(), fe.Param())
	}
	switch field {
	case "ResetHourUTC":
		cause = fmt.Errorf("%w: %w", resetclock.ErrInvalidResetHour, cause)
	case "ResetMinuteUTC":
		cause = fmt.Errorf("%w: %w", resetclock.ErrInvalidResetMinute, cause)
	}

	return &resetclock.ConfigurationError{Field: env, Value: fe.Value(), Err: cause}
}
