package resetclock

import (
	"errors"
	"fmt"
)

// Error message string constants
const (
	ErrMsgInvalidResetHour   = "reset hour out of range"
	ErrMsgInvalidResetMinute = "reset minute out of range"
	ErrMsgInvalidConfig      = "invalid configuration"
)

var (
	ErrInvalidResetHour   = errors.New(ErrMsgInvalidResetHour)
	ErrInvalidResetMinute = errors.New(ErrMsgInvalidResetMinute)
	ErrInvalidConfig      = errors.New(ErrMsgInvalidConfig)
)

// ConfigurationError reports a setting that makes startup impossible.
type ConfigurationError struct {
	Field string
	Value any
	Err   error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %s=%v: %v", ErrMsgInvalidConfig, e.Field, e.Value, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrInvalidConfig) match any ConfigurationError.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// Validate checks the reset time of day. It runs once at startup; the other
// functions in this package assume valid input.
func Validate(hour, minute int) error {
	if hour < MinResetHour || hour > MaxResetHour {
		return &ConfigurationError{
			Field: "reset_hour_utc",
			Value: hour,
			Err:   fmt.Errorf("%w: must be within [%d,%d]", ErrInvalidResetHour, MinResetHour, MaxResetHour),
		}
	}
	if minute < MinResetMinute || minute > MaxResetMinute {
		return &ConfigurationError{
			Field: "reset_minute_utc",
			Value: minute,
			Err:   fmt.Errorf("%w: must be within [%d,%d]", ErrInvalidResetMinute, MinResetMinute, MaxResetMinute),
		}
	}
	return nil
}
