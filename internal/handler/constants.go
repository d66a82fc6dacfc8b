package handler

import "time"

// readinessTimeout bounds every readiness probe.
const readinessTimeout = 2 * time.Second

// Health status values
const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
)

// Log messages
const (
	LogMsgEncodeFailed    = "Failed to encode JSON response"
	LogMsgWriteFailed     = "Failed to write response buffer"
	LogMsgReadinessFailed = "Readiness check failed"
)

// Error messages
const (
	ErrMsgMissingUserID = "missing user id"
)
