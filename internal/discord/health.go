package discord

import (
	"sync/atomic"
	"time"
)

// HealthStatus represents the bot's health status
type HealthStatus struct {
	Status           string    `json:"status"`
	Uptime           string    `json:"uptime"`
	Connected        bool      `json:"connected"`
	CommandsReceived int64     `json:"commands_received"`
	LastCommandTime  time.Time `json:"last_command_time,omitempty"`
}

var (
	startTime       = time.Now()
	commandCounter  atomic.Int64
	lastCommandNano atomic.Int64
)

// RecordCommand increments the command counter
func RecordCommand() {
	commandCounter.Add(1)
	lastCommandNano.Store(time.Now().UnixNano())
}

// Health reports gateway connectivity and command activity.
func (b *Bot) Health() HealthStatus {
	connected := b.Connected()

	status := "healthy"
	if !connected {
		status = "degraded"
	}

	var last time.Time
	if n := lastCommandNano.Load(); n > 0 {
		last = time.Unix(0, n).UTC()
	}

	return HealthStatus{
		Status:           status,
		Uptime:           time.Since(startTime).Round(time.Second).String(),
		Connected:        connected,
		CommandsReceived: commandCounter.Load(),
		LastCommandTime:  last,
	}
}
