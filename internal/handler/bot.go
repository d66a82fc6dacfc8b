package handler

import (
	"net/http"

	"github.com/osse101/resetbot/internal/discord"
)

// BotHealthReporter reports the Discord connection state.
type BotHealthReporter interface {
	Health() discord.HealthStatus
}

// HandleBotHealth reports gateway connectivity and command activity. A
// disconnected bot answers 503 so probes can alert on it.
func HandleBotHealth(bot BotHealthReporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		health := bot.Health()
		status := http.StatusOK
		if !health.Connected {
			status = http.StatusServiceUnavailable
		}
		respondJSON(w, status, health)
	}
}
