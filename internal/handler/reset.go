package handler

import (
	"net/http"
	"time"

	"github.com/osse101/resetbot/internal/dailies"
)

// ResetResponse is the JSON form of the next reset countdown.
type ResetResponse struct {
	Game              string    `json:"game"`
	Region            string    `json:"region"`
	NextResetAt       time.Time `json:"next_reset_at"`
	SecondsUntilReset int64     `json:"seconds_until_reset"`
	Hours             int       `json:"hours"`
	Minutes           int       `json:"minutes"`
	Seconds           int       `json:"seconds"`
}

// CountdownReporter is the part of the tracker this handler needs.
type CountdownReporter interface {
	Countdown() dailies.CountdownReport
}

// HandleGetReset returns the countdown to the next server reset.
func HandleGetReset(tracker CountdownReporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report := tracker.Countdown()
		c := report.Countdown
		respondJSON(w, http.StatusOK, ResetResponse{
			Game:              report.GameName,
			Region:            report.ServerRegion,
			NextResetAt:       c.Until,
			SecondsUntilReset: int64(c.Remaining() / time.Second),
			Hours:             c.Hours,
			Minutes:           c.Minutes,
			Seconds:           c.Seconds,
		})
	}
}

// UserStatusResponse is the JSON form of one user's standing.
type UserStatusResponse struct {
	UserID     string `json:"user_id"`
	Subscribed bool   `json:"subscribed"`
	Done       bool   `json:"done"`
}

// StatusReporter is the part of the tracker used by HandleGetUserStatus.
type StatusReporter interface {
	Status(userID string) dailies.UserStatus
}

// HandleGetUserStatus reports whether a user is subscribed and done today.
// userID extracts the id from the request, typically a route parameter.
func HandleGetUserStatus(tracker StatusReporter, userID func(r *http.Request) string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := userID(r)
		if id == "" {
			respondError(w, http.StatusBadRequest, ErrMsgMissingUserID)
			return
		}
		st := tracker.Status(id)
		respondJSON(w, http.StatusOK, UserStatusResponse{
			UserID:     id,
			Subscribed: st.Subscribed,
			Done:       st.Done,
		})
	}
}
