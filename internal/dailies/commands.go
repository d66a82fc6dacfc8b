package dailies

import (
	"log/slog"

	"github.com/osse101/resetbot/internal/reminder"
	"github.com/osse101/resetbot/internal/resetclock"
)

// CountdownReport answers "when is the next reset".
type CountdownReport struct {
	GameName     string
	ServerRegion string
	Countdown    resetclock.Countdown
}

// UserStatus is a user's standing in the reminder pool for the current day.
type UserStatus struct {
	Subscribed bool
	Done       bool
	Countdown  resetclock.Countdown
}

// Countdown is computed from the clock on every call, so it is exact to the
// second, unlike the cached value used by the ticks.
func (s *service) Countdown() CountdownReport {
	return CountdownReport{
		GameName:     s.cfg.GameName,
		ServerRegion: s.cfg.ServerRegion,
		Countdown:    resetclock.CountdownAt(s.clock.Now(), s.cfg.ResetHourUTC, s.cfg.ResetMinuteUTC),
	}
}

func (s *service) Subscribe(userID string) reminder.SubscribeResult {
	res := s.registry.Subscribe(userID)
	s.updatePoolGauges()
	slog.Debug(LogMsgUserSubscribed, "user_id", userID, "result", res.String())
	return res
}

func (s *service) Unsubscribe(userID string) reminder.UnsubscribeResult {
	res := s.registry.Unsubscribe(userID)
	s.updatePoolGauges()
	slog.Debug(LogMsgUserUnsubscribed, "user_id", userID, "result", res.String())
	return res
}

// MarkDone records completion for today. The user does not need to be
// subscribed.
func (s *service) MarkDone(userID string) reminder.DoneResult {
	res := s.registry.MarkDone(userID)
	s.updatePoolGauges()
	slog.Debug(LogMsgUserMarkedDone, "user_id", userID, "result", res.String())
	return res
}

func (s *service) Status(userID string) UserStatus {
	return UserStatus{
		Subscribed: s.registry.IsSubscribed(userID),
		Done:       s.registry.IsDone(userID),
		Countdown:  s.Countdown().Countdown,
	}
}
