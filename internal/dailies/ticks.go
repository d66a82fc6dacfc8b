package dailies

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/resetbot/internal/logger"
	"github.com/osse101/resetbot/internal/metrics"
	"github.com/osse101/resetbot/internal/resetclock"
)

// DeliveryResult is the outcome of one reminder.
type DeliveryResult struct {
	UserID string
	Err    error
}

// DeliveryReport collects the outcome of one coarse tick.
type DeliveryReport struct {
	Delivered []string
	Failed    []DeliveryResult
}

// Attempted is the number of reminders tried.
func (r DeliveryReport) Attempted() int {
	return len(r.Delivered) + len(r.Failed)
}

// FineTick refreshes the countdown, updates the presence line when enabled,
// and performs the reset transition when the clock sits on the reset minute.
// A presence failure does not prevent the reset transition; both errors are
// joined into the returned error.
func (s *service) FineTick(ctx context.Context) error {
	start := time.Now()
	defer func() {
		metrics.TickDuration.WithLabelValues(metrics.TickFine).Observe(time.Since(start).Seconds())
	}()

	log := logger.FromContext(ctx)
	now := s.clock.Now()
	countdown := s.refreshCountdown(now)
	log.Debug(LogMsgCountdownRefreshed,
		"hours", countdown.Hours,
		"minutes", countdown.Minutes,
		"seconds", countdown.Seconds)

	var errs []error
	if s.cfg.StatusReflectsCountdown {
		if err := s.presence.Publish(ctx, StatusText(s.cfg.ServerRegion, countdown)); err != nil {
			errs = append(errs, fmt.Errorf("%w: %w", ErrPresenceFailed, err))
		}
	}

	if resetclock.IsResetBoundary(now, s.cfg.ResetHourUTC, s.cfg.ResetMinuteUTC) {
		if !s.claimReset(now) {
			log.Debug(LogMsgResetAlreadyHandled, "date", now.UTC().Format(time.DateOnly))
		} else if err := s.resetTransition(ctx, now); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// claimReset reports whether the reset for now's UTC date is still due, and
// marks it handled.
func (s *service) claimReset(now time.Time) bool {
	date := now.UTC().Format(time.DateOnly)

	s.resetMu.Lock()
	defer s.resetMu.Unlock()
	if s.lastResetDate == date {
		return false
	}
	s.lastResetDate = date
	return true
}

func (s *service) resetTransition(ctx context.Context, now time.Time) error {
	log := logger.FromContext(ctx)

	cleared := s.registry.ResetCompletions()
	metrics.ResetsTotal.Inc()
	s.updatePoolGauges()
	log.Info(LogMsgResetDetected, "cleared", cleared)

	if !s.cfg.AnnounceOnReset {
		return nil
	}

	text := AnnouncementText(s.cfg.GameName, s.cfg.ServerRegion, now.Truncate(time.Minute))
	err := s.notifier.SendChannel(ctx, s.cfg.AnnouncementChannelID, text)
	metrics.AnnouncementsTotal.WithLabelValues(metrics.ResultLabel(err)).Inc()
	if err != nil {
		return fmt.Errorf("%w: channel %s: %w", ErrAnnouncementFailed, s.cfg.AnnouncementChannelID, err)
	}
	log.Info(LogMsgAnnouncementSent, "channel_id", s.cfg.AnnouncementChannelID)
	return nil
}

// CoarseTick reminds every subscriber who has not finished today, using the
// countdown cached by the fine tick. A failed delivery is recorded and the
// round moves on to the next user. Cancelling ctx ends the round early.
func (s *service) CoarseTick(ctx context.Context) DeliveryReport {
	start := time.Now()
	defer func() {
		metrics.TickDuration.WithLabelValues(metrics.TickCoarse).Observe(time.Since(start).Seconds())
	}()

	log := logger.FromContext(ctx)
	var report DeliveryReport

	stats := s.registry.Stats()
	if stats.Subscribed == 0 {
		log.Debug(LogMsgRemindersEmptyPool)
		return report
	}
	log.Debug(LogMsgRemindersStarting, "pending", stats.Pending, "finished", stats.Finished)

	text := ReminderText(s.CachedCountdown())
	for userID := range s.registry.PendingReminders() {
		if ctx.Err() != nil {
			break
		}
		if err := s.notifier.SendDirect(ctx, userID, text); err != nil {
			metrics.ReminderFailures.Inc()
			log.Debug(LogMsgReminderFailed, "user_id", userID, "error", err)
			report.Failed = append(report.Failed, DeliveryResult{UserID: userID, Err: err})
			continue
		}
		metrics.RemindersSent.Inc()
		log.Debug(LogMsgReminderSent, "user_id", userID)
		report.Delivered = append(report.Delivered, userID)
	}

	log.Debug(LogMsgRemindersFinished,
		"delivered", len(report.Delivered),
		"failed", len(report.Failed))
	return report
}

