// Package dailies tracks the daily server reset: it keeps a countdown for
// status display and queries, clears completions once per reset, and reminds
// subscribed users who have not finished yet.
package dailies

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/osse101/resetbot/internal/metrics"
	"github.com/osse101/resetbot/internal/reminder"
	"github.com/osse101/resetbot/internal/resetclock"
	"github.com/osse101/resetbot/internal/scheduler"
	"github.com/osse101/resetbot/internal/worker"
)

// Notifier delivers text to a single user or to a channel.
type Notifier interface {
	SendDirect(ctx context.Context, userID, text string) error
	SendChannel(ctx context.Context, channelID, text string) error
}

// Presence shows a short status line next to the bot.
type Presence interface {
	Publish(ctx context.Context, text string) error
}

// Config is the fixed per-deployment behaviour of the tracker.
type Config struct {
	ResetHourUTC            int
	ResetMinuteUTC          int
	GameName                string
	ServerRegion            string
	AnnounceOnReset         bool
	StatusReflectsCountdown bool
	AnnouncementChannelID   string
}

// Option customises a Service.
type Option func(*service)

// WithClock replaces the wall clock.
func WithClock(c resetclock.Clock) Option {
	return func(s *service) { s.clock = c }
}

// WithIntervals overrides the tick cadences. Only tests should need this.
func WithIntervals(fine, coarse time.Duration) Option {
	return func(s *service) {
		s.fineInterval = fine
		s.coarseInterval = coarse
	}
}

// Service is the daily reset tracker driven by the bot and its commands.
type Service interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
	FineTick(ctx context.Context) error
	CoarseTick(ctx context.Context) DeliveryReport

	Countdown() CountdownReport
	CachedCountdown() resetclock.Countdown
	Subscribe(userID string) reminder.SubscribeResult
	Unsubscribe(userID string) reminder.UnsubscribeResult
	MarkDone(userID string) reminder.DoneResult
	Status(userID string) UserStatus
}

type service struct {
	cfg      Config
	registry *reminder.Registry
	notifier Notifier
	presence Presence
	clock    resetclock.Clock

	fineInterval   time.Duration
	coarseInterval time.Duration

	countdownMu sync.RWMutex
	countdown   resetclock.Countdown

	// UTC date of the last reset transition; a delayed fine tick landing in
	// the same boundary minute must not clear completions twice.
	resetMu       sync.Mutex
	lastResetDate string

	lifecycleMu sync.Mutex
	started     bool
	stopped     bool
	pool        *worker.Pool
	sched       *scheduler.Scheduler
	stopCtx     context.Context
	stopCancel  context.CancelFunc
}

// NewService validates cfg and builds a stopped Service. An out-of-range
// reset time is reported as a *resetclock.ConfigurationError.
func NewService(cfg Config, registry *reminder.Registry, notifier Notifier, presence Presence, opts ...Option) (Service, error) {
	if err := resetclock.Validate(cfg.ResetHourUTC, cfg.ResetMinuteUTC); err != nil {
		return nil, err
	}
	if registry == nil || notifier == nil || presence == nil {
		return nil, ErrNilCollaborator
	}

	pool := worker.NewPool(tickWorkers, tickQueueSize)
	stopCtx, stopCancel := context.WithCancel(context.Background())
	s := &service{
		cfg:            cfg,
		registry:       registry,
		notifier:       notifier,
		presence:       presence,
		clock:          resetclock.SystemClock{},
		fineInterval:   FineTickInterval,
		coarseInterval: CoarseTickInterval,
		pool:           pool,
		sched:          scheduler.New(pool),
		stopCtx:        stopCtx,
		stopCancel:     stopCancel,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.storeCountdown(resetclock.CountdownAt(s.clock.Now(), cfg.ResetHourUTC, cfg.ResetMinuteUTC))
	s.updatePoolGauges()
	return s, nil
}

// Start runs the startup action once: publish the countdown, then start the
// fine and coarse ticks. Each tick runs once right away and then on its
// interval. Later calls, and calls after Shutdown, do nothing.
func (s *service) Start(ctx context.Context) error {
	s.lifecycleMu.Lock()
	defer s.lifecycleMu.Unlock()

	if s.started || s.stopped {
		slog.Debug(LogMsgAlreadyStarted)
		return nil
	}
	s.started = true

	countdown := s.refreshCountdown(s.clock.Now())
	slog.Info(LogMsgStarting,
		"reset_hour_utc", s.cfg.ResetHourUTC,
		"reset_minute_utc", s.cfg.ResetMinuteUTC,
		"next_reset_at", countdown.Until,
		"subscribers", s.registry.Stats().Subscribed)

	if err := s.presence.Publish(ctx, StatusText(s.cfg.ServerRegion, countdown)); err != nil {
		slog.Warn(LogMsgInitialStatusFailed, "error", err)
	}

	s.pool.Start()
	s.sched.Schedule(jobNameFineTick, s.fineInterval, s.job(func(ctx context.Context) error {
		return s.FineTick(ctx)
	}), scheduler.RunImmediately())
	s.sched.Schedule(jobNameCoarseTick, s.coarseInterval, s.job(func(ctx context.Context) error {
		s.CoarseTick(ctx)
		return nil
	}), scheduler.RunImmediately())
	s.sched.Start()
	return nil
}

// job wraps fn so that its context is also cancelled by Shutdown.
func (s *service) job(fn func(ctx context.Context) error) worker.Job {
	return worker.JobFunc(func(ctx context.Context) error {
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()
		stop := context.AfterFunc(s.stopCtx, cancel)
		defer stop()
		return fn(ctx)
	})
}

// Shutdown stops both ticks and waits for a running tick to return, or for
// ctx to expire. It is safe to call more than once and before Start.
func (s *service) Shutdown(ctx context.Context) error {
	s.lifecycleMu.Lock()
	alreadyStopped := s.stopped
	s.stopped = true
	s.lifecycleMu.Unlock()

	if alreadyStopped {
		return nil
	}

	slog.Info(LogMsgShuttingDown)
	s.stopCancel()

	done := make(chan struct{})
	go func() {
		s.sched.Stop()
		s.pool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info(LogMsgShutdownComplete)
		return nil
	case <-ctx.Done():
		slog.Warn(LogMsgShutdownTimeout)
		return fmt.Errorf("dailies shutdown: %w", ctx.Err())
	}
}

// CachedCountdown returns the countdown computed by the latest fine tick.
// It may be up to one fine interval old.
func (s *service) CachedCountdown() resetclock.Countdown {
	s.countdownMu.RLock()
	defer s.countdownMu.RUnlock()
	return s.countdown
}

func (s *service) storeCountdown(c resetclock.Countdown) {
	s.countdownMu.Lock()
	s.countdown = c
	s.countdownMu.Unlock()
	metrics.SecondsUntilReset.Set(c.Remaining().Seconds())
}

func (s *service) refreshCountdown(now time.Time) resetclock.Countdown {
	c := resetclock.CountdownAt(now, s.cfg.ResetHourUTC, s.cfg.ResetMinuteUTC)
	s.storeCountdown(c)
	return c
}

func (s *service) updatePoolGauges() {
	stats := s.registry.Stats()
	metrics.ReminderPoolSize.Set(float64(stats.Subscribed))
	metrics.FinishedPoolSize.Set(float64(stats.Finished))
}
