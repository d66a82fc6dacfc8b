package dailies

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/resetbot/internal/reminder"
	"github.com/osse101/resetbot/internal/resetclock"
	"github.com/osse101/resetbot/internal/testing/leaktest"
)

const (
	testChannelID  = "123456789"
	testResetToken = "<t:1717473600:R>" // 2024-06-04 04:00:00 UTC
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(t time.Time) *fakeClock {
	return &fakeClock{now: t}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

func at(hour, minute, second int) time.Time {
	return time.Date(2024, 6, 4, hour, minute, second, 0, time.UTC)
}

func testConfig() Config {
	return Config{
		ResetHourUTC:            4,
		ResetMinuteUTC:          0,
		GameName:                "Genshin",
		ServerRegion:            "NA",
		AnnounceOnReset:         true,
		StatusReflectsCountdown: true,
		AnnouncementChannelID:   testChannelID,
	}
}

type fixture struct {
	svc      *service
	clock    *fakeClock
	registry *reminder.Registry
	notifier *MockNotifier
	presence *MockPresence
}

func newFixture(t *testing.T, cfg Config, now time.Time, seed ...string) *fixture {
	t.Helper()

	f := &fixture{
		clock:    newFakeClock(now),
		registry: reminder.NewRegistry(seed...),
		notifier: &MockNotifier{},
		presence: &MockPresence{},
	}
	svc, err := NewService(cfg, f.registry, f.notifier, f.presence, WithClock(f.clock))
	require.NoError(t, err)
	f.svc = svc.(*service)
	t.Cleanup(func() {
		_ = f.svc.Shutdown(context.Background())
	})
	return f
}

func TestNewService_InvalidResetTime(t *testing.T) {
	tests := []struct {
		name    string
		hour    int
		minute  int
		wantErr error
	}{
		{"hour too large", 24, 0, resetclock.ErrInvalidResetHour},
		{"negative hour", -1, 0, resetclock.ErrInvalidResetHour},
		{"minute too large", 4, 60, resetclock.ErrInvalidResetMinute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.ResetHourUTC = tt.hour
			cfg.ResetMinuteUTC = tt.minute

			svc, err := NewService(cfg, reminder.NewRegistry(), &MockNotifier{}, &MockPresence{})
			require.Error(t, err)
			assert.Nil(t, svc)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, resetclock.ErrInvalidConfig)

			var cfgErr *resetclock.ConfigurationError
			assert.ErrorAs(t, err, &cfgErr)
		})
	}
}

func TestNewService_NilCollaborators(t *testing.T) {
	_, err := NewService(testConfig(), nil, &MockNotifier{}, &MockPresence{})
	assert.ErrorIs(t, err, ErrNilCollaborator)

	_, err = NewService(testConfig(), reminder.NewRegistry(), nil, &MockPresence{})
	assert.ErrorIs(t, err, ErrNilCollaborator)

	_, err = NewService(testConfig(), reminder.NewRegistry(), &MockNotifier{}, nil)
	assert.ErrorIs(t, err, ErrNilCollaborator)
}

func TestFineTick_PublishesStatus(t *testing.T) {
	f := newFixture(t, testConfig(), at(1, 47, 15))
	f.presence.On("Publish", mock.Anything, "NA 2H 12M").Return(nil).Once()

	err := f.svc.FineTick(context.Background())

	require.NoError(t, err)
	f.presence.AssertExpectations(t)
	f.notifier.AssertNotCalled(t, "SendChannel", mock.Anything, mock.Anything, mock.Anything)

	cached := f.svc.CachedCountdown()
	assert.Equal(t, 2, cached.Hours)
	assert.Equal(t, 12, cached.Minutes)
	assert.Equal(t, 45, cached.Seconds)
}

func TestFineTick_StatusDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.StatusReflectsCountdown = false
	f := newFixture(t, cfg, at(1, 47, 15))

	require.NoError(t, f.svc.FineTick(context.Background()))

	f.presence.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestFineTick_ResetTransition(t *testing.T) {
	f := newFixture(t, testConfig(), at(4, 0, 20), "A", "B")
	f.svc.MarkDone("A")
	f.svc.MarkDone("C")

	f.presence.On("Publish", mock.Anything, mock.Anything).Return(nil)
	f.notifier.On("SendChannel", mock.Anything, testChannelID,
		"Genshin NA server has reset "+testResetToken+".").Return(nil).Once()

	require.NoError(t, f.svc.FineTick(context.Background()))

	f.notifier.AssertExpectations(t)
	assert.False(t, f.registry.IsDone("A"))
	assert.False(t, f.registry.IsDone("C"))
	assert.Equal(t, []string{"A", "B"}, f.registry.Subscribers(), "subscriptions survive the reset")
}

func TestFineTick_ResetWithoutAnnouncement(t *testing.T) {
	cfg := testConfig()
	cfg.AnnounceOnReset = false
	f := newFixture(t, cfg, at(4, 0, 0), "A")
	f.svc.MarkDone("A")
	f.presence.On("Publish", mock.Anything, mock.Anything).Return(nil)

	require.NoError(t, f.svc.FineTick(context.Background()))

	assert.False(t, f.registry.IsDone("A"))
	f.notifier.AssertNotCalled(t, "SendChannel", mock.Anything, mock.Anything, mock.Anything)
}

func TestFineTick_ResetOncePerDay(t *testing.T) {
	cfg := testConfig()
	cfg.StatusReflectsCountdown = false
	f := newFixture(t, cfg, at(0, 0, 30))
	f.notifier.On("SendChannel", mock.Anything, testChannelID, mock.Anything).Return(nil)

	start := at(0, 0, 30)
	for i := range 24 * 60 {
		f.clock.Set(start.Add(time.Duration(i) * time.Minute))
		require.NoError(t, f.svc.FineTick(context.Background()))
	}

	f.notifier.AssertNumberOfCalls(t, "SendChannel", 1)
}

func TestFineTick_ResetOnceWithinBoundaryMinute(t *testing.T) {
	cfg := testConfig()
	cfg.StatusReflectsCountdown = false
	f := newFixture(t, cfg, at(4, 0, 5), "A")
	f.notifier.On("SendChannel", mock.Anything, testChannelID, mock.Anything).Return(nil)

	f.svc.MarkDone("A")
	require.NoError(t, f.svc.FineTick(context.Background()))
	assert.False(t, f.registry.IsDone("A"))

	// A late tick in the same minute must not wipe completions made since.
	f.svc.MarkDone("A")
	f.clock.Set(at(4, 0, 55))
	require.NoError(t, f.svc.FineTick(context.Background()))

	assert.True(t, f.registry.IsDone("A"))
	f.notifier.AssertNumberOfCalls(t, "SendChannel", 1)

	// The next day's boundary resets again.
	f.clock.Set(at(4, 0, 5).AddDate(0, 0, 1))
	require.NoError(t, f.svc.FineTick(context.Background()))
	assert.False(t, f.registry.IsDone("A"))
	f.notifier.AssertNumberOfCalls(t, "SendChannel", 2)
}

func TestFineTick_PresenceFailureStillResets(t *testing.T) {
	f := newFixture(t, testConfig(), at(4, 0, 5))
	f.svc.MarkDone("A")

	presenceErr := errors.New("gateway closed")
	f.presence.On("Publish", mock.Anything, mock.Anything).Return(presenceErr)
	f.notifier.On("SendChannel", mock.Anything, testChannelID, mock.Anything).Return(nil)

	err := f.svc.FineTick(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPresenceFailed)
	assert.ErrorIs(t, err, presenceErr)
	assert.False(t, f.registry.IsDone("A"))
	f.notifier.AssertNumberOfCalls(t, "SendChannel", 1)
}

func TestFineTick_AnnouncementFailure(t *testing.T) {
	f := newFixture(t, testConfig(), at(4, 0, 5))
	f.svc.MarkDone("A")

	sendErr := errors.New("missing access")
	f.presence.On("Publish", mock.Anything, mock.Anything).Return(nil)
	f.notifier.On("SendChannel", mock.Anything, testChannelID, mock.Anything).Return(sendErr)

	err := f.svc.FineTick(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAnnouncementFailed)
	assert.ErrorIs(t, err, sendErr)
	assert.False(t, f.registry.IsDone("A"), "completions are cleared before announcing")
}

func TestCoarseTick_FailureDoesNotAbortRound(t *testing.T) {
	f := newFixture(t, testConfig(), at(1, 47, 15), "A", "B", "C")
	text := "Make sure to do your dailies today!\nYou have 2 Hours and 12 Mins to do them :)"

	dmErr := errors.New("cannot send messages to this user")
	f.notifier.On("SendDirect", mock.Anything, "A", text).Return(nil).Once()
	f.notifier.On("SendDirect", mock.Anything, "B", text).Return(dmErr).Once()
	f.notifier.On("SendDirect", mock.Anything, "C", text).Return(nil).Once()

	report := f.svc.CoarseTick(context.Background())

	f.notifier.AssertExpectations(t)
	assert.Equal(t, []string{"A", "C"}, report.Delivered)
	require.Len(t, report.Failed, 1)
	assert.Equal(t, "B", report.Failed[0].UserID)
	assert.ErrorIs(t, report.Failed[0].Err, dmErr)
	assert.Equal(t, 3, report.Attempted())
}

func TestCoarseTick_SkipsFinishedUsers(t *testing.T) {
	f := newFixture(t, testConfig(), at(1, 47, 15), "A", "B")
	f.svc.MarkDone("A")
	f.notifier.On("SendDirect", mock.Anything, "B", mock.Anything).Return(nil).Once()

	report := f.svc.CoarseTick(context.Background())

	f.notifier.AssertExpectations(t)
	f.notifier.AssertNotCalled(t, "SendDirect", mock.Anything, "A", mock.Anything)
	assert.Equal(t, []string{"B"}, report.Delivered)
}

func TestCoarseTick_EmptyPool(t *testing.T) {
	f := newFixture(t, testConfig(), at(1, 47, 15))

	report := f.svc.CoarseTick(context.Background())

	assert.Zero(t, report.Attempted())
	f.notifier.AssertNotCalled(t, "SendDirect", mock.Anything, mock.Anything, mock.Anything)
}

func TestCoarseTick_UsesCachedCountdown(t *testing.T) {
	cfg := testConfig()
	cfg.StatusReflectsCountdown = false
	f := newFixture(t, cfg, at(1, 47, 15), "A")
	require.NoError(t, f.svc.FineTick(context.Background()))

	f.clock.Set(at(3, 30, 0))
	f.notifier.On("SendDirect", mock.Anything, "A",
		"Make sure to do your dailies today!\nYou have 2 Hours and 12 Mins to do them :)").Return(nil).Once()

	f.svc.CoarseTick(context.Background())

	f.notifier.AssertExpectations(t)
}

func TestCoarseTick_CancelledContext(t *testing.T) {
	f := newFixture(t, testConfig(), at(1, 47, 15), "A", "B")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report := f.svc.CoarseTick(ctx)

	assert.Zero(t, report.Attempted())
	f.notifier.AssertNotCalled(t, "SendDirect", mock.Anything, mock.Anything, mock.Anything)
}

func TestCountdown(t *testing.T) {
	f := newFixture(t, testConfig(), at(1, 47, 15))

	report := f.svc.Countdown()

	assert.Equal(t, "Genshin", report.GameName)
	assert.Equal(t, "NA", report.ServerRegion)
	assert.Equal(t, 2, report.Countdown.Hours)
	assert.Equal(t, 12, report.Countdown.Minutes)
	assert.Equal(t, 45, report.Countdown.Seconds)
	assert.Equal(t,
		"Genshin NA will reset in 2 hours 12 minutes and 45 seconds.\nOr about "+testResetToken,
		CountdownText(report))
}

func TestCountdown_IsFresh(t *testing.T) {
	f := newFixture(t, testConfig(), at(1, 47, 15))
	f.clock.Set(at(3, 59, 0))

	report := f.svc.Countdown()

	assert.Equal(t, 0, report.Countdown.Hours)
	assert.Equal(t, 1, report.Countdown.Minutes)
	assert.Equal(t, 2, f.svc.CachedCountdown().Hours, "cache only moves on a fine tick")
}

func TestPoolOperations(t *testing.T) {
	f := newFixture(t, testConfig(), at(1, 47, 15))

	assert.Equal(t, reminder.Subscribed, f.svc.Subscribe("A"))
	assert.Equal(t, reminder.AlreadySubscribed, f.svc.Subscribe("A"))

	status := f.svc.Status("A")
	assert.True(t, status.Subscribed)
	assert.False(t, status.Done)

	assert.Equal(t, reminder.MarkedDone, f.svc.MarkDone("A"))
	assert.Equal(t, reminder.AlreadyDone, f.svc.MarkDone("A"))
	assert.True(t, f.svc.Status("A").Done)

	assert.Equal(t, reminder.Unsubscribed, f.svc.Unsubscribe("A"))
	assert.Equal(t, reminder.NotSubscribed, f.svc.Unsubscribe("A"))
	assert.False(t, f.svc.Status("A").Subscribed)
}

func TestMessages(t *testing.T) {
	c := resetclock.CountdownAt(at(1, 47, 15), 4, 0)

	assert.Equal(t, "EU 2H 12M", StatusText("EU", c))
	assert.Equal(t,
		"Make sure to do your dailies today!\nYou have 2 Hours and 12 Mins to do them :)",
		ReminderText(c))
	assert.Equal(t,
		"Genshin NA server has reset "+testResetToken+".",
		AnnouncementText("Genshin", "NA", at(4, 0, 0)))
}

func TestStart_PublishesOnceAndIsIdempotent(t *testing.T) {
	cfg := testConfig()
	cfg.StatusReflectsCountdown = false
	f := newFixture(t, cfg, at(1, 47, 15))
	f.presence.On("Publish", mock.Anything, "NA 2H 12M").Return(nil)

	require.NoError(t, f.svc.Start(context.Background()))
	require.NoError(t, f.svc.Start(context.Background()))

	f.presence.AssertNumberOfCalls(t, "Publish", 1)
}

func TestStart_InitialPublishFailureIsNotFatal(t *testing.T) {
	f := newFixture(t, testConfig(), at(1, 47, 15))
	f.presence.On("Publish", mock.Anything, mock.Anything).Return(errors.New("not connected"))

	assert.NoError(t, f.svc.Start(context.Background()))
}

func TestShutdown_NeverStarted(t *testing.T) {
	f := newFixture(t, testConfig(), at(1, 47, 15))

	assert.NoError(t, f.svc.Shutdown(context.Background()))
	assert.NoError(t, f.svc.Shutdown(context.Background()))
}

func TestStartAfterShutdown_IsNoop(t *testing.T) {
	f := newFixture(t, testConfig(), at(1, 47, 15))
	require.NoError(t, f.svc.Shutdown(context.Background()))

	require.NoError(t, f.svc.Start(context.Background()))

	f.presence.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestLifecycle_TicksRunUntilShutdown(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)

	registry := reminder.NewRegistry("A")
	notifier := &MockNotifier{}
	presence := &MockPresence{}
	clock := newFakeClock(at(1, 47, 15))

	reminded := make(chan struct{}, 16)
	notifier.On("SendDirect", mock.Anything, "A", mock.Anything).
		Run(func(mock.Arguments) {
			select {
			case reminded <- struct{}{}:
			default:
			}
		}).
		Return(nil)
	presence.On("Publish", mock.Anything, mock.Anything).Return(nil)

	svc, err := NewService(testConfig(), registry, notifier, presence,
		WithClock(clock), WithIntervals(10*time.Millisecond, 20*time.Millisecond))
	require.NoError(t, err)
	require.NoError(t, svc.Start(context.Background()))

	select {
	case <-reminded:
	case <-time.After(2 * time.Second):
		t.Fatal("coarse tick never delivered a reminder")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, svc.Shutdown(ctx))
	require.NoError(t, svc.Shutdown(ctx))

	presence.AssertCalled(t, "Publish", mock.Anything, "NA 2H 12M")

	checker.Check(0)
}

func TestStart_RunsTicksImmediately(t *testing.T) {
	registry := reminder.NewRegistry("A")
	notifier := &MockNotifier{}
	presence := &MockPresence{}

	reminded := make(chan struct{}, 1)
	notifier.On("SendDirect", mock.Anything, "A", mock.Anything).
		Run(func(mock.Arguments) {
			select {
			case reminded <- struct{}{}:
			default:
			}
		}).
		Return(nil)
	presence.On("Publish", mock.Anything, mock.Anything).Return(nil)

	svc, err := NewService(testConfig(), registry, notifier, presence,
		WithClock(newFakeClock(at(1, 47, 15))), WithIntervals(time.Hour, time.Hour))
	require.NoError(t, err)
	t.Cleanup(func() { _ = svc.Shutdown(context.Background()) })

	require.NoError(t, svc.Start(context.Background()))

	select {
	case <-reminded:
	case <-time.After(2 * time.Second):
		t.Fatal("pending subscriber was not reminded at startup")
	}
}

func TestStart_DuringResetMinuteResets(t *testing.T) {
	registry := reminder.NewRegistry("A")
	registry.MarkDone("A")
	notifier := &MockNotifier{}
	presence := &MockPresence{}

	announced := make(chan struct{}, 1)
	notifier.On("SendChannel", mock.Anything, testChannelID, mock.Anything).
		Run(func(mock.Arguments) {
			select {
			case announced <- struct{}{}:
			default:
			}
		}).
		Return(nil)
	notifier.On("SendDirect", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	presence.On("Publish", mock.Anything, mock.Anything).Return(nil)

	svc, err := NewService(testConfig(), registry, notifier, presence,
		WithClock(newFakeClock(at(4, 0, 10))), WithIntervals(time.Hour, time.Hour))
	require.NoError(t, err)
	t.Cleanup(func() { _ = svc.Shutdown(context.Background()) })

	require.NoError(t, svc.Start(context.Background()))

	select {
	case <-announced:
	case <-time.After(2 * time.Second):
		t.Fatal("reset was not announced when starting inside the reset minute")
	}
	assert.False(t, registry.IsDone("A"))
}
