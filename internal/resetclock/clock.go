// Package resetclock computes the daily server reset instant and the time
// remaining until it. Everything here is UTC and free of state.
package resetclock

import (
	"fmt"
	"time"
)

// Clock supplies the current instant.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in UTC.
type SystemClock struct{}

// Now returns the current UTC time
func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// NextReset returns the reset instant that follows now.
//
// The candidate is today's hour:minute in UTC. It moves to the next calendar
// day once now's hour has reached the reset hour; the minute is not compared.
// With a non-zero reset minute this advances a day early during the reset
// hour itself (reset 04:30, now 04:10 gives tomorrow 04:30).
func NextReset(now time.Time, hour, minute int) time.Time {
	now = now.UTC()
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, time.UTC)
	if now.Hour() >= hour {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// Remaining returns the duration from now until NextReset.
func Remaining(now time.Time, hour, minute int) time.Duration {
	return NextReset(now, hour, minute).Sub(now)
}

// IsResetBoundary reports whether now falls inside the reset minute.
// A tick that misses this minute skips that day's reset; there is no catch-up.
func IsResetBoundary(now time.Time, hour, minute int) bool {
	now = now.UTC()
	return now.Hour() == hour && now.Minute() == minute
}

// Countdown is a broken-down remaining duration until a reset instant.
type Countdown struct {
	Hours   int
	Minutes int
	Seconds int
	Until   time.Time
}

// NewCountdown breaks the span between now and next into whole hours,
// minutes and seconds. Sub-second remainders are truncated.
func NewCountdown(now, next time.Time) Countdown {
	total := int(next.Sub(now) / time.Second)
	if total < 0 {
		total = 0
	}
	return Countdown{
		Hours:   total / SecondsPerHour,
		Minutes: (total / SecondsPerMinute) % MinutesPerHour,
		Seconds: total % SecondsPerMinute,
		Until:   next,
	}
}

// CountdownAt computes the countdown to the next reset as seen from now.
func CountdownAt(now time.Time, hour, minute int) Countdown {
	return NewCountdown(now, NextReset(now, hour, minute))
}

// Remaining returns the countdown as a duration.
func (c Countdown) Remaining() time.Duration {
	return time.Duration(c.Hours)*time.Hour +
		time.Duration(c.Minutes)*time.Minute +
		time.Duration(c.Seconds)*time.Second
}

// RelativeTimestamp renders the reset instant as a Discord relative
// timestamp token, e.g. "<t:1717473600:R>".
func (c Countdown) RelativeTimestamp() string {
	return RelativeTimestamp(c.Until)
}

// RelativeTimestamp formats t as a relative timestamp token.
func RelativeTimestamp(t time.Time) string {
	return fmt.Sprintf(relativeTimestampFormat, t.Unix())
}
