package dailies

import (
	"fmt"
	"time"

	"github.com/osse101/resetbot/internal/resetclock"
)

const (
	statusFormat       = "%s %dH %dM"
	announcementFormat = "%s %s server has reset %s."
	reminderFormat     = "Make sure to do your dailies today!\nYou have %d Hours and %d Mins to do them :)"
	countdownFormat    = "%s %s will reset in %d hours %d minutes and %d seconds.\nOr about %s"
)

// StatusText is the presence line, e.g. "NA 2H 12M".
func StatusText(region string, c resetclock.Countdown) string {
	return fmt.Sprintf(statusFormat, region, c.Hours, c.Minutes)
}

// AnnouncementText is posted to the announcement channel when the reset happens.
func AnnouncementText(game, region string, resetAt time.Time) string {
	return fmt.Sprintf(announcementFormat, game, region, resetclock.RelativeTimestamp(resetAt))
}

// ReminderText is sent privately to each pending subscriber.
func ReminderText(c resetclock.Countdown) string {
	return fmt.Sprintf(reminderFormat, c.Hours, c.Minutes)
}

// CountdownText answers a reset time query.
func CountdownText(r CountdownReport) string {
	return fmt.Sprintf(countdownFormat,
		r.GameName, r.ServerRegion,
		r.Countdown.Hours, r.Countdown.Minutes, r.Countdown.Seconds,
		r.Countdown.RelativeTimestamp())
}
