package dailies

import "time"

// Tick cadences. The reset check relies on the fine tick firing once per
// minute; a longer interval could step over the boundary minute.
const (
	FineTickInterval   = time.Minute
	CoarseTickInterval = 60 * time.Minute
)

// Worker pool sizing: one worker per tick kind so neither waits on the other.
const (
	tickWorkers   = 2
	tickQueueSize = 4
)

// Job names used in scheduler logs
const (
	jobNameFineTick   = "fine_tick"
	jobNameCoarseTick = "coarse_tick"
)

// Log messages
const (
	LogMsgStarting            = "Daily reset tracker starting"
	LogMsgAlreadyStarted      = "Daily reset tracker already started"
	LogMsgInitialStatusFailed = "Failed to publish initial reset status"
	LogMsgCountdownRefreshed  = "Queried reset time"
	LogMsgResetDetected       = "Server reset detected, completions cleared"
	LogMsgResetAlreadyHandled = "Reset already handled for this date, skipping"
	LogMsgAnnouncementSent    = "Reset announcement sent"
	LogMsgRemindersStarting   = "Preparing to remind users to do their dailies"
	LogMsgRemindersEmptyPool  = "Reminders pool is empty, skipping"
	LogMsgReminderSent        = "Reminded user to do dailies"
	LogMsgReminderFailed      = "Failed to remind user"
	LogMsgRemindersFinished   = "Reminder round finished"
	LogMsgUserSubscribed      = "User added themselves to the reminders pool"
	LogMsgUserUnsubscribed    = "User removed themselves from the reminders pool"
	LogMsgUserMarkedDone      = "User marked their dailies as done"
	LogMsgShuttingDown        = "Shutting down daily reset tracker"
	LogMsgShutdownComplete    = "Daily reset tracker shutdown complete"
	LogMsgShutdownTimeout     = "Daily reset tracker shutdown timeout, a tick may still be running"
)
