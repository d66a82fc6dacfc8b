package discord

// Replies to slash commands
const (
	MsgSubscribed        = "You are now part of the reminders pool."
	MsgAlreadySubscribed = "You are already a part of the reminders pool."
	MsgUnsubscribed      = "You are no longer part of the reminders pool."
	MsgNotSubscribed     = "You were never part of the reminders pool."
	MsgMarkedDone        = "Congratulations, You will be reminded again after the reset :)"
	MsgAlreadyDone       = "You have already finished your dailies."
	MsgPong              = "Pong! 🏓"

	MsgStatusSubscribed    = "You are part of the reminders pool."
	MsgStatusNotSubscribed = "You are not part of the reminders pool."
	MsgStatusDone          = "You have finished your dailies for today."
	MsgStatusNotDone       = "You have not finished your dailies yet."
	msgStatusResetFormat   = "Next reset in %d hours and %d minutes, %s"
)
