package scheduler

// Log messages
const (
	LogMsgTickDropped = "Scheduler tick dropped, worker queue full or stopped"
)
