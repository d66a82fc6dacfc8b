package resetclock

// Valid ranges for the configured reset time of day
const (
	MinResetHour   = 0
	MaxResetHour   = 23
	MinResetMinute = 0
	MaxResetMinute = 59
)

const (
	SecondsPerMinute = 60
	SecondsPerHour   = 3600
	MinutesPerHour   = 60
)

// relativeTimestampFormat is the Discord markdown token that clients render
// as "in 3 hours" / "2 minutes ago".
const relativeTimestampFormat = "<t:%d:R>"
