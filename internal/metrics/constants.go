package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Namespace prefixes every metric this bot exports
const Namespace = "resetbot"

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Reset and reminder metric names
const (
	MetricNameResetsTotal           = "resets_total"
	MetricNameAnnouncementsTotal    = "announcements_total"
	MetricNameRemindersSentTotal    = "reminders_sent_total"
	MetricNameReminderFailuresTotal = "reminder_failures_total"
	MetricNameReminderPoolSize      = "reminder_pool_size"
	MetricNameFinishedPoolSize      = "finished_pool_size"
	MetricNameSecondsUntilReset     = "seconds_until_reset"
	MetricNameTickDuration          = "tick_duration_seconds"
	MetricNameCommandsTotal         = "commands_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Reset and reminder metric help text
const (
	HelpTextResetsTotal           = "Number of daily reset boundaries observed"
	HelpTextAnnouncementsTotal    = "Reset announcements by outcome"
	HelpTextRemindersSentTotal    = "Reminder direct messages delivered"
	HelpTextReminderFailuresTotal = "Reminder direct messages that could not be delivered"
	HelpTextReminderPoolSize      = "Users subscribed to reminders"
	HelpTextFinishedPoolSize      = "Users who finished today's task"
	HelpTextSecondsUntilReset     = "Cached seconds until the next reset"
	HelpTextTickDuration          = "Duration of scheduler ticks in seconds"
	HelpTextCommandsTotal         = "Commands handled by name and outcome"
)

// ============================================================================
// Labels
// ============================================================================

const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelTick    = "tick"
	LabelResult  = "result"
	LabelCommand = "command"
)

// Label values
const (
	TickFine   = "fine"
	TickCoarse = "coarse"

	ResultOK    = "ok"
	ResultError = "error"
)

// HTTPLatencyBuckets are histogram buckets for HTTP latency
var HTTPLatencyBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1}

// TickDurationBuckets stretch further since a coarse tick is throttled DM fan-out
var TickDurationBuckets = []float64{.01, .05, .1, .5, 1, 5, 15, 60, 300}
