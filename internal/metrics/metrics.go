package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameHTTPRequestsTotal,
			Help:      HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      MetricNameHTTPRequestDuration,
			Help:      HelpTextHTTPRequestDuration,
			Buckets:   HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      MetricNameHTTPRequestsInFlight,
			Help:      HelpTextHTTPRequestsInFlight,
		},
	)
)

// Reset Metrics
var (
	ResetsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameResetsTotal,
			Help:      HelpTextResetsTotal,
		},
	)

	AnnouncementsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameAnnouncementsTotal,
			Help:      HelpTextAnnouncementsTotal,
		},
		[]string{LabelResult},
	)

	SecondsUntilReset = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      MetricNameSecondsUntilReset,
			Help:      HelpTextSecondsUntilReset,
		},
	)

	TickDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      MetricNameTickDuration,
			Help:      HelpTextTickDuration,
			Buckets:   TickDurationBuckets,
		},
		[]string{LabelTick},
	)
)

// Reminder Metrics
var (
	RemindersSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameRemindersSentTotal,
			Help:      HelpTextRemindersSentTotal,
		},
	)

	ReminderFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameReminderFailuresTotal,
			Help:      HelpTextReminderFailuresTotal,
		},
	)

	ReminderPoolSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      MetricNameReminderPoolSize,
			Help:      HelpTextReminderPoolSize,
		},
	)

	FinishedPoolSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      MetricNameFinishedPoolSize,
			Help:      HelpTextFinishedPoolSize,
		},
	)
)

// Command Metrics
var (
	CommandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameCommandsTotal,
			Help:      HelpTextCommandsTotal,
		},
		[]string{LabelCommand, LabelResult},
	)
)

// ResultLabel maps an error to the result label value.
func ResultLabel(err error) string {
	if err != nil {
		return ResultError
	}
	return ResultOK
}
