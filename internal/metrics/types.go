package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
type Service struct {
	MatchesRecorded    *prometheus.CounterVec
	MatchFailures      *prometheus.CounterVec
	StoreConflicts     *prometheus.CounterVec
	PlayersRegistered  *prometheus.CounterVec
	RecordDuration     prometheus.Histogram
	SlackNotifSent     prometheus.Counter
	SlackNotifFailed   prometheus.Counter
	StartupTimeSeconds prometheus.Gauge
}
