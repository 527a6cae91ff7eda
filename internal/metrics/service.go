package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		MatchesRecorded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ladder_matches_recorded_total",
			Help: "The total number of match results committed to the ladder.",
		}, []string{"mode", "kind"}),
		MatchFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ladder_match_failures_total",
			Help: "The total number of match results that could not be recorded.",
		}, []string{"mode", "kind"}),
		StoreConflicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ladder_store_conflicts_total",
			Help: "The total number of optimistic update conflicts that triggered a retry.",
		}, []string{"mode"}),
		PlayersRegistered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ladder_players_registered_total",
			Help: "The total number of players added to a ladder.",
		}, []string{"mode"}),
		RecordDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "ladder_match_record_duration_seconds",
			Help:    "The duration of recording a single match, retries included.",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),
		SlackNotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ladder_slack_notifications_sent_total",
			Help: "The total number of Slack notifications successfully sent.",
		}),
		SlackNotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ladder_slack_notifications_failed_total",
			Help: "The total number of Slack notifications that failed to send.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ladder_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.MatchesRecorded,
		s.MatchFailures,
		s.StoreConflicts,
		s.PlayersRegistered,
		s.RecordDuration,
		s.SlackNotifSent,
		s.SlackNotifFailed,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncMatchesRecorded(mode, kind string) {
	s.MatchesRecorded.WithLabelValues(mode, kind).Inc()
}

func (s *Service) IncMatchFailures(mode, kind string) {
	s.MatchFailures.WithLabelValues(mode, kind).Inc()
}

func (s *Service) IncStoreConflicts(mode string) {
	s.StoreConflicts.WithLabelValues(mode).Inc()
}

func (s *Service) IncPlayersRegistered(mode string) {
	s.PlayersRegistered.WithLabelValues(mode).Inc()
}

func (s *Service) ObserveRecordDuration(duration float64) {
	s.RecordDuration.Observe(duration)
}

func (s *Service) IncSlackNotifSent() {
	s.SlackNotifSent.Inc()
}

func (s *Service) IncSlackNotifFailed() {
	s.SlackNotifFailed.Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
