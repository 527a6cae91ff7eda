package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncMatchesRecorded(mode, kind string)
	IncMatchFailures(mode, kind string)
	IncStoreConflicts(mode string)
	IncPlayersRegistered(mode string)
	ObserveRecordDuration(duration float64)
	IncSlackNotifSent()
	IncSlackNotifFailed()
	SetStartupTime(duration float64)
}
