package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                sync.Mutex
	matchesRecorded   map[string]int
	matchFailures     map[string]int
	storeConflicts    int
	playersRegistered map[string]int
	recordDurations   []float64
	slackNotifSent    int
	slackNotifFailed  int
	startupTime       float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		matchesRecorded:   make(map[string]int),
		matchFailures:     make(map[string]int),
		playersRegistered: make(map[string]int),
		recordDurations:   make([]float64, 0),
	}
}

func (m *Mock) IncMatchesRecorded(mode, kind string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matchesRecorded[mode+"/"+kind]++
}

func (m *Mock) IncMatchFailures(mode, kind string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matchFailures[mode+"/"+kind]++
}

func (m *Mock) IncStoreConflicts(mode string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.storeConflicts++
}

func (m *Mock) IncPlayersRegistered(mode string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playersRegistered[mode]++
}

func (m *Mock) ObserveRecordDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recordDurations = append(m.recordDurations, duration)
}

func (m *Mock) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifSent++
}

func (m *Mock) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifFailed++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// MatchesRecorded returns how often IncMatchesRecorded was called for mode and kind.
func (m *Mock) MatchesRecorded(mode, kind string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.matchesRecorded[mode+"/"+kind]
}

// MatchFailures returns how often IncMatchFailures was called for mode and kind.
func (m *Mock) MatchFailures(mode, kind string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.matchFailures[mode+"/"+kind]
}

// StoreConflicts returns the number of times IncStoreConflicts was called.
func (m *Mock) StoreConflicts() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.storeConflicts
}

// PlayersRegistered returns how often IncPlayersRegistered was called for mode.
func (m *Mock) PlayersRegistered(mode string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playersRegistered[mode]
}

// SlackNotifSent returns the number of times IncSlackNotifSent was called.
func (m *Mock) SlackNotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifSent
}

// SlackNotifFailed returns the number of times IncSlackNotifFailed was called.
func (m *Mock) SlackNotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifFailed
}
