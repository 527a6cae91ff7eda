package notifier

import (
	"sync"

	"github.com/mauv0809/elo-ladder/internal/ladder"
)

// MockNotifier is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type MockNotifier struct {
	mu sync.Mutex

	SendMatchResultFunc func(result *ladder.MatchResult, dryRun bool) error
	SendLadderFunc      func(mode ladder.Mode, players []ladder.PlayerRecord, dryRun bool) error

	SendMatchResultCalls []SendMatchResultCall
	SendLadderCalls      []SendLadderCall
}

// SendMatchResultCall holds the arguments for a call to SendMatchResult.
type SendMatchResultCall struct {
	Result *ladder.MatchResult
	DryRun bool
}

// SendLadderCall holds the arguments for a call to SendLadder.
type SendLadderCall struct {
	Mode    ladder.Mode
	Players []ladder.PlayerRecord
	DryRun  bool
}

// NewMock creates a new mock Notifier.
func NewMock() *MockNotifier {
	return &MockNotifier{}
}

func (m *MockNotifier) SendMatchResult(result *ladder.MatchResult, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendMatchResultCalls = append(m.SendMatchResultCalls, SendMatchResultCall{Result: result, DryRun: dryRun})
	if m.SendMatchResultFunc != nil {
		return m.SendMatchResultFunc(result, dryRun)
	}
	return nil
}

func (m *MockNotifier) SendLadder(mode ladder.Mode, players []ladder.PlayerRecord, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendLadderCalls = append(m.SendLadderCalls, SendLadderCall{Mode: mode, Players: players, DryRun: dryRun})
	if m.SendLadderFunc != nil {
		return m.SendLadderFunc(mode, players, dryRun)
	}
	return nil
}

// MatchResultCalls returns a copy of the recorded SendMatchResult calls.
func (m *MockNotifier) MatchResultCalls() []SendMatchResultCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]SendMatchResultCall(nil), m.SendMatchResultCalls...)
}
