package ladder

import (
	"context"
	"sync"
)

// MockStore is a mock implementation of the Store interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	GetFunc          func(mode Mode, name string) (PlayerRecord, error)
	GetAllFunc       func(mode Mode, names []string) (map[string]PlayerRecord, error)
	ListFunc         func(mode Mode) ([]PlayerRecord, error)
	CreateFunc       func(mode Mode, name string) (PlayerRecord, error)
	ApplyUpdatesFunc func(mode Mode, updates []Update) error

	// Call records
	GetAllCalls []struct {
		Mode  Mode
		Names []string
	}
	CreateCalls []struct {
		Mode Mode
		Name string
	}
	ApplyUpdatesCalls []struct {
		Mode    Mode
		Updates []Update
	}
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

// Reset clears all call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetAllCalls = nil
	m.CreateCalls = nil
	m.ApplyUpdatesCalls = nil
}

func (m *MockStore) Get(_ context.Context, mode Mode, name string) (PlayerRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetFunc != nil {
		return m.GetFunc(mode, name)
	}
	return PlayerRecord{}, ErrPlayerNotFound
}

func (m *MockStore) GetAll(_ context.Context, mode Mode, names []string) (map[string]PlayerRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetAllCalls = append(m.GetAllCalls, struct {
		Mode  Mode
		Names []string
	}{mode, append([]string(nil), names...)})
	if m.GetAllFunc != nil {
		return m.GetAllFunc(mode, names)
	}
	return map[string]PlayerRecord{}, nil
}

func (m *MockStore) List(_ context.Context, mode Mode) ([]PlayerRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListFunc != nil {
		return m.ListFunc(mode)
	}
	return []PlayerRecord{}, nil
}

func (m *MockStore) Create(_ context.Context, mode Mode, name string) (PlayerRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateCalls = append(m.CreateCalls, struct {
		Mode Mode
		Name string
	}{mode, name})
	if m.CreateFunc != nil {
		return m.CreateFunc(mode, name)
	}
	return PlayerRecord{Name: name, Rating: 1000}, nil
}

func (m *MockStore) ApplyUpdates(_ context.Context, mode Mode, updates []Update) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ApplyUpdatesCalls = append(m.ApplyUpdatesCalls, struct {
		Mode    Mode
		Updates []Update
	}{mode, append([]Update(nil), updates...)})
	if m.ApplyUpdatesFunc != nil {
		return m.ApplyUpdatesFunc(mode, updates)
	}
	return nil
}
