package roster

import (
	"sync"
)

// MockStore is a mock implementation of the PlayerStore interface for
// testing. It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	ListFunc        func() ([]Player, error)
	GetFunc         func(id string) (*Player, error)
	CreateFunc      func(p Player) (*Player, error)
	UpdateFunc      func(id string, upd PlayerUpdate) error
	UpdateStatsFunc func(id string, wins, losses int) error
	DeleteFunc      func(id string) error
	SubscribeFunc   func(onChange func([]Player), onError func(error)) func()
	ClearFunc       func() error

	// Call records
	CreateCalls      []Player
	UpdateCalls      []UpdateCall
	UpdateStatsCalls []UpdateStatsCall
	DeleteCalls      []string
	NudgeCalls       int
	ClearCalls       int
}

// UpdateCall holds the arguments for a call to Update.
type UpdateCall struct {
	ID     string
	Update PlayerUpdate
}

// UpdateStatsCall holds the arguments for a call to UpdateStats.
type UpdateStatsCall struct {
	ID     string
	Wins   int
	Losses int
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

// Reset clears all call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateCalls = nil
	m.UpdateCalls = nil
	m.UpdateStatsCalls = nil
	m.DeleteCalls = nil
	m.NudgeCalls = 0
	m.ClearCalls = 0
}

func (m *MockStore) List() ([]Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListFunc != nil {
		return m.ListFunc()
	}
	return nil, nil
}

func (m *MockStore) Get(id string) (*Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetFunc != nil {
		return m.GetFunc(id)
	}
	return nil, storeErr("get player", KindNotFound, nil)
}

func (m *MockStore) Create(p Player) (*Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateCalls = append(m.CreateCalls, p)
	if m.CreateFunc != nil {
		return m.CreateFunc(p)
	}
	created := p
	created.ID = "mock-id"
	return &created, nil
}

func (m *MockStore) Update(id string, upd PlayerUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpdateCalls = append(m.UpdateCalls, UpdateCall{ID: id, Update: upd})
	if m.UpdateFunc != nil {
		return m.UpdateFunc(id, upd)
	}
	return nil
}

func (m *MockStore) UpdateStats(id string, wins, losses int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpdateStatsCalls = append(m.UpdateStatsCalls, UpdateStatsCall{ID: id, Wins: wins, Losses: losses})
	if m.UpdateStatsFunc != nil {
		return m.UpdateStatsFunc(id, wins, losses)
	}
	return nil
}

func (m *MockStore) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeleteCalls = append(m.DeleteCalls, id)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(id)
	}
	return nil
}

func (m *MockStore) Subscribe(onChange func([]Player), onError func(error)) func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SubscribeFunc != nil {
		return m.SubscribeFunc(onChange, onError)
	}
	return func() {}
}

func (m *MockStore) Nudge() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.NudgeCalls++
}

func (m *MockStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ClearCalls++
	if m.ClearFunc != nil {
		return m.ClearFunc()
	}
	return nil
}

func (m *MockStore) Close() {}
