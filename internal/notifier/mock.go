package notifier

import (
	"sync"

	"github.com/amanijl/courtside/internal/ranking"
	"github.com/amanijl/courtside/internal/roster"
)

// MockNotifier is a mock implementation of the Notifier interface for
// testing. It is safe for concurrent use.
type MockNotifier struct {
	mu sync.Mutex

	SendResultRecordedFunc func(player roster.Player, dryRun bool) error
	SendStandingsFunc      func(standings []ranking.RankedPlayer, dryRun bool) error

	ResultRecordedCalls []roster.Player
	StandingsCalls      [][]ranking.RankedPlayer
}

var _ Notifier = (*MockNotifier)(nil)

// NewMock creates a new mock instance.
func NewMock() *MockNotifier {
	return &MockNotifier{}
}

// Reset clears all call records.
func (m *MockNotifier) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ResultRecordedCalls = nil
	m.StandingsCalls = nil
}

func (m *MockNotifier) SendResultRecorded(player roster.Player, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ResultRecordedCalls = append(m.ResultRecordedCalls, player)
	if m.SendResultRecordedFunc != nil {
		return m.SendResultRecordedFunc(player, dryRun)
	}
	return nil
}

func (m *MockNotifier) SendStandings(standings []ranking.RankedPlayer, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StandingsCalls = append(m.StandingsCalls, standings)
	if m.SendStandingsFunc != nil {
		return m.SendStandingsFunc(standings, dryRun)
	}
	return nil
}
