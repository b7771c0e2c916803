package metrics

import "sync"

// MockMetrics is a spy implementation of the Metrics interface for tests.
// It is safe for concurrent use.
type MockMetrics struct {
	mu sync.Mutex

	RosterWritesCount     int
	WriteFailuresCount    int
	SnapshotsPushedCount  int
	SlackNotifSentCount   int
	SlackNotifFailedCount int
	FeedConnectedValue    bool
	SnapshotWaits         []float64
	StartupTimes          []float64
}

var _ Metrics = (*MockMetrics)(nil)

// NewMockMetrics creates a new mock instance.
func NewMockMetrics() *MockMetrics {
	return &MockMetrics{}
}

func (m *MockMetrics) IncRosterWrites() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RosterWritesCount++
}

func (m *MockMetrics) IncWriteFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.WriteFailuresCount++
}

func (m *MockMetrics) IncSnapshotsPushed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SnapshotsPushedCount++
}

func (m *MockMetrics) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SlackNotifSentCount++
}

func (m *MockMetrics) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SlackNotifFailedCount++
}

func (m *MockMetrics) SetFeedConnected(connected bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FeedConnectedValue = connected
}

func (m *MockMetrics) ObserveSnapshotWait(seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SnapshotWaits = append(m.SnapshotWaits, seconds)
}

func (m *MockMetrics) SetStartupTime(seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StartupTimes = append(m.StartupTimes, seconds)
}
