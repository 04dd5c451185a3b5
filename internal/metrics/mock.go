package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
type Mock struct {
	mu sync.Mutex

	DraftRunsCount        int
	WeeksSimulatedCount   int
	MatchesSimulatedTotal int
	SeasonsCompletedCount int
	NotifSentCount        int
	NotifFailedCount      int
	ObservedDurations     []float64
	StartupTime           float64
}

var _ Metrics = (*Mock)(nil)

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) IncDraftRuns() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DraftRunsCount++
}

func (m *Mock) IncWeeksSimulated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.WeeksSimulatedCount++
}

func (m *Mock) AddMatchesSimulated(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.MatchesSimulatedTotal += count
}

func (m *Mock) IncSeasonsCompleted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SeasonsCompletedCount++
}

func (m *Mock) IncNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.NotifSentCount++
}

func (m *Mock) IncNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.NotifFailedCount++
}

func (m *Mock) ObserveSimulationDuration(seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ObservedDurations = append(m.ObservedDurations, seconds)
}

func (m *Mock) SetStartupTime(seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StartupTime = seconds
}
