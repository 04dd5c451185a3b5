package notifier

import (
	"sync"

	"github.com/egl2k/league-sim/internal/league"
)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Call records
	SendDraftSummaryCalls []*league.State
	SendWeekResultsCalls  []struct {
		Week    int
		Results []league.MatchResult
	}
	SendStandingsCalls    [][]league.TeamRecord
	SendSeasonReportCalls []*league.State

	// Optional error injection
	Err error
}

var _ Notifier = (*Mock)(nil)

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendDraftSummaryCalls = nil
	m.SendWeekResultsCalls = nil
	m.SendStandingsCalls = nil
	m.SendSeasonReportCalls = nil
}

func (m *Mock) SendDraftSummary(st *league.State, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendDraftSummaryCalls = append(m.SendDraftSummaryCalls, st)
	return m.Err
}

func (m *Mock) SendWeekResults(st *league.State, week int, results []league.MatchResult, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendWeekResultsCalls = append(m.SendWeekResultsCalls, struct {
		Week    int
		Results []league.MatchResult
	}{week, results})
	return m.Err
}

func (m *Mock) SendStandings(st *league.State, records []league.TeamRecord, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendStandingsCalls = append(m.SendStandingsCalls, records)
	return m.Err
}

func (m *Mock) SendSeasonReport(st *league.State, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendSeasonReportCalls = append(m.SendSeasonReportCalls, st)
	return m.Err
}
