package notifier

import "github.com/egl2k/league-sim/internal/league"

// Noop is a Notifier that discards every notification. It is used when no
// Slack credentials are configured.
type Noop struct{}

var _ Notifier = (*Noop)(nil)

// NewNoop creates a new no-op notifier.
func NewNoop() *Noop {
	return &Noop{}
}

func (n *Noop) SendDraftSummary(st *league.State, dryRun bool) error {
	return nil
}

func (n *Noop) SendWeekResults(st *league.State, week int, results []league.MatchResult, dryRun bool) error {
	return nil
}

func (n *Noop) SendStandings(st *league.State, records []league.TeamRecord, dryRun bool) error {
	return nil
}

func (n *Noop) SendSeasonReport(st *league.State, dryRun bool) error {
	return nil
}
