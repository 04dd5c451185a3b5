package notifier

import (
	"github.com/egl2k/league-sim/internal/league"
)

// Notifier defines a high-level interface for announcing league events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// After a full draft run
	SendDraftSummary(st *league.State, dryRun bool) error
	// After a week of matches has been simulated
	SendWeekResults(st *league.State, week int, results []league.MatchResult, dryRun bool) error
	// On demand, the current regular-season table
	SendStandings(st *league.State, records []league.TeamRecord, dryRun bool) error
	// After playoffs conclude
	SendSeasonReport(st *league.State, dryRun bool) error
}
