package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncDraftRuns()
	IncWeeksSimulated()
	AddMatchesSimulated(count int)
	IncSeasonsCompleted()
	IncNotifSent()
	IncNotifFailed()
	ObserveSimulationDuration(seconds float64)
	SetStartupTime(seconds float64)
}
