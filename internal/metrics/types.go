package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service implements Metrics using Prometheus collectors.
type Service struct {
	DraftRuns          prometheus.Counter
	WeeksSimulated     prometheus.Counter
	MatchesSimulated   prometheus.Counter
	SeasonsCompleted   prometheus.Counter
	NotifSent          prometheus.Counter
	NotifFailed        prometheus.Counter
	SimulationDuration prometheus.Histogram
	StartupTimeSeconds prometheus.Gauge
}
