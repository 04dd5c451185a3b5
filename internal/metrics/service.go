package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		DraftRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "league_draft_runs_total",
			Help: "The total number of full draft runs.",
		}),
		WeeksSimulated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "league_weeks_simulated_total",
			Help: "The total number of schedule weeks simulated.",
		}),
		MatchesSimulated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "league_matches_simulated_total",
			Help: "The total number of individual matches simulated, including playoffs.",
		}),
		SeasonsCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "league_seasons_completed_total",
			Help: "The total number of full season runs completed.",
		}),
		NotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "league_notifications_sent_total",
			Help: "The total number of notifications successfully sent.",
		}),
		NotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "league_notifications_failed_total",
			Help: "The total number of notifications that failed to send.",
		}),
		SimulationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "league_simulation_duration_seconds",
			Help:    "The duration of individual simulation operations.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "league_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.DraftRuns,
		s.WeeksSimulated,
		s.MatchesSimulated,
		s.SeasonsCompleted,
		s.NotifSent,
		s.NotifFailed,
		s.SimulationDuration,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncDraftRuns() {
	s.DraftRuns.Inc()
}

func (s *Service) IncWeeksSimulated() {
	s.WeeksSimulated.Inc()
}

func (s *Service) AddMatchesSimulated(count int) {
	s.MatchesSimulated.Add(float64(count))
}

func (s *Service) IncSeasonsCompleted() {
	s.SeasonsCompleted.Inc()
}

func (s *Service) IncNotifSent() {
	s.NotifSent.Inc()
}

func (s *Service) IncNotifFailed() {
	s.NotifFailed.Inc()
}

func (s *Service) ObserveSimulationDuration(seconds float64) {
	s.SimulationDuration.Observe(seconds)
}

func (s *Service) SetStartupTime(seconds float64) {
	s.StartupTimeSeconds.Set(seconds)
}
