package http

import (
	"net/http"

	"github.com/egl2k/league-sim/internal/config"
	"github.com/egl2k/league-sim/internal/engine"
	"github.com/egl2k/league-sim/internal/league"
	"github.com/egl2k/league-sim/internal/metrics"
	"github.com/egl2k/league-sim/internal/notifier"
	"github.com/egl2k/league-sim/internal/pubsub"
)

func NewServer(store league.LeagueStore, eng *engine.Engine, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config, notifier notifier.Notifier, pubsub pubsub.PubSubClient, initial *league.State) *Server {
	server := &Server{
		Store:          store,
		Engine:         eng,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Notifier:       notifier,
		Pubsub:         pubsub,
		Router:         http.NewServeMux(),
		state:          initial,
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// This makes it easy to add more middlewares in the future, like an authentication middleware.
	// e.g. Chain(s.MyHandler(), paramsMiddleware, authMiddleware)
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("/clear", Chain(s.ClearStoreHandler(), paramsMiddleware))
	s.Router.Handle("/players", Chain(s.ListPlayersHandler(), paramsMiddleware))
	s.Router.Handle("/teams", Chain(s.ListTeamsHandler(), paramsMiddleware))
	s.Router.Handle("/games", Chain(s.ListGamesHandler(), paramsMiddleware))
	s.Router.Handle("/league", Chain(s.LeagueStateHandler(), paramsMiddleware))
	s.Router.Handle("/league/save", Chain(s.SaveLeagueHandler(), paramsMiddleware))
	s.Router.Handle("/standings", Chain(s.StandingsHandler(), paramsMiddleware))
	s.Router.Handle("/awards", Chain(s.AwardsHandler(), paramsMiddleware))
	s.Router.Handle("/draft/generate-order", Chain(s.GenerateDraftOrderHandler(), paramsMiddleware))
	s.Router.Handle("/draft/run-full", Chain(s.RunDraftHandler(), paramsMiddleware))
	s.Router.Handle("/draft/start", Chain(s.StartDraftHandler(), paramsMiddleware))
	s.Router.Handle("/draft/pick", Chain(s.DraftPickHandler(), paramsMiddleware))
	s.Router.Handle("/simulate/1v1", Chain(s.SimulateOneOffHandler(), paramsMiddleware))
	s.Router.Handle("/schedule/generate", Chain(s.GenerateScheduleHandler(), paramsMiddleware))
	s.Router.Handle("/schedule/simulate-week", Chain(s.SimulateWeekHandler(), paramsMiddleware))
	s.Router.Handle("/season/run-full", Chain(s.RunSeasonHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
