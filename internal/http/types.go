package http

import (
	"net/http"
	"sync"

	"github.com/egl2k/league-sim/internal/config"
	"github.com/egl2k/league-sim/internal/engine"
	"github.com/egl2k/league-sim/internal/league"
	"github.com/egl2k/league-sim/internal/metrics"
	"github.com/egl2k/league-sim/internal/notifier"
	"github.com/egl2k/league-sim/internal/pubsub"
)

type Server struct {
	Store          league.LeagueStore
	Engine         *engine.Engine
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Notifier       notifier.Notifier
	Pubsub         pubsub.PubSubClient
	Router         *http.ServeMux

	// mu guards the single mutable league state and any in-flight
	// interactive draft session. Handlers clone, compute, then swap.
	mu    sync.Mutex
	state *league.State
	draft *engine.DraftSession
}
