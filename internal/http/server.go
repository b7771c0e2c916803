package http

import (
	"net/http"

	"github.com/amanijl/courtside/internal/access"
	"github.com/amanijl/courtside/internal/config"
	"github.com/amanijl/courtside/internal/league"
	"github.com/amanijl/courtside/internal/metrics"
	"github.com/amanijl/courtside/internal/pubsub"
	"github.com/amanijl/courtside/internal/roster"
)

func NewServer(store roster.PlayerStore, leagueSvc *league.Service, gate *access.Gate, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config, pubsub pubsub.PubSubClient) *Server {
	server := &Server{
		Store:          store,
		League:         leagueSvc,
		Gate:           gate,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		PubSub:         pubsub,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// e.g. Chain(s.MyHandler(), paramsMiddleware, identityMiddleware)
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("/clear", Chain(s.ClearStoreHandler(), paramsMiddleware))
	s.Router.Handle("/standings", Chain(s.StandingsHandler(), paramsMiddleware))
	s.Router.Handle("/players", Chain(s.PlayersHandler(), paramsMiddleware, identityMiddleware))
	s.Router.Handle("/players/get", Chain(s.GetPlayerHandler(), paramsMiddleware))
	s.Router.Handle("/players/update", Chain(s.UpdatePlayerHandler(), paramsMiddleware, identityMiddleware))
	s.Router.Handle("/players/update-stats", Chain(s.UpdateStatsHandler(), paramsMiddleware, identityMiddleware))
	s.Router.Handle("/players/delete", Chain(s.DeletePlayerHandler(), paramsMiddleware, identityMiddleware))
	s.Router.Handle("/seed", Chain(s.SeedHandler(), paramsMiddleware))
	s.Router.Handle("/pubsub/push", Chain(s.RosterChangedHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
