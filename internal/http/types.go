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

type Server struct {
	Store          roster.PlayerStore
	League         *league.Service
	Gate           *access.Gate
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	PubSub         pubsub.PubSubClient
	Router         *http.ServeMux
}
