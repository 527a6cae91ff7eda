package http

import (
	"net/http"

	"github.com/mauv0809/elo-ladder/internal/config"
	"github.com/mauv0809/elo-ladder/internal/ladder"
	"github.com/mauv0809/elo-ladder/internal/metrics"
	"github.com/mauv0809/elo-ladder/internal/notifier"
	"github.com/mauv0809/elo-ladder/internal/processor"
	"github.com/mauv0809/elo-ladder/internal/pubsub"
)

// NewServer wires the ladder API. notifier and pubsub may be nil.
func NewServer(store ladder.Store, processor *processor.Processor, notifier notifier.Notifier, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config, pubsub pubsub.PubSubClient) *Server {
	server := &Server{
		Store:          store,
		Processor:      processor,
		Notifier:       notifier,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Router:         http.NewServeMux(),
		pubsub:         pubsub,
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// e.g. Chain(s.MyHandler(), paramsMiddleware, authMiddleware)
	s.Router.Handle("GET /metrics", s.MetricsHandler)
	s.Router.Handle("GET /health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("GET /ladder/{mode}", Chain(s.LadderHandler(), paramsMiddleware))
	s.Router.Handle("POST /ladder/{mode}/announce", Chain(s.AnnounceLadderHandler(), paramsMiddleware))
	s.Router.Handle("GET /odds/{mode}", Chain(s.OddsHandler(), paramsMiddleware))
	s.Router.Handle("POST /players", Chain(s.AddPlayerHandler(), paramsMiddleware))
	s.Router.Handle("POST /matches/duel", Chain(s.DuelHandler(), paramsMiddleware))
	s.Router.Handle("POST /matches/team", Chain(s.TeamMatchHandler(), paramsMiddleware))
	s.Router.Handle("POST /matches/ffa", Chain(s.FreeForAllHandler(), paramsMiddleware))
	s.Router.Handle("POST /pubsub/submit-match", Chain(s.SubmitMatchHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
