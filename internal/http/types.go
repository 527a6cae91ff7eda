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

type Server struct {
	Store          ladder.Store
	Processor      *processor.Processor
	Notifier       notifier.Notifier
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Router         *http.ServeMux
	pubsub         pubsub.PubSubClient
}

type addPlayerRequest struct {
	Mode string `json:"mode"`
	Name string `json:"name"`
}

type registrationResponse struct {
	Mode   ladder.Mode          `json:"mode"`
	Player *ladder.PlayerRecord `json:"player,omitempty"`
	Error  string               `json:"error,omitempty"`
}

type duelRequest struct {
	Mode   string `json:"mode"`
	Winner string `json:"winner"`
	Loser  string `json:"loser"`
}

type teamRequest struct {
	Winners []string `json:"winners"`
	Losers  []string `json:"losers"`
}

type ffaRequest struct {
	Winner string   `json:"winner"`
	Losers []string `json:"losers"`
}

type oddsResponse struct {
	Mode           ladder.Mode `json:"mode"`
	Player         string      `json:"player"`
	Opponent       string      `json:"opponent"`
	WinProbability float64     `json:"win_probability"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// pushEnvelope is the body Pub/Sub sends to a push subscription.
type pushEnvelope struct {
	Subscription string `json:"subscription"`
	Message      struct {
		Data      string `json:"data"`
		MessageID string `json:"messageId"`
	} `json:"message"`
}
