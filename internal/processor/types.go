package processor

import (
	"time"

	"github.com/mauv0809/elo-ladder/internal/ladder"
	"github.com/mauv0809/elo-ladder/internal/metrics"
	"github.com/mauv0809/elo-ladder/internal/pubsub"
)

// Processor records match results against the ladder.
type Processor struct {
	store    Store
	pubsub   pubsub.PubSubClient
	notifier Notifier
	metrics  metrics.Metrics
	retry    RetryPolicy
}

// RetryPolicy bounds how often a match is re-snapshotted and recomputed after
// a concurrent update to one of its participants.
type RetryPolicy struct {
	MaxAttempts uint64
	BaseDelay   time.Duration
}

// DefaultRetryPolicy allows five attempts starting at a 5ms backoff.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 5, BaseDelay: 5 * time.Millisecond}
}

// Registration is the outcome of adding a player to one mode.
type Registration struct {
	Mode   ladder.Mode
	Player ladder.PlayerRecord
	Err    error
}

// Submission is a match result received from outside, e.g. over Pub/Sub.
type Submission struct {
	Kind    ladder.MatchKind `json:"kind" msgpack:"kind"`
	Mode    string           `json:"mode,omitempty" msgpack:"mode"`
	Winners []string         `json:"winners" msgpack:"winners"`
	Losers  []string         `json:"losers" msgpack:"losers"`
}

// participant is one player's side of a match: who they are, whether they
// won, and whose pre-match ratings form their opponent rating.
type participant struct {
	name      string
	won       bool
	opponents []string
}
