package notifier

import (
	"github.com/mauv0809/elo-ladder/internal/ladder"
)

// Notifier defines a high-level interface for sending notifications about business events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// For recorded matches
	SendMatchResult(result *ladder.MatchResult, dryRun bool) error
	// For ladder listings
	SendLadder(mode ladder.Mode, players []ladder.PlayerRecord, dryRun bool) error
}
