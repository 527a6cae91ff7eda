package processor

import (
	"context"

	"github.com/mauv0809/elo-ladder/internal/ladder"
	"github.com/mauv0809/elo-ladder/internal/notifier"
)

// Store defines the ladder operations required by the processor.
type Store interface {
	GetAll(ctx context.Context, mode ladder.Mode, names []string) (map[string]ladder.PlayerRecord, error)
	Create(ctx context.Context, mode ladder.Mode, name string) (ladder.PlayerRecord, error)
	ApplyUpdates(ctx context.Context, mode ladder.Mode, updates []ladder.Update) error
}

// Notifier defines the notification operations required by the processor.
type Notifier interface {
	notifier.Notifier
}
