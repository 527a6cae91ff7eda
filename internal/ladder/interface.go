package ladder

import "context"

// Store is the persistent collection of player records for every mode.
type Store interface {
	// Get returns a single player, or ErrPlayerNotFound.
	Get(ctx context.Context, mode Mode, name string) (PlayerRecord, error)
	// GetAll returns every requested player keyed by name. It fails with
	// ErrPlayerNotFound if any of them is missing.
	GetAll(ctx context.Context, mode Mode, names []string) (map[string]PlayerRecord, error)
	// List returns all players of a mode, highest rating first.
	List(ctx context.Context, mode Mode) ([]PlayerRecord, error)
	// Create registers a new player at the initial rating.
	Create(ctx context.Context, mode Mode, name string) (PlayerRecord, error)
	// ApplyUpdates writes all updates or none of them. A row whose version
	// moved since the snapshot fails the whole call with ErrStoreConflict.
	ApplyUpdates(ctx context.Context, mode Mode, updates []Update) error
}
