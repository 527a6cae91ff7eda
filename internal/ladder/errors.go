package ladder

import "errors"

// Sentinel kinds for ladder errors. Callers match them with errors.Is.
var (
	ErrPlayerNotFound       = errors.New("player not found")
	ErrAlreadyExists        = errors.New("player already exists")
	ErrDuplicateParticipant = errors.New("player listed more than once in a match")
	ErrInvalidMode          = errors.New("invalid mode")
	ErrInvalidArgumentCount = errors.New("invalid argument count")
	ErrInvalidName          = errors.New("invalid player name")
	ErrStoreConflict        = errors.New("concurrent update conflict")
	ErrStoreUnavailable     = errors.New("ladder store unavailable")
)
