package ladder

import (
	"fmt"
	"strings"
)

// Mode selects one of the independent ladders. Each mode owns its own
// namespace of players.
type Mode int

const (
	Solo Mode = iota
	Team
	FreeForAll
)

// Modes lists every mode in display order.
var Modes = []Mode{Solo, FreeForAll, Team}

// ParseMode maps the command tokens "1s", "2s" and "ffa" to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1s", "solo":
		return Solo, nil
	case "2s", "team":
		return Team, nil
	case "ffa":
		return FreeForAll, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

// String returns the command token for the mode.
func (m Mode) String() string {
	switch m {
	case Solo:
		return "1s"
	case Team:
		return "2s"
	case FreeForAll:
		return "ffa"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool {
	_, err := m.table()
	return err == nil
}

// table is the only place a mode is mapped to storage.
func (m Mode) table() (string, error) {
	switch m {
	case Solo:
		return "ladder_1s", nil
	case Team:
		return "ladder_2s", nil
	case FreeForAll:
		return "ladder_ffa", nil
	}
	return "", fmt.Errorf("%w: %d", ErrInvalidMode, int(m))
}

// PlayerRecord is one player's standing within a mode.
type PlayerRecord struct {
	Name    string  `json:"name" msgpack:"name"`
	Rating  float64 `json:"rating" msgpack:"rating"`
	Wins    int     `json:"wins" msgpack:"wins"`
	Losses  int     `json:"losses" msgpack:"losses"`
	Version int64   `json:"-" msgpack:"-"`
}

// Played returns the number of matches the player has taken part in.
func (p PlayerRecord) Played() int {
	return p.Wins + p.Losses
}

// Update is the new state for one player. Version must be the version read
// in the snapshot the new values were computed from.
type Update struct {
	Name    string
	Rating  float64
	Wins    int
	Losses  int
	Version int64
}
