package ladder

import (
	"fmt"
	"time"
)

// MatchKind is the shape of a recorded match.
type MatchKind string

const (
	KindDuel       MatchKind = "duel"
	KindTeam       MatchKind = "team"
	KindFreeForAll MatchKind = "free_for_all"
)

// Outcome is one participant's rating change in a recorded match.
type Outcome struct {
	Name      string  `json:"name" msgpack:"name"`
	Won       bool    `json:"won" msgpack:"won"`
	PreRating float64 `json:"pre_rating" msgpack:"pre_rating"`
	NewRating float64 `json:"new_rating" msgpack:"new_rating"`
	Delta     float64 `json:"delta" msgpack:"delta"`
	Wins      int     `json:"wins" msgpack:"wins"`
	Losses    int     `json:"losses" msgpack:"losses"`
}

// MatchResult is returned once a match has been committed.
type MatchResult struct {
	MatchID    string    `json:"match_id" msgpack:"match_id"`
	Mode       Mode      `json:"mode" msgpack:"mode"`
	Kind       MatchKind `json:"kind" msgpack:"kind"`
	RecordedAt time.Time `json:"recorded_at" msgpack:"recorded_at"`
	Players    []Outcome `json:"players" msgpack:"players"`
}

// Outcome returns the named participant's outcome.
func (r *MatchResult) Outcome(name string) (Outcome, bool) {
	for _, o := range r.Players {
		if o.Name == name {
			return o, true
		}
	}
	return Outcome{}, false
}

// Winners returns the outcomes of the winning side.
func (r *MatchResult) Winners() []Outcome {
	return r.side(true)
}

// Losers returns the outcomes of the losing side.
func (r *MatchResult) Losers() []Outcome {
	return r.side(false)
}

func (r *MatchResult) side(won bool) []Outcome {
	var out []Outcome
	for _, o := range r.Players {
		if o.Won == won {
			out = append(out, o)
		}
	}
	return out
}

// MarshalText encodes the mode as its command token.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMode, int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText accepts the tokens understood by ParseMode.
func (m *Mode) UnmarshalText(text []byte) error {
	mode, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}
