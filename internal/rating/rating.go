// Package rating implements the Elo expected-score and rating-update formulas.
package rating

import "math"

const (
	// K controls the magnitude of a rating change per match.
	K = 32
	// Initial is the rating every newly registered player starts with.
	Initial = 1000.0
	// deviation is the rating gap at which the stronger player is expected
	// to score ten times as often.
	deviation = 400
)

// Score is the actual outcome of a match from one player's point of view.
type Score float64

const (
	Loss Score = 0
	Draw Score = 0.5
	Win  Score = 1
)

// ExpectedScore returns the probability, in (0,1), that a player rated rating
// beats a player rated opponentRating.
func ExpectedScore(rating, opponentRating float64) float64 {
	return 1 / (1 + math.Pow(10, (opponentRating-rating)/deviation))
}

// WinProbability is ExpectedScore under the name used by the odds query.
func WinProbability(rating, opponentRating float64) float64 {
	return ExpectedScore(rating, opponentRating)
}

// NewRating returns the rating after a match with the given outcome, using K.
func NewRating(score Score, rating, opponentRating float64) float64 {
	return NewRatingK(score, rating, opponentRating, K)
}

// NewRatingK is NewRating with an explicit K-factor.
func NewRatingK(score Score, rating, opponentRating, k float64) float64 {
	return rating + k*(float64(score)-ExpectedScore(rating, opponentRating))
}

// Average returns the arithmetic mean of ratings, or 0 when none are given.
func Average(ratings ...float64) float64 {
	if len(ratings) == 0 {
		return 0
	}
	var sum float64
	for _, r := range ratings {
		sum += r
	}
	return sum / float64(len(ratings))
}
