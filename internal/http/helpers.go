package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/elo-ladder/internal/ladder"
)

// statusFor maps ladder errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, ladder.ErrPlayerNotFound):
		return http.StatusNotFound
	case errors.Is(err, ladder.ErrAlreadyExists), errors.Is(err, ladder.ErrStoreConflict):
		return http.StatusConflict
	case errors.Is(err, ladder.ErrDuplicateParticipant),
		errors.Is(err, ladder.ErrInvalidMode),
		errors.Is(err, ladder.ErrInvalidArgumentCount),
		errors.Is(err, ladder.ErrInvalidName):
		return http.StatusBadRequest
	case errors.Is(err, ladder.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func respondWithJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to write response", "error", err)
	}
}

func respondWithError(w http.ResponseWriter, err error) {
	respondWithJSON(w, statusFor(err), errorResponse{Error: err.Error()})
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// modeFromPath reads the {mode} path segment.
func modeFromPath(r *http.Request) (ladder.Mode, error) {
	return ladder.ParseMode(r.PathValue("mode"))
}
