package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/elo-ladder/internal/ladder"
	"github.com/mauv0809/elo-ladder/internal/processor"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

// LadderHandler lists one mode, or every mode keyed by token for "all".
func (s *Server) LadderHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if strings.EqualFold(r.PathValue("mode"), "all") {
			all := make(map[string][]ladder.PlayerRecord, len(ladder.Modes))
			for _, mode := range ladder.Modes {
				players, err := s.Store.List(r.Context(), mode)
				if err != nil {
					log.Error("Failed to list ladder", "mode", mode, "error", err)
					respondWithError(w, err)
					return
				}
				all[mode.String()] = players
			}
			respondWithJSON(w, http.StatusOK, all)
			return
		}

		mode, err := modeFromPath(r)
		if err != nil {
			respondWithError(w, err)
			return
		}
		players, err := s.Store.List(r.Context(), mode)
		if err != nil {
			log.Error("Failed to list ladder", "mode", mode, "error", err)
			respondWithError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, players)
	}
}

// AnnounceLadderHandler posts the standings of a mode to Slack.
func (s *Server) AnnounceLadderHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.Notifier == nil {
			http.Error(w, "Notifications are not configured", http.StatusServiceUnavailable)
			return
		}
		mode, err := modeFromPath(r)
		if err != nil {
			respondWithError(w, err)
			return
		}
		players, err := s.Store.List(r.Context(), mode)
		if err != nil {
			log.Error("Failed to list ladder", "mode", mode, "error", err)
			respondWithError(w, err)
			return
		}
		if err := s.Notifier.SendLadder(mode, players, processor.IsDryRun(r.Context())); err != nil {
			log.Error("Failed to announce ladder", "mode", mode, "error", err)
			http.Error(w, "Failed to announce ladder", http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusAccepted)
	}
}

func (s *Server) OddsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mode, err := modeFromPath(r)
		if err != nil {
			respondWithError(w, err)
			return
		}
		player := r.URL.Query().Get("player")
		opponent := r.URL.Query().Get("opponent")
		odds, err := s.Processor.Odds(r.Context(), mode, player, opponent)
		if err != nil {
			respondWithError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, oddsResponse{Mode: mode, Player: player, Opponent: opponent, WinProbability: odds})
	}
}

// AddPlayerHandler registers a player in one mode, or in every mode when
// mode is "all" or omitted.
func (s *Server) AddPlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addPlayerRequest
		if err := decodeJSON(r, &req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		if req.Mode == "" || strings.EqualFold(req.Mode, "all") {
			regs, err := s.Processor.AddPlayerToAll(r.Context(), req.Name)
			resp := make([]registrationResponse, 0, len(regs))
			for _, reg := range regs {
				item := registrationResponse{Mode: reg.Mode}
				if reg.Err != nil {
					item.Error = reg.Err.Error()
				} else {
					player := reg.Player
					item.Player = &player
				}
				resp = append(resp, item)
			}
			status := http.StatusCreated
			if err != nil {
				log.Warn("Player not added to every ladder", "name", req.Name, "error", err)
				status = statusFor(err)
			}
			respondWithJSON(w, status, resp)
			return
		}

		mode, err := ladder.ParseMode(req.Mode)
		if err != nil {
			respondWithError(w, err)
			return
		}
		player, err := s.Processor.AddPlayer(r.Context(), mode, req.Name)
		if err != nil {
			log.Warn("Failed to add player", "mode", mode, "name", req.Name, "error", err)
			respondWithError(w, err)
			return
		}
		log.Info("Added player", "mode", mode, "name", player.Name)
		respondWithJSON(w, http.StatusCreated, player)
	}
}

func (s *Server) DuelHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req duelRequest
		if err := decodeJSON(r, &req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		mode := ladder.Solo
		if req.Mode != "" {
			m, err := ladder.ParseMode(req.Mode)
			if err != nil {
				respondWithError(w, err)
				return
			}
			mode = m
		}
		result, err := s.Processor.RecordDuel(r.Context(), mode, req.Winner, req.Loser)
		if err != nil {
			respondWithError(w, err)
			return
		}
		respondWithJSON(w, http.StatusCreated, result)
	}
}

func (s *Server) TeamMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req teamRequest
		if err := decodeJSON(r, &req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if len(req.Winners) != 2 || len(req.Losers) != 2 {
			respondWithError(w, fmt.Errorf("%w: team match needs 2 winners and 2 losers", ladder.ErrInvalidArgumentCount))
			return
		}
		result, err := s.Processor.RecordTeamMatch(r.Context(), req.Winners[0], req.Winners[1], req.Losers[0], req.Losers[1])
		if err != nil {
			respondWithError(w, err)
			return
		}
		respondWithJSON(w, http.StatusCreated, result)
	}
}

func (s *Server) FreeForAllHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ffaRequest
		if err := decodeJSON(r, &req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if len(req.Losers) != 2 {
			respondWithError(w, fmt.Errorf("%w: free-for-all needs 1 winner and 2 losers", ladder.ErrInvalidArgumentCount))
			return
		}
		result, err := s.Processor.RecordFreeForAll(r.Context(), req.Winner, req.Losers[0], req.Losers[1])
		if err != nil {
			respondWithError(w, err)
			return
		}
		respondWithJSON(w, http.StatusCreated, result)
	}
}
