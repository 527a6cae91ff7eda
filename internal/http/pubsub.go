package http

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/elo-ladder/internal/processor"
)

// SubmitMatchHandler records a match pushed by a Pub/Sub subscription.
// Results that can never succeed are acknowledged so Pub/Sub stops
// redelivering them; conflicts and storage outages are nacked with 5xx.
func (s *Server) SubmitMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.pubsub == nil {
			http.Error(w, "Pub/Sub is not configured", http.StatusServiceUnavailable)
			return
		}

		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			log.Error("Failed to read request body", "error", err)
			http.Error(w, "Failed to read request body", http.StatusInternalServerError)
			return
		}
		log.Debug("Received submit match message", "body", string(bodyBytes))

		var pubsubMsg pushEnvelope
		if err := json.Unmarshal(bodyBytes, &pubsubMsg); err != nil {
			log.Error("Failed to unmarshal wrapper JSON", "error", err)
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		rawData, err := base64.StdEncoding.DecodeString(pubsubMsg.Message.Data)
		if err != nil {
			log.Error("Failed to decode base64 data", "error", err)
			http.Error(w, "Invalid base64 data", http.StatusBadRequest)
			return
		}

		var submission processor.Submission
		if err := s.pubsub.ProcessMessage(rawData, &submission); err != nil {
			http.Error(w, "Invalid message payload", http.StatusBadRequest)
			return
		}

		result, err := s.Processor.Submit(r.Context(), submission)
		if err != nil {
			status := statusFor(err)
			if status >= http.StatusInternalServerError || status == http.StatusConflict {
				log.Error("Failed to record submitted match, requesting redelivery", "messageID", pubsubMsg.Message.MessageID, "error", err)
				http.Error(w, err.Error(), http.StatusServiceUnavailable)
				return
			}
			log.Warn("Dropping invalid submitted match", "messageID", pubsubMsg.Message.MessageID, "error", err)
			respondWithJSON(w, http.StatusOK, errorResponse{Error: err.Error()})
			return
		}
		respondWithJSON(w, http.StatusOK, result)
	}
}
