// Package api exposes the assistant over HTTP for the chat UI.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	contractx "github.com/siamtel/assistant/agent/contract"
	"github.com/siamtel/assistant/agent/pipeline"
)

type Handler struct {
	pipeline  *pipeline.Pipeline
	directory contractx.Directory
	history   contractx.HistoryStore
}

func NewHandler(p *pipeline.Pipeline, dir contractx.Directory, history contractx.HistoryStore) *Handler {
	return &Handler{pipeline: p, directory: dir, history: history}
}

type loginRequest struct {
	CustomerID string `json:"customer_id"`
}

type loginResponse struct {
	SessionID string                    `json:"session_id"`
	Customer  *contractx.CustomerProfile `json:"customer"`
}

// HandleLogin authenticates a customer id against the directory and issues a
// fresh session id. Lookup failures map to 4xx; the diagnostic detail stays
// in the logs.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var payload loginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	customer, err := h.directory.Authenticate(r.Context(), payload.CustomerID)
	if err != nil {
		switch {
		case errors.Is(err, contractx.ErrValidation):
			writeError(w, http.StatusBadRequest, "customer_id is required")
		case errors.Is(err, contractx.ErrCustomerNotFound):
			writeError(w, http.StatusUnauthorized, "customer not found")
		default:
			log.Error().Err(err).Str("customerID", payload.CustomerID).Msg("directory lookup failed")
			writeError(w, http.StatusInternalServerError, "lookup failed")
		}
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		SessionID: uuid.NewString(),
		Customer:  customer,
	})
}

type chatRequest struct {
	SessionID string                     `json:"session_id"`
	Query     string                     `json:"query"`
	Customer  *contractx.CustomerProfile `json:"customer,omitempty"`
}

type chatResponse struct {
	FinalResponse  string          `json:"final_response"`
	Classification contractx.Label `json:"classification"`
	Error          string          `json:"error,omitempty"`
}

// HandleChat runs one pipeline turn. The pipeline itself never fails, so the
// only error paths here are malformed input.
func (h *Handler) HandleChat(w http.ResponseWriter, r *http.Request) {
	var payload chatRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if payload.SessionID == "" {
		payload.SessionID = uuid.NewString()
	}

	resp := h.pipeline.Process(r.Context(), contractx.Request{
		SessionID: payload.SessionID,
		Query:     payload.Query,
		Customer:  payload.Customer,
	})

	writeJSON(w, http.StatusOK, chatResponse{
		FinalResponse:  resp.FinalResponse,
		Classification: resp.Classification,
		Error:          resp.FailureReason,
	})
}

type logoutRequest struct {
	SessionID string `json:"session_id"`
}

// HandleLogout drops the session's conversation history.
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	var payload logoutRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if payload.SessionID == "" {
		writeError(w, http.StatusBadRequest, "session_id is required")
		return
	}

	if err := h.history.Delete(r.Context(), payload.SessionID); err != nil {
		log.Error().Err(err).Str("sessionID", payload.SessionID).Msg("failed to delete session history")
		writeError(w, http.StatusInternalServerError, "logout failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
