package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/fsferdows/dhaka17-portal/internal/assistant"
	"github.com/fsferdows/dhaka17-portal/internal/domain"
)

// assistantRelay defines the minimal interface needed by AssistantHandler.
type assistantRelay interface {
	Ask(ctx context.Context, input assistant.AskInput) (*assistant.AskResult, error)
}

// AssistantHandler serves the text assistant endpoint.
type AssistantHandler struct {
	relay assistantRelay
	log   *slog.Logger
}

// NewAssistantHandler creates an AssistantHandler.
func NewAssistantHandler(relay assistantRelay, logger *slog.Logger) *AssistantHandler {
	return &AssistantHandler{relay: relay, log: logger.With("handler", "assistant")}
}

type askRequest struct {
	Query string `json:"query"`
	Lang  string `json:"lang"`
}

// Ask handles POST /api/assistant/ask.
func (h *AssistantHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.relay.Ask(r.Context(), assistant.AskInput{
		Query:    req.Query,
		Language: domain.ParseLanguage(req.Lang),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
