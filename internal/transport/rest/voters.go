package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/fsferdows/dhaka17-portal/internal/domain"
	"github.com/fsferdows/dhaka17-portal/internal/service/lookup"
)

// voterLookupService defines the minimal interface needed by VotersHandler.
type voterLookupService interface {
	LookupVoter(ctx context.Context, input lookup.VoterLookupInput) (*lookup.VoterLookupResult, error)
}

// VotersHandler serves the voter directory lookup endpoint.
type VotersHandler struct {
	svc voterLookupService
	log *slog.Logger
}

// NewVotersHandler creates a VotersHandler.
func NewVotersHandler(svc voterLookupService, logger *slog.Logger) *VotersHandler {
	return &VotersHandler{svc: svc, log: logger.With("handler", "voters")}
}

type voterLookupRequest struct {
	NID string `json:"nid"`
	DOB string `json:"dob"`
}

// Lookup handles POST /api/voters/lookup. A miss is a 404 with a bilingual
// body; the response never tells the caller which part of the pair failed.
func (h *VotersHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	var req voterLookupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.LookupVoter(r.Context(), lookup.VoterLookupInput{
		NID: req.NID,
		DOB: req.DOB,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, bilingualError{
				Error:   "No voter record matched the provided information.",
				ErrorBN: "প্রদত্ত তথ্যের সাথে কোনো ভোটার রেকর্ড পাওয়া যায়নি।",
			})
			return
		}
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
