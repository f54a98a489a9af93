package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/fsferdows/dhaka17-portal/internal/domain"
)

// directoryService defines the minimal interface needed by DirectoryHandler.
type directoryService interface {
	Candidates(ctx context.Context, query string) []domain.Candidate
	Candidate(ctx context.Context, id string) (domain.Candidate, error)
	Events(ctx context.Context, candidateID string) []domain.ElectionEvent
	Notices(ctx context.Context) []domain.ElectionNotice
	Centers(ctx context.Context, query string) []domain.VotingCenter
}

// DirectoryHandler serves the read-only election directory endpoints.
type DirectoryHandler struct {
	svc directoryService
	log *slog.Logger
}

// NewDirectoryHandler creates a DirectoryHandler.
func NewDirectoryHandler(svc directoryService, logger *slog.Logger) *DirectoryHandler {
	return &DirectoryHandler{svc: svc, log: logger.With("handler", "directory")}
}

// ListCandidates handles GET /api/candidates?q=.
func (h *DirectoryHandler) ListCandidates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Candidates(r.Context(), r.URL.Query().Get("q")))
}

// GetCandidate handles GET /api/candidates/{id}.
func (h *DirectoryHandler) GetCandidate(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.Candidate(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// ListEvents handles GET /api/events?candidate=.
func (h *DirectoryHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Events(r.Context(), r.URL.Query().Get("candidate")))
}

// ListNotices handles GET /api/notices.
func (h *DirectoryHandler) ListNotices(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Notices(r.Context()))
}

// ListCenters handles GET /api/centers?q=.
func (h *DirectoryHandler) ListCenters(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Centers(r.Context(), r.URL.Query().Get("q")))
}
