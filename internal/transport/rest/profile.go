package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/fsferdows/dhaka17-portal/internal/service/profile"
)

// profileService defines the minimal interface needed by ProfileHandler.
type profileService interface {
	Dashboard(ctx context.Context) (*profile.Dashboard, error)
	ToggleFollow(ctx context.Context, candidateID string) (*profile.FollowResult, error)
	ToggleRSVP(ctx context.Context, eventID string) (*profile.RSVPResult, error)
}

// ProfileHandler serves the signed-in voter endpoints.
type ProfileHandler struct {
	svc profileService
	log *slog.Logger
}

// NewProfileHandler creates a ProfileHandler.
func NewProfileHandler(svc profileService, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{svc: svc, log: logger.With("handler", "profile")}
}

// Me handles GET /api/me.
func (h *ProfileHandler) Me(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.Dashboard(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// Follow handles POST /api/candidates/{id}/follow.
func (h *ProfileHandler) Follow(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ToggleFollow(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// RSVP handles POST /api/events/{id}/rsvp.
func (h *ProfileHandler) RSVP(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ToggleRSVP(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
