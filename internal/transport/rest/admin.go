package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/fsferdows/dhaka17-portal/internal/domain"
	"github.com/fsferdows/dhaka17-portal/internal/service/center"
	"github.com/fsferdows/dhaka17-portal/pkg/ctxutil"
)

// centerService defines the minimal interface needed by AdminHandler.
type centerService interface {
	Create(ctx context.Context, input center.SaveInput) (domain.VotingCenter, error)
	Update(ctx context.Context, id string, input center.SaveInput) (domain.VotingCenter, error)
	Delete(ctx context.Context, id string) error
}

// AdminHandler serves the admin voting-center endpoints.
type AdminHandler struct {
	centers centerService
	log     *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(centers centerService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		centers: centers,
		log:     logger.With("handler", "admin"),
	}
}

type centerSaveRequest struct {
	Name      string `json:"name"`
	NameBN    string `json:"nameBn"`
	Address   string `json:"address"`
	AddressBN string `json:"addressBn"`
	MapURL    string `json:"mapUrl"`
	Area      string `json:"area"`
}

func (req centerSaveRequest) toInput() center.SaveInput {
	return center.SaveInput{
		Name:      req.Name,
		NameBN:    req.NameBN,
		Address:   req.Address,
		AddressBN: req.AddressBN,
		MapURL:    req.MapURL,
		Area:      req.Area,
	}
}

// CreateCenter handles POST /api/admin/centers.
func (h *AdminHandler) CreateCenter(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	var req centerSaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.centers.Create(r.Context(), req.toInput())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// UpdateCenter handles PUT /api/admin/centers/{id}.
func (h *AdminHandler) UpdateCenter(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	var req centerSaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.centers.Update(r.Context(), r.PathValue("id"), req.toInput())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// DeleteCenter handles DELETE /api/admin/centers/{id}.
func (h *AdminHandler) DeleteCenter(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	if err := h.centers.Delete(r.Context(), r.PathValue("id")); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *AdminHandler) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	if !ctxutil.IsAdminCtx(r.Context()) {
		writeError(w, http.StatusForbidden, "admin access required")
		return false
	}
	return true
}
