package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/fsferdows/dhaka17-portal/internal/service/auth"
	"github.com/fsferdows/dhaka17-portal/pkg/ctxutil"
)

// authService defines the minimal interface needed by AuthHandler.
type authService interface {
	Start(ctx context.Context, input auth.StartInput) (*auth.StartResult, error)
	Verify(ctx context.Context, input auth.VerifyInput) (*auth.VerifyResult, error)
	Logout(ctx context.Context) error
	ValidateToken(ctx context.Context, token string) (uuid.UUID, string, error)
}

// AuthHandler serves the two-step login endpoints.
type AuthHandler struct {
	svc authService
	log *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: logger.With("handler", "auth")}
}

type startRequest struct {
	Phone string `json:"phone"`
	NID   string `json:"nid"`
}

type startResponse struct {
	ChallengeID string    `json:"challengeId"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

type verifyRequest struct {
	ChallengeID string `json:"challengeId"`
	Code        string `json:"code"`
}

type verifyResponse struct {
	AccessToken string       `json:"accessToken"`
	User        userResponse `json:"user"`
}

type userResponse struct {
	ID                 string    `json:"id"`
	Phone              string    `json:"phone"`
	Role               string    `json:"role"`
	Name               string    `json:"name,omitempty"`
	FollowedCandidates []string  `json:"followedCandidates"`
	RSVPedEvents       []string  `json:"rsvpedEvents"`
	CreatedAt          time.Time `json:"createdAt"`
}

// Start handles POST /api/auth/start.
func (h *AuthHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req startRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Start(r.Context(), auth.StartInput{
		Phone: req.Phone,
		NID:   req.NID,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, startResponse{
		ChallengeID: result.ChallengeID,
		ExpiresAt:   result.ExpiresAt,
	})
}

// Verify handles POST /api/auth/verify.
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Verify(r.Context(), auth.VerifyInput{
		ChallengeID: req.ChallengeID,
		Code:        req.Code,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, verifyResponse{
		AccessToken: result.AccessToken,
		User: userResponse{
			ID:                 result.User.ID.String(),
			Phone:              result.User.Phone,
			Role:               result.User.Role.String(),
			Name:               result.User.Name,
			FollowedCandidates: result.User.FollowedCandidates,
			RSVPedEvents:       result.User.RSVPedEvents,
			CreatedAt:          result.User.CreatedAt,
		},
	})
}

// Logout handles POST /api/auth/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := extractBearer(r)
	if token == "" {
		writeError(w, http.StatusUnauthorized, "missing bearer token")
		return
	}

	userID, role, err := h.svc.ValidateToken(r.Context(), token)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "invalid token")
		return
	}

	ctx := ctxutil.WithUserID(r.Context(), userID)
	ctx = ctxutil.WithRole(ctx, role)
	if err := h.svc.Logout(ctx); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
