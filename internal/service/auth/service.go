// Package auth implements the portal's two-step login flow. Step one checks
// phone and NID shape and mints a short-lived challenge; step two matches a
// one-time code against the challenge and creates the session.
//
// The accepted codes come from configuration and are a development stand-in
// for a real OTP delivery channel.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/fsferdows/dhaka17-portal/internal/config"
	"github.com/fsferdows/dhaka17-portal/internal/domain"
	"github.com/fsferdows/dhaka17-portal/pkg/ctxutil"
)

// sessionStore defines the session operations needed by the auth service.
type sessionStore interface {
	Login(u domain.User) error
	Logout() error
	Current() (domain.User, bool)
}

// jwtManager defines the token operations needed by the auth service.
type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID, role string) (string, error)
	ValidateAccessToken(token string) (uuid.UUID, string, error)
}

// challenge is a pending step-one login. The accepted codes are held only as
// bcrypt hashes.
type challenge struct {
	phone     string
	voterHash []byte
	adminHash []byte
	expiresAt time.Time
}

// Service implements the two-step authentication flow.
type Service struct {
	log      *slog.Logger
	sessions sessionStore
	jwt      jwtManager
	cfg      config.AuthConfig
	now      func() time.Time

	mu         sync.Mutex
	challenges map[string]challenge
}

// NewService creates a new auth service instance.
func NewService(logger *slog.Logger, sessions sessionStore, jwt jwtManager, cfg config.AuthConfig) *Service {
	return &Service{
		log:        logger.With("service", "auth"),
		sessions:   sessions,
		jwt:        jwt,
		cfg:        cfg,
		now:        time.Now,
		challenges: make(map[string]challenge),
	}
}

// Start validates the phone/NID shape and mints a login challenge.
func (s *Service) Start(ctx context.Context, input StartInput) (*StartResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	voterHash, err := bcrypt.GenerateFromPassword([]byte(s.cfg.VoterCode), s.cfg.CodeHashCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Start hash voter code: %w", err)
	}
	adminHash, err := bcrypt.GenerateFromPassword([]byte(s.cfg.AdminCode), s.cfg.CodeHashCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Start hash admin code: %w", err)
	}

	id := uuid.NewString()
	expiresAt := s.now().Add(s.cfg.ChallengeTTL)

	s.mu.Lock()
	s.pruneLocked()
	s.challenges[id] = challenge{
		phone:     input.Phone,
		voterHash: voterHash,
		adminHash: adminHash,
		expiresAt: expiresAt,
	}
	s.mu.Unlock()

	s.log.InfoContext(ctx, "login challenge issued", slog.String("challenge_id", id))
	return &StartResult{ChallengeID: id, ExpiresAt: expiresAt}, nil
}

// Verify matches the one-time code against a pending challenge, mints the
// session user, stores it (replacing any prior session), and issues an
// access token. The admin code wins over the voter code when both match.
func (s *Service) Verify(ctx context.Context, input VerifyInput) (*VerifyResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	ch, ok := s.challenges[input.ChallengeID]
	if ok {
		delete(s.challenges, input.ChallengeID)
	}
	s.mu.Unlock()

	if !ok || s.now().After(ch.expiresAt) {
		return nil, domain.ErrUnauthorized
	}

	var role domain.Role
	switch {
	case bcrypt.CompareHashAndPassword(ch.adminHash, []byte(input.Code)) == nil:
		role = domain.RoleAdmin
	case bcrypt.CompareHashAndPassword(ch.voterHash, []byte(input.Code)) == nil:
		role = domain.RoleVoter
	default:
		return nil, domain.ErrUnauthorized
	}

	user := domain.User{
		ID:                 uuid.New(),
		Phone:              ch.phone,
		Role:               role,
		FollowedCandidates: []string{},
		RSVPedEvents:       []string{},
		CreatedAt:          s.now().UTC().Truncate(time.Second),
	}

	if err := s.sessions.Login(user); err != nil {
		return nil, fmt.Errorf("auth.Verify store session: %w", err)
	}

	token, err := s.jwt.GenerateAccessToken(user.ID, role.String())
	if err != nil {
		return nil, fmt.Errorf("auth.Verify issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in",
		slog.String("user_id", user.ID.String()),
		slog.String("role", role.String()))

	return &VerifyResult{AccessToken: token, User: user}, nil
}

// Logout clears the session. Returns ErrUnauthorized if the context carries
// no user or the token user no longer owns the session.
func (s *Service) Logout(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if current, active := s.sessions.Current(); active && current.ID != userID {
		return domain.ErrUnauthorized
	}

	if err := s.sessions.Logout(); err != nil {
		return fmt.Errorf("auth.Logout: %w", err)
	}

	s.log.InfoContext(ctx, "user logged out", slog.String("user_id", userID.String()))
	return nil
}

// ValidateToken validates an access token and returns the user ID and role.
// Returns ErrUnauthorized if the token is invalid or expired.
func (s *Service) ValidateToken(ctx context.Context, token string) (uuid.UUID, string, error) {
	userID, role, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return uuid.Nil, "", domain.ErrUnauthorized
	}
	return userID, role, nil
}

// pruneLocked drops expired challenges. Callers must hold s.mu.
func (s *Service) pruneLocked() {
	now := s.now()
	for id, ch := range s.challenges {
		if now.After(ch.expiresAt) {
			delete(s.challenges, id)
		}
	}
}
