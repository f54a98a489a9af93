// Package session holds the portal's single authenticated session. The whole
// User object is the unit of persistence: it is rewritten to disk wholesale
// after every mutation, read back once at startup, and removed on logout.
// Absence of the persisted entry means logged out.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/fsferdows/dhaka17-portal/internal/domain"
)

// Store is the process-wide session context. At most one User is held at a
// time; logging in replaces any prior session (last write wins).
type Store struct {
	mu   sync.Mutex
	log  *slog.Logger
	path string
	user *domain.User
}

// Open creates a session store backed by the file at path and rehydrates any
// persisted session. A missing file means logged out; an unreadable one is
// logged and discarded rather than failing startup.
func Open(path string, logger *slog.Logger) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("session: create data dir: %w", err)
	}

	s := &Store{
		log:  logger.With("component", "session"),
		path: path,
	}

	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("session: read %s: %w", path, err)
	}

	var u domain.User
	if err := json.Unmarshal(raw, &u); err != nil {
		s.log.Warn("discarding unreadable session file", slog.String("path", path), slog.String("error", err.Error()))
		return s, nil
	}
	if _, err := domain.ParseRole(u.Role.String()); err != nil {
		s.log.Warn("discarding session with unknown role", slog.String("role", u.Role.String()))
		return s, nil
	}

	s.user = &u
	s.log.Info("session rehydrated", slog.String("user_id", u.ID.String()), slog.String("role", u.Role.String()))
	return s, nil
}

// Current returns a copy of the active session user, if any.
func (s *Store) Current() (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return domain.User{}, false
	}
	return s.user.Clone(), true
}

// Ping verifies the session's backing directory is still reachable. Used by
// the readiness probe.
func (s *Store) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := os.Stat(filepath.Dir(s.path)); err != nil {
		return fmt.Errorf("session: stat data dir: %w", err)
	}
	return nil
}

// Login stores and persists a User, replacing any prior session.
func (s *Store) Login(u domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := u.Clone()
	s.user = &cp
	return s.persistLocked()
}

// Logout clears both the in-memory session and the persisted entry.
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("session: remove %s: %w", s.path, err)
	}
	return nil
}

// ToggleFollow flips the candidate's membership in the followed set and
// re-persists the whole user. Returns the updated user and whether the
// candidate is followed after the flip.
func (s *Store) ToggleFollow(candidateID string) (domain.User, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return domain.User{}, false, domain.ErrUnauthorized
	}

	var added bool
	s.user.FollowedCandidates, added = toggle(s.user.FollowedCandidates, candidateID)
	if err := s.persistLocked(); err != nil {
		return domain.User{}, false, err
	}
	return s.user.Clone(), added, nil
}

// ToggleRSVP flips the event's membership in the RSVP set and re-persists
// the whole user. Returns the updated user and whether the user is going
// after the flip.
func (s *Store) ToggleRSVP(eventID string) (domain.User, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return domain.User{}, false, domain.ErrUnauthorized
	}

	var added bool
	s.user.RSVPedEvents, added = toggle(s.user.RSVPedEvents, eventID)
	if err := s.persistLocked(); err != nil {
		return domain.User{}, false, err
	}
	return s.user.Clone(), added, nil
}

// toggle flips id's membership in list. Reports whether id is present after
// the flip, so double-toggling always restores the original membership.
func toggle(list []string, id string) ([]string, bool) {
	if i := slices.Index(list, id); i >= 0 {
		return slices.Delete(list, i, i+1), false
	}
	return append(list, id), true
}

// persistLocked writes the session atomically: marshal to a temp file in the
// same directory, then rename over the target.
func (s *Store) persistLocked() error {
	raw, err := json.MarshalIndent(s.user, "", "  ")
	if err != nil {
		return fmt.Errorf("session: marshal: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("session: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("session: rename %s: %w", tmp, err)
	}
	return nil
}
