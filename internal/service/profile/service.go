// Package profile covers the signed-in voter surface: following candidates,
// RSVPing to events, and the dashboard view that expands the session's
// memberships into full records.
package profile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/fsferdows/dhaka17-portal/internal/domain"
	"github.com/fsferdows/dhaka17-portal/pkg/ctxutil"
)

// sessionStore defines the session operations needed by the profile service.
type sessionStore interface {
	Current() (domain.User, bool)
	ToggleFollow(candidateID string) (domain.User, bool, error)
	ToggleRSVP(eventID string) (domain.User, bool, error)
}

// electionStore defines the store operations needed by the profile service.
type electionStore interface {
	Candidate(id string) (domain.Candidate, error)
	Event(id string) (domain.ElectionEvent, error)
	AdjustAttendance(eventID string, delta int) (int, error)
}

// FollowResult reports the membership state after a follow toggle.
type FollowResult struct {
	CandidateID string `json:"candidateId"`
	Following   bool   `json:"following"`
}

// RSVPResult reports the membership state and attendance after an RSVP toggle.
type RSVPResult struct {
	EventID         string `json:"eventId"`
	Attending       bool   `json:"attending"`
	AttendanceCount int    `json:"attendanceCount"`
}

// Dashboard is the session user with followed candidates and RSVPed events
// expanded into full records.
type Dashboard struct {
	User               domain.User            `json:"user"`
	FollowedCandidates []domain.Candidate     `json:"followedCandidates"`
	RSVPedEvents       []domain.ElectionEvent `json:"rsvpedEvents"`
}

// Service implements the signed-in voter operations.
type Service struct {
	log      *slog.Logger
	sessions sessionStore
	store    electionStore
}

// NewService creates a new profile service instance.
func NewService(logger *slog.Logger, sessions sessionStore, store electionStore) *Service {
	return &Service{
		log:      logger.With("service", "profile"),
		sessions: sessions,
		store:    store,
	}
}

// ToggleFollow flips the session user's membership in a candidate's follower
// set and reports the state after the flip.
func (s *Service) ToggleFollow(ctx context.Context, candidateID string) (*FollowResult, error) {
	if err := s.requireVoter(ctx); err != nil {
		return nil, err
	}

	if _, err := s.store.Candidate(candidateID); err != nil {
		return nil, fmt.Errorf("profile.ToggleFollow %q: %w", candidateID, err)
	}

	_, following, err := s.sessions.ToggleFollow(candidateID)
	if err != nil {
		return nil, fmt.Errorf("profile.ToggleFollow %q: %w", candidateID, err)
	}

	s.log.InfoContext(ctx, "follow toggled",
		slog.String("candidate_id", candidateID),
		slog.Bool("following", following))
	return &FollowResult{CandidateID: candidateID, Following: following}, nil
}

// ToggleRSVP flips the session user's RSVP for an event and moves the event's
// attendance counter by one in the matching direction.
func (s *Service) ToggleRSVP(ctx context.Context, eventID string) (*RSVPResult, error) {
	if err := s.requireVoter(ctx); err != nil {
		return nil, err
	}

	if _, err := s.store.Event(eventID); err != nil {
		return nil, fmt.Errorf("profile.ToggleRSVP %q: %w", eventID, err)
	}

	_, attending, err := s.sessions.ToggleRSVP(eventID)
	if err != nil {
		return nil, fmt.Errorf("profile.ToggleRSVP %q: %w", eventID, err)
	}

	delta := -1
	if attending {
		delta = 1
	}
	count, err := s.store.AdjustAttendance(eventID, delta)
	if err != nil {
		return nil, fmt.Errorf("profile.ToggleRSVP adjust attendance %q: %w", eventID, err)
	}

	s.log.InfoContext(ctx, "rsvp toggled",
		slog.String("event_id", eventID),
		slog.Bool("attending", attending),
		slog.Int("attendance", count))
	return &RSVPResult{EventID: eventID, Attending: attending, AttendanceCount: count}, nil
}

// Dashboard returns the session user with memberships expanded. A membership
// pointing at a record that no longer exists is skipped rather than failing
// the whole view.
func (s *Service) Dashboard(ctx context.Context) (*Dashboard, error) {
	user, err := s.sessionUser(ctx)
	if err != nil {
		return nil, err
	}

	d := &Dashboard{
		User:               user,
		FollowedCandidates: []domain.Candidate{},
		RSVPedEvents:       []domain.ElectionEvent{},
	}
	for _, id := range user.FollowedCandidates {
		c, err := s.store.Candidate(id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			return nil, fmt.Errorf("profile.Dashboard candidate %q: %w", id, err)
		}
		d.FollowedCandidates = append(d.FollowedCandidates, c)
	}
	for _, id := range user.RSVPedEvents {
		e, err := s.store.Event(id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			return nil, fmt.Errorf("profile.Dashboard event %q: %w", id, err)
		}
		d.RSVPedEvents = append(d.RSVPedEvents, e)
	}
	return d, nil
}

// sessionUser returns the session user, requiring that the context token
// still owns the session.
func (s *Service) sessionUser(ctx context.Context) (domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.User{}, domain.ErrUnauthorized
	}
	user, active := s.sessions.Current()
	if !active || user.ID != userID {
		return domain.User{}, domain.ErrUnauthorized
	}
	return user, nil
}

// requireVoter rejects callers without a voter session. Admin sessions can
// read everything but do not carry follow or RSVP memberships.
func (s *Service) requireVoter(ctx context.Context) error {
	user, err := s.sessionUser(ctx)
	if err != nil {
		return err
	}
	if user.Role != domain.RoleVoter {
		return domain.ErrForbidden
	}
	return nil
}
