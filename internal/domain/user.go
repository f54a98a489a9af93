package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// User is the authenticated session record. The portal holds at most one of
// these at a time; the whole object is the unit of persistence and is
// rewritten wholesale on every mutation.
type User struct {
	ID                 uuid.UUID `json:"id"`
	Phone              string    `json:"phone"`
	Role               Role      `json:"role"`
	Name               string    `json:"name,omitempty"`
	FollowedCandidates []string  `json:"followedCandidates"`
	RSVPedEvents       []string  `json:"rsvpedEvents"`
	CreatedAt          time.Time `json:"createdAt"`
}

// Follows reports whether the user follows the given candidate.
func (u *User) Follows(candidateID string) bool {
	return slices.Contains(u.FollowedCandidates, candidateID)
}

// HasRSVP reports whether the user has RSVP'd to the given event.
func (u *User) HasRSVP(eventID string) bool {
	return slices.Contains(u.RSVPedEvents, eventID)
}

// Clone returns a deep copy so callers can hand out users without sharing
// the membership slices.
func (u *User) Clone() User {
	c := *u
	c.FollowedCandidates = slices.Clone(u.FollowedCandidates)
	c.RSVPedEvents = slices.Clone(u.RSVPedEvents)
	return c
}
