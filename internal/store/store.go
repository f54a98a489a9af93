// Package store holds the portal's election data in process memory.
// Collections are indexed maps keyed by identifier; insertion order is kept
// so listings stay stable. Everything except voting centers and event
// attendance counters is read-only after load.
package store

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/fsferdows/dhaka17-portal/internal/domain"
	"github.com/fsferdows/dhaka17-portal/internal/fixture"
)

type voterKey struct {
	nid string
	dob string
}

// Store is the in-memory election dataset. Safe for concurrent use.
type Store struct {
	mu sync.RWMutex

	candidates   map[string]domain.Candidate
	candidateIDs []string

	events   map[string]*domain.ElectionEvent
	eventIDs []string

	notices []domain.ElectionNotice

	centers   map[string]domain.VotingCenter
	centerIDs []string

	voters map[voterKey]domain.VoterRecord
}

// New builds a Store from the dataset and validates referential integrity:
// candidate IDs must be unique, every event must reference an existing
// candidate, and every voter record must reference an existing center.
func New(ds fixture.Dataset) (*Store, error) {
	s := &Store{
		candidates: make(map[string]domain.Candidate, len(ds.Candidates)),
		events:     make(map[string]*domain.ElectionEvent, len(ds.Events)),
		centers:    make(map[string]domain.VotingCenter, len(ds.Centers)),
		voters:     make(map[voterKey]domain.VoterRecord, len(ds.Voters)),
		notices:    append([]domain.ElectionNotice(nil), ds.Notices...),
	}

	for _, c := range ds.Candidates {
		if _, dup := s.candidates[c.ID]; dup {
			return nil, fmt.Errorf("store: duplicate candidate id %q", c.ID)
		}
		s.candidates[c.ID] = c
		s.candidateIDs = append(s.candidateIDs, c.ID)
	}

	for _, cn := range ds.Centers {
		if _, dup := s.centers[cn.ID]; dup {
			return nil, fmt.Errorf("store: duplicate center id %q", cn.ID)
		}
		s.centers[cn.ID] = cn
		s.centerIDs = append(s.centerIDs, cn.ID)
	}

	for _, e := range ds.Events {
		if _, dup := s.events[e.ID]; dup {
			return nil, fmt.Errorf("store: duplicate event id %q", e.ID)
		}
		if _, ok := s.candidates[e.CandidateID]; !ok {
			return nil, fmt.Errorf("store: event %q references unknown candidate %q", e.ID, e.CandidateID)
		}
		if !e.Type.Valid() {
			return nil, fmt.Errorf("store: event %q has unknown type %q", e.ID, e.Type)
		}
		ev := e
		s.events[e.ID] = &ev
		s.eventIDs = append(s.eventIDs, e.ID)
	}

	for _, v := range ds.Voters {
		key := voterKey{nid: v.NID, dob: v.DOB}
		if _, dup := s.voters[key]; dup {
			return nil, fmt.Errorf("store: duplicate voter record for NID %q", v.NID)
		}
		if _, ok := s.centers[v.VotingCenterID]; !ok {
			return nil, fmt.Errorf("store: voter %q references unknown center %q", v.NID, v.VotingCenterID)
		}
		s.voters[key] = v
	}

	return s, nil
}

// Candidates returns all candidates in load order.
func (s *Store) Candidates() []domain.Candidate {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Candidate, 0, len(s.candidateIDs))
	for _, id := range s.candidateIDs {
		out = append(out, s.candidates[id])
	}
	return out
}

// Candidate returns a single candidate by ID.
func (s *Store) Candidate(id string) (domain.Candidate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.candidates[id]
	if !ok {
		return domain.Candidate{}, domain.ErrNotFound
	}
	return c, nil
}

// SearchCandidates returns candidates whose bilingual name or party fields
// contain the query. English fields match case-insensitively; Bengali fields
// match literally (no case folding exists for the script). An empty query
// returns everything.
func (s *Store) SearchCandidates(query string) []domain.Candidate {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Candidate, 0, len(s.candidateIDs))
	for _, id := range s.candidateIDs {
		c := s.candidates[id]
		if matchesQuery(query, []string{c.Name, c.Party}, []string{c.NameBN, c.PartyBN}) {
			out = append(out, c)
		}
	}
	return out
}

// Events returns all events in load order.
func (s *Store) Events() []domain.ElectionEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.ElectionEvent, 0, len(s.eventIDs))
	for _, id := range s.eventIDs {
		out = append(out, *s.events[id])
	}
	return out
}

// Event returns a single event by ID.
func (s *Store) Event(id string) (domain.ElectionEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.events[id]
	if !ok {
		return domain.ElectionEvent{}, domain.ErrNotFound
	}
	return *e, nil
}

// EventsByCandidate returns every event owned by the candidate, in load order.
func (s *Store) EventsByCandidate(candidateID string) []domain.ElectionEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.ElectionEvent
	for _, id := range s.eventIDs {
		if e := s.events[id]; e.CandidateID == candidateID {
			out = append(out, *e)
		}
	}
	return out
}

// AdjustAttendance moves an event's attendance counter by delta and returns
// the new count. The counter lives only in process memory.
func (s *Store) AdjustAttendance(eventID string, delta int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.events[eventID]
	if !ok {
		return 0, domain.ErrNotFound
	}
	e.AttendanceCount += delta
	return e.AttendanceCount, nil
}

// Notices returns all notices in load order.
func (s *Store) Notices() []domain.ElectionNotice {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]domain.ElectionNotice(nil), s.notices...)
}

// Centers returns all voting centers in load order.
func (s *Store) Centers() []domain.VotingCenter {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.VotingCenter, 0, len(s.centerIDs))
	for _, id := range s.centerIDs {
		out = append(out, s.centers[id])
	}
	return out
}

// Center returns a single voting center by ID.
func (s *Store) Center(id string) (domain.VotingCenter, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.centers[id]
	if !ok {
		return domain.VotingCenter{}, domain.ErrNotFound
	}
	return c, nil
}

// SearchCenters returns centers whose name, address, or area contain the
// query, with the same bilingual matching policy as SearchCandidates.
func (s *Store) SearchCenters(query string) []domain.VotingCenter {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.VotingCenter, 0, len(s.centerIDs))
	for _, id := range s.centerIDs {
		c := s.centers[id]
		if matchesQuery(query, []string{c.Name, c.Address, c.Area}, []string{c.NameBN, c.AddressBN}) {
			out = append(out, c)
		}
	}
	return out
}

// CreateCenter adds a new voting center, assigning an identifier when the
// caller does not provide one.
func (s *Store) CreateCenter(c domain.VotingCenter) (domain.VotingCenter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c.ID == "" {
		c.ID = "vc-" + uuid.NewString()
	}
	if _, dup := s.centers[c.ID]; dup {
		return domain.VotingCenter{}, domain.ErrAlreadyExists
	}

	s.centers[c.ID] = c
	s.centerIDs = append(s.centerIDs, c.ID)
	return c, nil
}

// UpdateCenter replaces a voting center record in full.
func (s *Store) UpdateCenter(id string, c domain.VotingCenter) (domain.VotingCenter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.centers[id]; !ok {
		return domain.VotingCenter{}, domain.ErrNotFound
	}
	c.ID = id
	s.centers[id] = c
	return c, nil
}

// DeleteCenter removes a voting center. Deletion is rejected with ErrConflict
// while any voter record still references the center, so the read-only voter
// directory never holds a dangling reference.
func (s *Store) DeleteCenter(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.centers[id]; !ok {
		return domain.ErrNotFound
	}
	for _, v := range s.voters {
		if v.VotingCenterID == id {
			return fmt.Errorf("center %s is referenced by voter records: %w", id, domain.ErrConflict)
		}
	}

	delete(s.centers, id)
	for i, cid := range s.centerIDs {
		if cid == id {
			s.centerIDs = append(s.centerIDs[:i], s.centerIDs[i+1:]...)
			break
		}
	}
	return nil
}

// VoterByNIDDOB performs an exact-match lookup on the (NID, DOB) pair.
func (s *Store) VoterByNIDDOB(nid, dob string) (domain.VoterRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.voters[voterKey{nid: nid, dob: dob}]
	if !ok {
		return domain.VoterRecord{}, domain.ErrNotFound
	}
	return v, nil
}
