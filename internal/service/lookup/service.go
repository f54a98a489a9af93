// Package lookup serves the read-only directory surface: candidates, events,
// notices, centers, and the voter directory. Handlers go through this service
// rather than touching the store directly.
package lookup

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fsferdows/dhaka17-portal/internal/domain"
)

// electionStore defines the read operations needed by the lookup service.
type electionStore interface {
	Candidates() []domain.Candidate
	Candidate(id string) (domain.Candidate, error)
	SearchCandidates(query string) []domain.Candidate
	Events() []domain.ElectionEvent
	EventsByCandidate(candidateID string) []domain.ElectionEvent
	Notices() []domain.ElectionNotice
	Centers() []domain.VotingCenter
	Center(id string) (domain.VotingCenter, error)
	SearchCenters(query string) []domain.VotingCenter
	VoterByNIDDOB(nid, dob string) (domain.VoterRecord, error)
}

// VoterLookupInput identifies a voter directory row. Both parts of the pair
// must match exactly.
type VoterLookupInput struct {
	NID string `json:"nid"`
	DOB string `json:"dob"`
}

// VoterLookupResult is a voter row with its voting center expanded.
type VoterLookupResult struct {
	Voter  domain.VoterRecord  `json:"voter"`
	Center domain.VotingCenter `json:"center"`
}

// Service answers directory queries.
type Service struct {
	log   *slog.Logger
	store electionStore
}

// NewService creates a new lookup service instance.
func NewService(logger *slog.Logger, store electionStore) *Service {
	return &Service{
		log:   logger.With("service", "lookup"),
		store: store,
	}
}

// Candidates lists candidates, narrowed by the optional search query.
func (s *Service) Candidates(ctx context.Context, query string) []domain.Candidate {
	if strings.TrimSpace(query) == "" {
		return s.store.Candidates()
	}
	return s.store.SearchCandidates(query)
}

// Candidate returns a single candidate by id.
func (s *Service) Candidate(ctx context.Context, id string) (domain.Candidate, error) {
	c, err := s.store.Candidate(id)
	if err != nil {
		return domain.Candidate{}, fmt.Errorf("lookup.Candidate %q: %w", id, err)
	}
	return c, nil
}

// Events lists events, narrowed to one candidate when candidateID is set.
func (s *Service) Events(ctx context.Context, candidateID string) []domain.ElectionEvent {
	if candidateID == "" {
		return s.store.Events()
	}
	return s.store.EventsByCandidate(candidateID)
}

// Notices lists official notices.
func (s *Service) Notices(ctx context.Context) []domain.ElectionNotice {
	return s.store.Notices()
}

// Centers lists voting centers, narrowed by the optional search query.
func (s *Service) Centers(ctx context.Context, query string) []domain.VotingCenter {
	if strings.TrimSpace(query) == "" {
		return s.store.Centers()
	}
	return s.store.SearchCenters(query)
}

// LookupVoter resolves a voter by the exact NID and date-of-birth pair and
// expands the voting center. Any non-match, including malformed input, is
// reported as ErrNotFound so the response does not reveal which part failed.
func (s *Service) LookupVoter(ctx context.Context, input VoterLookupInput) (*VoterLookupResult, error) {
	nid := strings.TrimSpace(input.NID)
	dob := strings.TrimSpace(input.DOB)
	if nid == "" || dob == "" {
		return nil, domain.ErrNotFound
	}

	voter, err := s.store.VoterByNIDDOB(nid, dob)
	if err != nil {
		return nil, domain.ErrNotFound
	}

	center, err := s.store.Center(voter.VotingCenterID)
	if err != nil {
		return nil, fmt.Errorf("lookup.LookupVoter expand center %q: %w", voter.VotingCenterID, err)
	}

	s.log.InfoContext(ctx, "voter record resolved", slog.String("center_id", center.ID))
	return &VoterLookupResult{Voter: voter, Center: center}, nil
}
