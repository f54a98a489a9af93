// Package center implements the admin surface for managing voting centers.
package center

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fsferdows/dhaka17-portal/internal/domain"
	"github.com/fsferdows/dhaka17-portal/pkg/ctxutil"
)

// centerStore defines the store operations needed by the center service.
type centerStore interface {
	CreateCenter(c domain.VotingCenter) (domain.VotingCenter, error)
	UpdateCenter(id string, c domain.VotingCenter) (domain.VotingCenter, error)
	DeleteCenter(id string) error
}

// SaveInput carries a voting center to create or update. Both language names
// are mandatory; the rest is free-form.
type SaveInput struct {
	Name      string `json:"name"`
	NameBN    string `json:"nameBn"`
	Address   string `json:"address"`
	AddressBN string `json:"addressBn"`
	MapURL    string `json:"mapUrl"`
	Area      string `json:"area"`
}

// Validate checks the input and returns a ValidationError listing every
// failed field.
func (in SaveInput) Validate() error {
	var fields []domain.FieldError
	if strings.TrimSpace(in.Name) == "" {
		fields = append(fields, domain.FieldError{Field: "name", Message: "must not be empty"})
	}
	if strings.TrimSpace(in.NameBN) == "" {
		fields = append(fields, domain.FieldError{Field: "nameBn", Message: "must not be empty"})
	}
	if len(fields) > 0 {
		return domain.NewValidationErrors(fields)
	}
	return nil
}

func (in SaveInput) toDomain() domain.VotingCenter {
	return domain.VotingCenter{
		Name:      strings.TrimSpace(in.Name),
		NameBN:    strings.TrimSpace(in.NameBN),
		Address:   in.Address,
		AddressBN: in.AddressBN,
		MapURL:    in.MapURL,
		Area:      in.Area,
	}
}

// Service implements admin CRUD over voting centers.
type Service struct {
	log   *slog.Logger
	store centerStore
}

// NewService creates a new center service instance.
func NewService(logger *slog.Logger, store centerStore) *Service {
	return &Service{
		log:   logger.With("service", "center"),
		store: store,
	}
}

// Create validates and adds a new voting center.
func (s *Service) Create(ctx context.Context, input SaveInput) (domain.VotingCenter, error) {
	if err := s.requireAdmin(ctx); err != nil {
		return domain.VotingCenter{}, err
	}
	if err := input.Validate(); err != nil {
		return domain.VotingCenter{}, err
	}

	created, err := s.store.CreateCenter(input.toDomain())
	if err != nil {
		return domain.VotingCenter{}, fmt.Errorf("center.Create: %w", err)
	}

	s.log.InfoContext(ctx, "voting center created", slog.String("center_id", created.ID))
	return created, nil
}

// Update validates and replaces an existing voting center.
func (s *Service) Update(ctx context.Context, id string, input SaveInput) (domain.VotingCenter, error) {
	if err := s.requireAdmin(ctx); err != nil {
		return domain.VotingCenter{}, err
	}
	if err := input.Validate(); err != nil {
		return domain.VotingCenter{}, err
	}

	updated, err := s.store.UpdateCenter(id, input.toDomain())
	if err != nil {
		return domain.VotingCenter{}, fmt.Errorf("center.Update %q: %w", id, err)
	}

	s.log.InfoContext(ctx, "voting center updated", slog.String("center_id", id))
	return updated, nil
}

// Delete removes a voting center. Deletion is refused while any voter record
// still points at the center.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.requireAdmin(ctx); err != nil {
		return err
	}

	if err := s.store.DeleteCenter(id); err != nil {
		return fmt.Errorf("center.Delete %q: %w", id, err)
	}

	s.log.InfoContext(ctx, "voting center deleted", slog.String("center_id", id))
	return nil
}

func (s *Service) requireAdmin(ctx context.Context) error {
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}
	return nil
}
