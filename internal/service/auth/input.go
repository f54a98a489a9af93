package auth

import (
	"strings"
	"unicode"

	"github.com/fsferdows/dhaka17-portal/internal/domain"
)

// StartInput holds parameters for the first authentication step.
type StartInput struct {
	Phone string
	NID   string
}

// Validate applies the portal's cosmetic checks: at least 10 digits of phone
// number and at least 5 characters of NID. Neither value is checked against
// the voter directory.
func (i StartInput) Validate() error {
	var errs []domain.FieldError

	if countDigits(i.Phone) < 10 {
		errs = append(errs, domain.FieldError{Field: "phone", Message: "must contain at least 10 digits"})
	}
	if len(strings.TrimSpace(i.NID)) < 5 {
		errs = append(errs, domain.FieldError{Field: "nid", Message: "must be at least 5 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// VerifyInput holds parameters for the second authentication step.
type VerifyInput struct {
	ChallengeID string
	Code        string
}

// Validate validates the verify input.
func (i VerifyInput) Validate() error {
	var errs []domain.FieldError

	if i.ChallengeID == "" {
		errs = append(errs, domain.FieldError{Field: "challengeId", Message: "required"})
	}
	if i.Code == "" {
		errs = append(errs, domain.FieldError{Field: "code", Message: "required"})
	} else if len(i.Code) > 64 {
		errs = append(errs, domain.FieldError{Field: "code", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}
