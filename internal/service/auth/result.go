package auth

import (
	"time"

	"github.com/fsferdows/dhaka17-portal/internal/domain"
)

// StartResult is returned by the Start operation.
type StartResult struct {
	ChallengeID string
	ExpiresAt   time.Time
}

// VerifyResult is returned by the Verify operation.
type VerifyResult struct {
	AccessToken string
	User        domain.User
}
