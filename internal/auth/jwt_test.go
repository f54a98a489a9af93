package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

const testSecret = "test-secret-that-is-at-least-32-chars!!"

func TestJWTManager_RoundTrip(t *testing.T) {
	t.Parallel()

	m := NewJWTManager(testSecret, "dhaka17-portal", time.Hour)
	userID := uuid.New()

	token, err := m.GenerateAccessToken(userID, "voter")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	gotID, gotRole, err := m.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("ValidateAccessToken: %v", err)
	}
	if gotID != userID {
		t.Errorf("expected user ID %s, got %s", userID, gotID)
	}
	if gotRole != "voter" {
		t.Errorf("expected role voter, got %q", gotRole)
	}
}

func TestJWTManager_RejectsEmptyToken(t *testing.T) {
	t.Parallel()

	m := NewJWTManager(testSecret, "dhaka17-portal", time.Hour)
	if _, _, err := m.ValidateAccessToken(""); err == nil {
		t.Fatal("expected error for empty token")
	}
}

func TestJWTManager_RejectsExpiredToken(t *testing.T) {
	t.Parallel()

	m := NewJWTManager(testSecret, "dhaka17-portal", -time.Minute)
	token, err := m.GenerateAccessToken(uuid.New(), "voter")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	if _, _, err := m.ValidateAccessToken(token); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestJWTManager_RejectsWrongSecret(t *testing.T) {
	t.Parallel()

	m := NewJWTManager(testSecret, "dhaka17-portal", time.Hour)
	other := NewJWTManager("another-secret-that-is-32-characters!", "dhaka17-portal", time.Hour)

	token, err := m.GenerateAccessToken(uuid.New(), "admin")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	if _, _, err := other.ValidateAccessToken(token); err == nil {
		t.Fatal("expected error for token signed with a different secret")
	}
}

func TestJWTManager_RejectsWrongIssuer(t *testing.T) {
	t.Parallel()

	m := NewJWTManager(testSecret, "issuer-a", time.Hour)
	other := NewJWTManager(testSecret, "issuer-b", time.Hour)

	token, err := m.GenerateAccessToken(uuid.New(), "voter")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	if _, _, err := other.ValidateAccessToken(token); err == nil {
		t.Fatal("expected error for token with wrong issuer")
	}
}
