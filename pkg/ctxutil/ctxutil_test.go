package ctxutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestUserID_RoundTrip(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	ctx := WithUserID(context.Background(), id)

	got, ok := UserIDFromCtx(ctx)
	if !ok {
		t.Fatal("expected user ID in context")
	}
	if got != id {
		t.Errorf("expected %s, got %s", id, got)
	}
}

func TestUserID_Missing(t *testing.T) {
	t.Parallel()

	if _, ok := UserIDFromCtx(context.Background()); ok {
		t.Error("expected no user ID in empty context")
	}
}

func TestUserID_NilUUID(t *testing.T) {
	t.Parallel()

	ctx := WithUserID(context.Background(), uuid.Nil)
	if _, ok := UserIDFromCtx(ctx); ok {
		t.Error("expected nil UUID to be treated as absent")
	}
}

func TestRole_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := WithRole(context.Background(), "admin")
	if got := RoleFromCtx(ctx); got != "admin" {
		t.Errorf("expected role admin, got %q", got)
	}
	if !IsAdminCtx(ctx) {
		t.Error("expected IsAdminCtx to be true")
	}

	voter := WithRole(context.Background(), "voter")
	if IsAdminCtx(voter) {
		t.Error("expected IsAdminCtx to be false for voter")
	}
}

func TestRequestID_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := WithRequestID(context.Background(), "req-123")
	if got := RequestIDFromCtx(ctx); got != "req-123" {
		t.Errorf("expected req-123, got %q", got)
	}
	if got := RequestIDFromCtx(context.Background()); got != "" {
		t.Errorf("expected empty request ID, got %q", got)
	}
}
