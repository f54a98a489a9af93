package middleware

import (
	"context"

	"github.com/fsferdows/dhaka17-portal/internal/domain"
	"github.com/fsferdows/dhaka17-portal/pkg/ctxutil"
)

// RequireAdmin returns domain.ErrForbidden if the context user is not admin.
// Use inside REST handlers, not as HTTP middleware.
func RequireAdmin(ctx context.Context) error {
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}
	return nil
}
