package workflow

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/krishisathi/backend/internal/domain"
	"github.com/krishisathi/backend/pkg/ctxutil"
)

// CallerFromCtx builds the caller identity set by the auth middleware.
// An anonymous context yields the zero Caller, which CheckAccess rejects.
func CallerFromCtx(ctx context.Context) domain.Caller {
	id, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Caller{}
	}
	return domain.Caller{ID: id, Role: domain.UserRole(ctxutil.UserRoleFromCtx(ctx))}
}

// CheckAccess returns domain.ErrForbidden unless caller is an admin or owns
// the submission. A caller without an id is unauthorized.
func CheckAccess(caller domain.Caller, ownerID uuid.UUID) error {
	if caller.ID == uuid.Nil {
		return domain.ErrUnauthorized
	}
	if caller.IsAdmin() || caller.Owns(ownerID) {
		return nil
	}
	return domain.ErrForbidden
}

// ResolutionStamp returns the resolution timestamp after a transition. An
// existing stamp is never replaced or cleared.
func ResolutionStamp(existing *time.Time, outcome Outcome, now time.Time) *time.Time {
	if existing != nil {
		return existing
	}
	if !outcome.StampResolution {
		return nil
	}
	t := now.UTC()
	return &t
}
