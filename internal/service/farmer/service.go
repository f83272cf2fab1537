// Package farmer implements profile management and the admin farmer directory.
package farmer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/krishisathi/backend/internal/domain"
	"github.com/krishisathi/backend/pkg/ctxutil"
)

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, p domain.UserProfileParams) (*domain.User, error)
	ListByRole(ctx context.Context, role domain.UserRole, limit, offset int) ([]domain.User, int, error)
}

// Service provides profile operations.
type Service struct {
	users userRepo
	log   *slog.Logger
}

// NewService creates a new farmer service.
func NewService(log *slog.Logger, users userRepo) *Service {
	return &Service{
		users: users,
		log:   log.With("service", "farmer"),
	}
}

// GetProfile returns the authenticated user's profile.
func (s *Service) GetProfile(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("farmer.GetProfile: %w", err)
	}
	return u, nil
}

// UpdateProfile changes the supplied fields of the caller's own profile.
func (s *Service) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input = input.normalized()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	u, err := s.users.UpdateProfile(ctx, userID, domain.UserProfileParams{
		Name:     input.Name,
		Phone:    input.Phone,
		Village:  input.Village,
		District: input.District,
		State:    input.State,
	})
	if err != nil {
		return nil, fmt.Errorf("farmer.UpdateProfile: %w", err)
	}

	s.log.InfoContext(ctx, "profile updated", slog.String("user_id", userID.String()))
	return u, nil
}

// ListFarmers returns a page of farmer accounts and the total count (admin only).
func (s *Service) ListFarmers(ctx context.Context, limit, offset int) ([]domain.User, int, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, 0, domain.ErrForbidden
	}

	users, total, err := s.users.ListByRole(ctx, domain.UserRoleFarmer, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("farmer.ListFarmers: %w", err)
	}
	return users, total, nil
}
