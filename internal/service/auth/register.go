package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/krishisathi/backend/internal/domain"
)

// Register creates a farmer account and signs it in.
// Returns ErrAlreadyExists if the email is taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*Result, error) {
	input.Email = domain.NormalizeEmail(input.Email)
	input.Name = domain.NormalizeName(input.Name)
	input.Phone = domain.TrimOrNil(input.Phone)
	input.Village = domain.TrimOrNil(input.Village)
	input.District = domain.TrimOrNil(input.District)
	input.State = domain.TrimOrNil(input.State)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	now := time.Now().UTC()
	user, err := s.users.Create(ctx, domain.User{
		ID:           uuid.New(),
		Email:        input.Email,
		Name:         input.Name,
		Phone:        input.Phone,
		Village:      input.Village,
		District:     input.District,
		State:        input.State,
		Role:         domain.UserRoleFarmer,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	result, err := s.issue(user)
	if err != nil {
		return nil, fmt.Errorf("auth.Register issue token: %w", err)
	}

	s.log.InfoContext(ctx, "farmer registered", slog.String("user_id", user.ID.String()))
	return result, nil
}
