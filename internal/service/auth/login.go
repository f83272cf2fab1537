package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/krishisathi/backend/internal/domain"
)

// Login authenticates with email and password.
// Unknown email and wrong password both yield ErrUnauthorized.
func (s *Service) Login(ctx context.Context, input LoginInput) (*Result, error) {
	input.Email = domain.NormalizeEmail(input.Email)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Login get user: %w", err)
	}

	ok, err := s.hasher.Compare(user.PasswordHash, input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth.Login compare: %w", err)
	}
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	result, err := s.issue(user)
	if err != nil {
		return nil, fmt.Errorf("auth.Login issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in",
		slog.String("user_id", user.ID.String()),
		slog.String("role", string(user.Role)),
	)
	return result, nil
}

// ValidateToken verifies an access token and returns the caller it carries.
func (s *Service) ValidateToken(_ context.Context, token string) (domain.Caller, error) {
	return s.tokens.Verify(token)
}
