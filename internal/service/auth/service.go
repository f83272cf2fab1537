// Package auth implements registration, login and token verification.
package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/krishisathi/backend/internal/domain"
)

type userRepo interface {
	Create(ctx context.Context, u domain.User) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type tokenIssuer interface {
	Issue(userID uuid.UUID, role domain.UserRole) (string, time.Time, error)
	Verify(token string) (domain.Caller, error)
}

type passwordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) (bool, error)
}

// Service implements auth operations.
type Service struct {
	log    *slog.Logger
	users  userRepo
	tokens tokenIssuer
	hasher passwordHasher
}

// NewService creates a new auth service.
func NewService(logger *slog.Logger, users userRepo, tokens tokenIssuer, hasher passwordHasher) *Service {
	return &Service{
		log:    logger.With("service", "auth"),
		users:  users,
		tokens: tokens,
		hasher: hasher,
	}
}

// Result is returned by Register and Login.
type Result struct {
	AccessToken string
	ExpiresAt   time.Time
	User        *domain.User
}

func (s *Service) issue(u *domain.User) (*Result, error) {
	token, expires, err := s.tokens.Issue(u.ID, u.Role)
	if err != nil {
		return nil, err
	}
	return &Result{AccessToken: token, ExpiresAt: expires, User: u}, nil
}
