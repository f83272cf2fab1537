package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/krishisathi/backend/internal/domain"
)

func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts a farmer with a unique email.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return seedUser(t, pool, domain.UserRoleFarmer)
}

// SeedAdmin inserts an admin with a unique email.
func SeedAdmin(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return seedUser(t, pool, domain.UserRoleAdmin)
}

func seedUser(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	u := domain.User{
		ID:           uuid.New(),
		Email:        string(role) + "-" + suffix + "@example.com",
		Name:         "Test " + suffix,
		Role:         role,
		PasswordHash: "$2a$04$placeholderplaceholderplaceholderplaceholderpl",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, name, role, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		u.ID, u.Email, u.Name, string(u.Role), u.PasswordHash, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}
	return u
}

// SeedIssue inserts an open issue owned by ownerID.
func SeedIssue(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID) domain.Issue {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	is := domain.Issue{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Title:       "Leaves turning yellow " + uniqueSuffix(),
		Description: "Lower leaves yellowing since last week",
		Status:      domain.IssueStatusOpen,
		Attachments: []string{},
		Replies:     []domain.Reply{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO issues (id, owner_id, title, description, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		is.ID, is.OwnerID, is.Title, is.Description, string(is.Status), is.CreatedAt, is.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedIssue: %v", err)
	}
	return is
}
