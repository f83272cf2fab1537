package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered farmer or administrator.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	Phone        *string
	Village      *string
	District     *string
	State        *string
	Role         UserRole
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserProfileParams holds optional profile fields to update. Nil means keep.
type UserProfileParams struct {
	Name     *string
	Phone    *string
	Village  *string
	District *string
	State    *string
}

// Caller is the authenticated identity on whose behalf an operation runs.
type Caller struct {
	ID   uuid.UUID
	Role UserRole
}

// IsAdmin reports whether the caller has the admin role.
func (c Caller) IsAdmin() bool { return c.Role.IsAdmin() }

// Owns reports whether the caller is the given owner.
func (c Caller) Owns(ownerID uuid.UUID) bool {
	return c.ID != uuid.Nil && c.ID == ownerID
}
