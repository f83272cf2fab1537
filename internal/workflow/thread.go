package workflow

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/krishisathi/backend/internal/domain"
)

// ReplyPolicy decides whether caller may write to the thread of a submission
// owned by ownerID.
type ReplyPolicy func(caller domain.Caller, ownerID uuid.UUID) bool

// OwnerOrAdmin lets admins and the submission's owner reply.
func OwnerOrAdmin(caller domain.Caller, ownerID uuid.UUID) bool {
	return caller.IsAdmin() || caller.Owns(ownerID)
}

// AdminOnly lets only admins reply.
func AdminOnly(caller domain.Caller, _ uuid.UUID) bool {
	return caller.IsAdmin()
}

// Thread gates appends to a variant's reply thread by status and caller.
type Thread[S ~string] struct {
	lifecycle *Lifecycle[S]
	policy    ReplyPolicy
}

// NewThread combines a lifecycle with a reply policy.
func NewThread[S ~string](lifecycle *Lifecycle[S], policy ReplyPolicy) *Thread[S] {
	return &Thread[S]{lifecycle: lifecycle, policy: policy}
}

// CheckAppend validates a reply before it is appended and returns the trimmed
// message. Checks run in order: read access, frozen thread, empty message,
// write permission.
func (t *Thread[S]) CheckAppend(status S, ownerID uuid.UUID, message string, caller domain.Caller) (string, error) {
	if err := CheckAccess(caller, ownerID); err != nil {
		return "", err
	}

	if !t.lifecycle.ThreadOpen(status) {
		return "", fmt.Errorf("%s is %s: %w", t.lifecycle.Name(), status, domain.ErrThreadClosed)
	}

	msg := strings.TrimSpace(message)
	if msg == "" {
		return "", domain.ErrEmptyMessage
	}

	if !t.policy(caller, ownerID) {
		return "", fmt.Errorf("%s reply by %s: %w", t.lifecycle.Name(), caller.Role, domain.ErrForbidden)
	}

	return msg, nil
}

// SenderFor maps a caller to the sender type recorded on an issue reply.
func SenderFor(caller domain.Caller) domain.SenderType {
	if caller.IsAdmin() {
		return domain.SenderTypeAdmin
	}
	return domain.SenderTypeFarmer
}
