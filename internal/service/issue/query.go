package issue

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/krishisathi/backend/internal/domain"
	"github.com/krishisathi/backend/internal/workflow"
)

// Get returns an issue the caller may read.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Issue, error) {
	caller := workflow.CallerFromCtx(ctx)
	if caller.ID == uuid.Nil {
		return nil, domain.ErrUnauthorized
	}

	is, err := s.issues.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("issue.Get: %w", err)
	}
	if err := workflow.CheckAccess(caller, is.OwnerID); err != nil {
		return nil, fmt.Errorf("issue %s: %w", id, err)
	}
	return is, nil
}

// ListMine returns the caller's own issues, newest first.
func (s *Service) ListMine(ctx context.Context, input ListInput) ([]domain.Issue, int, error) {
	caller := workflow.CallerFromCtx(ctx)
	if caller.ID == uuid.Nil {
		return nil, 0, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	items, total, err := s.issues.List(ctx, domain.IssueFilter{
		OwnerID: &caller.ID,
		Status:  input.Status,
		Limit:   input.Limit,
		Offset:  input.Offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("issue.ListMine: %w", err)
	}
	return items, total, nil
}

// ListAll returns every farmer's issues (admin only).
func (s *Service) ListAll(ctx context.Context, input ListInput) ([]domain.Issue, int, error) {
	caller := workflow.CallerFromCtx(ctx)
	if caller.ID == uuid.Nil {
		return nil, 0, domain.ErrUnauthorized
	}
	if !caller.IsAdmin() {
		return nil, 0, domain.ErrForbidden
	}
	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	items, total, err := s.issues.List(ctx, domain.IssueFilter{
		Status: input.Status,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("issue.ListAll: %w", err)
	}
	return items, total, nil
}

// ListReplies returns the issue's thread in insertion order.
func (s *Service) ListReplies(ctx context.Context, id uuid.UUID) ([]domain.Reply, error) {
	is, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if is.Replies == nil {
		return []domain.Reply{}, nil
	}
	return is.Replies, nil
}
