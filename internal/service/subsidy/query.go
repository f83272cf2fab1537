package subsidy

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/krishisathi/backend/internal/domain"
	"github.com/krishisathi/backend/internal/workflow"
)

// Get returns an application the caller may read.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Application, error) {
	caller := workflow.CallerFromCtx(ctx)
	if caller.ID == uuid.Nil {
		return nil, domain.ErrUnauthorized
	}

	app, err := s.apps.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("subsidy.Get: %w", err)
	}
	if err := workflow.CheckAccess(caller, app.OwnerID); err != nil {
		return nil, fmt.Errorf("application %s: %w", id, err)
	}
	return app, nil
}

// ListMine returns the caller's applications, newest first.
func (s *Service) ListMine(ctx context.Context, input ListInput) ([]domain.Application, int, error) {
	caller := workflow.CallerFromCtx(ctx)
	if caller.ID == uuid.Nil {
		return nil, 0, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	apps, total, err := s.apps.List(ctx, domain.ApplicationFilter{
		OwnerID: &caller.ID,
		Status:  input.Status,
		Limit:   input.Limit,
		Offset:  input.Offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("subsidy.ListMine: %w", err)
	}
	return apps, total, nil
}

// ListAll returns all applications (admin only).
func (s *Service) ListAll(ctx context.Context, input ListInput) ([]domain.Application, int, error) {
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

	apps, total, err := s.apps.List(ctx, domain.ApplicationFilter{
		Status: input.Status,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("subsidy.ListAll: %w", err)
	}
	return apps, total, nil
}

// ListReplies returns the admin replies in insertion order.
func (s *Service) ListReplies(ctx context.Context, id uuid.UUID) ([]string, error) {
	app, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if app.AdminReplies == nil {
		return []string{}, nil
	}
	return app.AdminReplies, nil
}
