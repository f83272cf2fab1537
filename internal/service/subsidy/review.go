package subsidy

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/krishisathi/backend/internal/domain"
	"github.com/krishisathi/backend/internal/workflow"
)

// UpdateStatus approves or rejects a pending application.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ApplicationStatus) (*domain.Application, error) {
	caller := workflow.CallerFromCtx(ctx)
	if caller.ID == uuid.Nil {
		return nil, domain.ErrUnauthorized
	}
	if !caller.IsAdmin() {
		return nil, fmt.Errorf("subsidy.UpdateStatus by %s: %w", caller.Role, domain.ErrForbidden)
	}

	var (
		updated *domain.Application
		from    domain.ApplicationStatus
	)
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		current, err := s.apps.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		from = current.Status

		outcome, err := workflow.ApplicationLifecycle.Transition(current.Status, status, caller)
		if err != nil {
			return err
		}

		reviewedAt := workflow.ResolutionStamp(current.ReviewedDate, outcome, s.now())
		updated, err = s.apps.UpdateStatus(ctx, id, status, reviewedAt)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("subsidy.UpdateStatus: %w", err)
	}

	workflow.ApplicationLifecycle.RecordTransition(from, status)
	s.log.InfoContext(ctx, "application reviewed",
		slog.String("application_id", id.String()),
		slog.String("status", status.String()),
		slog.String("admin_id", caller.ID.String()),
	)
	return updated, nil
}

// Reply appends an admin note while the application is pending.
func (s *Service) Reply(ctx context.Context, id uuid.UUID, reply string) (*domain.Application, error) {
	caller := workflow.CallerFromCtx(ctx)
	if caller.ID == uuid.Nil {
		return nil, domain.ErrUnauthorized
	}

	var updated *domain.Application
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		current, err := s.apps.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}

		msg, err := workflow.ApplicationThread.CheckAppend(current.Status, current.OwnerID, reply, caller)
		if err != nil {
			return err
		}

		updated, err = s.apps.AppendAdminReply(ctx, id, msg)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("subsidy.Reply: %w", err)
	}

	s.log.InfoContext(ctx, "application reply added",
		slog.String("application_id", id.String()),
		slog.String("admin_id", caller.ID.String()),
	)
	return updated, nil
}
