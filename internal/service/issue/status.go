package issue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/krishisathi/backend/internal/domain"
	"github.com/krishisathi/backend/internal/workflow"
)

// UpdateStatus moves an issue along its lifecycle. The row is locked for the
// duration of the check so concurrent admins are serialized.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.IssueStatus) (*domain.Issue, error) {
	caller := workflow.CallerFromCtx(ctx)
	if caller.ID == uuid.Nil {
		return nil, domain.ErrUnauthorized
	}
	if !caller.IsAdmin() {
		return nil, fmt.Errorf("issue.UpdateStatus by %s: %w", caller.Role, domain.ErrForbidden)
	}

	var (
		updated *domain.Issue
		from    domain.IssueStatus
	)
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		current, err := s.issues.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		from = current.Status

		outcome, err := workflow.IssueLifecycle.Transition(current.Status, status, caller)
		if err != nil {
			return err
		}

		resolvedAt := workflow.ResolutionStamp(current.ResolvedAt, outcome, s.now())
		updated, err = s.issues.UpdateStatus(ctx, id, status, resolvedAt)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("issue.UpdateStatus: %w", err)
	}

	workflow.IssueLifecycle.RecordTransition(from, status)
	s.log.InfoContext(ctx, "issue status changed",
		slog.String("issue_id", id.String()),
		slog.String("from", from.String()),
		slog.String("to", status.String()),
		slog.String("admin_id", caller.ID.String()),
	)
	return updated, nil
}
