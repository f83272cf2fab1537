package issue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/krishisathi/backend/internal/domain"
	"github.com/krishisathi/backend/internal/workflow"
)

// Reply appends the caller's message to the issue thread and returns the
// updated issue.
func (s *Service) Reply(ctx context.Context, id uuid.UUID, message string) (*domain.Issue, error) {
	caller := workflow.CallerFromCtx(ctx)
	if caller.ID == uuid.Nil {
		return nil, domain.ErrUnauthorized
	}

	var updated *domain.Issue
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		current, err := s.issues.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}

		msg, err := workflow.IssueThread.CheckAppend(current.Status, current.OwnerID, message, caller)
		if err != nil {
			return err
		}

		updated, err = s.issues.AppendReply(ctx, id, domain.Reply{
			Message:    msg,
			SenderType: workflow.SenderFor(caller),
			AuthorID:   caller.ID,
			CreatedAt:  s.now().UTC(),
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("issue.Reply: %w", err)
	}

	s.log.InfoContext(ctx, "issue reply added",
		slog.String("issue_id", id.String()),
		slog.String("author_id", caller.ID.String()),
		slog.Int("replies", len(updated.Replies)),
	)
	return updated, nil
}
