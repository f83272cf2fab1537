package issue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/krishisathi/backend/internal/domain"
	"github.com/krishisathi/backend/internal/workflow"
)

// Create stores the attachments and opens a new issue owned by the caller.
// Only farmers report issues.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Issue, error) {
	caller := workflow.CallerFromCtx(ctx)
	if caller.ID == uuid.Nil {
		return nil, domain.ErrUnauthorized
	}
	if caller.IsAdmin() {
		return nil, fmt.Errorf("issue.Create by admin: %w", domain.ErrForbidden)
	}

	input = input.normalized()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	refs := make([]string, 0, len(input.Attachments))
	for _, up := range input.Attachments {
		ref, err := s.files.Save(ctx, "files", domain.FileKindImage, up.Content)
		if err != nil {
			s.discard(ctx, refs)
			return nil, fmt.Errorf("issue.Create: %w", err)
		}
		refs = append(refs, ref)
	}

	now := s.now().UTC()
	created, err := s.issues.Create(ctx, domain.Issue{
		ID:          uuid.New(),
		OwnerID:     caller.ID,
		Title:       input.Title,
		Description: input.Description,
		CropType:    input.CropType,
		Status:      domain.IssueStatusOpen,
		Attachments: refs,
		Replies:     []domain.Reply{},
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		s.discard(ctx, refs)
		return nil, fmt.Errorf("issue.Create: %w", err)
	}

	s.log.InfoContext(ctx, "issue created",
		slog.String("issue_id", created.ID.String()),
		slog.String("owner_id", caller.ID.String()),
		slog.Int("attachments", len(refs)),
	)
	return created, nil
}
