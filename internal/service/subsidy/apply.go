package subsidy

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/krishisathi/backend/internal/domain"
	"github.com/krishisathi/backend/internal/workflow"
)

// Apply stores the three required documents and files a pending application.
func (s *Service) Apply(ctx context.Context, input ApplyInput) (*domain.Application, error) {
	caller := workflow.CallerFromCtx(ctx)
	if caller.ID == uuid.Nil {
		return nil, domain.ErrUnauthorized
	}
	if caller.IsAdmin() {
		return nil, fmt.Errorf("subsidy.Apply by admin: %w", domain.ErrForbidden)
	}

	input = input.normalized()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		docs   domain.ApplicationDocuments
		stored []string
	)
	for _, slot := range domain.DocumentSlots {
		ref, err := s.files.Save(ctx, slot, domain.FileKindDocument, input.Documents[slot].Content)
		if err != nil {
			s.discard(ctx, stored)
			return nil, fmt.Errorf("subsidy.Apply: %w", err)
		}
		docs.Set(slot, ref)
		stored = append(stored, ref)
	}

	now := s.now().UTC()
	app, err := s.apps.Create(ctx, domain.Application{
		ID:            uuid.New(),
		OwnerID:       caller.ID,
		SchemeName:    input.SchemeName,
		LandArea:      input.LandArea,
		CropType:      input.CropType,
		Documents:     docs,
		Status:        domain.ApplicationStatusPending,
		AdminReplies:  []string{},
		SubmittedDate: now,
		UpdatedAt:     now,
	})
	if err != nil {
		s.discard(ctx, stored)
		return nil, fmt.Errorf("subsidy.Apply: %w", err)
	}

	s.log.InfoContext(ctx, "application submitted",
		slog.String("application_id", app.ID.String()),
		slog.String("owner_id", caller.ID.String()),
		slog.String("scheme", app.SchemeName),
	)
	return app, nil
}

func (s *Service) discard(ctx context.Context, refs []string) {
	for _, ref := range refs {
		if err := s.files.Delete(context.WithoutCancel(ctx), ref); err != nil {
			s.log.WarnContext(ctx, "discard document", slog.String("ref", ref), slog.String("error", err.Error()))
		}
	}
}
