// Package disease classifies crop images and keeps each farmer's detection history.
package disease

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/krishisathi/backend/internal/domain"
	"github.com/krishisathi/backend/internal/workflow"
)

type detectionRepo interface {
	Create(ctx context.Context, d domain.DiseaseDetection) error
	ListByFarmer(ctx context.Context, farmerID uuid.UUID, limit, offset int) ([]domain.DiseaseDetection, error)
}

type classifier interface {
	Classify(ctx context.Context, filename string, image io.Reader) (*domain.Classification, error)
}

type fileStore interface {
	Save(ctx context.Context, field string, kind domain.FileKind, r io.Reader) (string, error)
	Open(ref string) (io.ReadCloser, error)
	Delete(ctx context.Context, ref string) error
}

// Service runs disease detection.
type Service struct {
	log        *slog.Logger
	detections detectionRepo
	classifier classifier
	files      fileStore
	now        func() time.Time
}

// NewService creates a new disease service.
func NewService(logger *slog.Logger, detections detectionRepo, c classifier, files fileStore) *Service {
	return &Service{
		log:        logger.With("service", "disease"),
		detections: detections,
		classifier: c,
		files:      files,
		now:        time.Now,
	}
}

// Detect stores the image, asks the model server for a verdict and records it.
// A classifier failure is returned as is and nothing is recorded.
func (s *Service) Detect(ctx context.Context, image domain.Upload) (*domain.DiseaseDetection, error) {
	caller := workflow.CallerFromCtx(ctx)
	if caller.ID == uuid.Nil {
		return nil, domain.ErrUnauthorized
	}
	if caller.IsAdmin() {
		return nil, fmt.Errorf("disease.Detect by admin: %w", domain.ErrForbidden)
	}
	if image.Content == nil {
		return nil, domain.NewValidationError("image", "required")
	}

	ref, err := s.files.Save(ctx, "image", domain.FileKindImage, image.Content)
	if err != nil {
		return nil, fmt.Errorf("disease.Detect: %w", err)
	}

	verdict, err := s.classify(ctx, ref, image.Filename)
	if err != nil {
		s.discard(ctx, ref)
		return nil, fmt.Errorf("disease.Detect: %w", err)
	}

	d := domain.DiseaseDetection{
		ID:             uuid.New(),
		FarmerID:       caller.ID,
		ImageRef:       ref,
		Classification: *verdict,
		CreatedAt:      s.now().UTC(),
	}
	if err := s.detections.Create(ctx, d); err != nil {
		s.discard(ctx, ref)
		return nil, fmt.Errorf("disease.Detect: %w", err)
	}

	s.log.InfoContext(ctx, "disease detected",
		slog.String("farmer_id", caller.ID.String()),
		slog.String("label", verdict.Label),
		slog.Float64("confidence", verdict.Confidence),
	)
	return &d, nil
}

func (s *Service) classify(ctx context.Context, ref, filename string) (*domain.Classification, error) {
	f, err := s.files.Open(ref)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if filename == "" {
		filename = "image"
	}
	return s.classifier.Classify(ctx, filename, f)
}

func (s *Service) discard(ctx context.Context, ref string) {
	if err := s.files.Delete(context.WithoutCancel(ctx), ref); err != nil {
		s.log.WarnContext(ctx, "discard image", slog.String("ref", ref), slog.String("error", err.Error()))
	}
}

// History returns the caller's detections, newest first.
func (s *Service) History(ctx context.Context, limit, offset int) ([]domain.DiseaseDetection, error) {
	caller := workflow.CallerFromCtx(ctx)
	if caller.ID == uuid.Nil {
		return nil, domain.ErrUnauthorized
	}

	items, err := s.detections.ListByFarmer(ctx, caller.ID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("disease.History: %w", err)
	}
	return items, nil
}
