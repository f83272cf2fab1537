// Package subsidy implements subsidy applications and their admin reply thread.
package subsidy

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/krishisathi/backend/internal/domain"
)

type applicationRepo interface {
	Create(ctx context.Context, app domain.Application) (*domain.Application, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Application, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Application, error)
	List(ctx context.Context, f domain.ApplicationFilter) ([]domain.Application, int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ApplicationStatus, reviewedAt *time.Time) (*domain.Application, error)
	AppendAdminReply(ctx context.Context, id uuid.UUID, reply string) (*domain.Application, error)
}

type fileStore interface {
	Save(ctx context.Context, field string, kind domain.FileKind, r io.Reader) (string, error)
	Delete(ctx context.Context, ref string) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides subsidy application operations.
type Service struct {
	log   *slog.Logger
	apps  applicationRepo
	files fileStore
	tx    txManager
	now   func() time.Time
}

// NewService creates a new subsidy service.
func NewService(logger *slog.Logger, apps applicationRepo, files fileStore, tx txManager) *Service {
	return &Service{
		log:   logger.With("service", "subsidy"),
		apps:  apps,
		files: files,
		tx:    tx,
		now:   time.Now,
	}
}
