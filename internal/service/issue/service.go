// Package issue implements crop-issue reports and their reply threads.
package issue

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/krishisathi/backend/internal/domain"
)

// MaxAttachments is the number of images an issue may carry.
const MaxAttachments = 5

type issueRepo interface {
	Create(ctx context.Context, is domain.Issue) (*domain.Issue, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Issue, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Issue, error)
	List(ctx context.Context, f domain.IssueFilter) ([]domain.Issue, int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.IssueStatus, resolvedAt *time.Time) (*domain.Issue, error)
	AppendReply(ctx context.Context, id uuid.UUID, reply domain.Reply) (*domain.Issue, error)
}

type fileStore interface {
	Save(ctx context.Context, field string, kind domain.FileKind, r io.Reader) (string, error)
	Delete(ctx context.Context, ref string) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides crop-issue operations.
type Service struct {
	log    *slog.Logger
	issues issueRepo
	files  fileStore
	tx     txManager
	now    func() time.Time
}

// NewService creates a new issue service.
func NewService(logger *slog.Logger, issues issueRepo, files fileStore, tx txManager) *Service {
	return &Service{
		log:    logger.With("service", "issue"),
		issues: issues,
		files:  files,
		tx:     tx,
		now:    time.Now,
	}
}

// discard removes stored files after a failed create.
func (s *Service) discard(ctx context.Context, refs []string) {
	for _, ref := range refs {
		if err := s.files.Delete(context.WithoutCancel(ctx), ref); err != nil {
			s.log.WarnContext(ctx, "discard attachment", slog.String("ref", ref), slog.String("error", err.Error()))
		}
	}
}
