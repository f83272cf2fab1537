package subsidy

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/krishisathi/backend/internal/domain"
)

var (
	_ applicationRepo = &memApplicationRepo{}
	_ txManager       = passTx{}
)

// memApplicationRepo is an in-memory applicationRepo.
type memApplicationRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]domain.Application
}

func newMemApplicationRepo() *memApplicationRepo {
	return &memApplicationRepo{items: make(map[uuid.UUID]domain.Application)}
}

func (r *memApplicationRepo) Create(_ context.Context, app domain.Application) (*domain.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[app.ID] = app
	return copyOf(app), nil
}

func (r *memApplicationRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	app, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("application %s: %w", id, domain.ErrNotFound)
	}
	return copyOf(app), nil
}

func (r *memApplicationRepo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Application, error) {
	return r.GetByID(ctx, id)
}

func (r *memApplicationRepo) List(_ context.Context, f domain.ApplicationFilter) ([]domain.Application, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Application
	for _, app := range r.items {
		if f.OwnerID != nil && app.OwnerID != *f.OwnerID {
			continue
		}
		if f.Status != nil && app.Status != *f.Status {
			continue
		}
		out = append(out, *copyOf(app))
	}
	return out, len(out), nil
}

func (r *memApplicationRepo) UpdateStatus(_ context.Context, id uuid.UUID, status domain.ApplicationStatus, reviewedAt *time.Time) (*domain.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	app, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	app.Status = status
	if reviewedAt != nil {
		app.ReviewedDate = reviewedAt
	}
	r.items[id] = app
	return copyOf(app), nil
}

func (r *memApplicationRepo) AppendAdminReply(_ context.Context, id uuid.UUID, reply string) (*domain.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	app, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	app.AdminReplies = append(slices.Clone(app.AdminReplies), reply)
	r.items[id] = app
	return copyOf(app), nil
}

func copyOf(app domain.Application) *domain.Application {
	app.AdminReplies = slices.Clone(app.AdminReplies)
	return &app
}

// deletedRefs lists the refs passed to Delete, in call order.
func deletedRefs(m *fileStoreMock) []string {
	var refs []string
	for _, c := range m.DeleteCalls() {
		refs = append(refs, c.Ref)
	}
	return refs
}

type passTx struct{}

func (passTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
