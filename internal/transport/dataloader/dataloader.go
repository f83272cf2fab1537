// Package dataloader provides per-request batched lookups used when rendering
// reply threads. Loaders call repositories directly; the rows they expose
// (user display names) carry no access restriction.
package dataloader

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type userRepo interface {
	GetNamesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error)
}

// Loaders holds the per-request loader instances.
type Loaders struct {
	AuthorName *dataloader.Loader[uuid.UUID, string]
}

// NewLoaders creates loaders backed by users. Call once per request.
func NewLoaders(users userRepo) *Loaders {
	return &Loaders{
		AuthorName: dataloader.NewBatchedLoader(
			newAuthorNameBatchFn(users),
			dataloader.WithWait[uuid.UUID, string](wait),
			dataloader.WithBatchCapacity[uuid.UUID, string](maxBatch),
		),
	}
}

// newAuthorNameBatchFn resolves display names. Unknown ids resolve to "".
func newAuthorNameBatchFn(repo userRepo) dataloader.BatchFunc[uuid.UUID, string] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[string] {
		names, err := repo.GetNamesByIDs(ctx, keys)
		results := make([]*dataloader.Result[string], len(keys))
		for i, key := range keys {
			if err != nil {
				results[i] = &dataloader.Result[string]{Error: err}
				continue
			}
			results[i] = &dataloader.Result[string]{Data: names[key]}
		}
		return results
	}
}

// AuthorNames resolves ids in one batch and returns them keyed by id.
func (l *Loaders) AuthorNames(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	out := make(map[uuid.UUID]string, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	names, errs := l.AuthorName.LoadMany(ctx, ids)()
	for i, id := range ids {
		if i < len(errs) && errs[i] != nil {
			return nil, errs[i]
		}
		out[id] = names[i]
	}
	return out, nil
}

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores l in ctx.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext returns the request's loaders, or nil when the middleware is
// not installed.
func FromContext(ctx context.Context) *Loaders {
	l, _ := ctx.Value(loadersKey).(*Loaders)
	return l
}

// Middleware installs fresh loaders on every request.
func Middleware(users userRepo) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithLoaders(r.Context(), NewLoaders(users))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
