// Package issue implements the crop-issue repository using PostgreSQL.
package issue

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/krishisathi/backend/internal/adapter/postgres"
	"github.com/krishisathi/backend/internal/domain"
)

const (
	table  = "issues"
	entity = "issue"
)

var columns = []string{
	"id", "owner_id", "title", "description", "crop_type", "status",
	"attachments", "replies", "created_at", "resolved_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides issue persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new issue repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new issue.
func (r *Repo) Create(ctx context.Context, is domain.Issue) (*domain.Issue, error) {
	replies, err := marshalReplies(is.Replies)
	if err != nil {
		return nil, err
	}
	attachments := is.Attachments
	if attachments == nil {
		attachments = []string{}
	}

	q := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(is.ID, is.OwnerID, is.Title, is.Description, is.CropType, string(is.Status),
			attachments, squirrel.Expr("?::jsonb", replies), is.CreatedAt, is.ResolvedAt, is.UpdatedAt).
		Suffix(returning)

	return r.one(ctx, q, is.ID)
}

// GetByID returns an issue by id.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Issue, error) {
	q := postgres.Builder().Select(columns...).From(table).Where(squirrel.Eq{"id": id})
	return r.one(ctx, q, id)
}

// GetByIDForUpdate returns an issue and locks its row until the surrounding
// transaction ends. Outside a transaction the lock is released immediately.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Issue, error) {
	q := postgres.Builder().Select(columns...).From(table).Where(squirrel.Eq{"id": id}).Suffix("FOR UPDATE")
	return r.one(ctx, q, id)
}

// List returns issues matching f, newest first, plus the total match count.
func (r *Repo) List(ctx context.Context, f domain.IssueFilter) ([]domain.Issue, int, error) {
	where := squirrel.And{}
	if f.OwnerID != nil {
		where = append(where, squirrel.Eq{"owner_id": *f.OwnerID})
	}
	if f.Status != nil {
		where = append(where, squirrel.Eq{"status": string(*f.Status)})
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var total int
	row, err := postgres.QueryRow(ctx, querier, postgres.Builder().Select("count(*)").From(table).Where(where))
	if err != nil {
		return nil, 0, err
	}
	if err := row.Scan(&total); err != nil {
		return nil, 0, postgres.MapError(err, "issues", nil)
	}

	q := postgres.Builder().Select(columns...).From(table).Where(where).OrderBy("created_at DESC", "id")
	rows, err := postgres.Query(ctx, querier, postgres.Paginate(q, f.Limit, f.Offset))
	if err != nil {
		return nil, 0, postgres.MapError(err, "issues", nil)
	}

	issues, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Issue, error) {
		return scanIssue(row)
	})
	if err != nil {
		return nil, 0, postgres.MapError(err, "issues", nil)
	}
	return issues, total, nil
}

// UpdateStatus writes the status and, when non-nil, the resolution time.
// A nil resolvedAt keeps the stored value.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.IssueStatus, resolvedAt *time.Time) (*domain.Issue, error) {
	q := postgres.Builder().
		Update(table).
		Set("status", string(status)).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": id}).
		Suffix(returning)
	if resolvedAt != nil {
		q = q.Set("resolved_at", *resolvedAt)
	}
	return r.one(ctx, q, id)
}

// AppendReply adds reply to the end of the thread in a single statement.
// Existing entries are never rewritten.
func (r *Repo) AppendReply(ctx context.Context, id uuid.UUID, reply domain.Reply) (*domain.Issue, error) {
	entry, err := marshalReplies([]domain.Reply{reply})
	if err != nil {
		return nil, err
	}

	q := postgres.Builder().
		Update(table).
		Set("replies", squirrel.Expr("replies || ?::jsonb", entry)).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": id}).
		Suffix(returning)

	return r.one(ctx, q, id)
}

func (r *Repo) one(ctx context.Context, b squirrel.Sqlizer, id uuid.UUID) (*domain.Issue, error) {
	row, err := postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), b)
	if err != nil {
		return nil, err
	}
	is, err := scanIssue(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return &is, nil
}

func scanIssue(row pgx.Row) (domain.Issue, error) {
	var (
		is     domain.Issue
		status string
	)
	err := row.Scan(
		&is.ID, &is.OwnerID, &is.Title, &is.Description, &is.CropType, &status,
		&is.Attachments, &is.Replies, &is.CreatedAt, &is.ResolvedAt, &is.UpdatedAt,
	)
	if err != nil {
		return domain.Issue{}, err
	}
	is.Status = domain.IssueStatus(status)
	if is.Attachments == nil {
		is.Attachments = []string{}
	}
	if is.Replies == nil {
		is.Replies = []domain.Reply{}
	}
	return is, nil
}

func marshalReplies(replies []domain.Reply) (string, error) {
	if replies == nil {
		replies = []domain.Reply{}
	}
	b, err := json.Marshal(replies)
	if err != nil {
		return "", fmt.Errorf("marshal replies: %w", err)
	}
	return string(b), nil
}
