// Package subsidy implements the subsidy application repository using PostgreSQL.
package subsidy

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
	table  = "subsidy_applications"
	entity = "subsidy_application"
)

var columns = []string{
	"id", "owner_id", "scheme_name", "land_area", "crop_type", "documents", "status",
	"admin_replies", "submitted_date", "reviewed_date", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides subsidy application persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new subsidy application repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new application.
func (r *Repo) Create(ctx context.Context, app domain.Application) (*domain.Application, error) {
	docs, err := json.Marshal(app.Documents)
	if err != nil {
		return nil, fmt.Errorf("marshal documents: %w", err)
	}
	replies := app.AdminReplies
	if replies == nil {
		replies = []string{}
	}

	q := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(app.ID, app.OwnerID, app.SchemeName, app.LandArea, app.CropType,
			squirrel.Expr("?::jsonb", string(docs)), string(app.Status), replies,
			app.SubmittedDate, app.ReviewedDate, app.UpdatedAt).
		Suffix(returning)

	return r.one(ctx, q, app.ID)
}

// GetByID returns an application by id.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Application, error) {
	q := postgres.Builder().Select(columns...).From(table).Where(squirrel.Eq{"id": id})
	return r.one(ctx, q, id)
}

// GetByIDForUpdate returns an application and locks its row for the
// surrounding transaction.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Application, error) {
	q := postgres.Builder().Select(columns...).From(table).Where(squirrel.Eq{"id": id}).Suffix("FOR UPDATE")
	return r.one(ctx, q, id)
}

// List returns applications matching f, newest submission first, plus the total.
func (r *Repo) List(ctx context.Context, f domain.ApplicationFilter) ([]domain.Application, int, error) {
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
		return nil, 0, postgres.MapError(err, "subsidy_applications", nil)
	}

	q := postgres.Builder().Select(columns...).From(table).Where(where).OrderBy("submitted_date DESC", "id")
	rows, err := postgres.Query(ctx, querier, postgres.Paginate(q, f.Limit, f.Offset))
	if err != nil {
		return nil, 0, postgres.MapError(err, "subsidy_applications", nil)
	}

	apps, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Application, error) {
		return scanApplication(row)
	})
	if err != nil {
		return nil, 0, postgres.MapError(err, "subsidy_applications", nil)
	}
	return apps, total, nil
}

// UpdateStatus writes the status and, when non-nil, the review date.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ApplicationStatus, reviewedAt *time.Time) (*domain.Application, error) {
	q := postgres.Builder().
		Update(table).
		Set("status", string(status)).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": id}).
		Suffix(returning)
	if reviewedAt != nil {
		q = q.Set("reviewed_date", *reviewedAt)
	}
	return r.one(ctx, q, id)
}

// AppendAdminReply adds reply to the end of admin_replies in one statement.
func (r *Repo) AppendAdminReply(ctx context.Context, id uuid.UUID, reply string) (*domain.Application, error) {
	q := postgres.Builder().
		Update(table).
		Set("admin_replies", squirrel.Expr("array_append(admin_replies, ?::text)", reply)).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": id}).
		Suffix(returning)
	return r.one(ctx, q, id)
}

func (r *Repo) one(ctx context.Context, b squirrel.Sqlizer, id uuid.UUID) (*domain.Application, error) {
	row, err := postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), b)
	if err != nil {
		return nil, err
	}
	app, err := scanApplication(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return &app, nil
}

func scanApplication(row pgx.Row) (domain.Application, error) {
	var (
		app    domain.Application
		status string
	)
	err := row.Scan(
		&app.ID, &app.OwnerID, &app.SchemeName, &app.LandArea, &app.CropType, &app.Documents, &status,
		&app.AdminReplies, &app.SubmittedDate, &app.ReviewedDate, &app.UpdatedAt,
	)
	if err != nil {
		return domain.Application{}, err
	}
	app.Status = domain.ApplicationStatus(status)
	if app.AdminReplies == nil {
		app.AdminReplies = []string{}
	}
	return app, nil
}
