// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/krishisathi/backend/internal/adapter/postgres"
	"github.com/krishisathi/backend/internal/domain"
)

const table = "users"

var columns = []string{
	"id", "email", "name", "phone", "village", "district", "state",
	"role", "password_hash", "created_at", "updated_at",
}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new user and returns the persisted row.
// A duplicate email yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u domain.User) (*domain.User, error) {
	q := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(u.ID, u.Email, u.Name, u.Phone, u.Village, u.District, u.State,
			string(u.Role), u.PasswordHash, u.CreatedAt, u.UpdatedAt).
		Suffix("RETURNING " + joinColumns())

	return r.one(ctx, q, u.ID)
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.Builder().Select(columns...).From(table).Where(squirrel.Eq{"id": id})
	return r.one(ctx, q, id)
}

// GetByEmail returns a user by normalized email.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := postgres.Builder().Select(columns...).From(table).Where(squirrel.Eq{"email": email})
	return r.one(ctx, q, email)
}

// UpdateProfile sets the non-nil fields of p and bumps updated_at.
func (r *Repo) UpdateProfile(ctx context.Context, id uuid.UUID, p domain.UserProfileParams) (*domain.User, error) {
	q := postgres.Builder().
		Update(table).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns())

	if p.Name != nil {
		q = q.Set("name", *p.Name)
	}
	if p.Phone != nil {
		q = q.Set("phone", *p.Phone)
	}
	if p.Village != nil {
		q = q.Set("village", *p.Village)
	}
	if p.District != nil {
		q = q.Set("district", *p.District)
	}
	if p.State != nil {
		q = q.Set("state", *p.State)
	}

	return r.one(ctx, q, id)
}

// SetRoleByEmail changes the role of the user with the given email.
func (r *Repo) SetRoleByEmail(ctx context.Context, email string, role domain.UserRole) (*domain.User, error) {
	q := postgres.Builder().
		Update(table).
		Set("role", string(role)).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"email": email}).
		Suffix("RETURNING " + joinColumns())

	return r.one(ctx, q, email)
}

// ListByRole returns users with the given role, newest first, and the total count.
func (r *Repo) ListByRole(ctx context.Context, role domain.UserRole, limit, offset int) ([]domain.User, int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)
	where := squirrel.Eq{"role": string(role)}

	var total int
	row, err := postgres.QueryRow(ctx, querier, postgres.Builder().Select("count(*)").From(table).Where(where))
	if err != nil {
		return nil, 0, err
	}
	if err := row.Scan(&total); err != nil {
		return nil, 0, postgres.MapError(err, "users", role)
	}

	q := postgres.Builder().Select(columns...).From(table).Where(where).OrderBy("created_at DESC", "id")
	rows, err := postgres.Query(ctx, querier, postgres.Paginate(q, limit, offset))
	if err != nil {
		return nil, 0, postgres.MapError(err, "users", role)
	}

	users, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.User, error) {
		return scanUser(row)
	})
	if err != nil {
		return nil, 0, postgres.MapError(err, "users", role)
	}
	return users, total, nil
}

// GetNamesByIDs returns display names keyed by user id. Unknown ids are absent.
func (r *Repo) GetNamesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]string{}, nil
	}

	q := postgres.Builder().Select("id", "name").From(table).Where(squirrel.Eq{"id": ids})
	rows, err := postgres.Query(ctx, postgres.QuerierFromCtx(ctx, r.pool), q)
	if err != nil {
		return nil, postgres.MapError(err, "users", nil)
	}
	defer rows.Close()

	names := make(map[uuid.UUID]string, len(ids))
	for rows.Next() {
		var (
			id   uuid.UUID
			name string
		)
		if err := rows.Scan(&id, &name); err != nil {
			return nil, postgres.MapError(err, "users", nil)
		}
		names[id] = name
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "users", nil)
	}
	return names, nil
}

func (r *Repo) one(ctx context.Context, b squirrel.Sqlizer, key any) (*domain.User, error) {
	row, err := postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), b)
	if err != nil {
		return nil, err
	}
	u, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", key)
	}
	return &u, nil
}

func scanUser(row pgx.Row) (domain.User, error) {
	var (
		u    domain.User
		role string
	)
	err := row.Scan(
		&u.ID, &u.Email, &u.Name, &u.Phone, &u.Village, &u.District, &u.State,
		&role, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, err
	}
	u.Role = domain.UserRole(role)
	return u, nil
}

func joinColumns() string {
	return strings.Join(columns, ", ")
}
