// Package chat stores assistant conversation history.
package chat

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/krishisathi/backend/internal/adapter/postgres"
	"github.com/krishisathi/backend/internal/domain"
)

const table = "chat_messages"

// Repo provides chat history persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new chat repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts an exchange.
func (r *Repo) Create(ctx context.Context, m domain.ChatMessage) error {
	q := postgres.Builder().
		Insert(table).
		Columns("id", "user_id", "prompt", "answer", "created_at").
		Values(m.ID, m.UserID, m.Prompt, m.Answer, m.CreatedAt)

	if _, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.pool), q); err != nil {
		return postgres.MapError(err, "chat_message", m.ID)
	}
	return nil
}

// ListByUser returns a user's exchanges, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.ChatMessage, error) {
	q := postgres.Builder().
		Select("id", "user_id", "prompt", "answer", "created_at").
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id")

	rows, err := postgres.Query(ctx, postgres.QuerierFromCtx(ctx, r.pool), postgres.Paginate(q, limit, offset))
	if err != nil {
		return nil, postgres.MapError(err, "chat_messages", userID)
	}

	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ChatMessage, error) {
		var m domain.ChatMessage
		err := row.Scan(&m.ID, &m.UserID, &m.Prompt, &m.Answer, &m.CreatedAt)
		return m, err
	})
	if err != nil {
		return nil, postgres.MapError(err, "chat_messages", userID)
	}
	return out, nil
}
