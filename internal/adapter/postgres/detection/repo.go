// Package detection stores crop-disease classification history.
package detection

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/krishisathi/backend/internal/adapter/postgres"
	"github.com/krishisathi/backend/internal/domain"
)

const table = "disease_detections"

var columns = []string{"id", "farmer_id", "image_ref", "label", "confidence", "description", "remedy", "created_at"}

// Repo provides detection persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new detection repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a detection.
func (r *Repo) Create(ctx context.Context, d domain.DiseaseDetection) error {
	q := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(d.ID, d.FarmerID, d.ImageRef, d.Label, d.Confidence, d.Description, d.Remedy, d.CreatedAt)

	if _, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.pool), q); err != nil {
		return postgres.MapError(err, "disease_detection", d.ID)
	}
	return nil
}

// ListByFarmer returns a farmer's detections, newest first.
func (r *Repo) ListByFarmer(ctx context.Context, farmerID uuid.UUID, limit, offset int) ([]domain.DiseaseDetection, error) {
	q := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"farmer_id": farmerID}).
		OrderBy("created_at DESC", "id")

	rows, err := postgres.Query(ctx, postgres.QuerierFromCtx(ctx, r.pool), postgres.Paginate(q, limit, offset))
	if err != nil {
		return nil, postgres.MapError(err, "disease_detections", farmerID)
	}

	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.DiseaseDetection, error) {
		var d domain.DiseaseDetection
		err := row.Scan(&d.ID, &d.FarmerID, &d.ImageRef, &d.Label, &d.Confidence, &d.Description, &d.Remedy, &d.CreatedAt)
		return d, err
	})
	if err != nil {
		return nil, postgres.MapError(err, "disease_detections", farmerID)
	}
	return out, nil
}
