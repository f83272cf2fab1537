// Package market stores mandi price rows.
package market

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/krishisathi/backend/internal/adapter/postgres"
	"github.com/krishisathi/backend/internal/domain"
)

const table = "market_prices"

var columns = []string{"id", "commodity", "market", "state", "min_price", "max_price", "modal_price", "unit", "price_date"}

// Repo provides market price persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new market price repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// List returns prices matching f, newest price date first.
func (r *Repo) List(ctx context.Context, f domain.MarketPriceFilter) ([]domain.MarketPrice, error) {
	q := postgres.Builder().Select(columns...).From(table)
	if f.Commodity != nil {
		q = q.Where(squirrel.ILike{"commodity": *f.Commodity})
	}
	if f.State != nil {
		q = q.Where(squirrel.ILike{"state": *f.State})
	}
	q = q.OrderBy("price_date DESC", "commodity", "market")

	rows, err := postgres.Query(ctx, postgres.QuerierFromCtx(ctx, r.pool), postgres.Paginate(q, f.Limit, f.Offset))
	if err != nil {
		return nil, postgres.MapError(err, "market_prices", nil)
	}

	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.MarketPrice, error) {
		var p domain.MarketPrice
		err := row.Scan(&p.ID, &p.Commodity, &p.Market, &p.State, &p.MinPrice, &p.MaxPrice, &p.ModalPrice, &p.Unit, &p.PriceDate)
		return p, err
	})
	if err != nil {
		return nil, postgres.MapError(err, "market_prices", nil)
	}
	return out, nil
}

// Commodities returns the distinct commodity names in alphabetical order.
func (r *Repo) Commodities(ctx context.Context) ([]string, error) {
	q := postgres.Builder().Select("DISTINCT commodity").From(table).OrderBy("commodity")

	rows, err := postgres.Query(ctx, postgres.QuerierFromCtx(ctx, r.pool), q)
	if err != nil {
		return nil, postgres.MapError(err, "market_prices", nil)
	}
	out, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, postgres.MapError(err, "market_prices", nil)
	}
	return out, nil
}

// Upsert inserts prices in one batch, replacing rows with the same
// (commodity, market, price_date). Returns the number of rows written.
func (r *Repo) Upsert(ctx context.Context, prices []domain.MarketPrice) (int, error) {
	if len(prices) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, p := range prices {
		sql, args, err := postgres.Builder().
			Insert(table).
			Columns(columns...).
			Values(p.ID, p.Commodity, p.Market, p.State, p.MinPrice, p.MaxPrice, p.ModalPrice, p.Unit, p.PriceDate).
			Suffix(`ON CONFLICT (commodity, market, price_date) DO UPDATE SET
				state = EXCLUDED.state,
				min_price = EXCLUDED.min_price,
				max_price = EXCLUDED.max_price,
				modal_price = EXCLUDED.modal_price,
				unit = EXCLUDED.unit`).
			ToSql()
		if err != nil {
			return 0, fmt.Errorf("build upsert: %w", err)
		}
		batch.Queue(sql, args...)
	}

	results := postgres.QuerierFromCtx(ctx, r.pool).SendBatch(ctx, batch)
	defer results.Close()

	var written int
	for range batch.Len() {
		tag, err := results.Exec()
		if err != nil {
			return written, postgres.MapError(err, "market_price", nil)
		}
		written += int(tag.RowsAffected())
	}
	return written, nil
}
