// Package market serves mandi prices and imports price sheets.
package market

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/krishisathi/backend/internal/domain"
)

type priceRepo interface {
	List(ctx context.Context, f domain.MarketPriceFilter) ([]domain.MarketPrice, error)
	Commodities(ctx context.Context) ([]string, error)
	Upsert(ctx context.Context, prices []domain.MarketPrice) (int, error)
}

// Service provides market price lookups.
type Service struct {
	log    *slog.Logger
	prices priceRepo
}

// NewService creates a new market service.
func NewService(logger *slog.Logger, prices priceRepo) *Service {
	return &Service{
		log:    logger.With("service", "market"),
		prices: prices,
	}
}

// ListInput filters price listings.
type ListInput struct {
	Commodity *string
	State     *string
	Limit     int
	Offset    int
}

// List returns prices, newest price date first.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.MarketPrice, error) {
	if input.Limit < 0 || input.Offset < 0 {
		return nil, domain.NewValidationError("limit", "must not be negative")
	}

	prices, err := s.prices.List(ctx, domain.MarketPriceFilter{
		Commodity: domain.TrimOrNil(input.Commodity),
		State:     domain.TrimOrNil(input.State),
		Limit:     input.Limit,
		Offset:    input.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("market.List: %w", err)
	}
	return prices, nil
}

// Commodities returns the distinct commodity names.
func (s *Service) Commodities(ctx context.Context) ([]string, error) {
	names, err := s.prices.Commodities(ctx)
	if err != nil {
		return nil, fmt.Errorf("market.Commodities: %w", err)
	}
	return names, nil
}

// Import validates rows and upserts them. Every invalid row is reported with
// its 1-based position; nothing is written unless all rows pass.
func (s *Service) Import(ctx context.Context, rows []domain.MarketPrice) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	var errs []domain.FieldError
	clean := make([]domain.MarketPrice, 0, len(rows))
	for i, row := range rows {
		row = normalizePrice(row)
		if msg := checkPrice(row); msg != "" {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("row %d", i+1), Message: msg})
			continue
		}
		clean = append(clean, row)
	}
	if len(errs) > 0 {
		return 0, &domain.ValidationError{Errors: errs}
	}

	n, err := s.prices.Upsert(ctx, clean)
	if err != nil {
		return 0, fmt.Errorf("market.Import: %w", err)
	}

	s.log.InfoContext(ctx, "market prices imported", slog.Int("rows", n))
	return n, nil
}

func normalizePrice(p domain.MarketPrice) domain.MarketPrice {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	p.Commodity = domain.NormalizeName(p.Commodity)
	p.Market = domain.NormalizeName(p.Market)
	p.State = domain.NormalizeName(p.State)
	p.Unit = strings.TrimSpace(p.Unit)
	if p.Unit == "" {
		p.Unit = "quintal"
	}
	p.PriceDate = time.Date(p.PriceDate.Year(), p.PriceDate.Month(), p.PriceDate.Day(), 0, 0, 0, 0, time.UTC)
	return p
}

func checkPrice(p domain.MarketPrice) string {
	switch {
	case p.Commodity == "":
		return "commodity required"
	case p.Market == "":
		return "market required"
	case p.PriceDate.IsZero() || p.PriceDate.Year() < 2000:
		return "price date required"
	case p.MinPrice < 0:
		return "prices must not be negative"
	case p.MinPrice > p.ModalPrice || p.ModalPrice > p.MaxPrice:
		return "expected min <= modal <= max"
	}
	return ""
}
