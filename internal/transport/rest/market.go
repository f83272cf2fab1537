package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/krishisathi/backend/internal/domain"
	"github.com/krishisathi/backend/internal/service/market"
)

type marketService interface {
	List(ctx context.Context, input market.ListInput) ([]domain.MarketPrice, error)
	Commodities(ctx context.Context) ([]string, error)
}

// MarketHandler serves mandi prices.
type MarketHandler struct {
	svc marketService
	log *slog.Logger
}

// NewMarketHandler creates a MarketHandler.
func NewMarketHandler(svc marketService, logger *slog.Logger) *MarketHandler {
	return &MarketHandler{svc: svc, log: logger.With("handler", "market")}
}

// Prices handles GET /market/prices?commodity=&state=&limit=&offset=.
func (h *MarketHandler) Prices(w http.ResponseWriter, r *http.Request) {
	p, err := parsePage(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	prices, err := h.svc.List(r.Context(), market.ListInput{
		Commodity: optionalQuery(r, "commodity"),
		State:     optionalQuery(r, "state"),
		Limit:     p.Limit,
		Offset:    p.Offset,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(prices, toPriceResponse))
}

// Commodities handles GET /market/commodities.
func (h *MarketHandler) Commodities(w http.ResponseWriter, r *http.Request) {
	names, err := h.svc.Commodities(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if names == nil {
		names = []string{}
	}
	writeJSON(w, http.StatusOK, names)
}
