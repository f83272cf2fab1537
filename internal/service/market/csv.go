package market

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/krishisathi/backend/internal/domain"
)

// CSV columns, by header name. unit is optional.
var csvColumns = []string{"commodity", "market", "state", "min_price", "max_price", "modal_price", "date"}

// ParseCSV reads price rows from a CSV file with a header line. Columns may
// appear in any order; dates are YYYY-MM-DD.
func ParseCSV(r io.Reader) ([]domain.MarketPrice, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("market.ParseCSV: read header: %w", err)
	}
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	var missing []domain.FieldError
	for _, c := range csvColumns {
		if _, ok := index[c]; !ok {
			missing = append(missing, domain.FieldError{Field: c, Message: "missing column"})
		}
	}
	if len(missing) > 0 {
		return nil, domain.NewValidationErrors(missing)
	}

	var (
		rows []domain.MarketPrice
		errs []domain.FieldError
		line = 1
	)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("market.ParseCSV: line %d: %w", line, err)
		}

		p, msg := parseRecord(rec, index)
		if msg != "" {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("line %d", line), Message: msg})
			continue
		}
		rows = append(rows, p)
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}
	return rows, nil
}

func parseRecord(rec []string, index map[string]int) (domain.MarketPrice, string) {
	get := func(col string) string {
		i, ok := index[col]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	p := domain.MarketPrice{
		Commodity: get("commodity"),
		Market:    get("market"),
		State:     get("state"),
		Unit:      get("unit"),
	}
	for _, f := range []struct {
		col string
		dst *float64
	}{{"min_price", &p.MinPrice}, {"max_price", &p.MaxPrice}, {"modal_price", &p.ModalPrice}} {
		v, err := strconv.ParseFloat(get(f.col), 64)
		if err != nil {
			return p, f.col + " is not a number"
		}
		*f.dst = v
	}

	d, err := time.Parse(time.DateOnly, get("date"))
	if err != nil {
		return p, "date must be YYYY-MM-DD"
	}
	p.PriceDate = d
	return p, ""
}
