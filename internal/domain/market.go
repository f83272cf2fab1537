package domain

import (
	"time"

	"github.com/google/uuid"
)

// MarketPrice is a daily mandi price for one commodity in one market.
type MarketPrice struct {
	ID         uuid.UUID
	Commodity  string
	Market     string
	State      string
	MinPrice   float64
	MaxPrice   float64
	ModalPrice float64
	Unit       string
	PriceDate  time.Time
}

// MarketPriceFilter narrows market price listings.
type MarketPriceFilter struct {
	Commodity *string
	State     *string
	Limit     int
	Offset    int
}
