package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Side is the taker direction of a trade.
type Side string

const (
	Buy  Side = "buy"
	Sell Side = "sell"
)

// Trade is a single executed trade in canonical form. Immutable once
// produced.
type Trade struct {
	Timestamp time.Time       // Exchange timestamp (UTC)
	Symbol    string          // Exchange instrument name (e.g. "BTC-PERPETUAL")
	ID        int64           // Exchange trade identifier
	Feed      string          // Originating feed ("DERIBIT")
	Side      Side            // Taker direction
	Amount    decimal.Decimal // Traded amount
	Price     decimal.Decimal // Trade price
}
