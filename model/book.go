package model

import (
	"github.com/shopspring/decimal"
	"github.com/tidwall/btree"
)

// PriceLevel is a single price level on one side of the book.
type PriceLevel struct {
	Price  decimal.Decimal
	Amount decimal.Decimal
}

// OrderBookSide is a mapping from price to amount, ordered ascending by
// price. Keys are unique; setting an existing price replaces its amount.
//
// Both sides are kept in raw ascending key order. Callers wanting a
// best-bid-first view iterate the bid side in reverse via Descend.
type OrderBookSide struct {
	levels *btree.BTreeG[PriceLevel]
}

// NewOrderBookSide returns an empty side.
func NewOrderBookSide() *OrderBookSide {
	return &OrderBookSide{
		levels: btree.NewBTreeG(func(a, b PriceLevel) bool {
			return a.Price.LessThan(b.Price)
		}),
	}
}

// Set inserts or replaces the amount at price.
func (s *OrderBookSide) Set(price, amount decimal.Decimal) {
	s.levels.Set(PriceLevel{Price: price, Amount: amount})
}

// Amount returns the amount at price, if present.
func (s *OrderBookSide) Amount(price decimal.Decimal) (decimal.Decimal, bool) {
	level, ok := s.levels.Get(PriceLevel{Price: price})
	if !ok {
		return decimal.Decimal{}, false
	}
	return level.Amount, true
}

// Len returns the number of distinct price levels.
func (s *OrderBookSide) Len() int {
	return s.levels.Len()
}

// Levels returns all levels in ascending price order.
func (s *OrderBookSide) Levels() []PriceLevel {
	out := make([]PriceLevel, 0, s.levels.Len())
	s.levels.Scan(func(l PriceLevel) bool {
		out = append(out, l)
		return true
	})
	return out
}

// Ascend calls fn for each level in ascending price order until fn returns
// false.
func (s *OrderBookSide) Ascend(fn func(PriceLevel) bool) {
	s.levels.Scan(fn)
}

// Descend calls fn for each level in descending price order until fn returns
// false.
func (s *OrderBookSide) Descend(fn func(PriceLevel) bool) {
	s.levels.Reverse(fn)
}

// Min returns the lowest-priced level, if any.
func (s *OrderBookSide) Min() (PriceLevel, bool) {
	return s.levels.Min()
}

// Max returns the highest-priced level, if any.
func (s *OrderBookSide) Max() (PriceLevel, bool) {
	return s.levels.Max()
}

// OrderBookSnapshot is a point-in-time full-depth view of one instrument's
// book.
type OrderBookSnapshot struct {
	Symbol string // Exchange instrument name
	Bids   *OrderBookSide
	Asks   *OrderBookSide
}

// NewOrderBookSnapshot returns an empty snapshot for symbol.
func NewOrderBookSnapshot(symbol string) *OrderBookSnapshot {
	return &OrderBookSnapshot{
		Symbol: symbol,
		Bids:   NewOrderBookSide(),
		Asks:   NewOrderBookSide(),
	}
}
