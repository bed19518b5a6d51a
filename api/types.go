package api

import "github.com/shopspring/decimal"

// TradesResponse from GET /get_last_trades_by_instrument[_and_time]
type TradesResponse struct {
	Result TradesResult `json:"result"`
}

// TradesResult is the payload of a trade-history page.
type TradesResult struct {
	Trades  []APITrade `json:"trades"`
	HasMore bool       `json:"has_more"`
}

// APITrade represents a trade record from the Deribit API.
type APITrade struct {
	Timestamp      int64           `json:"timestamp"` // ms since epoch
	InstrumentName string          `json:"instrument_name"`
	TradeID        string          `json:"trade_id"`
	Direction      string          `json:"direction"` // "buy" or "sell"
	Amount         decimal.Decimal `json:"amount"`
	Price          decimal.Decimal `json:"price"`
	IndexPrice     decimal.Decimal `json:"index_price"`
	TickDirection  int             `json:"tick_direction"`
}

// OrderBookResponse from GET /get_order_book
type OrderBookResponse struct {
	Result OrderBookResult `json:"result"`
}

// OrderBookResult is the full-depth book payload. Levels are
// [price, amount] pairs.
type OrderBookResult struct {
	InstrumentName string               `json:"instrument_name"`
	Timestamp      int64                `json:"timestamp"`
	Bids           [][2]decimal.Decimal `json:"bids"`
	Asks           [][2]decimal.Decimal `json:"asks"`
}

// InstrumentsResponse from GET /get_instruments
type InstrumentsResponse struct {
	Result []APIInstrument `json:"result"`
}

// APIInstrument represents an instrument listing from the Deribit API.
type APIInstrument struct {
	InstrumentName      string          `json:"instrument_name"`
	BaseCurrency        string          `json:"base_currency"`
	QuoteCurrency       string          `json:"quote_currency"`
	Kind                string          `json:"kind"` // "future", "option", "spot"
	IsActive            bool            `json:"is_active"`
	TickSize            decimal.Decimal `json:"tick_size"`
	MinTradeAmount      decimal.Decimal `json:"min_trade_amount"`
	ContractSize        decimal.Decimal `json:"contract_size"`
	CreationTimestamp   int64           `json:"creation_timestamp"`
	ExpirationTimestamp int64           `json:"expiration_timestamp"`
}

// GetInstrumentsOptions configures a GetInstruments request.
type GetInstrumentsOptions struct {
	Currency string // Required by the exchange: "BTC", "ETH", ...
	Kind     string // Optional filter: "future", "option", "spot"
	Expired  bool   // Include expired instruments
}
