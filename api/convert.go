package api

import (
	"fmt"
	"strconv"

	"github.com/hfranz/deribit-data/model"
)

// normalizeTrade converts an APITrade to model.Trade.
//
// The direction mapping is asymmetric on purpose: exactly "buy" maps to
// Buy, every other value maps to Sell.
func (c *Client) normalizeTrade(t APITrade) (model.Trade, error) {
	id, err := strconv.ParseInt(t.TradeID, 10, 64)
	if err != nil {
		return model.Trade{}, fmt.Errorf("parse trade id %q: %w", t.TradeID, err)
	}

	side := model.Sell
	if t.Direction == "buy" {
		side = model.Buy
	}

	return model.Trade{
		Timestamp: c.normalizeTS(t.Timestamp),
		Symbol:    t.InstrumentName,
		ID:        id,
		Feed:      Feed,
		Side:      side,
		Amount:    t.Amount,
		Price:     t.Price,
	}, nil
}
