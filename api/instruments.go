package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// GetInstruments fetches the instrument listing for a currency.
func (c *Client) GetInstruments(ctx context.Context, opts GetInstrumentsOptions, policy RetryPolicy) ([]APIInstrument, error) {
	query := url.Values{}
	query.Set("currency", opts.Currency)
	if opts.Kind != "" {
		query.Set("kind", opts.Kind)
	}
	if opts.Expired {
		query.Set("expired", strconv.FormatBool(opts.Expired))
	}

	var resp InstrumentsResponse
	if err := c.getJSON(ctx, "get_instruments", query, policy, &resp); err != nil {
		return nil, fmt.Errorf("get instruments %s: %w", opts.Currency, err)
	}

	return resp.Result, nil
}

// NewSymbolMap builds a symbol map from an instrument listing, admitting
// only active instruments under their exchange names. Callers with their
// own canonical naming scheme can build a StaticSymbolMap directly.
func NewSymbolMap(instruments []APIInstrument) StaticSymbolMap {
	m := make(StaticSymbolMap, len(instruments))
	for _, inst := range instruments {
		if !inst.IsActive {
			continue
		}
		m[inst.InstrumentName] = inst.InstrumentName
	}
	return m
}
