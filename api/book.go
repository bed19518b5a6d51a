package api

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/hfranz/deribit-data/model"
)

// OrderBook fetches one full-depth snapshot of the instrument's book. The
// exchange returns the entire requested depth in a single call; there is no
// pagination.
//
// A run that exhausts its retry budget on server errors returns the
// snapshot assembled so far (empty) without an error — a deliberately
// softer failure mode than trade pagination. Other non-success statuses are
// fatal.
func (c *Client) OrderBook(ctx context.Context, symbol string, policy RetryPolicy) (*model.OrderBookSnapshot, error) {
	instrument, err := c.symbols.ToExchange(symbol)
	if err != nil {
		return nil, fmt.Errorf("translate symbol %q: %w", symbol, err)
	}

	book := model.NewOrderBookSnapshot(instrument)

	query := url.Values{}
	query.Set("instrument_name", instrument)
	query.Set("depth", strconv.Itoa(c.bookDepth))

	var resp OrderBookResponse
	if err := c.getJSON(ctx, "get_order_book", query, policy, &resp); err != nil {
		if errors.Is(err, ErrRetriesExhausted) {
			c.logger.Warn("abandoning order book fetch",
				"instrument", instrument,
				"err", err,
			)
			return book, nil
		}
		return nil, err
	}

	for _, level := range resp.Result.Bids {
		book.Bids.Set(level[0], level[1])
	}
	for _, level := range resp.Result.Asks {
		book.Asks.Set(level[0], level[1])
	}

	return book, nil
}
