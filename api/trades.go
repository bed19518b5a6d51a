package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/hfranz/deribit-data/model"
)

// TradesIterator walks a time window forward, yielding one page of
// normalized trades per Next call. A run owns its cursor exclusively; it is
// not safe for concurrent use and cannot be resumed once abandoned.
//
// The next bounded query's lower bound is the last returned timestamp
// (inclusive), so the boundary trade is returned again on the following
// page. That duplicate is a known, accepted artifact; this component does
// not deduplicate.
type TradesIterator struct {
	client     *Client
	instrument string
	policy     RetryPolicy
	logger     *slog.Logger

	start   int64 // cursor: lower bound of the next query (ms)
	end     int64
	bounded bool

	page []model.Trade
	err  error
	done bool
}

// Trades starts a pagination run over the instrument's trades in window.
// The canonical symbol is translated to Deribit's instrument name before
// the first request.
//
// An unbounded window (zero Start) fetches the most recent trades and
// terminates after one page.
func (c *Client) Trades(symbol string, window TimeWindow, policy RetryPolicy) (*TradesIterator, error) {
	instrument, err := c.symbols.ToExchange(symbol)
	if err != nil {
		return nil, fmt.Errorf("translate symbol %q: %w", symbol, err)
	}

	start, end, bounded := window.epochBounds(time.Now())

	return &TradesIterator{
		client:     c,
		instrument: instrument,
		policy:     policy,
		logger: c.logger.With(
			"run_id", uuid.NewString(),
			"instrument", instrument,
		),
		start:   start,
		end:     end,
		bounded: bounded,
	}, nil
}

// Next fetches the next page. It returns false when the window is
// exhausted, the run was abandoned after spending its retry budget, or a
// fatal error occurred; check Err afterwards.
func (it *TradesIterator) Next(ctx context.Context) bool {
	if it.done || it.err != nil {
		return false
	}

	query := url.Values{}
	query.Set("instrument_name", it.instrument)
	query.Set("include_old", "true")
	query.Set("count", strconv.Itoa(it.client.pageSize))

	path := "get_last_trades_by_instrument"
	if it.bounded {
		path = "get_last_trades_by_instrument_and_time"
		query.Set("start_timestamp", strconv.FormatInt(it.start, 10))
		query.Set("end_timestamp", strconv.FormatInt(it.end, 10))
	}

	var resp TradesResponse
	if err := it.client.getJSON(ctx, path, query, it.policy, &resp); err != nil {
		it.done = true
		if errors.Is(err, ErrRetriesExhausted) {
			it.logger.Warn("abandoning pagination",
				"start", it.start,
				"end", it.end,
				"err", err,
			)
			return false
		}
		it.err = err
		return false
	}

	raw := resp.Result.Trades
	if len(raw) == 0 {
		it.logger.Warn("no trades for window",
			"start", it.start,
			"end", it.end,
		)
	} else {
		last := raw[len(raw)-1].Timestamp
		if last == it.start {
			// The whole page shares one timestamp: more trades exist at
			// this instant than fit in a page, and re-querying from it
			// would never advance. Skip one millisecond; trades beyond
			// the page at this instant are lost.
			it.logger.Warn("trades at one timestamp exceed the page size, some will not be retrieved",
				"timestamp", it.start,
			)
			it.start++
		} else {
			it.start = last
		}
	}

	page := make([]model.Trade, 0, len(raw))
	for _, t := range raw {
		trade, err := it.client.normalizeTrade(t)
		if err != nil {
			it.logger.Warn("skipping malformed trade",
				"trade_id", t.TradeID,
				"err", err,
			)
			continue
		}
		page = append(page, trade)
	}
	it.page = page

	if len(raw) < it.client.pageSize || !it.bounded {
		it.done = true
	}
	return true
}

// Page returns the page fetched by the last successful Next call, ordered
// as the exchange returned it.
func (it *TradesIterator) Page() []model.Trade {
	return it.page
}

// Err returns the fatal error that stopped the run, if any. A run that was
// abandoned on exhausted retries reports no error.
func (it *TradesIterator) Err() error {
	return it.err
}

// AllTrades fetches every page in window and returns the concatenated
// trades.
func (c *Client) AllTrades(ctx context.Context, symbol string, window TimeWindow, policy RetryPolicy) ([]model.Trade, error) {
	it, err := c.Trades(symbol, window, policy)
	if err != nil {
		return nil, err
	}

	var all []model.Trade
	for it.Next(ctx) {
		all = append(all, it.Page()...)
	}
	return all, it.Err()
}
