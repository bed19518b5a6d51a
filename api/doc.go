// Package api provides a client for Deribit's public REST API, built for
// resilient historical retrieval: paginated trade backfills over a time
// window and full-depth order-book snapshots.
//
// Endpoints used (all read-only GETs under /api/v2/public):
//   - get_last_trades_by_instrument_and_time
//   - get_last_trades_by_instrument
//   - get_order_book
//   - get_instruments
//
// The exchange paginates by timestamp, rate-limits with Retry-After hints,
// and intermittently returns 500s; every request runs through one classified
// retry loop (see RetryPolicy) so callers only ever see fatal errors.
package api
