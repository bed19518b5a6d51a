// Package model defines the canonical data types produced by the Deribit
// historical-data engine.
//
// Conventions:
//   - Timestamps: time.Time in UTC, converted from Deribit's millisecond epoch
//   - Prices and amounts: decimal.Decimal, copied verbatim from the wire
//   - Trade IDs: int64, coerced from Deribit's native identifiers
package model
