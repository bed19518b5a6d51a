package api

import (
	"log/slog"
	"net/http"
	"os"
	"testing"
	"time"
)

// TestNewClient tests client construction with various options.
func TestNewClient(t *testing.T) {
	t.Run("default values", func(t *testing.T) {
		c := NewClient()

		if c.baseURL != DefaultBaseURL {
			t.Errorf("baseURL = %q, want %q", c.baseURL, DefaultBaseURL)
		}
		if c.httpClient.Timeout != 30*time.Second {
			t.Errorf("Timeout = %v, want %v", c.httpClient.Timeout, 30*time.Second)
		}
		if c.rateLimitDelay != 200*time.Millisecond {
			t.Errorf("rateLimitDelay = %v, want %v", c.rateLimitDelay, 200*time.Millisecond)
		}
		if c.pageSize != 1000 {
			t.Errorf("pageSize = %d, want 1000", c.pageSize)
		}
		if c.bookDepth != 10000 {
			t.Errorf("bookDepth = %d, want 10000", c.bookDepth)
		}
		if c.logger == nil {
			t.Error("logger should not be nil")
		}
		if c.symbols == nil {
			t.Error("symbols should not be nil")
		}
		if c.normalizeTS == nil {
			t.Error("normalizeTS should not be nil")
		}
	})

	t.Run("default symbol mapper is identity", func(t *testing.T) {
		c := NewClient()
		instrument, err := c.symbols.ToExchange("BTC-PERPETUAL")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if instrument != "BTC-PERPETUAL" {
			t.Errorf("instrument = %q, want %q", instrument, "BTC-PERPETUAL")
		}
	})

	t.Run("default timestamp func converts ms to UTC", func(t *testing.T) {
		c := NewClient()
		got := c.normalizeTS(1609459200123)
		want := time.Date(2021, 1, 1, 0, 0, 0, 123_000_000, time.UTC)
		if !got.Equal(want) {
			t.Errorf("normalizeTS = %v, want %v", got, want)
		}
		if got.Location() != time.UTC {
			t.Errorf("location = %v, want UTC", got.Location())
		}
	})

	t.Run("with base URL option", func(t *testing.T) {
		c := NewClient(WithBaseURL("https://test.deribit.com/api/v2/public"))
		if c.baseURL != "https://test.deribit.com/api/v2/public" {
			t.Errorf("baseURL = %q, want test URL", c.baseURL)
		}
	})

	t.Run("with timeout option", func(t *testing.T) {
		c := NewClient(WithTimeout(5 * time.Second))
		if c.httpClient.Timeout != 5*time.Second {
			t.Errorf("Timeout = %v, want %v", c.httpClient.Timeout, 5*time.Second)
		}
	})

	t.Run("with custom HTTP client", func(t *testing.T) {
		customClient := &http.Client{Timeout: 10 * time.Second}
		c := NewClient(WithHTTPClient(customClient))
		if c.httpClient != customClient {
			t.Error("custom HTTP client not set")
		}
	})

	t.Run("with logger option", func(t *testing.T) {
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		c := NewClient(WithLogger(logger))
		if c.logger != logger {
			t.Error("logger not set correctly")
		}
	})

	t.Run("with symbol mapper option", func(t *testing.T) {
		c := NewClient(WithSymbolMapper(StaticSymbolMap{"BTC-USD-PERP": "BTC-PERPETUAL"}))
		instrument, err := c.symbols.ToExchange("BTC-USD-PERP")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if instrument != "BTC-PERPETUAL" {
			t.Errorf("instrument = %q, want %q", instrument, "BTC-PERPETUAL")
		}
	})

	t.Run("with multiple options", func(t *testing.T) {
		c := NewClient(
			WithRateLimitDelay(time.Millisecond),
			WithPageSize(50),
			WithBookDepth(25),
		)
		if c.rateLimitDelay != time.Millisecond {
			t.Errorf("rateLimitDelay = %v, want %v", c.rateLimitDelay, time.Millisecond)
		}
		if c.pageSize != 50 {
			t.Errorf("pageSize = %d, want 50", c.pageSize)
		}
		if c.bookDepth != 25 {
			t.Errorf("bookDepth = %d, want 25", c.bookDepth)
		}
	})
}

// TestStaticSymbolMap tests the fixed symbol mapping.
func TestStaticSymbolMap(t *testing.T) {
	m := StaticSymbolMap{
		"BTC-USD-PERP": "BTC-PERPETUAL",
		"ETH-USD-PERP": "ETH-PERPETUAL",
	}

	t.Run("known symbol", func(t *testing.T) {
		instrument, err := m.ToExchange("ETH-USD-PERP")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if instrument != "ETH-PERPETUAL" {
			t.Errorf("instrument = %q, want %q", instrument, "ETH-PERPETUAL")
		}
	})

	t.Run("unknown symbol", func(t *testing.T) {
		_, err := m.ToExchange("DOGE-USD-PERP")
		if err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}
