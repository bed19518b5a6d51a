package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// DefaultBaseURL is Deribit's public production API.
const DefaultBaseURL = "https://www.deribit.com/api/v2/public"

// Feed identifies the exchange on every normalized trade.
const Feed = "DERIBIT"

const (
	defaultTradePageSize  = 1000                   // Max trades per page
	defaultBookDepth      = 10000                  // Full-depth book request
	defaultRateLimitDelay = 200 * time.Millisecond // Pause after each 200
)

// SymbolMapper translates a canonical symbol to Deribit's instrument name.
type SymbolMapper interface {
	ToExchange(symbol string) (string, error)
}

// SymbolMapperFunc is a function adapter for SymbolMapper.
type SymbolMapperFunc func(string) (string, error)

func (f SymbolMapperFunc) ToExchange(symbol string) (string, error) {
	return f(symbol)
}

// StaticSymbolMap is a fixed canonical-to-instrument mapping.
type StaticSymbolMap map[string]string

func (m StaticSymbolMap) ToExchange(symbol string) (string, error) {
	instrument, ok := m[symbol]
	if !ok {
		return "", fmt.Errorf("unknown symbol %q", symbol)
	}
	return instrument, nil
}

// TimestampFunc converts Deribit's native millisecond epoch timestamp to the
// canonical instant representation.
type TimestampFunc func(ms int64) time.Time

// Client provides access to the Deribit public REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger

	symbols     SymbolMapper
	normalizeTS TimestampFunc
	errHandler  func(*APIError)

	rateLimitDelay time.Duration
	pageSize       int
	bookDepth      int
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// NewClient creates a new REST API client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger:         slog.Default(),
		symbols:        SymbolMapperFunc(func(s string) (string, error) { return s, nil }),
		normalizeTS:    func(ms int64) time.Time { return time.UnixMilli(ms).UTC() },
		rateLimitDelay: defaultRateLimitDelay,
		pageSize:       defaultTradePageSize,
		bookDepth:      defaultBookDepth,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithBaseURL overrides the API base URL.
func WithBaseURL(u string) ClientOption {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithSymbolMapper sets the canonical-to-instrument symbol translation.
func WithSymbolMapper(m SymbolMapper) ClientOption {
	return func(c *Client) {
		c.symbols = m
	}
}

// WithTimestampFunc sets the native-timestamp normalization.
func WithTimestampFunc(f TimestampFunc) ClientOption {
	return func(c *Client) {
		c.normalizeTS = f
	}
}

// WithErrorHandler sets a hook invoked with every fatal (non-retryable)
// API error before it is returned.
func WithErrorHandler(h func(*APIError)) ClientOption {
	return func(c *Client) {
		c.errHandler = h
	}
}

// WithRateLimitDelay sets the courtesy pause applied after every successful
// request.
func WithRateLimitDelay(d time.Duration) ClientOption {
	return func(c *Client) {
		c.rateLimitDelay = d
	}
}

// WithPageSize sets the trade page size requested per pagination query.
func WithPageSize(n int) ClientOption {
	return func(c *Client) {
		c.pageSize = n
	}
}

// WithBookDepth sets the number of levels requested per order-book fetch.
func WithBookDepth(n int) ClientOption {
	return func(c *Client) {
		c.bookDepth = n
	}
}
