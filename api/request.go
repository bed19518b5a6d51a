package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
)

// ErrRetriesExhausted reports that a request gave up after spending its
// RetryPolicy budget on transient server errors. Callers treat it as a soft
// abandon, not a fatal failure.
var ErrRetriesExhausted = errors.New("retry budget exhausted")

// defaultRetryAfter is used when a 429 arrives without a usable Retry-After
// header.
const defaultRetryAfter = time.Second

// RetryPolicy governs how a single logical request handles transient server
// errors: up to MaxRetries additional attempts, sleeping Wait between them.
// MaxRetries of zero means no retry. 429 responses are not bounded by the
// policy; they always wait out the server's Retry-After hint and repeat.
type RetryPolicy struct {
	MaxRetries int
	Wait       time.Duration
}

// DefaultRetryPolicy returns sensible defaults for backfills.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries: 3,
		Wait:       10 * time.Second,
	}
}

// APIError represents a fatal (non-retryable) error from the Deribit API.
type APIError struct {
	StatusCode int
	URL        string
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("deribit api error %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// getJSON performs one logical GET, retrying internally per policy, and
// decodes the response body into result. Requests must be safe to repeat.
//
// Outcome classification, in order:
//   - 429: sleep the server's Retry-After and repeat, regardless of budget
//   - 500: warn with URL and body, sleep policy.Wait and repeat; once the
//     budget is spent, give up with ErrRetriesExhausted
//   - other non-200: fatal *APIError, handed to the error handler hook
//   - 200: pause for the courtesy delay, then decode
//
// Every wait blocks until it elapses or ctx is done.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, policy RetryPolicy, result any) error {
	fullURL := c.baseURL + "/" + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	attempts := 0
	for {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if attempts >= policy.MaxRetries {
				return fmt.Errorf("do request: %w", err)
			}
			attempts++
			c.logger.Warn("request failed, retrying",
				"url", fullURL,
				"attempt", attempts,
				"err", err,
			)
			if err := sleepCtx(ctx, policy.Wait); err != nil {
				return err
			}
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return fmt.Errorf("read response: %w", err)
		}

		switch {
		case resp.StatusCode == http.StatusTooManyRequests:
			wait := parseRetryAfter(resp.Header.Get("Retry-After"))
			c.logger.Warn("rate limited",
				"url", fullURL,
				"retry_after", wait,
			)
			if err := sleepCtx(ctx, wait); err != nil {
				return err
			}
			continue

		case resp.StatusCode == http.StatusInternalServerError:
			c.logger.Warn("server error",
				"url", fullURL,
				"body", string(body),
			)
			if attempts >= policy.MaxRetries {
				return ErrRetriesExhausted
			}
			attempts++
			if err := sleepCtx(ctx, policy.Wait); err != nil {
				return err
			}
			continue

		case resp.StatusCode != http.StatusOK:
			apiErr := &APIError{
				StatusCode: resp.StatusCode,
				URL:        fullURL,
				Body:       body,
			}
			if c.errHandler != nil {
				c.errHandler(apiErr)
			}
			return apiErr
		}

		// Courtesy pause so back-to-back pagination does not hammer the
		// exchange. Applies after every success, independent of the policy.
		if err := sleepCtx(ctx, c.rateLimitDelay); err != nil {
			return err
		}

		if err := sonic.Unmarshal(body, result); err != nil {
			return fmt.Errorf("unmarshal response: %w", err)
		}
		return nil
	}
}

// parseRetryAfter reads a Retry-After header as delay seconds or an HTTP
// date, falling back to defaultRetryAfter.
func parseRetryAfter(header string) time.Duration {
	if header == "" {
		return defaultRetryAfter
	}

	if seconds, err := strconv.Atoi(header); err == nil {
		if seconds < 0 {
			return defaultRetryAfter
		}
		return time.Duration(seconds) * time.Second
	}

	if t, err := http.ParseTime(header); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
		return 0
	}

	return defaultRetryAfter
}

// sleepCtx blocks for d or until ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
