// Package web is the shared HTTP GET plumbing for all upstream adapters.
package web

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout is the fixed per-request timeout. There are no retries
// and no backoff anywhere; a slow upstream just fails the fetch.
const DefaultTimeout = 30 * time.Second

// A mildly browser-ish UA helps avoid some basic blocks on the scraped
// pages.
const userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X) AppleWebKit/537.36 (KHTML, like Gecko) Chrome Safari"

// NewClient returns an http.Client with the given timeout, falling back
// to DefaultTimeout when zero.
func NewClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// Get fetches url and returns the response body. Any non-2xx status is an
// error carrying a limited read of the body.
func Get(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/json;q=0.9,*/*;q=0.8")

	res, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(res.Body, 8<<10))
		return nil, fmt.Errorf("GET %s: http %d: %s", url, res.StatusCode, strings.TrimSpace(string(b)))
	}

	return io.ReadAll(res.Body)
}
