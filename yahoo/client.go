// Package yahoo pulls daily closes from the Yahoo Finance chart endpoint.
package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rustyeddy/ratewatch/internal/web"
	"github.com/rustyeddy/ratewatch/series"
)

const DefaultEndpoint = "https://query1.finance.yahoo.com/v8/finance/chart"

// SymbolTNX is the CBOE 10-year treasury yield index.
const SymbolTNX = "^TNX"

const latestRange = "10d"

// DefaultBackfillRange covers enough history for as-of alignment over
// typical backfill windows.
const DefaultBackfillRange = "2y"

type chartResponse struct {
	Chart struct {
		Result []chartResult `json:"result"`
	} `json:"chart"`
}

type chartResult struct {
	Timestamp  []int64 `json:"timestamp"`
	Indicators struct {
		Quote []struct {
			Close []*float64 `json:"close"`
		} `json:"quote"`
	} `json:"indicators"`
}

type Client struct {
	endpoint   string
	httpClient *http.Client
}

func NewClient(endpoint string, httpClient *http.Client) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if httpClient == nil {
		httpClient = web.NewClient(0)
	}
	return &Client{endpoint: endpoint, httpClient: httpClient}
}

// Series fetches daily closes for symbol over rng (e.g. "10d", "2y").
// Null closes are dropped; timestamps collapse to UTC calendar dates.
func (c *Client) Series(ctx context.Context, symbol, rng string) (series.Series, error) {
	u := fmt.Sprintf("%s/%s?range=%s&interval=1d", c.endpoint, url.PathEscape(symbol), rng)

	body, err := web.Get(ctx, c.httpClient, u)
	if err != nil {
		return nil, err
	}

	var resp chartResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode chart for %s: %w", symbol, err)
	}
	if len(resp.Chart.Result) == 0 {
		return nil, nil
	}

	r0 := resp.Chart.Result[0]
	var closes []*float64
	if len(r0.Indicators.Quote) > 0 {
		closes = r0.Indicators.Quote[0].Close
	}

	var out series.Series
	for i, ts := range r0.Timestamp {
		if i >= len(closes) || closes[i] == nil {
			continue
		}
		out = append(out, series.Observation{
			Date:  series.Day(time.Unix(ts, 0)),
			Value: *closes[i],
		})
	}
	return out, nil
}

// Latest returns the most recent non-null close for symbol, scanning a
// short trailing window. ok is false when the window has no usable close.
func (c *Client) Latest(ctx context.Context, symbol string) (series.Observation, bool, error) {
	s, err := c.Series(ctx, symbol, latestRange)
	if err != nil {
		return series.Observation{}, false, err
	}
	obs, ok := series.Last(s)
	return obs, ok, nil
}
