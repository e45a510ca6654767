// Package fred pulls observation series from the FRED fredgraph CSV
// endpoint. No API key is needed for that endpoint.
package fred

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/rustyeddy/ratewatch/internal/web"
	"github.com/rustyeddy/ratewatch/series"
)

// DefaultEndpoint serves two-column CSV (DATE,<SERIES>) per series id.
const DefaultEndpoint = "https://fred.stlouisfed.org/graph/fredgraph.csv"

// Well-known series ids used by the runners.
const (
	SeriesDGS10        = "DGS10"        // 10-year constant maturity, daily
	SeriesMortgage30US = "MORTGAGE30US" // Freddie Mac PMMS 30-year, weekly
)

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

// SeriesURL returns the fetch URL for a series id. The URL is also
// recorded in the store as the provenance column.
func (c *Client) SeriesURL(id string) string {
	return fmt.Sprintf("%s?id=%s", c.endpoint, id)
}

// Series fetches and parses the full history of one series. Missing
// observations ("." or empty) and unparsable lines are dropped, not
// interpolated.
func (c *Client) Series(ctx context.Context, id string) (series.Series, error) {
	body, err := web.Get(ctx, c.httpClient, c.SeriesURL(id))
	if err != nil {
		return nil, err
	}
	return parseCSV(string(body)), nil
}

// Latest returns the series' last valid observation. ok is false when the
// series has no valid points at all.
func (c *Client) Latest(ctx context.Context, id string) (series.Observation, bool, error) {
	s, err := c.Series(ctx, id)
	if err != nil {
		return series.Observation{}, false, err
	}
	obs, ok := series.Last(s)
	return obs, ok, nil
}

func parseCSV(text string) series.Series {
	lines := strings.Split(strings.TrimSpace(text), "\n")

	var out series.Series
	for _, line := range lines[1:] { // skip DATE,<SERIES> header
		parts := strings.Split(line, ",")
		if len(parts) < 2 {
			continue
		}
		ds, vs := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
		if vs == "." || vs == "" {
			continue
		}
		d, err := series.ParseDate(ds)
		if err != nil {
			continue
		}
		v, err := strconv.ParseFloat(vs, 64)
		if err != nil {
			continue
		}
		out = append(out, series.Observation{Date: d, Value: v})
	}
	return out
}
