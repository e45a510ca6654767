// Package finfam fetches the FinFam credit-union mortgage rate feed.
//
// FinFam publishes one JSON file per day, named rates_YYYY-MM-DD.json.
// The latest file may lag the calendar by a day or more, so the daily
// lookup steps backward from today until one resolves.
package finfam

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rustyeddy/ratewatch/internal/web"
	"github.com/rustyeddy/ratewatch/series"
)

const (
	// DefaultBaseURL is the public FinFam asset host.
	DefaultBaseURL = "https://assets.finfam.app/cumort"

	// DefaultLookbackDays bounds how far back Latest searches for a
	// published file.
	DefaultLookbackDays = 10
)

// Document is the shape of one daily rates file.
type Document struct {
	Metadata     Metadata                  `json:"metadata"`
	ProductTypes map[string]ProductSummary `json:"product_types"`
	Institutions []Institution             `json:"institutions"`
}

type Metadata struct {
	ObservationDate string `json:"observation_date"`
	LastUpdated     string `json:"last_updated"`
}

type ProductSummary struct {
	MedianAPR *float64 `json:"median_apr"`
	MinAPR    *float64 `json:"min_apr"`
	MaxAPR    *float64 `json:"max_apr"`
	Count     *int     `json:"count"`
}

type Institution struct {
	Name  string `json:"name"`
	Rates []Rate `json:"rates"`
}

type Rate struct {
	NormalizedProductType string   `json:"normalized_product_type"`
	OutlierReason         string   `json:"outlier_reason"`
	APR                   *float64 `json:"apr"`
}

// Client fetches daily rate documents.
type Client struct {
	baseURL      string
	lookbackDays int
	httpClient   *http.Client
}

func NewClient(baseURL string, lookbackDays int, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if lookbackDays <= 0 {
		lookbackDays = DefaultLookbackDays
	}
	if httpClient == nil {
		httpClient = web.NewClient(0)
	}
	return &Client{baseURL: baseURL, lookbackDays: lookbackDays, httpClient: httpClient}
}

// URL returns the dated resource URL for date.
func (c *Client) URL(date time.Time) string {
	return fmt.Sprintf("%s/rates_%s.json", c.baseURL, date.Format(series.DateLayout))
}

// ForDate fetches the rates file for exactly one date. Used by backfill,
// where a missing historical file is a skippable condition, not a reason
// to scan backwards.
func (c *Client) ForDate(ctx context.Context, date time.Time) (string, *Document, error) {
	url := c.URL(date)
	body, err := web.Get(ctx, c.httpClient, url)
	if err != nil {
		return url, nil, err
	}

	var doc Document
	if err := json.Unmarshal(body, &doc); err != nil {
		return url, nil, fmt.Errorf("decode %s: %w", url, err)
	}
	return url, &doc, nil
}

// Latest fetches the most recent published rates file, trying today (UTC)
// and stepping back one day at a time up to the lookback bound. If no
// file resolves the returned error wraps the last fetch failure.
func (c *Client) Latest(ctx context.Context) (string, *Document, error) {
	today := series.Today()

	var lastErr error
	for i := 0; i <= c.lookbackDays; i++ {
		url, doc, err := c.ForDate(ctx, today.AddDate(0, 0, -i))
		if err == nil {
			return url, doc, nil
		}
		lastErr = err
	}

	return "", nil, fmt.Errorf("no rates file found in last %d days: %w", c.lookbackDays, lastErr)
}
