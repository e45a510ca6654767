// Package scrape extracts posted 30-year-fixed rates from public mortgage
// rate pages with ordered regexp patterns. Pages change wording without
// notice; a pattern miss is an absent value, never an error. Only a
// failed page fetch surfaces as an error.
package scrape

import (
	"context"
	"net/http"
	"regexp"
	"strconv"

	"github.com/rustyeddy/ratewatch/internal/web"
)

// Default page URLs for the Oregon 30-year-fixed rates.
const (
	DefaultZillowURL   = "https://www.zillow.com/homeloans/mortgage-rates/oregon/"
	DefaultBankrateURL = "https://www.bankrate.com/mortgages/mortgage-rates/oregon/"
)

var (
	zillowRatePatterns = []*regexp.Regexp{
		// e.g. "current 30-year fixed mortgage rates in Oregon are 5.99%"
		regexp.MustCompile(`(?i)30-year fixed mortgage rates in oregon are\s*([0-9.]+)\s*%`),
		regexp.MustCompile(`(?i)30-Year Fixed.*?\bRate\s*([0-9.]+)\s*%`), // fallback
	}
	zillowAPRPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)30-Year Fixed.*?\bAPR\s*([0-9.]+)\s*%`),
	}
	bankrateRatePatterns = []*regexp.Regexp{
		// e.g. "current interest rates in Oregon are 6.17 percent for a 30-year fixed mortgage"
		regexp.MustCompile(`(?i)current interest rates in oregon are\s*([0-9.]+)\s*percent\s*for a\s*30-year fixed`),
		regexp.MustCompile(`(?i)\b30-Year Fixed Rate\b.*?\b([0-9.]+)\s*%`), // fallback
	}
)

// FirstFloat applies the patterns in order and returns the first capture
// group that parses as a float. First match wins.
func FirstFloat(patterns []*regexp.Regexp, text string) (float64, bool) {
	for _, pat := range patterns {
		m := pat.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		return v, true
	}
	return 0, false
}

// ZillowRates is the pair of values scraped from the Zillow page. Nil
// means the page no longer matched the pattern.
type ZillowRates struct {
	Rate *float64
	APR  *float64
}

type Client struct {
	zillowURL   string
	bankrateURL string
	httpClient  *http.Client
}

func NewClient(zillowURL, bankrateURL string, httpClient *http.Client) *Client {
	if zillowURL == "" {
		zillowURL = DefaultZillowURL
	}
	if bankrateURL == "" {
		bankrateURL = DefaultBankrateURL
	}
	if httpClient == nil {
		httpClient = web.NewClient(0)
	}
	return &Client{zillowURL: zillowURL, bankrateURL: bankrateURL, httpClient: httpClient}
}

// Zillow30Y scrapes the Oregon 30-year-fixed rate and APR from Zillow.
func (c *Client) Zillow30Y(ctx context.Context) (ZillowRates, error) {
	body, err := web.Get(ctx, c.httpClient, c.zillowURL)
	if err != nil {
		return ZillowRates{}, err
	}

	var out ZillowRates
	if v, ok := FirstFloat(zillowRatePatterns, string(body)); ok {
		out.Rate = &v
	}
	if v, ok := FirstFloat(zillowAPRPatterns, string(body)); ok {
		out.APR = &v
	}
	return out, nil
}

// Bankrate30Y scrapes the Oregon 30-year-fixed rate from Bankrate.
func (c *Client) Bankrate30Y(ctx context.Context) (*float64, error) {
	body, err := web.Get(ctx, c.httpClient, c.bankrateURL)
	if err != nil {
		return nil, err
	}

	if v, ok := FirstFloat(bankrateRatePatterns, string(body)); ok {
		return &v, nil
	}
	return nil, nil
}
