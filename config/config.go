// Package config holds the runtime configuration for the rate tracker.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/ratewatch/finfam"
	"github.com/rustyeddy/ratewatch/fred"
	"github.com/rustyeddy/ratewatch/internal/web"
	"github.com/rustyeddy/ratewatch/scrape"
	"github.com/rustyeddy/ratewatch/yahoo"
)

// Config is the complete tracker configuration. Every field has a working
// default, so a config file only needs the overrides.
type Config struct {
	HTTP   HTTPConfig   `json:"http" yaml:"http"`
	FinFam FinFamConfig `json:"finfam" yaml:"finfam"`
	FRED   FREDConfig   `json:"fred" yaml:"fred"`
	Yahoo  YahooConfig  `json:"yahoo" yaml:"yahoo"`
	Scrape ScrapeConfig `json:"scrape" yaml:"scrape"`
	Store  StoreConfig  `json:"store" yaml:"store"`
	Chart  ChartConfig  `json:"chart" yaml:"chart"`
}

// HTTPConfig contains the shared fetch parameters.
type HTTPConfig struct {
	TimeoutSeconds int `json:"timeout_seconds" yaml:"timeout_seconds"`
}

// Timeout returns the per-request timeout as a duration.
func (h HTTPConfig) Timeout() time.Duration {
	return time.Duration(h.TimeoutSeconds) * time.Second
}

// FinFamConfig locates the daily rates feed.
type FinFamConfig struct {
	BaseURL      string `json:"base_url" yaml:"base_url"`
	LookbackDays int    `json:"lookback_days" yaml:"lookback_days"`
}

// FREDConfig names the statistics endpoint and the series the runners
// track.
type FREDConfig struct {
	Endpoint       string `json:"endpoint" yaml:"endpoint"`
	TreasurySeries string `json:"treasury_series" yaml:"treasury_series"`
	MortgageSeries string `json:"mortgage_series" yaml:"mortgage_series"`
}

// YahooConfig names the quotes endpoint and the tracked symbol.
type YahooConfig struct {
	Endpoint       string `json:"endpoint" yaml:"endpoint"`
	TreasurySymbol string `json:"treasury_symbol" yaml:"treasury_symbol"`
	BackfillRange  string `json:"backfill_range" yaml:"backfill_range"`
}

// ScrapeConfig holds the scraped page URLs.
type ScrapeConfig struct {
	ZillowURL   string `json:"zillow_url" yaml:"zillow_url"`
	BankrateURL string `json:"bankrate_url" yaml:"bankrate_url"`
}

// StoreConfig locates the CSV dataset.
type StoreConfig struct {
	Path string `json:"path" yaml:"path"`
}

// ChartConfig holds chart rendering defaults.
type ChartConfig struct {
	Output string `json:"output" yaml:"output"`
}

// Default returns the stock configuration matching the public upstreams.
func Default() *Config {
	return &Config{
		HTTP: HTTPConfig{
			TimeoutSeconds: int(web.DefaultTimeout / time.Second),
		},
		FinFam: FinFamConfig{
			BaseURL:      finfam.DefaultBaseURL,
			LookbackDays: finfam.DefaultLookbackDays,
		},
		FRED: FREDConfig{
			Endpoint:       fred.DefaultEndpoint,
			TreasurySeries: fred.SeriesDGS10,
			MortgageSeries: fred.SeriesMortgage30US,
		},
		Yahoo: YahooConfig{
			Endpoint:       yahoo.DefaultEndpoint,
			TreasurySymbol: yahoo.SymbolTNX,
			BackfillRange:  yahoo.DefaultBackfillRange,
		},
		Scrape: ScrapeConfig{
			ZillowURL:   scrape.DefaultZillowURL,
			BankrateURL: scrape.DefaultBankrateURL,
		},
		Store: StoreConfig{
			Path: "data/mortgage_daily.csv",
		},
		Chart: ChartConfig{
			Output: "data/daily_rates.png",
		},
	}
}

// LoadFromFile loads configuration from a file (YAML or JSON). Missing
// fields fall back to defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jerr := json.Unmarshal(data, cfg); jerr != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file, YAML for .yaml/.yml and JSON
// otherwise.
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks if the configuration is usable.
func (c *Config) Validate() error {
	if c.HTTP.TimeoutSeconds <= 0 {
		return fmt.Errorf("http.timeout_seconds must be positive")
	}
	if c.FinFam.BaseURL == "" {
		return fmt.Errorf("finfam.base_url is required")
	}
	if c.FinFam.LookbackDays <= 0 {
		return fmt.Errorf("finfam.lookback_days must be positive")
	}
	if c.FRED.Endpoint == "" {
		return fmt.Errorf("fred.endpoint is required")
	}
	if c.FRED.TreasurySeries == "" || c.FRED.MortgageSeries == "" {
		return fmt.Errorf("fred series ids are required")
	}
	if c.Yahoo.Endpoint == "" || c.Yahoo.TreasurySymbol == "" {
		return fmt.Errorf("yahoo endpoint and treasury_symbol are required")
	}
	if c.Yahoo.BackfillRange == "" {
		return fmt.Errorf("yahoo.backfill_range is required")
	}
	if c.Scrape.ZillowURL == "" || c.Scrape.BankrateURL == "" {
		return fmt.Errorf("scrape page urls are required")
	}
	if c.Store.Path == "" {
		return fmt.Errorf("store.path is required")
	}
	if c.Chart.Output == "" {
		return fmt.Errorf("chart.output is required")
	}
	return nil
}
