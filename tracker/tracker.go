// Package tracker composes the upstream adapters into daily and backfill
// runs over the CSV store.
package tracker

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/rustyeddy/ratewatch/config"
	"github.com/rustyeddy/ratewatch/finfam"
	"github.com/rustyeddy/ratewatch/fred"
	"github.com/rustyeddy/ratewatch/internal/logging"
	"github.com/rustyeddy/ratewatch/internal/web"
	"github.com/rustyeddy/ratewatch/scrape"
	"github.com/rustyeddy/ratewatch/series"
	"github.com/rustyeddy/ratewatch/store"
	"github.com/rustyeddy/ratewatch/yahoo"
)

// Tracker owns one client per upstream plus the store path. It is not
// safe to run two trackers against the same store at once; the store has
// no locking.
type Tracker struct {
	cfg *config.Config
	log *slog.Logger

	finfam *finfam.Client
	fred   *fred.Client
	yahoo  *yahoo.Client
	scrape *scrape.Client
}

func New(cfg *config.Config) *Tracker {
	client := web.NewClient(cfg.HTTP.Timeout())
	return &Tracker{
		cfg:    cfg,
		log:    logging.Component("tracker"),
		finfam: finfam.NewClient(cfg.FinFam.BaseURL, cfg.FinFam.LookbackDays, client),
		fred:   fred.NewClient(cfg.FRED.Endpoint, client),
		yahoo:  yahoo.NewClient(cfg.Yahoo.Endpoint, client),
		scrape: scrape.NewClient(cfg.Scrape.ZillowURL, cfg.Scrape.BankrateURL, client),
	}
}

// WithHTTPClient swaps the HTTP client on every adapter. Test hook.
func (t *Tracker) WithHTTPClient(client *http.Client) *Tracker {
	t.finfam = finfam.NewClient(t.cfg.FinFam.BaseURL, t.cfg.FinFam.LookbackDays, client)
	t.fred = fred.NewClient(t.cfg.FRED.Endpoint, client)
	t.yahoo = yahoo.NewClient(t.cfg.Yahoo.Endpoint, client)
	t.scrape = scrape.NewClient(t.cfg.Scrape.ZillowURL, t.cfg.Scrape.BankrateURL, client)
	return t
}

// RangeFromDays returns the inclusive date range covering the last N days
// through today (UTC). N is clamped to at least 1.
func RangeFromDays(days int) (start, end time.Time) {
	if days < 1 {
		days = 1
	}
	end = series.Today()
	return end.AddDate(0, 0, -(days - 1)), end
}

// Column names derived from series ids and symbols, matching the feed
// they came from.
func fredCol(id, suffix string) string {
	return fmt.Sprintf("fred_%s_%s", id, suffix)
}

func yahooCol(symbol, suffix string) string {
	return fmt.Sprintf("yahoo_%s_%s", symbol, suffix)
}

// setFinfam writes the primary-feed columns in their canonical order.
func setFinfam(row *store.Row, url string, s finfam.Summary) {
	row.Set("finfam_url", url)
	row.Set("finfam_observation_date", s.ObservationDate)
	row.Set("finfam_last_updated", s.LastUpdated)
	row.SetFloatPtr("finfam_30y_median_apr", s.MedianAPR)
	row.SetFloatPtr("finfam_30y_min_apr", s.MinAPR)
	row.SetFloatPtr("finfam_30y_max_apr", s.MaxAPR)
	row.SetIntPtr("finfam_30y_count", s.Count)
	row.SetFloatPtr("finfam_30y_best_apr_ex_outliers", s.BestAPR)
	row.Set("finfam_30y_best_apr_institution", s.BestInstitution)
}

// setObservation writes a (date, value) observation pair under the given
// column names, empty when the observation is missing.
func setObservation(row *store.Row, dateCol, valueCol string, obs series.Observation, ok bool) {
	if !ok {
		row.Set(dateCol, "")
		row.Set(valueCol, "")
		return
	}
	row.Set(dateCol, obs.Date.Format(series.DateLayout))
	row.SetFloat(valueCol, obs.Value)
}
