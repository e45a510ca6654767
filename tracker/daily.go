package tracker

import (
	"context"
	"fmt"

	"github.com/rustyeddy/ratewatch/finfam"
	"github.com/rustyeddy/ratewatch/pkg/id"
	"github.com/rustyeddy/ratewatch/series"
	"github.com/rustyeddy/ratewatch/store"
)

// Daily fetches the freshest value from every upstream and appends one
// row keyed by today's UTC date. Any fetch or store failure other than a
// quotes hiccup aborts the run.
func (t *Tracker) Daily(ctx context.Context) error {
	runDate := series.Today()
	log := t.log.With("run_id", id.New(), "run_date", runDate.Format(series.DateLayout))
	log.Info("daily run started")

	url, doc, err := t.finfam.Latest(ctx)
	if err != nil {
		return fmt.Errorf("finfam: %w", err)
	}
	summary := finfam.Parse30Y(doc)

	zillow, err := t.scrape.Zillow30Y(ctx)
	if err != nil {
		return fmt.Errorf("zillow: %w", err)
	}

	bankrate, err := t.scrape.Bankrate30Y(ctx)
	if err != nil {
		return fmt.Errorf("bankrate: %w", err)
	}

	dgs10, dgs10OK, err := t.fred.Latest(ctx, t.cfg.FRED.TreasurySeries)
	if err != nil {
		return fmt.Errorf("fred %s: %w", t.cfg.FRED.TreasurySeries, err)
	}

	mort30, mort30OK, err := t.fred.Latest(ctx, t.cfg.FRED.MortgageSeries)
	if err != nil {
		return fmt.Errorf("fred %s: %w", t.cfg.FRED.MortgageSeries, err)
	}

	// Quotes are best-effort for the daily row: a failed fetch leaves the
	// columns empty rather than losing the whole day.
	symbol := t.cfg.Yahoo.TreasurySymbol
	tnx, tnxOK, err := t.yahoo.Latest(ctx, symbol)
	if err != nil {
		log.Warn("quotes fetch failed", "symbol", symbol, "error", err)
		tnxOK = false
	}

	row := store.NewRow()
	row.Set(store.DateColumn, runDate.Format(series.DateLayout))
	setFinfam(row, url, summary)
	row.SetFloatPtr("zillow_or_30y_rate", zillow.Rate)
	row.SetFloatPtr("zillow_or_30y_apr", zillow.APR)
	row.SetFloatPtr("bankrate_or_30y_rate", bankrate)

	treasury := t.cfg.FRED.TreasurySeries
	setObservation(row, fredCol(treasury, "date"), fredCol(treasury, "value"), dgs10, dgs10OK)
	row.Set(fredCol(treasury, "source"), t.fred.SeriesURL(treasury))

	mortgage := t.cfg.FRED.MortgageSeries
	setObservation(row, fredCol(mortgage, "date"), fredCol(mortgage, "value"), mort30, mort30OK)
	row.Set(fredCol(mortgage, "source"), t.fred.SeriesURL(mortgage))

	setObservation(row, yahooCol(symbol, "date"), yahooCol(symbol, "close"), tnx, tnxOK)

	if err := store.Append(t.cfg.Store.Path, row); err != nil {
		return fmt.Errorf("append row: %w", err)
	}

	log.Info("daily row written", "path", t.cfg.Store.Path)
	return nil
}
