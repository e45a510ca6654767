package tracker

import (
	"context"
	"fmt"
	"time"

	"github.com/rustyeddy/ratewatch/finfam"
	"github.com/rustyeddy/ratewatch/pkg/id"
	"github.com/rustyeddy/ratewatch/series"
	"github.com/rustyeddy/ratewatch/store"
)

// Backfill fills the store for every date in [start, end] not already
// present, in ascending order.
//
// The auxiliary series (FRED, quotes) are fetched once as bulk history
// and aligned onto each date with an as-of lookup; a failure there aborts
// the run since it would invalidate every date. A missing primary-feed
// file for a single date is logged and skipped — historical gaps are
// expected. The scraped-page columns stay empty: those pages only show
// current values, so historical ones would need manual entry.
func (t *Tracker) Backfill(ctx context.Context, start, end time.Time) error {
	start, end = series.Day(start), series.Day(end)
	if end.Before(start) {
		return fmt.Errorf("start date %s is after end date %s",
			start.Format(series.DateLayout), end.Format(series.DateLayout))
	}

	log := t.log.With("run_id", id.New())
	log.Info("backfill started",
		"start", start.Format(series.DateLayout),
		"end", end.Format(series.DateLayout))

	existing, err := store.Dates(t.cfg.Store.Path)
	if err != nil {
		return fmt.Errorf("load existing dates: %w", err)
	}

	treasury := t.cfg.FRED.TreasurySeries
	dgs10, err := t.fred.Series(ctx, treasury)
	if err != nil {
		return fmt.Errorf("fred %s: %w", treasury, err)
	}

	mortgage := t.cfg.FRED.MortgageSeries
	mort30, err := t.fred.Series(ctx, mortgage)
	if err != nil {
		return fmt.Errorf("fred %s: %w", mortgage, err)
	}

	symbol := t.cfg.Yahoo.TreasurySymbol
	tnx, err := t.yahoo.Series(ctx, symbol, t.cfg.Yahoo.BackfillRange)
	if err != nil {
		return fmt.Errorf("yahoo %s: %w", symbol, err)
	}

	written := 0
	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		ds := date.Format(series.DateLayout)
		if existing[ds] {
			continue
		}

		url, doc, err := t.finfam.ForDate(ctx, date)
		if err != nil {
			log.Warn("skipping date: rates file fetch failed", "date", ds, "error", err)
			continue
		}

		row := store.NewRow()
		row.Set(store.DateColumn, ds)
		setFinfam(row, url, finfam.Parse30Y(doc))

		// Manual-entry columns: no historical source to scrape.
		row.Set("zillow_or_30y_rate", "")
		row.Set("zillow_or_30y_apr", "")
		row.Set("bankrate_or_30y_rate", "")

		obs, ok := series.AsOf(dgs10, date)
		setObservation(row, fredCol(treasury, "date"), fredCol(treasury, "value"), obs, ok)
		row.Set(fredCol(treasury, "source"), t.fred.SeriesURL(treasury))

		obs, ok = series.AsOf(mort30, date)
		setObservation(row, fredCol(mortgage, "date"), fredCol(mortgage, "value"), obs, ok)
		row.Set(fredCol(mortgage, "source"), t.fred.SeriesURL(mortgage))

		obs, ok = series.AsOf(tnx, date)
		setObservation(row, yahooCol(symbol, "date"), yahooCol(symbol, "close"), obs, ok)

		if err := store.Append(t.cfg.Store.Path, row); err != nil {
			return fmt.Errorf("append row for %s: %w", ds, err)
		}

		written++
		log.Info("backfilled", "date", ds)
	}

	log.Info("backfill finished", "rows_written", written)
	return nil
}
