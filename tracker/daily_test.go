package tracker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/ratewatch/series"
	"github.com/rustyeddy/ratewatch/store"
)

func TestDailyWritesOneRow(t *testing.T) {
	t.Parallel()

	u := newUpstreams(t)
	today := series.Today().Format(series.DateLayout)
	u.finfamDocs[today] = finfamDoc(today, 6.1)
	u.fredCSV["DGS10"] = "DATE,DGS10\n2024-02-29,4.25\n2024-03-04,4.22\n"
	u.fredCSV["MORTGAGE30US"] = "DATE,MORTGAGE30US\n2024-02-29,6.94\n"
	u.chartJSON = `{"chart": {"result": [{
		"timestamp": [1709251200],
		"indicators": {"quote": [{"close": [4.18]}]}
	}]}}`
	u.zillowHTML = "30-year fixed mortgage rates in Oregon are 5.99%"
	u.bankHTML = "current interest rates in Oregon are 6.17 percent for a 30-year fixed mortgage"

	tr, cfg := u.tracker(t)
	require.NoError(t, tr.Daily(context.Background()))

	header, rows, err := store.Load(cfg.Store.Path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	row := rows[0]

	assert.Equal(t, store.DateColumn, header[0])
	assert.Equal(t, today, row[store.DateColumn])
	assert.Equal(t, "6.1", row["finfam_30y_best_apr_ex_outliers"])
	assert.Equal(t, "Alpha CU", row["finfam_30y_best_apr_institution"])
	assert.Equal(t, "5.99", row["zillow_or_30y_rate"])
	assert.Equal(t, "", row["zillow_or_30y_apr"], "unmatched APR pattern leaves the column empty")
	assert.Equal(t, "6.17", row["bankrate_or_30y_rate"])
	assert.Equal(t, "4.22", row["fred_DGS10_value"])
	assert.Equal(t, "2024-03-04", row["fred_DGS10_date"])
	assert.Equal(t, "6.94", row["fred_MORTGAGE30US_value"])
	assert.Equal(t, "4.18", row["yahoo_^TNX_close"])
	assert.Equal(t, "2024-03-01", row["yahoo_^TNX_date"])
	assert.Contains(t, row["fred_DGS10_source"], "id=DGS10")
}

func TestDailyUsesLookback(t *testing.T) {
	t.Parallel()

	u := newUpstreams(t)
	// Only yesterday's file exists; lookback must find it.
	yesterday := series.Today().AddDate(0, 0, -1).Format(series.DateLayout)
	u.finfamDocs[yesterday] = finfamDoc(yesterday, 6.0)
	u.fredCSV["DGS10"] = "DATE,DGS10\n2024-02-29,4.25\n"
	u.fredCSV["MORTGAGE30US"] = "DATE,MORTGAGE30US\n2024-02-29,6.94\n"

	tr, cfg := u.tracker(t)
	require.NoError(t, tr.Daily(context.Background()))

	_, rows, err := store.Load(cfg.Store.Path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Contains(t, rows[0]["finfam_url"], yesterday)
	assert.Equal(t, series.Today().Format(series.DateLayout), rows[0][store.DateColumn],
		"row key is the run date, not the feed's observation date")
}

func TestDailyFatalWhenLookbackExhausted(t *testing.T) {
	t.Parallel()

	u := newUpstreams(t)

	tr, cfg := u.tracker(t)
	err := tr.Daily(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "finfam")

	_, _, err = store.Load(cfg.Store.Path)
	assert.Error(t, err, "no row is written on a fatal run")
}

func TestDailyFatalOnStatisticsFailure(t *testing.T) {
	t.Parallel()

	u := newUpstreams(t)
	today := series.Today().Format(series.DateLayout)
	u.finfamDocs[today] = finfamDoc(today, 6.1)
	u.fredDown = true

	tr, _ := u.tracker(t)
	err := tr.Daily(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fred")
}

func TestDailyQuotesFailureIsNotFatal(t *testing.T) {
	t.Parallel()

	u := newUpstreams(t)
	today := series.Today().Format(series.DateLayout)
	u.finfamDocs[today] = finfamDoc(today, 6.1)
	u.fredCSV["DGS10"] = "DATE,DGS10\n2024-02-29,4.25\n"
	u.fredCSV["MORTGAGE30US"] = "DATE,MORTGAGE30US\n2024-02-29,6.94\n"
	u.chartJSON = "garbage"

	tr, cfg := u.tracker(t)
	require.NoError(t, tr.Daily(context.Background()))

	_, rows, err := store.Load(cfg.Store.Path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "", rows[0]["yahoo_^TNX_close"])
	assert.Equal(t, "", rows[0]["yahoo_^TNX_date"])
}
