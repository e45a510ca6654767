// Package chart renders the accumulated rate table as a time-series PNG.
// It is a pure consumer of the store; nothing here feeds back into the
// data path.
package chart

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	gochart "github.com/wcharczuk/go-chart/v2"

	"github.com/rustyeddy/ratewatch/series"
	"github.com/rustyeddy/ratewatch/store"
)

// Line selects one store column for plotting.
type Line struct {
	Column string
	Label  string
}

// DefaultLines are the tracked rate series in display order.
func DefaultLines(treasurySeries, mortgageSeries, quoteSymbol string) []Line {
	return []Line{
		{Column: "finfam_30y_min_apr", Label: "FinFam 30Y Min APR"},
		{Column: "zillow_or_30y_rate", Label: "Zillow OR 30Y Rate"},
		{Column: "bankrate_or_30y_rate", Label: "Bankrate OR 30Y Rate"},
		{Column: fmt.Sprintf("fred_%s_value", treasurySeries), Label: "FRED " + treasurySeries},
		{Column: fmt.Sprintf("fred_%s_value", mortgageSeries), Label: "FRED " + mortgageSeries},
		{Column: fmt.Sprintf("yahoo_%s_close", quoteSymbol), Label: "Yahoo " + quoteSymbol},
	}
}

// Render reads the store, keeps the last `days` rows when days > 0, and
// writes a PNG with one line per plottable column. Rows with unparsable
// run_date_utc values are dropped; absent values leave gaps in the line.
// A line needs at least two points to be drawn.
func Render(storePath string, lines []Line, days int, output string) error {
	_, rows, err := store.Load(storePath)
	if err != nil {
		return fmt.Errorf("load store: %w", err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("no rows in %s", storePath)
	}

	type dated struct {
		date time.Time
		row  map[string]string
	}
	var parsed []dated
	for _, row := range rows {
		d, err := series.ParseDate(row[store.DateColumn])
		if err != nil {
			continue
		}
		parsed = append(parsed, dated{date: d, row: row})
	}
	if len(parsed) == 0 {
		return fmt.Errorf("no valid dates in %s", storePath)
	}

	if days > 0 && len(parsed) > days {
		parsed = parsed[len(parsed)-days:]
	}

	var plots []gochart.Series
	for _, line := range lines {
		var xs []time.Time
		var ys []float64
		for _, p := range parsed {
			v, err := strconv.ParseFloat(p.row[line.Column], 64)
			if err != nil {
				continue
			}
			xs = append(xs, p.date)
			ys = append(ys, v)
		}
		if len(xs) < 2 {
			continue
		}
		plots = append(plots, gochart.TimeSeries{
			Name:    line.Label,
			XValues: xs,
			YValues: ys,
		})
	}
	if len(plots) == 0 {
		return fmt.Errorf("no plottable series in %s", storePath)
	}

	graph := gochart.Chart{
		Title:  "Daily Mortgage & Treasury Rates",
		Width:  1280,
		Height: 720,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16},
		},
		XAxis: gochart.XAxis{
			Name:           "Date (UTC)",
			ValueFormatter: gochart.TimeDateValueFormatter,
		},
		YAxis: gochart.YAxis{
			Name: "Rate (%)",
		},
		Series: plots,
	}
	graph.Elements = []gochart.Renderable{gochart.Legend(&graph)}

	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f, err := os.Create(output)
	if err != nil {
		return err
	}
	if err := graph.Render(gochart.PNG, f); err != nil {
		f.Close()
		return fmt.Errorf("render chart: %w", err)
	}
	return f.Close()
}
