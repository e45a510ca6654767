package tracker

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rustyeddy/ratewatch/config"
	"github.com/rustyeddy/ratewatch/series"
)

// upstreams is a single fake server standing in for every provider. Paths:
// /finfam/rates_<date>.json, /fred?id=..., /chart/<symbol>, /zillow, /bankrate.
type upstreams struct {
	srv *httptest.Server

	finfamDocs map[string]string // date -> JSON document
	fredCSV    map[string]string // series id -> CSV body
	chartJSON  string
	zillowHTML string
	bankHTML   string
	fredDown   bool
}

func newUpstreams(t *testing.T) *upstreams {
	t.Helper()

	u := &upstreams{
		finfamDocs: map[string]string{},
		fredCSV:    map[string]string{},
		chartJSON:  `{"chart": {"result": []}}`,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/finfam/", func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, "/finfam/rates_")
		date := strings.TrimSuffix(name, ".json")
		doc, ok := u.finfamDocs[date]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(doc))
	})
	mux.HandleFunc("/fred", func(w http.ResponseWriter, r *http.Request) {
		if u.fredDown {
			http.Error(w, "unavailable", http.StatusBadGateway)
			return
		}
		body, ok := u.fredCSV[r.URL.Query().Get("id")]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(body))
	})
	mux.HandleFunc("/chart/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(u.chartJSON))
	})
	mux.HandleFunc("/zillow", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(u.zillowHTML))
	})
	mux.HandleFunc("/bankrate", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(u.bankHTML))
	})

	u.srv = httptest.NewServer(mux)
	t.Cleanup(u.srv.Close)
	return u
}

func (u *upstreams) config(t *testing.T) *config.Config {
	t.Helper()

	cfg := config.Default()
	cfg.FinFam.BaseURL = u.srv.URL + "/finfam"
	cfg.FinFam.LookbackDays = 2
	cfg.FRED.Endpoint = u.srv.URL + "/fred"
	cfg.Yahoo.Endpoint = u.srv.URL + "/chart"
	cfg.Scrape.ZillowURL = u.srv.URL + "/zillow"
	cfg.Scrape.BankrateURL = u.srv.URL + "/bankrate"
	cfg.Store.Path = filepath.Join(t.TempDir(), "rates.csv")
	return cfg
}

func (u *upstreams) tracker(t *testing.T) (*Tracker, *config.Config) {
	t.Helper()
	cfg := u.config(t)
	return New(cfg).WithHTTPClient(u.srv.Client()), cfg
}

func finfamDoc(obsDate string, bestAPR float64) string {
	return fmt.Sprintf(`{
		"metadata": {"observation_date": %q, "last_updated": "%sT12:00:00Z"},
		"product_types": {"30-year-fixed": {"median_apr": 6.5, "min_apr": 6.0, "max_apr": 7.1, "count": 9}},
		"institutions": [
			{"name": "Alpha CU", "rates": [
				{"normalized_product_type": "30-year-fixed", "outlier_reason": "", "apr": %g}
			]}
		]
	}`, obsDate, obsDate, bestAPR)
}

func TestRangeFromDays(t *testing.T) {
	t.Parallel()

	start, end := RangeFromDays(7)
	if got := int(end.Sub(start).Hours() / 24); got != 6 {
		t.Fatalf("want 7-day inclusive range, got %d day span", got)
	}
	if end != series.Today() {
		t.Fatalf("range must end today, got %s", end)
	}

	start, end = RangeFromDays(0)
	if start != end {
		t.Fatal("days below 1 clamps to a single day")
	}
}
