// Package series holds sparse date/value time series and the as-of lookup
// used to align series of different frequencies (daily market data vs
// weekly survey data) onto daily rows.
package series

import (
	"sort"
	"time"
)

// DateLayout is the ISO-8601 calendar-date form used everywhere a date
// crosses a package boundary (CSV columns, feed URLs, CLI flags).
const DateLayout = "2006-01-02"

// Observation is a single dated value from one upstream series.
type Observation struct {
	Date  time.Time
	Value float64
}

// Series is a sequence of observations sorted ascending by date. Missing
// upstream points are dropped at ingestion, never carried as sentinels, so
// a Series only ever contains real values.
type Series []Observation

// Day truncates t to its UTC calendar date.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today returns the current UTC calendar date.
func Today() time.Time {
	return Day(time.Now())
}

// ParseDate parses an ISO-8601 date into a UTC day.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// AsOf returns the most recent observation dated at or before target.
//
// The series must already be sorted ascending by date; AsOf never sorts.
// ok is false when the series is empty or every observation is later than
// target. A target past the end of the series returns the last observation
// regardless of how stale it is. Callers that need a freshness bound must
// check the gap themselves.
func AsOf(s Series, target time.Time) (Observation, bool) {
	i := sort.Search(len(s), func(i int) bool {
		return s[i].Date.After(target)
	})
	if i == 0 {
		return Observation{}, false
	}
	return s[i-1], true
}

// Last returns the final observation of the series.
func Last(s Series) (Observation, bool) {
	if len(s) == 0 {
		return Observation{}, false
	}
	return s[len(s)-1], true
}
