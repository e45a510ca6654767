package chart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/ratewatch/store"
)

func seedStore(t *testing.T, dates []string, rates []string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "rates.csv")
	for i, d := range dates {
		row := store.NewRow()
		row.Set(store.DateColumn, d)
		row.Set("finfam_30y_min_apr", rates[i])
		require.NoError(t, store.Append(path, row))
	}
	return path
}

func TestRenderWritesPNG(t *testing.T) {
	t.Parallel()

	path := seedStore(t,
		[]string{"2024-03-01", "2024-03-02", "2024-03-03"},
		[]string{"6.1", "6.2", "6.0"})
	output := filepath.Join(t.TempDir(), "out", "rates.png")

	lines := DefaultLines("DGS10", "MORTGAGE30US", "^TNX")
	require.NoError(t, Render(path, lines, 0, output))

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), data[:4])
}

func TestRenderDaysWindow(t *testing.T) {
	t.Parallel()

	path := seedStore(t,
		[]string{"2024-03-01", "2024-03-02", "2024-03-03", "2024-03-04"},
		[]string{"6.1", "6.2", "6.0", "6.3"})
	output := filepath.Join(t.TempDir(), "rates.png")

	require.NoError(t, Render(path, []Line{{Column: "finfam_30y_min_apr", Label: "APR"}}, 2, output))
}

func TestRenderMissingStore(t *testing.T) {
	t.Parallel()

	err := Render(filepath.Join(t.TempDir(), "absent.csv"), nil, 0, "out.png")
	assert.Error(t, err)
}

func TestRenderNoPlottableSeries(t *testing.T) {
	t.Parallel()

	// Only one row: a line needs two points.
	path := seedStore(t, []string{"2024-03-01"}, []string{"6.1"})
	err := Render(path, []Line{{Column: "finfam_30y_min_apr", Label: "APR"}}, 0, "out.png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no plottable series")
}

func TestRenderSkipsBadDates(t *testing.T) {
	t.Parallel()

	path := seedStore(t,
		[]string{"2024-03-01", "not-a-date", "2024-03-03"},
		[]string{"6.1", "6.2", "6.0"})
	output := filepath.Join(t.TempDir(), "rates.png")

	require.NoError(t, Render(path, []Line{{Column: "finfam_30y_min_apr", Label: "APR"}}, 0, output))
}
