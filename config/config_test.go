package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultValidates(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Default().Validate())
}

func TestLoadFromFileYAMLOverrides(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "ratewatch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
store:
  path: /tmp/alt.csv
finfam:
  lookback_days: 3
`), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/alt.csv", cfg.Store.Path)
	assert.Equal(t, 3, cfg.FinFam.LookbackDays)
	// Untouched fields keep defaults.
	assert.Equal(t, "DGS10", cfg.FRED.TreasurySeries)
	assert.Equal(t, "^TNX", cfg.Yahoo.TreasurySymbol)
}

func TestLoadFromFileRejectsInvalid(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "ratewatch.yaml")
	require.NoError(t, os.WriteFile(path, []byte("store:\n  path: \"\"\n"), 0644))

	_, err := LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "store.path")
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "cfg.yaml")

	cfg := Default()
	cfg.Store.Path = filepath.Join(dir, "rates.csv")
	require.NoError(t, cfg.SaveToFile(path))

	got, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLoadFromFileMissing(t *testing.T) {
	t.Parallel()

	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
