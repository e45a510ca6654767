package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rustyeddy/ratewatch/config"
	"github.com/rustyeddy/ratewatch/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "ratewatch",
	Short: "Track daily mortgage and treasury rates from public sources",
	Long: `Ratewatch pulls daily mortgage-rate and treasury-yield data from
several public web sources, normalizes each into one flat row per UTC
calendar date, and appends it to a growing CSV dataset.

It provides tools for:
  - Recording today's rates from every tracked source (daily)
  - Filling historical gaps over a date range (backfill)
  - Rendering the accumulated table as a time-series chart (chart)

Do not run daily and backfill against the same CSV at the same time;
the store has no locking.`,
	PersistentPreRunE: setup,
}

var (
	cfgFile  string
	logLevel string
	logJSON  bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (defaults used when omitted)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn or error")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "log as JSON instead of text")
}

func setup(cmd *cobra.Command, args []string) error {
	level, err := logging.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	logging.Init(level, logJSON)
	return nil
}

// loadConfig resolves the effective configuration for a run.
func loadConfig() (*config.Config, error) {
	if cfgFile == "" {
		return config.Default(), nil
	}
	return config.LoadFromFile(cfgFile)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
