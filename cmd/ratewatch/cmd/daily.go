package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/ratewatch/tracker"
)

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Record today's rates from every tracked source",
	Long: `Fetch the latest available value from each upstream and append one
row keyed by today's UTC date.

The primary rates feed publishes one file per day and may lag the
calendar; daily scans backward up to the configured lookback before
giving up. A miss there, or any failure reaching the scraped pages or
the statistics endpoint, fails the whole run.

Example:
  ratewatch daily
  ratewatch daily --config ratewatch.yaml`,
	Args: cobra.NoArgs,
	RunE: runDaily,
}

func init() {
	rootCmd.AddCommand(dailyCmd)
}

func runDaily(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if err := tracker.New(cfg).Daily(context.Background()); err != nil {
		return err
	}

	fmt.Printf("Wrote: %s\n", cfg.Store.Path)
	return nil
}
