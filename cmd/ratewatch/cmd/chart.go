package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/ratewatch/chart"
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Render the rate dataset as a time-series PNG",
	Long: `Read the accumulated CSV and plot the tracked rate series over time.

Examples:
  ratewatch chart
  ratewatch chart --days 90 --output rates.png`,
	Args: cobra.NoArgs,
	RunE: runChart,
}

var (
	chartDays   int
	chartOutput string
)

func init() {
	rootCmd.AddCommand(chartCmd)

	chartCmd.Flags().IntVar(&chartDays, "days", 0, "only plot the last N days (0 = all)")
	chartCmd.Flags().StringVar(&chartOutput, "output", "", "output PNG path (default from config)")
}

func runChart(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	output := chartOutput
	if output == "" {
		output = cfg.Chart.Output
	}

	lines := chart.DefaultLines(cfg.FRED.TreasurySeries, cfg.FRED.MortgageSeries, cfg.Yahoo.TreasurySymbol)
	if err := chart.Render(cfg.Store.Path, lines, chartDays, output); err != nil {
		return err
	}

	fmt.Printf("Wrote: %s\n", output)
	return nil
}
