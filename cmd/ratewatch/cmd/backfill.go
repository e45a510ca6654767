package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/ratewatch/series"
	"github.com/rustyeddy/ratewatch/tracker"
)

var backfillCmd = &cobra.Command{
	Use:   "backfill",
	Short: "Fill historical gaps in the rate dataset",
	Long: `Walk a date range in ascending order and append a row for every date
not already present in the store. Dates the primary feed never published
are skipped with a warning. The scraped-page columns are left empty for
backfilled rows; those pages only show current values.

Examples:
  ratewatch backfill --days 30
  ratewatch backfill --start-date 2024-01-01 --end-date 2024-03-31`,
	Args: cobra.NoArgs,
	RunE: runBackfill,
}

var (
	backfillDays  int
	backfillStart string
	backfillEnd   string
)

func init() {
	rootCmd.AddCommand(backfillCmd)

	backfillCmd.Flags().IntVar(&backfillDays, "days", 30, "number of days to backfill, ending today")
	backfillCmd.Flags().StringVar(&backfillStart, "start-date", "", "start date (YYYY-MM-DD)")
	backfillCmd.Flags().StringVar(&backfillEnd, "end-date", "", "end date (YYYY-MM-DD)")
}

func backfillRange() (start, end time.Time, err error) {
	if backfillStart != "" || backfillEnd != "" {
		if backfillStart == "" || backfillEnd == "" {
			return start, end, fmt.Errorf("--start-date and --end-date must be given together")
		}
		if start, err = series.ParseDate(backfillStart); err != nil {
			return start, end, fmt.Errorf("bad --start-date: %w", err)
		}
		if end, err = series.ParseDate(backfillEnd); err != nil {
			return start, end, fmt.Errorf("bad --end-date: %w", err)
		}
		return start, end, nil
	}

	start, end = tracker.RangeFromDays(backfillDays)
	return start, end, nil
}

func runBackfill(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	start, end, err := backfillRange()
	if err != nil {
		return err
	}

	return tracker.New(cfg).Backfill(context.Background(), start, end)
}
