package main

import (
	"fmt"
	"text/tabwriter"

	"benchrun/internal/history"
	"benchrun/internal/ui"

	"github.com/spf13/cobra"
)

func newCompareCmd() *cobra.Command {
	var threshold float64

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare the two most recent saved runs",
		Long: `Compares the latest saved run against the one before it and flags
strategies whose mean time regressed past the threshold.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := newStoreFunc()
			if err != nil {
				return fmt.Errorf("failed to open history store: %w", err)
			}
			defer store.Close()

			runs, err := store.LoadAll()
			if err != nil {
				return fmt.Errorf("failed to load history: %w", err)
			}
			if len(runs) < 2 {
				return fmt.Errorf("need at least two saved runs to compare, have %d", len(runs))
			}

			prev, curr := runs[len(runs)-2], runs[len(runs)-1]
			comparisons := history.Compare(prev, curr)
			if len(comparisons) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No strategies in common between the two runs.")
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Title("Comparison with previous run"))
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "STRATEGY\tPREV MEAN\tCURR MEAN\tDIFF %\tSTATUS")

			regressed := false
			for _, c := range comparisons {
				if c.MeanNsDiff > threshold {
					regressed = true
				}
				fmt.Fprintf(w, "%s\t%.0fns\t%.0fns\t%+.2f%%\t%s\n",
					c.Strategy, c.Prev.MeanNs, c.Curr.MeanNs, c.MeanNsDiff,
					ui.Status(c.MeanNsDiff, threshold))
			}
			w.Flush()

			if regressed {
				return fmt.Errorf("performance regression detected: at least one strategy is more than %.2f%% slower", threshold)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&threshold, "threshold", 10.0, "Percentage regression that fails the comparison")
	return cmd
}
