package main

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

func newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List saved benchmark runs",
		Long:  `Lists runs previously saved with --save, oldest first.`,
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
			if len(runs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No saved runs.")
				return nil
			}
			if limit > 0 && len(runs) > limit {
				runs = runs[len(runs)-limit:]
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "TIMESTAMP\tITER\tWARMUP\tSTRATEGIES")
			for _, r := range runs {
				names := make([]string, 0, len(r.Entries))
				for _, e := range r.Entries {
					names = append(names, e.Strategy)
				}
				fmt.Fprintf(w, "%s\t%d\t%d\t%s\n",
					r.Timestamp.Format(time.RFC3339), r.Iterations, r.Warmup, strings.Join(names, ","))
			}
			w.Flush()
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Show at most this many recent runs")
	return cmd
}
