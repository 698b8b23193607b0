package main

import (
	"fmt"
	"sync"
	"text/tabwriter"
	"time"

	"benchrun/internal/adder"
	"benchrun/internal/harness"
	"benchrun/internal/history"
	"benchrun/internal/telemetry"
	"benchrun/internal/ui"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// newStoreFunc allows mocking the history backend in tests.
var newStoreFunc = func() (history.Store, error) {
	return history.NewStore(history.StoreConfig{
		Type:             viper.GetString("store"),
		ConnectionString: viper.GetString("db"),
	})
}

var (
	metricsOnce sync.Once
	metrics     *telemetry.Metrics
)

// runMetrics registers the instruments once per process; commands may execute
// several times in tests.
func runMetrics() *telemetry.Metrics {
	metricsOnce.Do(func() {
		metrics = telemetry.NewMetrics(prometheus.DefaultRegisterer)
	})
	return metrics
}

func runBenchmarks(cmd *cobra.Command, args []string) error {
	strategies, err := resolveStrategies(viper.GetString("strategy"))
	if err != nil {
		return err
	}

	vector, err := buildVector(viper.GetString("input"), viper.GetInt64("seed"))
	if err != nil {
		return err
	}

	cfg := harness.Config{
		Iterations: viper.GetInt("iterations"),
		Warmup:     viper.GetInt("warmup"),
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	m := runMetrics()

	// A disagreement between strategies is a strategy bug; abort before any
	// timing so a broken implementation never produces a plausible table.
	want, err := harness.CrossCheck(strategies, vector)
	if err != nil {
		m.CrossCheckFailures.Inc()
		fmt.Fprintln(cmd.OutOrStdout(), ui.Verdict(false, 0))
		return err
	}

	summaries := make([]harness.Summary, 0, len(strategies))
	for _, s := range strategies {
		results, err := harness.Run(cmd.Context(), s, vector, cfg)
		if err != nil {
			m.RunsTotal.WithLabelValues(s.Name(), "error").Inc()
			return err
		}

		elapsed := make([]time.Duration, len(results))
		for i, r := range results {
			elapsed[i] = r.Elapsed
		}
		m.ObserveRun(s.Name(), elapsed)

		summary, err := harness.Summarize(results)
		if err != nil {
			return err
		}
		summaries = append(summaries, summary)
	}

	printSummaries(cmd, summaries)
	fmt.Fprintln(cmd.OutOrStdout(), ui.Verdict(true, want))

	if save, _ := cmd.Flags().GetBool("save"); save {
		if err := saveRun(cfg, summaries); err != nil {
			return fmt.Errorf("failed to save history: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Results saved to history.")
	}

	return nil
}

func resolveStrategies(name string) ([]adder.Strategy, error) {
	if name == "all" {
		return adder.All(), nil
	}
	s, err := adder.ForName(name)
	if err != nil {
		return nil, err
	}
	return []adder.Strategy{s}, nil
}

func buildVector(kind string, seed int64) (adder.Vector, error) {
	switch kind {
	case "sequential":
		return adder.Sequential(), nil
	case "random":
		return adder.Random(seed), nil
	case "zeros":
		return adder.Zeros(), nil
	case "ones":
		return adder.Ones(), nil
	default:
		return nil, fmt.Errorf("unknown input kind: %q (want sequential, random, zeros or ones)", kind)
	}
}

func printSummaries(cmd *cobra.Command, summaries []harness.Summary) {
	fmt.Fprintln(cmd.OutOrStdout(), ui.Title("Benchmark results"))
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "STRATEGY\tSAMPLES\tMEAN\tMIN\tMAX\tSUM")
	for _, s := range summaries {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\t%d\n",
			s.Strategy, s.Samples, s.Mean, s.Min, s.Max, s.Sum)
	}
	w.Flush()
}

func saveRun(cfg harness.Config, summaries []harness.Summary) error {
	store, err := newStoreFunc()
	if err != nil {
		return err
	}
	defer store.Close()

	run := history.Run{
		Timestamp:  time.Now(),
		Iterations: cfg.Iterations,
		Warmup:     cfg.Warmup,
	}
	for _, s := range summaries {
		run.Entries = append(run.Entries, history.Entry{
			Strategy: s.Strategy,
			Samples:  s.Samples,
			MeanNs:   float64(s.Mean.Nanoseconds()),
			MinNs:    s.Min.Nanoseconds(),
			MaxNs:    s.Max.Nanoseconds(),
			Sum:      s.Sum,
		})
	}

	return store.Save(run)
}
