package harness

import (
	"context"
	"log/slog"
	"time"

	"benchrun/internal/adder"
	berrors "benchrun/internal/errors"
)

// Measurement captures one timed strategy invocation. Measurements live only
// as long as the reporting path needs them; nothing here persists.
type Measurement struct {
	Strategy  string        `json:"strategy"`
	InputSize int           `json:"input_size"`
	Elapsed   time.Duration `json:"elapsed"`
	Sum       int64         `json:"sum"`
}

// Config holds the iteration counts for a single run.
type Config struct {
	Iterations int
	Warmup     int
}

// Validate rejects iteration counts that would make a run meaningless.
func (c Config) Validate() error {
	if c.Iterations <= 0 {
		return &berrors.InvalidConfigurationError{Field: "iterations", Value: c.Iterations}
	}
	if c.Warmup < 0 {
		return &berrors.InvalidConfigurationError{Field: "warmup", Value: c.Warmup}
	}
	return nil
}

// sink keeps the warmup calls observable so they cannot be eliminated.
var sink int64

// Run executes cfg.Warmup discarded calls followed by cfg.Iterations timed
// calls of s over v. All validation happens up front; a failed configuration
// never reaches the timing loop. The strategy runs on the calling goroutine,
// never concurrently, so scheduler noise stays out of the numbers.
//
// Every timed call must return the same sum; a divergence aborts the run with
// a MismatchError because it means the strategy is not deterministic.
func Run(ctx context.Context, s adder.Strategy, v adder.Vector, cfg Config) ([]Measurement, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := v.Validate(); err != nil {
		return nil, err
	}

	slog.Debug("starting run",
		"strategy", s.Name(),
		"iterations", cfg.Iterations,
		"warmup", cfg.Warmup)

	for i := 0; i < cfg.Warmup; i++ {
		sink = s.Sum(v)
	}

	results := make([]Measurement, 0, cfg.Iterations)
	var want int64
	for i := 0; i < cfg.Iterations; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		start := time.Now()
		sum := s.Sum(v)
		elapsed := time.Since(start)

		if i == 0 {
			want = sum
		} else if sum != want {
			return nil, &berrors.MismatchError{Strategy: s.Name(), Got: sum, Want: want}
		}

		results = append(results, Measurement{
			Strategy:  s.Name(),
			InputSize: len(v),
			Elapsed:   elapsed,
			Sum:       sum,
		})
	}

	return results, nil
}
