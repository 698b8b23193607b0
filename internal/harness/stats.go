package harness

import (
	"fmt"
	"time"
)

// Summary aggregates the measurements of one strategy.
type Summary struct {
	Strategy string        `json:"strategy"`
	Samples  int           `json:"samples"`
	Mean     time.Duration `json:"mean"`
	Min      time.Duration `json:"min"`
	Max      time.Duration `json:"max"`
	Sum      int64         `json:"sum"`
}

// Summarize reduces measurements to mean/min/max elapsed time. It is pure and
// deterministic: the same slice always yields the same summary.
func Summarize(results []Measurement) (Summary, error) {
	if len(results) == 0 {
		return Summary{}, fmt.Errorf("no measurements to summarize")
	}

	s := Summary{
		Strategy: results[0].Strategy,
		Samples:  len(results),
		Min:      results[0].Elapsed,
		Max:      results[0].Elapsed,
		Sum:      results[0].Sum,
	}

	var total time.Duration
	for _, r := range results {
		total += r.Elapsed
		if r.Elapsed < s.Min {
			s.Min = r.Elapsed
		}
		if r.Elapsed > s.Max {
			s.Max = r.Elapsed
		}
	}
	s.Mean = total / time.Duration(len(results))

	return s, nil
}
