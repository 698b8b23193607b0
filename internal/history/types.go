package history

import "time"

// Entry is one strategy's aggregated outcome within a saved run.
type Entry struct {
	Strategy string  `json:"strategy"`
	Samples  int     `json:"samples"`
	MeanNs   float64 `json:"mean_ns"`
	MinNs    int64   `json:"min_ns"`
	MaxNs    int64   `json:"max_ns"`
	Sum      int64   `json:"sum"`
}

// Run is the collection of entries produced by a single benchmark session.
type Run struct {
	Timestamp  time.Time `json:"timestamp"`
	Iterations int       `json:"iterations"`
	Warmup     int       `json:"warmup"`
	Entries    []Entry   `json:"entries"`
}
