package history

import "fmt"

// Comparison pairs a strategy's entries from two runs.
type Comparison struct {
	Strategy   string
	MeanNsDiff float64 // percentage change; positive means slower
	Prev       Entry
	Curr       Entry
}

// Compare matches strategies present in both runs and computes the change in
// mean elapsed time. Strategies that appear in only one run are skipped.
func Compare(prev, curr Run) []Comparison {
	prevMap := make(map[string]Entry)
	for _, e := range prev.Entries {
		prevMap[e.Strategy] = e
	}

	var comparisons []Comparison
	for _, e := range curr.Entries {
		p, ok := prevMap[e.Strategy]
		if !ok {
			continue
		}

		comp := Comparison{Strategy: e.Strategy, Prev: p, Curr: e}
		if p.MeanNs > 0 {
			comp.MeanNsDiff = (e.MeanNs - p.MeanNs) / p.MeanNs * 100
		}
		comparisons = append(comparisons, comp)
	}
	return comparisons
}

func (c Comparison) String() string {
	return fmt.Sprintf("%s: %+.2f%% mean ns/op", c.Strategy, c.MeanNsDiff)
}
