package harness

import (
	"fmt"

	"benchrun/internal/adder"
	berrors "benchrun/internal/errors"
)

// CrossCheck verifies every strategy computes the same sum for v. The first
// strategy's sum is the reference. A disagreement is a bug in a strategy
// implementation rather than bad input, so it surfaces as a MismatchError
// naming the offender.
//
// The check runs before any timing so a broken strategy never produces a
// plausible-looking table.
func CrossCheck(strategies []adder.Strategy, v adder.Vector) (int64, error) {
	if err := v.Validate(); err != nil {
		return 0, err
	}
	if len(strategies) == 0 {
		return 0, fmt.Errorf("no strategies to cross-check")
	}

	want := strategies[0].Sum(v)
	for _, s := range strategies[1:] {
		if got := s.Sum(v); got != want {
			return 0, &berrors.MismatchError{Strategy: s.Name(), Got: got, Want: want}
		}
	}

	return want, nil
}
