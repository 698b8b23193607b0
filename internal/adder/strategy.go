package adder

import "fmt"

// Strategy computes the sum of an operand vector. Implementations must be
// deterministic: the same vector always yields the same sum, which is what
// the harness cross-checks before timing anything.
type Strategy interface {
	Name() string
	Sum(v Vector) int64
}

// ForName resolves a strategy by its CLI name.
func ForName(name string) (Strategy, error) {
	switch name {
	case "flat":
		return Flat{}, nil
	case "nested":
		return Nested{}, nil
	case "dispatch":
		return NewDispatch(), nil
	default:
		return nil, fmt.Errorf("unknown strategy: %q (want flat, nested or dispatch)", name)
	}
}

// All returns every strategy, in reporting order.
func All() []Strategy {
	return []Strategy{Flat{}, Nested{}, NewDispatch()}
}
