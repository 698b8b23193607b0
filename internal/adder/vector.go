package adder

import (
	"math/rand"

	"benchrun/internal/errors"
)

// Width is the fixed operand count every strategy consumes.
const Width = 128

// Vector is the ordered operand set fed to a summation strategy. A vector is
// generated once per session and shared by every strategy so their timings
// stay comparable.
type Vector []int64

// Validate checks that the vector has exactly Width operands.
func (v Vector) Validate() error {
	if len(v) != Width {
		return &errors.InvalidInputError{Length: len(v), Want: Width}
	}
	return nil
}

// Sequential returns the vector [0, 1, ..., Width-1].
func Sequential() Vector {
	v := make(Vector, Width)
	for i := range v {
		v[i] = int64(i)
	}
	return v
}

// Zeros returns the all-zero vector.
func Zeros() Vector {
	return make(Vector, Width)
}

// Ones returns the all-ones vector.
func Ones() Vector {
	v := make(Vector, Width)
	for i := range v {
		v[i] = 1
	}
	return v
}

// Random returns a vector of pseudo-random operands. The same seed always
// produces the same vector.
func Random(seed int64) Vector {
	rng := rand.New(rand.NewSource(seed))
	v := make(Vector, Width)
	for i := range v {
		v[i] = rng.Int63n(1 << 20)
	}
	return v
}
