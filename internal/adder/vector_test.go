package adder

import (
	stderrors "errors"
	"testing"

	berrors "benchrun/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerators(t *testing.T) {
	for name, v := range map[string]Vector{
		"sequential": Sequential(),
		"zeros":      Zeros(),
		"ones":       Ones(),
		"random":     Random(42),
	} {
		assert.Len(t, v, Width, "generator %s", name)
		assert.NoError(t, v.Validate(), "generator %s", name)
	}
}

func TestValidate_WrongLength(t *testing.T) {
	for _, n := range []int{0, 1, 127, 129} {
		err := make(Vector, n).Validate()
		require.Error(t, err, "length %d", n)

		var inputErr *berrors.InvalidInputError
		require.True(t, stderrors.As(err, &inputErr))
		assert.Equal(t, n, inputErr.Length)
		assert.Equal(t, Width, inputErr.Want)
	}
}

func TestRandom_Deterministic(t *testing.T) {
	assert.Equal(t, Random(7), Random(7))
	assert.NotEqual(t, Random(7), Random(8))
}

func TestSequential_Values(t *testing.T) {
	v := Sequential()
	assert.Equal(t, int64(0), v[0])
	assert.Equal(t, int64(127), v[127])
}
