package harness

import (
	stderrors "errors"
	"testing"

	"benchrun/internal/adder"
	berrors "benchrun/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// skewedStrategy is always off by one.
type skewedStrategy struct{}

func (skewedStrategy) Name() string { return "skewed" }

func (skewedStrategy) Sum(v adder.Vector) int64 { return adder.Flat{}.Sum(v) + 1 }

func TestCrossCheck_Agreement(t *testing.T) {
	sum, err := CrossCheck(adder.All(), adder.Sequential())
	require.NoError(t, err)
	assert.Equal(t, int64(8128), sum)
}

func TestCrossCheck_Disagreement(t *testing.T) {
	strategies := append(adder.All(), skewedStrategy{})
	_, err := CrossCheck(strategies, adder.Ones())
	require.Error(t, err)

	var mismatch *berrors.MismatchError
	require.True(t, stderrors.As(err, &mismatch))
	assert.Equal(t, "skewed", mismatch.Strategy)
	assert.Equal(t, int64(129), mismatch.Got)
	assert.Equal(t, int64(128), mismatch.Want)
}

func TestCrossCheck_InvalidVector(t *testing.T) {
	_, err := CrossCheck(adder.All(), make(adder.Vector, 127))
	require.Error(t, err)

	var inputErr *berrors.InvalidInputError
	assert.True(t, stderrors.As(err, &inputErr))
}

func TestCrossCheck_NoStrategies(t *testing.T) {
	_, err := CrossCheck(nil, adder.Ones())
	assert.Error(t, err)
}
