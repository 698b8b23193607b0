package adder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrategies_AgreeOnSum(t *testing.T) {
	vectors := map[string]Vector{
		"zeros":      Zeros(),
		"ones":       Ones(),
		"sequential": Sequential(),
		"random":     Random(1),
	}

	for name, v := range vectors {
		t.Run(name, func(t *testing.T) {
			want := Flat{}.Sum(v)
			for _, s := range All() {
				assert.Equal(t, want, s.Sum(v), "strategy %s on vector %s", s.Name(), name)
			}
		})
	}
}

func TestStrategies_KnownSums(t *testing.T) {
	for _, s := range All() {
		assert.Equal(t, int64(0), s.Sum(Zeros()), "strategy %s", s.Name())
		assert.Equal(t, int64(128), s.Sum(Ones()), "strategy %s", s.Name())
		// 0 + 1 + ... + 127
		assert.Equal(t, int64(8128), s.Sum(Sequential()), "strategy %s", s.Name())
	}
}

func TestStrategies_Deterministic(t *testing.T) {
	v := Random(99)
	for _, s := range All() {
		first := s.Sum(v)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, s.Sum(v), "strategy %s", s.Name())
		}
	}
}

func TestForName(t *testing.T) {
	for _, name := range []string{"flat", "nested", "dispatch"} {
		s, err := ForName(name)
		require.NoError(t, err)
		assert.Equal(t, name, s.Name())
	}

	_, err := ForName("jit")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown strategy")
}

func TestAll_Order(t *testing.T) {
	names := make([]string, 0, 3)
	for _, s := range All() {
		names = append(names, s.Name())
	}
	assert.Equal(t, []string{"flat", "nested", "dispatch"}, names)
}
