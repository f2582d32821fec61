package linear

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFit(t *testing.T) {
	t.Run("ExactLine", func(t *testing.T) {
		// y = 2x + 1 sampled without noise
		xs := []uint64{1, 2, 3, 4, 5}
		ys := []int{3, 5, 7, 9, 11}

		a, b := Fit(xs, ys)
		assert.InDelta(t, 2.0, a, 1e-9)
		assert.InDelta(t, 1.0, b, 1e-9)
	})

	t.Run("SortedKeyToIndex", func(t *testing.T) {
		// The RMI use case: x is a sorted key, y its array index.
		xs := []uint64{1, 3, 5, 7, 9, 11, 13, 15}
		ys := []int{0, 1, 2, 3, 4, 5, 6, 7}

		a, b := Fit(xs, ys)
		assert.InDelta(t, 0.5, a, 1e-9)
		assert.InDelta(t, -0.5, b, 1e-9)
	})

	t.Run("Empty", func(t *testing.T) {
		a, b := Fit(nil, nil)
		assert.Zero(t, a)
		assert.Zero(t, b)
	})

	t.Run("SingleSample", func(t *testing.T) {
		// One sample degenerates the denominator; expect the horizontal
		// fallback through the only y value.
		a, b := Fit([]uint64{42}, []int{7})
		assert.Zero(t, a)
		assert.InDelta(t, 7.0, b, 1e-9)
	})

	t.Run("AllXEqual", func(t *testing.T) {
		a, b := Fit([]uint64{5, 5, 5, 5}, []int{0, 1, 2, 3})
		assert.Zero(t, a)
		assert.InDelta(t, 1.5, b, 1e-9)
	})

	t.Run("LargeKeys", func(t *testing.T) {
		// Keys near 2^64 with a small, regular gap. A float64 accumulation
		// of Σx² cannot resolve the gap; the wide accumulators must.
		const base = uint64(1) << 63
		const gap = uint64(1) << 13

		n := 1024
		xs := make([]uint64, n)
		ys := make([]int, n)
		for i := range xs {
			xs[i] = base + uint64(i)*gap
			ys[i] = i
		}

		a, b := Fit(xs, ys)
		require.NotZero(t, a)
		assert.InEpsilon(t, 1.0/float64(gap), a, 1e-6)

		for i := range xs {
			pred := a*float64(xs[i]) + b
			assert.LessOrEqual(t, math.Abs(pred-float64(ys[i])), 1.0,
				"prediction drifted at i=%d", i)
		}
	})
}
