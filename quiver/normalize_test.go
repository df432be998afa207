package quiver

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	require.Equal(t, []float64{1, 0}, Normalize([]float64{5, 1}))
	require.Equal(t, []float64{0, 0.5, 1}, Normalize([]float64{2, 3, 4}))
	require.Empty(t, Normalize(nil))
}

func TestNormalizeDegenerate(t *testing.T) {
	for _, vals := range [][]float64{
		{3},
		{2, 2, 2},
		{0, 0},
	} {
		got := Normalize(vals)
		require.Len(t, got, len(vals))
		for _, v := range got {
			require.False(t, math.IsNaN(v))
			require.Equal(t, Degenerate, v)
		}
	}
}

func TestNormalizeInfiniteSpan(t *testing.T) {
	for _, vals := range [][]float64{
		{-math.MaxFloat64, math.MaxFloat64},
		{1, math.Inf(1)},
	} {
		got := Normalize(vals)
		require.Equal(t, []float64{Degenerate, Degenerate}, got, "%v", vals)
	}
}

func TestMagnitudes(t *testing.T) {
	m := MustMatrix([][]float64{{3, 1, 0}, {4, 0, -2}})
	require.Equal(t, []float64{5, 1, 2}, Magnitudes(m))
}
