package quiver

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeBoundsExample(t *testing.T) {
	m := MustMatrix([][]float64{{3, 1}, {4, 0}})
	b, err := ComputeBounds(m)
	require.NoError(t, err)
	require.Equal(t, Bounds{XMin: -1, XMax: 4, YMin: -1, YMax: 5}, b)
}

func TestComputeBoundsNegativeAndFractional(t *testing.T) {
	m := MustMatrix([][]float64{{-2.5, 1}, {0.5, -3}})
	b, err := ComputeBounds(m)
	require.NoError(t, err)
	require.Equal(t, Bounds{XMin: -4, XMax: 2, YMin: -4, YMax: 2}, b)
}

func TestComputeBoundsContainsOriginAndVectors(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for n := 1; n < 50; n++ {
		rows := [][]float64{make([]float64, n), make([]float64, n)}
		for j := 0; j < n; j++ {
			rows[0][j] = (rnd.Float64() - 0.5) * 40
			rows[1][j] = (rnd.Float64() - 0.3) * 10
		}
		b, err := ComputeBounds(MustMatrix(rows))
		require.NoError(t, err)

		check := func(vals []float64, lo, hi float64) {
			tightLo, tightHi := 0.0, 0.0
			for _, v := range vals {
				tightLo = math.Min(tightLo, v)
				tightHi = math.Max(tightHi, v)
			}
			require.Equal(t, math.Floor(tightLo)-1, lo)
			require.Equal(t, math.Ceil(tightHi)+1, hi)
			require.Less(t, lo, tightLo)
			require.Greater(t, hi, tightHi)
			require.Equal(t, lo, math.Trunc(lo))
			require.Equal(t, hi, math.Trunc(hi))
		}
		check(rows[0], b.XMin, b.XMax)
		check(rows[1], b.YMin, b.YMax)
	}
}

func TestComputeBoundsRejectsWrongRowCount(t *testing.T) {
	for _, rows := range [][][]float64{
		{{1, 2, 3}},
		{{1, 2}, {3, 4}, {5, 6}},
	} {
		_, err := ComputeBounds(MustMatrix(rows))
		require.ErrorIs(t, err, ErrInvalidShape)
		var se *InvalidShapeError
		require.ErrorAs(t, err, &se)
		require.Equal(t, len(rows), se.Rows)
	}
}
