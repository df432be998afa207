package quiver

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r2"
)

// Degenerate is the normalized value given to every input when all inputs
// are equal and min-max scaling is undefined.
const Degenerate = 0.5

// Normalize rescales values linearly so that the smallest maps to 0 and the
// largest to 1. When all values are equal each maps to Degenerate.
func Normalize(values []float64) []float64 {
	res := make([]float64, len(values))
	if len(values) == 0 {
		return res
	}
	lo, hi := floats.Min(values), floats.Max(values)
	span := hi - lo
	if span == 0 || math.IsInf(span, 0) || math.IsNaN(span) {
		for i := range res {
			res[i] = Degenerate
		}
		return res
	}
	for i, v := range values {
		res[i] = (v - lo) / span
	}
	return res
}

// Magnitudes returns the Euclidean norm of every column of a 2-row matrix.
func Magnitudes(m *Matrix) []float64 {
	cols := m.Columns()
	mags := make([]float64, len(cols))
	for i, v := range cols {
		mags[i] = r2.Norm(v)
	}
	return mags
}
