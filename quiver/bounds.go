package quiver

import (
	"math"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
)

// Padding is the number of data units added around the tightest box that
// holds the origin and all vector endpoints.
const Padding = 1

// Bounds is the visible axis range of a panel.
type Bounds struct {
	XMin, XMax, YMin, YMax float64
}

func (b Bounds) Width() float64 {
	return b.XMax - b.XMin
}

func (b Bounds) Height() float64 {
	return b.YMax - b.YMin
}

// ComputeBounds returns integer axis extents for m that contain the origin
// and every column vector with one unit of padding on each side.
func ComputeBounds(m *Matrix) (Bounds, error) {
	if err := CheckVectors("matrix", m); err != nil {
		return Bounds{}, err
	}
	xs, ys := m.Row(0), m.Row(1)
	b := Bounds{
		XMin: math.Floor(math.Min(floats.Min(xs), 0)) - Padding,
		XMax: math.Ceil(math.Max(floats.Max(xs), 0)) + Padding,
		YMin: math.Floor(math.Min(floats.Min(ys), 0)) - Padding,
		YMax: math.Ceil(math.Max(floats.Max(ys), 0)) + Padding,
	}
	log.Tracef("Bounds: %+v\n", b)
	return b, nil
}
