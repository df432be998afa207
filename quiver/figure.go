package quiver

import (
	"image/color"

	"gonum.org/v1/gonum/spatial/r2"
)

// Arrow is one column vector drawn from Tail to Tip.
type Arrow struct {
	Column    int
	Tail, Tip r2.Vec
	Magnitude float64
	Color     color.Color
}

// Panel is a single set of axes.
type Panel struct {
	Title  string
	Bounds Bounds
	Arrows []Arrow
}

// Figure is everything a Surface needs to draw one render call. Panels are
// laid out left to right.
type Figure struct {
	Title  string
	Panels []Panel

	// ColorMap names the map the arrow colors came from. MinMagnitude and
	// MaxMagnitude are the magnitudes mapped to its ends.
	ColorMap                   string
	MinMagnitude, MaxMagnitude float64
}

// Surface draws finished figures. Implementations own their output and must
// not share drawing state between calls.
type Surface interface {
	Draw(fig *Figure) error
}

// SurfaceFunc adapts a function to Surface.
type SurfaceFunc func(fig *Figure) error

func (f SurfaceFunc) Draw(fig *Figure) error { return f(fig) }

// Recorder is a Surface that keeps every figure it is given.
type Recorder struct {
	Figures []*Figure
}

func (r *Recorder) Draw(fig *Figure) error {
	r.Figures = append(r.Figures, fig)
	return nil
}

// Surfaces draws each figure on every surface in turn and stops at the first
// error.
type Surfaces []Surface

func (ss Surfaces) Draw(fig *Figure) error {
	for _, s := range ss {
		if err := s.Draw(fig); err != nil {
			return err
		}
	}
	return nil
}
