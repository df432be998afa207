package quiver

import (
	"image/color"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r2"
)

const (
	DefaultBeforeTitle = "A"
	DefaultAfterTitle  = "TA"
)

// Renderer turns matrices into figures. The zero value uses the jet color
// map and the "A" / "TA" panel titles. A Renderer holds no mutable state
// and may be used from several goroutines.
type Renderer struct {
	ColorMap    string
	Title       string
	BeforeTitle string
	AfterTitle  string
}

// DefaultRenderer backs the package-level render functions.
var DefaultRenderer = Renderer{}

// RenderSingle draws the columns of m on s using DefaultRenderer.
func RenderSingle(s Surface, m *Matrix) error {
	return DefaultRenderer.RenderSingle(s, m)
}

// RenderWithTransform draws m and t·m side by side on s using DefaultRenderer.
func RenderWithTransform(s Surface, m, t *Matrix) error {
	return DefaultRenderer.RenderWithTransform(s, m, t)
}

// RenderSingle draws one panel with every column of m as an arrow from the
// origin. Shape errors are returned before s is touched.
func (r Renderer) RenderSingle(s Surface, m *Matrix) error {
	fig, err := r.Single(m)
	if err != nil {
		return err
	}
	return s.Draw(fig)
}

// RenderWithTransform draws m on the left and t·m on the right. A column and
// its image share a color. Shape errors are returned before s is touched.
func (r Renderer) RenderWithTransform(s Surface, m, t *Matrix) error {
	fig, err := r.WithTransform(m, t)
	if err != nil {
		return err
	}
	return s.Draw(fig)
}

// Single builds the figure RenderSingle draws.
func (r Renderer) Single(m *Matrix) (*Figure, error) {
	if err := CheckVectors("matrix", m); err != nil {
		return nil, err
	}
	mags := Magnitudes(m)
	colors, err := r.colors(mags)
	if err != nil {
		return nil, err
	}
	p, err := panel("", m, mags, colors)
	if err != nil {
		return nil, err
	}
	return r.figure(mags, p), nil
}

// WithTransform builds the figure RenderWithTransform draws.
func (r Renderer) WithTransform(m, t *Matrix) (*Figure, error) {
	if err := CheckVectors("matrix", m); err != nil {
		return nil, err
	}
	if err := CheckTransform("transform", t); err != nil {
		return nil, err
	}
	tm, err := Transform(t, m)
	if err != nil {
		return nil, err
	}
	mags := Magnitudes(m)
	colors, err := r.colors(mags)
	if err != nil {
		return nil, err
	}
	before, err := panel(or(r.BeforeTitle, DefaultBeforeTitle), m, mags, colors)
	if err != nil {
		return nil, err
	}
	after, err := panel(or(r.AfterTitle, DefaultAfterTitle), tm, Magnitudes(tm), colors)
	if err != nil {
		return nil, err
	}
	return r.figure(mags, before, after), nil
}

func (r Renderer) colors(mags []float64) ([]color.Color, error) {
	cm, err := ColorMapByName(r.ColorMap)
	if err != nil {
		return nil, err
	}
	return Colors(cm, Normalize(mags))
}

func (r Renderer) figure(mags []float64, panels ...Panel) *Figure {
	return &Figure{
		Title:        r.Title,
		Panels:       panels,
		ColorMap:     or(r.ColorMap, DefaultColorMap),
		MinMagnitude: floats.Min(mags),
		MaxMagnitude: floats.Max(mags),
	}
}

func panel(title string, m *Matrix, mags []float64, colors []color.Color) (Panel, error) {
	b, err := ComputeBounds(m)
	if err != nil {
		return Panel{}, err
	}
	cols := m.Columns()
	arrows := make([]Arrow, len(cols))
	for i, v := range cols {
		arrows[i] = Arrow{
			Column:    i,
			Tail:      r2.Vec{},
			Tip:       v,
			Magnitude: mags[i],
			Color:     colors[i],
		}
	}
	log.Debugf("Panel %q: %d arrows, bounds %+v\n", title, len(arrows), b)
	return Panel{Title: title, Bounds: b, Arrows: arrows}, nil
}

func or(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
