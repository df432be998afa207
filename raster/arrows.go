package raster

import (
	"math"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/VictorDenisov/linalgplot/quiver"
)

// Arrows implements plot.Plotter, drawing each arrow in data coordinates so
// that its length on the page follows the axis scale.
type Arrows struct {
	Arrows []quiver.Arrow

	// Width is the shaft width. HeadLength is the length of the head; heads
	// are shortened on arrows too small to hold them.
	Width      vg.Length
	HeadLength vg.Length
}

// NewArrows returns an Arrows plotter with default styling.
func NewArrows(arrows []quiver.Arrow) *Arrows {
	return &Arrows{
		Arrows:     arrows,
		Width:      vg.Points(1.5),
		HeadLength: vg.Points(9),
	}
}

// Plot implements the plot.Plotter interface.
func (a *Arrows) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for _, ar := range a.Arrows {
		tail := vg.Point{X: trX(ar.Tail.X), Y: trY(ar.Tail.Y)}
		tip := vg.Point{X: trX(ar.Tip.X), Y: trY(ar.Tip.Y)}
		d := tip.Sub(tail)
		length := vg.Length(math.Hypot(float64(d.X), float64(d.Y)))
		if length == 0 {
			log.Tracef("Skipping zero arrow for column %d\n", ar.Column)
			continue
		}
		head := a.HeadLength
		if head > 0.4*length {
			head = 0.4 * length
		}
		u := d.Scale(1 / length)
		n := vg.Point{X: -u.Y, Y: u.X}
		base := tip.Sub(u.Scale(head))

		sty := draw.LineStyle{Color: ar.Color, Width: a.Width}
		c.StrokeLine2(sty, tail.X, tail.Y, base.X, base.Y)
		c.FillPolygon(ar.Color, []vg.Point{
			tip,
			base.Add(n.Scale(head / 2.5)),
			base.Sub(n.Scale(head / 2.5)),
		})
	}
}

// DataRange implements the plot.DataRanger interface.
func (a *Arrows) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, ymin = math.Inf(1), math.Inf(1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)
	for _, ar := range a.Arrows {
		for _, p := range []r2.Vec{ar.Tail, ar.Tip} {
			xmin, xmax = math.Min(xmin, p.X), math.Max(xmax, p.X)
			ymin, ymax = math.Min(ymin, p.Y), math.Max(ymax, p.Y)
		}
	}
	return
}
