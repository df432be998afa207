// Package htmlchart draws quiver figures as interactive ECharts pages.
package htmlchart

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	log "github.com/sirupsen/logrus"

	"github.com/VictorDenisov/linalgplot/quiver"
)

// PanelSize is the length in pixels of the longer data side of a panel.
const PanelSize = 520

// Chart margins around the data area, in pixels.
const (
	marginX = 80
	marginY = 110
)

// Surface renders each figure as a self-contained HTML page on w.
type Surface struct {
	w         io.Writer
	PageTitle string
}

func New(w io.Writer) *Surface {
	return &Surface{w: w, PageTitle: "Column vectors"}
}

// Draw implements quiver.Surface.
func (s *Surface) Draw(fig *quiver.Figure) error {
	page := components.NewPage()
	page.SetPageTitle(s.PageTitle)
	page.SetLayout(components.PageFlexLayout)
	for i, p := range fig.Panels {
		page.AddCharts(Chart(fig, i, p))
	}
	if err := page.Render(s.w); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	return nil
}

// File is a Surface that writes every figure it draws as an HTML page at
// Path. The file is only created once there is a figure to draw.
type File struct {
	Path      string
	PageTitle string
}

func NewFile(path string) *File {
	return &File{Path: path, PageTitle: "Column vectors"}
}

// Draw implements quiver.Surface.
func (f *File) Draw(fig *quiver.Figure) (err error) {
	out, err := os.Create(f.Path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()
	log.Infof("Writing %s (html)\n", f.Path)
	s := New(out)
	s.PageTitle = f.PageTitle
	return s.Draw(fig)
}

// Chart builds the line chart for panel number idx of fig. Every arrow is a
// series whose mark line runs from the tail to the tip.
func Chart(fig *quiver.Figure, idx int, p quiver.Panel) *charts.Line {
	line := charts.NewLine()
	w, h := chartSize(p.Bounds)
	title := p.Title
	if title == "" {
		title = fig.Title
	}
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			ChartID: fmt.Sprintf("panel%d", idx),
			Width:   fmt.Sprintf("%dpx", w),
			Height:  fmt.Sprintf("%dpx", h),
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: fmt.Sprintf("color map %s, |v| in [%g, %g]", fig.ColorMap, fig.MinMagnitude, fig.MaxMagnitude),
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type:      "value",
			Min:       p.Bounds.XMin,
			Max:       p.Bounds.XMax,
			SplitLine: &opts.SplitLine{Show: opts.Bool(true)},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type:      "value",
			Min:       p.Bounds.YMin,
			Max:       p.Bounds.YMax,
			SplitLine: &opts.SplitLine{Show: opts.Bool(true)},
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	for _, a := range p.Arrows {
		hex := Hex(a.Color)
		line.AddSeries(fmt.Sprintf("v%d", a.Column+1),
			[]opts.LineData{
				{Value: []interface{}{a.Tail.X, a.Tail.Y}, Symbol: "none"},
				{Value: []interface{}{a.Tip.X, a.Tip.Y}, Symbol: "none"},
			},
			charts.WithLineStyleOpts(opts.LineStyle{Color: hex, Width: 2}),
			charts.WithMarkLineNameCoordItemOpts(opts.MarkLineNameCoordItem{
				Name:        fmt.Sprintf("|v%d| = %.3g", a.Column+1, a.Magnitude),
				Coordinate0: []interface{}{a.Tail.X, a.Tail.Y},
				Coordinate1: []interface{}{a.Tip.X, a.Tip.Y},
			}),
			charts.WithMarkLineStyleOpts(opts.MarkLineStyle{
				Symbol:    []string{"none", "arrow"},
				LineStyle: &opts.LineStyle{Color: hex, Width: 2, Type: "solid"},
			}),
		)
	}
	log.Tracef("Chart %d: %dx%d px, %d arrows\n", idx, w, h, len(p.Arrows))
	return line
}

// chartSize scales the chart so that x and y units get the same number of
// pixels.
func chartSize(b quiver.Bounds) (w, h int) {
	unit := PanelSize / math.Max(b.Width(), b.Height())
	return int(math.Round(unit*b.Width())) + marginX, int(math.Round(unit*b.Height())) + marginY
}

// Hex formats c as #rrggbb.
func Hex(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}
