// Package raster draws quiver figures with gonum/plot into image, SVG, PDF
// and EPS documents.
package raster

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	_ "gonum.org/v1/plot/vg/vgeps"
	"gonum.org/v1/plot/vg/vgimg"
	_ "gonum.org/v1/plot/vg/vgpdf"
	_ "gonum.org/v1/plot/vg/vgsvg"

	"github.com/VictorDenisov/linalgplot/quiver"
)

// Default size of one panel.
const (
	DefaultWidth  = 6 * vg.Inch
	DefaultHeight = 6 * vg.Inch
)

// ErrInvalidSize is returned for a panel width or height that is not positive.
var ErrInvalidSize = errors.New("panel width and height must be positive")

var formats = []string{"png", "jpg", "jpeg", "tif", "tiff", "svg", "pdf", "eps"}

// Formats lists the output formats a Surface accepts.
func Formats() []string {
	return append([]string(nil), formats...)
}

// FormatFromPath derives the output format from a file extension.
func FormatFromPath(path string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	for _, f := range formats {
		if f == ext {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported image format %q, choose one of %s", ext, strings.Join(formats, ", "))
}

// Surface writes every figure it draws to w in the given format.
// Width and Height size one panel; multi-panel figures grow horizontally.
type Surface struct {
	w      io.Writer
	Format string
	Width  vg.Length
	Height vg.Length
}

func New(w io.Writer, format string) *Surface {
	return &Surface{w: w, Format: format, Width: DefaultWidth, Height: DefaultHeight}
}

// Draw implements quiver.Surface.
func (s *Surface) Draw(fig *quiver.Figure) error {
	w, h, err := figureSize(fig, s.Width, s.Height)
	if err != nil {
		return err
	}
	cw, err := draw.NewFormattedCanvas(w, h, s.Format)
	if err != nil {
		return err
	}
	DrawFigure(draw.New(cw), fig)
	if _, err := cw.WriteTo(s.w); err != nil {
		return fmt.Errorf("writing %s: %w", s.Format, err)
	}
	return nil
}

// File is a Surface that writes every figure it draws to the file at Path,
// replacing its contents. The file is only created once there is a figure
// to draw.
type File struct {
	Path   string
	Format string
	Width  vg.Length
	Height vg.Length
}

// NewFile returns a File surface for path. An empty format is derived from
// the extension of path.
func NewFile(path, format string) (*File, error) {
	if format == "" {
		f, err := FormatFromPath(path)
		if err != nil {
			return nil, err
		}
		format = f
	} else if _, err := FormatFromPath("." + format); err != nil {
		return nil, err
	}
	return &File{Path: path, Format: strings.ToLower(format), Width: DefaultWidth, Height: DefaultHeight}, nil
}

// Draw implements quiver.Surface.
func (f *File) Draw(fig *quiver.Figure) (err error) {
	if _, _, err := figureSize(fig, f.Width, f.Height); err != nil {
		return err
	}
	out, err := os.Create(f.Path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()
	log.Infof("Writing %s (%s)\n", f.Path, f.Format)
	s := New(out, f.Format)
	s.Width, s.Height = f.Width, f.Height
	return s.Draw(fig)
}

// Image renders fig into an in-memory image, w x h per panel.
func Image(fig *quiver.Figure, w, h vg.Length) (image.Image, error) {
	fw, fh, err := figureSize(fig, w, h)
	if err != nil {
		return nil, err
	}
	c := vgimg.New(fw, fh)
	DrawFigure(draw.New(c), fig)
	return c.Image(), nil
}

func figureSize(fig *quiver.Figure, w, h vg.Length) (vg.Length, vg.Length, error) {
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("%w: got %gx%g points", ErrInvalidSize, float64(w), float64(h))
	}
	n := len(fig.Panels)
	if n == 0 {
		n = 1
	}
	return w * vg.Length(n), h, nil
}

// DrawFigure lays the panels of fig side by side on dc.
func DrawFigure(dc draw.Canvas, fig *quiver.Figure) {
	if len(fig.Panels) == 0 {
		return
	}
	if fig.Title != "" {
		dc = drawTitle(dc, fig.Title)
	}
	row := make([]*plot.Plot, len(fig.Panels))
	for i, p := range fig.Panels {
		row[i] = Plot(p)
	}
	tiles := draw.Tiles{
		Rows:      1,
		Cols:      len(row),
		PadX:      vg.Centimeter,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 2,
	}
	canvases := plot.Align([][]*plot.Plot{row}, tiles, dc)
	for i, p := range row {
		p.Draw(EqualAspect(p, canvases[0][i], fig.Panels[i].Bounds))
	}
}

// Plot builds the gonum plot of a single panel: grid, arrows and the panel
// bounds as the axis range.
func Plot(panel quiver.Panel) *plot.Plot {
	p := plot.New()
	p.Title.Text = panel.Title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid(), NewArrows(panel.Arrows))
	p.X.Min, p.X.Max = panel.Bounds.XMin, panel.Bounds.XMax
	p.Y.Min, p.Y.Max = panel.Bounds.YMin, panel.Bounds.YMax
	return p
}

// EqualAspect shrinks c so that the data area of p shows one x unit and one
// y unit with the same length on the page.
func EqualAspect(p *plot.Plot, c draw.Canvas, b quiver.Bounds) draw.Canvas {
	if b.Width() <= 0 || b.Height() <= 0 {
		return c
	}
	da := p.DataCanvas(c)
	dw, dh := da.Max.X-da.Min.X, da.Max.Y-da.Min.Y
	if dw <= 0 || dh <= 0 {
		return c
	}
	ratio := vg.Length(b.Width() / b.Height())
	if dw > dh*ratio {
		extra := (dw - dh*ratio) / 2
		return draw.Crop(c, extra, -extra, 0, 0)
	}
	extra := (dh - dw/ratio) / 2
	return draw.Crop(c, 0, 0, extra, -extra)
}

func drawTitle(dc draw.Canvas, title string) draw.Canvas {
	sty := plot.New().Title.TextStyle
	descent := sty.FontExtents().Descent
	dc.FillText(sty, vg.Point{X: dc.Center().X, Y: dc.Max.Y + descent}, title)
	return draw.Crop(dc, 0, 0, 0, -sty.Rectangle(title).Size().Y-vg.Millimeter*2)
}
