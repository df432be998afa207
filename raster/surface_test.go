package raster

import (
	"bytes"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/VictorDenisov/linalgplot/quiver"
)

var (
	vectors   = quiver.MustMatrix([][]float64{{3, 1, -2}, {4, 0, 1}})
	transform = quiver.MustMatrix([][]float64{{1, 1}, {0, 2}})
)

func TestDrawPNG(t *testing.T) {
	var buf bytes.Buffer
	s := New(&buf, "png")
	s.Width, s.Height = 3*vg.Inch, 2*vg.Inch
	require.NoError(t, quiver.RenderWithTransform(s, vectors, transform))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	b := img.Bounds()
	require.Equal(t, 2*3*vgimg.DefaultDPI, b.Dx())
	require.Equal(t, 2*vgimg.DefaultDPI, b.Dy())
}

func TestDrawVectorFormats(t *testing.T) {
	for _, format := range []string{"svg", "pdf", "eps"} {
		var buf bytes.Buffer
		require.NoError(t, quiver.RenderSingle(New(&buf, format), vectors), format)
		require.NotZero(t, buf.Len(), format)
	}
}

func TestDrawUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	require.Error(t, quiver.RenderSingle(New(&buf, "bmp"), vectors))
	require.Zero(t, buf.Len())
}

func TestInvalidShapeWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	bad := quiver.MustMatrix([][]float64{{1, 2, 3}})
	require.ErrorIs(t, quiver.RenderSingle(New(&buf, "png"), bad), quiver.ErrInvalidShape)
	require.ErrorIs(t, quiver.RenderWithTransform(New(&buf, "png"), vectors, bad), quiver.ErrInvalidShape)
	require.Zero(t, buf.Len())
}

func TestRenderIsRepeatable(t *testing.T) {
	render := func() []byte {
		var buf bytes.Buffer
		s := New(&buf, "png")
		s.Width, s.Height = 2*vg.Inch, 2*vg.Inch
		require.NoError(t, quiver.RenderSingle(s, vectors))
		return buf.Bytes()
	}
	first := render()

	var wg sync.WaitGroup
	outs := make([][]byte, 4)
	for i := range outs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			outs[i] = render()
		}(i)
	}
	wg.Wait()
	for _, out := range outs {
		require.Equal(t, first, out)
	}
}

func TestFileSurface(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vectors.svg")
	f, err := NewFile(path, "")
	require.NoError(t, err)
	require.Equal(t, "svg", f.Format)
	require.NoError(t, quiver.RenderSingle(f, vectors))
	st, err := os.Stat(path)
	require.NoError(t, err)
	require.NotZero(t, st.Size())

	f, err = NewFile(filepath.Join(dir, "vectors.out"), "PDF")
	require.NoError(t, err)
	require.Equal(t, "pdf", f.Format)

	_, err = NewFile(filepath.Join(dir, "vectors.gif"), "")
	require.Error(t, err)
	_, err = NewFile(path, "bmp")
	require.Error(t, err)

	bad := filepath.Join(dir, "bad.png")
	f, err = NewFile(bad, "")
	require.NoError(t, err)
	require.ErrorIs(t, quiver.RenderSingle(f, quiver.MustMatrix([][]float64{{1, 2}})), quiver.ErrInvalidShape)
	require.NoFileExists(t, bad)

	f.Height = 0
	require.ErrorIs(t, quiver.RenderSingle(f, vectors), ErrInvalidSize)
	require.NoFileExists(t, bad)
}

func TestNonPositiveSize(t *testing.T) {
	for _, size := range [][2]vg.Length{{0, vg.Inch}, {-vg.Inch, vg.Inch}, {vg.Inch, 0}, {vg.Inch, -1}} {
		var buf bytes.Buffer
		s := New(&buf, "png")
		s.Width, s.Height = size[0], size[1]
		require.ErrorIs(t, quiver.RenderSingle(s, vectors), ErrInvalidSize, "%v", size)
		require.Zero(t, buf.Len())
	}

	fig, err := quiver.DefaultRenderer.Single(vectors)
	require.NoError(t, err)
	_, err = Image(fig, -vg.Inch, vg.Inch)
	require.ErrorIs(t, err, ErrInvalidSize)

	img, err := Image(fig, vg.Inch, vg.Inch)
	require.NoError(t, err)
	require.Equal(t, vgimg.DefaultDPI, img.Bounds().Dx())
}

func TestFormatFromPath(t *testing.T) {
	f, err := FormatFromPath("out/Figure.PNG")
	require.NoError(t, err)
	require.Equal(t, "png", f)

	_, err = FormatFromPath("figure")
	require.Error(t, err)
}

func TestEqualAspect(t *testing.T) {
	for _, b := range []quiver.Bounds{
		{XMin: -1, XMax: 4, YMin: -1, YMax: 5},
		{XMin: -10, XMax: 10, YMin: -1, YMax: 2},
		{XMin: -1, XMax: 2, YMin: -8, YMax: 8},
	} {
		p := Plot(quiver.Panel{Title: "p", Bounds: b})
		c := draw.New(vgimg.New(5*vg.Inch, 4*vg.Inch))
		da := p.DataCanvas(EqualAspect(p, c, b))
		xUnit := float64(da.Max.X-da.Min.X) / b.Width()
		yUnit := float64(da.Max.Y-da.Min.Y) / b.Height()
		require.InDelta(t, xUnit, yUnit, 1e-6*math.Max(xUnit, yUnit), "%+v", b)
	}
}

func TestArrowsDataRange(t *testing.T) {
	fig, err := quiver.DefaultRenderer.Single(vectors)
	require.NoError(t, err)
	xmin, xmax, ymin, ymax := NewArrows(fig.Panels[0].Arrows).DataRange()
	require.Equal(t, []float64{-2, 3, 0, 4}, []float64{xmin, xmax, ymin, ymax})
}
