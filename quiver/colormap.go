package quiver

import (
	"fmt"
	"image/color"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
)

// DefaultColorMap is used when a Renderer names no color map.
const DefaultColorMap = "jet"

var colorMaps = map[string]func() palette.ColorMap{
	"jet":                NewJet,
	"blackbody":          moreland.BlackBody,
	"extended-blackbody": moreland.ExtendedBlackBody,
	"kindlmann":          moreland.Kindlmann,
	"extended-kindlmann": moreland.ExtendedKindlmann,
	"bluered":            func() palette.ColorMap { return moreland.SmoothBlueRed() },
	"purpleorange":       func() palette.ColorMap { return moreland.SmoothPurpleOrange() },
}

// ColorMapNames lists the accepted ColorMapByName arguments.
func ColorMapNames() []string {
	names := make([]string, 0, len(colorMaps))
	for n := range colorMaps {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ColorMapByName returns a fresh color map spanning [0,1]. An empty name
// selects DefaultColorMap.
func ColorMapByName(name string) (palette.ColorMap, error) {
	if name == "" {
		name = DefaultColorMap
	}
	mk, ok := colorMaps[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown color map %q, choose one of %s", name, strings.Join(ColorMapNames(), ", "))
	}
	cm := mk()
	cm.SetMax(1)
	cm.SetMin(0)
	return cm, nil
}

// Colors maps normalized values through cm. Values are clamped to the map's
// range first so rounding noise at the ends never fails the lookup.
func Colors(cm palette.ColorMap, normalized []float64) ([]color.Color, error) {
	cs := make([]color.Color, len(normalized))
	for i, v := range normalized {
		v = math.Max(cm.Min(), math.Min(cm.Max(), v))
		c, err := cm.At(v)
		if err != nil {
			return nil, fmt.Errorf("color for value %g: %w", v, err)
		}
		cs[i] = color.NRGBAModel.Convert(c)
	}
	return cs, nil
}

// Jet is the classic blue-cyan-yellow-red rainbow map.
type Jet struct {
	min, max float64
	alpha    float64
}

// NewJet returns a Jet map over [0,1].
func NewJet() palette.ColorMap {
	return &Jet{min: 0, max: 1, alpha: 1}
}

func (j *Jet) At(v float64) (color.Color, error) {
	switch {
	case math.IsNaN(v):
		return nil, palette.ErrNaN
	case v < j.min:
		return nil, palette.ErrUnderflow
	case v > j.max:
		return nil, palette.ErrOverflow
	}
	s := Degenerate
	if j.max > j.min {
		s = (v - j.min) / (j.max - j.min)
	}
	return color.NRGBA{
		R: channel(1.5 - math.Abs(4*s-3)),
		G: channel(1.5 - math.Abs(4*s-2)),
		B: channel(1.5 - math.Abs(4*s-1)),
		A: channel(j.alpha),
	}, nil
}

func channel(v float64) uint8 {
	return uint8(math.Round(255 * math.Max(0, math.Min(1, v))))
}

func (j *Jet) Max() float64     { return j.max }
func (j *Jet) SetMax(v float64) { j.max = v }
func (j *Jet) Min() float64     { return j.min }
func (j *Jet) SetMin(v float64) { j.min = v }
func (j *Jet) Alpha() float64   { return j.alpha }

func (j *Jet) SetAlpha(a float64) {
	if a < 0 || a > 1 {
		panic("quiver: jet alpha out of range")
	}
	j.alpha = a
}

func (j *Jet) Palette(n int) palette.Palette {
	cs := make(jetPalette, n)
	for i := range cs {
		v := j.min
		if n > 1 {
			v += float64(i) / float64(n-1) * (j.max - j.min)
		}
		v = math.Min(v, j.max)
		cs[i], _ = j.At(v)
	}
	return cs
}

type jetPalette []color.Color

func (p jetPalette) Colors() []color.Color { return p }
