package quiver

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/palette"
)

func TestJetEnds(t *testing.T) {
	cm := NewJet()
	lo, err := cm.At(0)
	require.NoError(t, err)
	require.Equal(t, color.NRGBA{R: 0, G: 0, B: 128, A: 255}, lo)

	mid, err := cm.At(0.5)
	require.NoError(t, err)
	require.Equal(t, color.NRGBA{R: 128, G: 255, B: 128, A: 255}, mid)

	hi, err := cm.At(1)
	require.NoError(t, err)
	require.Equal(t, color.NRGBA{R: 128, G: 0, B: 0, A: 255}, hi)

	_, err = cm.At(1.5)
	require.ErrorIs(t, err, palette.ErrOverflow)
	_, err = cm.At(-0.1)
	require.ErrorIs(t, err, palette.ErrUnderflow)
}

func TestJetPalette(t *testing.T) {
	cs := NewJet().Palette(5).Colors()
	require.Len(t, cs, 5)
	for _, c := range cs {
		require.NotNil(t, c)
	}
}

func TestColorMapByName(t *testing.T) {
	for _, name := range ColorMapNames() {
		cm, err := ColorMapByName(name)
		require.NoError(t, err, name)
		cs, err := Colors(cm, []float64{0, 0.25, 0.5, 0.75, 1})
		require.NoError(t, err, name)
		require.Len(t, cs, 5)
	}

	cm, err := ColorMapByName("")
	require.NoError(t, err)
	require.IsType(t, &Jet{}, cm)

	_, err = ColorMapByName("viridis")
	require.ErrorContains(t, err, "viridis")
}
