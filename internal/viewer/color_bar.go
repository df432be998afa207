package viewer

import (
	"image/color"

	"github.com/veandco/go-sdl2/sdl"
	"gonum.org/v1/plot/palette"
)

const colorBarHeight = 24

// ColorBar shows the color map from the smallest to the largest magnitude
// along the bottom of the window.
type ColorBar struct {
	cells []color.NRGBA
	area  AreaRect
}

func NewColorBar(cm palette.ColorMap, cellCount int) *ColorBar {
	return &ColorBar{cells: barCells(cm, cellCount)}
}

// barCells samples cm evenly across its range.
func barCells(cm palette.ColorMap, n int) []color.NRGBA {
	cells := make([]color.NRGBA, 0, n)
	for i := 0; i < n; i++ {
		v := cm.Min()
		if n > 1 {
			v += (cm.Max() - cm.Min()) * float64(i) / float64(n-1)
		}
		if v > cm.Max() {
			v = cm.Max()
		}
		c, err := cm.At(v)
		if err != nil {
			continue
		}
		cells = append(cells, color.NRGBAModel.Convert(c).(color.NRGBA))
	}
	return cells
}

func (this *ColorBar) Draw(renderer *sdl.Renderer) {
	if len(this.cells) == 0 || this.area.w <= 0 {
		return
	}
	cellWidth := this.area.w / int32(len(this.cells))
	if cellWidth < 1 {
		cellWidth = 1
	}
	shift := (this.area.w - cellWidth*int32(len(this.cells))) / 2
	for i, c := range this.cells {
		rect := &sdl.Rect{this.area.x + shift + int32(i)*cellWidth, this.area.y, cellWidth, this.area.h}
		renderer.SetDrawColor(c.R, c.G, c.B, c.A)
		renderer.FillRect(rect)
	}
}
