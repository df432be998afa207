package viewer

import (
	log "github.com/sirupsen/logrus"
)

const (
	minZoom = -3
	maxZoom = 3
)

// View tracks how the figure image sits in the window: a power-of-two zoom
// and a pan offset in window pixels.
type View struct {
	zoom   int
	dx, dy int32
}

func NewView() *View {
	return &View{}
}

// Scale zooms in for positive s and out for negative s, keeping the image
// point under (cx, cy) fixed.
func (this *View) Scale(s int32, cx, cy int32) {
	before := this.Factor()
	this.zoom += int(s)
	if this.zoom < minZoom {
		this.zoom = minZoom
	}
	if this.zoom > maxZoom {
		this.zoom = maxZoom
	}
	after := this.Factor()
	this.dx = cx - int32(float64(cx-this.dx)*after/before)
	this.dy = cy - int32(float64(cy-this.dy)*after/before)
	log.Tracef("Zoom: %v, offset: %v,%v\n", this.zoom, this.dx, this.dy)
}

// Shift pans the image by (dx, dy) window pixels.
func (this *View) Shift(dx, dy int32) {
	this.dx += dx
	this.dy += dy
}

// Reset returns to the unzoomed, unpanned view.
func (this *View) Reset() {
	this.zoom, this.dx, this.dy = 0, 0, 0
}

// Factor is the current magnification.
func (this *View) Factor() float64 {
	if this.zoom >= 0 {
		return float64(int(1) << this.zoom)
	}
	return 1 / float64(int(1)<<-this.zoom)
}

// Place returns where an image of size w x h is drawn.
func (this *View) Place(w, h int32) AreaRect {
	f := this.Factor()
	return AreaRect{this.dx, this.dy, int32(float64(w) * f), int32(float64(h) * f)}
}
