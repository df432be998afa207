package viewer

import (
	"fmt"
	"image"
	"image/draw"
	"unsafe"

	log "github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"
)

type WindowSize struct {
	Width, Height int32
}

type AreaRect struct {
	// upper left corner coordinates and width and height
	x, y, w, h int32
}

// FigureWindow is an SDL window showing one rendered figure above its color bar.
type FigureWindow struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	windowSize WindowSize
	imageSize  WindowSize

	leftMouseButtonDown bool

	view     *View
	colorBar *ColorBar
}

func newFigureWindow(title string, img image.Image, colorBar *ColorBar) (*FigureWindow, error) {
	rgba := toRGBA(img)
	w, h := int32(rgba.Rect.Dx()), int32(rgba.Rect.Dy())
	size := WindowSize{w, h + colorBarHeight}

	window, err := sdl.CreateWindow(title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		size.Width, size.Height, sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE)
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}
	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		window.Destroy()
		return nil, fmt.Errorf("creating renderer: %w", err)
	}
	// Pixel masks assume a little-endian host, matching image.RGBA's byte order.
	surface, err := sdl.CreateRGBSurfaceFrom(unsafe.Pointer(&rgba.Pix[0]), w, h, 32, rgba.Stride,
		0x000000ff, 0x0000ff00, 0x00ff0000, 0xff000000)
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		return nil, fmt.Errorf("creating surface: %w", err)
	}
	defer surface.Free()
	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		return nil, fmt.Errorf("creating texture: %w", err)
	}

	fw := &FigureWindow{
		window:     window,
		renderer:   renderer,
		texture:    texture,
		windowSize: size,
		imageSize:  WindowSize{w, h},
		view:       NewView(),
		colorBar:   colorBar,
	}
	fw.layout()
	return fw, nil
}

func (this *FigureWindow) layout() {
	this.colorBar.area = AreaRect{0, this.windowSize.Height - colorBarHeight, this.windowSize.Width, colorBarHeight}
}

// handleEvent returns true when the window should close.
func (this *FigureWindow) handleEvent(event sdl.Event) bool {
	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		if e.Type == sdl.KEYDOWN {
			switch e.Keysym.Sym {
			case sdl.K_ESCAPE, sdl.K_q:
				return true
			case sdl.K_0:
				this.view.Reset()
			}
		}
	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_RESIZED {
			this.windowSize.Width = e.Data1
			this.windowSize.Height = e.Data2
			this.layout()
		}
	case *sdl.MouseMotionEvent:
		if this.leftMouseButtonDown {
			this.view.Shift(e.XRel, e.YRel)
		}
	case *sdl.MouseWheelEvent:
		mx, my, _ := sdl.GetMouseState()
		this.view.Scale(e.Y, mx, my)
	case *sdl.MouseButtonEvent:
		if e.Button == sdl.BUTTON_LEFT {
			this.leftMouseButtonDown = e.Type == sdl.MOUSEBUTTONDOWN
		}
	}
	return false
}

func (this *FigureWindow) Render() {
	this.renderer.SetDrawColor(255, 255, 255, 255)
	this.renderer.Clear()

	place := this.view.Place(this.imageSize.Width, this.imageSize.Height)
	if err := this.renderer.Copy(this.texture, nil, &sdl.Rect{place.x, place.y, place.w, place.h}); err != nil {
		log.Debugf("Copy failed: %v\n", err)
	}
	this.colorBar.Draw(this.renderer)

	this.renderer.Present()
}

func (this *FigureWindow) Destroy() {
	this.texture.Destroy()
	this.renderer.Destroy()
	this.window.Destroy()
}

// toRGBA returns img as an *image.RGBA whose bounds start at the origin.
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Rect, img, b.Min, draw.Src)
	return rgba
}
