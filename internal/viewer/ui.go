// Package viewer shows rendered figures in an SDL window.
package viewer

import (
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"
	"gonum.org/v1/plot/vg"

	"github.com/VictorDenisov/linalgplot/quiver"
	"github.com/VictorDenisov/linalgplot/raster"
)

const (
	fps = 60

	colorBarCells = 128
)

// Options size the figure image in the window.
type Options struct {
	Title  string
	Width  vg.Length
	Height vg.Length
}

// Surface shows every figure it draws in a window and returns once the
// window is closed. Zero Options fields take their defaults.
type Surface struct {
	Options
}

func New(o Options) *Surface {
	return &Surface{o}
}

func (o Options) withDefaults() Options {
	if o.Width == 0 {
		o.Width = raster.DefaultWidth
	}
	if o.Height == 0 {
		o.Height = raster.DefaultHeight
	}
	if o.Title == "" {
		o.Title = "linalg-plot"
	}
	return o
}

// Draw implements quiver.Surface.
func (s *Surface) Draw(fig *quiver.Figure) error {
	return Show(fig, s.Options)
}

// Show renders fig and blocks until its window is closed.
func Show(fig *quiver.Figure, o Options) error {
	o = o.withDefaults()
	cm, err := quiver.ColorMapByName(fig.ColorMap)
	if err != nil {
		return err
	}
	img, err := raster.Image(fig, o.Width, o.Height)
	if err != nil {
		return err
	}

	var runErr error
	done := make(chan struct{})
	renderLoopComplete := make(chan struct{})
	sdl.Main(func() {
		sdl.Do(func() {
			runErr = sdl.Init(sdl.INIT_VIDEO)
		})
		if runErr != nil {
			return
		}
		defer sdl.Do(func() { sdl.Quit() })

		var fw *FigureWindow
		sdl.Do(func() {
			fw, runErr = newFigureWindow(o.Title, img, NewColorBar(cm, colorBarCells))
		})
		if runErr != nil {
			return
		}
		defer sdl.Do(func() { fw.Destroy() })

		go renderLoop(fw, done, renderLoopComplete)
		eventLoop(fw, done)
		log.Debug("Waiting for render loop")
		<-renderLoopComplete
	})
	return runErr
}

func eventLoop(fw *FigureWindow, done chan struct{}) {
	for {
		var event sdl.Event
		sdl.Do(func() {
			event = sdl.WaitEventTimeout(1000 / fps)
		})
		for event != nil {
			quit := false
			switch event.(type) {
			case *sdl.QuitEvent:
				quit = true
			default:
				sdl.Do(func() {
					quit = fw.handleEvent(event)
				})
			}
			if quit {
				log.Debug("Quit")
				close(done)
				return
			}
			sdl.Do(func() {
				event = sdl.PollEvent()
			})
		}
	}
}

func renderLoop(fw *FigureWindow, done, complete chan struct{}) {
	ticker := time.NewTicker(1000 / fps * time.Millisecond)
	defer ticker.Stop()
outer:
	for {
		select {
		case <-ticker.C:
			sdl.Do(func() { fw.Render() })
		case <-done:
			break outer
		}
	}
	complete <- struct{}{}
}
