package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"gonum.org/v1/plot/vg"

	"github.com/VictorDenisov/linalgplot/fibonacci"
	"github.com/VictorDenisov/linalgplot/htmlchart"
	"github.com/VictorDenisov/linalgplot/internal/viewer"
	"github.com/VictorDenisov/linalgplot/quiver"
	"github.com/VictorDenisov/linalgplot/raster"
)

func newApp() *cli.App {
	var logLevel string
	var verbose bool

	var matrixLiteral, transformLiteral, inputFile string
	var paletteName, outFile, format string
	var show bool
	var width, height float64

	var n int

	return &cli.App{
		Name:                 "linalg-plot",
		Usage:                "Plot 2D column vectors and their image under a linear transform",
		EnableBashCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "Logging level: trace, debug, info, warn, error",
				EnvVars:     []string{"LINALG_PLOT_LOG_LEVEL"},
				Value:       "info",
				Destination: &logLevel,
			},
			&cli.BoolFlag{
				Name:        "verbose",
				Aliases:     []string{"v"},
				Usage:       "Shorthand for --log-level debug",
				Destination: &verbose,
			},
		},
		Before: func(cCtx *cli.Context) error {
			level, err := log.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			if verbose && level < log.DebugLevel {
				level = log.DebugLevel
			}
			log.SetLevel(level)
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:    "vectors",
				Aliases: []string{"vec"},
				Usage:   "Draw the columns of a 2xN matrix, optionally next to their image under a 2x2 transform",
				Action: func(cCtx *cli.Context) error {
					if width <= 0 || height <= 0 {
						return fmt.Errorf("--width and --height must be positive, got %gx%g", width, height)
					}
					if outFile == "" && !show {
						return errors.New("nothing to do: set --out and/or --show")
					}
					m, t, err := loadMatrices(inputFile, matrixLiteral, transformLiteral)
					if err != nil {
						return err
					}
					w, h := vg.Length(width)*vg.Inch, vg.Length(height)*vg.Inch
					var surfaces quiver.Surfaces
					if outFile != "" {
						s, err := outputSurface(outFile, format, w, h)
						if err != nil {
							return err
						}
						surfaces = append(surfaces, s)
					}
					if show {
						title := "linalg-plot"
						if outFile != "" {
							title = filepath.Base(outFile)
						}
						surfaces = append(surfaces, viewer.New(viewer.Options{Title: title, Width: w, Height: h}))
					}
					return render(quiver.Renderer{ColorMap: paletteName}, surfaces, m, t)
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "matrix",
						Aliases:     []string{"m"},
						Usage:       "2xN matrix of column vectors, rows separated by ';', e.g. \"3,1; 4,0\"",
						Destination: &matrixLiteral,
					},
					&cli.StringFlag{
						Name:        "transform",
						Aliases:     []string{"t"},
						Usage:       "2x2 transform applied to the matrix, e.g. \"2,0; 0,2\"",
						Destination: &transformLiteral,
					},
					&cli.StringFlag{
						Name:        "input",
						Aliases:     []string{"i"},
						Usage:       "JSON file with \"matrix\" and optional \"transform\"; --matrix and --transform override it",
						Destination: &inputFile,
					},
					&cli.StringFlag{
						Name:        "palette",
						Aliases:     []string{"p"},
						Usage:       "Color map: " + strings.Join(quiver.ColorMapNames(), ", "),
						Value:       quiver.DefaultColorMap,
						Destination: &paletteName,
					},
					&cli.StringFlag{
						Name:        "out",
						Aliases:     []string{"o"},
						Usage:       "Output file; the extension picks the format (html, " + strings.Join(raster.Formats(), ", ") + ")",
						Destination: &outFile,
					},
					&cli.StringFlag{
						Name:        "format",
						Usage:       "Output format, overrides the --out extension",
						Destination: &format,
					},
					&cli.BoolFlag{
						Name:        "show",
						Aliases:     []string{"s"},
						Usage:       "Show the figure in a window",
						Destination: &show,
					},
					&cli.Float64Flag{
						Name:        "width",
						Usage:       "Panel width in inches",
						Value:       6,
						Destination: &width,
					},
					&cli.Float64Flag{
						Name:        "height",
						Usage:       "Panel height in inches",
						Value:       6,
						Destination: &height,
					},
				},
			},
			{
				Name:    "fib",
				Aliases: []string{"f"},
				Usage:   "Print the n-th Fibonacci number",
				Action: func(cCtx *cli.Context) error {
					log.Debugf("Computing fib(%d)\n", n)
					r, err := fibonacci.Fib(n)
					if err != nil {
						return err
					}
					fmt.Fprintf(cCtx.App.Writer, "The %d-th Fibonacci number is %d\n", n, r)
					return nil
				},
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:        "n",
						Usage:       "Index of the Fibonacci number, n >= 1",
						Destination: &n,
						Required:    true,
					},
				},
			},
		},
	}
}

func loadMatrices(inputFile, matrixLiteral, transformLiteral string) (m, t *quiver.Matrix, err error) {
	if inputFile != "" {
		f, err := os.Open(inputFile)
		if err != nil {
			return nil, nil, err
		}
		defer f.Close()
		if m, t, err = quiver.ReadInput(f); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", inputFile, err)
		}
	}
	if matrixLiteral != "" {
		if m, err = quiver.ParseMatrix(matrixLiteral); err != nil {
			return nil, nil, fmt.Errorf("--matrix: %w", err)
		}
	}
	if transformLiteral != "" {
		if t, err = quiver.ParseMatrix(transformLiteral); err != nil {
			return nil, nil, fmt.Errorf("--transform: %w", err)
		}
	}
	if m == nil {
		return nil, nil, errors.New("no matrix given: use --matrix or --input")
	}
	log.Debugf("Matrix:\n%v\n", m)
	return m, t, nil
}

func render(r quiver.Renderer, s quiver.Surface, m, t *quiver.Matrix) error {
	if t == nil {
		return r.RenderSingle(s, m)
	}
	log.Debugf("Transform:\n%v\n", t)
	return r.RenderWithTransform(s, m, t)
}

// outputSurface picks the file surface for path. The format, or else the
// extension of path, selects between HTML and the raster formats.
func outputSurface(path, format string, w, h vg.Length) (quiver.Surface, error) {
	if format == "" {
		format = strings.TrimPrefix(filepath.Ext(path), ".")
	}
	switch strings.ToLower(format) {
	case "html", "htm":
		return htmlchart.NewFile(path), nil
	}
	f, err := raster.NewFile(path, format)
	if err != nil {
		return nil, err
	}
	f.Width, f.Height = w, h
	return f, nil
}
