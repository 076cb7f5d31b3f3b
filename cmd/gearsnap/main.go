// Command gearsnap renders one frame of the gear scene to a PNG file.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/jdougu/canvas-gears/app"
	"github.com/jdougu/canvas-gears/hal"
)

const defaultOutPath = "gears.png"

type options struct {
	configPath string
	outPath    string
	width      int
	height     int
	theta      float64
	wireframe  bool
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "Scene file (.toml, .yaml or .yml). Defaults to the built-in scene.")
	flag.StringVar(&opts.outPath, "out", defaultOutPath, "Output PNG path.")
	flag.IntVar(&opts.width, "w", 800, "Image width in pixels.")
	flag.IntVar(&opts.height, "h", 600, "Image height in pixels.")
	flag.Float64Var(&opts.theta, "theta", 0, "Animation angle in radians.")
	flag.BoolVar(&opts.wireframe, "wireframe", false, "Stroke outlines only.")
	flag.Parse()

	if opts.outPath == "" {
		fmt.Fprintln(os.Stderr, "error: -out is required")
		os.Exit(2)
	}
	if opts.width <= 0 || opts.height <= 0 {
		fmt.Fprintf(os.Stderr, "error: invalid size %dx%d\n", opts.width, opts.height)
		os.Exit(2)
	}

	n, err := run(opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	fmt.Printf("%s: %d faces\n", opts.outPath, n)
}

func run(opts options) (int, error) {
	cfg := app.DefaultConfig()
	if opts.configPath != "" {
		var err error
		if cfg, err = app.LoadConfig(opts.configPath); err != nil {
			return 0, err
		}
	}
	if opts.wireframe {
		cfg.Wireframe = true
	}

	surf, n, err := render(cfg, opts.width, opts.height, opts.theta)
	if err != nil {
		return 0, err
	}
	if err := surf.SavePNG(opts.outPath); err != nil {
		return 0, err
	}
	return n, nil
}

// render draws one frame of cfg at angle theta through the same step the
// window and headless runners use.
func render(cfg app.Config, w, h int, theta float64) (*hal.RasterSurface, int, error) {
	cfg.HideHUD = true
	surf := hal.NewRasterSurface(w, h)
	a, err := app.New(hal.New(surf, io.Discard), cfg)
	if err != nil {
		return nil, 0, err
	}
	a.SetTheta(theta)
	if err := a.Step(); err != nil {
		return nil, 0, fmt.Errorf("render frame: %w", err)
	}
	return surf, a.DrawnFaces(), nil
}
