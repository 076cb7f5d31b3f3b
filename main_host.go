package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/jdougu/canvas-gears/app"
	"github.com/jdougu/canvas-gears/hal"
	"github.com/jdougu/canvas-gears/internal/buildinfo"
)

func main() {
	var cfg hal.HeadlessConfig
	var configPath string
	var wireframe, version bool
	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 60, "Tick rate (window TPS or headless rate).")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.IntVar(&cfg.Width, "width", 800, "Surface width in pixels.")
	flag.IntVar(&cfg.Height, "height", 600, "Surface height in pixels.")
	flag.StringVar(&cfg.Snapshot, "snapshot", "", "PNG written when a headless run ends.")
	flag.Uint64Var(&cfg.SnapshotEvery, "snapshot-every", 0, "Also write a numbered PNG every N headless ticks.")
	flag.StringVar(&configPath, "config", "", "Scene file (.toml, .yaml or .yml).")
	flag.BoolVar(&wireframe, "wireframe", false, "Start in wireframe mode.")
	flag.BoolVar(&version, "version", false, "Print version and exit.")
	flag.Parse()

	if version {
		fmt.Println(buildinfo.Long())
		return
	}

	scene := app.DefaultConfig()
	if configPath != "" {
		var err error
		if scene, err = app.LoadConfig(configPath); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
	}
	if wireframe {
		scene.Wireframe = true
	}
	newApp := app.Factory(scene)

	if cfg.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, cfg); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(newApp, hal.WindowConfig{
		Width:  cfg.Width,
		Height: cfg.Height,
		TPS:    cfg.Hz,
	}); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
