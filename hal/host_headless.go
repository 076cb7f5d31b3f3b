package hal

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	Ticks   uint64
	Width   int
	Height  int

	// Snapshot is the PNG written when the run ends. Empty disables it.
	Snapshot string
	// SnapshotEvery additionally writes a numbered PNG every N ticks.
	SnapshotEvery uint64
}

// RunHeadless runs the app without opening a window. The clock advances by one
// tick period per step regardless of how late the ticker fires, so frames are
// reproducible.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = 800, 600
	}

	surf := NewRasterSurface(cfg.Width, cfg.Height)
	h := newHost(surf, os.Stdout)
	step := newApp(h)

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			if err := snapshot(surf, cfg.Snapshot); err != nil {
				return err
			}
			return ctx.Err()
		case <-t.C:
			h.t.advance(d)
			if step != nil {
				if err := step(); err != nil {
					if errors.Is(err, ErrQuit) {
						return snapshot(surf, cfg.Snapshot)
					}
					return err
				}
			}
			tick++
			if cfg.SnapshotEvery > 0 && tick%cfg.SnapshotEvery == 0 {
				if err := snapshot(surf, numberedPath(cfg.Snapshot, tick)); err != nil {
					return err
				}
			}
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return snapshot(surf, cfg.Snapshot)
			}
		}
	}
}

func snapshot(surf *RasterSurface, path string) error {
	if path == "" {
		return nil
	}
	return surf.SavePNG(path)
}

// numberedPath turns "out/frame.png" into "out/frame-000042.png".
func numberedPath(base string, tick uint64) string {
	if base == "" {
		base = "frame.png"
	}
	ext := filepath.Ext(base)
	return fmt.Sprintf("%s-%06d%s", strings.TrimSuffix(base, ext), tick, ext)
}
