//go:build cgo

package hal

import (
	"errors"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jdougu/canvas-gears/internal/buildinfo"
)

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Width  int
	Height int
	TPS    int
}

// RunWindow opens a resizable desktop window, forwards keyboard and pointer
// input and draws whatever the app presents. It blocks until the window closes
// or the step function returns an error.
func RunWindow(newApp func(HAL) func() error, cfg WindowConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = 800, 600
	}
	if cfg.TPS <= 0 {
		cfg.TPS = 60
	}

	surf := newEbitenSurface(cfg.Width, cfg.Height)
	h := newHost(surf, os.Stdout)
	step := newApp(h)

	g := &hostGame{h: h, surf: surf, step: step}
	ebiten.SetWindowTitle("Gears (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ErrQuit) {
		return err
	}
	return nil
}

type hostGame struct {
	h    *hostHAL
	surf *ebitenSurface
	step func() error
}

func (g *hostGame) Update() error {
	g.h.kbd.poll()
	g.h.ptr.poll()
	g.h.t.step()
	if g.step != nil {
		if err := g.step(); err != nil {
			if errors.Is(err, ErrQuit) {
				return ebiten.Termination
			}
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	g.surf.draw(screen)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.surf.resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
