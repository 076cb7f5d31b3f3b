package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/jdougu/canvas-gears/geargl"
	"github.com/jdougu/canvas-gears/hal"
	"github.com/jdougu/canvas-gears/internal/buildinfo"
)

// ErrNoSurface is returned when the HAL has no drawing surface.
var ErrNoSurface = errors.New("no display surface")

var hudColor = geargl.RGB(0xE0, 0xE0, 0xE0)

// App animates the gear scene on a HAL surface, one frame per Step.
type App struct {
	h   hal.HAL
	cfg Config

	scene    []geargl.Instance
	light    geargl.Vec4
	ctl      *geargl.Controller
	renderer *geargl.Renderer

	width, height int
	projection    geargl.Mat4
	modelView     geargl.Mat4

	theta   float64
	last    time.Duration
	lastLog time.Duration
	frames  uint64
	drawn   int
	fps     fpsMeter
}

// New validates cfg and builds the scene. Gears are tessellated once here.
func New(h hal.HAL, cfg Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	r := geargl.NewRenderer()
	r.ClearColor = cfg.BackgroundColor()

	a := &App{
		h:         h,
		cfg:       cfg,
		scene:     cfg.Scene(),
		light:     cfg.LightPosition(),
		ctl:       cfg.Controller(),
		renderer:  r,
		modelView: geargl.Mat4Translate(0, 0, -cfg.Camera.Distance),
	}
	if t := h.Time(); t != nil {
		a.last = t.Elapsed()
		a.lastLog = a.last
	}
	hal.Logf(h.Logger(), "gears %s: %d instances, %d faces per frame before culling",
		buildinfo.Short(), len(a.scene), a.faceCount())
	return a, nil
}

// Factory returns a constructor in the shape the hal runners expect. A bad
// config surfaces as an error from the first step.
func Factory(cfg Config) func(hal.HAL) func() error {
	return func(h hal.HAL) func() error {
		a, err := New(h, cfg)
		if err != nil {
			return func() error { return err }
		}
		return guard(h, a.Step)
	}
}

// Step handles pending input, draws one frame at the current angle and then
// advances the angle by the elapsed time.
func (a *App) Step() error {
	surf := a.surface()
	if surf == nil {
		return ErrNoSurface
	}
	if err := a.handleInput(); err != nil {
		return err
	}

	var dt time.Duration
	if t := a.h.Time(); t != nil {
		now := t.Elapsed()
		dt = now - a.last
		a.last = now
	}

	if w, h := surf.Size(); w != a.width || h != a.height {
		a.resize(w, h)
	}

	view := geargl.View{
		Projection: a.projection,
		ModelView:  a.modelView,
		Camera:     a.ctl.State,
	}
	frame := geargl.ComposeScene(a.scene, a.theta, view, a.light)
	a.renderer.SetRenderMode(a.ctl.Mode())
	a.drawn = a.renderer.Render(surf, frame)

	a.fps.add(dt)
	if !a.cfg.HideHUD {
		a.drawHUD(surf)
	}
	if err := surf.Present(); err != nil {
		return fmt.Errorf("present frame %d: %w", a.frames, err)
	}

	a.frames++
	a.theta += dt.Seconds() * a.cfg.Speed
	a.logStats()
	return nil
}

// SetTheta moves the animation to angle theta, in radians.
func (a *App) SetTheta(theta float64) { a.theta = theta }

// DrawnFaces returns the number of polygons drawn by the last step.
func (a *App) DrawnFaces() int { return a.drawn }

// Theta returns the current animation angle in radians.
func (a *App) Theta() float64 { return a.theta }

// Camera returns the current camera orbit.
func (a *App) Camera() geargl.CameraState { return a.ctl.State }

func (a *App) Mode() geargl.RenderMode { return a.ctl.Mode() }

// Frames returns the number of frames presented so far.
func (a *App) Frames() uint64 { return a.frames }

func (a *App) surface() hal.Surface {
	d := a.h.Display()
	if d == nil {
		return nil
	}
	return d.Surface()
}

func (a *App) resize(w, h int) {
	a.width, a.height = w, h
	a.projection = geargl.ViewportFrustum(w, h, a.cfg.Camera.Near, a.cfg.Camera.Far)
	hal.Logf(a.h.Logger(), "viewport %dx%d", w, h)
}

func (a *App) handleInput() error {
	in := a.h.Input()
	if in == nil {
		return nil
	}
	if kbd := in.Keyboard(); kbd != nil {
		for {
			select {
			case ev := <-kbd.Events():
				if err := a.handleKey(ev); err != nil {
					return err
				}
				continue
			default:
			}
			break
		}
	}
	if ptr := in.Pointer(); ptr != nil {
		for {
			select {
			case ev := <-ptr.Events():
				a.handlePointer(ev)
				continue
			default:
			}
			break
		}
	}
	return nil
}

func (a *App) handleKey(ev hal.KeyEvent) error {
	if !ev.Press {
		return nil
	}
	switch ev.Code {
	case hal.KeyLeft:
		a.ctl.StepYaw(1)
	case hal.KeyRight:
		a.ctl.StepYaw(-1)
	case hal.KeyUp:
		a.ctl.StepPitch(1)
	case hal.KeyDown:
		a.ctl.StepPitch(-1)
	case hal.KeyEscape:
		return hal.ErrQuit
	case hal.KeyUnknown:
		switch ev.Rune {
		case 'w', 'W':
			a.ctl.ToggleWireframe()
			hal.Logf(a.h.Logger(), "render mode: %s", a.ctl.Mode())
		}
	}
	return nil
}

func (a *App) handlePointer(ev hal.PointerEvent) {
	x, y := float64(ev.X), float64(ev.Y)
	switch ev.Kind {
	case hal.PointerDown:
		a.ctl.PointerDown(x, y)
	case hal.PointerMove:
		a.ctl.PointerMove(x, y)
	case hal.PointerUp:
		a.ctl.PointerUp()
	}
}

func (a *App) drawHUD(surf hal.Surface) {
	surf.Label(4, 4, fmt.Sprintf("%d fps", a.fps.average()), hudColor)
	surf.Label(4, 20, a.ctl.Mode().String(), hudColor)
}

func (a *App) logStats() {
	if a.cfg.LogEvery < 0 {
		return
	}
	t := a.h.Time()
	if t == nil {
		return
	}
	now := t.Elapsed()
	if now-a.lastLog < time.Duration(a.cfg.LogEvery*float64(time.Second)) {
		return
	}
	a.lastLog = now
	hal.Logf(a.h.Logger(), "frame=%d fps=%d faces=%d mode=%s theta=%.3f",
		a.frames, a.fps.average(), a.drawn, a.ctl.Mode(), a.theta)
}

func (a *App) faceCount() int {
	n := 0
	for _, in := range a.scene {
		if in.Gear != nil {
			n += len(in.Gear.Faces())
		}
	}
	return n
}
