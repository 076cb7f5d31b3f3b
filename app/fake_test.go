package app

import (
	"time"

	"github.com/jdougu/canvas-gears/geargl"
	"github.com/jdougu/canvas-gears/hal"
)

type fakeSurface struct {
	w, h     int
	clears   int
	polys    int
	modes    []geargl.RenderMode
	labels   []string
	presents int
	panicOn  bool
}

func (s *fakeSurface) Size() (int, int)   { return s.w, s.h }
func (s *fakeSurface) Clear(geargl.Color) { s.clears++ }
func (s *fakeSurface) Present() error     { s.presents++; return nil }
func (s *fakeSurface) Label(_, _ int, str string, _ geargl.Color) {
	s.labels = append(s.labels, str)
}

func (s *fakeSurface) Polygon(_ [][]geargl.Pixel, _ geargl.Color, m geargl.RenderMode) {
	if s.panicOn {
		panic("polygon exploded")
	}
	s.polys++
	s.modes = append(s.modes, m)
}

type fakeLogger struct{ lines []string }

func (l *fakeLogger) WriteLineString(s string) { l.lines = append(l.lines, s) }
func (l *fakeLogger) WriteLineBytes(b []byte)  { l.lines = append(l.lines, string(b)) }

type fakeClock struct{ now time.Duration }

func (c *fakeClock) Elapsed() time.Duration { return c.now }

type fakeKeyboard struct{ ch chan hal.KeyEvent }

func (k fakeKeyboard) Events() <-chan hal.KeyEvent { return k.ch }

type fakePointer struct{ ch chan hal.PointerEvent }

func (p fakePointer) Events() <-chan hal.PointerEvent { return p.ch }

type fakeDisplay struct{ s hal.Surface }

func (d fakeDisplay) Surface() hal.Surface { return d.s }

type fakeInput struct {
	k fakeKeyboard
	p fakePointer
}

func (in fakeInput) Keyboard() hal.Keyboard { return in.k }
func (in fakeInput) Pointer() hal.Pointer   { return in.p }

type fakeHAL struct {
	surf  *fakeSurface
	log   *fakeLogger
	clock *fakeClock
	in    fakeInput

	noDisplay bool
}

func newFakeHAL(w, h int) *fakeHAL {
	return &fakeHAL{
		surf:  &fakeSurface{w: w, h: h},
		log:   &fakeLogger{},
		clock: &fakeClock{},
		in: fakeInput{
			k: fakeKeyboard{ch: make(chan hal.KeyEvent, 16)},
			p: fakePointer{ch: make(chan hal.PointerEvent, 16)},
		},
	}
}

func (f *fakeHAL) Logger() hal.Logger { return f.log }
func (f *fakeHAL) Display() hal.Display {
	if f.noDisplay {
		return nil
	}
	return fakeDisplay{s: f.surf}
}
func (f *fakeHAL) Input() hal.Input { return f.in }
func (f *fakeHAL) Time() hal.Time   { return f.clock }

func (f *fakeHAL) key(code hal.KeyCode) {
	f.in.k.ch <- hal.KeyEvent{Code: code, Press: true}
}

func (f *fakeHAL) char(r rune) {
	f.in.k.ch <- hal.KeyEvent{Press: true, Rune: r}
}

func (f *fakeHAL) pointer(kind hal.PointerKind, x, y int) {
	f.in.p.ch <- hal.PointerEvent{Kind: kind, X: x, Y: y}
}
