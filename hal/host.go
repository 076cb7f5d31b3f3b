package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
)

type hostHAL struct {
	logger *hostLogger
	surf   Surface
	kbd    *hostKeyboard
	ptr    *hostPointer
	t      *hostTime
}

// New returns a host HAL over surf with no input and a clock that stays at
// zero. Log lines go to logOut, or to stdout when it is nil.
func New(surf Surface, logOut io.Writer) HAL {
	if logOut == nil {
		logOut = os.Stdout
	}
	return newHost(surf, logOut)
}

func newHost(surf Surface, logOut io.Writer) *hostHAL {
	return &hostHAL{
		logger: &hostLogger{w: logOut},
		surf:   surf,
		kbd:    newHostKeyboard(),
		ptr:    newHostPointer(),
		t:      newHostTime(),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{surf: h.surf} }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd, ptr: h.ptr} }
func (h *hostHAL) Time() Time       { return h.t }

type hostDisplay struct {
	surf Surface
}

func (d hostDisplay) Surface() Surface { return d.surf }

type hostInput struct {
	kbd *hostKeyboard
	ptr *hostPointer
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }
func (in hostInput) Pointer() Pointer   { return in.ptr }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

// Logf formats a line and writes it to l. A nil logger discards it.
func Logf(l Logger, format string, args ...any) {
	if l == nil {
		return
	}
	l.WriteLineString(fmt.Sprintf(format, args...))
}

type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

func (k *hostKeyboard) emit(ev KeyEvent) {
	select {
	case k.ch <- ev:
	default:
	}
}

type hostPointer struct {
	ch chan PointerEvent

	down  bool
	lastX int
	lastY int
}

func newHostPointer() *hostPointer {
	return &hostPointer{ch: make(chan PointerEvent, 64)}
}

func (p *hostPointer) Events() <-chan PointerEvent { return p.ch }

// update turns a sampled button state and cursor position into events. Moves
// are only reported when the position changed.
func (p *hostPointer) update(pressed bool, x, y int) {
	emit := func(kind PointerKind) {
		select {
		case p.ch <- PointerEvent{Kind: kind, X: x, Y: y}:
		default:
		}
	}
	switch {
	case pressed && !p.down:
		emit(PointerDown)
	case !pressed && p.down:
		emit(PointerUp)
	case x != p.lastX || y != p.lastY:
		emit(PointerMove)
	}
	p.down = pressed
	p.lastX, p.lastY = x, y
}
