package hal

import (
	"errors"
	"time"

	"github.com/jdougu/canvas-gears/geargl"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// ErrQuit is returned by a step function to end the run cleanly.
var ErrQuit = errors.New("quit")

// Surface is the 2D drawing surface frames are handed to.
//
// It accepts ordered polygon outlines with a fill/stroke color and rasterizes
// them; Label draws a short line of HUD text on top.
type Surface interface {
	geargl.Target
	Label(x, y int, s string, c geargl.Color)
	Present() error
}

// Display provides access to the drawing surface (if available).
type Display interface {
	Surface() Surface
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEscape
)

// KeyEvent is a keyboard event. Text input arrives with Code KeyUnknown and a
// non-zero Rune.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// PointerKind is the phase of a pointer event.
type PointerKind uint8

const (
	PointerDown PointerKind = iota + 1
	PointerMove
	PointerUp
)

// PointerEvent is a pointer event in surface pixels.
type PointerEvent struct {
	Kind PointerKind
	X, Y int
}

// Pointer provides pointer (mouse) events.
type Pointer interface {
	Events() <-chan PointerEvent
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
	Pointer() Pointer
}

// Time provides the animation clock.
//
// Elapsed grows monotonically from zero; the runner advances it once per tick.
type Time interface {
	Elapsed() time.Duration
}

// HAL provides the only contact point between the app and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
	Time() Time
}
