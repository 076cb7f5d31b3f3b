package app

import (
	"fmt"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"github.com/jdougu/canvas-gears/geargl"
	"github.com/jdougu/canvas-gears/hal"
)

// PanicError is returned in place of a panic raised inside a frame step.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string { return fmt.Sprintf("gears panic: %v", e.Value) }

const (
	panicLineHeight = 16
	panicCharWidth  = 6
)

// guard runs step and converts a panic into a *PanicError. The panic and its
// stack go to the logger and, best effort, onto the surface.
func guard(h hal.HAL, step func() error) func() error {
	return func() (err error) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			pe := &PanicError{Value: v, Stack: debug.Stack()}
			reportPanic(h, pe)
			err = pe
		}()
		return step()
	}
}

func reportPanic(h hal.HAL, pe *PanicError) {
	lines := []string{pe.Error()}
	for _, line := range strings.Split(string(pe.Stack), "\n") {
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}

	if l := h.Logger(); l != nil {
		for _, line := range lines {
			l.WriteLineString(line)
		}
	}

	disp := h.Display()
	if disp == nil {
		return
	}
	surf := disp.Surface()
	if surf == nil {
		return
	}
	defer func() { _ = recover() }()

	w, ht := surf.Size()
	cols := w / panicCharWidth
	if cols <= 0 || ht < panicLineHeight {
		return
	}
	surf.Clear(geargl.RGB(255, 255, 255))
	fg := geargl.RGB(0, 0, 0)
	y := 0
	for _, line := range lines {
		for len(line) > 0 {
			if y+panicLineHeight > ht {
				_ = surf.Present()
				return
			}
			chunk, rest := takeRunes(line, cols)
			surf.Label(0, y, chunk, fg)
			y += panicLineHeight
			line = strings.TrimLeft(rest, " \t")
		}
	}
	_ = surf.Present()
}

func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if len(s) <= n {
		return s, ""
	}
	var i, count int
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
