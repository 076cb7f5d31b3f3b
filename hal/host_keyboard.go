//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	repeatDelayTicks    = 30
	repeatIntervalTicks = 4
)

var arrowKeys = []struct {
	key  ebiten.Key
	code KeyCode
}{
	{ebiten.KeyArrowUp, KeyUp},
	{ebiten.KeyArrowDown, KeyDown},
	{ebiten.KeyArrowLeft, KeyLeft},
	{ebiten.KeyArrowRight, KeyRight},
}

func (k *hostKeyboard) poll() {
	for _, r := range ebiten.AppendInputChars(nil) {
		k.emit(KeyEvent{Press: true, Rune: r})
	}

	// Held arrows repeat like OS key repeat.
	for _, a := range arrowKeys {
		if repeating(inpututil.KeyPressDuration(a.key)) {
			k.emit(KeyEvent{Code: a.code, Press: true})
		}
		if inpututil.IsKeyJustReleased(a.key) {
			k.emit(KeyEvent{Code: a.code, Press: false})
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		k.emit(KeyEvent{Code: KeyEscape, Press: true})
	}
}

func repeating(d int) bool {
	if d == 1 {
		return true
	}
	return d >= repeatDelayTicks && (d-repeatDelayTicks)%repeatIntervalTicks == 0
}

func (p *hostPointer) poll() {
	x, y := ebiten.CursorPosition()
	p.update(ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft), x, y)
}
