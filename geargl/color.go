package geargl

import (
	"image/color"
	"math"
)

// Color is an RGBA color in 8-bit channels.
type Color struct {
	R, G, B, A uint8
}

func RGB(r, g, b uint8) Color     { return Color{R: r, G: g, B: b, A: 0xFF} }
func RGBA(r, g, b, a uint8) Color { return Color{R: r, G: g, B: b, A: a} }

// RGBA converts c to the alpha-premultiplied image/color form.
func (c Color) RGBA() color.RGBA {
	if c.A == 0xFF {
		return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
	}
	mul := func(ch uint8) uint8 { return uint8(uint32(ch) * uint32(c.A) / 0xFF) }
	return color.RGBA{R: mul(c.R), G: mul(c.G), B: mul(c.B), A: c.A}
}

// ColorVec returns an opaque face color with components in [0, 1].
func ColorVec(r, g, b Scalar) Vec4 { return Vec4{X: r, Y: g, Z: b, W: 1} }

// channel maps a [0, 1] intensity to 0..255, rounding to nearest.
func channel(v Scalar) uint8 {
	x := v * 255
	switch {
	case !(x > 0):
		return 0
	case x > 255:
		return 255
	default:
		return uint8(math.Round(x))
	}
}
