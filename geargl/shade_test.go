package geargl

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func redFace() Face {
	return Face{
		Centroid: Point(0, 0, 0),
		Normal:   Dir(0, 0, 1),
		Color:    ColorVec(1, 0, 0),
	}
}

// lightAt places the light 10 units from the origin so that the raw Lambert
// dot product with +Z equals d.
func lightAt(d float64) Vec4 {
	return Scale(10, Dir(math.Sqrt(1-d*d), 0, d))
}

func TestShadeFacingLightClamps(t *testing.T) {
	assert.Equal(t, RGB(255, 0, 0), Shade(redFace(), Point(0, 0, 10)))
}

func TestShadeBackLitIsAmbientOnly(t *testing.T) {
	assert.Equal(t, RGB(51, 0, 0), Shade(redFace(), Point(0, 0, -10)))
	assert.Equal(t, RGB(51, 0, 0), Shade(redFace(), Point(10, 0, 0)))
}

func TestShadeClampBoundary(t *testing.T) {
	// Ambient 0.2 plus doubled diffuse reaches 1 at a raw dot of 0.4.
	assert.Equal(t, RGB(254, 0, 0), Shade(redFace(), lightAt(0.4-1e-3)))
	assert.Equal(t, RGB(255, 0, 0), Shade(redFace(), lightAt(0.4+1e-3)))

	// Past the ambient-adjusted boundary the channel stays clamped.
	assert.Equal(t, RGB(255, 0, 0), Shade(redFace(), lightAt(0.5-1e-6)))
	assert.Equal(t, RGB(255, 0, 0), Shade(redFace(), lightAt(0.5+1e-6)))
}

func TestShadeMidRange(t *testing.T) {
	// 0.2 + 2·0.25 = 0.7 → 178.5 rounds half away from zero.
	got := Shade(redFace(), lightAt(0.25))
	assert.InDelta(t, 178.5, float64(got.R), 0.5)
	assert.Zero(t, got.G)
	assert.Zero(t, got.B)
	assert.Equal(t, uint8(0xFF), got.A)
}

func TestShadeUsesDirectionOnly(t *testing.T) {
	f := redFace()
	f.Normal = Dir(0, 0, 7)
	f.Centroid = Point(1, 1, 1)
	// Light W does not matter: subtraction drops it.
	a := Shade(f, Point(1, 1, 2))
	b := Shade(f, Vec4{X: 1, Y: 1, Z: 2, W: 0})
	assert.Equal(t, a, b)
	assert.Equal(t, RGB(255, 0, 0), a)
}

func TestChannel(t *testing.T) {
	assert.Equal(t, uint8(0), channel(-0.5))
	assert.Equal(t, uint8(0), channel(math.NaN()))
	assert.Equal(t, uint8(255), channel(1.01))
	assert.Equal(t, uint8(128), channel(0.5))
	assert.Equal(t, uint8(26), channel(0.1))
}
