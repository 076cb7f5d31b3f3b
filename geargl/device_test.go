package geargl

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDeviceCenter(t *testing.T) {
	assert.Equal(t, Pixel{X: 400, Y: 300}, ToDevice(Point(0, 0, 0.3), 800, 600))
	assert.Equal(t, Pixel{X: 320, Y: 240}, ToDevice(Vec4{Z: -7, W: 1}, 640, 480))
}

func TestToDeviceCornersFlipY(t *testing.T) {
	assert.Equal(t, Pixel{X: 0, Y: 0}, ToDevice(Point(-1, 1, 0), 800, 600))
	assert.Equal(t, Pixel{X: 800, Y: 600}, ToDevice(Vec4{X: 2, Y: -2, W: 2}, 800, 600))
}

func TestProjectKeepsOrderAndShades(t *testing.T) {
	a := faceAt(2, Dir(0, 0, 1))
	b := faceAt(1, Dir(0, 0, 1))
	frame := Frame{Faces: []Face{a, b}, Light: Point(0, 0, 10)}

	polys := Project(frame, 100, 100)
	require.Len(t, polys, 2)
	assert.Equal(t, Shade(a, frame.Light), polys[0].Color)
	require.Len(t, polys[0].Loops, 1)
	assert.Equal(t, []Pixel{{50, 50}, {100, 50}, {50, 0}}, polys[0].Loops[0])
}

func TestProjectDropsNonFiniteFaces(t *testing.T) {
	good := faceAt(1, Dir(0, 0, 1))
	nan := faceAt(1, Dir(0, 0, 1))
	nan.Paths = [][]Vec4{{Point(math.NaN(), 0, 0), Point(1, 0, 0), Point(0, 1, 0)}}
	atInfinity := faceAt(1, Dir(0, 0, 1))
	atInfinity.Paths = [][]Vec4{{Dir(1, 0, 0), Point(1, 0, 0), Point(0, 1, 0)}}
	empty := faceAt(1, Dir(0, 0, 1))
	empty.Paths = nil

	polys := Project(Frame{Faces: []Face{nan, good, atInfinity, empty}, Light: Point(0, 0, 10)}, 10, 10)
	require.Len(t, polys, 1)
	assert.Len(t, polys[0].Loops[0], 3)
}
