package geargl

// Pixel is a position in device pixels, origin top-left, y down.
type Pixel struct {
	X, Y float32
}

// ToDevice divides a clip-space point by W and maps it onto a w×h viewport.
// (0, 0, _, 1) lands on the exact viewport center.
func ToDevice(v Vec4, w, h int) Pixel {
	return Pixel{
		X: float32((v.X/v.W + 1) * Scalar(w) / 2),
		Y: float32((1 - v.Y/v.W) * Scalar(h) / 2),
	}
}

// Polygon is one shaded face in device space: every loop is closed and all
// loops are drawn as a single path.
type Polygon struct {
	Loops [][]Pixel
	Color Color
}

// Project shades each face of f and maps its loops onto a w×h viewport,
// preserving the painter's order. Faces with any non-finite coordinate are
// dropped.
func Project(f Frame, w, h int) []Polygon {
	out := make([]Polygon, 0, len(f.Faces))
	for _, face := range f.Faces {
		p, ok := projectFace(face, w, h)
		if !ok {
			continue
		}
		p.Color = Shade(face, f.Light)
		out = append(out, p)
	}
	return out
}

func projectFace(face Face, w, h int) (Polygon, bool) {
	if !face.Centroid.IsFinite() || !face.Normal.IsFinite() {
		return Polygon{}, false
	}
	loops := make([][]Pixel, 0, len(face.Paths))
	for _, path := range face.Paths {
		if len(path) == 0 {
			continue
		}
		loop := make([]Pixel, len(path))
		for i, v := range path {
			if !v.IsFinite() || v.W == 0 {
				return Polygon{}, false
			}
			loop[i] = ToDevice(v, w, h)
		}
		loops = append(loops, loop)
	}
	if len(loops) == 0 {
		return Polygon{}, false
	}
	return Polygon{Loops: loops}, true
}
