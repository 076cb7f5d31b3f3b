package geargl

import "math"

// Scalar is the numeric type used by geargl math operations.
type Scalar = float64

// Vec4 is a homogeneous 4D vector.
//
// W=1 marks an affine point, W=0 a direction. Add, Sub, Scale and Normalize
// always produce W=0: their results are differences or directions.
type Vec4 struct {
	X, Y, Z, W Scalar
}

// Point returns the affine point (x, y, z, 1).
func Point(x, y, z Scalar) Vec4 { return Vec4{X: x, Y: y, Z: z, W: 1} }

// Dir returns the direction (x, y, z, 0).
func Dir(x, y, z Scalar) Vec4 { return Vec4{X: x, Y: y, Z: z} }

func Add(u, v Vec4) Vec4 { return Vec4{X: u.X + v.X, Y: u.Y + v.Y, Z: u.Z + v.Z} }
func Sub(u, v Vec4) Vec4 { return Vec4{X: u.X - v.X, Y: u.Y - v.Y, Z: u.Z - v.Z} }

func Scale(a Scalar, v Vec4) Vec4 { return Vec4{X: a * v.X, Y: a * v.Y, Z: a * v.Z} }

// Dot is the full four-component dot product. Unlike the other operations it
// reads W, so callers pick its meaning through the W of the inputs.
func Dot(u, v Vec4) Scalar { return u.X*v.X + u.Y*v.Y + u.Z*v.Z + u.W*v.W }

// Len3 returns the Euclidean length of (X, Y, Z).
func Len3(v Vec4) Scalar { return math.Hypot(math.Hypot(v.X, v.Y), v.Z) }

// Normalize scales (X, Y, Z) to unit length and clears W.
//
// v must have non-zero length; a zero vector yields NaN components.
func Normalize(v Vec4) Vec4 {
	l := Len3(v)
	return Vec4{X: v.X / l, Y: v.Y / l, Z: v.Z / l}
}

// IsFinite reports whether no component of v is NaN or infinite.
func (v Vec4) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z) && isFinite(v.W)
}

func isFinite(s Scalar) bool { return !math.IsNaN(s) && !math.IsInf(s, 0) }
