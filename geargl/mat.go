package geargl

import "math"

// Mat4 is a row-major 4x4 matrix: m[row*4+col].
//
// Matrices act on column vectors, so Mat4Mul(b, a) applies a first, then b.
type Mat4 [16]Scalar

func Mat4Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

func Mat4Mul(a, b Mat4) Mat4 {
	var out Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out[row*4+col] =
				a[row*4+0]*b[0*4+col] +
					a[row*4+1]*b[1*4+col] +
					a[row*4+2]*b[2*4+col] +
					a[row*4+3]*b[3*4+col]
		}
	}
	return out
}

// Mat4MulAll returns a · b · more[0] · more[1] ⋯.
// Applied to a vector, the rightmost matrix acts first.
func Mat4MulAll(a, b Mat4, more ...Mat4) Mat4 {
	out := Mat4Mul(a, b)
	for _, m := range more {
		out = Mat4Mul(out, m)
	}
	return out
}

// Mat4MulV4 applies m to the column vector v.
func Mat4MulV4(m Mat4, v Vec4) Vec4 {
	return Vec4{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z + m[3]*v.W,
		Y: m[4]*v.X + m[5]*v.Y + m[6]*v.Z + m[7]*v.W,
		Z: m[8]*v.X + m[9]*v.Y + m[10]*v.Z + m[11]*v.W,
		W: m[12]*v.X + m[13]*v.Y + m[14]*v.Z + m[15]*v.W,
	}
}

func Mat4Translate(x, y, z Scalar) Mat4 {
	m := Mat4Identity()
	m[3] = x
	m[7] = y
	m[11] = z
	return m
}

func Mat4Scale(x, y, z Scalar) Mat4 {
	m := Mat4Identity()
	m[0] = x
	m[5] = y
	m[10] = z
	return m
}

func Mat4RotateX(rad Scalar) Mat4 {
	c, s := math.Cos(rad), math.Sin(rad)
	return Mat4{
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	}
}

func Mat4RotateY(rad Scalar) Mat4 {
	c, s := math.Cos(rad), math.Sin(rad)
	return Mat4{
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// Mat4RotateZ rotates counter-clockwise about +Z: (1,0,0) goes to (cos, sin, 0).
func Mat4RotateZ(rad Scalar) Mat4 {
	c, s := math.Cos(rad), math.Sin(rad)
	return Mat4{
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mat4ReflectZ mirrors through the z=0 plane.
func Mat4ReflectZ() Mat4 { return Mat4Scale(1, 1, -1) }

// Mat4Frustum builds the off-axis perspective projection for the given view
// frustum. It requires 0 < near < far, left < right and bottom < top; other
// inputs give an undefined matrix.
func Mat4Frustum(left, right, bottom, top, near, far Scalar) Mat4 {
	return Mat4{
		2 * near / (right - left), 0, (right + left) / (right - left), 0,
		0, 2 * near / (top - bottom), (top + bottom) / (top - bottom), 0,
		0, 0, (near + far) / (near - far), 2 * near * far / (near - far),
		0, 0, -1, 0,
	}
}

// ViewportFrustum returns the projection for a w×h viewport: the frustum spans
// x in [-1, 1] at the near plane and keeps the viewport aspect on y.
func ViewportFrustum(w, h int, near, far Scalar) Mat4 {
	if w <= 0 || h <= 0 {
		w, h = 1, 1
	}
	r := Scalar(h) / Scalar(w)
	return Mat4Frustum(-1, 1, -r, r, near, far)
}
