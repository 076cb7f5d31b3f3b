package geargl

import (
	"errors"
	"fmt"
	"math"
)

// GearSpec describes a spur gear centered on the origin with its axis along Z.
type GearSpec struct {
	InnerRadius Scalar
	OuterRadius Scalar
	Width       Scalar
	Teeth       int
	ToothDepth  Scalar
	Color       Vec4
}

// Validate checks the preconditions BuildGear relies on.
func (s GearSpec) Validate() error {
	var errs []error
	if !(s.InnerRadius > 0) {
		errs = append(errs, fmt.Errorf("inner radius %v must be positive", s.InnerRadius))
	}
	if root := s.OuterRadius - s.ToothDepth/2; !(s.InnerRadius < root) {
		errs = append(errs, fmt.Errorf("inner radius %v must be below the tooth root %v", s.InnerRadius, root))
	}
	if !(s.Width > 0) {
		errs = append(errs, fmt.Errorf("width %v must be positive", s.Width))
	}
	if s.Teeth < 3 {
		errs = append(errs, fmt.Errorf("teeth %d must be at least 3", s.Teeth))
	}
	if !(s.ToothDepth >= 0) {
		errs = append(errs, fmt.Errorf("tooth depth %v must not be negative", s.ToothDepth))
	}
	return errors.Join(errs...)
}

// FaceCount returns len(BuildGear(s)) for a gear with the given tooth count.
//
// Every tooth contributes four rim points and therefore four profile quads,
// plus one bore quad.
func FaceCount(teeth int) int { return 2 + teeth + 4*teeth }

// BuildGear tessellates a gear into planar faces, in order: the upper annulus,
// the lower annulus, one bore quad per tooth, then four tooth-profile quads per
// tooth. The result is deterministic and shares no slices with later calls.
func BuildGear(s GearSpec) []Face {
	r0 := s.InnerRadius
	r1 := s.OuterRadius - s.ToothDepth/2
	r2 := s.OuterRadius + s.ToothDepth/2
	dTheta := 2 * math.Pi / Scalar(s.Teeth) / 4
	z := s.Width / 2

	at := func(r, theta Scalar) Vec4 { return Point(r*math.Cos(theta), r*math.Sin(theta), z) }

	outer := make([]Vec4, 0, 4*s.Teeth)
	inner := make([]Vec4, 0, s.Teeth)
	for i := 0; i < s.Teeth; i++ {
		theta := Scalar(i) * 2 * math.Pi / Scalar(s.Teeth)
		outer = append(outer,
			at(r1, theta),
			at(r2, theta+dTheta),
			at(r2, theta+2*dTheta),
			at(r1, theta+3*dTheta),
		)
		inner = append(inner, at(r0, theta))
	}

	// The rim runs clockwise seen from +Z. Opposite winding to the bore lets the
	// fill rule punch the hole, and turns the profile quad normals outward.
	rim := reversed(outer)

	upper := Face{
		Centroid: Vec4{Z: z},
		Normal:   Dir(0, 0, 1),
		Paths:    [][]Vec4{rim, inner},
		Color:    s.Color,
	}
	lower := TransformFace(upper, Mat4ReflectZ())

	faces := make([]Face, 0, FaceCount(s.Teeth))
	faces = append(faces, upper, lower)
	faces = appendRing(faces, inner, s.Width, s.Color)
	faces = appendRing(faces, rim, s.Width, s.Color)
	return faces
}

// appendRing appends one side quad per edge of the closed ring.
func appendRing(faces []Face, ring []Vec4, width Scalar, color Vec4) []Face {
	for i := range ring {
		faces = append(faces, quad(ring[i], ring[(i+1)%len(ring)], width, color))
	}
	return faces
}

// quad extrudes the edge a→b across the gear width. The normal is the edge
// direction turned 90° counter-clockwise in the XY plane.
func quad(a, b Vec4, width Scalar, color Vec4) Face {
	h := width / 2
	return Face{
		Centroid: Point((a.X+b.X)/2, (a.Y+b.Y)/2, 0),
		Normal:   Normalize(Dir(-(b.Y - a.Y), b.X-a.X, 0)),
		Paths: [][]Vec4{{
			Point(a.X, a.Y, -h),
			Point(a.X, a.Y, h),
			Point(b.X, b.Y, h),
			Point(b.X, b.Y, -h),
		}},
		Color: color,
	}
}

// Gear is an immutable, pre-tessellated gear.
type Gear struct {
	spec  GearSpec
	faces []Face
}

// NewGear tessellates s once. The faces are shared by every frame and must not
// be modified; transforms always copy.
func NewGear(s GearSpec) *Gear {
	return &Gear{spec: s, faces: BuildGear(s)}
}

func (g *Gear) Spec() GearSpec { return g.spec }

// Faces returns the gear's faces in local space. The slice is read-only.
func (g *Gear) Faces() []Face { return g.faces }
