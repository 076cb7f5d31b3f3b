package geargl

import "sort"

// Instance places a gear in the world.
//
// The gear spins about its own Z axis by Rate·θ+Phase radians and is then moved
// by Offset.
type Instance struct {
	Gear   *Gear
	Offset Vec4
	Rate   Scalar
	Phase  Scalar
}

// Model returns translate(Offset) · rotateZ(Rate·θ+Phase).
func (in Instance) Model(theta Scalar) Mat4 {
	return Mat4Mul(
		Mat4Translate(in.Offset.X, in.Offset.Y, in.Offset.Z),
		Mat4RotateZ(in.Rate*theta+in.Phase),
	)
}

// CameraState is the orbit of the view around the scene, in radians.
type CameraState struct {
	Pitch Scalar
	Yaw   Scalar
}

// View holds the per-frame camera matrices.
type View struct {
	Projection Mat4
	ModelView  Mat4
	Camera     CameraState
}

// Transform returns Projection · ModelView · RotateX(Pitch) · RotateY(Yaw),
// the matrix applied to every scene face.
func (v View) Transform() Mat4 {
	return Mat4MulAll(
		v.Projection,
		v.ModelView,
		Mat4RotateX(v.Camera.Pitch),
		Mat4RotateY(v.Camera.Yaw),
	)
}

// Rig returns Projection · ModelView. The light is fixed to the untilted rig,
// so it ignores pitch and yaw.
func (v View) Rig() Mat4 { return Mat4Mul(v.Projection, v.ModelView) }

// Frame is one composed scene, ready for shading.
type Frame struct {
	// Faces are in clip space, front-facing only, ordered back to front.
	Faces []Face
	// Light is the light position in clip space.
	Light Vec4
}

// ComposeScene places every instance at angle theta, applies the view, culls
// back faces and sorts the rest back to front.
func ComposeScene(instances []Instance, theta Scalar, view View, light Vec4) Frame {
	n := 0
	for _, in := range instances {
		if in.Gear != nil {
			n += len(in.Gear.Faces())
		}
	}

	a := view.Transform()
	faces := make([]Face, 0, n)
	for _, in := range instances {
		if in.Gear == nil {
			continue
		}
		faces = append(faces, TransformFaces(in.Gear.Faces(), Mat4Mul(a, in.Model(theta)))...)
	}

	faces = Cull(faces)
	SortBackToFront(faces)
	return Frame{
		Faces: faces,
		Light: Mat4MulV4(view.Rig(), light),
	}
}

var viewAxis = Dir(0, 0, 1)

// Cull keeps the faces whose clip-space normal points toward the viewer,
// that is Dot(normal, +Z) < 0. It filters in place and returns the prefix.
func Cull(faces []Face) []Face {
	kept := faces[:0]
	for _, f := range faces {
		if Dot(f.Normal, viewAxis) < 0 {
			kept = append(kept, f)
		}
	}
	return kept
}

// SortBackToFront orders faces by descending centroid Z, without the
// perspective divide. Ties keep no particular order.
func SortBackToFront(faces []Face) {
	sort.Slice(faces, func(i, j int) bool {
		return faces[i].Centroid.Z > faces[j].Centroid.Z
	})
}
