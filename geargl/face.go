package geargl

// Face is the renderable unit: one or more closed loops lying in a plane.
//
// All loops of a face are drawn as a single path, so an annulus is stored as an
// outer loop plus an inner loop wound the other way.
type Face struct {
	// Centroid orders faces by depth. It is not used for shading interpolation.
	Centroid Vec4
	// Normal points outward (W=0).
	Normal Vec4
	Paths  [][]Vec4
	// Color is RGBA with components in [0, 1].
	Color Vec4
}

// TransformFace returns a copy of f with every point, the centroid and the
// normal transformed by m. f is left untouched.
func TransformFace(f Face, m Mat4) Face {
	paths := make([][]Vec4, len(f.Paths))
	for i, path := range f.Paths {
		out := make([]Vec4, len(path))
		for j, v := range path {
			out[j] = Mat4MulV4(m, v)
		}
		paths[i] = out
	}
	return Face{
		Centroid: Mat4MulV4(m, f.Centroid),
		Normal:   Mat4MulV4(m, f.Normal),
		Paths:    paths,
		Color:    f.Color,
	}
}

// TransformFaces maps TransformFace over faces into a new slice.
func TransformFaces(faces []Face, m Mat4) []Face {
	out := make([]Face, len(faces))
	for i := range faces {
		out[i] = TransformFace(faces[i], m)
	}
	return out
}

func reversed(path []Vec4) []Vec4 {
	out := make([]Vec4, len(path))
	for i, v := range path {
		out[len(path)-1-i] = v
	}
	return out
}
