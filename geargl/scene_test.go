package geargl

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func faceAt(z Scalar, normal Vec4) Face {
	return Face{
		Centroid: Point(0, 0, z),
		Normal:   normal,
		Paths:    [][]Vec4{{Point(0, 0, z), Point(1, 0, z), Point(0, 1, z)}},
		Color:    ColorVec(1, 1, 1),
	}
}

func TestCullOnNormalZ(t *testing.T) {
	toward := faceAt(1, Dir(0, 0, -1))
	away := faceAt(2, Dir(0, 0, 1))
	edgeOn := faceAt(3, Dir(1, 0, 0))
	withW := faceAt(4, Vec4{Z: -0.5, W: 9})

	kept := Cull([]Face{toward, away, edgeOn, withW})
	require.Len(t, kept, 2)
	assert.Equal(t, toward, kept[0])
	assert.Equal(t, withW, kept[1])
}

func TestSortBackToFront(t *testing.T) {
	faces := []Face{faceAt(3, Dir(0, 0, -1)), faceAt(1, Dir(0, 0, -1)), faceAt(2, Dir(0, 0, -1))}
	SortBackToFront(faces)
	var zs []Scalar
	for _, f := range faces {
		zs = append(zs, f.Centroid.Z)
	}
	assert.Equal(t, []Scalar{3, 2, 1}, zs)
}

func TestInstanceModelRotatesThenTranslates(t *testing.T) {
	in := Instance{Offset: Dir(1, 2, 3), Rate: 2, Phase: 0.5}
	got := Mat4MulV4(in.Model(1), Point(1, 0, 0))
	assertVecInDelta(t, Point(1+math.Cos(2.5), 2+math.Sin(2.5), 3), got, 1e-12)
}

func identityView() View {
	return View{Projection: Mat4Identity(), ModelView: Mat4Identity()}
}

func TestComposeSceneOrdersAndCulls(t *testing.T) {
	g := &Gear{faces: []Face{
		faceAt(3, Dir(0, 0, -1)),
		faceAt(1, Dir(0, 0, -1)),
		faceAt(5, Dir(0, 0, 1)),
		faceAt(2, Dir(0, 0, -1)),
	}}
	frame := ComposeScene([]Instance{{Gear: g}}, 0, identityView(), Point(5, 5, 10))

	require.Len(t, frame.Faces, 3)
	assert.Equal(t, Scalar(3), frame.Faces[0].Centroid.Z)
	assert.Equal(t, Scalar(2), frame.Faces[1].Centroid.Z)
	assert.Equal(t, Scalar(1), frame.Faces[2].Centroid.Z)
	assert.Equal(t, Point(5, 5, 10), frame.Light)
}

func TestComposeSceneConcatenatesInstances(t *testing.T) {
	g := &Gear{faces: []Face{faceAt(0, Dir(0, 0, -1))}}
	frame := ComposeScene([]Instance{
		{Gear: g, Offset: Dir(0, 0, 1)},
		{Gear: nil},
		{Gear: g, Offset: Dir(0, 0, 4)},
	}, 0, identityView(), Vec4{})

	require.Len(t, frame.Faces, 2)
	assert.Equal(t, Scalar(4), frame.Faces[0].Centroid.Z)
	assert.Equal(t, Scalar(1), frame.Faces[1].Centroid.Z)
}

func TestComposeSceneLightIgnoresCameraRotation(t *testing.T) {
	view := View{
		Projection: Mat4Frustum(-1, 1, -0.75, 0.75, 5, 60),
		ModelView:  Mat4Translate(0, 0, -40),
		Camera:     CameraState{Pitch: 0.35, Yaw: 0.52},
	}
	light := Dir(5, 5, 10)
	frame := ComposeScene(nil, 0, view, light)

	assert.Empty(t, frame.Faces)
	assert.Equal(t, Mat4MulV4(Mat4Mul(view.Projection, view.ModelView), light), frame.Light)
}

func TestComposeSceneGearIsUntouched(t *testing.T) {
	g := NewGear(testSpec)
	before := BuildGear(testSpec)
	view := View{
		Projection: ViewportFrustum(640, 480, 5, 60),
		ModelView:  Mat4Translate(0, 0, -40),
		Camera:     CameraState{Pitch: 0.3, Yaw: 0.5},
	}
	frame := ComposeScene([]Instance{{Gear: g, Offset: Dir(-3, -2, 0), Rate: 1}}, 1.7, view, Dir(5, 5, 10))

	require.NotEmpty(t, frame.Faces)
	assert.Equal(t, before, g.Faces())
	for i, f := range frame.Faces {
		assert.Less(t, Dot(f.Normal, Dir(0, 0, 1)), 0.0, "face %d", i)
		if i > 0 {
			assert.GreaterOrEqual(t, frame.Faces[i-1].Centroid.Z, f.Centroid.Z, "face %d", i)
		}
	}
}

func TestComposeSceneMatchesTwoStepTransform(t *testing.T) {
	g := NewGear(testSpec)
	in := Instance{Gear: g, Offset: Dir(3.1, -2, 0), Rate: -2, Phase: -9}
	view := View{
		Projection: ViewportFrustum(800, 600, 5, 60),
		ModelView:  Mat4Translate(0, 0, -40),
		Camera:     CameraState{Pitch: 20 * math.Pi / 180, Yaw: 30 * math.Pi / 180},
	}
	theta := 0.8

	var want []Face
	for _, f := range g.Faces() {
		want = append(want, TransformFace(TransformFace(f, in.Model(theta)), view.Transform()))
	}
	want = Cull(want)

	got := ComposeScene([]Instance{in}, theta, view, Dir(5, 5, 10)).Faces
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Centroid.Z, got[i].Centroid.Z, "face %d out of order", i)
	}

	byCentroid(want)
	byCentroid(got)
	require.Len(t, got, len(want))
	for i := range want {
		assertVecInDelta(t, want[i].Centroid, got[i].Centroid, 1e-9)
		assertVecInDelta(t, want[i].Normal, got[i].Normal, 1e-9)
		assert.Equal(t, want[i].Color, got[i].Color)
		require.Len(t, got[i].Paths, len(want[i].Paths))
		for j := range want[i].Paths {
			require.Len(t, got[i].Paths[j], len(want[i].Paths[j]))
			for k := range want[i].Paths[j] {
				assertVecInDelta(t, want[i].Paths[j][k], got[i].Paths[j][k], 1e-9)
			}
		}
	}
}

// byCentroid orders faces by centroid Z, then X, then Y, treating values
// within 1e-9 as equal.
func byCentroid(faces []Face) {
	const eps = 1e-9
	sort.Slice(faces, func(i, j int) bool {
		a, b := faces[i].Centroid, faces[j].Centroid
		switch {
		case math.Abs(a.Z-b.Z) > eps:
			return a.Z < b.Z
		case math.Abs(a.X-b.X) > eps:
			return a.X < b.X
		default:
			return a.Y < b.Y
		}
	})
}

func TestTransformFacesMapsEveryFace(t *testing.T) {
	faces := []Face{faceAt(1, Dir(0, 0, 1)), faceAt(2, Dir(0, 0, -1))}
	m := Mat4Translate(0, 0, 3)
	got := TransformFaces(faces, m)
	require.Len(t, got, 2)
	for i := range faces {
		assert.Equal(t, TransformFace(faces[i], m), got[i])
	}
	got[0].Paths[0][0] = Point(7, 7, 7)
	assert.Equal(t, Point(0, 0, 1), faces[0].Paths[0][0])
	assert.Empty(t, TransformFaces(nil, m))
}

func TestTransformFaceCopies(t *testing.T) {
	f := faceAt(1, Dir(0, 0, 1))
	g := TransformFace(f, Mat4Translate(1, 0, 0))
	g.Paths[0][0] = Point(9, 9, 9)

	assert.Equal(t, Point(0, 0, 1), f.Paths[0][0])
	assert.Equal(t, Point(1, 0, 1), g.Centroid)
	assert.Equal(t, Dir(0, 0, 1), g.Normal)
	assert.Equal(t, f.Color, g.Color)
}
