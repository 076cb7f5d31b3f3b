package geargl

const (
	// Ambient is the fraction of the face color lit without the light.
	Ambient = 0.2
	// DiffuseGain scales the Lambert term.
	DiffuseGain = 2
)

// Shade returns the flat color of a clip-space face lit by a single point light
// at light (also in clip space). There is no specular term and no shadowing.
//
// The light must not sit exactly on the face centroid.
func Shade(f Face, light Vec4) Color {
	toLight := Normalize(Sub(light, f.Centroid))
	d := Dot(toLight, Normalize(f.Normal))
	if d < 0 {
		d = 0
	} else {
		d *= DiffuseGain
	}
	total := Add(Scale(Ambient, f.Color), Scale(d, f.Color))
	return RGB(channel(total.X), channel(total.Y), channel(total.Z))
}
