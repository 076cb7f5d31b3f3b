package geargl

// Target is the drawing surface a Renderer hands polygons to.
//
// Implementations rasterize each call immediately or record it for later; they
// should clip out-of-bounds coordinates.
type Target interface {
	Size() (w, h int)
	Clear(c Color)
	// Polygon draws all loops as one path so inner loops wound against the
	// outer one become holes.
	Polygon(loops [][]Pixel, c Color, mode RenderMode)
}

// RenderMode selects how polygons are drawn.
type RenderMode uint8

const (
	// RenderWireframe strokes loop outlines only.
	RenderWireframe RenderMode = iota
	// RenderSolidFlat fills each polygon, then strokes it in the same color to
	// close the seams between neighbouring faces.
	RenderSolidFlat
)

func (m RenderMode) String() string {
	switch m {
	case RenderWireframe:
		return "wireframe"
	case RenderSolidFlat:
		return "solid"
	default:
		return "unknown"
	}
}
