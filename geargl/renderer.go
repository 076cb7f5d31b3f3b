package geargl

// Renderer hands composed frames to a Target.
//
// Create it once and reuse it; it keeps no per-frame state.
type Renderer struct {
	Mode       RenderMode
	ClearColor Color
}

// NewRenderer returns a solid-fill renderer with a transparent clear color.
func NewRenderer() *Renderer {
	return &Renderer{Mode: RenderSolidFlat}
}

func (r *Renderer) SetRenderMode(m RenderMode) { r.Mode = m }

// Render clears t, then shades and draws the faces of f back to front. It
// returns the number of polygons drawn.
func (r *Renderer) Render(t Target, f Frame) int {
	if r == nil || t == nil {
		return 0
	}
	w, h := t.Size()
	if w <= 0 || h <= 0 {
		return 0
	}
	t.Clear(r.ClearColor)

	polys := Project(f, w, h)
	for i := range polys {
		t.Polygon(polys[i].Loops, polys[i].Color, r.Mode)
	}
	return len(polys)
}
