//go:build cgo

package hal

import (
	"image"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jdougu/canvas-gears/geargl"
)

type polygonCmd struct {
	loops [][]geargl.Pixel
	c     geargl.Color
	mode  geargl.RenderMode
}

type labelCmd struct {
	x, y int
	s    string
}

type frameList struct {
	clear  geargl.Color
	polys  []polygonCmd
	labels []labelCmd
}

// ebitenSurface records one frame of draw calls during Update and replays the
// last presented frame during Draw.
type ebitenSurface struct {
	mu      sync.Mutex
	width   int
	height  int
	pending frameList
	shown   frameList

	white *ebiten.Image
	vs    []ebiten.Vertex
	is    []uint16
}

func newEbitenSurface(width, height int) *ebitenSurface {
	return &ebitenSurface{width: width, height: height}
}

func (s *ebitenSurface) Size() (w, h int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.width, s.height
}

func (s *ebitenSurface) resize(w, h int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width, s.height = w, h
}

func (s *ebitenSurface) Clear(c geargl.Color) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = frameList{clear: c, polys: s.pending.polys[:0], labels: s.pending.labels[:0]}
}

func (s *ebitenSurface) Polygon(loops [][]geargl.Pixel, c geargl.Color, mode geargl.RenderMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending.polys = append(s.pending.polys, polygonCmd{loops: loops, c: c, mode: mode})
}

// Label queues HUD text. The debug font is always white; c is ignored.
func (s *ebitenSurface) Label(x, y int, str string, _ geargl.Color) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending.labels = append(s.pending.labels, labelCmd{x: x, y: y, s: str})
}

func (s *ebitenSurface) Present() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shown, s.pending = s.pending, frameList{polys: s.shown.polys[:0], labels: s.shown.labels[:0]}
	return nil
}

func (s *ebitenSurface) draw(screen *ebiten.Image) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.white == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		s.white = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}

	screen.Fill(s.shown.clear.RGBA())
	stroke := &vector.StrokeOptions{Width: 1, LineJoin: vector.LineJoinRound}
	for _, cmd := range s.shown.polys {
		var p vector.Path
		for _, loop := range cmd.loops {
			if len(loop) == 0 {
				continue
			}
			p.MoveTo(loop[0].X, loop[0].Y)
			for _, pt := range loop[1:] {
				p.LineTo(pt.X, pt.Y)
			}
			p.Close()
		}
		if cmd.mode == geargl.RenderSolidFlat {
			s.vs, s.is = p.AppendVerticesAndIndicesForFilling(s.vs[:0], s.is[:0])
			s.drawTriangles(screen, cmd.c, ebiten.EvenOdd)
		}
		s.vs, s.is = p.AppendVerticesAndIndicesForStroke(s.vs[:0], s.is[:0], stroke)
		s.drawTriangles(screen, cmd.c, ebiten.FillAll)
	}
	for _, l := range s.shown.labels {
		ebitenutil.DebugPrintAt(screen, l.s, l.x, l.y)
	}
}

func (s *ebitenSurface) drawTriangles(screen *ebiten.Image, c geargl.Color, rule ebiten.FillRule) {
	if len(s.is) == 0 {
		return
	}
	r := float32(c.R) / 0xFF
	g := float32(c.G) / 0xFF
	b := float32(c.B) / 0xFF
	a := float32(c.A) / 0xFF
	for i := range s.vs {
		s.vs[i].SrcX = 1
		s.vs[i].SrcY = 1
		s.vs[i].ColorR = r
		s.vs[i].ColorG = g
		s.vs[i].ColorB = b
		s.vs[i].ColorA = a
	}
	op := &ebiten.DrawTrianglesOptions{FillRule: rule}
	screen.DrawTriangles(s.vs, s.is, s.white, op)
}
