package hal

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	"github.com/jdougu/canvas-gears/geargl"
	"golang.org/x/image/vector"
	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// maxCoord bounds stroke endpoints; lines beyond it are not walked.
const maxCoord = 1 << 15

// RasterSurface rasterizes polygons into an in-memory RGBA image.
//
// Fill uses the non-zero winding rule over all loops of a polygon at once, so
// an inner loop wound against the outer one becomes a hole. Strokes are one
// pixel wide.
type RasterSurface struct {
	img *image.RGBA
	z   *vector.Rasterizer
}

func NewRasterSurface(w, h int) *RasterSurface {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &RasterSurface{
		img: image.NewRGBA(image.Rect(0, 0, w, h)),
		z:   vector.NewRasterizer(w, h),
	}
}

func (s *RasterSurface) Size() (w, h int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// Resize reallocates the image when the size changed. Contents are lost.
func (s *RasterSurface) Resize(w, h int) {
	if cw, ch := s.Size(); cw == w && ch == h {
		return
	}
	*s = *NewRasterSurface(w, h)
}

func (s *RasterSurface) Clear(c geargl.Color) {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c.RGBA()), image.Point{}, draw.Src)
}

func (s *RasterSurface) Polygon(loops [][]geargl.Pixel, c geargl.Color, mode geargl.RenderMode) {
	if mode == geargl.RenderSolidFlat {
		s.fill(loops, c)
	}
	s.stroke(loops, c)
}

func (s *RasterSurface) fill(loops [][]geargl.Pixel, c geargl.Color) {
	w, h := s.Size()
	if w == 0 || h == 0 {
		return
	}
	s.z.Reset(w, h)
	for _, loop := range loops {
		if len(loop) < 3 {
			continue
		}
		s.z.MoveTo(loop[0].X, loop[0].Y)
		for _, p := range loop[1:] {
			s.z.LineTo(p.X, p.Y)
		}
		s.z.ClosePath()
	}
	s.z.Draw(s.img, s.img.Bounds(), image.NewUniform(c.RGBA()), image.Point{})
}

func (s *RasterSurface) stroke(loops [][]geargl.Pixel, c geargl.Color) {
	rgba := c.RGBA()
	for _, loop := range loops {
		for i := range loop {
			a, b := loop[i], loop[(i+1)%len(loop)]
			s.drawLine(round(a.X), round(a.Y), round(b.X), round(b.Y), rgba)
		}
	}
}

func (s *RasterSurface) drawLine(x0, y0, x1, y1 int, c color.RGBA) {
	if absInt(x0) > maxCoord || absInt(y0) > maxCoord || absInt(x1) > maxCoord || absInt(y1) > maxCoord {
		return
	}
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		s.setPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (s *RasterSurface) setPixel(x, y int, c color.RGBA) {
	if !(image.Point{X: x, Y: y}.In(s.img.Bounds())) {
		return
	}
	s.img.SetRGBA(x, y, c)
}

// Label draws s with its top-left corner at (x, y).
func (s *RasterSurface) Label(x, y int, str string, c geargl.Color) {
	font := &tinyfont.TomThumb
	tinyfont.WriteLine(&rgbaDisplayer{s: s}, font, int16(x), int16(y)+int16(font.GetYAdvance()), str, c.RGBA())
}

func (s *RasterSurface) Present() error { return nil }

// Image returns the backing image. It is reused across frames.
func (s *RasterSurface) Image() *image.RGBA { return s.img }

func (s *RasterSurface) WritePNG(w io.Writer) error {
	return png.Encode(w, s.img)
}

// SavePNG writes the current image to path.
func (s *RasterSurface) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot %q: %w", path, err)
	}
	bw := bufio.NewWriter(f)
	if err := s.WritePNG(bw); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode snapshot %q: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("write snapshot %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close snapshot %q: %w", path, err)
	}
	return nil
}

// rgbaDisplayer adapts the surface to drivers.Displayer for tinyfont.
type rgbaDisplayer struct {
	s *RasterSurface
}

var _ drivers.Displayer = (*rgbaDisplayer)(nil)

func (d *rgbaDisplayer) Size() (x, y int16) {
	w, h := d.s.Size()
	return int16(w), int16(h)
}

func (d *rgbaDisplayer) SetPixel(x, y int16, c color.RGBA) {
	d.s.setPixel(int(x), int(y), c)
}

func (d *rgbaDisplayer) Display() error { return nil }

func round(v float32) int {
	if v < 0 {
		return int(v - 0.5)
	}
	return int(v + 0.5)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
