package sim

import (
	"image"
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"vec2d/geom"
	"vec2d/hal"
)

var (
	colorBackground = color.RGBA{R: 0x10, G: 0x12, B: 0x18, A: 0xFF}
	colorBody       = color.RGBA{R: 0xF0, G: 0xC0, B: 0x40, A: 0xFF}
	colorVelocity   = color.RGBA{R: 0x40, G: 0xD0, B: 0xF0, A: 0xFF}
	colorAttractor  = color.RGBA{R: 0xF0, G: 0x40, B: 0x60, A: 0xFF}
	colorHUD        = color.RGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF}
)

// velocityArrowTicks is how many ticks of motion a velocity arrow shows.
const velocityArrowTicks = 4

// Renderer draws a World into an RGB565 framebuffer.
type Renderer struct {
	fb   hal.Framebuffer
	font tinyfont.Fonter

	ShowVectors bool
}

func NewRenderer(fb hal.Framebuffer) *Renderer {
	return &Renderer{fb: fb, font: &proggy.TinySZ8pt7b, ShowVectors: true}
}

// Draw renders w with hud as the status line and presents the frame.
func (r *Renderer) Draw(w *World, hud string) error {
	if r.fb == nil || r.fb.Format() != hal.PixelFormatRGB565 {
		return hal.ErrNotImplemented
	}
	r.fb.ClearRGB(colorBackground.R, colorBackground.G, colorBackground.B)

	d := &fbDisplayer{fb: r.fb}
	sx := float64(r.fb.Width()) / w.Width
	sy := float64(r.fb.Height()) / w.Height
	toScreen := func(p geom.Point) image.Point {
		return geom.Pt(p.X*sx, p.Y*sy).Pixel()
	}

	for _, b := range w.Bodies {
		c := toScreen(b.Pos)
		half := int(b.Radius * sx)
		if half < 1 {
			half = 1
		}
		d.FillRectangle(int16(c.X-half), int16(c.Y-half), int16(2*half), int16(2*half), colorBody)

		if r.ShowVectors && !b.Vel.IsZero() {
			tip := b.Vel.Scale(velocityArrowTicks).Translate(b.Pos)
			d.line(c, toScreen(tip), colorVelocity)
		}
	}

	if w.Attract {
		a := toScreen(w.Attractor)
		d.line(a.Add(image.Pt(-3, 0)), a.Add(image.Pt(3, 0)), colorAttractor)
		d.line(a.Add(image.Pt(0, -3)), a.Add(image.Pt(0, 3)), colorAttractor)
	}

	if hud != "" {
		baseline := int16(r.font.GetYAdvance())
		tinyfont.WriteLine(d, r.font, 2, baseline, hud, colorHUD)
	}
	return r.fb.Present()
}

var _ drivers.Displayer = (*fbDisplayer)(nil)

// fbDisplayer adapts an RGB565 framebuffer to the tinyfont drawing contract.
type fbDisplayer struct {
	fb hal.Framebuffer
}

func (d *fbDisplayer) Size() (x, y int16) {
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *fbDisplayer) SetPixel(x, y int16, c color.RGBA) {
	d.set(int(x), int(y), hal.RGB565(c.R, c.G, c.B))
}

func (d *fbDisplayer) set(x, y int, pixel uint16) {
	buf := d.fb.Buffer()
	if x < 0 || x >= d.fb.Width() || y < 0 || y >= d.fb.Height() {
		return
	}
	off := y*d.fb.StrideBytes() + x*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (d *fbDisplayer) Display() error { return nil }

func (d *fbDisplayer) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	w := d.fb.Width()
	h := d.fb.Height()
	x0 := clampInt(int(x), 0, w)
	y0 := clampInt(int(y), 0, h)
	x1 := clampInt(int(x)+int(width), 0, w)
	y1 := clampInt(int(y)+int(height), 0, h)

	pixel := hal.RGB565(c.R, c.G, c.B)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			d.set(px, py, pixel)
		}
	}
	return nil
}

// line draws from a to b with Bresenham's algorithm, clipping per pixel.
func (d *fbDisplayer) line(a, b image.Point, c color.RGBA) {
	pixel := hal.RGB565(c.R, c.G, c.B)

	dx := absInt(b.X - a.X)
	dy := -absInt(b.Y - a.Y)
	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}
	err := dx + dy
	x, y := a.X, a.Y
	for {
		d.set(x, y, pixel)
		if x == b.X && y == b.Y {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
