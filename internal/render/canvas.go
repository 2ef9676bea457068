package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// Surface receives batched drawing commands.
type Surface interface {
	Stroke(p *Path, col color.RGBA)
	Fill(b *FillBatch)
}

// Canvas is an RGBA raster surface. Stroke and Fill each count as one paint
// operation and bump Version, which hosts use to skip redundant uploads.
type Canvas struct {
	img     *image.RGBA
	raster  vector.Rasterizer
	version uint64
}

// NewCanvas allocates a w*h canvas cleared to transparent black.
func NewCanvas(w, h int) *Canvas {
	c := &Canvas{}
	c.Resize(w, h)
	return c
}

// Resize reallocates the canvas. Existing pixels are discarded.
func (c *Canvas) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	c.img = image.NewRGBA(image.Rect(0, 0, w, h))
	c.version++
}

// Size returns the canvas dimensions in pixels.
func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// Pix exposes the RGBA bytes, row-major, 4 bytes per pixel.
func (c *Canvas) Pix() []byte { return c.img.Pix }

// Version changes whenever the pixels or dimensions change.
func (c *Canvas) Version() uint64 { return c.version }

// RGBAAt returns the pixel at (x, y), or transparent black outside bounds.
func (c *Canvas) RGBAAt(x, y int) color.RGBA { return c.img.RGBAAt(x, y) }

// Image returns the backing image. It shares the canvas pixels.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Stroke rasterizes every segment of p as a 1px wide band and composites
// them onto the canvas in one pass.
//
// Endpoints follow the 2D-canvas convention: a line along coordinate L
// lands on pixel L-1 across its width and covers [start, end) along its
// length, so axis-aligned lines on integer coordinates stay crisp.
func (c *Canvas) Stroke(p *Path, col color.RGBA) {
	w, h := c.Size()
	if w > 0 && h > 0 && p.Len() > 0 {
		c.raster.Reset(w, h)
		for _, s := range p.segs {
			addBand(&c.raster, s)
		}
		c.raster.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
	}
	c.version++
}

// Fill paints every rectangle of b in insertion order.
func (c *Canvas) Fill(b *FillBatch) {
	for _, op := range b.ops {
		draw.Draw(c.img, op.rect, image.NewUniform(op.col), image.Point{}, draw.Src)
	}
	c.version++
}

// addBand appends the closed quad covering segment s to z. Every band winds
// the same way, so overlapping bands saturate instead of cancelling.
func addBand(z *vector.Rasterizer, s segment) {
	dx, dy := float64(s.x1-s.x0), float64(s.y1-s.y0)
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	nx, ny := -dy/length, dx/length
	hx, hy := nx/2, ny/2
	ox, oy := -math.Abs(nx)/2, -math.Abs(ny)/2

	x0, y0 := float64(s.x0)+ox, float64(s.y0)+oy
	x1, y1 := float64(s.x1)+ox, float64(s.y1)+oy
	z.MoveTo(float32(x0+hx), float32(y0+hy))
	z.LineTo(float32(x1+hx), float32(y1+hy))
	z.LineTo(float32(x1-hx), float32(y1-hy))
	z.LineTo(float32(x0-hx), float32(y0-hy))
	z.ClosePath()
}
