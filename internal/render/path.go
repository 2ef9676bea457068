package render

import (
	"image"
	"image/color"
)

type segment struct {
	x0, y0, x1, y1 int
}

// Path accumulates line segments for a single Stroke call.
type Path struct {
	segs   []segment
	cx, cy int
	open   bool
}

// Reset empties the path, keeping its storage.
func (p *Path) Reset() {
	p.segs = p.segs[:0]
	p.open = false
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y int) {
	p.cx, p.cy = x, y
	p.open = true
}

// LineTo adds a segment from the current point to (x, y). Without a prior
// MoveTo it behaves like MoveTo.
func (p *Path) LineTo(x, y int) {
	if !p.open {
		p.MoveTo(x, y)
		return
	}
	p.segs = append(p.segs, segment{x0: p.cx, y0: p.cy, x1: x, y1: y})
	p.cx, p.cy = x, y
}

// Len returns the number of segments.
func (p *Path) Len() int { return len(p.segs) }

type fillOp struct {
	rect image.Rectangle
	col  color.RGBA
}

// FillBatch accumulates rectangle fills for a single Fill call.
type FillBatch struct {
	ops []fillOp
}

// Reset empties the batch, keeping its storage.
func (b *FillBatch) Reset() { b.ops = b.ops[:0] }

// Add queues a w*h rectangle at (x, y).
func (b *FillBatch) Add(x, y, w, h int, col color.RGBA) {
	b.ops = append(b.ops, fillOp{rect: image.Rect(x, y, x+w, y+h), col: col})
}

// Len returns the number of queued fills.
func (b *FillBatch) Len() int { return len(b.ops) }
