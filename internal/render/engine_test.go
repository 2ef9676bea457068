package render

import (
	"errors"
	"image/color"
	"testing"

	"lifeboard/internal/core"
)

type recordingSurface struct {
	strokes  int
	fills    int
	segments int
	rects    int
}

func (s *recordingSurface) Stroke(p *Path, _ color.RGBA) {
	s.strokes++
	s.segments += p.Len()
}

func (s *recordingSurface) Fill(b *FillBatch) {
	s.fills++
	s.rects += b.Len()
}

func TestSurfaceSize(t *testing.T) {
	r := NewRenderer(5, DefaultPalette())
	tests := []struct {
		size core.Size
		w, h int
	}{
		{core.Size{W: 64, H: 64}, 385, 385},
		{core.Size{W: 32, H: 64}, 193, 385},
		{core.Size{W: 1, H: 1}, 7, 7},
	}
	for _, tt := range tests {
		w, h := r.SurfaceSize(tt.size)
		if w != tt.w || h != tt.h {
			t.Errorf("SurfaceSize(%+v) = %dx%d, want %dx%d", tt.size, w, h, tt.w, tt.h)
		}
	}
}

func TestDrawGridBatchesOneStroke(t *testing.T) {
	r := NewRenderer(5, DefaultPalette())
	rec := &recordingSurface{}
	r.DrawGrid(rec, core.Size{W: 4, H: 3})
	if rec.strokes != 1 {
		t.Fatalf("strokes = %d, want 1", rec.strokes)
	}
	if rec.segments != (4+1)+(3+1) {
		t.Fatalf("segments = %d, want %d", rec.segments, 9)
	}
}

func TestDrawCellsBatchesOneFill(t *testing.T) {
	r := NewRenderer(5, DefaultPalette())
	rec := &recordingSurface{}
	if err := r.DrawCells(rec, core.Size{W: 4, H: 3}, make([]uint8, 12)); err != nil {
		t.Fatal(err)
	}
	if rec.fills != 1 || rec.rects != 12 {
		t.Fatalf("fills=%d rects=%d, want 1 and 12", rec.fills, rec.rects)
	}
}

func TestDrawCellsRejectsMismatchedView(t *testing.T) {
	r := NewRenderer(5, DefaultPalette())
	rec := &recordingSurface{}
	err := r.DrawCells(rec, core.Size{W: 4, H: 3}, make([]uint8, 11))
	if !errors.Is(err, ErrCellViewSize) {
		t.Fatalf("err = %v, want ErrCellViewSize", err)
	}
	if rec.fills != 0 {
		t.Fatal("mismatched view must not paint")
	}
}

func TestCanvasPixels(t *testing.T) {
	pal := DefaultPalette()
	r := NewRenderer(5, pal)
	size := core.Size{W: 3, H: 2}
	w, h := r.SurfaceSize(size)
	c := NewCanvas(w, h)

	cells := []uint8{
		1, 0, 0,
		0, 0, 7,
	}
	r.DrawGrid(c, size)
	if err := r.DrawCells(c, size, cells); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{"top-left border", 0, 0, pal.Grid},
		{"right border", w - 1, 3, pal.Grid},
		{"bottom border", 3, h - 1, pal.Grid},
		{"gridline between columns", 6, 3, pal.Grid},
		{"gridline between rows", 3, 6, pal.Grid},
		{"alive cell origin", 1, 1, pal.Alive},
		{"alive cell far corner", 5, 5, pal.Alive},
		{"dead cell", 7, 1, pal.Dead},
		{"nonzero byte is alive", 2*6 + 1, 6 + 1, pal.Alive},
		{"last dead cell", 2*6 + 5, 5, pal.Dead},
	}
	for _, tt := range tests {
		if got := c.RGBAAt(tt.x, tt.y); got != tt.want {
			t.Errorf("%s: pixel (%d,%d) = %v, want %v", tt.name, tt.x, tt.y, got, tt.want)
		}
	}
}

func TestDrawIsPureRead(t *testing.T) {
	r := NewRenderer(2, DefaultPalette())
	size := core.Size{W: 2, H: 2}
	cells := []uint8{1, 0, 0, 1}
	before := append([]uint8(nil), cells...)
	c := NewCanvas(r.SurfaceSize(size))
	r.DrawGrid(c, size)
	_ = r.DrawCells(c, size, cells)
	for i := range cells {
		if cells[i] != before[i] {
			t.Fatal("rendering mutated the cell view")
		}
	}
}

func TestCanvasVersionBumps(t *testing.T) {
	c := NewCanvas(4, 4)
	v := c.Version()
	var b FillBatch
	b.Add(0, 0, 2, 2, color.RGBA{A: 255})
	c.Fill(&b)
	if c.Version() == v {
		t.Fatal("Fill should bump version")
	}
	v = c.Version()
	c.Resize(8, 8)
	if c.Version() == v {
		t.Fatal("Resize should bump version")
	}
	if len(c.Pix()) != 4*8*8 {
		t.Fatalf("pix len %d", len(c.Pix()))
	}
}

func TestDiagonalStroke(t *testing.T) {
	c := NewCanvas(4, 4)
	var p Path
	p.MoveTo(1, 1)
	p.LineTo(4, 4)
	red := color.RGBA{R: 255, A: 255}
	c.Stroke(&p, red)
	for i := 1; i <= 2; i++ {
		if got := c.RGBAAt(i, i); got.R < 128 || got.G != 0 {
			t.Fatalf("diagonal pixel %d = %v, want mostly red", i, got)
		}
	}
	if got := c.RGBAAt(3, 0); got != (color.RGBA{}) {
		t.Fatalf("off-diagonal pixel painted: %v", got)
	}
}

