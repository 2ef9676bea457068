package core

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions, clamped into
// [1, MaxDimension].
func NewByteGrid(w, h int) *ByteGrid {
	w, h = ClampDimension(w), ClampDimension(h)
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Size returns the grid dimensions.
func (g *ByteGrid) Size() Size { return Size{W: g.W, H: g.H} }

// Index returns the linear slice index for (row, col).
func (g *ByteGrid) Index(row, col int) int { return row*g.W + col }

// Contains reports whether (row, col) lies inside the grid.
func (g *ByteGrid) Contains(row, col int) bool {
	return row >= 0 && row < g.H && col >= 0 && col < g.W
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *ByteGrid) Wrap(row, col int) (int, int) {
	row = (row%g.H + g.H) % g.H
	col = (col%g.W + g.W) % g.W
	return row, col
}

// Toggle flips the cell at (row, col) between 0 and 1. Out-of-range
// coordinates are ignored.
func (g *ByteGrid) Toggle(row, col int) {
	if !g.Contains(row, col) {
		return
	}
	idx := g.Index(row, col)
	if g.data[idx] != 0 {
		g.data[idx] = 0
		return
	}
	g.data[idx] = 1
}

// Resize reallocates the grid with new clamped dimensions. All cells are
// cleared.
func (g *ByteGrid) Resize(w, h int) {
	g.W, g.H = ClampDimension(w), ClampDimension(h)
	g.data = make([]uint8, g.W*g.H)
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// Population counts nonzero cells.
func Population(cells []uint8) int {
	n := 0
	for _, c := range cells {
		if c != 0 {
			n++
		}
	}
	return n
}
