package life

import (
	"lifeboard/internal/core"
)

// Life implements Conway's Game of Life with toroidal wrapping.
type Life struct {
	grid *core.ByteGrid
	nxt  []uint8
}

// New returns a Life board seeded with the default pattern.
func New(w, h int) *Life {
	l := &Life{grid: core.NewByteGrid(w, h)}
	l.nxt = make([]uint8, len(l.grid.Cells()))
	l.seedPattern()
	return l
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return l.grid.Size() }

// Cells exposes the current grid values.
func (l *Life) Cells() []uint8 { return l.grid.Cells() }

// Reset reseeds the board. Seed 0 restores the default pattern; any other
// seed fills the board randomly and deterministically.
func (l *Life) Reset(seed int64) {
	if seed == 0 {
		l.seedPattern()
		return
	}
	core.NewRNG(seed).FillBinary(l.grid.Cells())
}

// Toggle flips a single cell.
func (l *Life) Toggle(row, col int) { l.grid.Toggle(row, col) }

// SetWidth resizes the board; every cell becomes dead.
func (l *Life) SetWidth(w int) { l.resize(w, l.grid.H) }

// SetHeight resizes the board; every cell becomes dead.
func (l *Life) SetHeight(h int) { l.resize(l.grid.W, h) }

func (l *Life) resize(w, h int) {
	l.grid.Resize(w, h)
	l.nxt = make([]uint8, len(l.grid.Cells()))
}

// seedPattern marks cells alive where i%2 == 0 or i%7 == 0.
func (l *Life) seedPattern() {
	cells := l.grid.Cells()
	for i := range cells {
		cells[i] = 0
		if i%2 == 0 || i%7 == 0 {
			cells[i] = 1
		}
	}
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	g := l.grid
	w, h := g.W, g.H
	cur := g.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					ny, nx := g.Wrap(y+dy, x+dx)
					if cur[g.Index(ny, nx)] != 0 {
						neighbors++
					}
				}
			}
			idx := g.Index(y, x)
			alive := cur[idx] != 0
			l.nxt[idx] = 0
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				l.nxt[idx] = 1
			}
		}
	}
	copy(cur, l.nxt)
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		return New(c.Width, c.Height)
	})
}
