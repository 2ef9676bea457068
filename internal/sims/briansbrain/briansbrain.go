package briansbrain

import (
	"strconv"

	"lifeboard/internal/core"
)

const (
	stateDead  = 0
	stateOn    = 1
	stateDying = 2
)

// Brain implements Brian's Brain. Firing and dying cells both count as alive
// for rendering; only firing cells excite neighbours.
type Brain struct {
	grid *core.ByteGrid
	nxt  []uint8
}

// New creates a Brain simulation with the provided dimensions.
func New(w, h int) *Brain {
	b := &Brain{grid: core.NewByteGrid(w, h)}
	b.nxt = make([]uint8, len(b.grid.Cells()))
	return b
}

// Name identifies the simulation.
func (b *Brain) Name() string { return "briansbrain" }

// Size returns the grid dimensions.
func (b *Brain) Size() core.Size { return b.grid.Size() }

// Cells exposes the current state buffer.
func (b *Brain) Cells() []uint8 { return b.grid.Cells() }

// Reset randomizes cells into dead or firing states.
func (b *Brain) Reset(seed int64) {
	rng := core.NewRNG(seed)
	cells := b.grid.Cells()
	for i := range cells {
		if rng.Chance(8) {
			cells[i] = stateOn
			continue
		}
		cells[i] = stateDead
	}
}

// Toggle sets a dead cell firing and kills anything else.
func (b *Brain) Toggle(row, col int) {
	if !b.grid.Contains(row, col) {
		return
	}
	idx := b.grid.Index(row, col)
	cells := b.grid.Cells()
	if cells[idx] == stateDead {
		cells[idx] = stateOn
		return
	}
	cells[idx] = stateDead
}

// SetWidth resizes the grid, clearing it.
func (b *Brain) SetWidth(w int) { b.resize(w, b.grid.H) }

// SetHeight resizes the grid, clearing it.
func (b *Brain) SetHeight(h int) { b.resize(b.grid.W, h) }

func (b *Brain) resize(w, h int) {
	b.grid.Resize(w, h)
	b.nxt = make([]uint8, len(b.grid.Cells()))
}

// Step advances the automaton by one tick.
func (b *Brain) Step() {
	g := b.grid
	w, h := g.W, g.H
	cur := g.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := g.Index(y, x)
			switch cur[idx] {
			case stateOn:
				b.nxt[idx] = stateDying
			case stateDying:
				b.nxt[idx] = stateDead
			default:
				neighbors := 0
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						if dx == 0 && dy == 0 {
							continue
						}
						ny, nx := g.Wrap(y+dy, x+dx)
						if cur[g.Index(ny, nx)] == stateOn {
							neighbors++
						}
					}
				}
				if neighbors == 2 {
					b.nxt[idx] = stateOn
				} else {
					b.nxt[idx] = stateDead
				}
			}
		}
	}
	copy(cur, b.nxt)
}

func init() {
	core.Register("briansbrain", func(cfg map[string]string) core.Sim {
		w, h := 64, 64
		if v, err := strconv.Atoi(cfg["w"]); err == nil && v >= 0 {
			w = v
		}
		if v, err := strconv.Atoi(cfg["h"]); err == nil && v >= 0 {
			h = v
		}
		b := New(w, h)
		b.Reset(1)
		return b
	})
}
