package elementary

import (
	"strconv"

	"lifeboard/internal/core"
)

// Config holds parameters for the elementary cellular automaton.
type Config struct {
	Width  int
	Height int
	Rule   uint8
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 64, Height: 64, Rule: 110}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["rule"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 255 {
			c.Rule = uint8(parsed)
		}
	}
	return c
}

// Elementary implements a one-dimensional Wolfram code projected vertically:
// row 0 is the newest generation and history scrolls downwards.
type Elementary struct {
	grid *core.ByteGrid
	rule uint8
	tmp  []uint8
}

// New creates an automaton with the given dimensions and rule.
func New(w, h int, rule uint8) *Elementary {
	e := &Elementary{grid: core.NewByteGrid(w, h), rule: rule}
	e.tmp = make([]uint8, e.grid.W)
	e.Reset(0)
	return e
}

// Name returns the simulation identifier.
func (e *Elementary) Name() string { return "elementary" }

// Size returns the simulation grid dimensions.
func (e *Elementary) Size() core.Size { return e.grid.Size() }

// Cells exposes the render buffer.
func (e *Elementary) Cells() []uint8 { return e.grid.Cells() }

// Rule returns the Wolfram code in use.
func (e *Elementary) Rule() uint8 { return e.rule }

// Reset clears the grid and seeds the top row with a single active cell.
func (e *Elementary) Reset(seed int64) {
	e.grid.Clear()
	center := e.grid.W / 2
	e.grid.Cells()[center] = 1
}

// Toggle flips one cell. Editing row 0 changes the next generation's input.
func (e *Elementary) Toggle(row, col int) { e.grid.Toggle(row, col) }

// SetWidth resizes the grid and reseeds the top row.
func (e *Elementary) SetWidth(w int) { e.resize(w, e.grid.H) }

// SetHeight resizes the grid and reseeds the top row.
func (e *Elementary) SetHeight(h int) { e.resize(e.grid.W, h) }

func (e *Elementary) resize(w, h int) {
	e.grid.Resize(w, h)
	e.tmp = make([]uint8, e.grid.W)
	e.Reset(0)
}

// Step computes the next generation and scrolls history downwards.
func (e *Elementary) Step() {
	w, h := e.grid.W, e.grid.H
	cur := e.grid.Cells()
	copy(e.tmp, cur[:w])
	copy(cur[w:], cur[:w*(h-1)])
	for x := 0; x < w; x++ {
		left := e.tmp[(x-1+w)%w] & 1
		center := e.tmp[x] & 1
		right := e.tmp[(x+1)%w] & 1
		idx := (left << 2) | (center << 1) | right
		cur[x] = (e.rule >> idx) & 1
	}
}

func init() {
	core.Register("elementary", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		return New(c.Width, c.Height, c.Rule)
	})
}
