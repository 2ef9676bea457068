package core

import "sort"

// MaxDimension bounds either side of a grid so W*H stays allocatable.
const MaxDimension = 1024

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Cells returns the number of cells a grid of this size holds.
func (s Size) Cells() int { return s.W * s.H }

// Sim is the handle the controller drives. Cells are one byte each in
// row-major order; any nonzero byte is alive. The controller is the only
// caller of Step, Toggle, SetWidth and SetHeight.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Toggle(row, col int)
	SetWidth(w int)
	SetHeight(h int)
	Cells() []uint8
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// SimNames lists registered simulations in lexical order.
func SimNames() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ClampDimension normalizes a requested width or height into [1, MaxDimension].
func ClampDimension(n int) int {
	if n < 1 {
		return 1
	}
	if n > MaxDimension {
		return MaxDimension
	}
	return n
}
