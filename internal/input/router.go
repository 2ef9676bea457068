// Package input maps pointer positions and dimension-field text onto
// simulation coordinates and sizes.
package input

import (
	"math"
	"strconv"
	"strings"

	"lifeboard/internal/core"
)

// Field names one of the two dimension fields.
type Field int

const (
	FieldWidth Field = iota
	FieldHeight
)

// Fields lists both dimension fields in display order.
var Fields = [...]Field{FieldWidth, FieldHeight}

func (f Field) String() string {
	switch f {
	case FieldWidth:
		return "width"
	case FieldHeight:
		return "height"
	default:
		return "field(" + strconv.Itoa(int(f)) + ")"
	}
}

// Bounds is the on-screen rectangle the surface occupies, in the same units
// as pointer coordinates. Width and Height may differ from the surface's
// pixel size when the host scales it.
type Bounds struct {
	Left, Top     float64
	Width, Height float64
}

// Contains reports whether (x, y) lies within b.
func (b Bounds) Contains(x, y float64) bool {
	return x >= b.Left && y >= b.Top && x < b.Left+b.Width && y < b.Top+b.Height
}

// CellAt converts a pointer position to the (row, col) under it. The result
// is clamped into the grid so edge rounding never yields an invalid index.
// ok is false only when the bounds are degenerate.
func CellAt(clientX, clientY float64, b Bounds, surfaceW, surfaceH, cellSize int, grid core.Size) (row, col int, ok bool) {
	if b.Width <= 0 || b.Height <= 0 || grid.W <= 0 || grid.H <= 0 {
		return 0, 0, false
	}
	scaleX := float64(surfaceW) / b.Width
	scaleY := float64(surfaceH) / b.Height

	x := (clientX - b.Left) * scaleX
	y := (clientY - b.Top) * scaleY

	pitch := float64(cellSize + 1)
	row = clampIndex(math.Floor(y/pitch), grid.H)
	col = clampIndex(math.Floor(x/pitch), grid.W)
	return row, col, true
}

func clampIndex(v float64, n int) int {
	if v < 0 {
		return 0
	}
	if v > float64(n-1) {
		return n - 1
	}
	return int(v)
}

// ParseDimension accepts a base-10, non-negative integer that fits in an
// int, ignoring surrounding whitespace.
func ParseDimension(text string) (int, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, false
	}
	n, err := strconv.Atoi(text)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
