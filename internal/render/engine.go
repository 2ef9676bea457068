package render

import (
	"errors"
	"image/color"

	"lifeboard/internal/core"
)

// ErrCellViewSize reports a cell view whose length is not W*H.
var ErrCellViewSize = errors.New("render: cell view size mismatch")

// Palette holds the three fixed colors of the board.
type Palette struct {
	Grid  color.RGBA
	Dead  color.RGBA
	Alive color.RGBA
}

// DefaultPalette returns light-grey gridlines, white dead cells and black
// live cells.
func DefaultPalette() Palette {
	return Palette{
		Grid:  color.RGBA{R: 0xCC, G: 0xCC, B: 0xCC, A: 0xFF},
		Dead:  color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		Alive: color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF},
	}
}

// NewPalette builds a palette from arbitrary colors.
func NewPalette(grid, dead, alive color.Color) Palette {
	return Palette{Grid: toRGBA(grid), Dead: toRGBA(dead), Alive: toRGBA(alive)}
}

// Renderer turns simulation dimensions and a cell view into drawing commands.
// Each cell occupies cellSize pixels plus a 1px gridline.
type Renderer struct {
	cellSize int
	palette  Palette

	path  Path
	batch FillBatch
}

// NewRenderer returns a renderer for the given cell size, at least 1px.
func NewRenderer(cellSize int, palette Palette) *Renderer {
	if cellSize < 1 {
		cellSize = 1
	}
	return &Renderer{cellSize: cellSize, palette: palette}
}

// CellSize returns the edge length of one cell in pixels.
func (r *Renderer) CellSize() int { return r.cellSize }

// Pitch returns the distance between neighbouring gridlines.
func (r *Renderer) Pitch() int { return r.cellSize + 1 }

// Palette returns the colors in use.
func (r *Renderer) Palette() Palette { return r.palette }

// SurfaceSize returns the raster dimensions needed for a grid of size s.
func (r *Renderer) SurfaceSize(s core.Size) (int, int) {
	return r.Pitch()*s.W + 1, r.Pitch()*s.H + 1
}

// DrawGrid strokes W+1 vertical and H+1 horizontal gridlines in one batch.
func (r *Renderer) DrawGrid(dst Surface, s core.Size) {
	pitch := r.Pitch()
	width, height := r.SurfaceSize(s)

	r.path.Reset()
	for i := 0; i <= s.W; i++ {
		r.path.MoveTo(i*pitch+1, 0)
		r.path.LineTo(i*pitch+1, height)
	}
	for j := 0; j <= s.H; j++ {
		r.path.MoveTo(0, j*pitch+1)
		r.path.LineTo(width, j*pitch+1)
	}
	dst.Stroke(&r.path, r.palette.Grid)
}

// DrawCells fills every cell square in one batch. A view whose length is
// not W*H is rejected and nothing is painted.
func (r *Renderer) DrawCells(dst Surface, s core.Size, cells []uint8) error {
	if len(cells) != s.Cells() {
		return ErrCellViewSize
	}
	pitch := r.Pitch()

	r.batch.Reset()
	for row := 0; row < s.H; row++ {
		for col := 0; col < s.W; col++ {
			fill := r.palette.Dead
			if cells[row*s.W+col] != 0 {
				fill = r.palette.Alive
			}
			r.batch.Add(col*pitch+1, row*pitch+1, r.cellSize, r.cellSize, fill)
		}
	}
	dst.Fill(&r.batch)
	return nil
}

func toRGBA(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}
