//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// SurfacePainter mirrors a Canvas into an ebiten image, uploading only when
// the canvas changed since the previous draw.
type SurfacePainter struct {
	img      *ebiten.Image
	uploaded uint64
}

// NewSurfacePainter returns an empty painter; the image is allocated lazily.
func NewSurfacePainter() *SurfacePainter { return &SurfacePainter{} }

// Draw uploads c if needed and draws it onto dst scaled by scale at (x, y).
func (sp *SurfacePainter) Draw(dst *ebiten.Image, c *Canvas, x, y float64, scale int) {
	w, h := c.Size()
	if w == 0 || h == 0 {
		return
	}
	if sp.img == nil || sp.img.Bounds().Dx() != w || sp.img.Bounds().Dy() != h {
		if sp.img != nil {
			sp.img.Dispose()
		}
		sp.img = ebiten.NewImage(w, h)
		sp.uploaded = 0
	}
	if sp.uploaded != c.Version() {
		sp.img.WritePixels(c.Pix())
		sp.uploaded = c.Version()
	}
	if scale <= 0 {
		scale = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.GeoM.Translate(x, y)
	dst.DrawImage(sp.img, op)
}
