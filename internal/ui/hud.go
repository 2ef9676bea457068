//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	panelBackground = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor      = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor      = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	mutedColor      = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	fieldBackground = color.RGBA{R: 32, G: 34, B: 40, A: 255}
	focusColor      = color.RGBA{R: 90, G: 150, B: 230, A: 255}
	buttonColor     = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	buttonOff       = color.RGBA{R: 32, G: 34, B: 40, A: 255}
)

// HUD draws a Panel with ebiten and feeds it mouse and keyboard input.
type HUD struct {
	panel      *Panel
	title      string
	img        *ebiten.Image
	lastHeight int

	white *ebiten.Image
	blink int
}

// NewHUD constructs a HUD for the panel.
func NewHUD(panel *Panel, title string) *HUD {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &HUD{
		panel: panel,
		title: title,
		white: white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

// Update polls input for the panel anchored at offsetX in screen space. It
// reports whether keyboard input went to a text field, in which case global
// shortcuts should be ignored for this tick.
func (h *HUD) Update(offsetX int, handler Handler) bool {
	if h == nil {
		return false
	}
	h.blink++
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if mx >= offsetX {
			h.panel.Click(mx-offsetX, my, handler)
		} else {
			h.panel.Blur()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		h.panel.CycleFocus()
		return true
	}
	if _, ok := h.panel.FocusedField(); !ok {
		return false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		h.panel.Blur()
		return true
	}
	for _, r := range ebiten.AppendInputChars(nil) {
		h.panel.TypeRune(r, handler)
	}
	if repeatingKeyPressed(ebiten.KeyBackspace) {
		h.panel.Backspace(handler)
	}
	return true
}

// Draw paints the panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.panel.PanelWidth() <= 0 || height <= 0 {
		return
	}
	width := h.panel.PanelWidth()
	if h.img == nil || h.img.Bounds().Dx() != width || h.lastHeight != height {
		if h.img != nil {
			h.img.Dispose()
		}
		h.img = ebiten.NewImage(width, height)
		h.lastHeight = height
	}
	h.img.Fill(panelBackground)

	face := basicfont.Face7x13
	text.Draw(h.img, h.title, face, panelPadding, panelPadding+headerBaseline, titleColor)

	h.drawField(&h.panel.Width)
	h.drawField(&h.panel.Height)
	h.drawButton(&h.panel.PlayPause)
	h.drawButton(&h.panel.Step)

	hintY := h.panel.Step.Rect.Max.Y + lineHeight
	for _, hint := range []string{"space  play/pause", "n      step", "r      reseed", "tab    edit size", "q      quit"} {
		text.Draw(h.img, hint, face, panelPadding, hintY, mutedColor)
		hintY += 16
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.img, op)
}

func (h *HUD) drawField(f *TextField) {
	face := basicfont.Face7x13
	r := f.Rect
	text.Draw(h.img, f.Label, face, panelPadding, r.Min.Y+labelBaseline, labelColor)
	vector.DrawFilledRect(h.img, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), fieldBackground, false)
	border := mutedColor
	if f.Focused {
		border = focusColor
	}
	vector.StrokeRect(h.img, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 1, border, false)
	value := f.Value()
	if f.Focused && (h.blink/30)%2 == 0 {
		value += "_"
	}
	text.Draw(h.img, value, face, r.Min.X+6, r.Min.Y+labelBaseline, labelColor)
}

func (h *HUD) drawButton(b *Button) {
	r := b.Rect
	bg, fg := buttonColor, labelColor
	if b.Disabled {
		bg, fg = buttonOff, mutedColor
	}
	vector.DrawFilledRect(h.img, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), bg, false)

	cx := float32(r.Min.X) + float32(r.Dx())/2
	cy := float32(r.Min.Y) + float32(r.Dy())/2
	const glyph = 10
	switch b.Label {
	case PlayGlyph:
		var path vector.Path
		path.MoveTo(cx-glyph/2, cy-glyph/2)
		path.LineTo(cx+glyph/2, cy)
		path.LineTo(cx-glyph/2, cy+glyph/2)
		path.Close()
		h.fillPath(&path, fg)
	case PauseGlyph:
		vector.DrawFilledRect(h.img, cx-glyph/2, cy-glyph/2, 3, glyph, fg, false)
		vector.DrawFilledRect(h.img, cx+glyph/2-3, cy-glyph/2, 3, glyph, fg, false)
	default:
		face := basicfont.Face7x13
		bounds := text.BoundString(face, b.Label)
		x := r.Min.X + (r.Dx()-bounds.Dx())/2
		y := r.Min.Y + (r.Dy()-bounds.Dy())/2 + bounds.Dy()
		text.Draw(h.img, b.Label, face, x, y, fg)
	}
}

func (h *HUD) fillPath(path *vector.Path, col color.RGBA) {
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(col.R) / 255
		vs[i].ColorG = float32(col.G) / 255
		vs[i].ColorB = float32(col.B) / 255
		vs[i].ColorA = float32(col.A) / 255
	}
	h.img.DrawTriangles(vs, is, h.white, &ebiten.DrawTrianglesOptions{})
}

// repeatingKeyPressed reports a press on the first frame and then
// periodically while the key stays held.
func repeatingKeyPressed(key ebiten.Key) bool {
	const (
		delay    = 30
		interval = 3
	)
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d >= delay && (d-delay)%interval == 0
}
