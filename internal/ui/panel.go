package ui

import (
	"image"

	"lifeboard/internal/input"
)

// Handler receives the actions the panel's widgets trigger.
type Handler interface {
	TogglePlay()
	AdvanceOne()
	DimensionKeyUp(f input.Field)
}

// Target identifies the widget under a point.
type Target int

const (
	TargetNone Target = iota
	TargetPlayPause
	TargetStep
	TargetWidth
	TargetHeight
)

// Panel groups the controls shown beside the board: the two dimension fields,
// the play/pause toggle and the single-step button.
type Panel struct {
	Width     TextField
	Height    TextField
	PlayPause Button
	Step      Button

	panelWidth int
}

// NewPanel lays out the controls for a panel of the given pixel width.
func NewPanel(panelWidth int) *Panel {
	p := &Panel{
		Width:      TextField{Label: "Width", MaxLen: 5},
		Height:     TextField{Label: "Height", MaxLen: 5},
		PlayPause:  Button{Label: PlayGlyph},
		Step:       Button{Label: "Step"},
		panelWidth: panelWidth,
	}
	p.layout()
	return p
}

// PanelWidth returns the width the panel was laid out for.
func (p *Panel) PanelWidth() int { return p.panelWidth }

// Field returns the text field backing f.
func (p *Panel) Field(f input.Field) *TextField {
	if f == input.FieldHeight {
		return &p.Height
	}
	return &p.Width
}

// FocusedField returns the field holding keyboard focus, if any.
func (p *Panel) FocusedField() (input.Field, bool) {
	switch {
	case p.Width.Focused:
		return input.FieldWidth, true
	case p.Height.Focused:
		return input.FieldHeight, true
	}
	return 0, false
}

// Focus moves keyboard focus to f.
func (p *Panel) Focus(f input.Field) {
	p.Width.Focused = f == input.FieldWidth
	p.Height.Focused = f == input.FieldHeight
}

// Blur drops keyboard focus.
func (p *Panel) Blur() {
	p.Width.Focused = false
	p.Height.Focused = false
}

// CycleFocus moves focus width -> height -> none -> width.
func (p *Panel) CycleFocus() {
	f, ok := p.FocusedField()
	switch {
	case !ok:
		p.Focus(input.FieldWidth)
	case f == input.FieldWidth:
		p.Focus(input.FieldHeight)
	default:
		p.Blur()
	}
}

// HitTest returns the widget containing the panel-local point (x, y).
func (p *Panel) HitTest(x, y int) Target {
	switch {
	case pointInRect(x, y, p.PlayPause.Rect):
		return TargetPlayPause
	case pointInRect(x, y, p.Step.Rect):
		return TargetStep
	case pointInRect(x, y, p.Width.Rect):
		return TargetWidth
	case pointInRect(x, y, p.Height.Rect):
		return TargetHeight
	}
	return TargetNone
}

// Click activates the widget at the panel-local point (x, y). Disabled
// buttons are inert; clicking a field focuses it, clicking elsewhere blurs.
func (p *Panel) Click(x, y int, h Handler) Target {
	target := p.HitTest(x, y)
	switch target {
	case TargetPlayPause:
		if !p.PlayPause.Disabled {
			h.TogglePlay()
		}
	case TargetStep:
		if !p.Step.Disabled {
			h.AdvanceOne()
		}
	case TargetWidth:
		p.Focus(input.FieldWidth)
	case TargetHeight:
		p.Focus(input.FieldHeight)
	default:
		p.Blur()
	}
	return target
}

// TypeRune inserts r into the focused field and reports the key release to h.
// Every key release on a focused field is reported, even when the text did
// not change. It returns false when no field has focus.
func (p *Panel) TypeRune(r rune, h Handler) bool {
	f, ok := p.FocusedField()
	if !ok {
		return false
	}
	p.Field(f).Insert(r)
	h.DimensionKeyUp(f)
	return true
}

// Backspace deletes from the focused field and reports the key release to h.
func (p *Panel) Backspace(h Handler) bool {
	f, ok := p.FocusedField()
	if !ok {
		return false
	}
	p.Field(f).Backspace()
	h.DimensionKeyUp(f)
	return true
}

func (p *Panel) layout() {
	if p.panelWidth <= 0 {
		return
	}
	inner := p.panelWidth - 2*panelPadding
	top := controlsTop
	fieldX := panelPadding + labelWidth
	fieldW := inner - labelWidth
	if fieldW < minFieldWidth {
		fieldW = minFieldWidth
	}
	p.Width.Rect = image.Rect(fieldX, top, fieldX+fieldW, top+fieldHeight)
	top += lineHeight
	p.Height.Rect = image.Rect(fieldX, top, fieldX+fieldW, top+fieldHeight)
	top += lineHeight + sectionGap

	buttonW := (inner - buttonGap) / 2
	p.PlayPause.Rect = image.Rect(panelPadding, top, panelPadding+buttonW, top+buttonSize)
	p.Step.Rect = image.Rect(panelPadding+buttonW+buttonGap, top, panelPadding+2*buttonW+buttonGap, top+buttonSize)
}

const (
	panelPadding   = 12
	lineHeight     = 30
	fieldHeight    = 22
	labelWidth     = 56
	minFieldWidth  = 40
	buttonSize     = 28
	buttonGap      = 8
	sectionGap     = 6
	headerBaseline = 18
	labelBaseline  = 16
	controlsTop    = panelPadding + headerBaseline + 14
)
