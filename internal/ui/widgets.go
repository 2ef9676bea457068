package ui

import (
	"image"
	"unicode"
	"unicode/utf8"
)

// Play and pause glyphs shown on the toggle button.
const (
	PlayGlyph  = "▶"
	PauseGlyph = "⏸"
)

// Button is a labelled, optionally disabled push button.
type Button struct {
	Label    string
	Disabled bool
	Rect     image.Rectangle
}

// SetLabel replaces the button label.
func (b *Button) SetLabel(label string) { b.Label = label }

// SetDisabled enables or disables the button.
func (b *Button) SetDisabled(disabled bool) { b.Disabled = disabled }

// TextField is a single-line text input.
type TextField struct {
	Label   string
	Focused bool
	Rect    image.Rectangle
	MaxLen  int

	text string
}

// Value returns the current text.
func (f *TextField) Value() string { return f.text }

// SetValue replaces the text, truncated to MaxLen runes.
func (f *TextField) SetValue(s string) {
	if f.MaxLen > 0 && utf8.RuneCountInString(s) > f.MaxLen {
		s = string([]rune(s)[:f.MaxLen])
	}
	f.text = s
}

// Insert appends a printable rune. It reports whether the text changed.
func (f *TextField) Insert(r rune) bool {
	if !unicode.IsPrint(r) {
		return false
	}
	if f.MaxLen > 0 && utf8.RuneCountInString(f.text) >= f.MaxLen {
		return false
	}
	f.text += string(r)
	return true
}

// Backspace removes the last rune. It reports whether the text changed.
func (f *TextField) Backspace() bool {
	if f.text == "" {
		return false
	}
	_, size := utf8.DecodeLastRuneInString(f.text)
	f.text = f.text[:len(f.text)-size]
	return true
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}
