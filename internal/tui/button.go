package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/johnconnor-sec/autocomplete-go/internal/autocomplete"
)

// Button is the page's submit control. It exists so focus has somewhere
// to go when it leaves the field.
type Button struct {
	label   string
	rect    autocomplete.Rect
	focused bool
}

func (b *Button) name() string { return "submit" }

func (b *Button) setFocused(focused bool, _ string) {
	b.focused = focused
}

// Focused reports whether the button holds keyboard focus.
func (b *Button) Focused() bool { return b.focused }

func (b *Button) width() int {
	return runewidth.StringWidth(b.label) + 4
}

func (b *Button) Draw(s tcell.Screen, th *Theme) {
	style := th.Button
	if b.focused {
		style = th.ButtonFocused
	}
	fill(s, b.rect.Left, b.rect.Top, b.rect.Width, style)
	drawText(s, b.rect.Left+2, b.rect.Top, b.rect.Right(), b.label, style)
}
