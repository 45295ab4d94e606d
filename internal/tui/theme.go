package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/johnconnor-sec/autocomplete-go/internal/config"
	"github.com/johnconnor-sec/autocomplete-go/internal/errors"
)

// Theme holds every style the app draws with
type Theme struct {
	Base   tcell.Style
	Title  tcell.Style
	Muted  tcell.Style
	Status tcell.Style
	Error  tcell.Style

	Field        tcell.Style
	FieldFocused tcell.Style
	Selection    tcell.Style
	Placeholder  tcell.Style

	Button        tcell.Style
	ButtonFocused tcell.Style

	Border         tcell.Style
	Item           tcell.Style
	ItemMatch      tcell.Style
	Highlight      tcell.Style
	HighlightMatch tcell.Style
	Header         tcell.Style
	Disabled       tcell.Style
	Message        tcell.Style
}

// NewTheme builds the styles from hex colours
func NewTheme(tc config.ThemeConfig) (Theme, error) {
	var firstErr error
	parse := func(name, hex string) colorful.Color {
		c, err := colorful.Hex(hex)
		if err != nil && firstErr == nil {
			firstErr = errors.Wrap(err, errors.ConfigInvalid, fmt.Sprintf("invalid theme colour %s: %q", name, hex)).
				WithSuggestion("Use #rrggbb notation")
		}
		return c
	}

	fg := parse("foreground", tc.Foreground)
	bg := parse("background", tc.Background)
	hl := parse("highlight", tc.Highlight)
	hlText := parse("highlight_text", tc.HighlightText)
	match := parse("match", tc.Match)
	header := parse("header", tc.Header)
	border := parse("border", tc.Border)
	muted := parse("muted", tc.Muted)
	if firstErr != nil {
		return Theme{}, firstErr
	}

	base := tcell.StyleDefault.Foreground(color(fg)).Background(color(bg))
	fieldBg := bg.BlendLab(fg, 0.12).Clamped()
	fieldFocusedBg := bg.BlendLab(hl, 0.25).Clamped()
	field := base.Background(color(fieldBg))

	return Theme{
		Base:   base,
		Title:  base.Bold(true),
		Muted:  base.Foreground(color(muted)),
		Status: base.Foreground(color(header)),
		Error:  base.Foreground(tcell.ColorRed).Bold(true),

		Field:        field,
		FieldFocused: field.Background(color(fieldFocusedBg)),
		Selection:    base.Foreground(color(hlText)).Background(color(hl)),
		Placeholder:  field.Foreground(color(muted)).Italic(true),

		Button:        field,
		ButtonFocused: base.Foreground(color(hlText)).Background(color(hl)).Bold(true),

		Border:         base.Foreground(color(border)),
		Item:           base,
		ItemMatch:      base.Foreground(color(match)).Bold(true),
		Highlight:      base.Foreground(color(hlText)).Background(color(hl)),
		HighlightMatch: base.Foreground(color(match.BlendLab(hlText, 0.3).Clamped())).Background(color(hl)).Bold(true),
		Header:         base.Foreground(color(header)).Bold(true),
		Disabled:       base.Foreground(color(muted.BlendLab(bg, 0.4).Clamped())),
		Message:        base.Foreground(color(muted)).Italic(true),
	}, nil
}

// DefaultTheme returns the theme for the default configuration
func DefaultTheme() Theme {
	th, err := NewTheme(config.DefaultConfig().Theme)
	if err != nil {
		return Theme{Base: tcell.StyleDefault}
	}
	return th
}

func color(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
