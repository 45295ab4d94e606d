package tui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/johnconnor-sec/autocomplete-go/internal/autocomplete"
)

// Node is what the renderers hand back to the app: something that knows
// where it sits on screen and how to paint itself there.
type Node interface {
	Draw(s tcell.Screen, th *Theme)
}

func contains(r autocomplete.Rect, x, y int) bool {
	return x >= r.Left && x < r.Right() && y >= r.Top && y < r.Bottom()
}

// drawText paints text one grapheme cluster at a time starting at column x
// and returns the column after the last cell written. Clusters that would
// cross maxX are not drawn.
func drawText(s tcell.Screen, x, y, maxX int, text string, style tcell.Style) int {
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		runes := g.Runes()
		w := runewidth.StringWidth(g.Str())
		if w == 0 {
			continue
		}
		if x+w > maxX {
			break
		}
		s.SetContent(x, y, runes[0], runes[1:], style)
		x += w
	}
	return x
}

func fill(s tcell.Screen, x, y, width int, style tcell.Style) {
	for i := 0; i < width; i++ {
		s.SetContent(x+i, y, ' ', nil, style)
	}
}

// drawBox paints a single line border around r and clears its inside.
func drawBox(s tcell.Screen, r autocomplete.Rect, border, inside tcell.Style) {
	if r.Width < 2 || r.Height < 2 {
		return
	}
	right, bottom := r.Right()-1, r.Bottom()-1
	for x := r.Left + 1; x < right; x++ {
		s.SetContent(x, r.Top, tcell.RuneHLine, nil, border)
		s.SetContent(x, bottom, tcell.RuneHLine, nil, border)
	}
	for y := r.Top + 1; y < bottom; y++ {
		s.SetContent(r.Left, y, tcell.RuneVLine, nil, border)
		s.SetContent(right, y, tcell.RuneVLine, nil, border)
		fill(s, r.Left+1, y, r.Width-2, inside)
	}
	s.SetContent(r.Left, r.Top, tcell.RuneULCorner, nil, border)
	s.SetContent(right, r.Top, tcell.RuneURCorner, nil, border)
	s.SetContent(r.Left, bottom, tcell.RuneLLCorner, nil, border)
	s.SetContent(right, bottom, tcell.RuneLRCorner, nil, border)
}

// truncate shortens s to at most width columns, marking the cut with an ellipsis.
func truncate(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= 1 {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, "…")
}

// wrap breaks text into lines no wider than width, splitting on spaces.
func wrap(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		line := ""
		for _, word := range strings.Fields(para) {
			switch {
			case line == "":
				line = word
			case runewidth.StringWidth(line)+1+runewidth.StringWidth(word) <= width:
				line += " " + word
			default:
				lines = append(lines, truncate(line, width))
				line = word
			}
		}
		lines = append(lines, truncate(line, width))
	}
	return lines
}
