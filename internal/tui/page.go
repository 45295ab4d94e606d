package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/johnconnor-sec/autocomplete-go/internal/autocomplete"
)

// slot marks a page line that a control is drawn over.
type slot int

const (
	slotNone slot = iota
	slotField
	slotButton
)

type pageLine struct {
	text  string
	style tcell.Style
	slot  slot
}

// Page is the vertically scrollable document holding the controls. It is
// the window whose scroll offset the widget saves and restores.
type Page struct {
	lines   []pageLine
	scrollY int
	height  int
}

func (p *Page) ScrollOffset() autocomplete.ScrollOffset {
	return autocomplete.ScrollOffset{Y: p.scrollY}
}

// ScrollTo scrolls vertically; the page never scrolls sideways.
func (p *Page) ScrollTo(_, y int) {
	p.scrollY = max(0, min(y, p.maxScroll()))
}

// ScrollBy scrolls by dy lines.
func (p *Page) ScrollBy(dy int) {
	p.ScrollTo(0, p.scrollY+dy)
}

func (p *Page) maxScroll() int {
	return max(0, len(p.lines)-p.height)
}

// SetLines replaces the content and keeps the scroll offset in range.
func (p *Page) SetLines(lines []pageLine, height int) {
	p.lines = lines
	p.height = height
	p.ScrollTo(0, p.scrollY)
}

// screenRow returns the screen row of a slot, which may be off screen.
func (p *Page) screenRow(s slot) (int, bool) {
	for i, l := range p.lines {
		if l.slot == s {
			return i - p.scrollY, true
		}
	}
	return 0, false
}

func (p *Page) Draw(s tcell.Screen, width int) {
	for row := 0; row < p.height; row++ {
		i := p.scrollY + row
		if i >= len(p.lines) {
			break
		}
		l := p.lines[i]
		if l.slot == slotNone {
			drawText(s, pageMargin, row, width-pageMargin, l.text, l.style)
		}
	}
}

// pageMargin is the left indent of everything on the page.
const pageMargin = 2
