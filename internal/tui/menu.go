package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/johnconnor-sec/autocomplete-go/internal/autocomplete"
	"github.com/johnconnor-sec/autocomplete-go/internal/search"
	"github.com/johnconnor-sec/autocomplete-go/internal/types"
)

// Row is one rendered suggestion.
type Row struct {
	Item        types.Suggestion
	Spans       []search.Span
	Highlighted bool

	index int
	x, y  int
	width int
}

// NewRow renders item with the matched parts of its text marked.
func NewRow(item types.Suggestion, highlighted bool, highlights []search.Range) *Row {
	return &Row{
		Item:        item,
		Spans:       search.Spans(item.Text(), highlights),
		Highlighted: highlighted,
	}
}

// OffsetTop is the row's line within the menu content.
func (r *Row) OffsetTop() int { return r.index }

// OffsetHeight is always one line.
func (r *Row) OffsetHeight() int { return 1 }

// Width is the number of columns the row needs.
func (r *Row) Width() int {
	w := 2 + runewidth.StringWidth(r.Item.Text())
	if r.Item.Abbr != "" && !r.Item.Header {
		w += 2 + runewidth.StringWidth(r.Item.Abbr)
	}
	return w
}

func (r *Row) Draw(s tcell.Screen, th *Theme) {
	base, match := th.Item, th.ItemMatch
	switch {
	case r.Item.Header:
		base, match = th.Header, th.Header
	case r.Item.Disabled:
		base, match = th.Disabled, th.Disabled
	case r.Highlighted:
		base, match = th.Highlight, th.HighlightMatch
	}

	fill(s, r.x, r.y, r.width, base)
	maxX := r.x + r.width
	x := r.x + 1
	for _, span := range r.Spans {
		style := base
		if span.Matched {
			style = match
		}
		x = drawText(s, x, r.y, maxX-1, span.Text, style)
	}

	if r.Item.Abbr != "" && !r.Item.Header {
		aw := runewidth.StringWidth(r.Item.Abbr)
		if ax := maxX - 1 - aw; ax > x {
			abbr := th.Muted.Background(bgOf(base))
			drawText(s, ax, r.y, maxX-1, r.Item.Abbr, abbr)
		}
	}
}

func bgOf(st tcell.Style) tcell.Color {
	_, bg, _ := st.Decompose()
	return bg
}

// Menu is the suggestion box. The app keeps one instance that is refilled
// on every render, so its scroll position survives while it stays open.
type Menu struct {
	rows      []*Row
	message   string
	rect      autocomplete.Rect
	scrollTop int
	maxHeight int
}

// NewMenu creates a menu that shows at most maxHeight rows at a time.
func NewMenu(maxHeight int) *Menu {
	return &Menu{maxHeight: max(1, maxHeight)}
}

// Update lays the menu out for a render. Rows are placed at the anchor in
// style, or under fallback while the widget has not measured the input
// yet. message replaces the rows when it is not empty.
func (m *Menu) Update(items []autocomplete.ItemView[Node], message string, style autocomplete.MenuStyle, fallback autocomplete.Rect, screenW, screenH int) {
	m.rows = m.rows[:0]
	m.message = message
	width := style.MinWidth
	for i, it := range items {
		row, ok := it.Node.(*Row)
		if !ok {
			continue
		}
		row.index = i
		m.rows = append(m.rows, row)
		width = max(width, row.Width()+2)
	}
	if message != "" {
		width = max(width, runewidth.StringWidth(message)+4)
	}

	left, top := style.Left, style.Top
	if !style.Positioned {
		left, top = fallback.Left, fallback.Bottom()
		width = max(width, fallback.Width)
	}
	left = max(0, min(left, screenW-1))
	width = max(4, min(width, screenW-left))

	lines := len(m.rows)
	if message != "" {
		lines = 1
	}
	visible := min(max(lines, 1), m.maxHeight, max(1, screenH-top-2))
	m.rect = autocomplete.Rect{Left: left, Top: top, Width: width, Height: visible + 2}
	m.SetScrollTop(m.scrollTop)
}

// Reset forgets the scroll position once the menu is gone.
func (m *Menu) Reset() {
	m.scrollTop = 0
	m.rows = nil
}

// Rect returns the menu box including its border.
func (m *Menu) Rect() autocomplete.Rect { return m.rect }

// Message returns the text shown instead of rows, if any.
func (m *Menu) Message() string { return m.message }

// ScrollTop returns the first visible content line.
func (m *Menu) ScrollTop() int { return m.scrollTop }

// SetScrollTop scrolls the content, clamped to what can be shown.
func (m *Menu) SetScrollTop(top int) {
	limit := 0
	if m.message == "" {
		limit = max(0, len(m.rows)-m.ClientHeight())
	}
	m.scrollTop = max(0, min(top, limit))
}

// ClientHeight is the number of content lines inside the border.
func (m *Menu) ClientHeight() int {
	return max(0, m.rect.Height-2)
}

// Contains reports whether the cell is inside the box.
func (m *Menu) Contains(x, y int) bool {
	return contains(m.rect, x, y)
}

// RowAt returns the item index under the cell, or -1.
func (m *Menu) RowAt(x, y int) int {
	if m.message != "" || !m.Contains(x, y) {
		return -1
	}
	line := y - m.rect.Top - 1
	if line < 0 || line >= m.ClientHeight() || x == m.rect.Left || x == m.rect.Right()-1 {
		return -1
	}
	i := m.scrollTop + line
	if i >= len(m.rows) {
		return -1
	}
	return m.rows[i].index
}

func (m *Menu) Draw(s tcell.Screen, th *Theme) {
	drawBox(s, m.rect, th.Border, th.Item)
	inner := m.rect.Width - 2
	if m.message != "" {
		drawText(s, m.rect.Left+2, m.rect.Top+1, m.rect.Left+1+inner, m.message, th.Message)
		return
	}
	for line := 0; line < m.ClientHeight(); line++ {
		i := m.scrollTop + line
		if i >= len(m.rows) {
			break
		}
		row := m.rows[i]
		row.x, row.y, row.width = m.rect.Left+1, m.rect.Top+1+line, inner
		row.Draw(s, th)
	}

	right := m.rect.Right() - 1
	if m.scrollTop > 0 {
		s.SetContent(right, m.rect.Top+1, '▲', nil, th.Border)
	}
	if m.scrollTop+m.ClientHeight() < len(m.rows) {
		s.SetContent(right, m.rect.Bottom()-2, '▼', nil, th.Border)
	}
}
