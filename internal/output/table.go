package output

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
)

const columnGap = "  "

var ansiEscape = regexp.MustCompile("\x1b\\[[0-9;]*m")

// cellWidth is the number of terminal cells text occupies once printed.
func cellWidth(text string) int {
	return runewidth.StringWidth(ansiEscape.ReplaceAllString(text, ""))
}

// Table collects rows and prints them in aligned columns. Widths are
// measured in terminal cells, so wide glyphs and colour codes line up.
type Table struct {
	formatter *Formatter
	headers   []string
	rows      [][]string
}

// Headers sets the table headers
func (t *Table) Headers(headers ...string) *Table {
	t.headers = headers
	return t
}

// Row adds a row to the table
func (t *Table) Row(cells ...string) *Table {
	t.rows = append(t.rows, cells)
	return t
}

// Len returns the number of rows added so far
func (t *Table) Len() int {
	return len(t.rows)
}

func (t *Table) widths() []int {
	var widths []int
	measure := func(cells []string) {
		for i, c := range cells {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], cellWidth(c))
		}
	}
	measure(t.headers)
	for _, row := range t.rows {
		measure(row)
	}
	return widths
}

// line pads every cell but the last to its column width.
func (t *Table) line(cells []string, widths []int, style func(string) string) string {
	var b strings.Builder
	for i, c := range cells {
		pad := 0
		if i < len(cells)-1 {
			pad = widths[i] - cellWidth(c)
		}
		if style != nil {
			c = style(c)
		}
		b.WriteString(c)
		if i < len(cells)-1 {
			b.WriteString(strings.Repeat(" ", pad) + columnGap)
		}
	}
	return strings.TrimRight(b.String(), " ")
}

// Print renders the table
func (t *Table) Print() {
	f := t.formatter
	if f.level == LevelQuiet {
		return
	}

	widths := t.widths()
	if len(t.headers) > 0 {
		bold := func(s string) string { return f.colorize(s, f.theme.Primary, StyleBold) }
		fmt.Fprintln(f.writer, t.line(t.headers, widths, bold))

		rules := make([]string, len(t.headers))
		for i, header := range t.headers {
			rules[i] = strings.Repeat("─", runewidth.StringWidth(header))
		}
		fmt.Fprintln(f.writer, t.line(rules, widths, nil))
	}

	for _, row := range t.rows {
		fmt.Fprintln(f.writer, t.line(row, widths, nil))
	}
}
