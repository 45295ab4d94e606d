package output

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Header prints a prominent header
func (f *Formatter) Header(text string) {
	if f.level == LevelQuiet {
		return
	}

	border := strings.Repeat("═", min(runewidth.StringWidth(text)+4, f.width))

	fmt.Fprintln(f.writer, f.colorize(border, f.theme.Border, StyleBold))
	fmt.Fprintln(f.writer, f.colorize(fmt.Sprintf("  %s  ", text), f.theme.Primary, StyleBold))
	fmt.Fprintln(f.writer, f.colorize(border, f.theme.Border, StyleBold))
}

// Subheader prints a section header
func (f *Formatter) Subheader(text string) {
	if f.level == LevelQuiet {
		return
	}

	styled := f.colorize(text, f.theme.Secondary, StyleBold)
	fmt.Fprintln(f.writer, styled)

	underline := strings.Repeat("─", min(runewidth.StringWidth(text), f.width))
	fmt.Fprintln(f.writer, f.colorize(underline, f.theme.Border, StyleNormal))
}

// List prints a bulleted list item
func (f *Formatter) List(format string, args ...any) {
	if f.level == LevelQuiet {
		return
	}
	message := fmt.Sprintf(format, args...)
	styled := f.colorize("• "+message, f.theme.Primary, StyleNormal)
	fmt.Fprintln(f.writer, styled)
}

// Table starts a new table for columnized output
func (f *Formatter) Table() *Table {
	return &Table{
		formatter: f,
		headers:   make([]string, 0),
		rows:      make([][]string, 0),
	}
}
