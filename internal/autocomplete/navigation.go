package autocomplete

import (
	"strings"

	"golang.org/x/text/cases"
)

// NoHighlight is the highlighted index when no item is highlighted.
const NoHighlight = -1

// State is the interaction state of one widget.
type State struct {
	IsOpen           bool         `json:"isOpen"`
	HighlightedIndex int          `json:"highlightedIndex"`
	Menu             MenuPosition `json:"menu"`
}

// Highlighted reports whether an item is highlighted.
func (s State) Highlighted() bool {
	return s.HighlightedIndex != NoHighlight
}

func initialState() State {
	return State{HighlightedIndex: NoHighlight}
}

// nextSelectable scans forward from the highlight, wrapping around, for the
// first selectable item. ok is false when nothing should change.
func nextSelectable[T any](items []T, highlighted int, selectable func(T) bool) (index int, ok bool) {
	n := len(items)
	if n == 0 {
		return highlighted, false
	}
	start := highlighted
	if start < 0 {
		start = -1
	}
	for i := 0; i < n; i++ {
		p := (start + i + 1) % n
		if selectable(items[p]) {
			return p, p != highlighted
		}
	}
	return highlighted, false
}

// prevSelectable scans backward from the highlight, or from one past the
// end when nothing is highlighted. Landing on the same index still counts
// as a move.
func prevSelectable[T any](items []T, highlighted int, selectable func(T) bool) (index int, ok bool) {
	n := len(items)
	if n == 0 {
		return highlighted, false
	}
	start := highlighted
	if start == NoHighlight {
		start = n
	}
	for i := 0; i < n; i++ {
		p := ((start-(1+i))%n + n) % n
		if selectable(items[p]) {
			return p, true
		}
	}
	if highlighted == NoHighlight {
		return highlighted, false
	}
	return highlighted, true
}

// autoHighlight picks the first selectable item at or after the current
// highlight and keeps it only when its display value starts with value,
// ignoring case.
func autoHighlight[T any](items []T, highlighted int, value string, display func(T) string, selectable func(T) bool) int {
	n := len(items)
	if n == 0 {
		return NoHighlight
	}
	index := highlighted
	if index < 0 || index >= n {
		index = 0
	}
	for i := 0; i < n; i++ {
		if selectable(items[index]) {
			break
		}
		index = (index + 1) % n
	}
	item := items[index]
	if !selectable(item) || value == "" {
		return NoHighlight
	}
	if hasFoldedPrefix(display(item), value) {
		return index
	}
	return NoHighlight
}

func hasFoldedPrefix(s, prefix string) bool {
	fold := cases.Fold()
	return strings.HasPrefix(fold.String(s), fold.String(prefix))
}
