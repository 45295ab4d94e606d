package autocomplete

import (
	"strconv"
	"strings"
	"unicode"
)

// MenuPosition is where the menu is anchored, in host coordinates.
type MenuPosition struct {
	Left     int  `json:"left"`
	Top      int  `json:"top"`
	MinWidth int  `json:"minWidth"`
	Set      bool `json:"set"`
}

// computeMenuPosition anchors the menu under the input, widened by the
// horizontal margins and pushed down by the bottom margin.
func computeMenuPosition(rect Rect, margins Margins) MenuPosition {
	mb := parseMargin(margins.Bottom)
	ml := parseMargin(margins.Left)
	mr := parseMargin(margins.Right)
	return MenuPosition{
		Left:     rect.Left + ml,
		Top:      rect.Bottom() + mb,
		MinWidth: rect.Width + ml + mr,
		Set:      true,
	}
}

// parseMargin reads the leading integer of a CSS length ("12px" is 12).
// Anything without a leading integer ("auto", "") is 0.
func parseMargin(s string) int {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}
