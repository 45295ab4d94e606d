package output

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.Und)

// formatField renders a record value as text
func formatField(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', 2, 64)
	default:
		return fmt.Sprint(v)
	}
}

// applyFieldTransform applies a column transform to a field value
func applyFieldTransform(value, transform string) string {
	switch transform {
	case "":
		return value
	case "upper":
		return strings.ToUpper(value)
	case "lower":
		return strings.ToLower(value)
	case "title":
		return titleCaser.String(value)
	}
	if n, ok := strings.CutPrefix(transform, "truncate:"); ok {
		if width, err := strconv.Atoi(n); err == nil && width > 0 {
			return runewidth.Truncate(value, width, "…")
		}
	}
	return value
}
