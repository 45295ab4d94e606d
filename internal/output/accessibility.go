package output

import (
	"fmt"
	"strings"
)

// AccessibilityMode represents different accessibility configurations
type AccessibilityMode int

const (
	AccessibilityNormal AccessibilityMode = iota
	AccessibilityHighContrast
	AccessibilityScreenReader
	AccessibilityMinimal
)

var accessibilityNames = map[string]AccessibilityMode{
	"":              AccessibilityNormal,
	"normal":        AccessibilityNormal,
	"high-contrast": AccessibilityHighContrast,
	"screen-reader": AccessibilityScreenReader,
	"minimal":       AccessibilityMinimal,
}

// ParseAccessibilityMode accepts normal, high-contrast, screen-reader or minimal
func ParseAccessibilityMode(name string) (AccessibilityMode, error) {
	mode, ok := accessibilityNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return AccessibilityNormal, fmt.Errorf("unknown accessibility mode %q (use normal, high-contrast, screen-reader or minimal)", name)
	}
	return mode, nil
}

// SetAccessibilityMode configures the formatter for accessibility needs
func (f *Formatter) SetAccessibilityMode(mode AccessibilityMode) {
	f.plain = false
	switch mode {
	case AccessibilityHighContrast:
		f.theme = HighContrastTheme
		f.colorOutput = true
	case AccessibilityScreenReader:
		f.colorOutput = false
		f.plain = true
		f.theme = DefaultTheme
	case AccessibilityMinimal:
		f.colorOutput = false
		f.theme = DefaultTheme
	}
}

// HighContrastTheme for better visibility
var HighContrastTheme = Theme{
	Primary:    ColorBrightWhite,
	Secondary:  ColorBrightCyan,
	Success:    ColorBrightGreen,
	Warning:    ColorBrightYellow,
	Error:      ColorBrightRed,
	Info:       ColorBrightBlue,
	Muted:      ColorWhite,
	Highlight:  ColorBrightYellow,
	Border:     ColorBrightWhite,
	Background: ColorReset,
}

var roleColors = map[string]func(Theme) Color{
	"success": func(t Theme) Color { return t.Success },
	"error":   func(t Theme) Color { return t.Error },
	"warning": func(t Theme) Color { return t.Warning },
	"info":    func(t Theme) Color { return t.Info },
}

// ScreenReaderText prints content for a semantic role. Screen reader mode
// spells the role out instead of colouring the line.
func (f *Formatter) ScreenReaderText(role, content string) {
	if f.level == LevelQuiet {
		return
	}
	colorOf, known := roleColors[role]
	switch {
	case !known:
		fmt.Fprintln(f.writer, content)
	case f.plain:
		fmt.Fprintf(f.writer, "%s: %s\n", strings.ToUpper(role), content)
	default:
		fmt.Fprintln(f.writer, f.colorize(content, colorOf(f.theme), StyleNormal))
	}
}
