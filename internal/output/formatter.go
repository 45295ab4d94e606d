package output

import (
	"fmt"
	"io"
	"strings"
)

// Color represents ANSI color codes
type Color int

const (
	ColorReset Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
)

// Style represents text formatting
type Style int

const (
	StyleNormal Style = iota
	StyleBold
	StyleDim
	StyleItalic
	StyleUnderline
)

// OutputLevel represents the verbosity level
type OutputLevel int

const (
	LevelQuiet OutputLevel = iota
	LevelNormal
	LevelVerbose
	LevelDebug
)

// Theme defines the color scheme for different elements
type Theme struct {
	Primary    Color
	Secondary  Color
	Success    Color
	Warning    Color
	Error      Color
	Info       Color
	Muted      Color
	Highlight  Color
	Border     Color
	Background Color
}

// DefaultTheme provides a sensible default color scheme
var DefaultTheme = Theme{
	Primary:    ColorBlue,
	Secondary:  ColorCyan,
	Success:    ColorGreen,
	Warning:    ColorYellow,
	Error:      ColorRed,
	Info:       ColorBlue,
	Muted:      ColorWhite,
	Highlight:  ColorBrightYellow,
	Border:     ColorMagenta,
	Background: ColorReset,
}

var ansiColors = map[Color]string{
	ColorRed:           "31",
	ColorGreen:         "32",
	ColorYellow:        "33",
	ColorBlue:          "34",
	ColorMagenta:       "35",
	ColorCyan:          "36",
	ColorWhite:         "37",
	ColorBrightRed:     "91",
	ColorBrightGreen:   "92",
	ColorBrightYellow:  "93",
	ColorBrightBlue:    "94",
	ColorBrightMagenta: "95",
	ColorBrightCyan:    "96",
	ColorBrightWhite:   "97",
}

// Formatter handles styled output for the command line
type Formatter struct {
	writer      io.Writer
	theme       Theme
	level       OutputLevel
	colorOutput bool
	plain       bool
	width       int
}

// NewFormatter creates a new formatter writing to w
func NewFormatter(w io.Writer) *Formatter {
	return &Formatter{
		writer:      w,
		theme:       DefaultTheme,
		level:       LevelNormal,
		colorOutput: isColorSupported(),
		width:       getTerminalWidth(),
	}
}

// SetTheme changes the color theme
func (f *Formatter) SetTheme(theme Theme) {
	f.theme = theme
}

// SetLevel changes the output verbosity level
func (f *Formatter) SetLevel(level OutputLevel) {
	f.level = level
}

// SetColorOutput enables or disables color output
func (f *Formatter) SetColorOutput(enabled bool) {
	f.colorOutput = enabled
}

// colorize applies color and style to text if color output is enabled
func (f *Formatter) colorize(text string, color Color, style Style) string {
	if !f.colorOutput {
		return text
	}

	code, ok := ansiColors[color]
	if !ok {
		return text
	}

	var codes []string
	switch style {
	case StyleBold:
		codes = append(codes, "1")
	case StyleDim:
		codes = append(codes, "2")
	case StyleItalic:
		codes = append(codes, "3")
	case StyleUnderline:
		codes = append(codes, "4")
	}
	codes = append(codes, code)

	return fmt.Sprintf("\033[%sm%s\033[0m", strings.Join(codes, ";"), text)
}
