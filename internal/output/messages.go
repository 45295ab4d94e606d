package output

import "fmt"

// message prints one status line. Screen reader mode replaces the symbol
// with the word it stands for.
func (f *Formatter) message(symbol, word string, color Color, style Style, format string, args ...any) {
	text := fmt.Sprintf(format, args...)
	if f.plain {
		fmt.Fprintf(f.writer, "%s: %s\n", word, text)
		return
	}
	fmt.Fprintln(f.writer, f.colorize(symbol+" "+text, color, style))
}

// Success prints a success message
func (f *Formatter) Success(format string, args ...any) {
	if f.level == LevelQuiet {
		return
	}
	f.message("✓", "SUCCESS", f.theme.Success, StyleBold, format, args...)
}

// Error prints an error message, even when quiet
func (f *Formatter) Error(format string, args ...any) {
	f.message("✗", "ERROR", f.theme.Error, StyleBold, format, args...)
}

// Warning prints a warning message
func (f *Formatter) Warning(format string, args ...any) {
	if f.level == LevelQuiet {
		return
	}
	f.message("⚠", "WARNING", f.theme.Warning, StyleBold, format, args...)
}

// Info prints an info message
func (f *Formatter) Info(format string, args ...any) {
	if f.level == LevelQuiet {
		return
	}
	f.message("ℹ", "INFO", f.theme.Info, StyleNormal, format, args...)
}

// Debug prints a debug message
func (f *Formatter) Debug(format string, args ...any) {
	if f.level < LevelDebug {
		return
	}
	f.message("🐛", "DEBUG", f.theme.Muted, StyleDim, format, args...)
}

// Hint prints an indented, dimmed follow-up line under a message
func (f *Formatter) Hint(format string, args ...any) {
	if f.level == LevelQuiet {
		return
	}
	f.message("  →", "HINT", f.theme.Muted, StyleDim, format, args...)
}
