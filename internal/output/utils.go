package output

import (
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

func isColorSupported() bool {
	// Respect NO_COLOR standard
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	if isCIEnvironment() {
		return os.Getenv("CI_NO_COLOR") == ""
	}

	termName := os.Getenv("TERM")
	if termName == "" || termName == "dumb" {
		return false
	}

	colorTerms := []string{
		"xterm", "screen", "tmux", "rxvt", "linux", "cygwin", "putty", "alacritty", "kitty",
	}
	for _, colorTerm := range colorTerms {
		if strings.Contains(termName, colorTerm) {
			return true
		}
	}

	return IsTerminal(os.Stderr)
}

// isCIEnvironment checks if running in CI/CD
func isCIEnvironment() bool {
	ciVars := []string{
		"CI", "GITHUB_ACTIONS", "TRAVIS", "CIRCLECI", "GITLAB_CI",
		"JENKINS_URL", "BUILDKITE", "APPVEYOR", "DRONE", "TF_BUILD",
	}

	for _, env := range ciVars {
		if os.Getenv(env) != "" {
			return true
		}
	}
	return false
}

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// getTerminalWidth returns COLUMNS, the width of stdout or stderr, or 80
func getTerminalWidth() int {
	if width := os.Getenv("COLUMNS"); width != "" {
		if w, err := strconv.Atoi(width); err == nil && w > 0 {
			return w
		}
	}

	for _, f := range []*os.File{os.Stdout, os.Stderr} {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}

	return 80
}
