package output

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// CheckStatus is the outcome of one environment check
type CheckStatus int

const (
	CheckReady CheckStatus = iota
	CheckWarning
	CheckFailed
)

func (s CheckStatus) String() string {
	switch s {
	case CheckReady:
		return "✓ Ready"
	case CheckWarning:
		return "⚠ Warning"
	default:
		return "✗ Failed"
	}
}

// Check is one row of the doctor report
type Check struct {
	Component   string
	Status      CheckStatus
	Details     map[string]any
	Suggestions []string
}

// RenderChecks prints the checks as a table followed by the suggestions
// of every check that did not pass.
func (f *Formatter) RenderChecks(title string, checks []Check) {
	f.Header(title)

	table := f.Table().Headers("Component", "Status", "Details")
	for _, c := range checks {
		status := c.Status.String()
		switch c.Status {
		case CheckReady:
			status = f.colorize(status, f.theme.Success, StyleBold)
		case CheckWarning:
			status = f.colorize(status, f.theme.Warning, StyleBold)
		default:
			status = f.colorize(status, f.theme.Error, StyleBold)
		}
		table.Row(c.Component, status, formatDetails(c.Details))
	}
	table.Print()

	for _, c := range checks {
		if c.Status == CheckReady || len(c.Suggestions) == 0 {
			continue
		}
		fmt.Fprintln(f.writer)
		role := "warning"
		if c.Status == CheckFailed {
			role = "error"
		}
		f.ScreenReaderText(role, fmt.Sprintf("%s issues", c.Component))
		for _, s := range c.Suggestions {
			f.List("%s", s)
		}
	}
}

// Failed reports whether any check failed outright
func Failed(checks []Check) bool {
	return slices.ContainsFunc(checks, func(c Check) bool { return c.Status == CheckFailed })
}

func formatDetails(details map[string]any) string {
	parts := make([]string, 0, len(details))
	for _, k := range slices.Sorted(maps.Keys(details)) {
		parts = append(parts, fmt.Sprintf("%s: %v", k, details[k]))
	}
	return strings.Join(parts, ", ")
}
