// Package types provides the suggestion data model with validation support.
package types

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"unicode"
)

// Suggestion is one entry offered by the autocomplete menu.
// Header rows group the entries that follow them and can never be chosen.
type Suggestion struct {
	Value    string `json:"value" yaml:"value" toml:"value"`
	Label    string `json:"label,omitempty" yaml:"label,omitempty" toml:"label,omitempty"`
	Abbr     string `json:"abbr,omitempty" yaml:"abbr,omitempty" toml:"abbr,omitempty"`
	Group    string `json:"group,omitempty" yaml:"group,omitempty" toml:"group,omitempty"`
	Header   bool   `json:"header,omitempty" yaml:"header,omitempty" toml:"header,omitempty"`
	Disabled bool   `json:"disabled,omitempty" yaml:"disabled,omitempty" toml:"disabled,omitempty"`
}

// DisplayValue is the text written into the input when the suggestion is chosen.
// Header rows have no display value.
func (s Suggestion) DisplayValue() string {
	if s.Header {
		return ""
	}
	return s.Value
}

// Text is what the menu shows for the row.
func (s Suggestion) Text() string {
	if s.Label != "" {
		return s.Label
	}
	return s.Value
}

// Selectable reports whether the row can be highlighted and chosen.
func (s Suggestion) Selectable() bool {
	return !s.Header && !s.Disabled
}

// NewHeader creates a non-selectable group header row.
func NewHeader(title string) Suggestion {
	return Suggestion{Label: title, Group: title, Header: true}
}

// WithHeaders returns a copy of items with a header row inserted before
// each run of entries sharing a Group. Entries without a group are left
// as they are. Existing header rows are dropped first.
func WithHeaders(items []Suggestion) []Suggestion {
	out := make([]Suggestion, 0, len(items))
	current := ""
	for _, it := range items {
		if it.Header {
			continue
		}
		if it.Group != "" && it.Group != current {
			out = append(out, NewHeader(it.Group))
		}
		current = it.Group
		out = append(out, it)
	}
	return out
}

// Grouped orders items by Group, keeping their relative order within a
// group, and inserts the header rows.
func Grouped(items []Suggestion) []Suggestion {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b Suggestion) int {
		return cmp.Compare(a.Group, b.Group)
	})
	return WithHeaders(sorted)
}

// ValidationError represents a validation error with context.
type ValidationError struct {
	Field   string `json:"field"`
	Value   string `json:"value"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation failed for field '%s' with value '%s': %s", e.Field, e.Value, e.Message)
}

// Validate performs validation on a Suggestion.
func (s *Suggestion) Validate() error {
	var errors []ValidationError

	if s.Header {
		if strings.TrimSpace(s.Label) == "" && strings.TrimSpace(s.Group) == "" {
			errors = append(errors, ValidationError{
				Field:   "label",
				Value:   s.Label,
				Message: "header rows need a label or a group",
			})
		}
		if s.Value != "" {
			errors = append(errors, ValidationError{
				Field:   "value",
				Value:   s.Value,
				Message: "header rows cannot carry a value",
			})
		}
	} else if strings.TrimSpace(s.Value) == "" {
		errors = append(errors, ValidationError{
			Field:   "value",
			Value:   s.Value,
			Message: "suggestion value is required and cannot be empty",
		})
	}

	if strings.IndexFunc(s.Abbr, unicode.IsSpace) >= 0 {
		errors = append(errors, ValidationError{
			Field:   "abbr",
			Value:   s.Abbr,
			Message: "abbreviation cannot contain whitespace",
		})
	}

	if len(errors) > 0 {
		return &ValidationErrors{Errors: errors}
	}

	return nil
}

// ValidateAll validates a list of suggestions, prefixing each field with its index.
func ValidateAll(items []Suggestion) error {
	var errors []ValidationError
	for i := range items {
		if err := items[i].Validate(); err != nil {
			if verrs, ok := err.(*ValidationErrors); ok {
				for _, e := range verrs.Errors {
					e.Field = fmt.Sprintf("items[%d].%s", i, e.Field)
					errors = append(errors, e)
				}
			}
		}
	}
	if len(errors) > 0 {
		return &ValidationErrors{Errors: errors}
	}
	return nil
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func (e *ValidationErrors) Error() string {
	var messages []string
	for _, err := range e.Errors {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(messages, "\n  - "))
}
