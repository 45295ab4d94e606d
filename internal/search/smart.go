package search

import (
	"strings"
	"unicode"
)

// ModeWords accepts items where the value prefixes any word or spells
// the initials of a multi-word text ("nc" for North Carolina).
const ModeWords Mode = "words"

// Words is the predicate behind ModeWords
func Words[T any](text func(T) string) func(T, string) bool {
	return func(item T, value string) bool {
		if value == "" {
			return true
		}
		t := text(item)
		return IsAcronym(value, t) || HasWordPrefix(t, value)
	}
}

// IsAcronym reports whether query spells the first letters of the words of text
func IsAcronym(query, text string) bool {
	if query == "" {
		return false
	}

	words := fieldsOf(text)
	if len(words) < 2 {
		return false
	}

	var acronym strings.Builder
	for _, word := range words {
		for _, r := range word {
			acronym.WriteRune(unicode.ToLower(r))
			break
		}
	}

	return strings.EqualFold(query, acronym.String())
}

// HasWordPrefix reports whether any word of text starts with prefix, ignoring case.
// A prefix spanning several words ("new yo") is checked from each word start.
func HasWordPrefix(text, prefix string) bool {
	t := fold(text)
	p := fold(prefix)
	for _, w := range splitIntoWords(t) {
		if strings.HasPrefix(string([]rune(t)[w.Start:]), p) {
			return true
		}
	}
	return false
}

func fieldsOf(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
