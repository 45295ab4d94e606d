package search

import (
	"cmp"
	"math"
	"strings"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/cases"
)

// Mode names a filtering strategy in configuration
type Mode string

const (
	ModePrefix    Mode = "prefix"
	ModeSubstring Mode = "substring"
	ModeFuzzy     Mode = "fuzzy"
	ModeNone      Mode = "none"
)

// Order names a sorting strategy in configuration
type Order string

const (
	OrderNone          Order = "none"
	OrderAlphabetical  Order = "alpha"
	OrderMatchPosition Order = "position"
	OrderScore         Order = "score"
	OrderDistance      Order = "distance"
)

// Modes lists the accepted filter modes
var Modes = []Mode{ModePrefix, ModeSubstring, ModeFuzzy, ModeWords, ModeNone}

// Orders lists the accepted sort orders
var Orders = []Order{OrderNone, OrderAlphabetical, OrderMatchPosition, OrderScore, OrderDistance}

func fold(s string) string {
	return cases.Fold().String(s)
}

// Prefix accepts items whose text starts with the value, ignoring case
func Prefix[T any](text func(T) string) func(T, string) bool {
	return func(item T, value string) bool {
		return strings.HasPrefix(fold(text(item)), fold(value))
	}
}

// Substring accepts items whose text contains the value, ignoring case
func Substring[T any](text func(T) string) func(T, string) bool {
	return func(item T, value string) bool {
		return strings.Contains(fold(text(item)), fold(value))
	}
}

// FuzzyPredicate accepts items that f matches against the value.
// An empty value accepts everything.
func FuzzyPredicate[T any](f *Fuzzy, text func(T) string) func(T, string) bool {
	return func(item T, value string) bool {
		_, ok := f.Match(value, text(item))
		return ok
	}
}

// Alphabetical orders items by folded text
func Alphabetical[T any](text func(T) string) func(a, b T, value string) int {
	return func(a, b T, _ string) int {
		return strings.Compare(fold(text(a)), fold(text(b)))
	}
}

// ByMatchPosition orders items by where the value first appears in their
// text, earlier first, then alphabetically. Items without the value sort last.
func ByMatchPosition[T any](text func(T) string) func(a, b T, value string) int {
	return func(a, b T, value string) int {
		ta, tb := fold(text(a)), fold(text(b))
		v := fold(value)
		ia, ib := position(ta, v), position(tb, v)
		if c := cmp.Compare(ia, ib); c != 0 {
			return c
		}
		return strings.Compare(ta, tb)
	}
}

func position(s, v string) int {
	i := strings.Index(s, v)
	if i < 0 {
		return math.MaxInt
	}
	return i
}

// ByScore orders items by fuzzy score, best first, then alphabetically
func ByScore[T any](f *Fuzzy, text func(T) string) func(a, b T, value string) int {
	score := func(item T, value string) float64 {
		if m, ok := f.Match(value, text(item)); ok {
			return m.Score
		}
		return 0
	}
	return func(a, b T, value string) int {
		if c := cmp.Compare(score(b, value), score(a, value)); c != 0 {
			return c
		}
		return strings.Compare(fold(text(a)), fold(text(b)))
	}
}

// ByDistance orders items by edit distance between their text and the
// value, closest first, then alphabetically
func ByDistance[T any](text func(T) string) func(a, b T, value string) int {
	return func(a, b T, value string) int {
		ta, tb := fold(text(a)), fold(text(b))
		v := fold(value)
		da := levenshtein.ComputeDistance(ta, v)
		db := levenshtein.ComputeDistance(tb, v)
		if c := cmp.Compare(da, db); c != 0 {
			return c
		}
		return strings.Compare(ta, tb)
	}
}

// PredicateFor returns the predicate for mode, or nil for ModeNone
func PredicateFor[T any](mode Mode, f *Fuzzy, text func(T) string) func(T, string) bool {
	switch mode {
	case ModePrefix:
		return Prefix(text)
	case ModeSubstring:
		return Substring(text)
	case ModeFuzzy:
		return FuzzyPredicate(f, text)
	case ModeWords:
		return Words(text)
	default:
		return nil
	}
}

// ComparatorFor returns the comparator for order, or nil for OrderNone
func ComparatorFor[T any](order Order, f *Fuzzy, text func(T) string) func(a, b T, value string) int {
	switch order {
	case OrderAlphabetical:
		return Alphabetical(text)
	case OrderMatchPosition:
		return ByMatchPosition(text)
	case OrderScore:
		return ByScore(f, text)
	case OrderDistance:
		return ByDistance(text)
	default:
		return nil
	}
}
