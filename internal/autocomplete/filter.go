package autocomplete

import "slices"

// Predicate decides whether an item is shown for the current input value.
type Predicate[T any] func(item T, value string) bool

// Comparator orders two items for the current input value.
// A negative result sorts a before b.
type Comparator[T any] func(a, b T, value string) int

// Filter returns the items accepted by pred, in their original order.
// A nil predicate accepts everything. The input slice is never modified.
func Filter[T any](items []T, pred Predicate[T], value string) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if pred == nil || pred(item, value) {
			out = append(out, item)
		}
	}
	return out
}

// Sort returns a sorted copy of seq. A nil comparator keeps the order.
func Sort[T any](seq []T, cmp Comparator[T], value string) []T {
	out := slices.Clone(seq)
	if cmp == nil {
		return out
	}
	slices.SortStableFunc(out, func(a, b T) int {
		return cmp(a, b, value)
	})
	return out
}

// FilteredItems runs the filter and sort stages for p.
func FilteredItems[T any](p Props[T]) []T {
	return Sort(Filter(p.Items, p.ShouldItemRender, p.Value), p.SortItems, p.Value)
}
