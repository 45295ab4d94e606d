package tui

import (
	"github.com/johnconnor-sec/autocomplete-go/internal/autocomplete"
	"github.com/johnconnor-sec/autocomplete-go/internal/types"
)

// catalog answers suggestion queries on the host side, the way a server
// would: filtered, sorted and, when grouped, ordered by group with a
// header row before each one.
type catalog struct {
	items   []types.Suggestion
	match   autocomplete.Predicate[types.Suggestion]
	order   autocomplete.Comparator[types.Suggestion]
	grouped bool
}

func (c *catalog) query(value string) []types.Suggestion {
	seq := autocomplete.Sort(autocomplete.Filter(c.items, c.match, value), c.order, value)
	if !c.grouped {
		return seq
	}
	return types.Grouped(seq)
}
