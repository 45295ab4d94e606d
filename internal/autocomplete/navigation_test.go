package autocomplete

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func selectableByHeader(s usState) bool { return !s.Header }

func mixed() []usState {
	return []usState{
		{Name: "South", Header: true},
		{Name: "Alabama"},
		{Name: "Georgia"},
		{Name: "West", Header: true},
		{Name: "Oregon"},
	}
}

func TestNextSelectable(t *testing.T) {
	tests := []struct {
		name      string
		items     []usState
		highlight int
		want      int
		wantOK    bool
	}{
		{"from none", mixed(), NoHighlight, 1, true},
		{"skips header", mixed(), 2, 4, true},
		{"wraps", mixed(), 4, 1, true},
		{"empty", nil, NoHighlight, NoHighlight, false},
		{"nothing selectable", []usState{{Name: "H", Header: true}}, NoHighlight, NoHighlight, false},
		{"single selectable stays", []usState{{Name: "H", Header: true}, {Name: "Ohio"}}, 1, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := nextSelectable(tt.items, tt.highlight, selectableByHeader)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestPrevSelectable(t *testing.T) {
	tests := []struct {
		name      string
		items     []usState
		highlight int
		want      int
		wantOK    bool
	}{
		{"from none goes to last", mixed(), NoHighlight, 4, true},
		{"skips header", mixed(), 4, 2, true},
		{"wraps", mixed(), 1, 4, true},
		{"empty", nil, NoHighlight, NoHighlight, false},
		{"nothing selectable", []usState{{Name: "H", Header: true}}, NoHighlight, NoHighlight, false},
		{"single selectable reasserts", []usState{{Name: "H", Header: true}, {Name: "Ohio"}}, 1, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := prevSelectable(tt.items, tt.highlight, selectableByHeader)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestForwardCycleVisitsEverySelectable(t *testing.T) {
	items := mixed()
	seen := map[int]int{}
	h := NoHighlight
	steps := 0
	for {
		next, ok := nextSelectable(items, h, selectableByHeader)
		if !ok || seen[next] > 0 {
			break
		}
		seen[next]++
		h = next
		steps++
	}
	assert.Equal(t, 3, steps)
	for idx := range seen {
		assert.True(t, selectableByHeader(items[idx]))
	}
}

func TestForwardThenBackwardRestores(t *testing.T) {
	items := mixed()
	for _, start := range []int{1, 2, 4} {
		next, _ := nextSelectable(items, start, selectableByHeader)
		back, _ := prevSelectable(items, next, selectableByHeader)
		assert.Equal(t, start, back, "start %d", start)
	}
}

func TestAutoHighlight(t *testing.T) {
	name := func(s usState) string { return s.Name }
	tests := []struct {
		name      string
		items     []usState
		highlight int
		value     string
		want      int
	}{
		{"first selectable prefix", mixed(), NoHighlight, "al", 1},
		{"case insensitive", mixed(), NoHighlight, "ALA", 1},
		{"first selectable must match", mixed(), NoHighlight, "geo", NoHighlight},
		{"starts from current highlight", mixed(), 2, "geo", 2},
		{"scans past header from highlight", mixed(), 3, "ore", 4},
		{"empty value", mixed(), NoHighlight, "", NoHighlight},
		{"empty sequence", nil, NoHighlight, "al", NoHighlight},
		{"nothing selectable", []usState{{Name: "Alabama", Header: true}}, NoHighlight, "al", NoHighlight},
		{"folded unicode", []usState{{Name: "Straße"}}, NoHighlight, "STRASS", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := autoHighlight(tt.items, tt.highlight, tt.value, name, selectableByHeader)
			assert.Equal(t, tt.want, got)
		})
	}
}
