package autocomplete

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFilterKeepsOrder(t *testing.T) {
	items := states("Alabama", "Alaska", "Arizona", "Arkansas")

	got := Filter(items, prefixMatch, "Al")

	if diff := cmp.Diff(states("Alabama", "Alaska"), got); diff != "" {
		t.Errorf("Filter() mismatch (-want +got):\n%s", diff)
	}
}

func TestFilterWithoutPredicate(t *testing.T) {
	items := states("Ohio", "Iowa")

	got := Filter(items, nil, "zzz")

	if diff := cmp.Diff(items, got); diff != "" {
		t.Errorf("Filter() mismatch (-want +got):\n%s", diff)
	}
	got[0].Name = "changed"
	if items[0].Name != "Ohio" {
		t.Errorf("Filter() must return a new slice")
	}
}

func TestFilterIsSubsetInOrder(t *testing.T) {
	items := states("Maine", "Maryland", "Massachusetts", "Michigan", "Minnesota", "Mississippi", "Missouri", "Montana")
	for _, value := range []string{"", "m", "ma", "mi", "mis", "x"} {
		got := Filter(items, prefixMatch, value)
		if len(got) > len(items) {
			t.Fatalf("Filter(%q) grew the sequence", value)
		}
		pos := 0
		for _, g := range got {
			for pos < len(items) && items[pos] != g {
				pos++
			}
			if pos == len(items) {
				t.Fatalf("Filter(%q) result %v is not an ordered subset", value, got)
			}
			pos++
		}
	}
}

func TestSortUsesCopy(t *testing.T) {
	items := states("Texas", "Alabama", "Ohio")
	byName := func(a, b usState, _ string) int { return strings.Compare(a.Name, b.Name) }

	got := Sort(items, byName, "")

	if diff := cmp.Diff(states("Alabama", "Ohio", "Texas"), got); diff != "" {
		t.Errorf("Sort() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(states("Texas", "Alabama", "Ohio"), items); diff != "" {
		t.Errorf("Sort() modified its input (-want +got):\n%s", diff)
	}
}

func TestSortIsStableAndSeesValue(t *testing.T) {
	items := []usState{{Name: "Kansas", Abbr: "1"}, {Name: "Arkansas", Abbr: "2"}, {Name: "Kansas", Abbr: "3"}}
	var seen []string
	byPosition := func(a, b usState, value string) int {
		seen = append(seen, value)
		return strings.Index(strings.ToLower(a.Name), value) - strings.Index(strings.ToLower(b.Name), value)
	}

	got := Sort(items, byPosition, "ka")

	want := []usState{{Name: "Kansas", Abbr: "1"}, {Name: "Kansas", Abbr: "3"}, {Name: "Arkansas", Abbr: "2"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Sort() mismatch (-want +got):\n%s", diff)
	}
	for _, v := range seen {
		if v != "ka" {
			t.Fatalf("comparator got value %q, want %q", v, "ka")
		}
	}
}

func TestFilteredItems(t *testing.T) {
	p := DefaultProps[usState]()
	p.Items = states("Arizona", "Alaska", "Alabama", "Texas")
	p.Value = "a"
	p.ShouldItemRender = prefixMatch
	p.SortItems = func(a, b usState, _ string) int { return strings.Compare(a.Name, b.Name) }

	got := FilteredItems(p)

	if diff := cmp.Diff(states("Alabama", "Alaska", "Arizona"), got); diff != "" {
		t.Errorf("FilteredItems() mismatch (-want +got):\n%s", diff)
	}
}
