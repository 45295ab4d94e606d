package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnconnor-sec/autocomplete-go/internal/errors"
	"github.com/johnconnor-sec/autocomplete-go/internal/types"
)

var wantItems = []types.Suggestion{
	{Value: "Maine", Abbr: "ME", Group: "Northeast"},
	{Value: "Ohio", Abbr: "OH", Group: "Midwest"},
}

func TestLoadItems_Formats(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{"list.yml", `
- value: Maine
  abbr: ME
  group: Northeast
- value: Ohio
  abbr: OH
  group: Midwest
`},
		{"doc.yaml", `
items:
  - {value: Maine, abbr: ME, group: Northeast}
  - {value: Ohio, abbr: OH, group: Midwest}
`},
		{"list.json", `[
  {"value": "Maine", "abbr": "ME", "group": "Northeast"},
  {"value": "Ohio", "abbr": "OH", "group": "Midwest"}
]`},
		{"doc.json", `{"items": [
  {"value": "Maine", "abbr": "ME", "group": "Northeast"},
  {"value": "Ohio", "abbr": "OH", "group": "Midwest"}
]}`},
		{"items.toml", `
[[items]]
value = "Maine"
abbr = "ME"
group = "Northeast"

[[items]]
value = "Ohio"
abbr = "OH"
group = "Midwest"
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := LoadItems(writeFile(t, dir, tt.name, tt.content))
			require.NoError(t, err)
			assert.Equal(t, wantItems, items)
		})
	}
}

func TestLoadItems_Empty(t *testing.T) {
	items, err := LoadItems(writeFile(t, t.TempDir(), "empty.yml", "\n"))
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestLoadItems_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadItems(filepath.Join(dir, "missing.yml"))
	assert.True(t, errors.IsType(err, errors.ItemsNotFound))

	_, err = LoadItems(writeFile(t, dir, "items.csv", "Ohio,OH"))
	assert.True(t, errors.IsType(err, errors.UnsupportedFormat))

	_, err = LoadItems(writeFile(t, dir, "novalue.yml", "- label: Ohio\n"))
	assert.True(t, errors.IsType(err, errors.ItemsInvalid))

	_, err = LoadItems(writeFile(t, dir, "broken.json", "[{"))
	assert.True(t, errors.IsType(err, errors.ItemsInvalid))

	if os.Geteuid() != 0 {
		locked := writeFile(t, dir, "locked.yml", "- value: Ohio\n")
		require.NoError(t, os.Chmod(locked, 0))
		_, err = LoadItems(locked)
		assert.True(t, errors.IsType(err, errors.PermissionDenied))
	}
}

func TestParseItems_Headers(t *testing.T) {
	items, err := ParseItems([]byte(`
- {label: West, header: true}
- {value: Utah, group: West}
`), FormatYAML)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.False(t, items[0].Selectable())
	assert.True(t, items[1].Selectable())
}
