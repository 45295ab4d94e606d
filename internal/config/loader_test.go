package config

import (
	stderrors "errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnconnor-sec/autocomplete-go/internal/errors"
	"github.com/johnconnor-sec/autocomplete-go/internal/search"
	"github.com/johnconnor-sec/autocomplete-go/internal/types"
)

func TestLoad_YAMLKeepsDefaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yml", `
match:
  mode: fuzzy
  min_score: 0.4
widget:
  open: closed
`)

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, search.ModeFuzzy, c.Match.Mode)
	assert.Equal(t, 0.4, c.Match.MinScore)
	assert.Equal(t, "closed", c.Widget.Open)
	assert.True(t, c.Widget.AutoHighlight, "absent keys keep defaults")
	assert.Equal(t, 10, c.Menu.MaxHeight)
	assert.Equal(t, path, c.ConfigPath)
}

func TestLoad_InvalidKeepsValidationCause(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yml", "widget:\n  open: sometimes\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ConfigInvalid))

	var verrs *types.ValidationErrors
	require.True(t, stderrors.As(err, &verrs), "validation errors reachable through the wrapper")
	assert.Contains(t, validationFields(t, verrs), "widget.open")
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.toml", `
[widget]
select_on_blur = true

[sort]
mode = "distance"

[[items.inline]]
value = "Ohio"
abbr = "OH"
`)

	c, err := Load(path)
	require.NoError(t, err)

	assert.True(t, c.Widget.SelectOnBlur)
	assert.Equal(t, search.OrderDistance, c.Sort.Mode)
	assert.Equal(t, []types.Suggestion{{Value: "Ohio", Abbr: "OH"}}, c.Items.Inline)
}

func TestLoad_Example(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yml", ExampleYAML)

	c, err := Load(path)
	require.NoError(t, err)

	want := DefaultConfig()
	want.ConfigPath = path
	want.Menu.MarginLeft = "0"
	want.Menu.MarginRight = "0"
	want.Menu.MarginBottom = "0"
	if diff := cmp.Diff(want, c, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("example config differs from defaults (-want +got):\n%s", diff)
	}
}

func TestSaveLoad(t *testing.T) {
	for _, name := range []string{"config.yml", "config.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", name)

			c := DefaultConfig()
			c.Match.Mode = search.ModeWords
			c.Theme.Border = "#ff0000"
			c.Items.File = "items.json"
			require.NoError(t, Save(c, path))

			loaded, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, search.ModeWords, loaded.Match.Mode)
			assert.Equal(t, "#ff0000", loaded.Theme.Border)
			assert.Equal(t, "items.json", loaded.Items.File)
		})
	}

	err := Save(DefaultConfig(), filepath.Join(t.TempDir(), "config.json"))
	assert.Error(t, err)
}

func TestLoadOrDefault(t *testing.T) {
	dir := t.TempDir()

	c, err := LoadOrDefault(filepath.Join(dir, "config.yml"))
	require.NoError(t, err)
	assert.Equal(t, search.ModePrefix, c.Match.Mode)

	_, err = LoadOrDefault(writeFile(t, dir, "broken.yml", "menu:\n  max_height: -1\n"))
	assert.Error(t, err)
}

func TestParse_Empty(t *testing.T) {
	for _, format := range []Format{FormatYAML, FormatTOML} {
		c, err := Parse(nil, format)
		require.NoError(t, err, format)
		assert.Equal(t, DefaultConfig(), c)
	}

	_, err := Parse([]byte("{}"), FormatJSON)
	assert.Error(t, err)
}
