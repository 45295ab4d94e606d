package config

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnconnor-sec/autocomplete-go/internal/search"
)

func TestGenerateInteractive(t *testing.T) {
	answers := strings.Join([]string{
		"",            // auto highlight (keep yes)
		"y",           // select on blur
		"",            // visibility (keep auto)
		"fuzzy",       // filter mode
		"score",       // sort order
		"0.3",         // min score
		"states.toml", // items file
		"",            // watch (keep yes)
		"y",           // grouped
		"",            // save (keep yes)
	}, "\n") + "\n"

	var out bytes.Buffer
	path := filepath.Join(t.TempDir(), "config.yml")

	c, err := GenerateInteractive(NewPrompter(strings.NewReader(answers), &out), path)
	require.NoError(t, err)

	assert.True(t, c.Widget.AutoHighlight)
	assert.True(t, c.Widget.SelectOnBlur)
	assert.Equal(t, search.ModeFuzzy, c.Match.Mode)
	assert.Equal(t, search.OrderScore, c.Sort.Mode)
	assert.Equal(t, 0.3, c.Match.MinScore)
	assert.Equal(t, "states.toml", c.Items.File)
	assert.True(t, c.Items.Watch)
	assert.True(t, c.Items.Grouped)

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, search.ModeFuzzy, loaded.Match.Mode)
	assert.Contains(t, out.String(), "Summary")
}

func TestGenerateInteractive_RetriesBadChoice(t *testing.T) {
	answers := "\n\n\nregex\nsubstring\n\n\n\n\n"

	var out bytes.Buffer
	c, err := GenerateInteractive(NewPrompter(strings.NewReader(answers), &out), filepath.Join(t.TempDir(), "c.toml"))
	require.NoError(t, err)

	assert.Equal(t, search.ModeSubstring, c.Match.Mode)
	assert.Contains(t, out.String(), `"regex" is not one of`)
}

func TestGenerateInteractive_Declined(t *testing.T) {
	// every question defaulted, then "n" to saving
	answers := strings.Repeat("\n", 7) + "n\n"

	_, err := GenerateInteractive(NewPrompter(strings.NewReader(answers), &bytes.Buffer{}), filepath.Join(t.TempDir(), "c.yml"))
	assert.Error(t, err)
}
