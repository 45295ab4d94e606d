package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnconnor-sec/autocomplete-go/internal/config"
	"github.com/johnconnor-sec/autocomplete-go/internal/errors"
	"github.com/johnconnor-sec/autocomplete-go/internal/output"
	"github.com/johnconnor-sec/autocomplete-go/internal/search"
	"github.com/johnconnor-sec/autocomplete-go/internal/tui"
	"github.com/johnconnor-sec/autocomplete-go/internal/types"
)

func TestStatesAreValid(t *testing.T) {
	require.Len(t, usStates, 50)
	require.NoError(t, types.ValidateAll(usStates))

	seen := map[string]bool{}
	for _, s := range usStates {
		assert.Len(t, s.Abbr, 2, s.Value)
		assert.False(t, seen[s.Abbr], "duplicate abbreviation %s", s.Abbr)
		seen[s.Abbr] = true
		assert.Contains(t, []string{"Northeast", "Midwest", "South", "West"}, s.Group)
	}
}

func TestFilterSuggestions(t *testing.T) {
	cfg := config.DefaultConfig()

	got := filterSuggestions(cfg, usStates, "new")
	assert.Equal(t, []string{"New Hampshire", "New Jersey", "New Mexico", "New York"}, valuesOf(got))

	cfg.Match.Mode = search.ModeSubstring
	got = filterSuggestions(cfg, usStates, "ana")
	assert.Equal(t, []string{"Indiana", "Montana", "Louisiana"}, valuesOf(got))

	cfg.Items.Grouped = true
	got = filterSuggestions(cfg, usStates, "ana")
	require.Len(t, got, 6)
	assert.True(t, got[0].Header)
	assert.Equal(t, "Midwest", got[0].Text())
	assert.Equal(t, "Indiana", got[1].Value)
	assert.True(t, got[2].Header)
	assert.Equal(t, "South", got[2].Text())
	assert.Equal(t, "Montana", got[5].Value)
}

func valuesOf(items []types.Suggestion) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Value
	}
	return out
}

func TestSuggestionRecords(t *testing.T) {
	seq := types.Grouped([]types.Suggestion{{Value: "Ohio", Abbr: "OH", Group: "Midwest"}})
	records := suggestionRecords(seq, "oh", search.NewFuzzy().SetMinScore(0))

	require.Len(t, records, 2)
	assert.Equal(t, true, records[0]["header"])
	assert.NotContains(t, records[0], "score")
	assert.Equal(t, "Ohio", records[1]["value"])
	assert.Contains(t, records[1], "score")
}

func TestApplyRunFlags(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.Flags().String("open", "", "")
	cmd.Flags().String("match", "", "")
	cmd.Flags().Bool("grouped", false, "")
	require.NoError(t, cmd.Flags().Set("open", "closed"))
	require.NoError(t, cmd.Flags().Set("match", "fuzzy"))

	cfg := config.DefaultConfig()
	require.NoError(t, applyRunFlags(cmd, cfg, runFlags{open: "closed", match: "fuzzy", grouped: true}))
	assert.Equal(t, "closed", cfg.Widget.Open)
	assert.Equal(t, search.ModeFuzzy, cfg.Match.Mode)
	assert.False(t, cfg.Items.Grouped, "unchanged flags keep the configured value")

	require.NoError(t, cmd.Flags().Set("open", "sometimes"))
	err := applyRunFlags(cmd, config.DefaultConfig(), runFlags{open: "sometimes"})
	assert.True(t, errors.IsType(err, errors.ConfigInvalid))

	err = applyRunFlags(&cobra.Command{}, config.DefaultConfig(), runFlags{maxLength: -1})
	assert.True(t, errors.IsType(err, errors.ValidationFailed))
}

func TestInputAttrs(t *testing.T) {
	assert.Empty(t, inputAttrs(runFlags{}))

	attrs := inputAttrs(runFlags{required: true, maxLength: 12})
	assert.Equal(t, "", attrs["required"])
	assert.Equal(t, "12", attrs["maxlength"])
}

func TestPrintResult(t *testing.T) {
	item := usStates[34]
	res := tui.Result{Value: item.Value, Item: &item, Submitted: true}

	var buf bytes.Buffer
	require.NoError(t, printResult(&buf, res, false))
	assert.Contains(t, buf.String(), `Submitted "Ohio"`)
	assert.Contains(t, buf.String(), "Midwest")

	buf.Reset()
	require.NoError(t, printResult(&buf, res, true))
	var decoded tui.Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, res.Value, decoded.Value)
	assert.Equal(t, "OH", decoded.Item.Abbr)

	buf.Reset()
	require.NoError(t, printResult(&buf, tui.Result{Value: "Oh"}, false))
	assert.Contains(t, buf.String(), "Closed without submitting")
}

func TestLoadItems(t *testing.T) {
	cfg := config.DefaultConfig()

	source, err := loadItems(cfg, "")
	require.NoError(t, err)
	assert.Equal(t, "built-in US states", source.Name)
	assert.Empty(t, source.Path)

	cfg.Items.Inline = []types.Suggestion{{Value: "Guam"}}
	source, err = loadItems(cfg, "")
	require.NoError(t, err)
	assert.Equal(t, "inline", source.Name)

	path := filepath.Join(t.TempDir(), "places.yml")
	require.NoError(t, os.WriteFile(path, []byte("- value: Puerto Rico\n- value: Guam\n"), 0644))
	source, err = loadItems(cfg, path)
	require.NoError(t, err)
	assert.Equal(t, path, source.Path)
	assert.Len(t, source.Items, 2)

	_, err = loadItems(cfg, filepath.Join(t.TempDir(), "missing.yml"))
	assert.True(t, errors.IsType(err, errors.ItemsNotFound))
}

func TestCheckTerminal(t *testing.T) {
	envWith := func(term string, tty bool) environment {
		return environment{
			getenv: func(k string) string {
				if k == "TERM" {
					return term
				}
				return ""
			},
			stdinTTY:  tty,
			stdoutTTY: tty,
		}
	}

	assert.Equal(t, output.CheckReady, checkTerminal(envWith("xterm-256color", true)).Status)
	assert.Equal(t, output.CheckWarning, checkTerminal(envWith("xterm-256color", false)).Status)
	assert.Equal(t, output.CheckWarning, checkTerminal(envWith("no-such-terminal", true)).Status)
	assert.Equal(t, output.CheckFailed, checkTerminal(envWith("", true)).Status)
}

func TestCheckTheme(t *testing.T) {
	cfg := config.DefaultConfig()
	assert.Equal(t, output.CheckReady, checkTheme(cfg).Status)

	cfg.Theme.Border = "grey"
	assert.Equal(t, output.CheckFailed, checkTheme(cfg).Status)
}

func TestFilterCommand(t *testing.T) {
	t.Setenv(config.EnvConfigPath, filepath.Join(t.TempDir(), "config.yml"))

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"filter", "--format", "json", "--limit", "2", "new"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		filterOpts = filterFlags{format: "table"}
	})

	require.NoError(t, rootCmd.Execute())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "New Hampshire", first["value"])
	assert.Equal(t, "NH", first["abbr"])
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	printVersion(&buf)
	assert.Contains(t, buf.String(), "Autocomplete dev")
	assert.Contains(t, buf.String(), "Go version")
}
