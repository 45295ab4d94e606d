package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/johnconnor-sec/autocomplete-go/internal/autocomplete"
	"github.com/johnconnor-sec/autocomplete-go/internal/config"
	"github.com/johnconnor-sec/autocomplete-go/internal/errors"
	"github.com/johnconnor-sec/autocomplete-go/internal/output"
	"github.com/johnconnor-sec/autocomplete-go/internal/search"
	"github.com/johnconnor-sec/autocomplete-go/internal/types"
)

type filterFlags struct {
	items   string
	match   string
	sort    string
	format  string
	limit   int
	grouped bool
}

var filterOpts filterFlags

var filterCmd = &cobra.Command{
	Use:   "filter [value]",
	Short: "Print the suggestions that match a value",
	Long: `Filter and sort the suggestions the way the interactive menu would,
and print them. Useful in scripts and for trying out match and sort modes.

Examples:
  autocomplete filter new
  autocomplete filter --match fuzzy --sort score nwyk
  autocomplete filter --format json --limit 3 mi`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFilter,
}

func init() {
	f := filterCmd.Flags()
	f.StringVarP(&filterOpts.items, "items", "i", "", "suggestions file (.yml, .yaml, .toml or .json)")
	f.StringVar(&filterOpts.match, "match", "", "filter mode: prefix, substring, fuzzy, words or none")
	f.StringVar(&filterOpts.sort, "sort", "", "sort order: none, alpha, position, score or distance")
	f.StringVarP(&filterOpts.format, "format", "f", "table", "output layout: table, list or json")
	f.IntVarP(&filterOpts.limit, "limit", "n", 0, "print at most this many suggestions")
	f.BoolVar(&filterOpts.grouped, "grouped", false, "group suggestions under headers")
}

// filterSuggestions runs the widget's filter and sort over items.
func filterSuggestions(cfg *config.Config, items []types.Suggestion, value string) []types.Suggestion {
	fuzzy := cfg.Fuzzy()
	text := types.Suggestion.Text
	props := autocomplete.Props[types.Suggestion]{
		Items:            items,
		Value:            value,
		ShouldItemRender: search.PredicateFor(cfg.Match.Mode, fuzzy, text),
		SortItems:        search.ComparatorFor(cfg.Sort.Mode, fuzzy, text),
	}
	seq := autocomplete.FilteredItems(props)
	if cfg.Items.Grouped {
		seq = types.Grouped(seq)
	}
	return seq
}

// suggestionRecords turns suggestions into printable records. Rows that
// fuzzily match value carry their score.
func suggestionRecords(seq []types.Suggestion, value string, fuzzy *search.Fuzzy) []output.Record {
	records := make([]output.Record, 0, len(seq))
	for i, s := range seq {
		rec := output.Record{
			"index": i,
			"value": s.DisplayValue(),
			"text":  s.Text(),
			"abbr":  s.Abbr,
			"group": s.Group,
		}
		if s.Header {
			rec["header"] = true
			rec["text"] = "── " + s.Text()
		}
		if s.Disabled {
			rec["disabled"] = true
		}
		if value != "" && !s.Header {
			if m, ok := fuzzy.Match(value, s.Text()); ok {
				rec["score"] = m.Score
			}
		}
		records = append(records, rec)
	}
	return records
}

func runFilter(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("match") {
		cfg.Match.Mode = search.Mode(filterOpts.match)
	}
	if flags.Changed("sort") {
		cfg.Sort.Mode = search.Order(filterOpts.sort)
	}
	if flags.Changed("grouped") {
		cfg.Items.Grouped = filterOpts.grouped
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, errors.ConfigInvalid, "Invalid settings").
			WithDetails(err.Error())
	}

	layout, ok := output.LayoutByName(filterOpts.format)
	if !ok {
		names := make([]string, 0, 3)
		for _, l := range output.Layouts() {
			names = append(names, l.Name)
		}
		return errors.ValidationError("format", filterOpts.format, "must be one of "+strings.Join(names, ", "))
	}

	source, err := loadItems(cfg, filterOpts.items)
	if err != nil {
		return err
	}

	value := ""
	if len(args) > 0 {
		value = args[0]
	}

	seq := filterSuggestions(cfg, source.Items, value)
	if filterOpts.limit > 0 && len(seq) > filterOpts.limit {
		seq = seq[:filterOpts.limit]
	}

	formatter := newFormatter(cmd.OutOrStdout())
	if layout.Format != "json" && len(seq) > 0 {
		formatter.Subheader(matchSummary(len(seq), len(source.Items), value))
	}
	formatter.RenderRecords(suggestionRecords(seq, value, search.NewFuzzy().SetMinScore(0)), layout, noMatches(value))
	return nil
}

func matchSummary(shown, total int, value string) string {
	if value == "" {
		return "All suggestions"
	}
	return fmt.Sprintf("Suggestions for %q (%d of %d)", value, shown, total)
}

func noMatches(value string) string {
	if value == "" {
		return "No suggestions"
	}
	return "No matches for " + value
}
