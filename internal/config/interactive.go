// Package config - Interactive configuration generation
package config

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/johnconnor-sec/autocomplete-go/internal/autocomplete"
	"github.com/johnconnor-sec/autocomplete-go/internal/errors"
	"github.com/johnconnor-sec/autocomplete-go/internal/search"
)

// Prompter asks configuration questions on a line-oriented terminal.
type Prompter struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewPrompter creates a prompter reading answers from in and writing questions to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{reader: bufio.NewReader(in), out: out}
}

// readLine reads a line, trimming whitespace. EOF counts as an empty answer.
func (p *Prompter) readLine() string {
	line, err := p.reader.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.ToValidUTF8(strings.TrimSpace(line), "�")
}

func (p *Prompter) ask(question, def string) string {
	fmt.Fprintf(p.out, "%s [%s]: ", question, def)
	if answer := p.readLine(); answer != "" {
		return answer
	}
	return def
}

func (p *Prompter) confirm(question string, def bool) bool {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	fmt.Fprintf(p.out, "%s [%s]: ", question, hint)
	switch strings.ToLower(p.readLine()) {
	case "y", "yes":
		return true
	case "n", "no":
		return false
	}
	return def
}

// choose repeats the question until the answer is one of options.
func choose[S ~string](p *Prompter, question string, options []S, def S) S {
	for attempt := 0; attempt < 3; attempt++ {
		answer := S(p.ask(fmt.Sprintf("%s (%s)", question, joinModes(options)), string(def)))
		if slices.Contains(options, answer) {
			return answer
		}
		fmt.Fprintf(p.out, "  %q is not one of %s\n", answer, joinModes(options))
	}
	return def
}

// GenerateInteractive builds a configuration from answers read through p
// and saves it to configPath.
func GenerateInteractive(p *Prompter, configPath string) (*Config, error) {
	config := DefaultConfig()

	fmt.Fprintln(p.out, "Autocomplete Configuration Setup")
	fmt.Fprintln(p.out, "================================")
	fmt.Fprintln(p.out)

	fmt.Fprintln(p.out, "Widget")
	fmt.Fprintln(p.out, "------")
	config.Widget.AutoHighlight = p.confirm("Highlight the first matching entry as you type?", config.Widget.AutoHighlight)
	config.Widget.SelectOnBlur = p.confirm("Choose the highlighted entry when leaving the field?", config.Widget.SelectOnBlur)
	open := []string{
		autocomplete.OpenAuto.String(),
		autocomplete.OpenShown.String(),
		autocomplete.OpenHidden.String(),
	}
	config.Widget.Open = choose(p, "Menu visibility", open, config.Widget.Open)
	fmt.Fprintln(p.out)

	fmt.Fprintln(p.out, "Matching")
	fmt.Fprintln(p.out, "--------")
	config.Match.Mode = choose(p, "Filter mode", search.Modes, config.Match.Mode)
	config.Sort.Mode = choose(p, "Sort order", search.Orders, config.Sort.Mode)
	if config.Match.Mode == search.ModeFuzzy {
		score := p.ask("Minimum fuzzy score", strconv.FormatFloat(config.Match.MinScore, 'f', -1, 64))
		if v, err := strconv.ParseFloat(score, 64); err == nil {
			config.Match.MinScore = v
		}
	}
	fmt.Fprintln(p.out)

	fmt.Fprintln(p.out, "Suggestions")
	fmt.Fprintln(p.out, "-----------")
	if file := p.ask("Suggestions file (empty for the built-in US states)", ""); file != "" {
		config.Items.File = file
		config.Items.Watch = p.confirm("Reload the file when it changes?", true)
	}
	config.Items.Grouped = p.confirm("Group entries under headers?", config.Items.Grouped)
	fmt.Fprintln(p.out)

	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, errors.ConfigInvalid, "Generated configuration is invalid")
	}

	fmt.Fprintln(p.out, "Summary")
	fmt.Fprintln(p.out, "-------")
	fmt.Fprintf(p.out, "• Match: %s, sort: %s\n", config.Match.Mode, config.Sort.Mode)
	fmt.Fprintf(p.out, "• Menu: %s\n", config.Widget.Open)
	fmt.Fprintf(p.out, "• Config path: %s\n", configPath)
	fmt.Fprintln(p.out)

	if !p.confirm("Save this configuration?", true) {
		return nil, errors.New(errors.ConfigInvalid, "Configuration not saved")
	}

	if err := Save(config, configPath); err != nil {
		return nil, err
	}
	config.ConfigPath = configPath
	return config, nil
}

// ExampleYAML is a fully commented configuration file.
const ExampleYAML = `# Example autocomplete configuration (YAML)
config_version: "1.0"

widget:
  auto_highlight: true    # highlight the first entry that starts with the input
  select_on_blur: false   # choose the highlighted entry when focus leaves
  debug: false            # draw the last state snapshots under the field
  open: auto              # auto | open | closed

match:
  mode: prefix            # none | prefix | substring | fuzzy | words
  case_sensitive: false
  min_score: 0.1          # fuzzy mode only

sort:
  mode: position          # none | alpha | position | score | distance

menu:
  max_height: 10
  margin_left: "0"
  margin_right: "0"
  margin_bottom: "0"
  placeholder: "Type the name of a US state"

theme:
  foreground: "#d0d0d0"
  background: "#1c1c1c"
  highlight: "#5f87d7"
  highlight_text: "#ffffff"
  match: "#ffd75f"
  header: "#87afaf"
  border: "#585858"
  muted: "#808080"

items:
  # file: states.yml      # .yml, .yaml, .toml or .json, relative to this file
  watch: false
  grouped: false
  inline: []

log:
  # file: ~/.cache/autocomplete/autocomplete.log
  level: info
  format: text
  max_size_mb: 10
  max_backups: 3
  max_age_days: 28
  compress: true
`
