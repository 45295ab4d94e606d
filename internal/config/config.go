// Package config provides YAML and TOML configuration for the autocomplete host,
// item list loading and a file watcher for live item reloads.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/johnconnor-sec/autocomplete-go/internal/autocomplete"
	"github.com/johnconnor-sec/autocomplete-go/internal/errors"
	"github.com/johnconnor-sec/autocomplete-go/internal/output"
	"github.com/johnconnor-sec/autocomplete-go/internal/search"
	"github.com/johnconnor-sec/autocomplete-go/internal/types"
)

// CurrentVersion is written into new configuration files.
const CurrentVersion = "1.0"

// EnvConfigPath overrides the configuration lookup.
const EnvConfigPath = "AUTOCOMPLETE_CONFIG"

// Config represents the complete autocomplete configuration.
type Config struct {
	Widget WidgetConfig `yaml:"widget" toml:"widget" json:"widget"`
	Match  MatchConfig  `yaml:"match" toml:"match" json:"match"`
	Sort   SortConfig   `yaml:"sort" toml:"sort" json:"sort"`
	Menu   MenuConfig   `yaml:"menu" toml:"menu" json:"menu"`
	Theme  ThemeConfig  `yaml:"theme" toml:"theme" json:"theme"`
	Items  ItemsConfig  `yaml:"items" toml:"items" json:"items"`
	Log    LogConfig    `yaml:"log" toml:"log" json:"log"`

	ConfigVersion string `yaml:"config_version,omitempty" toml:"config_version,omitempty" json:"config_version,omitempty"`
	ConfigPath    string `yaml:"-" toml:"-" json:"-"`
}

// WidgetConfig holds the widget behaviour flags.
type WidgetConfig struct {
	AutoHighlight bool   `yaml:"auto_highlight" toml:"auto_highlight" json:"auto_highlight"`
	SelectOnBlur  bool   `yaml:"select_on_blur" toml:"select_on_blur" json:"select_on_blur"`
	Debug         bool   `yaml:"debug" toml:"debug" json:"debug"`
	Open          string `yaml:"open" toml:"open" json:"open"`
}

// MatchConfig selects how items are filtered against the input.
type MatchConfig struct {
	Mode          search.Mode `yaml:"mode" toml:"mode" json:"mode"`
	CaseSensitive bool        `yaml:"case_sensitive" toml:"case_sensitive" json:"case_sensitive"`
	MinScore      float64     `yaml:"min_score" toml:"min_score" json:"min_score"`
}

// SortConfig selects how filtered items are ordered.
type SortConfig struct {
	Mode search.Order `yaml:"mode" toml:"mode" json:"mode"`
}

// MenuConfig controls the dropdown box.
type MenuConfig struct {
	MaxHeight    int    `yaml:"max_height" toml:"max_height" json:"max_height"`
	MarginLeft   string `yaml:"margin_left" toml:"margin_left" json:"margin_left"`
	MarginRight  string `yaml:"margin_right" toml:"margin_right" json:"margin_right"`
	MarginBottom string `yaml:"margin_bottom" toml:"margin_bottom" json:"margin_bottom"`
	Placeholder  string `yaml:"placeholder" toml:"placeholder" json:"placeholder"`
}

// ThemeConfig holds hex colors for the terminal host.
type ThemeConfig struct {
	Foreground    string `yaml:"foreground" toml:"foreground" json:"foreground"`
	Background    string `yaml:"background" toml:"background" json:"background"`
	Highlight     string `yaml:"highlight" toml:"highlight" json:"highlight"`
	HighlightText string `yaml:"highlight_text" toml:"highlight_text" json:"highlight_text"`
	Match         string `yaml:"match" toml:"match" json:"match"`
	Header        string `yaml:"header" toml:"header" json:"header"`
	Border        string `yaml:"border" toml:"border" json:"border"`
	Muted         string `yaml:"muted" toml:"muted" json:"muted"`
}

// ItemsConfig points at the suggestion source.
type ItemsConfig struct {
	File    string             `yaml:"file,omitempty" toml:"file,omitempty" json:"file,omitempty"`
	Inline  []types.Suggestion `yaml:"inline,omitempty" toml:"inline,omitempty" json:"inline,omitempty"`
	Watch   bool               `yaml:"watch" toml:"watch" json:"watch"`
	Grouped bool               `yaml:"grouped" toml:"grouped" json:"grouped"`
}

// LogConfig configures the rotating file log.
type LogConfig struct {
	File       string `yaml:"file,omitempty" toml:"file,omitempty" json:"file,omitempty"`
	Level      string `yaml:"level" toml:"level" json:"level"`
	Format     string `yaml:"format" toml:"format" json:"format"`
	MaxSizeMB  int    `yaml:"max_size_mb" toml:"max_size_mb" json:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups" toml:"max_backups" json:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days" toml:"max_age_days" json:"max_age_days"`
	Compress   bool   `yaml:"compress" toml:"compress" json:"compress"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	rotate := output.DefaultRotateOptions()
	return &Config{
		ConfigVersion: CurrentVersion,
		Widget: WidgetConfig{
			AutoHighlight: true,
			Open:          autocomplete.OpenAuto.String(),
		},
		Match: MatchConfig{
			Mode:     search.ModePrefix,
			MinScore: 0.1,
		},
		Sort: SortConfig{
			Mode: search.OrderMatchPosition,
		},
		Menu: MenuConfig{
			MaxHeight:   10,
			Placeholder: "Type the name of a US state",
		},
		Theme: ThemeConfig{
			Foreground:    "#d0d0d0",
			Background:    "#1c1c1c",
			Highlight:     "#5f87d7",
			HighlightText: "#ffffff",
			Match:         "#ffd75f",
			Header:        "#87afaf",
			Border:        "#585858",
			Muted:         "#808080",
		},
		Log: LogConfig{
			Level:      "info",
			Format:     "text",
			MaxSizeMB:  rotate.MaxSizeMB,
			MaxBackups: rotate.MaxBackups,
			MaxAgeDays: rotate.MaxAgeDays,
			Compress:   rotate.Compress,
		},
	}
}

// OpenControl returns the parsed widget.open setting.
func (c *Config) OpenControl() autocomplete.OpenControl {
	ctrl, _ := autocomplete.ParseOpenControl(c.Widget.Open)
	return ctrl
}

// Margins returns the menu margins in the form the widget positions with.
func (c *Config) Margins() autocomplete.Margins {
	return autocomplete.Margins{
		Left:   c.Menu.MarginLeft,
		Right:  c.Menu.MarginRight,
		Bottom: c.Menu.MarginBottom,
	}
}

// Fuzzy builds the fuzzy matcher described by the match section.
func (c *Config) Fuzzy() *search.Fuzzy {
	return search.NewFuzzy().
		SetCaseSensitive(c.Match.CaseSensitive).
		SetMinScore(c.Match.MinScore)
}

// RotateOptions returns the log rotation settings.
func (c *Config) RotateOptions() output.RotateOptions {
	return output.RotateOptions{
		MaxSizeMB:  c.Log.MaxSizeMB,
		MaxBackups: c.Log.MaxBackups,
		MaxAgeDays: c.Log.MaxAgeDays,
		Compress:   c.Log.Compress,
	}
}

// ItemsPath resolves items.file relative to the configuration file.
func (c *Config) ItemsPath() string {
	p := c.Items.File
	if p == "" {
		return ""
	}
	if strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(home, p[2:])
		}
	}
	if !filepath.IsAbs(p) && c.ConfigPath != "" {
		p = filepath.Join(filepath.Dir(c.ConfigPath), p)
	}
	return p
}

// fileExists checks if a file exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// FindConfigPath locates the configuration file using standard locations.
func FindConfigPath() (string, error) {
	// Priority order:
	// 1. $AUTOCOMPLETE_CONFIG
	// 2. $XDG_CONFIG_HOME/autocomplete/config.{yml,yaml,toml}
	// 3. $HOME/.config/autocomplete/config.{yml,yaml,toml}

	if path := os.Getenv(EnvConfigPath); path != "" {
		return path, nil
	}

	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", errors.Wrap(err, errors.ConfigNotFound, "Unable to determine home directory")
		}
		configDir = filepath.Join(homeDir, ".config")
	}

	base := filepath.Join(configDir, "autocomplete")
	for _, name := range []string{"config.yml", "config.yaml", "config.toml"} {
		if p := filepath.Join(base, name); fileExists(p) {
			return p, nil
		}
	}

	// preferred path even if it doesn't exist
	return filepath.Join(base, "config.yml"), nil
}

var marginPattern = regexp.MustCompile(`^(auto|-?\d+(\.\d+)?(px|em|rem)?)$`)

// Validate performs comprehensive validation on the configuration.
func (c *Config) Validate() error {
	var validationErrors []types.ValidationError
	add := func(field, value, message string) {
		validationErrors = append(validationErrors, types.ValidationError{
			Field:   field,
			Value:   value,
			Message: message,
		})
	}

	if _, ok := autocomplete.ParseOpenControl(c.Widget.Open); !ok {
		add("widget.open", c.Widget.Open, "must be one of auto, open, closed")
	}

	if !slices.Contains(search.Modes, c.Match.Mode) {
		add("match.mode", string(c.Match.Mode), fmt.Sprintf("must be one of %s", joinModes(search.Modes)))
	}
	if c.Match.MinScore < 0 || c.Match.MinScore > 1 {
		add("match.min_score", fmt.Sprint(c.Match.MinScore), "must be between 0 and 1")
	}

	if !slices.Contains(search.Orders, c.Sort.Mode) {
		add("sort.mode", string(c.Sort.Mode), fmt.Sprintf("must be one of %s", joinModes(search.Orders)))
	}

	if c.Menu.MaxHeight < 1 {
		add("menu.max_height", fmt.Sprint(c.Menu.MaxHeight), "must be at least 1")
	}
	for field, value := range map[string]string{
		"menu.margin_left":   c.Menu.MarginLeft,
		"menu.margin_right":  c.Menu.MarginRight,
		"menu.margin_bottom": c.Menu.MarginBottom,
	} {
		if value != "" && !marginPattern.MatchString(strings.TrimSpace(value)) {
			add(field, value, "must be a length such as 2, 2px or auto")
		}
	}

	for field, value := range c.Theme.fields() {
		if value == "" {
			continue
		}
		if _, err := colorful.Hex(value); err != nil {
			add("theme."+field, value, "must be a hex color such as #5f87d7")
		}
	}

	if c.Items.File != "" {
		if _, ok := formatOf(c.Items.File); !ok {
			add("items.file", c.Items.File, "must end in .yml, .yaml, .toml or .json")
		}
	}
	if err := types.ValidateAll(c.Items.Inline); err != nil {
		if verrs, ok := err.(*types.ValidationErrors); ok {
			for _, e := range verrs.Errors {
				add("items.inline"+strings.TrimPrefix(e.Field, "items"), e.Value, e.Message)
			}
		}
	}

	if _, err := output.ParseLogLevel(c.Log.Level); err != nil {
		add("log.level", c.Log.Level, "must be one of trace, debug, info, warn, error, fatal")
	}
	if _, err := output.ParseLogFormat(c.Log.Format); err != nil {
		add("log.format", c.Log.Format, "must be text or json")
	}
	if c.Log.MaxSizeMB < 0 || c.Log.MaxBackups < 0 || c.Log.MaxAgeDays < 0 {
		add("log", fmt.Sprintf("%d/%d/%d", c.Log.MaxSizeMB, c.Log.MaxBackups, c.Log.MaxAgeDays), "rotation limits cannot be negative")
	}

	if len(validationErrors) > 0 {
		slices.SortStableFunc(validationErrors, func(a, b types.ValidationError) int {
			return strings.Compare(a.Field, b.Field)
		})
		return &types.ValidationErrors{Errors: validationErrors}
	}

	return nil
}

func (t ThemeConfig) fields() map[string]string {
	return map[string]string{
		"foreground":     t.Foreground,
		"background":     t.Background,
		"highlight":      t.Highlight,
		"highlight_text": t.HighlightText,
		"match":          t.Match,
		"header":         t.Header,
		"border":         t.Border,
		"muted":          t.Muted,
	}
}

func joinModes[S ~string](values []S) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
