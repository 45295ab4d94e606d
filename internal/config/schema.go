// Package config - JSON Schema generation for editor support
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/johnconnor-sec/autocomplete-go/internal/search"
)

func stringEnum[S ~string](values []S) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

func hexColor(description, def string) map[string]any {
	return map[string]any{
		"type":        "string",
		"pattern":     "^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$",
		"description": description,
		"default":     def,
	}
}

func margin(description string) map[string]any {
	return map[string]any{
		"type":        "string",
		"pattern":     marginPattern.String(),
		"description": description,
		"examples":    []string{"0", "2px", "auto"},
	}
}

// suggestionSchema describes one entry of an items list.
func suggestionSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"value":    map[string]any{"type": "string", "description": "Text written into the input when chosen"},
			"label":    map[string]any{"type": "string", "description": "Text shown in the menu, defaults to value"},
			"abbr":     map[string]any{"type": "string", "description": "Short code, also matched by the words mode"},
			"group":    map[string]any{"type": "string", "description": "Group heading the entry is listed under"},
			"header":   map[string]any{"type": "boolean", "description": "Non-selectable heading row"},
			"disabled": map[string]any{"type": "boolean", "description": "Shown but never highlighted"},
		},
	}
}

// GenerateJSONSchema generates a JSON schema for the autocomplete configuration.
func GenerateJSONSchema() ([]byte, error) {
	d := DefaultConfig()

	schema := map[string]any{
		"$schema":              "http://json-schema.org/draft-07/schema#",
		"title":                "Autocomplete Configuration",
		"description":          "Configuration schema for the autocomplete terminal widget",
		"type":                 "object",
		"additionalProperties": false,

		"properties": map[string]any{
			"config_version": map[string]any{
				"type":        "string",
				"description": "Configuration format version",
				"default":     CurrentVersion,
			},

			"widget": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"auto_highlight": map[string]any{"type": "boolean", "default": d.Widget.AutoHighlight, "description": "Highlight the first entry whose text starts with the input"},
					"select_on_blur": map[string]any{"type": "boolean", "default": d.Widget.SelectOnBlur, "description": "Choose the highlighted entry when focus leaves the input"},
					"debug":          map[string]any{"type": "boolean", "default": d.Widget.Debug, "description": "Show the last state snapshots under the widget"},
					"open": map[string]any{
						"type":        "string",
						"enum":        []string{"auto", "open", "closed"},
						"default":     d.Widget.Open,
						"description": "Who controls menu visibility",
					},
				},
			},

			"match": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"mode":           map[string]any{"type": "string", "enum": stringEnum(search.Modes), "default": string(d.Match.Mode)},
					"case_sensitive": map[string]any{"type": "boolean", "default": d.Match.CaseSensitive},
					"min_score":      map[string]any{"type": "number", "minimum": 0, "maximum": 1, "default": d.Match.MinScore},
				},
			},

			"sort": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"mode": map[string]any{"type": "string", "enum": stringEnum(search.Orders), "default": string(d.Sort.Mode)},
				},
			},

			"menu": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"max_height":    map[string]any{"type": "integer", "minimum": 1, "default": d.Menu.MaxHeight},
					"margin_left":   margin("Left margin of the input, shifts the menu"),
					"margin_right":  margin("Right margin of the input, widens the menu"),
					"margin_bottom": margin("Bottom margin of the input, lowers the menu"),
					"placeholder":   map[string]any{"type": "string", "default": d.Menu.Placeholder},
				},
			},

			"theme": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"foreground":     hexColor("Default text color", d.Theme.Foreground),
					"background":     hexColor("Menu background", d.Theme.Background),
					"highlight":      hexColor("Highlighted row background", d.Theme.Highlight),
					"highlight_text": hexColor("Highlighted row text", d.Theme.HighlightText),
					"match":          hexColor("Matched characters", d.Theme.Match),
					"header":         hexColor("Group header rows", d.Theme.Header),
					"border":         hexColor("Menu border", d.Theme.Border),
					"muted":          hexColor("Placeholders and disabled rows", d.Theme.Muted),
				},
			},

			"items": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"file":    map[string]any{"type": "string", "description": "YAML, TOML or JSON suggestions file, relative to this config"},
					"inline":  map[string]any{"type": "array", "items": suggestionSchema()},
					"watch":   map[string]any{"type": "boolean", "description": "Reload the file when it changes"},
					"grouped": map[string]any{"type": "boolean", "description": "Insert a header row before each group"},
				},
			},

			"log": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"file":         map[string]any{"type": "string"},
					"level":        map[string]any{"type": "string", "enum": []string{"trace", "debug", "info", "warn", "error", "fatal"}, "default": d.Log.Level},
					"format":       map[string]any{"type": "string", "enum": []string{"text", "json"}, "default": d.Log.Format},
					"max_size_mb":  map[string]any{"type": "integer", "minimum": 0, "default": d.Log.MaxSizeMB},
					"max_backups":  map[string]any{"type": "integer", "minimum": 0, "default": d.Log.MaxBackups},
					"max_age_days": map[string]any{"type": "integer", "minimum": 0, "default": d.Log.MaxAgeDays},
					"compress":     map[string]any{"type": "boolean", "default": d.Log.Compress},
				},
			},
		},
	}

	return json.MarshalIndent(schema, "", "  ")
}

// SaveJSONSchema saves the JSON schema to a file.
func SaveJSONSchema(filePath string) error {
	schema, err := GenerateJSONSchema()
	if err != nil {
		return fmt.Errorf("failed to generate JSON schema: %w", err)
	}

	if err := os.WriteFile(filePath, schema, 0644); err != nil {
		return fmt.Errorf("failed to write JSON schema: %w", err)
	}

	return nil
}
