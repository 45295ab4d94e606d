// Package config - YAML and TOML configuration loading and parsing
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/johnconnor-sec/autocomplete-go/internal/errors"
)

// Format is a serialization format chosen by file extension.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

func formatOf(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return FormatYAML, true
	case ".toml":
		return FormatTOML, true
	case ".json":
		return FormatJSON, true
	}
	return "", false
}

// Load reads and parses the configuration from the specified path.
// Keys missing from the file keep their DefaultConfig values.
func Load(configPath string) (*Config, error) {
	if !fileExists(configPath) {
		return nil, errors.ConfigNotFoundError(configPath)
	}

	format, ok := formatOf(configPath)
	if !ok || format == FormatJSON {
		return nil, errors.UnsupportedFormatError(configPath).
			WithSuggestion("Configuration files use .yml, .yaml or .toml")
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, errors.Wrap(err, errors.ConfigNotFound, "Failed to read configuration file").
			WithDetails(fmt.Sprintf("Path: %s", configPath)).
			WithSuggestion("Check file permissions and path")
	}

	config, err := Parse(data, format)
	if err != nil {
		return nil, errors.Wrap(err, errors.ConfigInvalid, fmt.Sprintf("Invalid %s configuration", strings.ToUpper(string(format)))).
			WithDetails(fmt.Sprintf("Parse error: %v", err)).
			WithSuggestions([]string{
				fmt.Sprintf("Check %s syntax", strings.ToUpper(string(format))),
				"Ensure proper field names",
				"Run 'autocomplete config validate' for detailed validation",
			})
	}

	config.ConfigPath = configPath

	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, errors.ConfigInvalid, "Configuration validation failed").
			WithSuggestions([]string{
				"Check the listed fields",
				"Run 'autocomplete config example' to see every setting",
				"Run 'autocomplete config init --force' to start over",
			})
	}

	return config, nil
}

// Parse decodes data on top of DefaultConfig without validating it.
// Unknown keys are rejected in both formats.
func Parse(data []byte, format Format) (*Config, error) {
	config := DefaultConfig()
	var err error
	switch format {
	case FormatYAML:
		d := yaml.NewDecoder(bytes.NewReader(data))
		d.KnownFields(true)
		if err = d.Decode(config); err == io.EOF {
			err = nil
		}
	case FormatTOML:
		d := toml.NewDecoder(bytes.NewReader(data))
		d.DisallowUnknownFields()
		err = d.Decode(config)
	default:
		err = fmt.Errorf("unsupported configuration format %q", format)
	}
	if err != nil {
		return nil, err
	}
	return config, nil
}

// Marshal encodes config in format.
func Marshal(config *Config, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(config)
	case FormatTOML:
		return toml.Marshal(config)
	}
	return nil, fmt.Errorf("unsupported configuration format %q", format)
}

// Save writes the configuration to the specified path in the format its extension names.
func Save(config *Config, configPath string) error {
	format, ok := formatOf(configPath)
	if !ok || format == FormatJSON {
		return errors.UnsupportedFormatError(configPath)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return errors.Wrap(err, errors.PermissionDenied, "Cannot create config directory").
			WithDetails(fmt.Sprintf("Path: %s", filepath.Dir(configPath)))
	}

	data, err := Marshal(config, format)
	if err != nil {
		return errors.Wrap(err, errors.InternalError, "Failed to serialize configuration")
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return errors.Wrap(err, errors.PermissionDenied, "Cannot write configuration file").
			WithDetails(fmt.Sprintf("Path: %s", configPath))
	}

	return nil
}

// LoadOrDefault loads configPath, falling back to DefaultConfig when the
// file does not exist. Any other failure is returned.
func LoadOrDefault(configPath string) (*Config, error) {
	config, err := Load(configPath)
	if errors.IsType(err, errors.ConfigNotFound) && !fileExists(configPath) {
		config = DefaultConfig()
		config.ConfigPath = configPath
		return config, nil
	}
	return config, err
}
