package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/johnconnor-sec/autocomplete-go/internal/errors"
	"github.com/johnconnor-sec/autocomplete-go/internal/types"
)

// itemsDocument is the keyed form of an items file. TOML files always use
// it ([[items]] tables); YAML and JSON files may also be a bare list.
type itemsDocument struct {
	Items []types.Suggestion `yaml:"items" toml:"items" json:"items"`
}

// LoadItems reads and validates a suggestions file.
func LoadItems(path string) ([]types.Suggestion, error) {
	format, ok := formatOf(path)
	if !ok {
		return nil, errors.UnsupportedFormatError(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ItemsNotFoundError(path)
		}
		if os.IsPermission(err) {
			return nil, errors.PermissionDeniedError(path, "read")
		}
		return nil, errors.Wrap(err, errors.ItemsNotFound, "Failed to read suggestions file").
			WithDetails(fmt.Sprintf("Path: %s", path))
	}

	items, err := ParseItems(data, format)
	if err != nil {
		return nil, errors.Wrap(err, errors.ItemsInvalid, "Invalid suggestions file").
			WithDetails(fmt.Sprintf("Path: %s: %v", path, err)).
			WithSuggestion("Each entry needs at least a value; headers need a label")
	}

	return items, nil
}

// ParseItems decodes and validates suggestions in format.
func ParseItems(data []byte, format Format) ([]types.Suggestion, error) {
	var items []types.Suggestion
	var err error

	switch format {
	case FormatYAML:
		items, err = decodeEither(data, yaml.Unmarshal)
	case FormatJSON:
		items, err = decodeEither(data, json.Unmarshal)
	case FormatTOML:
		var doc itemsDocument
		err = toml.Unmarshal(data, &doc)
		items = doc.Items
	default:
		err = fmt.Errorf("unsupported items format %q", format)
	}
	if err != nil {
		return nil, err
	}

	if err := types.ValidateAll(items); err != nil {
		return nil, err
	}
	return items, nil
}

// decodeEither accepts a bare list or an {items: [...]} document.
func decodeEither(data []byte, unmarshal func([]byte, any) error) ([]types.Suggestion, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return []types.Suggestion{}, nil
	}

	var list []types.Suggestion
	listErr := unmarshal(data, &list)
	if listErr == nil {
		return list, nil
	}

	var doc itemsDocument
	if err := unmarshal(data, &doc); err != nil {
		return nil, listErr
	}
	return doc.Items, nil
}
