package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format identifies a catalog file encoding
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// FormatFromPath guesses the format from a file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported catalog file extension: %q", filepath.Ext(path))
	}
}

// LoadFile reads a catalog from disk
func LoadFile(path string) (*Catalog, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()

	c, err := Parse(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a catalog in the given format.
//
// A flat list of strings produces a list-shaped catalog. Keyed catalogs are
// either a list of {key, label} records, or (YAML only) a mapping of key to
// label whose document order is kept.
func Parse(r io.Reader, format Format) (*Catalog, error) {
	switch format {
	case FormatYAML:
		return parseYAML(r)
	case FormatTOML:
		return parseTOML(r)
	case FormatJSON:
		return parseJSON(r)
	default:
		return nil, fmt.Errorf("unsupported catalog format: %q", format)
	}
}

func parseYAML(r io.Reader) (*Catalog, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: no options", ErrInvalidCatalog)
		}
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}

	switch root.Kind {
	case yaml.MappingNode:
		pairs := make([]Option, 0, len(root.Content)/2)
		for i := 0; i+1 < len(root.Content); i += 2 {
			k, v := root.Content[i], root.Content[i+1]
			if v.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("label for key %q must be a string (line %d)", k.Value, v.Line)
			}
			pairs = append(pairs, Option{Key: k.Value, Label: v.Value})
		}
		return FromPairs(pairs)

	case yaml.SequenceNode:
		if len(root.Content) == 0 {
			return nil, fmt.Errorf("%w: no options", ErrInvalidCatalog)
		}
		if root.Content[0].Kind == yaml.ScalarNode {
			var items []string
			if err := root.Decode(&items); err != nil {
				return nil, fmt.Errorf("failed to parse catalog: %w", err)
			}
			return FromList(items)
		}
		var pairs []Option
		if err := root.Decode(&pairs); err != nil {
			return nil, fmt.Errorf("failed to parse catalog: %w", err)
		}
		return FromPairs(pairs)

	default:
		return nil, fmt.Errorf("catalog must be a list or a mapping (line %d)", root.Line)
	}
}

// tomlCatalog accepts either `options = [...]` or `[[option]]` tables
type tomlCatalog struct {
	Options []string `toml:"options"`
	Option  []Option `toml:"option"`
}

func parseTOML(r io.Reader) (*Catalog, error) {
	var tc tomlCatalog
	if err := toml.NewDecoder(r).Decode(&tc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	switch {
	case len(tc.Options) > 0 && len(tc.Option) > 0:
		return nil, fmt.Errorf("catalog sets both options and [[option]]")
	case len(tc.Option) > 0:
		return FromPairs(tc.Option)
	default:
		return FromList(tc.Options)
	}
}

func parseJSON(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: no options", ErrInvalidCatalog)
	}

	var items []string
	if err := json.Unmarshal(data, &items); err == nil {
		return FromList(items)
	}

	var pairs []Option
	if err := json.Unmarshal(data, &pairs); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return FromPairs(pairs)
}

// ParsePairs turns "key=label" entries into options. An entry without "=" uses
// the whole string as both key and label.
func ParsePairs(entries []string) ([]Option, error) {
	pairs := make([]Option, 0, len(entries))
	for _, entry := range entries {
		key, label, found := strings.Cut(entry, "=")
		if !found {
			label = key
		}
		if key == "" {
			return nil, fmt.Errorf("option %q has an empty key", entry)
		}
		pairs = append(pairs, Option{Key: key, Label: label})
	}
	return pairs, nil
}
