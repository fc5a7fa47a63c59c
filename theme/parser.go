package theme

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// Format identifies the serialization of a catalog document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnnamedTheme is returned for catalog entries without a name.
var ErrUnnamedTheme = errors.New("theme has no name")

// CatalogError reports a catalog that could not be decoded.
type CatalogError struct {
	Path string
	Err  error
}

func (e *CatalogError) Error() string {
	if e.Path == "" {
		return "theme catalog: " + e.Err.Error()
	}
	return "theme catalog " + e.Path + ": " + e.Err.Error()
}

func (e *CatalogError) Unwrap() error {
	return e.Err
}

// FormatFromPath picks the catalog format from a file extension.
// Unknown extensions are treated as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// ParseCatalog decodes a catalog document: a list of themes, each with a
// name and a role-to-colour mapping.
func ParseCatalog(data []byte, format Format) ([]Theme, error) {
	var themes []Theme

	switch format {
	case FormatYAML:
		parsed, err := parseYAML(data)
		if err != nil {
			return nil, &CatalogError{Err: err}
		}
		themes = parsed
	default:
		if err := json.Unmarshal(data, &themes); err != nil {
			return nil, &CatalogError{Err: err}
		}
	}

	seen := make(map[string]bool, len(themes))
	out := themes[:0]
	for i, t := range themes {
		if strings.TrimSpace(t.Name) == "" {
			return nil, &CatalogError{Err: fmt.Errorf("entry %d: %w", i, ErrUnnamedTheme)}
		}
		if seen[t.Name] {
			log.Warn("duplicate theme ignored", "theme", t.Name, "entry", i)
			continue
		}
		seen[t.Name] = true
		if t.Colors == nil {
			t.Colors = make(map[Role]RGBA)
		}
		out = append(out, t)
	}

	return out, nil
}

type yamlTheme struct {
	Name   string             `yaml:"name"`
	Colors map[Role]yaml.Node `yaml:"colors"`
}

// parseYAML decodes colours node by node: yaml.v3 skips custom unmarshalers
// for null values, and an unquoted "#rrggbb" is a comment that leaves the
// value null.
func parseYAML(data []byte) ([]Theme, error) {
	var raw []yamlTheme
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	themes := make([]Theme, 0, len(raw))
	for _, rt := range raw {
		t := Theme{Name: rt.Name, Colors: make(map[Role]RGBA, len(rt.Colors))}
		for role, node := range rt.Colors {
			if node.Tag == "!!null" {
				return nil, fmt.Errorf("%w: theme %q role %q has no value (quote hex colours in YAML)", ErrInvalidHex, rt.Name, role)
			}
			var c RGBA
			if err := c.UnmarshalYAML(&node); err != nil {
				return nil, fmt.Errorf("theme %q role %q: %w", rt.Name, role, err)
			}
			t.Colors[role] = c
		}
		themes = append(themes, t)
	}
	return themes, nil
}
