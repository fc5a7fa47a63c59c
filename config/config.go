package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

const fileName = "teems.toml"

// Config is the user settings file.
type Config struct {
	// Catalog is the theme catalog document (JSON or YAML).
	Catalog string `toml:"catalog"`
	// Apps limits activation to these application names; empty means all.
	Apps []string `toml:"apps,omitempty"`
	// Swatches paints colour blocks when listing themes.
	Swatches bool `toml:"swatches"`
	// Paths adds config file locations per application name.
	Paths map[string][]string `toml:"paths,omitempty"`
}

// Dir returns the directory holding teems' own files.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "teems")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "teems")
	}
	return "."
}

// DefaultPath returns the default settings file location.
func DefaultPath() string {
	return filepath.Join(Dir(), fileName)
}

func Default() Config {
	return Config{
		Catalog:  filepath.Join(Dir(), "themes.json"),
		Swatches: true,
		Paths:    make(map[string][]string),
	}
}

// Load reads the settings at path. A missing file yields the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, err
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}

	if cfg.Catalog == "" {
		cfg.Catalog = Default().Catalog
	}
	cfg.Catalog = ExpandHome(cfg.Catalog)
	if cfg.Paths == nil {
		cfg.Paths = make(map[string][]string)
	}
	for app, paths := range cfg.Paths {
		for i, p := range paths {
			paths[i] = ExpandHome(p)
		}
		cfg.Paths[app] = paths
	}

	return cfg, nil
}

// Save writes cfg to path through a temporary file.
func Save(cfg Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(cfg); err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		os.Remove(tmp)
		return err
	}

	return os.Rename(tmp, path)
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
