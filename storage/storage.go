// Package storage locates application configuration files on disk and
// reads and rewrites them.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/charmbracelet/log"

	"teems/apps"
)

// Store resolves and accesses configuration files below a set of base
// directories.
type Store struct {
	configDirs []string
	homeDir    string
}

// New creates a Store rooted at the current user's directories.
func New() *Store {
	home, err := os.UserHomeDir()
	if err != nil {
		log.Warn("home directory unavailable", "err", err)
		home = ""
	}
	return NewWithDirs(ConfigDirs(home), home)
}

// NewWithDirs creates a Store with explicit base directories.
func NewWithDirs(configDirs []string, homeDir string) *Store {
	return &Store{
		configDirs: uniq(configDirs),
		homeDir:    homeDir,
	}
}

// ConfigDirs lists the user configuration directories in lookup order:
// $XDG_CONFIG_HOME (or ~/.config) followed by the platform default.
func ConfigDirs(home string) []string {
	var dirs []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		dirs = append(dirs, xdg)
	} else if home != "" {
		dirs = append(dirs, filepath.Join(home, ".config"))
	}
	if dir, err := os.UserConfigDir(); err == nil && dir != "" && dir != "/" {
		dirs = append(dirs, dir)
	}
	return uniq(dirs)
}

func (s *Store) bases(b apps.BaseDir) []string {
	switch b {
	case apps.BaseConfig:
		return s.configDirs
	case apps.BaseHome:
		if s.homeDir == "" {
			return nil
		}
		return []string{s.homeDir}
	default:
		return nil
	}
}

// Candidates returns every path an app's configuration could live at,
// whether or not it exists, followed by the extra paths.
func (s *Store) Candidates(app apps.App, extra []string) []string {
	var out []string
	for _, loc := range app.Paths {
		for _, base := range s.bases(loc.Base) {
			out = append(out, filepath.Join(base, loc.Rel))
		}
	}
	return append(out, extra...)
}

// Resolve returns the existing configuration files for app, canonicalised,
// sorted and deduplicated. Two candidates reaching the same file through
// different bases or symlinks appear once.
func (s *Store) Resolve(app apps.App, extra []string) []string {
	var found []string
	for _, p := range s.Candidates(app, extra) {
		info, err := os.Stat(p)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		canonical, err := filepath.EvalSymlinks(p)
		if err != nil {
			log.Debug("cannot canonicalise path", "app", app.Name, "path", p, "err", err)
			canonical = p
		}
		abs, err := filepath.Abs(canonical)
		if err == nil {
			canonical = abs
		}
		found = append(found, canonical)
	}

	found = uniq(found)
	sort.Strings(found)
	log.Debug("resolved config files", "app", app.Name, "paths", found)
	return found
}

// Read returns the contents of a configuration file.
func (s *Store) Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// Write replaces a configuration file atomically, keeping its permissions.
func (s *Store) Write(path, content string) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	tmp := f.Name()

	if _, err := f.WriteString(content); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Chmod(mode); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("write %s: %w", path, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// uniq drops empty and repeated entries, keeping first occurrences.
func uniq(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
