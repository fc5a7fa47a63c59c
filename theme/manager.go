package theme

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
)

// ErrThemeNotFound is returned when a catalog has no theme by the requested name.
var ErrThemeNotFound = errors.New("theme not found")

// Manager holds a loaded theme catalog.
type Manager struct {
	themesMap  map[string]*Theme
	themesList []string
}

// LoadManager reads and decodes the catalog at path.
func LoadManager(path string) (*Manager, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme catalog: %w", err)
	}

	themes, err := ParseCatalog(data, FormatFromPath(path))
	if err != nil {
		var cerr *CatalogError
		if errors.As(err, &cerr) {
			cerr.Path = path
		}
		return nil, err
	}

	m := NewManager(themes)
	log.Debug("loaded theme catalog", "path", path, "themes", m.Len())
	return m, nil
}

// NewManager builds a manager from already decoded themes, keeping their order.
func NewManager(themes []Theme) *Manager {
	m := &Manager{
		themesMap:  make(map[string]*Theme, len(themes)),
		themesList: make([]string, 0, len(themes)),
	}
	for i := range themes {
		t := themes[i]
		if _, exists := m.themesMap[t.Name]; exists {
			continue
		}
		m.themesMap[t.Name] = &t
		m.themesList = append(m.themesList, t.Name)
	}
	return m
}

// Get returns a theme by name.
func (m *Manager) Get(name string) (*Theme, error) {
	t, ok := m.themesMap[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrThemeNotFound, name)
	}
	return t, nil
}

// List returns theme names in catalog order.
func (m *Manager) List() []string {
	out := make([]string, len(m.themesList))
	copy(out, m.themesList)
	return out
}

// Themes returns the themes in catalog order.
func (m *Manager) Themes() []*Theme {
	out := make([]*Theme, 0, len(m.themesList))
	for _, name := range m.themesList {
		out = append(out, m.themesMap[name])
	}
	return out
}

// Len reports the number of themes in the catalog.
func (m *Manager) Len() int {
	return len(m.themesList)
}
