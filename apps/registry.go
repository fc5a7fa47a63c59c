package apps

import (
	"errors"
	"fmt"

	"teems/theme"
)

// ErrUnknownApp is returned for application names that are not registered.
var ErrUnknownApp = errors.New("unknown application")

// BaseDir names a platform directory that application paths are relative to.
type BaseDir int

const (
	// BaseConfig is the user configuration directory ($XDG_CONFIG_HOME,
	// ~/.config, or the platform equivalent).
	BaseConfig BaseDir = iota
	// BaseHome is the user's home directory.
	BaseHome
)

func (b BaseDir) String() string {
	switch b {
	case BaseConfig:
		return "config"
	case BaseHome:
		return "home"
	default:
		return fmt.Sprintf("BaseDir(%d)", int(b))
	}
}

// Location is a configuration file path relative to a base directory.
type Location struct {
	Base BaseDir
	Rel  string
}

// App describes a themeable application: its file format and where its
// configuration usually lives.
type App struct {
	Name  string
	Kind  Kind
	Paths []Location
}

// Convert rewrites text with the app's format transformer.
func (a App) Convert(t *theme.Theme, text string) string {
	return a.Kind.Transformer().Convert(t, text)
}

// Defaults returns the built-in application registry in processing order.
func Defaults() []App {
	return []App{
		{
			Name: "alacritty",
			Kind: KindAlacritty,
			Paths: []Location{
				{Base: BaseConfig, Rel: "alacritty/alacritty.yml"},
				{Base: BaseConfig, Rel: "alacritty.yml"},
				{Base: BaseHome, Rel: ".alacritty.yml"},
			},
		},
		{
			Name:  "kitty",
			Kind:  KindKitty,
			Paths: []Location{{Base: BaseConfig, Rel: "kitty/kitty.conf"}},
		},
		{
			Name:  "termite",
			Kind:  KindTermite,
			Paths: []Location{{Base: BaseConfig, Rel: "termite/config"}},
		},
		{
			Name: "xresources",
			Kind: KindXResources,
			Paths: []Location{
				{Base: BaseHome, Rel: ".Xresources"},
				{Base: BaseHome, Rel: ".Xdefaults"},
			},
		},
		{
			Name: "xterm",
			Kind: KindXTerm,
			Paths: []Location{
				{Base: BaseHome, Rel: ".Xresources"},
				{Base: BaseHome, Rel: ".Xdefaults"},
			},
		},
	}
}

// Select returns the registered apps named in names, in registry order.
// An empty names list selects every app.
func Select(registry []App, names []string) ([]App, error) {
	if len(names) == 0 {
		return registry, nil
	}

	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		found := false
		for _, a := range registry {
			if a.Name == n {
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: %q", ErrUnknownApp, n)
		}
		wanted[n] = true
	}

	out := make([]App, 0, len(wanted))
	for _, a := range registry {
		if wanted[a.Name] {
			out = append(out, a)
		}
	}
	return out, nil
}
