package apps

import (
	"regexp"

	"teems/theme"
)

// termite rewrites "key = value" lines of termite's config. Values may be
// written as #rrggbb or rgba(r,g,b,a); replacements are always rgba().
var termite = keyValue{
	pattern: regexp.MustCompile(`(?i)^\s*(` +
		`color\d+` +
		`|foreground|foreground_bold|background` +
		`|cursor|cursor_foreground` +
		`|highlight` +
		`)\s*=\s*(` +
		`#[[:xdigit:]]{6}\b` +
		`|rgba\(\s*\d+\s*,\s*\d+\s*,\s*\d+\s*,\s*[\d.]+\s*\)` +
		`)`),
	render:  theme.RGBA.Functional,
	foldKey: true,
}
