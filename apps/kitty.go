package apps

import (
	"regexp"

	"teems/theme"
)

// kitty rewrites "key #rrggbb" lines of kitty.conf. Keys use the same names
// as theme roles.
var kitty = keyValue{
	pattern: regexp.MustCompile(`^\s*(` +
		`color\d+` +
		`|foreground|background` +
		`|cursor|cursor_text_color` +
		`|url_color` +
		`|active_border_color|inactive_border_color|bell_border_color` +
		`|active_tab_foreground|active_tab_background` +
		`|inactive_tab_foreground|inactive_tab_background` +
		`|tab_bar_background` +
		`|selection_foreground|selection_background` +
		`)\s+(#[[:xdigit:]]{6})\b`),
	render: theme.RGBA.Hex,
}
