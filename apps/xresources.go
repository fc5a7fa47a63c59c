package apps

import (
	"regexp"

	"teems/theme"
)

// xresources rewrites wildcard X resources such as "*.color4: #81a2be".
// Resources bound to a named class (URxvt.foreground) are left alone.
var xresources = keyValue{
	pattern: regexp.MustCompile(`^\*.(color\d+|foreground|background):\s*(#[[:xdigit:]]{6})\b`),
	render:  theme.RGBA.Hex,
}
