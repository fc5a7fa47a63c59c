package apps

import (
	"regexp"
	"strconv"
	"strings"

	"teems/theme"
)

var (
	alacrittyBright = regexp.MustCompile(`^\s*bright:`)
	alacrittyNormal = regexp.MustCompile(`^\s*normal:`)
	alacrittyColor  = regexp.MustCompile(
		`^(\s*)(black|red|green|yellow|blue|magenta|cyan|white|foreground|background)` +
			`(:\s*(['"])0x)(\w{6})(['"].*)$`)
)

// alacrittyHues maps the eight ANSI hue names to their palette index.
var alacrittyHues = map[string]int{
	"black":   0,
	"red":     1,
	"green":   2,
	"yellow":  3,
	"blue":    4,
	"magenta": 5,
	"cyan":    6,
	"white":   7,
}

// block tracks which palette half the hue names currently refer to.
type block int

const (
	blockNormal block = iota
	blockBright
)

// next returns the block in effect for line.
func (b block) next(line string) block {
	switch {
	case alacrittyBright.MatchString(line):
		return blockBright
	case alacrittyNormal.MatchString(line):
		return blockNormal
	default:
		return b
	}
}

func (b block) role(name string) theme.Role {
	idx, ok := alacrittyHues[name]
	if !ok {
		return name
	}
	if b == blockBright {
		idx += 8
	}
	return "color" + strconv.Itoa(idx)
}

// alacritty rewrites YAML colour entries such as
//
//	black: '0x1d1f21'
//
// where the hue names resolve to color0-7 under "normal:" and to
// color8-15 under "bright:".
type alacritty struct{}

func (alacritty) Convert(t *theme.Theme, text string) string {
	current := blockNormal
	return rewriteLines(text, func(line string) string {
		current = current.next(line)

		m := alacrittyColor.FindStringSubmatch(line)
		if m == nil {
			return line
		}
		leading, name, middle, open, value, trailing := m[1], m[2], m[3], m[4], m[5], m[6]
		if trailing[:1] != open {
			return line
		}

		if c, ok := t.Lookup(current.role(name)); ok {
			value = strings.TrimPrefix(c.Hex(), "#")
		}
		return leading + name + middle + value + trailing
	})
}
