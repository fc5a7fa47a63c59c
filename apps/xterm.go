package apps

import (
	"regexp"
	"strings"

	"teems/theme"
)

const xtermPrefix = "XTerm*"

var xtermColor = regexp.MustCompile(`(?i)^XTerm\*(color\d+|foreground|background)(:\s*)(#[[:xdigit:]]{6})\b`)

// xterm rewrites "XTerm*key: #rrggbb" resources. The class prefix is matched
// case-insensitively and always written back as "XTerm*".
type xterm struct{}

func (xterm) Convert(t *theme.Theme, text string) string {
	return rewriteLines(text, func(line string) string {
		m := xtermColor.FindStringSubmatchIndex(line)
		if m == nil {
			return line
		}
		key, middle, value := line[m[2]:m[3]], line[m[4]:m[5]], line[m[6]:m[7]]
		if c, ok := t.Lookup(strings.ToLower(key)); ok {
			value = c.Hex()
		}
		return xtermPrefix + key + middle + value + line[m[1]:]
	})
}
