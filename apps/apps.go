// Package apps rewrites the colour declarations of terminal emulator
// configuration files. Each supported file format has its own Transformer;
// all of them leave lines they do not recognise untouched.
package apps

import (
	"fmt"
	"regexp"
	"strings"

	"teems/theme"
)

// Transformer rewrites the colour literals of one configuration format.
//
// Convert never fails: lines that are not colour declarations, and
// declarations whose role the theme does not define, are returned as-is.
type Transformer interface {
	Convert(t *theme.Theme, text string) string
}

// Kind identifies a supported configuration format.
type Kind int

const (
	KindAlacritty Kind = iota
	KindKitty
	KindTermite
	KindXResources
	KindXTerm
)

var kindNames = [...]string{
	KindAlacritty:  "alacritty",
	KindKitty:      "kitty",
	KindTermite:    "termite",
	KindXResources: "xresources",
	KindXTerm:      "xterm",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind resolves a format name such as "kitty".
func ParseKind(s string) (Kind, error) {
	for i, name := range kindNames {
		if strings.EqualFold(s, name) {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownApp, s)
}

// Transformer returns the transformer for the format.
func (k Kind) Transformer() Transformer {
	switch k {
	case KindAlacritty:
		return alacritty{}
	case KindKitty:
		return kitty
	case KindTermite:
		return termite
	case KindXResources:
		return xresources
	case KindXTerm:
		return xterm{}
	default:
		panic(fmt.Sprintf("apps: no transformer for %v", k))
	}
}

// rewriteLines applies fn to every line. Only "\n" separates lines, so
// carriage returns and a final newline survive unchanged.
func rewriteLines(text string, fn func(line string) string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = fn(line)
	}
	return strings.Join(lines, "\n")
}

// keyValue handles formats whose colour lines carry the role name as the
// first submatch and the colour literal as the second.
type keyValue struct {
	pattern *regexp.Regexp
	render  func(theme.RGBA) string
	foldKey bool
}

func (kv keyValue) Convert(t *theme.Theme, text string) string {
	return rewriteLines(text, func(line string) string {
		m := kv.pattern.FindStringSubmatchIndex(line)
		if m == nil {
			return line
		}
		role := line[m[2]:m[3]]
		if kv.foldKey {
			role = strings.ToLower(role)
		}
		c, ok := t.Lookup(role)
		if !ok {
			return line
		}
		return line[:m[4]] + kv.render(c) + line[m[5]:]
	})
}
