package theme

import (
	"sort"
	"strings"
)

// Role names a semantic colour slot such as "color3" or "foreground".
type Role = string

// Theme maps semantic colour roles to colours.
type Theme struct {
	Name   string        `json:"name" yaml:"name"`
	Colors map[Role]RGBA `json:"colors" yaml:"colors"`
}

// Lookup returns the colour for a role, if the theme defines it.
func (t *Theme) Lookup(role Role) (RGBA, bool) {
	if t == nil {
		return RGBA{}, false
	}
	c, ok := t.Colors[role]
	return c, ok
}

// Roles returns the defined role names in sorted order.
func (t *Theme) Roles() []Role {
	roles := make([]Role, 0, len(t.Colors))
	for r := range t.Colors {
		roles = append(roles, r)
	}
	sort.Slice(roles, func(i, j int) bool {
		return roleLess(roles[i], roles[j])
	})
	return roles
}

// roleLess orders colorN roles numerically ahead of named roles.
func roleLess(a, b Role) bool {
	an, aok := colorIndex(a)
	bn, bok := colorIndex(b)
	switch {
	case aok && bok:
		return an < bn
	case aok != bok:
		return aok
	default:
		return a < b
	}
}

func colorIndex(role Role) (int, bool) {
	digits, ok := strings.CutPrefix(role, "color")
	if !ok || digits == "" {
		return 0, false
	}
	n := 0
	for _, ch := range digits {
		if ch < '0' || ch > '9' {
			return 0, false
		}
		n = n*10 + int(ch-'0')
	}
	return n, true
}

func (t *Theme) String() string {
	var b strings.Builder
	b.WriteString("Name: ")
	b.WriteString(t.Name)
	b.WriteString("\nColors:\n")
	for _, role := range t.Roles() {
		b.WriteString("\t")
		b.WriteString(role)
		b.WriteString(": ")
		b.WriteString(t.Colors[role].String())
		b.WriteString("\n")
	}
	return b.String()
}
