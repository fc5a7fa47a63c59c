package theme

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderOptions controls how RenderList prints themes.
type RenderOptions struct {
	// Swatches prefixes every colour with a block painted in that colour.
	Swatches bool
	// NamesOnly prints one theme name per line and nothing else.
	NamesOnly bool
}

var (
	nameStyle = lipgloss.NewStyle().Bold(true)
	roleStyle = lipgloss.NewStyle().Width(22).PaddingLeft(2)
)

// RenderList writes a human-readable listing of themes to w.
func RenderList(w io.Writer, themes []*Theme, opts RenderOptions) error {
	var builder strings.Builder

	for i, t := range themes {
		if opts.NamesOnly {
			builder.WriteString(t.Name)
			builder.WriteString("\n")
			continue
		}
		if !opts.Swatches {
			builder.WriteString(t.String())
			builder.WriteString("\n")
			continue
		}

		if i > 0 {
			builder.WriteString("\n")
		}
		builder.WriteString(nameStyle.Render(t.Name))
		builder.WriteString("\n")
		for _, role := range t.Roles() {
			c := t.Colors[role]
			builder.WriteString(roleStyle.Render(role))
			builder.WriteString(swatch(c))
			builder.WriteString(" ")
			builder.WriteString(c.String())
			builder.WriteString("\n")
		}
	}

	_, err := io.WriteString(w, builder.String())
	return err
}

func swatch(c RGBA) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render("   ")
}
