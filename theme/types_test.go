package theme

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTheme() *Theme {
	return &Theme{
		Name: "sample",
		Colors: map[Role]RGBA{
			"foreground": {R: 255, G: 255, B: 255, A: 1},
			"color10":    {R: 10, G: 10, B: 10, A: 1},
			"color2":     {R: 2, G: 2, B: 2, A: 0.5},
			"background": {A: 1},
		},
	}
}

func TestTheme_Roles(t *testing.T) {
	assert.Equal(t, []Role{"color2", "color10", "background", "foreground"}, sampleTheme().Roles())
}

func TestTheme_Lookup(t *testing.T) {
	c, ok := sampleTheme().Lookup("color10")
	assert.True(t, ok)
	assert.Equal(t, "#0a0a0a", c.Hex())

	_, ok = sampleTheme().Lookup("cursor")
	assert.False(t, ok)

	var nilTheme *Theme
	_, ok = nilTheme.Lookup("color0")
	assert.False(t, ok)
}

func TestTheme_String(t *testing.T) {
	want := "Name: sample\nColors:\n" +
		"\tcolor2: rgba(2,2,2,0.5)\n" +
		"\tcolor10: #0a0a0a\n" +
		"\tbackground: #000000\n" +
		"\tforeground: #ffffff\n"
	assert.Equal(t, want, sampleTheme().String())
}

func TestRenderList(t *testing.T) {
	themes := NewManager([]Theme{*sampleTheme(), {Name: "empty"}}).Themes()

	var names bytes.Buffer
	require.NoError(t, RenderList(&names, themes, RenderOptions{NamesOnly: true}))
	assert.Equal(t, "sample\nempty\n", names.String())

	var plain bytes.Buffer
	require.NoError(t, RenderList(&plain, themes, RenderOptions{}))
	assert.Contains(t, plain.String(), "Name: sample\n")
	assert.Contains(t, plain.String(), "Name: empty\n")

	var swatches bytes.Buffer
	require.NoError(t, RenderList(&swatches, themes, RenderOptions{Swatches: true}))
	assert.Contains(t, swatches.String(), "sample")
	assert.Contains(t, swatches.String(), "color10")
	assert.Contains(t, swatches.String(), "#0a0a0a")
}
