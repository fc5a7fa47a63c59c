package apps

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKitty_ReplacesColors(t *testing.T) {
	cfg := `
# The foreground for selections
selection_foreground #000000

# The background for selections
selection_background #FFFACD

# black
color0 #1d1f21
color8 #969896

color1 #cc6666
color9 #cc6666

color10 #b5bd68
color15 #ffffff
        `

	expected := `
# The foreground for selections
selection_foreground #464646

# The background for selections
selection_background #464646

# black
color0 #000000
color8 #080808

color1 #010101
color9 #090909

color10 #0a0a0a
color15 #0f0f0f
        `

	assert.Equal(t, expected, kitty.Convert(grayTheme(), cfg))
}

func TestKitty_KeepsTrailingContentAndIndent(t *testing.T) {
	got := kitty.Convert(grayTheme(), "  foreground   #C5C8C6   # main text")
	assert.Equal(t, "  foreground   #ffffff   # main text", got)
}

func TestKitty_KeepsLiteralWhenRoleMissing(t *testing.T) {
	cfg := "url_color #0087bd\ncursor #cccccc"
	assert.Equal(t, "url_color #0087bd\ncursor #3c3c3c", kitty.Convert(grayTheme(), cfg))
}

func TestKitty_DoesNotAffectOtherApps(t *testing.T) {
	cfg := `
URxvt.foreground: #afb7c0
URxvt.background: #2c2d30
*.color0: #2c2d30
foreground_bold #ffffff
#color0 #1d1f21
        `

	assert.Equal(t, cfg, kitty.Convert(grayTheme(), cfg))
}
