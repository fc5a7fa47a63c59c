package apps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults_CoverEveryKind(t *testing.T) {
	seen := map[Kind]bool{}
	names := map[string]bool{}
	for _, a := range Defaults() {
		assert.NotEmpty(t, a.Paths, a.Name)
		assert.False(t, names[a.Name], "duplicate app %s", a.Name)
		names[a.Name] = true
		seen[a.Kind] = true
	}
	assert.Len(t, seen, len(kindNames))
}

func TestSelect(t *testing.T) {
	registry := Defaults()

	all, err := Select(registry, nil)
	require.NoError(t, err)
	assert.Len(t, all, len(registry))

	got, err := Select(registry, []string{"xterm", "kitty", "kitty"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "kitty", got[0].Name)
	assert.Equal(t, "xterm", got[1].Name)

	_, err = Select(registry, []string{"wezterm"})
	assert.ErrorIs(t, err, ErrUnknownApp)
}

func TestBaseDir_String(t *testing.T) {
	assert.Equal(t, "config", BaseConfig.String())
	assert.Equal(t, "home", BaseHome.String())
}
