package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teems/apps"
	"teems/theme"
)

const catalog = `[
  {"name": "mono", "colors": {"color0": "#000000", "color1": [1, 1, 1, 1.0], "foreground": "#FFFFFF"}},
  {"name": "other", "colors": {}}
]`

type env struct {
	home     string
	settings string
	catalog  string
}

func setupEnv(t *testing.T) env {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))

	e := env{
		home:     home,
		settings: filepath.Join(home, "teems.toml"),
		catalog:  filepath.Join(home, "themes.json"),
	}
	require.NoError(t, os.WriteFile(e.catalog, []byte(catalog), 0o600))
	return e
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestList(t *testing.T) {
	e := setupEnv(t)

	out, err := execute(t, "list", "--settings", e.settings, "-c", e.catalog, "--names")
	require.NoError(t, err)
	assert.Equal(t, "mono\nother\n", out)

	out, err = execute(t, "--settings", e.settings, "--config", e.catalog)
	require.NoError(t, err)
	assert.Contains(t, out, "mono")
	assert.Contains(t, out, "color1")

	out, err = execute(t, "list", "--settings", e.settings, "-c", e.catalog, "--plain")
	require.NoError(t, err)
	assert.Contains(t, out, "Name: mono\nColors:\n\tcolor0: #000000\n")
}

func TestActivate(t *testing.T) {
	e := setupEnv(t)
	kittyConf := filepath.Join(e.home, ".config", "kitty", "kitty.conf")
	require.NoError(t, os.MkdirAll(filepath.Dir(kittyConf), 0o755))
	require.NoError(t, os.WriteFile(kittyConf, []byte("color0 #1d1f21\ncolor1 #cc6666\ncolor2 #b5bd68\n"), 0o644))

	out, err := execute(t, "activate", "--settings", e.settings, "-c", e.catalog, "-t", "mono", "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "would rewrite")
	got, err := os.ReadFile(kittyConf)
	require.NoError(t, err)
	assert.Equal(t, "color0 #1d1f21\ncolor1 #cc6666\ncolor2 #b5bd68\n", string(got))

	out, err = execute(t, "activate", "--settings", e.settings, "-c", e.catalog, "--theme", "mono")
	require.NoError(t, err)
	assert.Contains(t, out, "1 file(s) updated")
	got, err = os.ReadFile(kittyConf)
	require.NoError(t, err)
	assert.Equal(t, "color0 #000000\ncolor1 #010101\ncolor2 #b5bd68\n", string(got))

	out, err = execute(t, "activate", "--settings", e.settings, "-c", e.catalog, "--theme", "mono")
	require.NoError(t, err)
	assert.Contains(t, out, "unchanged")
}

func TestActivate_Errors(t *testing.T) {
	e := setupEnv(t)

	_, err := execute(t, "activate", "--settings", e.settings, "-c", e.catalog, "-t", "missing")
	assert.ErrorIs(t, err, theme.ErrThemeNotFound)

	_, err = execute(t, "activate", "--settings", e.settings, "-c", e.catalog, "-t", "mono", "--app", "wezterm")
	assert.ErrorIs(t, err, apps.ErrUnknownApp)

	_, err = execute(t, "activate", "--settings", e.settings, "-c", e.catalog)
	assert.Error(t, err)

	bad := filepath.Join(e.home, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`[{"name": "x", "colors": {"color0": "#fff"}}]`), 0o600))
	_, err = execute(t, "activate", "--settings", e.settings, "-c", bad, "-t", "x")
	assert.ErrorIs(t, err, theme.ErrInvalidHex)
}

func TestActivate_NoFiles(t *testing.T) {
	e := setupEnv(t)

	out, err := execute(t, "activate", "--settings", e.settings, "-c", e.catalog, "-t", "other")
	require.NoError(t, err)
	assert.Contains(t, out, "No application configuration files found.")
}

func TestConfigGenerate(t *testing.T) {
	e := setupEnv(t)

	out, err := execute(t, "config", "generate", "--settings", e.settings)
	require.NoError(t, err)
	assert.Contains(t, out, e.settings)
	_, err = os.Stat(e.settings)
	require.NoError(t, err)

	_, err = execute(t, "config", "generate", "--settings", e.settings)
	assert.ErrorContains(t, err, "already exists")
}
