package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", "/data")
	require.NoError(t, err)

	assert.Equal(t, "tokyo-night", cfg.Theme)
	assert.Equal(t, ViewList, cfg.View)
	assert.Equal(t, "/data", cfg.DataDir)
	assert.Equal(t, 1, cfg.Database.MaxOpenConns)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), "/data")
	require.NoError(t, err)
	assert.Equal(t, "tokyo-night", cfg.Theme)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "theme: gruvbox\n")

	cfg, err := Load(path, "/data")
	require.NoError(t, err)

	assert.Equal(t, "gruvbox", cfg.Theme)
	assert.Equal(t, ViewList, cfg.View)
	assert.Equal(t, 5000, cfg.Database.BusyTimeout)
}

func TestLoad_FullFile(t *testing.T) {
	path := writeConfig(t, `
theme: catppuccin
view: board
date_format: "02 Jan 2006"
database:
  max_open_conns: 4
  busy_timeout: 10000
`)

	cfg, err := Load(path, "/data")
	require.NoError(t, err)

	assert.Equal(t, "catppuccin", cfg.Theme)
	assert.Equal(t, ViewBoard, cfg.View)
	assert.Equal(t, "02 Jan 2006", cfg.DateFormat)
	assert.Equal(t, 4, cfg.Database.MaxOpenConns)
	assert.Equal(t, 10000, cfg.Database.BusyTimeout)
}

func TestLoad_RejectsUnknownTheme(t *testing.T) {
	path := writeConfig(t, "theme: hotdog-stand\n")

	_, err := Load(path, "/data")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown theme")
}

func TestLoad_RejectsUnknownView(t *testing.T) {
	path := writeConfig(t, "view: kanban3d\n")

	_, err := Load(path, "/data")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown view")
}

func TestLoad_RejectsBadYAML(t *testing.T) {
	path := writeConfig(t, "theme: [unclosed\n")

	_, err := Load(path, "/data")
	assert.Error(t, err)
}
