package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_missing_file_returns_defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), *cfg)
}

func TestLoad_empty_path_returns_defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, PositionBottomRight, cfg.Toast.Position)
	assert.Equal(t, 5*time.Second, cfg.Toast.Lifetime)
}

func TestLoad_overrides(t *testing.T) {
	path := writeConfig(t, `
toast:
  position: top-left
  lifetime: 2s
  width: 40
  max_visible: 3
  enter_frames: 0
  frame_interval: 25ms
tui:
  theme: gruvbox
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, PositionTopLeft, cfg.Toast.Position)
	assert.Equal(t, 2*time.Second, cfg.Toast.Lifetime)
	assert.Equal(t, 40, cfg.Toast.Width)
	assert.Equal(t, 3, cfg.Toast.MaxVisible)
	assert.Equal(t, 0, cfg.Toast.EnterFrames, "explicit zero disables the enter animation")
	assert.Equal(t, 3, cfg.Toast.ExitFrames, "unset keys keep their defaults")
	assert.Equal(t, 25*time.Millisecond, cfg.Toast.FrameInterval)
	assert.Equal(t, "gruvbox", cfg.TUI.Theme)
}

func TestLoad_invalid_yaml(t *testing.T) {
	path := writeConfig(t, "toast: [unclosed")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config file")
}

func TestLoad_invalid_values(t *testing.T) {
	path := writeConfig(t, `
toast:
  position: middle
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
	assert.Contains(t, err.Error(), "middle")
}

func TestRead_skips_validation(t *testing.T) {
	path := writeConfig(t, `
toast:
  position: middle
`)

	cfg, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, "middle", cfg.Toast.Position)
	assert.Equal(t, DefaultConfig().Toast.Width, cfg.Toast.Width, "defaults still applied")
	assert.Error(t, cfg.Validate())
}

func TestApplyDefaults_fills_zero_values(t *testing.T) {
	cfg := Config{}
	cfg.applyDefaults()

	defaults := DefaultConfig()
	assert.Equal(t, defaults.Toast.Position, cfg.Toast.Position)
	assert.Equal(t, defaults.Toast.Width, cfg.Toast.Width)
	assert.Equal(t, defaults.Toast.Lifetime, cfg.Toast.Lifetime)
	assert.Equal(t, defaults.Toast.FrameInterval, cfg.Toast.FrameInterval)
	assert.Equal(t, defaults.TUI.Theme, cfg.TUI.Theme)
	assert.Equal(t, defaults.Showcase.TickerInterval, cfg.Showcase.TickerInterval)
}
