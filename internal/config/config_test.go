package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tabletop.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
[window]
title = "Still Life"

[camera]
position = [1.0, 2.0, 3.0]
zoom = 45.0

[render]
fps_limit = 60
`)

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Still Life", s.Window.Title)
	assert.Equal(t, 1000, s.Window.Width)
	assert.Equal(t, 800, s.Window.Height)
	assert.Equal(t, [3]float32{1, 2, 3}, s.Camera.Position)
	assert.Equal(t, float32(45), s.Camera.Zoom)
	assert.Equal(t, float32(20), s.Camera.Speed)
	assert.Equal(t, 60, s.Render.FPSLimit)
	assert.Equal(t, "textures", s.Assets.TexturesDir)
}

func TestLoadClamps(t *testing.T) {
	path := writeConfig(t, `
[window]
width = -5

[camera]
zoom = 400.0

[render]
fps_limit = 100000
`)

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1000, s.Window.Width)
	assert.Equal(t, float32(90), s.Camera.Zoom)
	assert.Equal(t, 1000, s.Render.FPSLimit)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, `
[camera]
zooom = 10.0
`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadAndApplyMissingFileKeepsDefaults(t *testing.T) {
	t.Cleanup(func() { Set(Default()) })

	require.NoError(t, LoadAndApply(filepath.Join(t.TempDir(), "absent.toml")))
	assert.Equal(t, Default(), Get())
}

func TestFPSLimitSetter(t *testing.T) {
	t.Cleanup(func() { Set(Default()) })

	SetFPSLimit(-3)
	assert.Equal(t, 0, GetFPSLimit())
	SetFPSLimit(75)
	assert.Equal(t, 75, GetFPSLimit())
}
