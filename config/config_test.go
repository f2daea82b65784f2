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
	path := filepath.Join(t.TempDir(), "demo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultMatchesShippedScene(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "Solution 7", cfg.Window.Title)
	assert.Equal(t, 1024, cfg.Window.Width)
	assert.Equal(t, 768, cfg.Window.Height)
	assert.Equal(t, Vec3{0, 2, -3}, cfg.Camera.Eye)
	assert.Equal(t, Vec3{0, 1.5, -3}, cfg.Lighting.Light)
	assert.InDelta(t, 0.9, cfg.Lighting.Roughness, 1e-6)
	assert.InDelta(t, 0.1, cfg.Lighting.Specular, 1e-6)
	assert.InDelta(t, 0.05, cfg.Camera.Speed, 1e-6)
	assert.InDelta(t, 0.3, cfg.Objects.Light.Scale, 1e-6)
	assert.Equal(t, "shader.vert", cfg.Shaders.Vertex)
	assert.Equal(t, "shader.frag", cfg.Shaders.Fragment)
	assert.NoError(t, cfg.Validate())
}

func TestLoadMergesOntoDefaults(t *testing.T) {
	path := writeConfig(t, `
window:
  title: Inspect
  width: 640
lighting:
  roughness: 0.5
objects:
  ball:
    mesh: builtin:sphere
    texture: ""
    scale: 2
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Inspect", cfg.Window.Title)
	assert.Equal(t, 640, cfg.Window.Width)
	assert.Equal(t, 768, cfg.Window.Height, "unset keys keep defaults")
	assert.InDelta(t, 0.5, cfg.Lighting.Roughness, 1e-6)
	assert.InDelta(t, 0.1, cfg.Lighting.Specular, 1e-6)
	assert.Equal(t, BuiltinSphere, cfg.Objects.Ball.Mesh)
	assert.Equal(t, "", cfg.Objects.Ball.Texture)
	assert.Equal(t, "ball.obj", cfg.Objects.Light.Mesh)
	assert.Equal(t, filepath.Dir(path), cfg.AssetDir)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"roughness", "lighting: {roughness: 1.5}"},
		{"specular", "lighting: {specular: -0.1}"},
		{"mode", "lighting: {mode: 4}"},
		{"size", "window: {width: 0}"},
		{"cull", "cull: sideways"},
		{"clip", "camera: {near: 1, far: 0.5}"},
		{"scale", "objects: {light: {scale: 0}}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestPath(t *testing.T) {
	cfg := Default()
	cfg.AssetDir = "assets"

	assert.Equal(t, filepath.Join("assets", "ball.obj"), cfg.Path("ball.obj"))
	assert.Equal(t, BuiltinSphere, cfg.Path(BuiltinSphere))
	assert.Equal(t, "", cfg.Path(""))
}

func TestShippedConfigIsValid(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "assets", "demo.yaml"))
	require.NoError(t, err)

	assert.Equal(t, BuiltinSphere, cfg.Objects.Ball.Mesh)
	assert.Equal(t, "escape", cfg.Keys["quit"])
	assert.Equal(t, filepath.Join("..", "assets", "shader.vert"), cfg.Path(cfg.Shaders.Vertex))
}
