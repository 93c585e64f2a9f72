package bubbles

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gekko3d/bubbles/meshrt/rt/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bubbles.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "buble_16K.txt", cfg.Mesh.Path)
	assert.Equal(t, core.DefaultMeshScale, cfg.Mesh.Scale)
	assert.Equal(t, 100, cfg.Orbit.Count)
	assert.Equal(t, float32(2), cfg.Orbit.Radius)
	assert.Equal(t, float32(1.5), cfg.Orbit.Speed)
	assert.Equal(t, float32(8), cfg.Orbit.Spread)
	assert.Equal(t, float32(2.5), cfg.Camera.Speed)
	assert.Equal(t, float32(0.2), cfg.Camera.Sensitivity)
	assert.Equal(t, float32(90), cfg.Camera.Fov)
	assert.True(t, cfg.Overlay)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_Overlay(t *testing.T) {
	path := writeConfig(t, `
mesh:
  path: other.txt
orbit:
  count: 7
seed: 42
debug: true
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "other.txt", cfg.Mesh.Path)
	assert.Equal(t, core.DefaultMeshScale, cfg.Mesh.Scale, "unset keys keep defaults")
	assert.Equal(t, 7, cfg.Orbit.Count)
	assert.Equal(t, float32(2), cfg.Orbit.Radius)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.True(t, cfg.Debug)
}

func TestLoadConfig_EmptyFile(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown key", "orbit:\n  cnt: 3\n"},
		{"bad type", "orbit:\n  count: many\n"},
		{"negative count", "orbit:\n  count: -1\n"},
		{"fov out of range", "camera:\n  fov: 120\n"},
		{"far before near", "camera:\n  near: 10\n  far: 1\n"},
		{"zero window", "window:\n  width: 0\n"},
		{"zero camera speed", "camera:\n  speed: 0\n"},
		{"zero sensitivity", "camera:\n  sensitivity: 0\n"},
		{"negative orbit radius", "orbit:\n  radius: -2\n"},
		{"orbit speed nan", "orbit:\n  speed: .nan\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestConfig_RandIsSeeded(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 7

	a, b := cfg.Rand(), cfg.Rand()
	for i := 0; i < 5; i++ {
		assert.Equal(t, a.Float32(), b.Float32())
	}
}
