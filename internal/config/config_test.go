package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sandbox.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeFile(t, `
window:
  width: 1280
  title: Orbit
camera:
  orbit_position: [0, 1, 9]
light:
  blinn_phong: false
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	want := Default()
	want.Window.Width = 1280
	want.Window.Title = "Orbit"
	want.Camera.OrbitPosition = [3]float32{0, 1, 9}
	want.Light.BlinnPhong = false
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "window: [not, a, map"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"zero width", func(c *Config) { c.Window.Width = 0 }, ErrInvalidWindow},
		{"old GL", func(c *Config) { c.Window.GLMajor, c.Window.GLMinor = 3, 2 }, ErrInvalidWindow},
		{"negative samples", func(c *Config) { c.Window.Samples = -1 }, ErrInvalidWindow},
		{"unknown output", func(c *Config) { c.Logging.Output = "syslog" }, ErrInvalidLogOutput},
		{"file without path", func(c *Config) {
			c.Logging.Output = "file"
			c.Logging.Path = ""
		}, ErrInvalidLogOutput},
		{"zero radius", func(c *Config) { c.Camera.ArcballRadius = 0 }, ErrInvalidCamera},
		{"orbit at target", func(c *Config) { c.Camera.OrbitPosition = c.Camera.Target }, ErrInvalidCamera},
		{"orbit above target", func(c *Config) { c.Camera.OrbitPosition = [3]float32{0, 5, 0} }, ErrInvalidCamera},
		{"orbit below offset target", func(c *Config) {
			c.Camera.Target = [3]float32{1, 2, 3}
			c.Camera.OrbitPosition = [3]float32{1, -4, 3}
		}, ErrInvalidCamera},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), tt.want)
		})
	}
}

func TestValidateAcceptsTiltedOrbit(t *testing.T) {
	cfg := Default()
	cfg.Camera.OrbitPosition = [3]float32{0, 5, 0.5}
	assert.NoError(t, cfg.Validate())
}

func TestSaveRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Assets.Model = "duck.glb"
	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
