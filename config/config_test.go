package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 0.2, cfg.Locomotion.FadeDuration)
	assert.Equal(t, 16.0, cfg.Locomotion.RunVelocity)
	assert.Equal(t, 3.4, cfg.Locomotion.WalkVelocity)
	assert.Equal(t, 0.2, cfg.Locomotion.TurnStep)
	assert.Equal(t, 1.0, cfg.Locomotion.CameraTargetHeight)
	assert.True(t, cfg.Locomotion.RunByDefault)
	assert.Equal(t, mgl64.Vec3{0, 4, 4}, cfg.Camera.Position)
	assert.Equal(t, mgl64.Vec3{-14, 0.8, 10}, cfg.Avatar.Position)
	assert.InDelta(t, math.Pi/2-0.05, cfg.Camera.MaxPolarAngle, 1e-12)
	assert.Equal(t, []string{"TPose"}, cfg.Avatar.ExcludeClips)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garden.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
locomotion:
  run_velocity: 10
  run_by_default: false
camera:
  position: [1, 2, 3]
ambient:
  - name: yoga
    clip: surya namaskara
    duration: 8
    step: 0.01
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 10.0, cfg.Locomotion.RunVelocity)
	assert.False(t, cfg.Locomotion.RunByDefault)
	assert.Equal(t, 3.4, cfg.Locomotion.WalkVelocity, "unlisted values keep defaults")
	assert.Equal(t, mgl64.Vec3{1, 2, 3}, cfg.Camera.Position)
	require.Len(t, cfg.Ambient, 1)
	assert.Equal(t, "surya namaskara", cfg.Ambient[0].Clip)
	assert.Equal(t, 0.01, cfg.Ambient[0].Step)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "nope.yaml"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("engine: [1, 2"), 0o644))
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), path)
	})

	t.Run("type mismatch", func(t *testing.T) {
		path := filepath.Join(dir, "type.yaml")
		require.NoError(t, os.WriteFile(path, []byte("engine:\n  tick_rate: fast\n"), 0o644))
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "line")
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"tick rate", func(c *Config) { c.Engine.TickRate = 0 }, "tick_rate"},
		{"max delta", func(c *Config) { c.Engine.MaxDelta = -1 }, "max_delta"},
		{"distance bounds", func(c *Config) { c.Camera.MinDistance = 6 }, "distance"},
		{"polar", func(c *Config) { c.Camera.MaxPolarAngle = math.Pi }, "max_polar_angle"},
		{"fade", func(c *Config) { c.Locomotion.FadeDuration = 0 }, "fade_duration"},
		{"run velocity", func(c *Config) { c.Locomotion.RunVelocity = 0 }, "run_velocity"},
		{"walk velocity", func(c *Config) { c.Locomotion.WalkVelocity = -3 }, "walk_velocity"},
		{"turn step", func(c *Config) { c.Locomotion.TurnStep = 0 }, "turn_step"},
		{"initial action", func(c *Config) { c.Avatar.InitialAction = "TPose" }, "initial_action"},
		{"no clips", func(c *Config) { c.Clips = nil }, "clips"},
		{"ambient step", func(c *Config) { c.Ambient = []Ambient{{Clip: "x"}} }, "ambient[0].step"},
		{"script keys", func(c *Config) { c.Simulate.Script = []ScriptStep{{Keys: "wq", Frames: 1}} }, "keys"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
