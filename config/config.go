// Package config loads the garden configuration from YAML.
//
// Load always starts from Default, so a file only needs to name the values it changes.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/Carmen-Shannon/oxy-garden/logger"
	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the root of the YAML document.
type Config struct {
	Log        logger.Config `yaml:"log"`
	Engine     Engine        `yaml:"engine"`
	Window     Window        `yaml:"window"`
	Camera     Camera        `yaml:"camera"`
	Avatar     Avatar        `yaml:"avatar"`
	Locomotion Locomotion    `yaml:"locomotion"`
	Clips      []Clip        `yaml:"clips"`
	Ambient    []Ambient     `yaml:"ambient"`
	Simulate   Simulate      `yaml:"simulate"`
}

// Engine controls the tick scheduler.
type Engine struct {
	TickRate  int     `yaml:"tick_rate"`
	MaxDelta  float64 `yaml:"max_delta"`
	Profiling bool    `yaml:"profiling"`
}

// Window controls the GLFW window opened by the run command.
type Window struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// Camera holds the follow camera's start pose and orbit limits.
type Camera struct {
	Position      mgl64.Vec3 `yaml:"position"`
	Target        mgl64.Vec3 `yaml:"target"`
	MinDistance   float64    `yaml:"min_distance"`
	MaxDistance   float64    `yaml:"max_distance"`
	MaxPolarAngle float64    `yaml:"max_polar_angle"`
	FovDegrees    float64    `yaml:"fov_degrees"`
}

// Avatar describes the controlled character.
type Avatar struct {
	Position      mgl64.Vec3 `yaml:"position"`
	Asset         string     `yaml:"asset"`
	InitialAction string     `yaml:"initial_action"`
	ExcludeClips  []string   `yaml:"exclude_clips"`
}

// Locomotion holds the controller tuning. It can change while running.
type Locomotion struct {
	FadeDuration       float64 `yaml:"fade_duration"`
	RunVelocity        float64 `yaml:"run_velocity"`
	WalkVelocity       float64 `yaml:"walk_velocity"`
	TurnStep           float64 `yaml:"turn_step"`
	CameraTargetHeight float64 `yaml:"camera_target_height"`
	RunByDefault       bool    `yaml:"run_by_default"`
}

// Clip is a clip declared inline, used when no avatar asset is configured.
type Clip struct {
	Name     string  `yaml:"name"`
	Duration float64 `yaml:"duration"`
	Loop     bool    `yaml:"loop"`
}

// Ambient is a prop that loops one clip at a fixed step per tick.
type Ambient struct {
	Name     string  `yaml:"name"`
	Clip     string  `yaml:"clip"`
	Duration float64 `yaml:"duration"`
	Step     float64 `yaml:"step"`
}

// Simulate configures the headless simulate command.
type Simulate struct {
	Delta  float64      `yaml:"delta"`
	Script []ScriptStep `yaml:"script"`
}

// ScriptStep holds a key set for a number of frames.
// Keys is any combination of w, a, s and d.
type ScriptStep struct {
	Keys      string `yaml:"keys"`
	Frames    int    `yaml:"frames"`
	ToggleRun bool   `yaml:"toggle_run"`
}

// Default returns the configuration of the garden zone.
func Default() *Config {
	return &Config{
		Log: logger.DefaultConfig(),
		Engine: Engine{
			TickRate: 60,
			MaxDelta: 0.1,
		},
		Window: Window{
			Title:  "Herbal Garden",
			Width:  1280,
			Height: 720,
		},
		Camera: Camera{
			Position:      mgl64.Vec3{0, 4, 4},
			Target:        mgl64.Vec3{0, 0, 0},
			MinDistance:   3,
			MaxDistance:   5,
			MaxPolarAngle: math.Pi/2 - 0.05,
			FovDegrees:    45,
		},
		Avatar: Avatar{
			Position:      mgl64.Vec3{-14, 0.8, 10},
			InitialAction: "Idle",
			ExcludeClips:  []string{"TPose"},
		},
		Locomotion: Locomotion{
			FadeDuration:       0.2,
			RunVelocity:        16,
			WalkVelocity:       3.4,
			TurnStep:           0.2,
			CameraTargetHeight: 1,
			RunByDefault:       true,
		},
		Clips: []Clip{
			{Name: "Idle", Duration: 2, Loop: true},
			{Name: "Walk", Duration: 1, Loop: true},
			{Name: "Run", Duration: 0.7, Loop: true},
		},
		Simulate: Simulate{
			Delta: 1.0 / 60.0,
		},
	}
}

// Load reads path over Default and validates the result.
//
// Parameters:
//   - path: the YAML file to read
//
// Returns:
//   - *Config: the loaded configuration
//   - error: error if the file cannot be read, parsed, or fails validation
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data over Default and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		var typeErr *yaml.TypeError
		if errors.As(err, &typeErr) && len(typeErr.Errors) > 0 {
			return nil, fmt.Errorf("failed to parse: %s", typeErr.Errors[0])
		}
		return nil, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every problem found as one error wrapping ErrInvalidConfig.
func (c *Config) Validate() error {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if c.Engine.TickRate <= 0 {
		add("engine.tick_rate must be positive, got %d", c.Engine.TickRate)
	}
	if c.Engine.MaxDelta <= 0 {
		add("engine.max_delta must be positive, got %g", c.Engine.MaxDelta)
	}
	if c.Camera.MinDistance <= 0 || c.Camera.MinDistance > c.Camera.MaxDistance {
		add("camera distance bounds [%g, %g] are invalid", c.Camera.MinDistance, c.Camera.MaxDistance)
	}
	if c.Camera.MaxPolarAngle <= 0 || c.Camera.MaxPolarAngle >= math.Pi/2 {
		add("camera.max_polar_angle must be in (0, pi/2), got %g", c.Camera.MaxPolarAngle)
	}
	if c.Camera.FovDegrees <= 0 || c.Camera.FovDegrees >= 180 {
		add("camera.fov_degrees must be in (0, 180), got %g", c.Camera.FovDegrees)
	}
	if err := c.Locomotion.Validate(); err != nil {
		problems = append(problems, err.Error())
	}
	switch c.Avatar.InitialAction {
	case "Idle", "Walk", "Run":
	default:
		add("avatar.initial_action must be Idle, Walk or Run, got %q", c.Avatar.InitialAction)
	}
	if c.Avatar.Asset == "" && len(c.Clips) == 0 {
		add("either avatar.asset or clips must be set")
	}
	for i, a := range c.Ambient {
		if a.Clip == "" {
			add("ambient[%d].clip is required", i)
		}
		if a.Step <= 0 {
			add("ambient[%d].step must be positive, got %g", i, a.Step)
		}
	}
	if c.Simulate.Delta < 0 {
		add("simulate.delta must not be negative, got %g", c.Simulate.Delta)
	}
	for i, s := range c.Simulate.Script {
		if s.Frames < 0 {
			add("simulate.script[%d].frames must not be negative", i)
		}
		if strings.Trim(strings.ToLower(s.Keys), "wasd") != "" {
			add("simulate.script[%d].keys %q may only contain w, a, s, d", i, s.Keys)
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// Validate checks the tuning values that can be hot reloaded.
func (l Locomotion) Validate() error {
	var problems []string
	if l.FadeDuration <= 0 {
		problems = append(problems, fmt.Sprintf("locomotion.fade_duration must be positive, got %g", l.FadeDuration))
	}
	if l.RunVelocity <= 0 {
		problems = append(problems, fmt.Sprintf("locomotion.run_velocity must be positive, got %g", l.RunVelocity))
	}
	if l.WalkVelocity <= 0 {
		problems = append(problems, fmt.Sprintf("locomotion.walk_velocity must be positive, got %g", l.WalkVelocity))
	}
	if l.TurnStep <= 0 {
		problems = append(problems, fmt.Sprintf("locomotion.turn_step must be positive, got %g", l.TurnStep))
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}
