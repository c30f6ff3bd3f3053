package engine

import (
	"github.com/Carmen-Shannon/oxy-garden/engine/scene"
	"github.com/Carmen-Shannon/oxy-garden/engine/window"
	"github.com/Carmen-Shannon/oxy-garden/logger"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithTickRate sets the engine tick rate in ticks per second.
// Values <= 0 will be treated as the default (60Hz).
//
// Parameters:
//   - fps: target ticks per second (default 60)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTickRate(fps float64) EngineBuilderOption {
	return func(e *engine) {
		e.engineTickRate = tickInterval(fps)
	}
}

// WithMaxDelta caps the delta passed to scenes each tick.
// Values <= 0 keep the default of 0.1 s.
//
// Parameters:
//   - seconds: the largest delta a tick may report
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithMaxDelta(seconds float64) EngineBuilderOption {
	return func(e *engine) {
		if seconds > 0 {
			e.maxDelta = seconds
		}
	}
}

// WithWindow attaches a window whose messages Run pumps and whose input is
// forwarded to active scenes.
//
// Parameters:
//   - w: a spawned Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithScene registers a scene at the given z-index key during engine construction.
//
// Parameters:
//   - key: the z-index determining update order (lower updates first)
//   - s: the Scene to register
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithScene(key int, s scene.Scene) EngineBuilderOption {
	return func(e *engine) {
		e.scenes[key] = s
	}
}

// WithLogger sets the engine logger. The profiler reports through it.
//
// Parameters:
//   - l: the logger
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithLogger(l logger.Logger) EngineBuilderOption {
	return func(e *engine) {
		if l != nil {
			e.log = l
		}
	}
}
