package scene

import (
	"github.com/Carmen-Shannon/oxy-garden/config"
	"github.com/Carmen-Shannon/oxy-garden/engine/animator"
	"github.com/Carmen-Shannon/oxy-garden/engine/loader"
	"github.com/Carmen-Shannon/oxy-garden/logger"
)

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithActive sets whether the scene is active.
//
// Parameters:
//   - active: whether the scene is active
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithActive(active bool) SceneBuilderOption {
	return func(s *scene) {
		s.active = active
	}
}

// WithConfig sets the configuration the scene is built from. Defaults to config.Default().
//
// Parameters:
//   - cfg: the configuration
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithConfig(cfg *config.Config) SceneBuilderOption {
	return func(s *scene) {
		s.cfg = cfg
	}
}

// WithClips sets the avatar's clip catalog directly, bypassing the asset and inline clips.
//
// Parameters:
//   - clips: the clip catalog
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithClips(clips ...animator.Clip) SceneBuilderOption {
	return func(s *scene) {
		s.catalog = append([]animator.Clip{}, clips...)
	}
}

// WithLoader sets the loader used to read the avatar asset.
//
// Parameters:
//   - l: the loader
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithLoader(l loader.Loader) SceneBuilderOption {
	return func(s *scene) {
		s.ld = l
	}
}

// WithLogger sets the logger for the scene and its controller.
//
// Parameters:
//   - l: the logger
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithLogger(l logger.Logger) SceneBuilderOption {
	return func(s *scene) {
		if l != nil {
			s.log = l
		}
	}
}

// WithAspect sets the camera aspect ratio (width / height).
func WithAspect(aspect float64) SceneBuilderOption {
	return func(s *scene) {
		if aspect > 0 {
			s.aspect = aspect
		}
	}
}

// WithAmbientWorkers sets the number of worker goroutines that advance ambient props.
// Defaults to runtime.NumCPU()-1.
//
// Parameters:
//   - n: the number of workers (minimum 1)
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithAmbientWorkers(n int) SceneBuilderOption {
	return func(s *scene) {
		if n < 1 {
			n = 1
		}
		s.ambientWorkers = n
	}
}
