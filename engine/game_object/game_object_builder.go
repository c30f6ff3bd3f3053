package game_object

import (
	"github.com/Carmen-Shannon/oxy-garden/engine/animator"
	"github.com/go-gl/mathgl/mgl64"
)

// GameObjectBuilderOption is a functional option for configuring a GameObject during construction.
type GameObjectBuilderOption func(*gameObject)

// WithID sets the ID of the GameObject.
//
// Parameters:
//   - id: unique identifier for the GameObject
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the ID
func WithID(id uint64) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.id = id
	}
}

// WithName sets the display name of the GameObject.
//
// Parameters:
//   - name: the name used in logs
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the name
func WithName(name string) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.name = name
	}
}

// WithEnabled sets whether the GameObject takes part in scene updates.
//
// Parameters:
//   - enabled: true to update the object, false to skip it
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the Enabled state
func WithEnabled(enabled bool) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.enabled.Store(enabled)
	}
}

// WithPosition sets the initial position of the GameObject.
//
// Parameters:
//   - p: the world position
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the initial position
func WithPosition(p mgl64.Vec3) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.position = p
	}
}

// WithOrientation sets the initial orientation of the GameObject.
//
// Parameters:
//   - q: the orientation, normalized on assignment
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the initial orientation
func WithOrientation(q mgl64.Quat) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.orientation = q.Normalize()
	}
}

// WithScale sets the initial scale of the GameObject.
//
// Parameters:
//   - s: the per-axis scale
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the initial scale
func WithScale(s mgl64.Vec3) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.scale = s
	}
}

// WithMixer attaches an animation Mixer to the GameObject.
//
// Parameters:
//   - m: the Mixer driving the object's clips
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the mixer
func WithMixer(m animator.Mixer) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.mixer = m
	}
}
