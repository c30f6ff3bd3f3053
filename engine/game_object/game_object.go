package game_object

import (
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-garden/common"
	"github.com/Carmen-Shannon/oxy-garden/engine/animator"
	"github.com/go-gl/mathgl/mgl64"
)

type gameObject struct {
	id          uint64
	name        string
	enabled     atomic.Bool
	position    mgl64.Vec3
	orientation mgl64.Quat
	scale       mgl64.Vec3
	mixer       animator.Mixer
}

// GameObject defines the interface for a scene entity with a world transform.
// The orientation is always a unit quaternion.
type GameObject interface {
	// ID returns the object's unique identifier.
	//
	// Returns:
	//   - uint64: the object ID
	ID() uint64

	// Name returns the object's display name.
	//
	// Returns:
	//   - string: the name
	Name() string

	// Enabled returns whether this object takes part in scene updates.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// Mixer returns the animation Mixer driving this object, or nil if not set.
	//
	// Returns:
	//   - animator.Mixer: the mixer or nil
	Mixer() animator.Mixer

	// Position returns the world position.
	//
	// Returns:
	//   - mgl64.Vec3: the position
	Position() mgl64.Vec3

	// Orientation returns the world orientation.
	//
	// Returns:
	//   - mgl64.Quat: the unit orientation quaternion
	Orientation() mgl64.Quat

	// Scale returns the per-axis scale.
	//
	// Returns:
	//   - mgl64.Vec3: the scale
	Scale() mgl64.Vec3

	// Facing returns the direction the object's local +Z axis points in world space.
	//
	// Returns:
	//   - mgl64.Vec3: the unit facing direction
	Facing() mgl64.Vec3

	// ModelMatrix composes translation, orientation and scale.
	//
	// Returns:
	//   - mgl64.Mat4: the local-to-world matrix
	ModelMatrix() mgl64.Mat4

	// SetID sets the object's unique identifier.
	//
	// Parameters:
	//   - id: the ID to assign
	SetID(id uint64)

	// SetEnabled sets whether the object takes part in scene updates.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)

	// SetMixer assigns the animation Mixer driving this object.
	//
	// Parameters:
	//   - m: the Mixer to associate
	SetMixer(m animator.Mixer)

	// SetPosition sets the world position.
	//
	// Parameters:
	//   - p: the new position
	SetPosition(p mgl64.Vec3)

	// SetOrientation sets the world orientation. The quaternion is normalized.
	//
	// Parameters:
	//   - q: the new orientation
	SetOrientation(q mgl64.Quat)

	// SetScale sets the per-axis scale.
	//
	// Parameters:
	//   - s: the new scale
	SetScale(s mgl64.Vec3)

	// RotateTowards turns the orientation toward target by at most step radians
	// along the shortest arc, landing exactly on target when it is within step.
	//
	// Parameters:
	//   - target: the orientation to turn toward
	//   - step: the maximum rotation in radians
	RotateTowards(target mgl64.Quat, step float64)
}

var _ GameObject = &gameObject{}

// NewGameObject creates a new GameObject with the provided options.
// Objects start enabled at the origin with identity orientation and unit scale.
//
// Parameters:
//   - options: variadic list of GameObjectBuilderOption functions to configure the GameObject
//
// Returns:
//   - GameObject: the newly created GameObject
func NewGameObject(options ...GameObjectBuilderOption) GameObject {
	obj := &gameObject{
		orientation: mgl64.QuatIdent(),
		scale:       mgl64.Vec3{1, 1, 1},
	}
	obj.enabled.Store(true)

	for _, opt := range options {
		opt(obj)
	}
	return obj
}

func (g *gameObject) ID() uint64 {
	return g.id
}

func (g *gameObject) Name() string {
	return g.name
}

func (g *gameObject) Enabled() bool {
	return g.enabled.Load()
}

func (g *gameObject) Mixer() animator.Mixer {
	return g.mixer
}

func (g *gameObject) Position() mgl64.Vec3 {
	return g.position
}

func (g *gameObject) Orientation() mgl64.Quat {
	return g.orientation
}

func (g *gameObject) Scale() mgl64.Vec3 {
	return g.scale
}

func (g *gameObject) Facing() mgl64.Vec3 {
	return g.orientation.Rotate(mgl64.Vec3{0, 0, 1})
}

func (g *gameObject) ModelMatrix() mgl64.Mat4 {
	t := mgl64.Translate3D(g.position.X(), g.position.Y(), g.position.Z())
	s := mgl64.Scale3D(g.scale.X(), g.scale.Y(), g.scale.Z())
	return t.Mul4(g.orientation.Mat4()).Mul4(s)
}

func (g *gameObject) SetID(id uint64) {
	g.id = id
}

func (g *gameObject) SetEnabled(enabled bool) {
	g.enabled.Store(enabled)
}

func (g *gameObject) SetMixer(m animator.Mixer) {
	g.mixer = m
}

func (g *gameObject) SetPosition(p mgl64.Vec3) {
	g.position = p
}

func (g *gameObject) SetOrientation(q mgl64.Quat) {
	g.orientation = q.Normalize()
}

func (g *gameObject) SetScale(s mgl64.Vec3) {
	g.scale = s
}

func (g *gameObject) RotateTowards(target mgl64.Quat, step float64) {
	g.orientation = common.RotateTowards(g.orientation, target.Normalize(), step)
}
