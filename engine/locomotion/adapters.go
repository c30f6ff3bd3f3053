package locomotion

import "github.com/go-gl/mathgl/mgl64"

// Pose is the avatar transform the controller moves and turns.
type Pose interface {
	Position() mgl64.Vec3
	SetPosition(p mgl64.Vec3)
	Orientation() mgl64.Quat
	// RotateTowards turns toward target by at most step radians, landing exactly on
	// target when it is within step.
	RotateTowards(target mgl64.Quat, step float64)
}

// Mixer advances every clip of the avatar.
type Mixer interface {
	Update(dt float64)
}

// Clip is one schedulable animation of the avatar.
type Clip interface {
	Play()
	Reset()
	FadeIn(duration float64)
	FadeOut(duration float64)
}

// CameraPose is the camera the travel direction is measured against.
type CameraPose interface {
	Position() mgl64.Vec3
	SetPosition(p mgl64.Vec3)
	// Forward returns the world-space look direction.
	Forward() mgl64.Vec3
}

// FollowTarget receives the point the camera orbits.
type FollowTarget interface {
	SetTarget(t mgl64.Vec3)
}

// KeySet is a snapshot of the held direction keys.
type KeySet struct {
	Forward bool
	Left    bool
	Back    bool
	Right   bool
}

// Any reports whether at least one direction key is held.
func (k KeySet) Any() bool {
	return k.Forward || k.Left || k.Back || k.Right
}
