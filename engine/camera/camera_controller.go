package camera

import "github.com/go-gl/mathgl/mgl64"

// CameraController defines the follow-camera control interface.
// Controllers own positional state (position, target) and the spherical offset between
// them. Camera reads from the controller and computes view/projection matrices.
//
// SetPosition and SetTarget each move one point and re-derive the spherical offset
// without touching the other point, so shifting both by the same vector keeps the
// camera rigidly attached to its target. Update applies the orbit limits.
type CameraController interface {
	orbitCameraController

	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - mgl64.Vec3: world-space camera position
	Position() mgl64.Vec3

	// Target returns the look-at point.
	//
	// Returns:
	//   - mgl64.Vec3: world-space target position
	Target() mgl64.Vec3

	// SetTarget moves the look-at/pivot point and re-derives the spherical offset
	// from the unchanged camera position.
	//
	// Parameters:
	//   - t: world-space target position
	SetTarget(t mgl64.Vec3)

	// SetPosition moves the camera and re-derives the spherical offset relative to the
	// unchanged target.
	//
	// Parameters:
	//   - p: world-space camera position
	SetPosition(p mgl64.Vec3)

	// Zoom adjusts the camera's distance by modifying orbit radius.
	// Positive delta zooms in (closer to target).
	//
	// Parameters:
	//   - delta: zoom amount scaled by ZoomSpeed
	Zoom(delta float64)

	// Update clamps the orbit radius and elevation to their bounds and recomputes the
	// camera position from the target and the spherical offset.
	Update()
}

// orbitCameraController defines orbit-specific control methods.
// Provides third-person orbit controls using spherical coordinates (radius, azimuth, elevation)
// relative to the target/pivot point.
type orbitCameraController interface {
	// OrbitLeft rotates the camera left around the target by one orbit speed step.
	OrbitLeft()

	// OrbitRight rotates the camera right around the target by one orbit speed step.
	OrbitRight()

	// OrbitUp tilts the camera upward by one orbit speed step, clamped to max elevation.
	OrbitUp()

	// OrbitDown tilts the camera downward by one orbit speed step, clamped to min elevation.
	OrbitDown()

	// Radius returns the current orbit radius (distance from target).
	//
	// Returns:
	//   - float64: current distance from target
	Radius() float64

	// SetRadius sets the orbit radius directly, clamped to min/max bounds.
	//
	// Parameters:
	//   - radius: new distance from target
	SetRadius(radius float64)

	// MinRadius returns the minimum allowed orbit radius.
	//
	// Returns:
	//   - float64: minimum zoom distance
	MinRadius() float64

	// MaxRadius returns the maximum allowed orbit radius.
	//
	// Returns:
	//   - float64: maximum zoom distance
	MaxRadius() float64

	// Azimuth returns the current horizontal angle around the Y axis, 0 along +Z.
	//
	// Returns:
	//   - float64: azimuth in radians
	Azimuth() float64

	// SetAzimuth sets the horizontal angle directly and recomputes position.
	//
	// Parameters:
	//   - azimuth: new horizontal angle in radians
	SetAzimuth(azimuth float64)

	// Elevation returns the current vertical angle from the horizontal plane.
	//
	// Returns:
	//   - float64: elevation in radians
	Elevation() float64

	// SetElevation sets the vertical angle directly, clamped to min/max bounds.
	//
	// Parameters:
	//   - elevation: new vertical angle in radians
	SetElevation(elevation float64)

	// MinElevation returns the minimum allowed elevation angle.
	//
	// Returns:
	//   - float64: minimum elevation in radians
	MinElevation() float64

	// MaxElevation returns the maximum allowed elevation angle.
	//
	// Returns:
	//   - float64: maximum elevation in radians
	MaxElevation() float64

	// OrbitSpeed returns the keyboard orbit speed in radians per step.
	//
	// Returns:
	//   - float64: radians per orbit call
	OrbitSpeed() float64

	// ZoomSpeed returns the zoom speed multiplier.
	//
	// Returns:
	//   - float64: multiplier for zoom input
	ZoomSpeed() float64
}
