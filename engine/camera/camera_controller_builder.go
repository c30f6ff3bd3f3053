package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// CameraControllerOption is a functional option for configuring a CameraController.
type CameraControllerOption func(*cameraControllerImpl)

// WithPosition sets the initial camera position. The spherical offset is re-derived
// from the current target.
//
// Parameters:
//   - p: world-space camera position
//
// Returns:
//   - CameraControllerOption: functional option to set the position
func WithPosition(p mgl64.Vec3) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.position = p
		cc.deriveSpherical()
	}
}

// WithTarget sets the look-at/pivot point. The spherical offset is re-derived from
// the current position.
//
// Parameters:
//   - t: world-space target position
//
// Returns:
//   - CameraControllerOption: functional option to set the target position
func WithTarget(t mgl64.Vec3) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.target = t
		cc.deriveSpherical()
	}
}

// WithRadiusBounds sets the minimum and maximum orbit radius.
//
// Parameters:
//   - min: minimum zoom distance
//   - max: maximum zoom distance
//
// Returns:
//   - CameraControllerOption: functional option to set radius bounds
func WithRadiusBounds(min, max float64) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.minRadius = min
		cc.maxRadius = max
	}
}

// WithElevationBounds sets the minimum and maximum elevation angles.
//
// Parameters:
//   - min: minimum vertical angle in radians (keeps the camera above the ground)
//   - max: maximum vertical angle in radians (prevents flipping over)
//
// Returns:
//   - CameraControllerOption: functional option to set elevation bounds
func WithElevationBounds(min, max float64) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.minElevation = min
		cc.maxElevation = max
	}
}

// WithMaxPolarAngle bounds how far the camera may swing down from straight overhead.
// A max polar angle of π/2 - 0.05 keeps the camera 0.05 radians above the horizon.
//
// Parameters:
//   - angle: maximum angle in radians between +Y and the camera offset
//
// Returns:
//   - CameraControllerOption: functional option to set the minimum elevation
func WithMaxPolarAngle(angle float64) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.minElevation = mgl64.Clamp(math.Pi/2-angle, -math.Pi/2+polarEpsilon, math.Pi/2-polarEpsilon)
	}
}

// WithOrbitSpeed sets the keyboard orbit speed.
//
// Parameters:
//   - speed: radians per orbit call
//
// Returns:
//   - CameraControllerOption: functional option to set orbit speed
func WithOrbitSpeed(speed float64) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.orbitSpeed = speed
	}
}

// WithZoomSpeed sets the zoom speed multiplier.
//
// Parameters:
//   - speed: multiplier for zoom input
//
// Returns:
//   - CameraControllerOption: functional option to set zoom speed
func WithZoomSpeed(speed float64) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.zoomSpeed = speed
	}
}
