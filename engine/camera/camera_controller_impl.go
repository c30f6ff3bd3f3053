package camera

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-garden/common"
	"github.com/go-gl/mathgl/mgl64"
)

// polarEpsilon keeps the camera off the vertical axis where azimuth is undefined.
const polarEpsilon = 1e-6

// cameraControllerImpl is the single implementation of CameraController.
type cameraControllerImpl struct {
	mu *sync.Mutex

	position mgl64.Vec3
	target   mgl64.Vec3

	// Spherical coordinates (offset from target)
	radius    float64
	azimuth   float64 // Horizontal angle around Y axis
	elevation float64 // Vertical angle from horizontal plane

	minRadius    float64
	maxRadius    float64
	minElevation float64
	maxElevation float64

	orbitSpeed float64
	zoomSpeed  float64
}

// Compile-time interface compliance check
var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates a new follow camera controller.
// Without options the camera sits at (0, 4, 4) looking at the origin with the
// garden's orbit limits: distance 3 to 5, and never lower than 0.05 radians above
// the horizon. Options that set position or target take effect before the
// spherical offset is derived; the limits are applied on the first Update.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		mu:       &sync.Mutex{},
		position: mgl64.Vec3{0, 4, 4},
		target:   mgl64.Vec3{0, 0, 0},

		minRadius:    3,
		maxRadius:    5,
		minElevation: 0.05,
		maxElevation: math.Pi/2 - polarEpsilon,

		orbitSpeed: 0.03,
		zoomSpeed:  0.5,
	}
	cc.deriveSpherical()

	for _, option := range options {
		option(cc)
	}
	return cc
}

// --- internal helpers ---

// deriveSpherical recomputes radius, azimuth and elevation from position - target.
// A degenerate offset keeps the previous angles.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) deriveSpherical() {
	offset := cc.position.Sub(cc.target)
	cc.radius = offset.Len()
	if cc.radius < 1e-9 {
		return
	}
	cc.elevation = math.Asin(common.Clamp(offset.Y()/cc.radius, -1, 1))
	cc.azimuth = math.Atan2(offset.X(), offset.Z())
}

// updatePosition recomputes the camera position from spherical coordinates.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) updatePosition() {
	cosElev := math.Cos(cc.elevation)
	sinElev := math.Sin(cc.elevation)
	cosAzim := math.Cos(cc.azimuth)
	sinAzim := math.Sin(cc.azimuth)

	cc.position = cc.target.Add(mgl64.Vec3{
		cc.radius * cosElev * sinAzim,
		cc.radius * sinElev,
		cc.radius * cosElev * cosAzim,
	})
}

// clamp applies the radius and elevation bounds.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) clamp() {
	cc.radius = common.Clamp(cc.radius, cc.minRadius, cc.maxRadius)
	cc.elevation = common.Clamp(cc.elevation, cc.minElevation, cc.maxElevation)
}

// --- CameraController shared methods ---

func (cc *cameraControllerImpl) Position() mgl64.Vec3 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.position
}

func (cc *cameraControllerImpl) SetPosition(p mgl64.Vec3) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.position = p
	cc.deriveSpherical()
}

func (cc *cameraControllerImpl) Target() mgl64.Vec3 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.target
}

func (cc *cameraControllerImpl) SetTarget(t mgl64.Vec3) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.target = t
	cc.deriveSpherical()
}

func (cc *cameraControllerImpl) Zoom(delta float64) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.radius = common.Clamp(cc.radius-delta*cc.zoomSpeed, cc.minRadius, cc.maxRadius)
	cc.updatePosition()
}

func (cc *cameraControllerImpl) Update() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.clamp()
	cc.updatePosition()
}

// --- orbitCameraController implementation ---

func (cc *cameraControllerImpl) OrbitLeft() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.azimuth -= cc.orbitSpeed
	cc.updatePosition()
}

func (cc *cameraControllerImpl) OrbitRight() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.azimuth += cc.orbitSpeed
	cc.updatePosition()
}

func (cc *cameraControllerImpl) OrbitUp() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.elevation = math.Min(cc.elevation+cc.orbitSpeed, cc.maxElevation)
	cc.updatePosition()
}

func (cc *cameraControllerImpl) OrbitDown() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.elevation = math.Max(cc.elevation-cc.orbitSpeed, cc.minElevation)
	cc.updatePosition()
}

func (cc *cameraControllerImpl) Radius() float64 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.radius
}

func (cc *cameraControllerImpl) SetRadius(radius float64) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.radius = common.Clamp(radius, cc.minRadius, cc.maxRadius)
	cc.updatePosition()
}

func (cc *cameraControllerImpl) MinRadius() float64 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.minRadius
}

func (cc *cameraControllerImpl) MaxRadius() float64 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.maxRadius
}

func (cc *cameraControllerImpl) Azimuth() float64 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.azimuth
}

func (cc *cameraControllerImpl) SetAzimuth(azimuth float64) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.azimuth = azimuth
	cc.updatePosition()
}

func (cc *cameraControllerImpl) Elevation() float64 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.elevation
}

func (cc *cameraControllerImpl) SetElevation(elevation float64) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.elevation = common.Clamp(elevation, cc.minElevation, cc.maxElevation)
	cc.updatePosition()
}

func (cc *cameraControllerImpl) MinElevation() float64 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.minElevation
}

func (cc *cameraControllerImpl) MaxElevation() float64 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.maxElevation
}

func (cc *cameraControllerImpl) OrbitSpeed() float64 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.orbitSpeed
}

func (cc *cameraControllerImpl) ZoomSpeed() float64 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.zoomSpeed
}
