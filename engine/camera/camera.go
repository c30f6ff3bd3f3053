package camera

import (
	"sync"

	"github.com/go-gl/mathgl/mgl64"
)

// cameraImpl is the implementation of the Camera interface.
type cameraImpl struct {
	mu *sync.Mutex

	up mgl64.Vec3

	fov    float64
	aspect float64
	near   float64
	far    float64

	viewMatrix              mgl64.Mat4
	projectionMatrix        mgl64.Mat4
	viewProjectionMatrix    mgl64.Mat4
	inverseProjectionMatrix mgl64.Mat4

	controller CameraController
}

// Camera defines the interface for a perspective camera.
//
// The Camera reads position and target from its CameraController and caches view and
// projection matrices. Forward reports the look direction of the cached view matrix,
// so it reflects the controller state as of the last Update.
type Camera interface {
	// Up returns the camera's up vector.
	//
	// Returns:
	//   - mgl64.Vec3: the up vector
	Up() mgl64.Vec3

	// Fov returns the vertical field of view.
	//
	// Returns:
	//   - float64: the field of view in radians
	Fov() float64

	// Aspect returns the aspect ratio.
	//
	// Returns:
	//   - float64: the aspect ratio (width / height)
	Aspect() float64

	// Near returns the near clipping plane distance.
	//
	// Returns:
	//   - float64: the near plane distance
	Near() float64

	// Far returns the far clipping plane distance.
	//
	// Returns:
	//   - float64: the far plane distance
	Far() float64

	// ViewMatrix returns the cached view matrix.
	//
	// Returns:
	//   - mgl64.Mat4: the view matrix
	ViewMatrix() mgl64.Mat4

	// ProjectionMatrix returns the cached projection matrix.
	//
	// Returns:
	//   - mgl64.Mat4: the projection matrix
	ProjectionMatrix() mgl64.Mat4

	// ViewProjectionMatrix returns the cached projection * view matrix.
	//
	// Returns:
	//   - mgl64.Mat4: the combined matrix
	ViewProjectionMatrix() mgl64.Mat4

	// InverseProjectionMatrix returns the inverse of the projection matrix.
	//
	// Returns:
	//   - mgl64.Mat4: the inverse projection matrix
	InverseProjectionMatrix() mgl64.Mat4

	// Controller returns the CameraController that owns position and target.
	//
	// Returns:
	//   - CameraController: the controller, or nil
	Controller() CameraController

	// Position returns the controller's camera position.
	//
	// Returns:
	//   - mgl64.Vec3: world-space position, or zero without a controller
	Position() mgl64.Vec3

	// SetPosition moves the camera through its controller.
	//
	// Parameters:
	//   - p: world-space position
	SetPosition(p mgl64.Vec3)

	// Forward returns the world-space direction the camera looks along.
	//
	// Returns:
	//   - mgl64.Vec3: the unit look direction
	Forward() mgl64.Vec3

	// Update recomputes the view and projection matrices from the controller.
	Update()

	// SetUp sets the up vector.
	//
	// Parameters:
	//   - up: the new up vector
	SetUp(up mgl64.Vec3)

	// SetFov sets the vertical field of view.
	//
	// Parameters:
	//   - fov: the field of view in radians
	SetFov(fov float64)

	// SetAspect sets the aspect ratio.
	//
	// Parameters:
	//   - aspect: width / height
	SetAspect(aspect float64)

	// SetNear sets the near clipping plane distance.
	//
	// Parameters:
	//   - near: the near plane distance
	SetNear(near float64)

	// SetFar sets the far clipping plane distance.
	//
	// Parameters:
	//   - far: the far plane distance
	SetFar(far float64)

	// SetController replaces the camera's controller.
	//
	// Parameters:
	//   - ctrl: the new controller
	SetController(ctrl CameraController)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new perspective Camera with the provided options.
// Defaults match the garden scene: 45° field of view, near 0.1, far 1000.
//
// Parameters:
//   - options: variadic list of CameraBuilderOption functions to configure the Camera
//
// Returns:
//   - Camera: the newly created Camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:                   &sync.Mutex{},
		up:                   mgl64.Vec3{0, 1, 0},
		fov:                  mgl64.DegToRad(45),
		aspect:               1.0,
		near:                 0.1,
		far:                  1000.0,
		viewMatrix:           mgl64.Ident4(),
		projectionMatrix:     mgl64.Ident4(),
		viewProjectionMatrix: mgl64.Ident4(),
	}
	for _, option := range options {
		option(c)
	}
	c.updateMatrices()
	return c
}

func (c *cameraImpl) Up() mgl64.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.up
}

func (c *cameraImpl) Fov() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fov
}

func (c *cameraImpl) Aspect() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *cameraImpl) Near() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.near
}

func (c *cameraImpl) Far() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.far
}

func (c *cameraImpl) ViewMatrix() mgl64.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewMatrix
}

func (c *cameraImpl) ProjectionMatrix() mgl64.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix
}

func (c *cameraImpl) ViewProjectionMatrix() mgl64.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewProjectionMatrix
}

func (c *cameraImpl) InverseProjectionMatrix() mgl64.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inverseProjectionMatrix
}

func (c *cameraImpl) Controller() CameraController {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.controller
}

func (c *cameraImpl) Position() mgl64.Vec3 {
	ctrl := c.Controller()
	if ctrl == nil {
		return mgl64.Vec3{}
	}
	return ctrl.Position()
}

func (c *cameraImpl) SetPosition(p mgl64.Vec3) {
	if ctrl := c.Controller(); ctrl != nil {
		ctrl.SetPosition(p)
	}
}

func (c *cameraImpl) Forward() mgl64.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	// The third row of the view rotation is the camera's backward axis.
	v := c.viewMatrix
	return mgl64.Vec3{-v.At(2, 0), -v.At(2, 1), -v.At(2, 2)}
}

func (c *cameraImpl) Update() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.controller == nil {
		return
	}
	c.updateMatrices()
}

func (c *cameraImpl) SetUp(up mgl64.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.up = up
	c.updateMatrices()
}

func (c *cameraImpl) SetFov(fov float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fov = fov
	c.updateMatrices()
}

func (c *cameraImpl) SetAspect(aspect float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.aspect = aspect
	c.updateMatrices()
}

func (c *cameraImpl) SetNear(near float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.near = near
	c.updateMatrices()
}

func (c *cameraImpl) SetFar(far float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.far = far
	c.updateMatrices()
}

func (c *cameraImpl) SetController(ctrl CameraController) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.controller = ctrl
	c.updateMatrices()
}

// updateMatrices recomputes view and projection. Caller must hold the mutex.
func (c *cameraImpl) updateMatrices() {
	c.projectionMatrix = mgl64.Perspective(c.fov, c.aspect, c.near, c.far)
	c.inverseProjectionMatrix = c.projectionMatrix.Inv()

	if c.controller != nil {
		c.viewMatrix = mgl64.LookAtV(c.controller.Position(), c.controller.Target(), c.up)
	}
	c.viewProjectionMatrix = c.projectionMatrix.Mul4(c.viewMatrix)
}
