package camera

// CameraBuilderOption configures a Camera during construction.
type CameraBuilderOption func(*cameraImpl)

// WithFov sets the vertical field of view in radians.
func WithFov(fov float64) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.fov = fov
	}
}

// WithAspect sets the width / height ratio used by the projection.
// Non-positive ratios keep the default.
func WithAspect(aspect float64) CameraBuilderOption {
	return func(c *cameraImpl) {
		if aspect > 0 {
			c.aspect = aspect
		}
	}
}

// WithController attaches the follow controller that owns position and target.
// The camera reads its pose from the controller on every Update.
//
// Parameters:
//   - ctrl: the controller owning position and target
//
// Returns:
//   - CameraBuilderOption: functional option to set the controller
func WithController(ctrl CameraController) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.controller = ctrl
	}
}
