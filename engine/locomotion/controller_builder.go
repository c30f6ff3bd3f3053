package locomotion

import "github.com/Carmen-Shannon/oxy-garden/logger"

// ControllerOption is a functional option for configuring a Controller during construction.
type ControllerOption func(*controller)

// WithFadeDuration sets the cross-fade length used on every state change.
//
// Parameters:
//   - seconds: the fade length
//
// Returns:
//   - ControllerOption: functional option to set the fade duration
func WithFadeDuration(seconds float64) ControllerOption {
	return func(c *controller) {
		c.tuning.FadeDuration = seconds
	}
}

// WithRunVelocity sets the running speed.
//
// Parameters:
//   - v: units per second
//
// Returns:
//   - ControllerOption: functional option to set the run velocity
func WithRunVelocity(v float64) ControllerOption {
	return func(c *controller) {
		c.tuning.RunVelocity = v
	}
}

// WithWalkVelocity sets the walking speed.
//
// Parameters:
//   - v: units per second
//
// Returns:
//   - ControllerOption: functional option to set the walk velocity
func WithWalkVelocity(v float64) ControllerOption {
	return func(c *controller) {
		c.tuning.WalkVelocity = v
	}
}

// WithTurnStep sets the maximum rotation applied per Update.
//
// Parameters:
//   - radians: the turn limit
//
// Returns:
//   - ControllerOption: functional option to set the turn step
func WithTurnStep(radians float64) ControllerOption {
	return func(c *controller) {
		c.tuning.TurnStep = radians
	}
}

// WithCameraTargetHeight sets how far above the avatar origin the camera looks.
//
// Parameters:
//   - h: the height offset
//
// Returns:
//   - ControllerOption: functional option to set the target height
func WithCameraTargetHeight(h float64) ControllerOption {
	return func(c *controller) {
		c.tuning.CameraTargetHeight = h
	}
}

// WithTuning replaces every tunable parameter at once.
//
// Parameters:
//   - t: the tuning
//
// Returns:
//   - ControllerOption: functional option to set the tuning
func WithTuning(t Tuning) ControllerOption {
	return func(c *controller) {
		c.tuning = t
	}
}

// WithRunMode sets the initial run toggle. Controllers run by default.
//
// Parameters:
//   - running: true to run while keys are held
//
// Returns:
//   - ControllerOption: functional option to set the run toggle
func WithRunMode(running bool) ControllerOption {
	return func(c *controller) {
		c.running = running
	}
}

// WithLogger sets the logger used for state change messages.
//
// Parameters:
//   - l: the logger
//
// Returns:
//   - ControllerOption: functional option to set the logger
func WithLogger(l logger.Logger) ControllerOption {
	return func(c *controller) {
		if l != nil {
			c.log = l
		}
	}
}
