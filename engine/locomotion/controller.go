package locomotion

import (
	"fmt"
	"math"

	"github.com/Carmen-Shannon/oxy-garden/common"
	"github.com/Carmen-Shannon/oxy-garden/logger"
	"github.com/go-gl/mathgl/mgl64"
)

// Tuning holds the controller parameters that may change while running.
type Tuning struct {
	FadeDuration       float64 // cross-fade length in seconds
	RunVelocity        float64 // units per second
	WalkVelocity       float64 // units per second
	TurnStep           float64 // radians per Update
	CameraTargetHeight float64 // follow target height above the avatar origin
}

// DefaultTuning returns the tuning of the garden avatar.
func DefaultTuning() Tuning {
	return Tuning{
		FadeDuration:       0.2,
		RunVelocity:        16,
		WalkVelocity:       3.4,
		TurnStep:           0.2,
		CameraTargetHeight: 1,
	}
}

// Validate checks that speeds, fade and turn step are positive.
func (t Tuning) Validate() error {
	switch {
	case t.FadeDuration <= 0:
		return fmt.Errorf("%w: fade duration %g", ErrInvalidTuning, t.FadeDuration)
	case t.RunVelocity <= 0:
		return fmt.Errorf("%w: run velocity %g", ErrInvalidTuning, t.RunVelocity)
	case t.WalkVelocity <= 0:
		return fmt.Errorf("%w: walk velocity %g", ErrInvalidTuning, t.WalkVelocity)
	case t.TurnStep <= 0:
		return fmt.Errorf("%w: turn step %g", ErrInvalidTuning, t.TurnStep)
	}
	return nil
}

// controller is the implementation of the Controller interface.
type controller struct {
	pose   Pose
	mixer  Mixer
	clips  ClipSet
	follow FollowTarget
	camera CameraPose
	log    logger.Logger

	tuning       Tuning
	running      bool
	current      State
	cameraTarget mgl64.Vec3
}

// Controller moves an avatar from directional key input.
type Controller interface {
	// Update advances one tick.
	//
	// The movement state is Idle with no direction key held, otherwise Run or Walk
	// depending on the run toggle. A state change fades the old clip out and the new
	// one in over the fade duration. The mixer is always advanced. While moving, the
	// avatar turns toward the camera-relative travel direction by at most the turn
	// step, moves by velocity × deltaSeconds in the ground plane, and the camera and
	// its follow target are shifted by the same displacement. A negative delta is
	// treated as zero.
	//
	// Parameters:
	//   - deltaSeconds: elapsed time since the previous tick
	//   - keys: the direction keys held this tick
	Update(deltaSeconds float64, keys KeySet)

	// ToggleRunMode flips between running and walking while keys are held.
	ToggleRunMode()

	// RunMode reports whether held keys make the avatar run.
	//
	// Returns:
	//   - bool: true when running
	RunMode() bool

	// State returns the active movement state.
	//
	// Returns:
	//   - State: the state whose clip is playing
	State() State

	// CameraTarget returns the follow target set by the last tick.
	//
	// Returns:
	//   - mgl64.Vec3: the avatar position raised by the target height
	CameraTarget() mgl64.Vec3

	// FadeDuration returns the cross-fade length in seconds.
	//
	// Returns:
	//   - float64: the fade duration
	FadeDuration() float64

	// Tuning returns the current parameters.
	//
	// Returns:
	//   - Tuning: the tuning in effect
	Tuning() Tuning

	// SetTuning replaces the parameters from the next Update on.
	//
	// Parameters:
	//   - t: the new tuning
	//
	// Returns:
	//   - error: ErrInvalidTuning if t is rejected; the old tuning is kept
	SetTuning(t Tuning) error
}

var _ Controller = &controller{}

// NewController creates a Controller and starts the initial state's clip.
// The follow target is primed to the avatar position before the first tick.
//
// Parameters:
//   - pose: the avatar transform
//   - mixer: the avatar's animation mixer
//   - clips: the movement clips, from NewClipSet
//   - follow: the camera follow target
//   - cam: the camera whose forward direction steers the avatar
//   - initial: the state whose clip plays first
//   - options: variadic list of ControllerOption functions to configure the Controller
//
// Returns:
//   - Controller: the newly created Controller
//   - error: ErrNilDependency, ErrMissingClip or ErrInvalidTuning
func NewController(pose Pose, mixer Mixer, clips ClipSet, follow FollowTarget, cam CameraPose, initial State, options ...ControllerOption) (Controller, error) {
	switch {
	case pose == nil:
		return nil, fmt.Errorf("%w: pose", ErrNilDependency)
	case mixer == nil:
		return nil, fmt.Errorf("%w: mixer", ErrNilDependency)
	case follow == nil:
		return nil, fmt.Errorf("%w: follow target", ErrNilDependency)
	case cam == nil:
		return nil, fmt.Errorf("%w: camera", ErrNilDependency)
	}
	if clips.Empty() {
		return nil, fmt.Errorf("%w: empty clip set", ErrMissingClip)
	}
	first, ok := clips.Clip(initial)
	if !ok {
		return nil, fmt.Errorf("%w: initial state %s", ErrMissingClip, initial)
	}

	c := &controller{
		pose:    pose,
		mixer:   mixer,
		clips:   clips,
		follow:  follow,
		camera:  cam,
		log:     logger.NewNop(),
		tuning:  DefaultTuning(),
		running: true,
		current: initial,
	}
	for _, opt := range options {
		opt(c)
	}
	if err := c.tuning.Validate(); err != nil {
		return nil, err
	}

	first.Play()
	c.updateCameraTarget(0, 0)
	return c, nil
}

func (c *controller) ToggleRunMode() {
	c.running = !c.running
	c.log.Debug("run mode toggled", logger.F("run", c.running))
}

func (c *controller) RunMode() bool {
	return c.running
}

func (c *controller) State() State {
	return c.current
}

func (c *controller) CameraTarget() mgl64.Vec3 {
	return c.cameraTarget
}

func (c *controller) FadeDuration() float64 {
	return c.tuning.FadeDuration
}

func (c *controller) Tuning() Tuning {
	return c.tuning
}

func (c *controller) SetTuning(t Tuning) error {
	if err := t.Validate(); err != nil {
		return err
	}
	c.tuning = t
	return nil
}

func (c *controller) Update(deltaSeconds float64, keys KeySet) {
	if deltaSeconds < 0 || math.IsNaN(deltaSeconds) {
		deltaSeconds = 0
	}

	moving := keys.Any()
	if next := targetState(moving, c.running); next != c.current {
		c.transition(next)
	}

	c.mixer.Update(deltaSeconds)

	if c.current != Walk && c.current != Run {
		return
	}

	camPos := c.camera.Position()
	avPos := c.pose.Position()
	facing := common.YawBetween(avPos, camPos)
	offset := DirectionOffset(keys)

	c.pose.RotateTowards(common.YawQuat(facing+offset), c.tuning.TurnStep)

	dir := c.travelDirection(facing, offset)
	velocity := c.tuning.WalkVelocity
	if c.current == Run {
		velocity = c.tuning.RunVelocity
	}

	dx := dir.X() * velocity * deltaSeconds
	dz := dir.Z() * velocity * deltaSeconds
	c.pose.SetPosition(mgl64.Vec3{avPos.X() + dx, avPos.Y(), avPos.Z() + dz})
	c.updateCameraTarget(dx, dz)
}

func (c *controller) transition(next State) {
	from := c.clips.mustClip(c.current)
	to := c.clips.mustClip(next)
	fade := c.tuning.FadeDuration

	from.FadeOut(fade)
	to.Reset()
	to.FadeIn(fade)
	to.Play()

	c.log.Debug("locomotion state changed",
		logger.F("from", c.current.String()),
		logger.F("to", next.String()),
		logger.F("fade", fade),
	)
	c.current = next
}

// travelDirection is the camera's planar forward rotated by offset. A camera looking
// straight down has no planar forward, so the direction away from the camera derived
// from facing is used instead.
func (c *controller) travelDirection(facing, offset float64) mgl64.Vec3 {
	fwd, ok := common.PlanarNormalize(c.camera.Forward())
	if !ok {
		fwd = mgl64.Vec3{-math.Sin(facing), 0, -math.Cos(facing)}
	}
	return common.YawQuat(offset).Rotate(fwd)
}

func (c *controller) updateCameraTarget(dx, dz float64) {
	camPos := c.camera.Position()
	c.camera.SetPosition(mgl64.Vec3{camPos.X() + dx, camPos.Y(), camPos.Z() + dz})

	p := c.pose.Position()
	c.cameraTarget = mgl64.Vec3{p.X(), p.Y() + c.tuning.CameraTargetHeight, p.Z()}
	c.follow.SetTarget(c.cameraTarget)
}
