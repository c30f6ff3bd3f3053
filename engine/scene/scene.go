package scene

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-garden/common"
	"github.com/Carmen-Shannon/oxy-garden/config"
	"github.com/Carmen-Shannon/oxy-garden/engine/animator"
	"github.com/Carmen-Shannon/oxy-garden/engine/camera"
	"github.com/Carmen-Shannon/oxy-garden/engine/game_object"
	"github.com/Carmen-Shannon/oxy-garden/engine/input"
	"github.com/Carmen-Shannon/oxy-garden/engine/loader"
	"github.com/Carmen-Shannon/oxy-garden/engine/locomotion"
	"github.com/Carmen-Shannon/oxy-garden/logger"
	"github.com/go-gl/mathgl/mgl64"
)

// ErrInvalidScene wraps configuration problems found while building a scene.
var ErrInvalidScene = errors.New("scene: invalid configuration")

// Scene is one walkable zone: the controlled avatar, its follow camera, the key
// state feeding the controller, and ambient props looping their own clips.
// Scenes can be hot-swapped via the Active flag.
// Update must only be called from the tick goroutine; Apply and the input
// KeyState may be used from any goroutine.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// SetName sets the scene's identifier.
	SetName(name string)

	// Active returns whether this scene is currently updated by the engine.
	Active() bool

	// SetActive sets whether this scene is updated by the engine.
	SetActive(active bool)

	// Camera returns the scene's camera.
	Camera() camera.Camera

	// CameraController returns the orbit controller the camera follows.
	CameraController() camera.CameraController

	// Avatar returns the controlled character.
	Avatar() game_object.GameObject

	// Controller returns the avatar's locomotion controller.
	Controller() locomotion.Controller

	// Input returns the key state the controller reads each tick.
	Input() *input.KeyState

	// Ambient returns the ambient props in configuration order.
	Ambient() []game_object.GameObject

	// Apply queues a tuning change picked up by the next Update.
	// Only the latest queued change is kept. Run mode is not affected.
	//
	// Parameters:
	//   - l: the new locomotion settings
	Apply(l config.Locomotion)

	// Update advances the zone by one tick. Pending run toggles and tuning are
	// applied first, then the controller, then the camera, then the ambient props.
	//
	// Parameters:
	//   - deltaSeconds: elapsed time since the last tick in seconds
	Update(deltaSeconds float64)
}

// ambientProp is a prop advanced by a fixed step regardless of the tick delta.
type ambientProp struct {
	obj  game_object.GameObject
	step float64
}

// scene is the implementation of the Scene interface.
type scene struct {
	mu     *sync.RWMutex
	name   string
	active bool

	cfg     *config.Config
	catalog []animator.Clip
	ld      loader.Loader
	log     logger.Logger

	avatar game_object.GameObject
	cc     camera.CameraController
	cam    camera.Camera
	ctrl   locomotion.Controller
	keys   *input.KeyState

	aspect float64

	tuning chan locomotion.Tuning

	ambient        []ambientProp
	ambientPool    worker.DynamicWorkerPool
	ambientWorkers int
}

// Ensure scene implements Scene interface.
var _ Scene = &scene{}

// NewScene builds a zone from its configuration. The clip catalog comes from
// WithClips, else from the avatar asset via the loader, else from the inline
// clip list of the configuration.
//
// Parameters:
//   - name: the name of the scene
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the newly created scene
//   - error: error if the catalog cannot be loaded or the controller cannot be built
func NewScene(name string, options ...SceneBuilderOption) (Scene, error) {
	s := &scene{
		mu:             &sync.RWMutex{},
		name:           name,
		aspect:         1,
		log:            logger.NewNop(),
		keys:           input.NewKeyState(),
		tuning:         make(chan locomotion.Tuning, 1),
		ambientWorkers: max(runtime.NumCPU()-1, 1),
	}
	for _, option := range options {
		option(s)
	}
	if s.cfg == nil {
		s.cfg = config.Default()
	}
	s.log = s.log.With(logger.F("scene", name))

	catalog, err := s.resolveCatalog()
	if err != nil {
		return nil, err
	}

	mixer := animator.NewMixer(animator.WithClips(catalog...))
	s.avatar = game_object.NewGameObject(
		game_object.WithName("avatar"),
		game_object.WithPosition(s.cfg.Avatar.Position),
		game_object.WithMixer(mixer),
	)

	named := make(map[string]animator.Action, len(catalog))
	for _, a := range mixer.Actions() {
		named[a.Clip().Name] = a
	}
	clips, err := locomotion.NewClipSet(named)
	if err != nil {
		return nil, fmt.Errorf("scene %q: %w", name, err)
	}

	camCfg := s.cfg.Camera
	s.cc = camera.NewCameraController(
		camera.WithTarget(camCfg.Target),
		camera.WithPosition(camCfg.Position),
		camera.WithRadiusBounds(camCfg.MinDistance, camCfg.MaxDistance),
		camera.WithMaxPolarAngle(camCfg.MaxPolarAngle),
	)
	s.cam = camera.NewCamera(
		camera.WithController(s.cc),
		camera.WithFov(mgl64.DegToRad(camCfg.FovDegrees)),
		camera.WithAspect(s.aspect),
	)

	initial, ok := locomotion.ParseState(s.cfg.Avatar.InitialAction)
	if !ok {
		return nil, fmt.Errorf("%w: unknown initial action %q", ErrInvalidScene, s.cfg.Avatar.InitialAction)
	}

	s.ctrl, err = locomotion.NewController(s.avatar, mixer, clips, s.cc, s.cam, initial,
		locomotion.WithTuning(tuningFrom(s.cfg.Locomotion)),
		locomotion.WithRunMode(s.cfg.Locomotion.RunByDefault),
		locomotion.WithLogger(s.log),
	)
	if err != nil {
		return nil, fmt.Errorf("scene %q: %w", name, err)
	}

	// The controller moved the follow target; settle the camera so the first
	// tick measures travel against the real view.
	s.cc.Update()
	s.cam.Update()

	s.buildAmbient()

	s.log.Info("scene ready",
		logger.F("clips", len(catalog)),
		logger.F("ambient", len(s.ambient)),
		logger.F("state", s.ctrl.State().String()),
	)
	return s, nil
}

// resolveCatalog picks the avatar's clip catalog.
func (s *scene) resolveCatalog() ([]animator.Clip, error) {
	if s.catalog != nil {
		return s.catalog, nil
	}

	if asset := s.cfg.Avatar.Asset; asset != "" {
		if s.ld == nil {
			s.ld = loader.NewLoader(loader.BackendTypeGLTF, loader.WithExclude(s.cfg.Avatar.ExcludeClips...))
		}
		clips, err := s.ld.LoadClips(asset)
		if err != nil {
			return nil, fmt.Errorf("scene %q: %w", s.name, err)
		}
		return clips, nil
	}

	exclude := make(map[string]struct{}, len(s.cfg.Avatar.ExcludeClips))
	for _, n := range s.cfg.Avatar.ExcludeClips {
		exclude[n] = struct{}{}
	}
	clips := make([]animator.Clip, 0, len(s.cfg.Clips))
	for _, c := range s.cfg.Clips {
		if _, skip := exclude[c.Name]; skip {
			continue
		}
		clips = append(clips, animator.Clip{Name: c.Name, Duration: c.Duration, Loop: c.Loop})
	}
	return clips, nil
}

func (s *scene) buildAmbient() {
	for _, a := range s.cfg.Ambient {
		m := animator.NewMixer()
		m.ClipAction(animator.Clip{Name: a.Clip, Duration: a.Duration, Loop: true}).Play()
		obj := game_object.NewGameObject(
			game_object.WithName(common.Coalesce(a.Name, a.Clip)),
			game_object.WithMixer(m),
		)
		s.ambient = append(s.ambient, ambientProp{obj: obj, step: a.Step})
	}
	if len(s.ambient) > 0 {
		// Queue size of 256 leaves headroom over any realistic prop count.
		s.ambientPool = worker.NewDynamicWorkerPool(s.ambientWorkers, 256, 1*time.Second)
	}
}

// tuningFrom converts configured locomotion values into controller tuning.
func tuningFrom(l config.Locomotion) locomotion.Tuning {
	return locomotion.Tuning{
		FadeDuration:       l.FadeDuration,
		RunVelocity:        l.RunVelocity,
		WalkVelocity:       l.WalkVelocity,
		TurnStep:           l.TurnStep,
		CameraTargetHeight: l.CameraTargetHeight,
	}
}

func (s *scene) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *scene) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *scene) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

func (s *scene) SetActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
}

func (s *scene) Camera() camera.Camera {
	return s.cam
}

func (s *scene) CameraController() camera.CameraController {
	return s.cc
}

func (s *scene) Avatar() game_object.GameObject {
	return s.avatar
}

func (s *scene) Controller() locomotion.Controller {
	return s.ctrl
}

func (s *scene) Input() *input.KeyState {
	return s.keys
}

func (s *scene) Ambient() []game_object.GameObject {
	out := make([]game_object.GameObject, len(s.ambient))
	for i, p := range s.ambient {
		out[i] = p.obj
	}
	return out
}

func (s *scene) Apply(l config.Locomotion) {
	t := tuningFrom(l)
	for {
		select {
		case s.tuning <- t:
			return
		default:
		}
		// Drop the stale pending change and retry.
		select {
		case <-s.tuning:
		default:
		}
	}
}

func (s *scene) Update(deltaSeconds float64) {
	for n := s.keys.DrainRunToggles(); n > 0; n-- {
		s.ctrl.ToggleRunMode()
	}

	select {
	case t := <-s.tuning:
		if err := s.ctrl.SetTuning(t); err != nil {
			s.log.Warn("tuning rejected", logger.F("error", err))
		} else {
			s.log.Info("tuning applied",
				logger.F("run_velocity", t.RunVelocity),
				logger.F("walk_velocity", t.WalkVelocity),
			)
		}
	default:
	}

	s.ctrl.Update(deltaSeconds, s.keys.Snapshot())
	s.cc.Update()
	s.cam.Update()

	s.advanceAmbient()
}

// advanceAmbient steps every ambient mixer on the worker pool.
// A WaitGroup is the per-tick barrier; pool-level waiting blocks until workers idle out.
func (s *scene) advanceAmbient() {
	if len(s.ambient) == 0 {
		return
	}

	var wg sync.WaitGroup
	for i, p := range s.ambient {
		wg.Add(1)
		prop := p
		s.ambientPool.SubmitTask(worker.Task{
			ID: i,
			Do: func() (any, error) {
				defer wg.Done()
				if prop.obj.Enabled() && prop.obj.Mixer() != nil {
					prop.obj.Mixer().Update(prop.step)
				}
				return nil, nil
			},
		})
	}
	wg.Wait()
}
