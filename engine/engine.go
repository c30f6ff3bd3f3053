package engine

import (
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-garden/engine/profiler"
	"github.com/Carmen-Shannon/oxy-garden/engine/scene"
	"github.com/Carmen-Shannon/oxy-garden/engine/window"
	"github.com/Carmen-Shannon/oxy-garden/logger"
)

// engine implements the Engine interface.
// Coordinates the tick goroutine and the window thread.
type engine struct {
	mu sync.RWMutex

	tickRateChannel chan time.Duration // Channel for dynamic tick rate updates

	running bool
	wg      sync.WaitGroup

	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once

	window window.Window
	log    logger.Logger

	profiler         *profiler.Profiler
	profilingEnabled bool

	engineTickRate time.Duration
	maxDelta       float64
	tickCallback   func(deltaSeconds float64)

	scenes map[int]scene.Scene
}

// Engine is the main entry point for the engine.
// It drives the fixed-rate tick loop over the registered scenes and, when a
// window is attached, pumps its messages and forwards its input.
type Engine interface {
	// Window returns the attached window, or nil when headless.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetTickRate sets the engine tick rate in ticks per second.
	//
	// Parameters:
	//   - fps: target ticks per second (defaults to 60 if <= 0)
	SetTickRate(fps float64)

	// SetTickCallback registers a function called after the scenes each tick.
	//
	// Parameters:
	//   - callback: function receiving the clamped delta time in seconds
	SetTickCallback(callback func(deltaSeconds float64))

	// AddScene registers a scene at the given z-index key.
	// Active scenes are updated in ascending key order.
	//
	// Parameters:
	//   - key: the z-index determining update order (lower updates first)
	//   - s: the Scene to register
	AddScene(key int, s scene.Scene)

	// RemoveScene removes the scene at the given z-index key.
	//
	// Parameters:
	//   - key: the z-index of the scene to remove
	RemoveScene(key int)

	// Scene retrieves the scene registered at the given z-index key.
	// Returns nil if no scene exists at that key.
	//
	// Parameters:
	//   - key: the z-index of the scene to retrieve
	//
	// Returns:
	//   - scene.Scene: the scene at the key, or nil if not found
	Scene(key int) scene.Scene

	// Scenes returns a copy of all registered scenes keyed by z-index.
	//
	// Returns:
	//   - map[int]scene.Scene: a copy of the scenes map
	Scenes() map[int]scene.Scene

	// Step runs one tick synchronously. The delta is clamped to [0, max delta].
	//
	// Parameters:
	//   - deltaSeconds: elapsed time since the previous tick
	Step(deltaSeconds float64)

	// Run starts the tick goroutine. With a window it pumps window messages until
	// the window closes; headless it blocks until Quit. Returns after the tick
	// goroutine has exited.
	Run()

	// Quit signals all engine goroutines to stop.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()

	// Done is closed once Quit has been signalled.
	Done() <-chan struct{}
}

// NewEngine creates a new Engine instance with the provided options.
// Options are applied directly to the engine struct via the option-builder pattern.
//
// Parameters:
//   - options: functional options for engine configuration (profiling, tick rate, etc.)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		tickRateChannel: make(chan time.Duration, 1),
		quitChannel:     make(chan struct{}),
		scenes:          make(map[int]scene.Scene),
		log:             logger.NewNop(),
		engineTickRate:  time.Second / 60,
		maxDelta:        0.1,
	}

	for _, opt := range options {
		opt(e)
	}
	e.profiler = profiler.NewProfiler(e.log.With(logger.F("component", "profiler")))

	if e.window != nil {
		e.bindWindow()
	}
	return e
}

// bindWindow forwards window input to every active scene and closes the
// window once the engine has quit, which ends the message loop in Run.
func (e *engine) bindWindow() {
	e.window.SetUpdateCallback(func() {
		select {
		case <-e.quitChannel:
			if err := e.window.Close(); err != nil {
				e.log.Warn("failed to close window", logger.F("error", err.Error()))
			}
		default:
		}
	})
	e.window.SetKeyDownCallback(func(code uint32) {
		for _, s := range e.activeScenes() {
			s.Input().KeyDown(code)
		}
	})
	e.window.SetKeyUpCallback(func(code uint32) {
		for _, s := range e.activeScenes() {
			s.Input().KeyUp(code)
		}
	})
	e.window.SetFocusLostCallback(func() {
		for _, s := range e.activeScenes() {
			s.Input().Reset()
		}
	})
	e.window.SetScrollCallback(func(delta float64) {
		for _, s := range e.activeScenes() {
			s.CameraController().Zoom(delta)
		}
	})
	e.window.SetDragCallback(func(dx, dy float64) {
		for _, s := range e.activeScenes() {
			orbit(s, dx, dy)
		}
	})
}

// orbit turns a drag delta into one orbit step per axis.
func orbit(s scene.Scene, dx, dy float64) {
	cc := s.CameraController()
	switch {
	case dx > 0:
		cc.OrbitLeft()
	case dx < 0:
		cc.OrbitRight()
	}
	switch {
	case dy > 0:
		cc.OrbitUp()
	case dy < 0:
		cc.OrbitDown()
	}
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Run() {
	e.mu.Lock()
	e.running = true
	e.mu.Unlock()

	e.handle()
	if e.window != nil {
		e.window.ProcessMessages()
		e.signalQuit()
	} else {
		<-e.quitChannel
	}
	e.wg.Wait()
}

// Quit signals all engine goroutines to stop and shuts down the engine.
// Safe to call multiple times; subsequent calls are no-ops due to sync.Once.
func (e *engine) Quit() {
	e.signalQuit()
}

func (e *engine) Done() <-chan struct{} {
	return e.quitChannel
}

// signalQuit closes the quit channel to signal all goroutines to exit.
// Uses sync.Once to ensure the channel is only closed once.
func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		e.mu.Lock()
		e.running = false
		e.mu.Unlock()
		close(e.quitChannel)
	})
}

// handle launches the tick goroutine, tracked by the engine's WaitGroup.
func (e *engine) handle() {
	e.wg.Add(1)
	go e.handleEngine()
}

// handleEngine runs the fixed-rate tick loop in its own goroutine.
// Listens for dynamic rate changes via tickRateChannel and exits when the quit channel is closed.
// Recovers from panics to avoid crashing the process and signals quit on recovery.
func (e *engine) handleEngine() {
	defer e.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			e.log.Error("tick goroutine recovered from panic", logger.F("panic", fmt.Sprint(r)))
			e.signalQuit()
		}
	}()

	e.mu.RLock()
	rate := e.engineTickRate
	e.mu.RUnlock()

	ticker := time.NewTicker(rate)
	defer ticker.Stop()

	lastTick := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		case <-ticker.C:
			now := time.Now()
			dt := now.Sub(lastTick).Seconds()
			lastTick = now
			e.Step(dt)
		case newRate := <-e.tickRateChannel:
			ticker.Reset(newRate)
			e.mu.Lock()
			e.engineTickRate = newRate
			e.mu.Unlock()
		}
	}
}

func (e *engine) Step(deltaSeconds float64) {
	if deltaSeconds < 0 || math.IsNaN(deltaSeconds) {
		deltaSeconds = 0
	}
	deltaSeconds = min(deltaSeconds, e.maxDelta)

	for _, s := range e.activeScenes() {
		s.Update(deltaSeconds)
	}

	e.mu.RLock()
	callback := e.tickCallback
	profiling := e.profilingEnabled
	e.mu.RUnlock()

	if callback != nil {
		callback(deltaSeconds)
	}
	if profiling {
		e.profiler.Tick()
	}
}

// activeScenes returns the active scenes in ascending z-index order.
func (e *engine) activeScenes() []scene.Scene {
	e.mu.RLock()
	defer e.mu.RUnlock()

	keys := make([]int, 0, len(e.scenes))
	for k := range e.scenes {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	active := make([]scene.Scene, 0, len(keys))
	for _, k := range keys {
		if s := e.scenes[k]; s.Active() {
			active = append(active, s)
		}
	}
	return active
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.profilingEnabled = false
}

// SetTickRate sets the engine tick rate in ticks per second.
// If the engine is running, the change takes effect immediately.
func (e *engine) SetTickRate(fps float64) {
	newRate := tickInterval(fps)

	e.mu.Lock()
	running := e.running
	if !running {
		e.engineTickRate = newRate
	}
	e.mu.Unlock()
	if !running {
		return
	}

	// Non-blocking send - if channel is full, replace the pending value
	select {
	case e.tickRateChannel <- newRate:
	default:
		select {
		case <-e.tickRateChannel:
		default:
		}
		e.tickRateChannel <- newRate
	}
}

// tickInterval converts a rate in ticks per second to a ticker period.
func tickInterval(fps float64) time.Duration {
	if fps <= 0 {
		fps = 60
	}
	return time.Duration(float64(time.Second) / fps)
}

// SetTickCallback registers the function called each engine tick.
func (e *engine) SetTickCallback(callback func(deltaSeconds float64)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tickCallback = callback
}

func (e *engine) AddScene(key int, s scene.Scene) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.scenes[key] = s
}

func (e *engine) RemoveScene(key int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.scenes, key)
}

func (e *engine) Scene(key int) scene.Scene {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.scenes[key]
}

func (e *engine) Scenes() map[int]scene.Scene {
	e.mu.RLock()
	defer e.mu.RUnlock()
	cp := make(map[int]scene.Scene, len(e.scenes))
	for k, v := range e.scenes {
		cp[k] = v
	}
	return cp
}
