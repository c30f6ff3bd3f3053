package engine

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Carmen-Shannon/oxy-garden/common"
	"github.com/Carmen-Shannon/oxy-garden/engine/scene"
	"github.com/Carmen-Shannon/oxy-garden/engine/window"
	"github.com/Carmen-Shannon/oxy-garden/logger"
)

// recordingScene records Update calls; every other Scene method is unused.
type recordingScene struct {
	scene.Scene
	name   string
	active bool
	calls  *[]string
	deltas []float64
	mu     *sync.Mutex
	panics bool
}

func (r *recordingScene) Active() bool { return r.active }

func (r *recordingScene) Update(dt float64) {
	if r.panics {
		panic("boom")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	*r.calls = append(*r.calls, r.name)
	r.deltas = append(r.deltas, dt)
}

func newRecorders(names ...string) ([]*recordingScene, *[]string) {
	calls := &[]string{}
	mu := &sync.Mutex{}
	out := make([]*recordingScene, len(names))
	for i, n := range names {
		out[i] = &recordingScene{name: n, active: true, calls: calls, mu: mu}
	}
	return out, calls
}

// loopWindow pumps its update callback until closed, like a platform window.
type loopWindow struct {
	window.Window
	mu       sync.Mutex
	onUpdate func()
	closed   atomic.Bool
}

func (w *loopWindow) SetUpdateCallback(cb func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onUpdate = cb
}
func (w *loopWindow) SetKeyDownCallback(func(uint32)) {}
func (w *loopWindow) SetKeyUpCallback(func(uint32)) {}
func (w *loopWindow) SetFocusLostCallback(func()) {}
func (w *loopWindow) SetScrollCallback(func(float64)) {}
func (w *loopWindow) SetDragCallback(func(dx, dy float64)) {}
func (w *loopWindow) IsRunning() bool { return !w.closed.Load() }

func (w *loopWindow) Close() error {
	w.closed.Store(true)
	return nil
}

func (w *loopWindow) ProcessMessages() {
	for w.IsRunning() {
		w.mu.Lock()
		cb := w.onUpdate
		w.mu.Unlock()
		if cb != nil {
			cb()
		}
		time.Sleep(time.Millisecond)
	}
}

func runWithTimeout(t *testing.T, e Engine) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		e.Run()
		close(done)
	}()
	t.Cleanup(func() { e.Quit() })

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return")
	}
}

func TestStepUpdatesActiveScenesInOrder(t *testing.T) {
	rs, calls := newRecorders("hud", "garden", "hidden", "sky")
	rs[2].active = false

	e := NewEngine(WithScene(10, rs[0]), WithScene(0, rs[1]), WithScene(5, rs[2]))
	e.AddScene(-1, rs[3])

	e.Step(0.016)
	assert.Equal(t, []string{"sky", "garden", "hud"}, *calls)

	e.RemoveScene(10)
	assert.Nil(t, e.Scene(10))
	assert.Len(t, e.Scenes(), 3)
}

func TestStepClampsDelta(t *testing.T) {
	rs, _ := newRecorders("garden")
	var got []float64
	e := NewEngine(WithScene(0, rs[0]), WithMaxDelta(0.05))
	e.SetTickCallback(func(dt float64) { got = append(got, dt) })

	e.Step(2)
	e.Step(-1)
	e.Step(0.01)

	assert.Equal(t, []float64{0.05, 0, 0.01}, rs[0].deltas)
	assert.Equal(t, rs[0].deltas, got)
}

func TestRunHeadlessUntilQuit(t *testing.T) {
	var ticks atomic.Int32
	e := NewEngine(WithTickRate(500))
	e.SetTickCallback(func(float64) { ticks.Add(1) })

	done := make(chan struct{})
	go func() {
		e.Run()
		close(done)
	}()

	require.Eventually(t, func() bool { return ticks.Load() >= 3 }, 2*time.Second, time.Millisecond)
	e.SetTickRate(250)
	e.Quit()
	e.Quit()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after Quit")
	}
	select {
	case <-e.Done():
	default:
		t.Fatal("Done not closed")
	}
}

func TestRunRecoversFromPanic(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	rs, _ := newRecorders("garden")
	rs[0].panics = true

	e := NewEngine(WithScene(0, rs[0]), WithTickRate(500), WithLogger(logger.NewFromZap(zap.New(core))))

	done := make(chan struct{})
	go func() {
		e.Run()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after panic")
	}
	assert.Equal(t, 1, logs.FilterMessage("tick goroutine recovered from panic").Len())
}

func TestProfilerToggle(t *testing.T) {
	e := NewEngine(WithProfiling(false))
	e.EnableProfiler()
	e.Step(0.01)
	e.DisableProfiler()
	e.Step(0.01)
	assert.Nil(t, e.Window())
}

func TestStepDrivesRealScene(t *testing.T) {
	s, err := scene.NewScene("garden", scene.WithActive(true))
	require.NoError(t, err)
	e := NewEngine(WithScene(0, s))

	start := s.Avatar().Position()
	s.Input().KeyDown(common.KeyD)
	for range 10 {
		e.Step(1.0 / 60.0)
	}
	assert.NotEqual(t, start, s.Avatar().Position())
}

func TestQuitClosesWindowLoop(t *testing.T) {
	w := &loopWindow{}
	var ticks atomic.Int32
	e := NewEngine(WithWindow(w), WithTickRate(500))
	e.SetTickCallback(func(float64) {
		if ticks.Add(1) == 3 {
			e.Quit()
		}
	})

	runWithTimeout(t, e)
	assert.True(t, w.closed.Load())
	assert.Same(t, w, e.Window())
}

func TestPanicClosesWindowLoop(t *testing.T) {
	w := &loopWindow{}
	rs, _ := newRecorders("garden")
	rs[0].panics = true
	e := NewEngine(WithWindow(w), WithScene(0, rs[0]), WithTickRate(500))

	runWithTimeout(t, e)
	assert.True(t, w.closed.Load())
}
