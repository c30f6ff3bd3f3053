package animator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	idle = Clip{Name: "Idle", Duration: 2, Loop: true}
	walk = Clip{Name: "Walk", Duration: 1, Loop: true}
	once = Clip{Name: "Wave", Duration: 0.5}
)

func TestClipActionIsCached(t *testing.T) {
	m := NewMixer()
	a := m.ClipAction(idle)
	b := m.ClipAction(Clip{Name: "Idle", Duration: 99})
	assert.Same(t, a, b)

	got, ok := m.ExistingAction("Idle")
	require.True(t, ok)
	assert.Same(t, a, got)

	_, ok = m.ExistingAction("Run")
	assert.False(t, ok)
}

func TestWithClipsRegistersInOrder(t *testing.T) {
	m := NewMixer(WithClips(idle, walk, once))
	actions := m.Actions()
	require.Len(t, actions, 3)
	assert.Equal(t, "Idle", actions[0].Clip().Name)
	assert.Equal(t, "Wave", actions[2].Clip().Name)
	for _, a := range actions {
		assert.False(t, a.IsRunning())
	}
}

func TestUpdateAdvancesOnlyPlayingActions(t *testing.T) {
	m := NewMixer()
	a := m.ClipAction(idle)
	b := m.ClipAction(walk)
	a.Play()

	m.Update(0.5)

	assert.InDelta(t, 0.5, a.Time(), 1e-12)
	assert.Zero(t, b.Time())
	assert.InDelta(t, 0.5, m.Time(), 1e-12)
}

func TestUpdateIgnoresNonPositiveDelta(t *testing.T) {
	m := NewMixer()
	a := m.ClipAction(idle)
	a.Play()
	a.FadeIn(0.2)

	m.Update(0)
	m.Update(-1)

	assert.Zero(t, m.Time())
	assert.Zero(t, a.Time())
	assert.True(t, a.IsFading())
	assert.Zero(t, a.EffectiveWeight())
}

func TestLoopingWrapsAndOneShotClamps(t *testing.T) {
	m := NewMixer()
	l := m.ClipAction(walk)
	o := m.ClipAction(once)
	l.Play()
	o.Play()

	m.Update(1.25)

	assert.InDelta(t, 0.25, l.Time(), 1e-9)
	assert.InDelta(t, 0.5, o.Time(), 1e-12)
}

func TestTimeScaleAndSpeed(t *testing.T) {
	m := NewMixer(WithTimeScale(2))
	a := m.ClipAction(Clip{Name: "Long", Duration: 100, Loop: true})
	a.SetSpeed(0.5)
	a.Play()

	m.Update(1)

	assert.InDelta(t, 2, m.Time(), 1e-12)
	assert.InDelta(t, 1, a.Time(), 1e-12)
}

func TestCrossFade(t *testing.T) {
	m := NewMixer()
	from := m.ClipAction(idle)
	to := m.ClipAction(walk)
	from.Play()
	assert.Equal(t, 1.0, from.EffectiveWeight())

	from.FadeOut(0.2)
	to.Reset()
	to.FadeIn(0.2)
	to.Play()

	m.Update(0.1)
	assert.InDelta(t, 0.5, from.EffectiveWeight(), 1e-9)
	assert.InDelta(t, 0.5, to.EffectiveWeight(), 1e-9)
	assert.True(t, from.IsFading())
	assert.True(t, to.IsFading())

	m.Update(0.1)
	assert.Zero(t, from.EffectiveWeight())
	assert.False(t, from.IsRunning(), "completed fade-out disables the action")
	assert.InDelta(t, 1, to.EffectiveWeight(), 1e-12)
	assert.False(t, to.IsFading())
	assert.True(t, to.IsRunning())

	fromTime := from.Time()
	m.Update(0.5)
	assert.Equal(t, fromTime, from.Time(), "disabled action does not advance")
}

func TestFadeOutStartsFromCurrentWeight(t *testing.T) {
	m := NewMixer()
	a := m.ClipAction(idle)
	a.Play()
	a.FadeIn(1)
	m.Update(0.4)
	require.InDelta(t, 0.4, a.EffectiveWeight(), 1e-9)

	a.FadeOut(1)
	assert.InDelta(t, 0.4, a.EffectiveWeight(), 1e-9)
	m.Update(0.5)
	assert.InDelta(t, 0.2, a.EffectiveWeight(), 1e-9)
}

func TestResetReenablesAndCancelsFade(t *testing.T) {
	m := NewMixer()
	a := m.ClipAction(idle)
	a.Play()
	a.FadeOut(0.1)
	m.Update(0.2)
	require.False(t, a.IsRunning())

	a.Reset()
	assert.True(t, a.IsRunning())
	assert.False(t, a.IsFading())
	assert.Zero(t, a.Time())
}

func TestZeroDurationFadeSnaps(t *testing.T) {
	m := NewMixer()
	a := m.ClipAction(idle)
	a.Play()

	a.FadeOut(0)
	assert.False(t, a.IsFading())
	assert.False(t, a.IsRunning())

	a.Reset()
	a.FadeIn(0)
	assert.Equal(t, 1.0, a.EffectiveWeight())
}

func TestStopAll(t *testing.T) {
	m := NewMixer(WithClips(idle, walk))
	for _, a := range m.Actions() {
		a.Play()
	}
	m.Update(0.3)
	m.StopAll()
	for _, a := range m.Actions() {
		assert.False(t, a.IsRunning())
		assert.Zero(t, a.Time())
	}
}
