// Package animator provides a CPU animation mixer that schedules clip actions,
// advances their playback time and resolves cross-fades.
//
// A Mixer is not safe for concurrent use. Separate mixers are independent and may be
// advanced from different goroutines.
package animator

// mixer is the implementation of the Mixer interface.
type mixer struct {
	time      float64
	timeScale float64
	actions   []*action
	byName    map[string]*action
}

// Mixer owns the actions of one animated object.
type Mixer interface {
	// ClipAction returns the action for clip, creating it on first use.
	// Subsequent calls with the same clip name return the same action.
	//
	// Parameters:
	//   - clip: the clip to play
	//
	// Returns:
	//   - Action: the cached action for the clip name
	ClipAction(clip Clip) Action

	// ExistingAction looks up an action previously created by ClipAction.
	//
	// Parameters:
	//   - name: the clip name
	//
	// Returns:
	//   - Action: the action, or nil
	//   - bool: true if an action exists for name
	ExistingAction(name string) (Action, bool)

	// Actions returns every action in creation order.
	//
	// Returns:
	//   - []Action: the actions
	Actions() []Action

	// Update advances mixer time and every running action by dt seconds.
	// A dt of zero or less leaves all state unchanged.
	//
	// Parameters:
	//   - dt: elapsed time in seconds
	Update(dt float64)

	// Time returns the accumulated mixer time in seconds.
	//
	// Returns:
	//   - float64: the mixer time
	Time() float64

	// SetTimeScale sets the global playback rate applied to every action.
	//
	// Parameters:
	//   - scale: the rate, 1 for normal speed
	SetTimeScale(scale float64)

	// StopAll stops and rewinds every action.
	StopAll()
}

var _ Mixer = &mixer{}

// NewMixer creates a new Mixer with the provided options.
//
// Parameters:
//   - options: variadic list of MixerBuilderOption functions to configure the Mixer
//
// Returns:
//   - Mixer: the newly created Mixer
func NewMixer(options ...MixerBuilderOption) Mixer {
	m := &mixer{
		timeScale: 1,
		byName:    make(map[string]*action),
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

func (m *mixer) ClipAction(clip Clip) Action {
	return m.clipAction(clip)
}

func (m *mixer) clipAction(clip Clip) *action {
	if a, ok := m.byName[clip.Name]; ok {
		return a
	}
	a := newAction(clip)
	m.byName[clip.Name] = a
	m.actions = append(m.actions, a)
	return a
}

func (m *mixer) ExistingAction(name string) (Action, bool) {
	a, ok := m.byName[name]
	if !ok {
		return nil, false
	}
	return a, true
}

func (m *mixer) Actions() []Action {
	out := make([]Action, len(m.actions))
	for i, a := range m.actions {
		out[i] = a
	}
	return out
}

func (m *mixer) Update(dt float64) {
	if dt <= 0 {
		return
	}
	scaled := dt * m.timeScale
	m.time += scaled
	for _, a := range m.actions {
		a.advance(scaled)
	}
}

func (m *mixer) Time() float64 {
	return m.time
}

func (m *mixer) SetTimeScale(scale float64) {
	m.timeScale = scale
}

func (m *mixer) StopAll() {
	for _, a := range m.actions {
		a.Stop()
	}
}
