package animator

import "math"

// action is the implementation of the Action interface.
type action struct {
	clip    Clip
	speed   float64
	time    float64
	weight  float64
	enabled bool
	running bool

	fading       bool
	fadeFrom     float64
	fadeTo       float64
	fadeDuration float64
	fadeElapsed  float64
}

// Action is the playback state of one clip inside a Mixer.
//
// An Action contributes to the pose only while it is playing and enabled. Its weight
// is 1 unless a fade is in progress or a fade-out has completed, in which case the
// action is disabled until Reset is called.
type Action interface {
	// Play schedules the action so Mixer.Update advances it.
	Play()

	// Stop unschedules the action and rewinds it.
	Stop()

	// Reset rewinds local time to 0, enables the action and cancels any fade.
	// The current weight is left unchanged.
	Reset()

	// FadeIn ramps the weight from 0 to 1 over the given duration of mixer time.
	//
	// Parameters:
	//   - duration: the fade length in seconds
	FadeIn(duration float64)

	// FadeOut ramps the weight from its current value to 0 over the given duration of mixer time.
	// The action is disabled once the fade completes.
	//
	// Parameters:
	//   - duration: the fade length in seconds
	FadeOut(duration float64)

	// EffectiveWeight returns the weight the action contributes this frame.
	//
	// Returns:
	//   - float64: the weight in [0, 1], or 0 if the action is disabled
	EffectiveWeight() float64

	// IsRunning reports whether the action is scheduled and enabled.
	//
	// Returns:
	//   - bool: true if Mixer.Update advances this action
	IsRunning() bool

	// IsFading reports whether a fade is in progress.
	//
	// Returns:
	//   - bool: true while a fade is in progress
	IsFading() bool

	// Time returns the local playback time in seconds.
	//
	// Returns:
	//   - float64: the local time
	Time() float64

	// Clip returns the clip this action plays.
	//
	// Returns:
	//   - Clip: the clip
	Clip() Clip

	// SetSpeed scales how fast local time advances relative to mixer time.
	//
	// Parameters:
	//   - speed: the playback rate, 1 for normal speed
	SetSpeed(speed float64)
}

var _ Action = &action{}

func newAction(clip Clip) *action {
	return &action{
		clip:    clip,
		speed:   1,
		weight:  1,
		enabled: true,
	}
}

func (a *action) Play() {
	a.running = true
}

func (a *action) Stop() {
	a.running = false
	a.Reset()
}

func (a *action) Reset() {
	a.time = 0
	a.enabled = true
	a.fading = false
	a.fadeElapsed = 0
}

func (a *action) FadeIn(duration float64) {
	a.scheduleFade(0, 1, duration)
}

func (a *action) FadeOut(duration float64) {
	a.scheduleFade(a.EffectiveWeight(), 0, duration)
}

func (a *action) scheduleFade(from, to, duration float64) {
	a.weight = from
	a.fadeFrom = from
	a.fadeTo = to
	a.fadeDuration = duration
	a.fadeElapsed = 0
	a.fading = true
	if duration <= 0 {
		a.finishFade()
	}
}

func (a *action) finishFade() {
	a.weight = a.fadeTo
	a.fading = false
	a.fadeElapsed = 0
	if a.fadeTo == 0 {
		a.enabled = false
	}
}

func (a *action) EffectiveWeight() float64 {
	if !a.enabled {
		return 0
	}
	return a.weight
}

func (a *action) IsRunning() bool {
	return a.running && a.enabled
}

func (a *action) IsFading() bool {
	return a.fading
}

func (a *action) Time() float64 {
	return a.time
}

func (a *action) Clip() Clip {
	return a.clip
}

func (a *action) SetSpeed(speed float64) {
	a.speed = speed
}

// advance moves local time and any fade forward by dt seconds of mixer time.
func (a *action) advance(dt float64) {
	if !a.IsRunning() {
		return
	}

	a.time += dt * a.speed
	if d := a.clip.Duration; d > 0 {
		if a.clip.Loop {
			a.time = math.Mod(a.time, d)
			if a.time < 0 {
				a.time += d
			}
		} else if a.time > d {
			a.time = d
		} else if a.time < 0 {
			a.time = 0
		}
	}

	if a.fading {
		a.fadeElapsed += dt
		progress := a.fadeElapsed / a.fadeDuration
		if progress >= 1 {
			a.finishFade()
		} else {
			a.weight = a.fadeFrom + (a.fadeTo-a.fadeFrom)*progress
		}
	}
}
