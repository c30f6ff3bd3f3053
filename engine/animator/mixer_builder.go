package animator

// MixerBuilderOption is a functional option for configuring a Mixer during construction.
type MixerBuilderOption func(*mixer)

// WithTimeScale is an option builder that sets the global playback rate of the Mixer.
//
// Parameters:
//   - scale: the playback rate, 1 for normal speed
//
// Returns:
//   - MixerBuilderOption: a function that applies the time scale option to a mixer
func WithTimeScale(scale float64) MixerBuilderOption {
	return func(m *mixer) {
		m.timeScale = scale
	}
}

// WithClips is an option builder that creates an action for each clip up front.
// Actions are created stopped, the same as calling ClipAction later.
//
// Parameters:
//   - clips: the clips to register
//
// Returns:
//   - MixerBuilderOption: a function that registers the clips on a mixer
func WithClips(clips ...Clip) MixerBuilderOption {
	return func(m *mixer) {
		for _, c := range clips {
			m.clipAction(c)
		}
	}
}
