package locomotion

import "errors"

var (
	// ErrNilDependency is returned when a required collaborator is nil.
	ErrNilDependency = errors.New("locomotion: nil dependency")
	// ErrMissingClip is returned when a movement state has no clip.
	ErrMissingClip = errors.New("locomotion: missing clip")
	// ErrInvalidTuning is returned when a speed, fade or turn step is not positive.
	ErrInvalidTuning = errors.New("locomotion: invalid tuning")
)
