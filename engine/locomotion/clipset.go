package locomotion

import (
	"fmt"
	"strings"
)

// ClipSet maps every movement state to its clip. The zero value holds no clips and
// is rejected by NewController.
type ClipSet struct {
	clips map[State]Clip
}

// NewClipSet selects the Idle, Walk and Run clips from a set of named clips.
// Names that are not movement states are ignored.
//
// Parameters:
//   - named: clips keyed by clip name
//
// Returns:
//   - ClipSet: the validated set
//   - error: ErrMissingClip naming every absent state
func NewClipSet[C Clip](named map[string]C) (ClipSet, error) {
	set := ClipSet{clips: make(map[State]Clip, len(stateNames))}
	var missing []string
	for _, s := range States() {
		c, ok := named[s.String()]
		if !ok {
			missing = append(missing, s.String())
			continue
		}
		set.clips[s] = c
	}
	if len(missing) > 0 {
		return ClipSet{}, fmt.Errorf("%w: %s", ErrMissingClip, strings.Join(missing, ", "))
	}
	return set, nil
}

// Clip returns the clip for s.
func (c ClipSet) Clip(s State) (Clip, bool) {
	clip, ok := c.clips[s]
	return clip, ok
}

// Empty reports whether the set holds no clips.
func (c ClipSet) Empty() bool {
	return len(c.clips) == 0
}

// mustClip panics when s has no clip. NewClipSet makes this unreachable.
func (c ClipSet) mustClip(s State) Clip {
	clip, ok := c.clips[s]
	if !ok {
		panic(fmt.Sprintf("locomotion: no clip for state %s", s))
	}
	return clip
}
