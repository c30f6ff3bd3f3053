package locomotion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClipSetIgnoresExtraNames(t *testing.T) {
	log := &callLog{}
	named := spyClips(log, "Idle", "Walk", "Run", "TPose", "Wave")
	set, err := NewClipSet(named)
	require.NoError(t, err)

	for _, s := range States() {
		c, ok := set.Clip(s)
		require.True(t, ok)
		assert.Same(t, named[s.String()], c)
	}
	assert.False(t, set.Empty())
}

func TestNewClipSetRejectsMissing(t *testing.T) {
	_, err := NewClipSet(spyClips(&callLog{}, "Idle", "TPose"))
	require.ErrorIs(t, err, ErrMissingClip)
	assert.Contains(t, err.Error(), "Walk, Run")
}

func TestMustClipPanicsOnZeroSet(t *testing.T) {
	assert.True(t, ClipSet{}.Empty())
	assert.Panics(t, func() { ClipSet{}.mustClip(Walk) })
}

func TestStateNames(t *testing.T) {
	assert.Equal(t, "Idle", Idle.String())
	assert.Equal(t, "Walk", Walk.String())
	assert.Equal(t, "Run", Run.String())
	assert.Equal(t, "State(7)", State(7).String())
	assert.False(t, State(-1).Valid())

	s, ok := ParseState("Run")
	assert.True(t, ok)
	assert.Equal(t, Run, s)
	_, ok = ParseState("TPose")
	assert.False(t, ok)
}
