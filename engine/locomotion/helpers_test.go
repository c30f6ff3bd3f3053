package locomotion

import (
	"fmt"
	"testing"

	"github.com/Carmen-Shannon/oxy-garden/engine/game_object"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
)

type callLog struct {
	calls []string
}

func (l *callLog) add(format string, args ...any) {
	l.calls = append(l.calls, fmt.Sprintf(format, args...))
}

func (l *callLog) take() []string {
	out := l.calls
	l.calls = nil
	return out
}

type spyClip struct {
	name string
	log  *callLog
}

func (s *spyClip) Play() { s.log.add("%s.Play", s.name) }
func (s *spyClip) Reset() { s.log.add("%s.Reset", s.name) }
func (s *spyClip) FadeIn(d float64) { s.log.add("%s.FadeIn(%g)", s.name, d) }
func (s *spyClip) FadeOut(d float64) { s.log.add("%s.FadeOut(%g)", s.name, d) }

type spyMixer struct {
	deltas []float64
}

func (m *spyMixer) Update(dt float64) { m.deltas = append(m.deltas, dt) }

type spyCamera struct {
	position mgl64.Vec3
	forward  mgl64.Vec3
}

func (c *spyCamera) Position() mgl64.Vec3 { return c.position }
func (c *spyCamera) SetPosition(p mgl64.Vec3) { c.position = p }
func (c *spyCamera) Forward() mgl64.Vec3 { return c.forward }

type spyFollow struct {
	target mgl64.Vec3
	calls  int
}

func (f *spyFollow) SetTarget(t mgl64.Vec3) {
	f.target = t
	f.calls++
}

type rig struct {
	ctrl   Controller
	avatar game_object.GameObject
	mixer  *spyMixer
	camera *spyCamera
	follow *spyFollow
	log    *callLog
}

func spyClips(log *callLog, names ...string) map[string]*spyClip {
	out := make(map[string]*spyClip, len(names))
	for _, n := range names {
		out[n] = &spyClip{name: n, log: log}
	}
	return out
}

// newRig places the avatar at the origin and the camera behind it on +Z, looking down -Z.
func newRig(t *testing.T, options ...ControllerOption) *rig {
	t.Helper()
	log := &callLog{}
	clips, err := NewClipSet(spyClips(log, "Idle", "Walk", "Run", "TPose"))
	require.NoError(t, err)

	r := &rig{
		avatar: game_object.NewGameObject(),
		mixer:  &spyMixer{},
		camera: &spyCamera{position: mgl64.Vec3{0, 3, 5}, forward: mgl64.Vec3{0, -0.5, -1}},
		follow: &spyFollow{},
		log:    log,
	}
	r.ctrl, err = NewController(r.avatar, r.mixer, clips, r.follow, r.camera, Idle, options...)
	require.NoError(t, err)
	return r
}
