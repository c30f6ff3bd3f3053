package game_object

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-garden/common"
	"github.com/Carmen-Shannon/oxy-garden/engine/animator"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestNewGameObjectDefaults(t *testing.T) {
	obj := NewGameObject()
	assert.True(t, obj.Enabled())
	assert.Equal(t, mgl64.Vec3{}, obj.Position())
	assert.Equal(t, mgl64.Vec3{1, 1, 1}, obj.Scale())
	assert.True(t, obj.Orientation().ApproxEqual(mgl64.QuatIdent()))
	assert.Nil(t, obj.Mixer())
}

func TestBuilderOptions(t *testing.T) {
	m := animator.NewMixer()
	obj := NewGameObject(
		WithID(7),
		WithName("avatar"),
		WithEnabled(false),
		WithPosition(mgl64.Vec3{-14, 0.8, 10}),
		WithOrientation(mgl64.Quat{W: 2}),
		WithScale(mgl64.Vec3{2, 2, 2}),
		WithMixer(m),
	)

	assert.Equal(t, uint64(7), obj.ID())
	assert.Equal(t, "avatar", obj.Name())
	assert.False(t, obj.Enabled())
	assert.Equal(t, mgl64.Vec3{-14, 0.8, 10}, obj.Position())
	assert.InDelta(t, 1, obj.Orientation().Len(), 1e-12)
	assert.Same(t, m, obj.Mixer())
}

func TestRotateTowardsIsBoundedAndSnaps(t *testing.T) {
	obj := NewGameObject()
	target := common.YawQuat(1.0)

	obj.RotateTowards(target, 0.2)
	assert.InDelta(t, 0.2, common.QuatAngle(mgl64.QuatIdent(), obj.Orientation()), 1e-9)

	for i := 0; i < 4; i++ {
		obj.RotateTowards(target, 0.2)
	}
	assert.InDelta(t, 0, common.QuatAngle(target, obj.Orientation()), 1e-6)

	obj.RotateTowards(target, 0.2)
	assert.True(t, obj.Orientation().ApproxEqualThreshold(target, 1e-12))
}

func TestFacingFollowsYaw(t *testing.T) {
	obj := NewGameObject(WithOrientation(common.YawQuat(math.Pi / 2)))
	f := obj.Facing()
	assert.InDelta(t, 1, f.X(), 1e-12)
	assert.InDelta(t, 0, f.Z(), 1e-12)
}

func TestModelMatrixTranslates(t *testing.T) {
	obj := NewGameObject(WithPosition(mgl64.Vec3{1, 2, 3}), WithScale(mgl64.Vec3{2, 2, 2}))
	p := obj.ModelMatrix().Mul4x1(mgl64.Vec4{1, 0, 0, 1})
	assert.InDelta(t, 3, p.X(), 1e-12)
	assert.InDelta(t, 2, p.Y(), 1e-12)
	assert.InDelta(t, 3, p.Z(), 1e-12)
}
