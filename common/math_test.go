package common

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestYawQuatRotatesForwardAxis(t *testing.T) {
	cases := []struct {
		name  string
		angle float64
		want  mgl64.Vec3
	}{
		{"zero", 0, mgl64.Vec3{0, 0, 1}},
		{"quarter", math.Pi / 2, mgl64.Vec3{1, 0, 0}},
		{"half", math.Pi, mgl64.Vec3{0, 0, -1}},
		{"negative_quarter", -math.Pi / 2, mgl64.Vec3{-1, 0, 0}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := YawQuat(c.angle).Rotate(mgl64.Vec3{0, 0, 1})
			assert.InDelta(t, c.want.X(), got.X(), 1e-9)
			assert.InDelta(t, c.want.Y(), got.Y(), 1e-9)
			assert.InDelta(t, c.want.Z(), got.Z(), 1e-9)
		})
	}
}

func TestYawBetween(t *testing.T) {
	assert.InDelta(t, 0, YawBetween(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 5, 4}), 1e-12)
	assert.InDelta(t, math.Pi/2, YawBetween(mgl64.Vec3{1, 0, 1}, mgl64.Vec3{3, 0, 1}), 1e-12)
	assert.InDelta(t, math.Pi, YawBetween(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 0, -2}), 1e-12)
}

func TestPlanarNormalize(t *testing.T) {
	v, ok := PlanarNormalize(mgl64.Vec3{3, 7, 4})
	assert.True(t, ok)
	assert.InDelta(t, 0.6, v.X(), 1e-12)
	assert.Equal(t, 0.0, v.Y())
	assert.InDelta(t, 0.8, v.Z(), 1e-12)

	v, ok = PlanarNormalize(mgl64.Vec3{0, -1, 0})
	assert.False(t, ok)
	assert.Equal(t, mgl64.Vec3{}, v)
}

func TestRotateTowardsLimitsStep(t *testing.T) {
	from := YawQuat(0)
	to := YawQuat(1.0)

	got := RotateTowards(from, to, 0.2)
	assert.InDelta(t, 0.2, QuatAngle(from, got), 1e-9)
	assert.InDelta(t, 0.8, QuatAngle(got, to), 1e-9)
}

func TestRotateTowardsSnapsWithinStep(t *testing.T) {
	from := YawQuat(0.5)
	to := YawQuat(0.6)

	got := RotateTowards(from, to, 0.2)
	assert.Equal(t, to, got)
}

func TestRotateTowardsTakesShortestArc(t *testing.T) {
	// 350° and 10° are 20° apart through 0.
	from := YawQuat(mgl64.DegToRad(350))
	to := YawQuat(mgl64.DegToRad(10))

	next := RotateTowards(from, to, mgl64.DegToRad(5))
	fwd := next.Rotate(mgl64.Vec3{0, 0, 1})
	assert.InDelta(t, mgl64.DegToRad(-5), math.Atan2(fwd.X(), fwd.Z()), 1e-9)
}

func TestSlerp(t *testing.T) {
	from := YawQuat(0)
	to := YawQuat(1.0)

	mid := Slerp(from, to, 0.5)
	assert.InDelta(t, 0.5, QuatAngle(from, mid), 1e-9)
	assert.InDelta(t, 1.0, mid.Len(), 1e-12)

	// A negated target is the same orientation and must not send the path the long way.
	flipped := Slerp(from, to.Scale(-1), 0.25)
	assert.InDelta(t, 0.25, QuatAngle(from, flipped), 1e-9)

	assert.InDelta(t, 0, QuatAngle(to, Slerp(from, to, 1)), 1e-6)
}

func TestRotateTowardsZeroAngleKeepsCurrent(t *testing.T) {
	q := YawQuat(0.3)
	assert.Equal(t, q, RotateTowards(q, q, 0.2))
}

func TestClampAndCoalesce(t *testing.T) {
	assert.Equal(t, 3.0, Clamp(7.0, 1.0, 3.0))
	assert.Equal(t, 1, Clamp(-2, 1, 3))
	assert.Equal(t, 2.5, Clamp(2.5, 1.0, 3.0))
	assert.Equal(t, "b", Coalesce("", "b", "c"))
	assert.Equal(t, 0, Coalesce(0, 0))
}
