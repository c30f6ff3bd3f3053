package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertVec(t *testing.T, want, got mgl64.Vec3, delta float64) {
	t.Helper()
	assert.InDelta(t, want.X(), got.X(), delta, "x")
	assert.InDelta(t, want.Y(), got.Y(), delta, "y")
	assert.InDelta(t, want.Z(), got.Z(), delta, "z")
}

func TestControllerDefaults(t *testing.T) {
	cc := NewCameraController()
	assertVec(t, mgl64.Vec3{0, 4, 4}, cc.Position(), 1e-12)
	assertVec(t, mgl64.Vec3{}, cc.Target(), 1e-12)
	assert.InDelta(t, math.Sqrt(32), cc.Radius(), 1e-12)
	assert.InDelta(t, math.Pi/4, cc.Elevation(), 1e-12)
	assert.Equal(t, 3.0, cc.MinRadius())
	assert.Equal(t, 5.0, cc.MaxRadius())
	assert.Equal(t, 0.05, cc.MinElevation())
}

func TestUpdateClampsRadius(t *testing.T) {
	cc := NewCameraController()
	cc.Update()

	assert.InDelta(t, 5, cc.Radius(), 1e-12)
	assert.InDelta(t, 5, cc.Position().Sub(cc.Target()).Len(), 1e-9)
	// Direction from the target is unchanged.
	dir := cc.Position().Normalize()
	assertVec(t, mgl64.Vec3{0, 1, 1}.Normalize(), dir, 1e-9)

	cc.SetPosition(mgl64.Vec3{0, 0.5, 1})
	cc.Update()
	assert.InDelta(t, 3, cc.Radius(), 1e-12)
}

func TestUpdateClampsElevation(t *testing.T) {
	cc := NewCameraController(WithPosition(mgl64.Vec3{4, -1, 0}))
	cc.Update()
	assert.InDelta(t, 0.05, cc.Elevation(), 1e-12)
	assert.Greater(t, cc.Position().Y(), 0.0)
}

func TestSetTargetKeepsPosition(t *testing.T) {
	cc := NewCameraController(WithPosition(mgl64.Vec3{0, 3, 4}))
	cc.SetTarget(mgl64.Vec3{0, 0, 1})

	assertVec(t, mgl64.Vec3{0, 3, 4}, cc.Position(), 1e-12)
	assert.InDelta(t, math.Sqrt(18), cc.Radius(), 1e-12)
}

func TestRigidFollow(t *testing.T) {
	cc := NewCameraController(WithPosition(mgl64.Vec3{0, 3, 4}))
	cc.Update()
	before := cc.Position().Sub(cc.Target())

	d := mgl64.Vec3{0.7, 0, -1.3}
	cc.SetPosition(cc.Position().Add(d))
	cc.SetTarget(cc.Target().Add(d))
	cc.Update()

	after := cc.Position().Sub(cc.Target())
	assertVec(t, before, after, 1e-9)
}

func TestZoomAndOrbit(t *testing.T) {
	cc := NewCameraController(WithPosition(mgl64.Vec3{0, 0, 4}), WithZoomSpeed(1))
	cc.Zoom(10)
	assert.Equal(t, 3.0, cc.Radius())

	cc.Zoom(-10)
	assert.Equal(t, 5.0, cc.Radius())

	az := cc.Azimuth()
	cc.OrbitRight()
	assert.InDelta(t, az+cc.OrbitSpeed(), cc.Azimuth(), 1e-12)
	cc.OrbitLeft()
	assert.InDelta(t, az, cc.Azimuth(), 1e-12)

	for i := 0; i < 200; i++ {
		cc.OrbitUp()
	}
	assert.Equal(t, cc.MaxElevation(), cc.Elevation())
	for i := 0; i < 200; i++ {
		cc.OrbitDown()
	}
	assert.Equal(t, cc.MinElevation(), cc.Elevation())
}

func TestWithMaxPolarAngle(t *testing.T) {
	cc := NewCameraController(WithMaxPolarAngle(math.Pi/2 - 0.05))
	assert.InDelta(t, 0.05, cc.MinElevation(), 1e-12)

	cc = NewCameraController(WithMaxPolarAngle(math.Pi / 3))
	assert.InDelta(t, math.Pi/6, cc.MinElevation(), 1e-12)
}

func TestCameraForwardLooksAtTarget(t *testing.T) {
	cc := NewCameraController(WithPosition(mgl64.Vec3{0, 4, 4}))
	cam := NewCamera(WithController(cc), WithAspect(16.0/9.0))

	want := cc.Target().Sub(cc.Position()).Normalize()
	assertVec(t, want, cam.Forward(), 1e-9)
}

func TestCameraForwardIsStaleUntilUpdate(t *testing.T) {
	cc := NewCameraController(WithPosition(mgl64.Vec3{0, 0, 4}))
	cam := NewCamera(WithController(cc))
	assertVec(t, mgl64.Vec3{0, 0, -1}, cam.Forward(), 1e-9)

	cam.SetPosition(mgl64.Vec3{4, 0, 0})
	assertVec(t, mgl64.Vec3{4, 0, 0}, cam.Position(), 1e-12)
	assertVec(t, mgl64.Vec3{0, 0, -1}, cam.Forward(), 1e-9)

	cam.Update()
	assertVec(t, mgl64.Vec3{-1, 0, 0}, cam.Forward(), 1e-9)
}

func TestCameraMatrices(t *testing.T) {
	cam := NewCamera(WithController(NewCameraController()))
	assert.InDelta(t, mgl64.DegToRad(45), cam.Fov(), 1e-12)
	assert.Equal(t, 0.1, cam.Near())
	assert.Equal(t, 1000.0, cam.Far())

	id := cam.ProjectionMatrix().Mul4(cam.InverseProjectionMatrix())
	require.True(t, id.ApproxEqualThreshold(mgl64.Ident4(), 1e-9))
	assert.True(t, cam.ViewProjectionMatrix().ApproxEqual(cam.ProjectionMatrix().Mul4(cam.ViewMatrix())))
}

func TestCameraWithoutController(t *testing.T) {
	cam := NewCamera()
	assert.Nil(t, cam.Controller())
	assert.Equal(t, mgl64.Vec3{}, cam.Position())
	assert.NotPanics(t, func() {
		cam.SetPosition(mgl64.Vec3{1, 2, 3})
		cam.Update()
	})
	assertVec(t, mgl64.Vec3{0, 0, -1}, cam.Forward(), 1e-12)
}
