package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// UpAxis is the world up axis. Locomotion is planar in the XZ plane around it.
var UpAxis = mgl64.Vec3{0, 1, 0}

// YawQuat returns the unit quaternion rotating by angle radians around the world up axis.
//
// Parameters:
//   - angle: yaw angle in radians
//
// Returns:
//   - mgl64.Quat: the rotation quaternion
func YawQuat(angle float64) mgl64.Quat {
	return mgl64.QuatRotate(angle, UpAxis)
}

// YawBetween returns the ground-plane yaw angle pointing from `from` towards `to`,
// measured as atan2(dx, dz) so that 0 faces +Z.
//
// Parameters:
//   - from: origin point
//   - to: destination point
//
// Returns:
//   - float64: yaw angle in radians in (-π, π]
func YawBetween(from, to mgl64.Vec3) float64 {
	return math.Atan2(to.X()-from.X(), to.Z()-from.Z())
}

// PlanarNormalize zeroes the vertical component of v and normalizes the remainder.
// The second return value is false when the planar length is too small to normalize,
// in which case the zero vector is returned.
//
// Parameters:
//   - v: the vector to flatten
//
// Returns:
//   - mgl64.Vec3: unit vector in the XZ plane, or zero
//   - bool: true if the result is a valid unit vector
func PlanarNormalize(v mgl64.Vec3) (mgl64.Vec3, bool) {
	v[1] = 0
	l := v.Len()
	if l < 1e-9 {
		return mgl64.Vec3{}, false
	}
	return v.Mul(1 / l), true
}

// QuatAngle returns the angle in radians of the shortest rotation taking a onto b.
// Both quaternions are expected to be unit length.
//
// Parameters:
//   - a: source orientation
//   - b: target orientation
//
// Returns:
//   - float64: angle in [0, π]
func QuatAngle(a, b mgl64.Quat) float64 {
	dot := math.Abs(a.Dot(b))
	if dot > 1 {
		dot = 1
	}
	return 2 * math.Acos(dot)
}

// Slerp spherically interpolates between a and b along the shortest arc.
// mgl64.QuatSlerp does not pick the short way round, so b is negated first when needed.
//
// Parameters:
//   - a: start orientation (t = 0)
//   - b: end orientation (t = 1)
//   - t: interpolation amount in [0, 1]
//
// Returns:
//   - mgl64.Quat: the interpolated unit quaternion
func Slerp(a, b mgl64.Quat, t float64) mgl64.Quat {
	if a.Dot(b) < 0 {
		b = b.Scale(-1)
	}
	return mgl64.QuatSlerp(a, b, t).Normalize()
}

// RotateTowards rotates current toward target by at most step radians.
// When the remaining angle is within step the target is returned exactly.
//
// Parameters:
//   - current: the current orientation
//   - target: the desired orientation
//   - step: maximum rotation in radians for this call
//
// Returns:
//   - mgl64.Quat: the new orientation
func RotateTowards(current, target mgl64.Quat, step float64) mgl64.Quat {
	angle := QuatAngle(current, target)
	if angle == 0 {
		return current
	}
	if step >= angle {
		return target
	}
	if step <= 0 {
		return current
	}
	return Slerp(current, target, step/angle)
}
