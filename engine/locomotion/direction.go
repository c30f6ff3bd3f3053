package locomotion

import "math"

// DirectionOffset returns the yaw, relative to the camera's forward direction, that the
// held keys ask the avatar to travel in. Forward takes precedence over back, and both
// take precedence over a lone strafe. A key set with forward and back held but no
// strafe key yields 0.
//
// Parameters:
//   - keys: the held direction keys
//
// Returns:
//   - float64: the offset in radians, positive toward the left
func DirectionOffset(keys KeySet) float64 {
	switch {
	case keys.Forward:
		switch {
		case keys.Left:
			return math.Pi / 4
		case keys.Right:
			return -math.Pi / 4
		}
	case keys.Back:
		switch {
		case keys.Left:
			return 3 * math.Pi / 4
		case keys.Right:
			return -3 * math.Pi / 4
		default:
			return math.Pi
		}
	case keys.Left:
		return math.Pi / 2
	case keys.Right:
		return -math.Pi / 2
	}
	return 0
}
