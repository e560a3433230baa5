// pkg/physics/steering.go
package physics

import "math"

// NormalizeAngle wraps an angle into [-π, π]
func NormalizeAngle(angle float64) float64 {
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// TurnToward rotates current toward target by at most maxTurn. When the
// remaining error is within maxTurn the heading snaps exactly to target.
// It also returns the wrapped angular error measured before turning.
func TurnToward(current, target, maxTurn float64) (next, diff float64) {
	diff = NormalizeAngle(target - current)
	if math.Abs(diff) > maxTurn {
		return current + math.Copysign(maxTurn, diff), diff
	}
	return target, diff
}
