package gamemath

import "math"

// JumpImpulse returns the upward launch speed that reaches height under
// gravity. The result is negative because screen y grows downward.
func JumpImpulse(height, gravity float64) float64 {
	return -math.Sqrt(2 * height * gravity)
}

// ApplyGravity integrates gravity over dt and caps the fall speed.
func ApplyGravity(speedY, gravity, terminal, dt float64) float64 {
	speedY += gravity * dt
	if speedY > terminal {
		return terminal
	}
	return speedY
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// Facing returns 1 for right and -1 for left.
func Facing(right bool) float64 {
	if right {
		return 1
	}
	return -1
}
