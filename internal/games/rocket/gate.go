package rocket

import "math"

// Passed reports whether the obstacle's trailing edge is strictly left of
// the rocket's leading edge.
func Passed(obstacleTrailingEdge, rocketLeadingEdge float64) bool {
	return obstacleTrailingEdge < rocketLeadingEdge
}

// checkGate runs the scoring gate for one frame. A pass scores only while the
// gate is armed, and any pass disarms it, so one armed window yields at most
// one point. It returns the new state and whether the score changed.
func checkGate(s State, obstacleTrailingEdge, rocketLeadingEdge float64) (State, bool) {
	if !Passed(obstacleTrailingEdge, rocketLeadingEdge) {
		return s, false
	}
	scored := s.CanScore
	if scored {
		s.Score++
	}
	s.CanScore = false
	return s, scored
}

// OrientationAngle returns the rocket's target tilt for a vertical velocity.
// The horizontal term is a constant reference speed (scene width over the
// traversal duration), not the obstacle's instantaneous speed.
func OrientationAngle(verticalVelocity, referenceSpeed float64) float64 {
	return math.Atan2(verticalVelocity, referenceSpeed)
}
