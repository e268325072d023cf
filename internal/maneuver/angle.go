package maneuver

import "math"

// WrapAngle maps an angle to the interval (-pi, pi].
func WrapAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// unwrapHeadings reconstructs a continuous heading series from per-sample
// headings that may be wrapped to [-pi, pi]. Each successive difference is
// wrapped before accumulating, so a vessel crossing the +-180 degree
// discontinuity keeps a continuous turn angle. Turn-progress thresholds must
// always be evaluated on the unwrapped series.
func unwrapHeadings(tr Trajectory) []float64 {
	out := make([]float64, len(tr))
	if len(tr) == 0 {
		return out
	}
	out[0] = tr[0].Psi
	for i := 1; i < len(tr); i++ {
		out[i] = out[i-1] + WrapAngle(tr[i].Psi-tr[i-1].Psi)
	}
	return out
}
