package maneuver

import (
	"fmt"
	"math"
)

// ReachFraction defines the acceleration target threshold as a fraction of
// the commanded target speed. Trial runners use the same fraction to cut
// recording short once the target is met.
const ReachFraction = 0.95

// AccelerationResult holds the acceleration metrics for one trial. When the
// target threshold was not reached within the recording, the scalar fields
// are NaN and ReachedTarget is false; a vessel too slow for its test window
// is a measurement outcome, not an error. AvgAcceleration is NaN when the
// threshold was already met at the first sample (zero-length interval).
type AccelerationResult struct {
	AccelerationTime     float64 // elapsed time until the reach sample (s)
	AccelerationDistance float64 // path length until the reach sample (m)
	AvgAcceleration      float64 // speed gain over the reach interval (m/s^2)
	ReachedTarget        bool
}

// Acceleration extracts acceleration metrics from a trajectory recorded
// under a constant forward command entered from rest or near-rest. The reach
// sample is the first one whose speed is at or above ReachFraction of
// targetSpeed; no interpolation between samples.
func Acceleration(tr Trajectory, targetSpeed float64) (AccelerationResult, error) {
	res := AccelerationResult{
		AccelerationTime:     math.NaN(),
		AccelerationDistance: math.NaN(),
		AvgAcceleration:      math.NaN(),
	}
	if targetSpeed <= 0 {
		return res, fmt.Errorf("maneuver: target speed must be positive, got %g", targetSpeed)
	}
	if err := tr.check(); err != nil {
		return res, err
	}

	threshold := ReachFraction * targetSpeed
	for i, s := range tr {
		if s.U >= threshold {
			res.ReachedTarget = true
			res.AccelerationTime = s.T - tr[0].T
			res.AccelerationDistance = tr.PathLength(0, i)
			if res.AccelerationTime > 0 {
				res.AvgAcceleration = (s.U - tr[0].U) / res.AccelerationTime
			}
			break
		}
	}
	return res, nil
}
