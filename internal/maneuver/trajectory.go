// Package maneuver derives standard maritime maneuverability metrics from
// recorded vessel trajectories: turning circle geometry, stopping kinematics,
// and acceleration kinematics.
//
// Every extractor is a deterministic pure function of the trajectory it is
// given. Thresholds that were never reached within a recording are labeled in
// the result record rather than raised as errors, so a batch of trials can
// complete and report partial findings.
package maneuver

import (
	"errors"
	"fmt"
	"math"
)

// ErrInsufficientData reports that a trajectory does not carry enough
// information to compute a metric: fewer than two samples, or no stabilized
// turn segment when the steady turning radius is requested.
var ErrInsufficientData = errors.New("maneuver: insufficient trajectory data")

// Sample is one vessel state observation at a discrete simulation step.
type Sample struct {
	T   float64 // elapsed time since the start of the recording (s)
	X   float64 // world-frame position (m)
	Y   float64 // world-frame position (m)
	Psi float64 // heading (rad), wrapped or unwrapped
	U   float64 // speed over ground (m/s), never negative
	R   float64 // yaw rate (rad/s), signed
}

// Trajectory is the time-ordered sample sequence recorded during one trial.
// Samples are appended once per simulation step and never reordered.
type Trajectory []Sample

// Duration returns the time span covered by the trajectory.
func (tr Trajectory) Duration() float64 {
	if len(tr) == 0 {
		return 0
	}
	return tr[len(tr)-1].T - tr[0].T
}

// PathLength returns the cumulative distance traveled between samples i and j
// inclusive, summing the straight segments between consecutive positions.
// Ranges outside the trajectory yield 0.
func (tr Trajectory) PathLength(i, j int) float64 {
	if i < 0 || j >= len(tr) || i >= j {
		return 0
	}
	var dist float64
	for k := i + 1; k <= j; k++ {
		dist += math.Hypot(tr[k].X-tr[k-1].X, tr[k].Y-tr[k-1].Y)
	}
	return dist
}

// check validates the minimum-sample invariant shared by all extractors.
func (tr Trajectory) check() error {
	if len(tr) < 2 {
		return fmt.Errorf("%w: got %d samples, need at least 2", ErrInsufficientData, len(tr))
	}
	return nil
}
