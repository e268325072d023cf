// Package trials sequences the standard maneuvering trials against a
// simulated vessel: turning circle, crash stop, and acceleration. Each
// runner owns its command schedule and returns the recorded trajectory;
// metric extraction lives in the maneuver package.
//
// Runners reset the world before driving it, so every trial starts from the
// same zero state regardless of what ran before. Recorded time is relative
// to the trial's baseline sample, not to the world clock: spin-up phases
// that bring the vessel to its entry condition are not part of the record.
package trials

import (
	"math"

	"github.com/KangHyoeun/maneuver.report/internal/maneuver"
	"github.com/KangHyoeun/maneuver.report/internal/sim"
	"github.com/KangHyoeun/maneuver.report/internal/vessel"
)

// record converts a vessel state into a trajectory sample at trial time t.
// Recorded speed is speed over ground, so it stays non-negative even when
// the hull is moving astern.
func record(st vessel.State, t float64) maneuver.Sample {
	return maneuver.Sample{
		T:   t,
		X:   st.X,
		Y:   st.Y,
		Psi: st.Psi,
		U:   st.Speed(),
		R:   st.R,
	}
}

// steps converts a duration to a whole step count for the given world.
func steps(w *sim.World, duration float64) int {
	return int(math.Round(duration / w.StepTime()))
}
