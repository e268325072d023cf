package maneuver

import "math"

// StopSpeedFraction defines the "stopped" speed threshold as a fraction of
// the speed at the first sample. Trial runners use the same fraction to cut
// recording short once the vessel has stopped.
const StopSpeedFraction = 0.02

// StoppingResult holds the crash-stop metrics for one trial. AvgDeceleration
// is NaN when the stop interval has zero length (the vessel was already at or
// below the stop threshold on the first sample).
type StoppingResult struct {
	StoppingDistance float64 // path length until the stop sample (m)
	StoppingTime     float64 // elapsed time until the stop sample (s)
	AvgDeceleration  float64 // speed drop over the stop interval (m/s^2)
	FullStop         bool    // speed fell to the stop threshold within the recording
}

// Stopping extracts stopping metrics from a trajectory recorded under a
// full-reverse command entered at cruising speed. The stop sample is the
// first one whose speed is at or below StopSpeedFraction of the initial
// speed; if the vessel never slows that far, metrics are measured to the
// final sample and FullStop is false. Distance is cumulative path length
// rather than straight-line displacement, because the vessel may curve while
// decelerating.
func Stopping(tr Trajectory) (StoppingResult, error) {
	var res StoppingResult
	if err := tr.check(); err != nil {
		return res, err
	}

	u0 := tr[0].U
	eps := u0 * StopSpeedFraction

	stop := len(tr) - 1
	for i, s := range tr {
		if s.U <= eps {
			stop = i
			res.FullStop = true
			break
		}
	}

	res.StoppingDistance = tr.PathLength(0, stop)
	res.StoppingTime = tr[stop].T - tr[0].T
	if res.StoppingTime > 0 {
		res.AvgDeceleration = (u0 - tr[stop].U) / res.StoppingTime
	} else {
		res.AvgDeceleration = math.NaN()
	}
	return res, nil
}
