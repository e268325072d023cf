package maneuver

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

const (
	quarterTurn = math.Pi / 2
	halfTurn    = math.Pi

	// steadyTailFraction is the trailing fraction of samples inspected for a
	// stabilized yaw rate.
	steadyTailFraction = 0.25

	// steadyYawBand is the maximum yaw-rate spread (rad/s) across the tail
	// for the turn to count as stabilized.
	steadyYawBand = 0.02

	// minSteadyYawRate guards the radius division: below this mean yaw rate
	// the vessel is not turning in any measurable sense.
	minSteadyYawRate = 1e-3
)

// TurningCircleResult holds the turning-circle metrics for one trial.
// Distances are meters, rates rad/s. A metric whose angle threshold was never
// reached within the recording is NaN with the matching flag false; that is a
// measurement outcome, not an error.
type TurningCircleResult struct {
	Advance             float64 // along-track displacement at the 90 degree sample
	Transfer            float64 // lateral displacement at the 90 degree sample, positive toward the turn
	TacticalDiameter    float64 // lateral displacement magnitude at the 180 degree sample
	SteadyTurningRadius float64 // mean(u)/mean(|r|) over the stabilized tail
	MaxYawRate          float64 // max |r| over the whole recording

	Reached90  bool // heading change reached 90 degrees
	Reached180 bool // heading change reached 180 degrees
	Steady     bool // yaw rate stabilized within the recording
}

// TurningCircle extracts turning-circle geometry from a trajectory recorded
// under a constant turn command entered from straight-line motion.
//
// The heading series is unwrapped first, and turn progress is measured
// against the heading and position of the first sample. Advance and transfer
// are the projections of the displacement at the first sample where the turn
// angle reaches 90 degrees onto the initial-heading axes; the tactical
// diameter is the lateral projection magnitude at the first sample where it
// reaches 180 degrees. The first sample at or beyond a threshold is used; no
// interpolation between samples.
func TurningCircle(tr Trajectory) (TurningCircleResult, error) {
	res := TurningCircleResult{
		Advance:             math.NaN(),
		Transfer:            math.NaN(),
		TacticalDiameter:    math.NaN(),
		SteadyTurningRadius: math.NaN(),
	}
	if err := tr.check(); err != nil {
		return res, err
	}

	headings := unwrapHeadings(tr)
	psi0 := headings[0]
	x0, y0 := tr[0].X, tr[0].Y
	sin0, cos0 := math.Sincos(psi0)

	for i, s := range tr {
		dpsi := headings[i] - psi0
		if !res.Reached90 && math.Abs(dpsi) >= quarterTurn {
			dx, dy := s.X-x0, s.Y-y0
			res.Advance = dx*cos0 + dy*sin0
			// Signed so that positive always points toward the turning side.
			res.Transfer = (-dx*sin0 + dy*cos0) * sign(dpsi)
			res.Reached90 = true
		}
		if !res.Reached180 && math.Abs(dpsi) >= halfTurn {
			dx, dy := s.X-x0, s.Y-y0
			res.TacticalDiameter = math.Abs(-dx*sin0 + dy*cos0)
			res.Reached180 = true
		}
		if v := math.Abs(s.R); v > res.MaxYawRate {
			res.MaxYawRate = v
		}
	}

	if radius, err := SteadyTurningRadius(tr); err == nil {
		res.SteadyTurningRadius = radius
		res.Steady = true
	}
	return res, nil
}

// SteadyTurningRadius returns the turn radius mean(u)/mean(|r|) over the
// trailing quarter of the trajectory. It fails with ErrInsufficientData when
// the yaw rate never stabilizes within the recording, or when the vessel is
// not measurably turning at all.
func SteadyTurningRadius(tr Trajectory) (float64, error) {
	if err := tr.check(); err != nil {
		return math.NaN(), err
	}

	start := len(tr) - int(math.Ceil(float64(len(tr))*steadyTailFraction))
	if start > len(tr)-2 {
		start = len(tr) - 2
	}
	tail := tr[start:]

	rates := make([]float64, len(tail))
	absRates := make([]float64, len(tail))
	speeds := make([]float64, len(tail))
	for i, s := range tail {
		rates[i] = s.R
		absRates[i] = math.Abs(s.R)
		speeds[i] = s.U
	}

	if spread := floats.Max(rates) - floats.Min(rates); spread > steadyYawBand {
		return math.NaN(), fmt.Errorf("%w: yaw rate spread %.4f rad/s over the tail exceeds %.4f", ErrInsufficientData, spread, steadyYawBand)
	}
	meanRate := stat.Mean(absRates, nil)
	if meanRate < minSteadyYawRate {
		return math.NaN(), fmt.Errorf("%w: no sustained turn (mean yaw rate %.2e rad/s)", ErrInsufficientData, meanRate)
	}
	return stat.Mean(speeds, nil) / meanRate, nil
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
