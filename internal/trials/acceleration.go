package trials

import (
	"fmt"

	"github.com/KangHyoeun/maneuver.report/internal/maneuver"
	"github.com/KangHyoeun/maneuver.report/internal/monitoring"
	"github.com/KangHyoeun/maneuver.report/internal/sim"
	"github.com/KangHyoeun/maneuver.report/internal/vessel"
)

// AccelerationParams configures an acceleration trial.
type AccelerationParams struct {
	TargetSpeed float64 `yaml:"target_speed"` // m/s
	Duration    float64 `yaml:"duration"`     // s, trial window
}

// DefaultAccelerationParams returns the standard acceleration run: dead stop
// to 3 m/s with a twenty second window.
func DefaultAccelerationParams() AccelerationParams {
	return AccelerationParams{TargetSpeed: 3.0, Duration: 20}
}

// Validate checks the trial window and commands.
func (p AccelerationParams) Validate() error {
	if p.TargetSpeed <= 0 {
		return fmt.Errorf("trials: acceleration target speed must be positive, got %g", p.TargetSpeed)
	}
	if p.Duration <= 0 {
		return fmt.Errorf("trials: acceleration duration must be positive, got %g", p.Duration)
	}
	return nil
}

// RunAcceleration orders the target speed from a dead stop and records the
// trajectory until the speed reaches the target threshold or the window runs
// out. The baseline sample is the resting state itself.
func RunAcceleration(w *sim.World, p AccelerationParams) (maneuver.Trajectory, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	w.Reset(vessel.State{})

	threshold := maneuver.ReachFraction * p.TargetSpeed
	tr := make(maneuver.Trajectory, 0, steps(w, p.Duration)+1)
	tr = append(tr, record(w.State(), 0))

	monitoring.Logf("acceleration trial: ahead to %.1f m/s for up to %.0f s", p.TargetSpeed, p.Duration)
	cmd := vessel.Command{Speed: p.TargetSpeed}
	for i := 0; i < steps(w, p.Duration); i++ {
		st := w.Step(cmd)
		tr = append(tr, record(st, w.Elapsed()))

		if st.Speed() >= threshold {
			monitoring.Logf("acceleration trial: reached %.0f%% of target after %.1f s",
				maneuver.ReachFraction*100, w.Elapsed())
			break
		}
	}
	return tr, nil
}
