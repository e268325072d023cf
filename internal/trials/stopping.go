package trials

import (
	"fmt"

	"github.com/KangHyoeun/maneuver.report/internal/maneuver"
	"github.com/KangHyoeun/maneuver.report/internal/monitoring"
	"github.com/KangHyoeun/maneuver.report/internal/sim"
	"github.com/KangHyoeun/maneuver.report/internal/vessel"
)

// stoppingSpinUp is how long the vessel builds up to cruise before the
// full-reverse order. Longer than the turning spin-up so the baseline speed
// sits close to the command.
const stoppingSpinUp = 10.0

// StoppingParams configures a crash stop trial.
type StoppingParams struct {
	Speed    float64 `yaml:"speed"`    // m/s, cruise speed before the reverse order
	Duration float64 `yaml:"duration"` // s, reverse phase window
}

// DefaultStoppingParams returns the standard crash stop: full reverse from
// a 3 m/s cruise, capped at half a minute.
func DefaultStoppingParams() StoppingParams {
	return StoppingParams{Speed: 3.0, Duration: 30}
}

// Validate checks the trial window and commands.
func (p StoppingParams) Validate() error {
	if p.Speed <= 0 {
		return fmt.Errorf("trials: stopping speed must be positive, got %g", p.Speed)
	}
	if p.Duration <= 0 {
		return fmt.Errorf("trials: stopping duration must be positive, got %g", p.Duration)
	}
	return nil
}

// RunStopping brings the vessel to cruise, orders full reverse, and records
// the trajectory until the speed falls to the stop threshold or the window
// runs out.
func RunStopping(w *sim.World, p StoppingParams) (maneuver.Trajectory, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	w.Reset(vessel.State{})

	monitoring.Logf("stopping trial: spin-up %.0f s at %.1f m/s", stoppingSpinUp, p.Speed)
	for i := 0; i < steps(w, stoppingSpinUp); i++ {
		w.Step(vessel.Command{Speed: p.Speed})
	}

	t0 := w.Elapsed()
	baseline := w.State()
	eps := baseline.Speed() * maneuver.StopSpeedFraction
	tr := make(maneuver.Trajectory, 0, steps(w, p.Duration)+1)
	tr = append(tr, record(baseline, 0))

	monitoring.Logf("stopping trial: full reverse from %.2f m/s", baseline.Speed())
	cmd := vessel.Command{Speed: -p.Speed}
	for i := 0; i < steps(w, p.Duration); i++ {
		st := w.Step(cmd)
		tr = append(tr, record(st, w.Elapsed()-t0))

		if st.Speed() <= eps {
			monitoring.Logf("stopping trial: stopped after %.1f s", w.Elapsed()-t0)
			break
		}
	}
	return tr, nil
}
