package trials

import (
	"fmt"
	"math"

	"github.com/KangHyoeun/maneuver.report/internal/maneuver"
	"github.com/KangHyoeun/maneuver.report/internal/monitoring"
	"github.com/KangHyoeun/maneuver.report/internal/sim"
	"github.com/KangHyoeun/maneuver.report/internal/vessel"
)

// turningSpinUp is how long the vessel runs straight before the helm goes
// over, so the turn is entered at speed rather than from rest.
const turningSpinUp = 5.0

// TurningParams configures a turning circle trial.
type TurningParams struct {
	Speed    float64 `yaml:"speed"`    // m/s, approach and turn speed command
	YawRate  float64 `yaml:"yaw_rate"` // rad/s, positive to port, negative to starboard
	Duration float64 `yaml:"duration"` // s, turn phase window
}

// DefaultTurningParams returns the standard turning trial: 2 m/s approach
// with a 0.5 rad/s port turn, capped at one minute.
func DefaultTurningParams() TurningParams {
	return TurningParams{Speed: 2.0, YawRate: 0.5, Duration: 60}
}

// Validate checks the trial window and commands.
func (p TurningParams) Validate() error {
	if p.Speed <= 0 {
		return fmt.Errorf("trials: turning speed must be positive, got %g", p.Speed)
	}
	if p.YawRate == 0 {
		return fmt.Errorf("trials: turning yaw rate must be non-zero")
	}
	if p.Duration <= 0 {
		return fmt.Errorf("trials: turning duration must be positive, got %g", p.Duration)
	}
	return nil
}

// RunTurningCircle drives the vessel straight to speed, then holds a
// constant turn command and records the trajectory. Recording stops early
// once the heading has swept a full circle past the baseline.
func RunTurningCircle(w *sim.World, p TurningParams) (maneuver.Trajectory, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	w.Reset(vessel.State{})

	monitoring.Logf("turning trial: spin-up %.0f s at %.1f m/s", turningSpinUp, p.Speed)
	for i := 0; i < steps(w, turningSpinUp); i++ {
		w.Step(vessel.Command{Speed: p.Speed})
	}

	t0 := w.Elapsed()
	tr := make(maneuver.Trajectory, 0, steps(w, p.Duration)+1)
	tr = append(tr, record(w.State(), 0))

	monitoring.Logf("turning trial: helm over at %.2f rad/s for up to %.0f s", p.YawRate, p.Duration)
	cmd := vessel.Command{Speed: p.Speed, YawRate: p.YawRate}
	prevPsi := w.State().Psi
	swept := 0.0
	for i := 0; i < steps(w, p.Duration); i++ {
		st := w.Step(cmd)
		tr = append(tr, record(st, w.Elapsed()-t0))

		swept += maneuver.WrapAngle(st.Psi - prevPsi)
		prevPsi = st.Psi
		if math.Abs(swept) >= 2*math.Pi {
			monitoring.Logf("turning trial: full circle after %.1f s", w.Elapsed()-t0)
			break
		}
	}
	return tr, nil
}
