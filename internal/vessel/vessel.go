// Package vessel implements a three degree of freedom planar dynamics model
// of a small unmanned surface vehicle. The model is deliberately simple: it
// exists to produce physically plausible trajectories for maneuvering trials,
// not to match a specific hull.
//
// Per integration step the model:
//
//  1. Converts the commanded surge speed to a feedforward thrust that would
//     hold that speed against drag, clamped to the available thrust.
//  2. Integrates surge against linear-plus-quadratic drag, with the sway/yaw
//     product feeding back so the hull slows down in a turn.
//  3. Drives sway from the turn (the hull side-slips outward) against heavy
//     sway damping.
//  4. Tracks the commanded yaw rate with a first order lag, clamped to the
//     achievable rate.
//  5. Advances world position from the body-frame velocities and wraps the
//     heading to (-pi, pi].
//
// Integration is classical fourth order Runge-Kutta with the command held
// constant across the step.
package vessel

import (
	"fmt"
	"math"
)

// Params holds the physical coefficients of the model. All values are SI.
type Params struct {
	Mass   float64 `yaml:"mass"`   // kg
	Length float64 `yaml:"length"` // m, used for normalizing reported distances

	LinearDrag float64 `yaml:"linear_drag"` // N per m/s of surge
	QuadDrag   float64 `yaml:"quad_drag"`   // N per (m/s)^2 of surge

	SwayDrag     float64 `yaml:"sway_drag"`     // N per m/s of sway
	SwayCoupling float64 `yaml:"sway_coupling"` // sway forcing per unit u*r

	MaxThrust  float64 `yaml:"max_thrust"`   // N
	MaxSpeed   float64 `yaml:"max_speed"`    // m/s, command clamp
	MaxYawRate float64 `yaml:"max_yaw_rate"` // rad/s, command clamp

	YawTimeConstant float64 `yaml:"yaw_time_constant"` // s, first order yaw response
}

// DefaultParams returns coefficients for a roughly 2 m, 62 kg survey USV.
// Top speed works out near 3.2 m/s, with full reverse stopping the hull from
// cruise in a few seconds.
func DefaultParams() Params {
	return Params{
		Mass:            62,
		Length:          2.0,
		LinearDrag:      6,
		QuadDrag:        3.5,
		SwayDrag:        25,
		SwayCoupling:    0.08,
		MaxThrust:       60,
		MaxSpeed:        3.2,
		MaxYawRate:      0.7,
		YawTimeConstant: 1.2,
	}
}

// Validate checks that the coefficients describe a usable vessel.
func (p Params) Validate() error {
	checks := []struct {
		name string
		v    float64
	}{
		{"mass", p.Mass},
		{"length", p.Length},
		{"linear_drag", p.LinearDrag},
		{"quad_drag", p.QuadDrag},
		{"sway_drag", p.SwayDrag},
		{"max_thrust", p.MaxThrust},
		{"max_speed", p.MaxSpeed},
		{"max_yaw_rate", p.MaxYawRate},
		{"yaw_time_constant", p.YawTimeConstant},
	}
	for _, c := range checks {
		if c.v <= 0 {
			return fmt.Errorf("vessel: %s must be positive, got %g", c.name, c.v)
		}
	}
	if p.SwayCoupling < 0 {
		return fmt.Errorf("vessel: sway_coupling must be non-negative, got %g", p.SwayCoupling)
	}
	return nil
}

// State is the full vessel state: world-frame pose plus body-frame
// velocities. Psi is wrapped to (-pi, pi].
type State struct {
	X   float64 // m, world frame
	Y   float64 // m, world frame
	Psi float64 // rad, heading
	U   float64 // m/s, surge (body forward)
	V   float64 // m/s, sway (body port-positive)
	R   float64 // rad/s, yaw rate
}

// Speed returns the magnitude of the body-frame velocity.
func (s State) Speed() float64 {
	return math.Hypot(s.U, s.V)
}

// Command is the helm input held constant over a simulation step. Speed is
// the desired surge speed (negative for astern thrust), YawRate the desired
// turn rate (positive to port).
type Command struct {
	Speed   float64
	YawRate float64
}

// Model steps vessel state forward in time. Stepping is a pure function of
// (state, command, dt), so independent simulations can share one Model.
type Model struct {
	p Params
}

// New returns a Model for the given coefficients.
func New(p Params) (*Model, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Model{p: p}, nil
}

// Params returns the coefficients the model was built with.
func (m *Model) Params() Params {
	return m.p
}

// Step advances the state by dt under the given command using RK4.
func (m *Model) Step(s State, cmd Command, dt float64) State {
	k1 := m.deriv(s, cmd)
	k2 := m.deriv(shift(s, k1, dt/2), cmd)
	k3 := m.deriv(shift(s, k2, dt/2), cmd)
	k4 := m.deriv(shift(s, k3, dt), cmd)

	next := State{
		X:   s.X + dt/6*(k1.X+2*k2.X+2*k3.X+k4.X),
		Y:   s.Y + dt/6*(k1.Y+2*k2.Y+2*k3.Y+k4.Y),
		Psi: s.Psi + dt/6*(k1.Psi+2*k2.Psi+2*k3.Psi+k4.Psi),
		U:   s.U + dt/6*(k1.U+2*k2.U+2*k3.U+k4.U),
		V:   s.V + dt/6*(k1.V+2*k2.V+2*k3.V+k4.V),
		R:   s.R + dt/6*(k1.R+2*k2.R+2*k3.R+k4.R),
	}
	next.Psi = wrapAngle(next.Psi)
	return next
}

// deriv returns the state time-derivative, reusing State as the carrier.
func (m *Model) deriv(s State, cmd Command) State {
	p := m.p

	drag := p.LinearDrag*s.U + p.QuadDrag*s.U*math.Abs(s.U)
	du := (m.thrust(cmd.Speed)-drag)/p.Mass + s.V*s.R

	dv := -p.SwayDrag/p.Mass*s.V - p.SwayCoupling*s.U*s.R

	rCmd := clamp(cmd.YawRate, -p.MaxYawRate, p.MaxYawRate)
	dr := (rCmd - s.R) / p.YawTimeConstant

	sin, cos := math.Sincos(s.Psi)
	return State{
		X:   s.U*cos - s.V*sin,
		Y:   s.U*sin + s.V*cos,
		Psi: s.R,
		U:   du,
		V:   dv,
		R:   dr,
	}
}

// thrust converts a commanded surge speed to the feedforward thrust that
// would hold it in steady state, clamped to the available thrust.
func (m *Model) thrust(speedCmd float64) float64 {
	p := m.p
	c := clamp(speedCmd, -p.MaxSpeed, p.MaxSpeed)
	t := p.LinearDrag*c + p.QuadDrag*c*math.Abs(c)
	return clamp(t, -p.MaxThrust, p.MaxThrust)
}

// shift returns s advanced by the derivative d over h, for the RK4 stages.
func shift(s State, d State, h float64) State {
	return State{
		X:   s.X + h*d.X,
		Y:   s.Y + h*d.Y,
		Psi: s.Psi + h*d.Psi,
		U:   s.U + h*d.U,
		V:   s.V + h*d.V,
		R:   s.R + h*d.R,
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func wrapAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
