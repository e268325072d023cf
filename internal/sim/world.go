// Package sim advances a vessel dynamics model through fixed time steps and
// tracks simulated elapsed time. Trial runners own the command sequencing;
// the world only owns state and the clock.
package sim

import (
	"errors"

	"github.com/KangHyoeun/maneuver.report/internal/vessel"
)

// Dynamics advances a vessel state by one step under a command. The vessel
// model satisfies this; tests substitute scripted implementations.
type Dynamics interface {
	Step(s vessel.State, cmd vessel.Command, dt float64) vessel.State
}

// World is a single-vessel simulation with a fixed step size. Elapsed time
// is derived from the step count, so it carries no float accumulation drift.
type World struct {
	dyn   Dynamics
	dt    float64
	state vessel.State
	steps int
}

// NewWorld returns a world at the zero state.
func NewWorld(dyn Dynamics, dt float64) (*World, error) {
	if dyn == nil {
		return nil, errors.New("sim: dynamics must not be nil")
	}
	if dt <= 0 {
		return nil, errors.New("sim: step time must be positive")
	}
	return &World{dyn: dyn, dt: dt}, nil
}

// Step advances the simulation one step under cmd and returns the new state.
func (w *World) Step(cmd vessel.Command) vessel.State {
	w.state = w.dyn.Step(w.state, cmd, w.dt)
	w.steps++
	return w.state
}

// State returns the current vessel state.
func (w *World) State() vessel.State {
	return w.state
}

// Elapsed returns the simulated time since the last reset.
func (w *World) Elapsed() float64 {
	return float64(w.steps) * w.dt
}

// StepTime returns the fixed step size.
func (w *World) StepTime() float64 {
	return w.dt
}

// Reset places the vessel at s and rewinds the clock to zero.
func (w *World) Reset(s vessel.State) {
	w.state = s
	w.steps = 0
}
