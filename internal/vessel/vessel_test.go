package vessel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	m, err := New(DefaultParams())
	require.NoError(t, err)
	return m
}

func TestDefaultParamsValidate(t *testing.T) {
	require.NoError(t, DefaultParams().Validate())
}

func TestValidateRejectsBadParams(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Params)
	}{
		{"zero mass", func(p *Params) { p.Mass = 0 }},
		{"negative drag", func(p *Params) { p.LinearDrag = -1 }},
		{"zero max thrust", func(p *Params) { p.MaxThrust = 0 }},
		{"negative sway coupling", func(p *Params) { p.SwayCoupling = -0.1 }},
		{"zero yaw time constant", func(p *Params) { p.YawTimeConstant = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := DefaultParams()
			tc.mutate(&p)
			_, err := New(p)
			assert.Error(t, err)
		})
	}
}

func TestStepAcceleratesTowardCommandedSpeed(t *testing.T) {
	m := newTestModel(t)
	cmd := Command{Speed: 3.0}

	var s State
	prev := 0.0
	for i := 0; i < 600; i++ {
		s = m.Step(s, cmd, 0.1)
		if s.U < prev-1e-12 {
			t.Fatalf("surge speed regressed at step %d: %v -> %v", i, prev, s.U)
		}
		prev = s.U
	}
	// Feedforward thrust holds exactly the commanded speed in steady state.
	assert.InDelta(t, 3.0, s.U, 0.01)
}

func TestStepFullReverseStopsTheHull(t *testing.T) {
	m := newTestModel(t)

	var s State
	for i := 0; i < 100; i++ {
		s = m.Step(s, Command{Speed: 3.0}, 0.1)
	}
	require.Greater(t, s.U, 2.5, "spin-up should approach cruise")

	stopped := false
	for i := 0; i < 50; i++ {
		s = m.Step(s, Command{Speed: -3.0}, 0.1)
		if s.Speed() < 0.06 {
			stopped = true
			break
		}
	}
	assert.True(t, stopped, "full reverse should stop the hull within 5 s")
}

func TestStepYawRateClampedAndConverges(t *testing.T) {
	m := newTestModel(t)
	max := DefaultParams().MaxYawRate
	cmd := Command{Speed: 2.0, YawRate: 2.0} // well above the clamp

	var s State
	for i := 0; i < 100; i++ {
		s = m.Step(s, cmd, 0.1)
		if math.Abs(s.R) > max+1e-9 {
			t.Fatalf("yaw rate %v exceeds clamp %v at step %d", s.R, max, i)
		}
	}
	assert.InDelta(t, max, s.R, 1e-3)
}

func TestStepStraightLineHoldsHeading(t *testing.T) {
	m := newTestModel(t)
	cmd := Command{Speed: 2.0}

	s := State{Psi: 0.5}
	for i := 0; i < 200; i++ {
		s = m.Step(s, cmd, 0.1)
	}
	assert.InDelta(t, 0.5, s.Psi, 1e-12)
	assert.InDelta(t, 0.0, s.V, 1e-12)
	assert.InDelta(t, 0.5, math.Atan2(s.Y, s.X), 1e-9, "track must follow the heading")
}

func TestStepTurnSlowsTheHullAndWrapsHeading(t *testing.T) {
	m := newTestModel(t)
	cmd := Command{Speed: 2.0, YawRate: 0.5}

	var s State
	for i := 0; i < 600; i++ {
		s = m.Step(s, cmd, 0.1)
		if s.Psi > math.Pi || s.Psi <= -math.Pi {
			t.Fatalf("heading %v left (-pi, pi] at step %d", s.Psi, i)
		}
	}
	// Drag from side-slip bleeds speed in a sustained turn.
	speed := s.Speed()
	assert.Less(t, speed, 1.9)
	assert.Greater(t, speed, 1.5)

	radius := speed / math.Abs(s.R)
	assert.Greater(t, radius, 3.0)
	assert.Less(t, radius, 4.2)
}

func TestStepIsPure(t *testing.T) {
	m := newTestModel(t)
	s := State{X: 1, Y: 2, Psi: 0.3, U: 1.5, V: -0.1, R: 0.2}
	cmd := Command{Speed: 2.5, YawRate: -0.4}

	a := m.Step(s, cmd, 0.1)
	b := m.Step(s, cmd, 0.1)
	assert.Equal(t, a, b)
}
