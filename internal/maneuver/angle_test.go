package maneuver

import (
	"math"
	"testing"
)

func TestWrapAngle(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want float64
	}{
		{"zero", 0, 0},
		{"inRange", 1.5, 1.5},
		{"negInRange", -1.5, -1.5},
		{"justOverPi", math.Pi + 0.1, -math.Pi + 0.1},
		{"justUnderMinusPi", -math.Pi - 0.1, math.Pi - 0.1},
		{"fullTurn", 2 * math.Pi, 0},
		{"threeTurns", 6*math.Pi + 0.25, 0.25},
		{"minusPiMapsToPi", -math.Pi, math.Pi},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := WrapAngle(tc.in)
			if math.Abs(got-tc.want) > 1e-12 {
				t.Fatalf("WrapAngle(%v)=%v want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestUnwrapHeadings_CrossesDiscontinuity(t *testing.T) {
	// Port turn crossing +pi: wrapped samples jump from +3.1 to -3.08 while
	// the continuous heading keeps increasing.
	tr := Trajectory{
		{Psi: 3.0},
		{Psi: 3.1},
		{Psi: -3.08},
		{Psi: -2.9},
	}
	got := unwrapHeadings(tr)
	want := []float64{3.0, 3.1, 2*math.Pi - 3.08, 2*math.Pi - 2.9}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Fatalf("unwrapped[%d]=%v want %v", i, got[i], want[i])
		}
	}
}

func TestUnwrapHeadings_MultipleRevolutions(t *testing.T) {
	// Constant-rate turn recorded wrapped; the unwrapped series must recover
	// the full accumulated angle across several revolutions.
	const step = 0.2
	const n = 100 // 20 rad total, just over three revolutions
	tr := make(Trajectory, n)
	for i := range tr {
		tr[i] = Sample{Psi: WrapAngle(float64(i) * step)}
	}
	got := unwrapHeadings(tr)
	for i := range tr {
		want := float64(i) * step
		if math.Abs(got[i]-want) > 1e-9 {
			t.Fatalf("unwrapped[%d]=%v want %v", i, got[i], want)
		}
	}
}

func TestUnwrapHeadings_StarboardTurn(t *testing.T) {
	const step = -0.3
	const n = 50
	tr := make(Trajectory, n)
	for i := range tr {
		tr[i] = Sample{Psi: WrapAngle(1.0 + float64(i)*step)}
	}
	got := unwrapHeadings(tr)
	for i := range tr {
		want := 1.0 + float64(i)*step
		if math.Abs(got[i]-want) > 1e-9 {
			t.Fatalf("unwrapped[%d]=%v want %v", i, got[i], want)
		}
	}
}
