// Package testutil provides shared synthetic-trajectory fixtures.
//
// The builders produce analytically exact trajectories so tests can assert
// extracted metrics against closed-form expectations instead of recorded
// golden data.
package testutil

import (
	"math"

	"github.com/KangHyoeun/maneuver.report/internal/maneuver"
)

// Circle returns a constant-rate turn of radius r entered at the origin with
// initial heading psi0, sampled every dt for n samples. Positive omega turns
// to port, negative to starboard; omega must be non-zero. Headings are
// recorded wrapped to (-pi, pi], so consumers must unwrap.
func Circle(r, omega, psi0, dt float64, n int) maneuver.Trajectory {
	speed := math.Abs(r * omega)
	rho := speed / omega // signed radius, matches the turn direction
	tr := make(maneuver.Trajectory, 0, n)
	for i := 0; i < n; i++ {
		t := float64(i) * dt
		psi := psi0 + omega*t
		tr = append(tr, maneuver.Sample{
			T:   t,
			X:   rho * (math.Sin(psi) - math.Sin(psi0)),
			Y:   -rho * (math.Cos(psi) - math.Cos(psi0)),
			Psi: maneuver.WrapAngle(psi),
			U:   speed,
			R:   omega,
		})
	}
	return tr
}

// StraightLine returns constant-speed straight-line motion on the given
// heading, sampled every dt for n samples.
func StraightLine(speed, heading, dt float64, n int) maneuver.Trajectory {
	sin, cos := math.Sincos(heading)
	tr := make(maneuver.Trajectory, 0, n)
	for i := 0; i < n; i++ {
		t := float64(i) * dt
		tr = append(tr, maneuver.Sample{
			T:   t,
			X:   speed * t * cos,
			Y:   speed * t * sin,
			Psi: maneuver.WrapAngle(heading),
			U:   speed,
		})
	}
	return tr
}

// LinearDecel returns straight-line motion along +x with speed falling
// linearly from u0 to 0 over duration total, sampled every dt from t=0 to
// t=total inclusive. Positions are the exact integral of the speed profile.
func LinearDecel(u0, total, dt float64) maneuver.Trajectory {
	n := int(math.Round(total/dt)) + 1
	tr := make(maneuver.Trajectory, 0, n)
	for i := 0; i < n; i++ {
		t := float64(i) * dt
		u := u0 * (1 - t/total)
		if u < 0 {
			u = 0
		}
		tr = append(tr, maneuver.Sample{
			T: t,
			X: u0*t - u0*t*t/(2*total),
			U: u,
		})
	}
	return tr
}

// LinearAccel returns straight-line motion along +x with speed rising
// linearly from 0 to uf over duration total, sampled every dt from t=0 to
// t=total inclusive. Positions are the exact integral of the speed profile.
func LinearAccel(uf, total, dt float64) maneuver.Trajectory {
	n := int(math.Round(total/dt)) + 1
	tr := make(maneuver.Trajectory, 0, n)
	for i := 0; i < n; i++ {
		t := float64(i) * dt
		tr = append(tr, maneuver.Sample{
			T: t,
			X: uf * t * t / (2 * total),
			U: uf * t / total,
		})
	}
	return tr
}
