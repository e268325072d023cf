// Package report renders trial results for people: a plain-text summary,
// per-trajectory CSV dumps, a static ECharts HTML page, and PNG plots.
// Rendering never recomputes metrics; it formats what the maneuver package
// extracted.
package report

import (
	"github.com/KangHyoeun/maneuver.report/internal/maneuver"
	"github.com/KangHyoeun/maneuver.report/internal/trials"
)

// Summary bundles everything one run produced. Sections are nil for trials
// that were not run.
type Summary struct {
	Name       string // world name from the config
	RunID      string // short unique id for the run directory
	ShipLength float64

	Turning      *TurningSection
	Stopping     *StoppingSection
	Acceleration *AccelerationSection
}

// TurningSection pairs a turning trial's inputs with its outcome.
type TurningSection struct {
	Params     trials.TurningParams
	Result     maneuver.TurningCircleResult
	Trajectory maneuver.Trajectory
}

// StoppingSection pairs a stopping trial's inputs with its outcome.
type StoppingSection struct {
	Params     trials.StoppingParams
	Result     maneuver.StoppingResult
	Trajectory maneuver.Trajectory
}

// AccelerationSection pairs an acceleration trial's inputs with its outcome.
type AccelerationSection struct {
	Params     trials.AccelerationParams
	Result     maneuver.AccelerationResult
	Trajectory maneuver.Trajectory
}
