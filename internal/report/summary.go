package report

import (
	"fmt"
	"io"
	"math"

	"github.com/KangHyoeun/maneuver.report/internal/maneuver"
	"github.com/KangHyoeun/maneuver.report/internal/units"
)

// errWriter folds the per-line error checks of a long formatted write into
// one final error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

// WriteText renders the run summary as fixed-width text. Distances carry a
// ship-length normalization, speeds a knots conversion. Metrics whose
// thresholds were never reached render as n/a with a note line.
func WriteText(w io.Writer, s Summary) error {
	ew := &errWriter{w: w}

	if s.RunID != "" {
		ew.printf("=== maneuvering trials: %s (run %s) ===\n", s.Name, s.RunID)
	} else {
		ew.printf("=== maneuvering trials: %s ===\n", s.Name)
	}
	ew.printf("vessel length: %.1f m\n", s.ShipLength)

	if t := s.Turning; t != nil {
		ew.printf("\n--- turning circle: %.1f m/s, helm %.2f rad/s ---\n", t.Params.Speed, t.Params.YawRate)
		writeRecorded(ew, t.Trajectory)
		ew.printf("%-24s %s\n", "advance", fmtLength(t.Result.Advance, s.ShipLength))
		ew.printf("%-24s %s\n", "transfer", fmtLength(t.Result.Transfer, s.ShipLength))
		ew.printf("%-24s %s\n", "tactical diameter", fmtLength(t.Result.TacticalDiameter, s.ShipLength))
		ew.printf("%-24s %s\n", "steady turning radius", fmtLength(t.Result.SteadyTurningRadius, s.ShipLength))
		ew.printf("%-24s %s\n", "max yaw rate", fmtYawRate(t.Result.MaxYawRate))
		if !t.Result.Reached90 {
			ew.printf("%-24s %s\n", "note", "turn never reached 90 degrees")
		}
		if !t.Result.Reached180 {
			ew.printf("%-24s %s\n", "note", "turn never reached 180 degrees")
		}
		if !t.Result.Steady {
			ew.printf("%-24s %s\n", "note", "yaw rate never stabilized")
		}
	}

	if st := s.Stopping; st != nil {
		ew.printf("\n--- crash stop: full reverse from %.1f m/s ---\n", st.Params.Speed)
		writeRecorded(ew, st.Trajectory)
		if len(st.Trajectory) > 0 {
			ew.printf("%-24s %s\n", "entry speed", fmtSpeed(st.Trajectory[0].U))
		}
		ew.printf("%-24s %s\n", "stopping time", fmtSeconds(st.Result.StoppingTime))
		ew.printf("%-24s %s\n", "stopping distance", fmtLength(st.Result.StoppingDistance, s.ShipLength))
		ew.printf("%-24s %s\n", "mean deceleration", fmtRate2(st.Result.AvgDeceleration))
		if !st.Result.FullStop {
			ew.printf("%-24s %s\n", "note", "did not fully stop within the window")
		}
	}

	if a := s.Acceleration; a != nil {
		ew.printf("\n--- acceleration: ahead to %.1f m/s ---\n", a.Params.TargetSpeed)
		writeRecorded(ew, a.Trajectory)
		ew.printf("%-24s %s\n", "time to 95% target", fmtSeconds(a.Result.AccelerationTime))
		ew.printf("%-24s %s\n", "distance covered", fmtLength(a.Result.AccelerationDistance, s.ShipLength))
		ew.printf("%-24s %s\n", "mean acceleration", fmtRate2(a.Result.AvgAcceleration))
		if !a.Result.ReachedTarget {
			ew.printf("%-24s %s\n", "note", "target speed not reached within the window")
		}
	}

	return ew.err
}

func writeRecorded(ew *errWriter, tr maneuver.Trajectory) {
	ew.printf("%-24s %d samples over %.1f s\n", "recorded", len(tr), tr.Duration())
}

// fmtLength renders a distance with its ship-length normalization.
func fmtLength(v, shipLen float64) string {
	if math.IsNaN(v) {
		return "n/a"
	}
	if shipLen > 0 {
		return fmt.Sprintf("%.2f m (%.1f L)", v, v/shipLen)
	}
	return fmt.Sprintf("%.2f m", v)
}

func fmtSpeed(v float64) string {
	if math.IsNaN(v) {
		return "n/a"
	}
	return fmt.Sprintf("%.2f m/s (%.1f kn)", v, units.ConvertSpeed(v, units.KN))
}

func fmtYawRate(v float64) string {
	if math.IsNaN(v) {
		return "n/a"
	}
	return fmt.Sprintf("%.3f rad/s (%.1f deg/s)", v, units.Degrees(v))
}

func fmtSeconds(v float64) string {
	if math.IsNaN(v) {
		return "n/a"
	}
	return fmt.Sprintf("%.2f s", v)
}

// fmtRate2 renders an acceleration in m/s^2.
func fmtRate2(v float64) string {
	if math.IsNaN(v) {
		return "n/a"
	}
	return fmt.Sprintf("%.3f m/s^2", v)
}
