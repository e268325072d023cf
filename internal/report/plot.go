package report

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/KangHyoeun/maneuver.report/internal/maneuver"
)

var (
	trackColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	startColor = color.RGBA{R: 44, G: 160, B: 44, A: 255}
	endColor   = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	speedColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	yawColor   = color.RGBA{R: 255, G: 127, B: 14, A: 255}
)

// FormatTimestamp generates a timestamp string for directory naming.
func FormatTimestamp(t time.Time) string {
	return t.Format("20060102_150405")
}

// MakeRunDir creates an output directory for one run, named after the world
// plus a timestamp and a short unique id, and returns the directory with the
// id. The id keeps reruns within the same second from colliding.
func MakeRunDir(baseDir, name string, t time.Time) (dir, runID string, err error) {
	runID = uuid.NewString()[:8]
	dir = filepath.Join(baseDir, fmt.Sprintf("%s_%s_%s", name, FormatTimestamp(t), runID))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", fmt.Errorf("report: create run dir: %w", err)
	}
	return dir, runID, nil
}

// PlotTrack renders the ground track to a PNG with equal axis scales, so a
// circle looks like a circle. Start and end of the recording are marked.
func PlotTrack(file, title string, tr maneuver.Trajectory) error {
	if len(tr) == 0 {
		return fmt.Errorf("report: empty trajectory for %s", file)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x (m)"
	p.Y.Label.Text = "y (m)"

	pts := make(plotter.XYs, len(tr))
	minX, maxX := tr[0].X, tr[0].X
	minY, maxY := tr[0].Y, tr[0].Y
	for i, s := range tr {
		pts[i] = plotter.XY{X: s.X, Y: s.Y}
		if s.X < minX {
			minX = s.X
		}
		if s.X > maxX {
			maxX = s.X
		}
		if s.Y < minY {
			minY = s.Y
		}
		if s.Y > maxY {
			maxY = s.Y
		}
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.Color = trackColor
	line.Width = vg.Points(1)
	p.Add(line)
	p.Legend.Add("track", line)

	start, err := plotter.NewScatter(plotter.XYs{{X: tr[0].X, Y: tr[0].Y}})
	if err != nil {
		return err
	}
	start.GlyphStyle.Color = startColor
	start.GlyphStyle.Radius = vg.Points(4)
	p.Add(start)
	p.Legend.Add("start", start)

	last := tr[len(tr)-1]
	end, err := plotter.NewScatter(plotter.XYs{{X: last.X, Y: last.Y}})
	if err != nil {
		return err
	}
	end.GlyphStyle.Color = endColor
	end.GlyphStyle.Radius = vg.Points(4)
	p.Add(end)
	p.Legend.Add("end", end)

	// Equal spans on both axes keep the geometry undistorted.
	span := maxX - minX
	if s := maxY - minY; s > span {
		span = s
	}
	half := span / 2 * 1.05
	if half == 0 {
		half = 1
	}
	cx, cy := (minX+maxX)/2, (minY+maxY)/2
	p.X.Min, p.X.Max = cx-half, cx+half
	p.Y.Min, p.Y.Max = cy-half, cy+half

	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10

	return p.Save(8*vg.Inch, 8*vg.Inch, file)
}

// PlotSpeed renders speed over ground against trial time to a PNG.
func PlotSpeed(file, title string, tr maneuver.Trajectory) error {
	return plotSeries(file, title, "u (m/s)", speedColor, tr, func(s maneuver.Sample) float64 { return s.U })
}

// PlotYawRate renders yaw rate against trial time to a PNG.
func PlotYawRate(file, title string, tr maneuver.Trajectory) error {
	return plotSeries(file, title, "r (rad/s)", yawColor, tr, func(s maneuver.Sample) float64 { return s.R })
}

// plotSeries renders one recorded signal against trial time, one file per
// signal.
func plotSeries(file, title, yLabel string, c color.Color, tr maneuver.Trajectory, value func(maneuver.Sample) float64) error {
	if len(tr) == 0 {
		return fmt.Errorf("report: empty trajectory for %s", file)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "t (s)"
	p.Y.Label.Text = yLabel

	pts := make(plotter.XYs, len(tr))
	for i, s := range tr {
		pts[i] = plotter.XY{X: s.T, Y: value(s)}
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.Color = c
	line.Width = vg.Points(1)
	p.Add(line)
	p.Legend.Add(yLabel, line)

	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10

	return p.Save(14*vg.Inch, 6*vg.Inch, file)
}
