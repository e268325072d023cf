package report

import (
	"fmt"
	"math"

	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/KangHyoeun/maneuver.report/internal/maneuver"
)

// maxChartPoints caps the number of points embedded in the HTML page.
// Longer recordings are downsampled by stride.
const maxChartPoints = 4000

// trackData converts a trajectory into scatter points colored by speed.
// It returns the points, a symmetric axis bound that keeps the plot square,
// and the maximum speed for the color scale.
func trackData(tr maneuver.Trajectory) (data []opts.ScatterData, pad float64, maxSpeed float64) {
	stride := 1
	if len(tr) > maxChartPoints {
		stride = int(math.Ceil(float64(len(tr)) / float64(maxChartPoints)))
	}

	maxAbs := 0.0
	data = make([]opts.ScatterData, 0, len(tr)/stride+1)
	for i := 0; i < len(tr); i += stride {
		s := tr[i]
		if v := math.Abs(s.X); v > maxAbs {
			maxAbs = v
		}
		if v := math.Abs(s.Y); v > maxAbs {
			maxAbs = v
		}
		if s.U > maxSpeed {
			maxSpeed = s.U
		}
		data = append(data, opts.ScatterData{Value: []interface{}{s.X, s.Y, s.U}})
	}

	// Small padding so edge points stay visible.
	pad = maxAbs * 1.05
	if pad == 0 {
		pad = 1.0
	}
	if maxSpeed == 0 {
		maxSpeed = 1
	}
	return data, pad, maxSpeed
}

// seriesData converts a trajectory into a time axis plus one line series per
// extractor, sharing the track downsampling stride.
func seriesData(tr maneuver.Trajectory, value func(maneuver.Sample) float64) (axis []string, line []opts.LineData) {
	stride := 1
	if len(tr) > maxChartPoints {
		stride = int(math.Ceil(float64(len(tr)) / float64(maxChartPoints)))
	}

	axis = make([]string, 0, len(tr)/stride+1)
	line = make([]opts.LineData, 0, len(tr)/stride+1)
	for i := 0; i < len(tr); i += stride {
		axis = append(axis, fmt.Sprintf("%.1f", tr[i].T))
		line = append(line, opts.LineData{Value: value(tr[i])})
	}
	return axis, line
}
