package report

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/KangHyoeun/maneuver.report/internal/maneuver"
)

// viridisRamp colors the track by speed, slow to fast.
var viridisRamp = []string{
	"#440154", "#482777", "#3e4989", "#31688e", "#26828e",
	"#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725",
}

// WriteChartsHTML renders one static HTML page with an interactive track
// plot and speed/yaw time series for every trial in the summary.
func WriteChartsHTML(path string, s Summary) error {
	pageTitle := fmt.Sprintf("maneuvering trials: %s", s.Name)
	page := components.NewPage()

	if t := s.Turning; t != nil {
		addTrialCharts(page, pageTitle, "turning circle", t.Trajectory)
	}
	if st := s.Stopping; st != nil {
		addTrialCharts(page, pageTitle, "crash stop", st.Trajectory)
	}
	if a := s.Acceleration; a != nil {
		addTrialCharts(page, pageTitle, "acceleration", a.Trajectory)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: create %s: %w", path, err)
	}
	if err := page.Render(f); err != nil {
		f.Close()
		return fmt.Errorf("report: render charts: %w", err)
	}
	return f.Close()
}

func addTrialCharts(page *components.Page, pageTitle, trial string, tr maneuver.Trajectory) {
	page.AddCharts(
		trackChart(pageTitle, trial, tr),
		timeSeriesChart(pageTitle, trial+": speed", "u (m/s)", tr, func(s maneuver.Sample) float64 { return s.U }),
		timeSeriesChart(pageTitle, trial+": yaw rate", "r (rad/s)", tr, func(s maneuver.Sample) float64 { return s.R }),
	)
}

// trackChart plots the ground track as a square scatter colored by speed.
func trackChart(pageTitle, trial string, tr maneuver.Trajectory) *charts.Scatter {
	data, pad, maxSpeed := trackData(tr)

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: pageTitle, Width: "700px", Height: "700px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    trial + ": track",
			Subtitle: fmt.Sprintf("%d samples, %.1f s", len(tr), tr.Duration()),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: -pad, Max: pad, Name: "x (m)", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Min: -pad, Max: pad, Name: "y (m)", NameLocation: "middle", NameGap: 30}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(maxSpeed),
			Dimension:  "2",
			InRange:    &opts.VisualMapInRange{Color: viridisRamp},
		}),
	)
	scatter.AddSeries("track", data, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 3}))
	return scatter
}

// timeSeriesChart plots one recorded quantity against trial time.
func timeSeriesChart(pageTitle, title, series string, tr maneuver.Trajectory, value func(maneuver.Sample) float64) *charts.Line {
	axis, data := seriesData(tr, value)

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: pageTitle, Width: "900px", Height: "360px"}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "t (s)", NameLocation: "middle", NameGap: 25}),
	)
	line.SetXAxis(axis).AddSeries(series, data)
	return line
}
