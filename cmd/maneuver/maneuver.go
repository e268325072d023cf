// Command maneuver runs the standard maneuvering trials against a simulated
// vessel and reports the extracted metrics. The text summary goes to stdout;
// CSV dumps, PNG plots, and an interactive HTML page go to a timestamped run
// directory.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/KangHyoeun/maneuver.report/internal/config"
	"github.com/KangHyoeun/maneuver.report/internal/maneuver"
	"github.com/KangHyoeun/maneuver.report/internal/monitoring"
	"github.com/KangHyoeun/maneuver.report/internal/report"
	"github.com/KangHyoeun/maneuver.report/internal/sim"
	"github.com/KangHyoeun/maneuver.report/internal/trials"
	"github.com/KangHyoeun/maneuver.report/internal/version"
	"github.com/KangHyoeun/maneuver.report/internal/vessel"
)

var (
	configPath  = flag.String("config", "", "World config YAML; defaults apply when empty")
	outDir      = flag.String("out", "runs", "Base directory for run artifacts")
	trialNames  = flag.String("trials", "turning,stopping,acceleration", "Comma-separated trials to run")
	writeCSV    = flag.Bool("csv", true, "Write per-trial trajectory CSVs")
	writePlots  = flag.Bool("plots", true, "Write PNG plots")
	writeCharts = flag.Bool("charts", true, "Write the interactive HTML chart page")
	quiet       = flag.Bool("quiet", false, "Suppress progress logging")
	showVersion = flag.Bool("version", false, "Print version and exit")
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}
	if *quiet {
		monitoring.Mute()
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	selected, err := parseTrials(*trialNames)
	if err != nil {
		log.Fatalf("Invalid -trials: %v", err)
	}

	model, err := vessel.New(cfg.Vessel)
	if err != nil {
		log.Fatalf("Invalid vessel parameters: %v", err)
	}
	world, err := sim.NewWorld(model, cfg.World.StepTime)
	if err != nil {
		log.Fatalf("Failed to build world: %v", err)
	}

	summary := report.Summary{
		Name:       cfg.World.Name,
		ShipLength: cfg.Vessel.Length,
	}

	needDir := *writeCSV || *writePlots || *writeCharts
	var runDir string
	if needDir {
		runDir, summary.RunID, err = report.MakeRunDir(*outDir, cfg.World.Name, time.Now())
		if err != nil {
			log.Fatalf("Failed to create run directory: %v", err)
		}
		if err := cfg.Save(filepath.Join(runDir, "world.yaml")); err != nil {
			log.Fatalf("Failed to record config: %v", err)
		}
	}

	for _, trial := range selected {
		switch trial {
		case "turning":
			tr, err := trials.RunTurningCircle(world, cfg.Trials.Turning)
			if err != nil {
				log.Fatalf("Turning trial failed: %v", err)
			}
			res, err := maneuver.TurningCircle(tr)
			if err != nil {
				log.Fatalf("Turning metrics failed: %v", err)
			}
			summary.Turning = &report.TurningSection{Params: cfg.Trials.Turning, Result: res, Trajectory: tr}
		case "stopping":
			tr, err := trials.RunStopping(world, cfg.Trials.Stopping)
			if err != nil {
				log.Fatalf("Stopping trial failed: %v", err)
			}
			res, err := maneuver.Stopping(tr)
			if err != nil {
				log.Fatalf("Stopping metrics failed: %v", err)
			}
			summary.Stopping = &report.StoppingSection{Params: cfg.Trials.Stopping, Result: res, Trajectory: tr}
		case "acceleration":
			tr, err := trials.RunAcceleration(world, cfg.Trials.Acceleration)
			if err != nil {
				log.Fatalf("Acceleration trial failed: %v", err)
			}
			res, err := maneuver.Acceleration(tr, cfg.Trials.Acceleration.TargetSpeed)
			if err != nil {
				log.Fatalf("Acceleration metrics failed: %v", err)
			}
			summary.Acceleration = &report.AccelerationSection{Params: cfg.Trials.Acceleration, Result: res, Trajectory: tr}
		}
	}

	if err := report.WriteText(os.Stdout, summary); err != nil {
		log.Fatalf("Failed to write summary: %v", err)
	}

	if needDir {
		if err := writeArtifacts(runDir, summary); err != nil {
			log.Fatalf("Failed to write run artifacts: %v", err)
		}
		monitoring.Logf("run artifacts in %s", runDir)
	}
}

// parseTrials validates the -trials list, preserving order and dropping
// duplicates.
func parseTrials(s string) ([]string, error) {
	known := map[string]bool{"turning": true, "stopping": true, "acceleration": true}
	seen := map[string]bool{}
	var out []string
	for _, part := range strings.Split(s, ",") {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		if !known[name] {
			return nil, fmt.Errorf("unknown trial %q (want turning, stopping, or acceleration)", name)
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no trials selected")
	}
	return out, nil
}

// writeArtifacts dumps every recorded trajectory plus plots and charts into
// the run directory.
func writeArtifacts(dir string, s report.Summary) error {
	type artifact struct {
		name string
		tr   maneuver.Trajectory
	}
	var arts []artifact
	if s.Turning != nil {
		arts = append(arts, artifact{"turning", s.Turning.Trajectory})
	}
	if s.Stopping != nil {
		arts = append(arts, artifact{"stopping", s.Stopping.Trajectory})
	}
	if s.Acceleration != nil {
		arts = append(arts, artifact{"acceleration", s.Acceleration.Trajectory})
	}

	for _, a := range arts {
		if *writeCSV {
			if err := report.WriteTrajectoryCSV(filepath.Join(dir, a.name+".csv"), a.tr); err != nil {
				return err
			}
		}
		if *writePlots {
			if err := report.PlotTrack(filepath.Join(dir, a.name+"_track.png"), a.name+" track", a.tr); err != nil {
				return err
			}
			if err := report.PlotSpeed(filepath.Join(dir, a.name+"_speed.png"), a.name+" speed", a.tr); err != nil {
				return err
			}
			if err := report.PlotYawRate(filepath.Join(dir, a.name+"_yaw.png"), a.name+" yaw rate", a.tr); err != nil {
				return err
			}
		}
	}
	if *writeCharts {
		if err := report.WriteChartsHTML(filepath.Join(dir, "charts.html"), s); err != nil {
			return err
		}
	}
	return nil
}
