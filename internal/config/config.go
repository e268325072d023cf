// Package config loads the world description for a trial run: simulation
// step size, vessel coefficients, and the parameters of each maneuvering
// trial. Fields omitted from the file retain their defaults, so partial
// configs are safe.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/KangHyoeun/maneuver.report/internal/trials"
	"github.com/KangHyoeun/maneuver.report/internal/vessel"
)

// DefaultConfigPath is the path to the canonical world file. It spells out
// every value Default returns, so edits can start from a complete file.
const DefaultConfigPath = "config/world.defaults.yaml"

// Config is the root of the world file.
type Config struct {
	World  World         `yaml:"world"`
	Vessel vessel.Params `yaml:"vessel"`
	Trials Trials        `yaml:"trials"`
}

// World holds the simulation loop settings.
type World struct {
	// Name labels report output and file names for the run.
	Name string `yaml:"name"`
	// StepTime is the fixed integration step in seconds.
	StepTime float64 `yaml:"step_time"`
}

// Trials holds the per-trial parameters.
type Trials struct {
	Turning      trials.TurningParams      `yaml:"turning"`
	Stopping     trials.StoppingParams     `yaml:"stopping"`
	Acceleration trials.AccelerationParams `yaml:"acceleration"`
}

// Default returns the standard run: a 10 Hz loop over the default vessel
// with the standard trial parameters.
func Default() Config {
	return Config{
		World:  World{Name: "usv", StepTime: 0.1},
		Vessel: vessel.DefaultParams(),
		Trials: Trials{
			Turning:      trials.DefaultTurningParams(),
			Stopping:     trials.DefaultStoppingParams(),
			Acceleration: trials.DefaultAccelerationParams(),
		},
	}
}

// Load reads a world file. The file must have a .yaml or .yml extension and
// stay under the max file size. Values start from Default, so the file only
// needs to name what it changes.
func Load(path string) (Config, error) {
	cfg := Default()

	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".yaml" && ext != ".yml" {
		return cfg, fmt.Errorf("config file must have .yaml or .yml extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return cfg, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return cfg, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Save writes the full effective configuration to path, so a run directory
// records exactly what produced it.
func (c Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks the whole run description.
func (c Config) Validate() error {
	if c.World.StepTime <= 0 {
		return fmt.Errorf("world step_time must be positive, got %g", c.World.StepTime)
	}
	if c.World.StepTime > 1 {
		return fmt.Errorf("world step_time above 1 s undersamples the trials, got %g", c.World.StepTime)
	}
	if err := c.Vessel.Validate(); err != nil {
		return err
	}
	if err := c.Trials.Turning.Validate(); err != nil {
		return err
	}
	if err := c.Trials.Stopping.Validate(); err != nil {
		return err
	}
	return c.Trials.Acceleration.Validate()
}
