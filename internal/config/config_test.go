package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoadAppliesDefaultsOverPartialFile(t *testing.T) {
	path := writeTempConfig(t, "world.yaml", `
world:
  name: trial-basin
vessel:
  mass: 80
trials:
  turning:
    yaw_rate: -0.4
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "trial-basin", cfg.World.Name)
	assert.Equal(t, 0.1, cfg.World.StepTime, "unset step_time keeps the default")
	assert.Equal(t, 80.0, cfg.Vessel.Mass)
	assert.Equal(t, 2.0, cfg.Vessel.Length, "unset vessel fields keep defaults")
	assert.Equal(t, -0.4, cfg.Trials.Turning.YawRate)
	assert.Equal(t, 2.0, cfg.Trials.Turning.Speed, "unset trial fields keep defaults")
	assert.Equal(t, 3.0, cfg.Trials.Stopping.Speed)
}

func TestLoadAcceptsYmlExtension(t *testing.T) {
	path := writeTempConfig(t, "world.yml", "world:\n  name: basin\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "basin", cfg.World.Name)
}

func TestLoadRejectsWrongExtension(t *testing.T) {
	path := writeTempConfig(t, "world.json", "{}")
	_, err := Load(path)
	assert.ErrorContains(t, err, ".yaml or .yml")
}

func TestLoadRejectsMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorContains(t, err, "stat")
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := writeTempConfig(t, "world.yaml", "world: [unclosed\n")
	_, err := Load(path)
	assert.ErrorContains(t, err, "parse")
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "negative step time",
			content: "world:\n  step_time: -0.5\n",
			wantErr: "step_time must be positive",
		},
		{
			name:    "step time too coarse",
			content: "world:\n  step_time: 2\n",
			wantErr: "undersamples",
		},
		{
			name:    "explicit zero mass",
			content: "vessel:\n  mass: 0\n",
			wantErr: "mass must be positive",
		},
		{
			name:    "negative stopping duration",
			content: "trials:\n  stopping:\n    duration: -3\n",
			wantErr: "must be positive",
		},
		{
			name:    "zero turning yaw rate",
			content: "trials:\n  turning:\n    yaw_rate: 0\n",
			wantErr: "yaw rate",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeTempConfig(t, "world.yaml", tc.content)
			_, err := Load(path)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestLoadRejectsOversizeFile(t *testing.T) {
	path := writeTempConfig(t, "world.yaml", strings.Repeat("# padding line\n", 80000))
	_, err := Load(path)
	assert.ErrorContains(t, err, "too large")
}

func TestSaveRoundTrips(t *testing.T) {
	cfg := Default()
	cfg.World.Name = "saved-basin"
	cfg.Trials.Turning.YawRate = -0.3

	path := filepath.Join(t.TempDir(), "world.yaml")
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

// The shipped template must spell out exactly the built-in defaults, or the
// two drift apart.
func TestCanonicalFileMatchesDefault(t *testing.T) {
	cfg, err := Load("../../" + DefaultConfigPath)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
