package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadScenario(t *testing.T) {
	// Phases run in order on the shared flag set: defaults first, then
	// flag overrides, then an explicit scenario file.
	scenarioPath = ""
	spec, err := loadScenario(runCmd)
	require.NoError(t, err)
	assert.Len(t, spec.Stations, 4, "empty path falls back to the built-in deployment")
	assert.Equal(t, 50, spec.UEs.Count)

	require.NoError(t, runCmd.Flags().Set("ticks", "3"))
	require.NoError(t, runCmd.Flags().Set("ues", "5"))
	require.NoError(t, runCmd.Flags().Set("seed", "99"))
	spec, err = loadScenario(runCmd)
	require.NoError(t, err)
	assert.Equal(t, 3, spec.Ticks)
	assert.Equal(t, 5, spec.UEs.Count)
	assert.Equal(t, int64(99), spec.Seed)

	path := filepath.Join(t.TempDir(), "scenario.yaml")
	content := `
seed: 1
ticks: 2
stations:
  - {id: 1, x: 0, y: 0, frequency_hz: 600.0e6, tx_power_dbm: 40}
slices:
  - {id: 1, class: eMBB, priority: 0.7, capacity_mhz: 100}
ues:
  count: 4
  class_weights: {eMBB: 1}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	scenarioPath = path
	spec, err = loadScenario(runCmd)
	require.NoError(t, err)
	assert.Len(t, spec.Stations, 1)
	// Changed flags still override a loaded file.
	assert.Equal(t, 3, spec.Ticks)
	assert.Equal(t, 5, spec.UEs.Count)
}

func TestLoadScenario_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("slices: []"), 0o644))
	scenarioPath = path

	_, err := loadScenario(runCmd)
	assert.Error(t, err)
}
