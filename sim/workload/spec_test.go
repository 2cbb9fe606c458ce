package workload

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kernel-sim/kernel-sim/sim"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadWorkloadSpec_ValidYAML_LoadsCorrectly(t *testing.T) {
	path := writeFile(t, "w.yaml", `
version: "1"
processes:
  - pid: 1
    arrival_time: 0
    cpu_time: 5
    priority: 1
  - pid: 2
    arrival_time: 2
    cpu_time: 3
    io_frequency: 1
    io_duration: 2
    size: 120
`)
	spec, err := LoadWorkloadSpec(path)
	require.NoError(t, err)
	assert.Equal(t, "1", spec.Version)
	assert.Equal(t, []sim.WorkloadEntry{
		{PID: 1, CPUTime: 5, Priority: 1},
		{PID: 2, ArrivalTime: 2, CPUTime: 3, IOFrequency: 1, IODuration: 2, Size: 120},
	}, spec.Processes)
}

func TestLoadWorkloadSpec_DefaultsVersion(t *testing.T) {
	spec, err := LoadWorkloadSpec(writeFile(t, "w.yaml", "processes:\n  - {pid: 1, cpu_time: 1}\n"))
	require.NoError(t, err)
	assert.Equal(t, "1", spec.Version)
}

func TestLoadWorkloadSpec_UnknownKey_Rejected(t *testing.T) {
	// GIVEN a typo in a process field
	path := writeFile(t, "w.yaml", "processes:\n  - {pid: 1, cpu_tme: 4}\n")

	// WHEN loaded
	_, err := LoadWorkloadSpec(path)

	// THEN strict parsing rejects it
	assert.Error(t, err)
}

func TestLoad_DispatchesOnExtension(t *testing.T) {
	textPath := writeFile(t, "w.txt", "1 0 5 0 0 1 0\n")
	yamlPath := writeFile(t, "w.yml", "processes:\n  - {pid: 1, cpu_time: 5, priority: 1}\n")

	fromText, err := Load(textPath)
	require.NoError(t, err)
	fromYAML, err := Load(yamlPath)
	require.NoError(t, err)

	assert.Equal(t, fromText, fromYAML)
}

func TestLoad_TextErrorNamesFile(t *testing.T) {
	path := writeFile(t, "bad.txt", "1 2 3\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestLoad_ExampleWorkloads(t *testing.T) {
	// GIVEN the bundled example workloads
	for _, name := range []string{"workload.txt", "workload.yaml"} {
		t.Run(name, func(t *testing.T) {
			entries, err := Load(filepath.Join("..", "..", "examples", name))
			require.NoError(t, err)

			// THEN they are valid under both memory layouts
			assert.NotEmpty(t, entries)
			for _, mode := range []string{sim.MemoryLayoutA, sim.MemoryLayoutB} {
				table, err := sim.NewPartitionTableForMode(mode)
				require.NoError(t, err)
				assert.NoError(t, sim.ValidateWorkload(entries, table), mode)
			}
		})
	}
}
