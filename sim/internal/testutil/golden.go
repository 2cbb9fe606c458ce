// Package testutil provides shared test infrastructure for the scheduler simulator.
// It consolidates golden dataset types and assertion helpers used across
// sim/ and cmd/ test packages. It must not import sim so that sim's own
// tests can use it.
package testutil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset represents the structure of testdata/goldendataset.json.
type GoldenDataset struct {
	Tests []GoldenTestCase `json:"tests"`
}

// GoldenTestCase is one hand-traced simulation scenario.
type GoldenTestCase struct {
	Name      string `json:"name"`
	Scheduler string `json:"scheduler"`
	Quantum   int64  `json:"quantum"`
	Memory    string `json:"memory"`
	// Processes are workload 7-tuples:
	// pid, arrival, cpu time, io frequency, io duration, priority, size.
	Processes   [][7]int64         `json:"processes"`
	Transitions []GoldenTransition `json:"transitions"`
	Metrics     GoldenMetrics      `json:"metrics"`
}

// GoldenTransition is one expected event-log line.
type GoldenTransition struct {
	Clock int64  `json:"clock"`
	PID   int    `json:"pid"`
	Kind  string `json:"kind"`
}

// GoldenMetrics represents the expected summary of a golden test case.
type GoldenMetrics struct {
	// Exact match metrics (integers)
	FinalTick   int64 `json:"final_tick"`
	TotalWait   int64 `json:"total_wait"`
	IOEvents    int64 `json:"io_events"`
	Preemptions int64 `json:"preemptions"`
	Allocations int   `json:"allocations"`

	// Derived averages
	Throughput    float64  `json:"throughput"`
	AvgTurnaround float64  `json:"avg_turnaround"`
	AvgWait       float64  `json:"avg_wait"`
	AvgCPUBurst   float64  `json:"avg_cpu_burst"`
	AvgResponse   *float64 `json:"avg_response"` // nil when no I/O happened
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	// Navigate from sim/internal/testutil/ to repo root testdata/
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "goldendataset.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}

	return &dataset
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
