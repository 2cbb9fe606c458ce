package sim

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kernel-sim/kernel-sim/sim/trace"
)

// entry builds a workload entry from the 7-tuple order used by workload files.
func entry(pid int, arrival, cpu, ioFreq, ioDur, priority, size int64) WorkloadEntry {
	return WorkloadEntry{
		PID:         pid,
		ArrivalTime: arrival,
		CPUTime:     cpu,
		IOFrequency: ioFreq,
		IODuration:  ioDur,
		Priority:    priority,
		Size:        size,
	}
}

// runToCompletion builds and runs a simulator, failing the test on invalid input.
func runToCompletion(t *testing.T, cfg RunConfig, workload []WorkloadEntry) (*Simulator, *trace.SimulationTrace) {
	t.Helper()
	st := trace.NewSimulationTrace()
	s, err := NewSimulator(cfg, workload, st)
	if err != nil {
		t.Fatalf("NewSimulator: %v", err)
	}
	s.Run()
	return s, st
}

// queueOf returns a queue in the given state holding processes with the given pids and priorities.
func queueOf(state ProcessState, procs ...*Process) *StateQueue {
	q := NewStateQueue(state)
	for _, p := range procs {
		q.Enqueue(p)
	}
	return q
}

func pids(q *StateQueue) []int {
	out := make([]int, 0, q.Len())
	for _, p := range q.Items() {
		out = append(out, p.PID)
	}
	return out
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}
