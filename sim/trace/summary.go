package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalTransitions int
	KindCounts       map[string]int // transition kind → count
	Allocations      int
	PeakUsedMemory   int64
	UniqueProcesses  int
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		KindCounts: make(map[string]int),
	}
	if st == nil {
		return summary
	}

	pids := make(map[int]struct{})
	summary.TotalTransitions = len(st.Transitions)
	for _, t := range st.Transitions {
		summary.KindCounts[t.Kind]++
		pids[t.PID] = struct{}{}
	}
	summary.UniqueProcesses = len(pids)

	summary.Allocations = len(st.Allocations)
	for _, a := range st.Allocations {
		if a.UsedMemory > summary.PeakUsedMemory {
			summary.PeakUsedMemory = a.UsedMemory
		}
	}
	return summary
}
