// Tracks simulation-wide and per-process performance metrics.

package sim

// Metrics accumulates statistics as the simulation runs.
// All totals only grow; they are read once at the end through Summary.
type Metrics struct {
	TotalProcesses      int   // Number of processes in the workload
	TerminatedProcesses int   // Number of processes that reached TERMINATED
	TotalCPUBurst       int64 // Sum of initial CPU times
	TotalTurnaround     int64 // Sum of (exit tick - arrival tick)
	TotalWait           int64 // READY length sampled once per tick
	InterIOTicks        int64 // Ticks on which WAITING was empty
	IOEvents            int64 // Number of RUNNING -> WAITING transitions
	Preemptions         int64 // Number of RUNNING -> READY transitions
	FinalTick           int64 // Tick of the last exit

	Outcomes []ProcessOutcome // one per terminated process, in exit order
}

// ProcessOutcome is what remains of a process record after it is destroyed.
type ProcessOutcome struct {
	PID         int   `json:"pid"`
	Priority    int64 `json:"priority"`
	Arrival     int64 `json:"arrival"`
	Burst       int64 `json:"burst"`
	Exit        int64 `json:"exit"`
	Turnaround  int64 `json:"turnaround"`
	IOEvents    int   `json:"io_events"`
	Preemptions int   `json:"preemptions"`
}

// NewMetrics creates an empty accumulator for a workload of n processes.
func NewMetrics(n int) *Metrics {
	return &Metrics{
		TotalProcesses: n,
		Outcomes:       make([]ProcessOutcome, 0, n),
	}
}

// Summary is the end-of-run report.
type Summary struct {
	Scheduler           string  `json:"scheduler"`
	Memory              string  `json:"memory"`
	Processes           int     `json:"processes"`
	FinalTick           int64   `json:"final_tick"`
	Throughput          float64 `json:"throughput"` // ticks per process
	AvgTurnaround       float64 `json:"avg_turnaround"`
	TotalWait           int64   `json:"total_wait"`
	AvgWait             float64 `json:"avg_wait"`
	AvgCPUBurst         float64 `json:"avg_cpu_burst"`
	IOEvents            int64   `json:"io_events"`
	Preemptions         int64   `json:"preemptions"`
	AvgResponse         float64 `json:"avg_response,omitempty"`
	ResponseTimeDefined bool    `json:"response_time_defined"`
}

// Summary derives the averages. Average response time is only defined when
// at least one I/O event happened.
func (m *Metrics) Summary() Summary {
	s := Summary{
		Processes:   m.TotalProcesses,
		FinalTick:   m.FinalTick,
		TotalWait:   m.TotalWait,
		IOEvents:    m.IOEvents,
		Preemptions: m.Preemptions,
	}
	if m.TotalProcesses > 0 {
		n := float64(m.TotalProcesses)
		s.Throughput = float64(m.FinalTick) / n
		s.AvgTurnaround = float64(m.TotalTurnaround) / n
		s.AvgWait = float64(m.TotalWait) / n
		s.AvgCPUBurst = float64(m.TotalCPUBurst) / n
	}
	if m.IOEvents > 0 {
		s.AvgResponse = float64(m.InterIOTicks) / float64(m.IOEvents)
		s.ResponseTimeDefined = true
	}
	return s
}
