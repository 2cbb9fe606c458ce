// Defines the Process struct that models a single simulated process control block.
// Tracks arrival, remaining CPU work, I/O cadence, priority and memory placement.

package sim

import (
	"fmt"
)

// ProcessState represents the lifecycle state of a process.
type ProcessState string

const (
	StateNew        ProcessState = "NEW"
	StateReady      ProcessState = "READY"
	StateRunning    ProcessState = "RUNNING"
	StateWaiting    ProcessState = "WAITING"
	StateTerminated ProcessState = "TERMINATED"
)

// NoMemory is the BaseMemoryLocation of a process that holds no partition.
const NoMemory int64 = -1

// WorkloadEntry is one pre-parsed workload record, the 7-tuple
// (pid, arrival, cpu time, I/O frequency, I/O duration, priority, size).
type WorkloadEntry struct {
	PID         int   `yaml:"pid" json:"pid"`
	ArrivalTime int64 `yaml:"arrival_time" json:"arrival_time"`
	CPUTime     int64 `yaml:"cpu_time" json:"cpu_time"`
	IOFrequency int64 `yaml:"io_frequency" json:"io_frequency"`
	IODuration  int64 `yaml:"io_duration" json:"io_duration"`
	Priority    int64 `yaml:"priority" json:"priority"`
	Size        int64 `yaml:"size" json:"size"`
}

// Process is the simulated process control block.
// A Process belongs to exactly one StateQueue at any tick.
type Process struct {
	PID int // Unique identifier assigned by the workload

	ArrivalTime      int64 // Tick at which the process enters NEW
	RemainingCPUTime int64 // Decremented every RUNNING tick; exits at 0
	CPUArrivalTime   int64 // Tick it last entered RUNNING, used for quantum accounting
	IOFrequency      int64 // Ticks of execution between I/O requests
	IODuration       int64 // Ticks spent in WAITING per I/O event
	TimeUntilIO      int64 // Countdown to the next I/O request, reset to IOFrequency
	Priority         int64 // Lower value = scheduled earlier

	Size               int64 // Memory demand
	BaseMemoryLocation int64 // Partition start address, NoMemory if unallocated

	State ProcessState

	// Bookkeeping for per-process reporting.
	InitialCPUTime int64
	IOEvents       int
	Preemptions    int
}

// NewProcess builds a Process from a workload entry.
//
// A zero I/O frequency means the process never blocks: TimeUntilIO is set to
// the full CPU time so the exit check always wins, and a zero I/O duration
// is raised to 1.
func NewProcess(e WorkloadEntry) *Process {
	p := &Process{
		PID:                e.PID,
		ArrivalTime:        e.ArrivalTime,
		RemainingCPUTime:   e.CPUTime,
		IOFrequency:        e.IOFrequency,
		IODuration:         e.IODuration,
		TimeUntilIO:        e.IOFrequency,
		Priority:           e.Priority,
		Size:               e.Size,
		BaseMemoryLocation: NoMemory,
		State:              StateNew,
		InitialCPUTime:     e.CPUTime,
	}
	if p.IOFrequency == 0 {
		p.TimeUntilIO = p.RemainingCPUTime
		if p.IODuration == 0 {
			p.IODuration = 1
		}
	}
	return p
}

// This method returns a human-readable string representation of a Process.
func (p Process) String() string {
	return fmt.Sprintf("Process: (PID: %d, State: %s, Remaining: %d, Priority: %d, Arrival: %d)",
		p.PID, p.State, p.RemainingCPUTime, p.Priority, p.ArrivalTime)
}
