// Package trace provides event-log recording for scheduler simulations.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// TransitionRecord captures a single state change of one process.
type TransitionRecord struct {
	Clock int64
	PID   int
	Kind  string // ADMITTED, DISPATCHED, BLOCKED, UNBLOCKED, PREEMPTED, EXITED
	From  string
	To    string
}

// AllocationRecord captures the memory picture right after a successful allocation.
type AllocationRecord struct {
	Clock            int64
	PID              int
	Base             int64 // start address of the partition handed to PID
	UsedMemory       int64 // sum of process sizes currently placed
	UsedPartitions   int
	FreePartitions   int
	FreeMemory       int64 // total capacity minus UsedMemory, internal fragmentation included
	FreeUsableMemory int64 // sum of capacities of free partitions
}

// EventType distinguishes entries of the ordered event stream.
type EventType string

const (
	EventTransition EventType = "transition"
	EventAllocation EventType = "allocation"
)

// Event is one entry of the ordered event stream. Exactly one of
// Transition or Allocation is set, matching Type.
type Event struct {
	Type       EventType
	Transition *TransitionRecord
	Allocation *AllocationRecord
}
