package trace

// SimulationTrace collects the event log of a simulation run.
// Transitions and Allocations hold each record type on its own;
// Events interleaves both in occurrence order.
type SimulationTrace struct {
	Transitions []TransitionRecord
	Allocations []AllocationRecord
	Events      []Event
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace() *SimulationTrace {
	return &SimulationTrace{
		Transitions: make([]TransitionRecord, 0),
		Allocations: make([]AllocationRecord, 0),
		Events:      make([]Event, 0),
	}
}

// RecordTransition appends a transition record.
func (st *SimulationTrace) RecordTransition(record TransitionRecord) {
	st.Transitions = append(st.Transitions, record)
	st.Events = append(st.Events, Event{Type: EventTransition, Transition: &record})
}

// RecordAllocation appends an allocation record.
func (st *SimulationTrace) RecordAllocation(record AllocationRecord) {
	st.Allocations = append(st.Allocations, record)
	st.Events = append(st.Events, Event{Type: EventAllocation, Allocation: &record})
}

// TransitionsFor returns the transitions of one process in occurrence order.
func (st *SimulationTrace) TransitionsFor(pid int) []TransitionRecord {
	var out []TransitionRecord
	for _, t := range st.Transitions {
		if t.PID == pid {
			out = append(out, t)
		}
	}
	return out
}
