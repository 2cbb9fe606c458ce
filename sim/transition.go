package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/kernel-sim/kernel-sim/sim/trace"
)

// TransitionKind identifies one edge of the process state machine.
type TransitionKind int

const (
	Admitted   TransitionKind = iota // NEW -> READY
	Dispatched                       // READY -> RUNNING
	Blocked                          // RUNNING -> WAITING
	Unblocked                        // WAITING -> READY
	Preempted                        // RUNNING -> READY
	Exited                           // RUNNING -> TERMINATED
)

var transitionNames = [...]string{"ADMITTED", "DISPATCHED", "BLOCKED", "UNBLOCKED", "PREEMPTED", "EXITED"}

var transitionStates = [...][2]ProcessState{
	{StateNew, StateReady},
	{StateReady, StateRunning},
	{StateRunning, StateWaiting},
	{StateWaiting, StateReady},
	{StateRunning, StateReady},
	{StateRunning, StateTerminated},
}

func (k TransitionKind) String() string {
	if k < Admitted || k > Exited {
		return fmt.Sprintf("TransitionKind(%d)", int(k))
	}
	return transitionNames[k]
}

// From returns the state a process leaves on this transition.
func (k TransitionKind) From() ProcessState { return transitionStates[k][0] }

// To returns the state a process enters on this transition.
func (k TransitionKind) To() ProcessState { return transitionStates[k][1] }

// EventSink receives the event log produced by the simulation.
// trace.SimulationTrace is the standard implementation.
type EventSink interface {
	RecordTransition(rec trace.TransitionRecord)
	RecordAllocation(rec trace.AllocationRecord)
}

type discardSink struct{}

func (discardSink) RecordTransition(trace.TransitionRecord) {}
func (discardSink) RecordAllocation(trace.AllocationRecord) {}

// Recorder is the single choke point for lifecycle moves: every transition is
// written to the sink before the record changes queues, so the log is a
// complete, ordered audit trail of the state machine.
type Recorder struct {
	sink EventSink
}

// NewRecorder creates a Recorder writing to sink. A nil sink discards events.
func NewRecorder(sink EventSink) *Recorder {
	if sink == nil {
		sink = discardSink{}
	}
	return &Recorder{sink: sink}
}

// Record writes one transition event without moving anything.
// Policies that splice into the middle of READY call it directly.
func (r *Recorder) Record(now int64, pid int, kind TransitionKind) {
	logrus.Debugf("[tick %07d] pid %d %s (%s -> %s)", now, pid, kind, kind.From(), kind.To())
	r.sink.RecordTransition(trace.TransitionRecord{
		Clock: now,
		PID:   pid,
		Kind:  kind.String(),
		From:  string(kind.From()),
		To:    string(kind.To()),
	})
}

// Transition records kind for the head of src and moves that head to the tail of dst.
// Panics with an EmptyQueueError if src is empty.
func (r *Recorder) Transition(now int64, kind TransitionKind, src, dst *StateQueue) {
	head := src.Peek()
	if head == nil {
		panic(&EmptyQueueError{State: src.State()})
	}
	r.Record(now, head.PID, kind)
	dst.Enqueue(src.PopFront(false))
}

// Allocation writes a memory allocation report.
func (r *Recorder) Allocation(now int64, pid int, rep MemoryReport) {
	logrus.Infof("[tick %07d] allocated %d at base %d: used=%d free=%d usable=%d",
		now, pid, rep.Base, rep.UsedMemory, rep.FreeMemory, rep.FreeUsableMemory)
	r.sink.RecordAllocation(trace.AllocationRecord{
		Clock:            now,
		PID:              pid,
		Base:             rep.Base,
		UsedMemory:       rep.UsedMemory,
		UsedPartitions:   rep.UsedPartitions,
		FreePartitions:   rep.FreePartitions,
		FreeMemory:       rep.FreeMemory,
		FreeUsableMemory: rep.FreeUsableMemory,
	})
}
