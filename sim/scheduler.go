package sim

import (
	"fmt"
	"strings"
)

// Canonical scheduler names.
const (
	SchedulerFCFS       = "fcfs"
	SchedulerPriority   = "priority"
	SchedulerRoundRobin = "round-robin"
)

// SchedulerNames lists the canonical scheduler names in their original numeric order.
var SchedulerNames = []string{SchedulerFCFS, SchedulerPriority, SchedulerRoundRobin}

// schedulerAliases maps every accepted spelling to its canonical name.
// The numeric codes are the ones the original command line used.
var schedulerAliases = map[string]string{
	"":            SchedulerFCFS,
	"fcfs":        SchedulerFCFS,
	"0":           SchedulerFCFS,
	"priority":    SchedulerPriority,
	"1":           SchedulerPriority,
	"round-robin": SchedulerRoundRobin,
	"round_robin": SchedulerRoundRobin,
	"rr":          SchedulerRoundRobin,
	"2":           SchedulerRoundRobin,
}

// CanonicalScheduler returns the canonical name for a scheduler spelling.
// Matching is case-insensitive. Empty string defaults to fcfs.
func CanonicalScheduler(name string) (string, bool) {
	canonical, ok := schedulerAliases[strings.ToLower(strings.TrimSpace(name))]
	return canonical, ok
}

// IsValidScheduler returns true if name is a recognized scheduler spelling.
func IsValidScheduler(name string) bool {
	_, ok := CanonicalScheduler(name)
	return ok
}

// SchedulingPolicy decides where in READY a process lands.
// Place moves the head of src into ready at a policy-determined position,
// recording exactly one transition of the given kind.
type SchedulingPolicy interface {
	Name() string
	Place(now int64, kind TransitionKind, src, ready *StateQueue, rec *Recorder)
}

// FCFSScheduler appends at the tail of READY, preserving arrival order.
type FCFSScheduler struct{}

func (f *FCFSScheduler) Name() string { return SchedulerFCFS }

func (f *FCFSScheduler) Place(now int64, kind TransitionKind, src, ready *StateQueue, rec *Recorder) {
	rec.Transition(now, kind, src, ready)
}

// PriorityScheduler keeps READY sorted by ascending Priority value.
// The incoming process goes before the first process with a strictly larger
// Priority, so equal priorities stay FIFO. O(n) in READY length.
type PriorityScheduler struct{}

func (p *PriorityScheduler) Name() string { return SchedulerPriority }

func (p *PriorityScheduler) Place(now int64, kind TransitionKind, src, ready *StateQueue, rec *Recorder) {
	incoming := src.Peek()
	if incoming == nil {
		panic(&EmptyQueueError{State: src.State()})
	}
	for _, queued := range ready.Items() {
		if queued.Priority > incoming.Priority {
			rec.Record(now, incoming.PID, kind)
			ready.InsertBefore(queued, src.PopFront(false))
			return
		}
	}
	rec.Transition(now, kind, src, ready)
}

// RoundRobinScheduler places like FCFS. Time slicing comes from the driver's
// quantum check, which sends the running process back through Place as Preempted.
type RoundRobinScheduler struct{}

func (r *RoundRobinScheduler) Name() string { return SchedulerRoundRobin }

func (r *RoundRobinScheduler) Place(now int64, kind TransitionKind, src, ready *StateQueue, rec *Recorder) {
	rec.Transition(now, kind, src, ready)
}

// NewScheduler creates a SchedulingPolicy by name.
// Valid names: "fcfs" (default), "priority", "round-robin", plus their aliases.
// Panics on unrecognized names.
func NewScheduler(name string) SchedulingPolicy {
	canonical, ok := CanonicalScheduler(name)
	if !ok {
		panic(fmt.Sprintf("unknown scheduler %q", name))
	}
	switch canonical {
	case SchedulerFCFS:
		return &FCFSScheduler{}
	case SchedulerPriority:
		return &PriorityScheduler{}
	case SchedulerRoundRobin:
		return &RoundRobinScheduler{}
	default:
		panic(fmt.Sprintf("unhandled scheduler %q", name))
	}
}
