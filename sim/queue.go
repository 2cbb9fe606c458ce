// Implements the StateQueue, which holds the processes in one lifecycle state.
// Moving a process between queues transfers ownership of the record.

package sim

import (
	"fmt"
	"strings"
)

// StateQueue is an ordered sequence of processes representing one lifecycle state.
// A process is owned by exactly one StateQueue at a time; callers move records
// with PopFront + Enqueue, never by sharing a pointer between two queues.
type StateQueue struct {
	state ProcessState
	queue []*Process
}

// NewStateQueue creates an empty queue for the given state. Processes enqueued
// on it take that state. The scratch queue used during admission is created
// with an empty state and leaves records untouched.
func NewStateQueue(state ProcessState) *StateQueue {
	return &StateQueue{state: state}
}

// State returns the lifecycle state this queue represents.
func (q *StateQueue) State() ProcessState {
	return q.state
}

// Enqueue adds a process to the back of the queue.
func (q *StateQueue) Enqueue(p *Process) {
	if p == nil {
		panic("Enqueue: process must not be nil")
	}
	q.adopt(p)
	q.queue = append(q.queue, p)
}

// PopFront removes the head of the queue. When destroy is true the record is
// released and nil is returned; otherwise the record is handed back to the caller.
// Panics with an EmptyQueueError if the queue is empty.
func (q *StateQueue) PopFront(destroy bool) *Process {
	if len(q.queue) == 0 {
		panic(&EmptyQueueError{State: q.state})
	}
	head := q.queue[0]
	q.queue[0] = nil
	q.queue = q.queue[1:]
	if destroy {
		return nil
	}
	return head
}

// InsertBefore splices p immediately before target. Panics if target is not queued.
// Used by the priority policy only.
func (q *StateQueue) InsertBefore(target, p *Process) {
	if p == nil {
		panic("InsertBefore: process must not be nil")
	}
	idx := q.indexOf(target)
	if idx < 0 {
		panic(fmt.Sprintf("InsertBefore: target %v is not in the %s queue", target, q.state))
	}
	q.adopt(p)
	q.queue = append(q.queue, nil)
	copy(q.queue[idx+1:], q.queue[idx:])
	q.queue[idx] = p
}

// RemoveAt detaches and returns the process at position i.
// The admission pass uses it to lift a process out of the middle of NEW.
func (q *StateQueue) RemoveAt(i int) *Process {
	if i < 0 || i >= len(q.queue) {
		panic(fmt.Sprintf("RemoveAt: index %d out of range for %s queue of length %d", i, q.state, len(q.queue)))
	}
	p := q.queue[i]
	q.queue = append(q.queue[:i], q.queue[i+1:]...)
	return p
}

// Peek returns the process at the front of the queue without removing it.
// Returns nil if the queue is empty.
func (q *StateQueue) Peek() *Process {
	if len(q.queue) == 0 {
		return nil
	}
	return q.queue[0]
}

// Len returns the number of processes in the queue.
func (q *StateQueue) Len() int {
	return len(q.queue)
}

// Items returns the queue contents for iteration.
// The returned slice is the queue's internal storage; callers MUST NOT modify it.
func (q *StateQueue) Items() []*Process {
	return q.queue
}

func (q *StateQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, p := range q.queue {
		sb.WriteString(fmt.Sprint(p.PID))
		if i < len(q.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}

func (q *StateQueue) adopt(p *Process) {
	if q.state != "" {
		p.State = q.state
	}
}

func (q *StateQueue) indexOf(target *Process) int {
	for i, p := range q.queue {
		if p == target {
			return i
		}
	}
	return -1
}
