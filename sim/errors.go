package sim

import (
	"errors"
	"fmt"
)

// Workload validation failures. NewSimulator joins one *ProcessError per
// violation, so errors.Is works on the returned error for each kind.
var (
	ErrOversizedProcess     = errors.New("process larger than every memory partition")
	ErrInvalidNegativeField = errors.New("invalid negative input")
	ErrZeroBurstTime        = errors.New("invalid CPU burst time of 0")
	ErrDuplicatePID         = errors.New("duplicate pid")
	ErrEmptyWorkload        = errors.New("workload has no processes")
)

// Run configuration failures.
var (
	ErrUnknownScheduler  = errors.New("unknown scheduler")
	ErrUnknownMemoryMode = errors.New("unknown memory mode")
	ErrNegativeQuantum   = errors.New("quantum must be non-negative")
)

// ErrEmptyQueue is wrapped by EmptyQueueError. It marks a driver defect, not bad input.
var ErrEmptyQueue = errors.New("queue is empty")

// ProcessError reports a validation failure for one workload process.
type ProcessError struct {
	PID    int
	Err    error
	Detail string
}

func (e *ProcessError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("process %d: %v", e.PID, e.Err)
	}
	return fmt.Sprintf("process %d: %v: %s", e.PID, e.Err, e.Detail)
}

func (e *ProcessError) Unwrap() error {
	return e.Err
}

// EmptyQueueError is the panic value raised when popping an empty StateQueue.
type EmptyQueueError struct {
	State ProcessState
}

func (e *EmptyQueueError) Error() string {
	if e.State == "" {
		return fmt.Sprintf("cannot dequeue: %v", ErrEmptyQueue)
	}
	return fmt.Sprintf("cannot dequeue from %s: %v", e.State, ErrEmptyQueue)
}

func (e *EmptyQueueError) Unwrap() error {
	return ErrEmptyQueue
}
