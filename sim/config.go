package sim

import (
	"errors"
	"fmt"
	"math"
)

// RunConfig is fixed for the whole run; there is no runtime policy switching.
type RunConfig struct {
	Scheduler string // "fcfs" (default), "priority", "round-robin"
	Quantum   int64  // max consecutive RUNNING ticks past the first; round-robin only
	Memory    string // "off" (default), "layout-a", "layout-b"
}

// NewRunConfig builds a RunConfig with canonical names.
// Unknown names are kept verbatim so Validate can report them.
func NewRunConfig(scheduler string, quantum int64, memory string) RunConfig {
	cfg := RunConfig{Scheduler: scheduler, Quantum: quantum, Memory: memory}
	if c, ok := CanonicalScheduler(scheduler); ok {
		cfg.Scheduler = c
	}
	if c, ok := CanonicalMemoryMode(memory); ok {
		cfg.Memory = c
	}
	return cfg
}

// Validate checks scheduler and memory names and the quantum range.
func (c RunConfig) Validate() error {
	var errs []error
	if !IsValidScheduler(c.Scheduler) {
		errs = append(errs, fmt.Errorf("%w %q", ErrUnknownScheduler, c.Scheduler))
	}
	if _, ok := CanonicalMemoryMode(c.Memory); !ok {
		errs = append(errs, fmt.Errorf("%w %q", ErrUnknownMemoryMode, c.Memory))
	}
	if c.Quantum < 0 {
		errs = append(errs, fmt.Errorf("%w, got %d", ErrNegativeQuantum, c.Quantum))
	}
	return errors.Join(errs...)
}

// EffectiveQuantum returns the preemption threshold the driver applies.
// Only round-robin preempts; the other policies never hit the threshold.
func (c RunConfig) EffectiveQuantum() int64 {
	if s, _ := CanonicalScheduler(c.Scheduler); s == SchedulerRoundRobin {
		return c.Quantum
	}
	return math.MaxInt64
}

// MemoryEnabled reports whether admission is gated by partition allocation.
func (c RunConfig) MemoryEnabled() bool {
	m, ok := CanonicalMemoryMode(c.Memory)
	return ok && m != MemoryOff
}
