package workload

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/kernel-sim/kernel-sim/sim"
)

// GeneratorConfig bounds the synthetic workload. All Max fields are inclusive.
type GeneratorConfig struct {
	Count          int
	Seed           int64
	MaxArrival     int64
	MaxCPU         int64 // must be >= 1
	MaxIOFrequency int64 // 0 disables I/O for every process
	MaxIODuration  int64
	MaxPriority    int64
	MaxSize        int64 // 0 makes every process size 0
}

// DefaultGeneratorConfig returns bounds that fit both built-in memory layouts.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Count:          10,
		Seed:           42,
		MaxArrival:     50,
		MaxCPU:         40,
		MaxIOFrequency: 10,
		MaxIODuration:  8,
		MaxPriority:    5,
		MaxSize:        300,
	}
}

// Validate checks the generator bounds.
func (c GeneratorConfig) Validate() error {
	if c.Count <= 0 {
		return fmt.Errorf("count must be positive, got %d", c.Count)
	}
	if c.MaxCPU < 1 {
		return fmt.Errorf("max cpu time must be at least 1, got %d", c.MaxCPU)
	}
	if c.MaxArrival < 0 || c.MaxIOFrequency < 0 || c.MaxIODuration < 0 || c.MaxPriority < 0 || c.MaxSize < 0 {
		return fmt.Errorf("generator bounds must be non-negative")
	}
	return nil
}

// Generate creates a synthetic workload. Deterministic given the same config.
// Returns entries sorted by arrival time with sequential pids starting at 1,
// every one of which passes sim.ValidateWorkload with memory management off.
func Generate(cfg GeneratorConfig) ([]sim.WorkloadEntry, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid generator config: %w", err)
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	entries := make([]sim.WorkloadEntry, cfg.Count)
	for i := range entries {
		entries[i] = sim.WorkloadEntry{
			ArrivalTime: between(rng, 0, cfg.MaxArrival),
			CPUTime:     between(rng, 1, cfg.MaxCPU),
			IOFrequency: between(rng, 0, cfg.MaxIOFrequency),
			IODuration:  between(rng, 0, cfg.MaxIODuration),
			Priority:    between(rng, 0, cfg.MaxPriority),
			Size:        between(rng, 0, cfg.MaxSize),
		}
	}

	// Sort by arrival time (stable sort keeps generation order for ties)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].ArrivalTime < entries[j].ArrivalTime
	})
	for i := range entries {
		entries[i].PID = i + 1
	}
	return entries, nil
}

// between returns a uniform value in [lo, hi].
func between(rng *rand.Rand, lo, hi int64) int64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Int63n(hi-lo+1)
}
