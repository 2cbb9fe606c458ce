// sim/memory.go
package sim

import (
	"fmt"
	"strings"
)

// Canonical memory mode names.
const (
	MemoryOff     = "off"
	MemoryLayoutA = "layout-a"
	MemoryLayoutB = "layout-b"
)

// MemoryLayouts holds the built-in partition capacities, in table order.
var MemoryLayouts = map[string][]int64{
	MemoryLayoutA: {500, 250, 150, 100},
	MemoryLayoutB: {300, 300, 350, 50},
}

var memoryAliases = map[string]string{
	"":         MemoryOff,
	"off":      MemoryOff,
	"0":        MemoryOff,
	"layout-a": MemoryLayoutA,
	"layout_a": MemoryLayoutA,
	"a":        MemoryLayoutA,
	"1":        MemoryLayoutA,
	"layout-b": MemoryLayoutB,
	"layout_b": MemoryLayoutB,
	"b":        MemoryLayoutB,
	"2":        MemoryLayoutB,
}

// CanonicalMemoryMode returns the canonical name for a memory mode spelling.
// Matching is case-insensitive. Empty string defaults to off.
func CanonicalMemoryMode(name string) (string, bool) {
	canonical, ok := memoryAliases[strings.ToLower(strings.TrimSpace(name))]
	return canonical, ok
}

// Partition is one fixed-size region of simulated memory.
// It is either free or holds exactly one process; Used is that process's size.
type Partition struct {
	Capacity int64
	Used     int64
	Owner    int  // PID of the occupying process
	Occupied bool // tracked apart from Used so zero-size processes still hold the partition
}

// MemoryReport is the memory picture reported after an allocation.
type MemoryReport struct {
	Base             int64 // start of the partition just handed out, NoMemory for plain snapshots
	UsedMemory       int64 // sum of sizes of placed processes
	UsedPartitions   int
	FreePartitions   int
	FreeMemory       int64 // total capacity minus UsedMemory
	FreeUsableMemory int64 // sum of capacities of free partitions
}

// PartitionTable is a fixed ordered sequence of partitions.
// Shape is immutable after construction; only occupancy changes.
type PartitionTable struct {
	partitions []Partition
}

// NewPartitionTable creates a table with the given capacities, all free.
func NewPartitionTable(capacities []int64) *PartitionTable {
	pt := &PartitionTable{partitions: make([]Partition, len(capacities))}
	for i, c := range capacities {
		pt.partitions[i] = Partition{Capacity: c}
	}
	return pt
}

// NewPartitionTableForMode creates the table for a memory mode.
// Returns nil for the off mode.
func NewPartitionTableForMode(mode string) (*PartitionTable, error) {
	canonical, ok := CanonicalMemoryMode(mode)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownMemoryMode, mode)
	}
	if canonical == MemoryOff {
		return nil, nil
	}
	return NewPartitionTable(MemoryLayouts[canonical]), nil
}

// Partitions returns a copy of the partition table.
func (pt *PartitionTable) Partitions() []Partition {
	out := make([]Partition, len(pt.partitions))
	copy(out, pt.partitions)
	return out
}

// Len returns the number of partitions.
func (pt *PartitionTable) Len() int {
	return len(pt.partitions)
}

// Start returns the partition's cumulative start offset within the table.
func (pt *PartitionTable) Start(i int) int64 {
	var addr int64
	for j := 0; j < i; j++ {
		addr += pt.partitions[j].Capacity
	}
	return addr
}

// TotalCapacity returns the sum of all partition capacities.
func (pt *PartitionTable) TotalCapacity() int64 {
	var total int64
	for _, p := range pt.partitions {
		total += p.Capacity
	}
	return total
}

// LargestPartition returns the largest partition capacity.
func (pt *PartitionTable) LargestPartition() int64 {
	var largest int64
	for _, p := range pt.partitions {
		largest = max(largest, p.Capacity)
	}
	return largest
}

// FreePartitions returns the number of unoccupied partitions.
func (pt *PartitionTable) FreePartitions() int {
	n := 0
	for _, p := range pt.partitions {
		if !p.Occupied {
			n++
		}
	}
	return n
}

// Allocate gives proc the first free partition whose capacity is at least its size.
// No splitting, no coalescing: a process that fits no single free partition is
// left unallocated and false is returned.
func (pt *PartitionTable) Allocate(proc *Process) (MemoryReport, bool) {
	var addr int64
	for i := range pt.partitions {
		part := &pt.partitions[i]
		if !part.Occupied && part.Capacity >= proc.Size {
			part.Occupied = true
			part.Used = proc.Size
			part.Owner = proc.PID
			proc.BaseMemoryLocation = addr
			rep := pt.Snapshot()
			rep.Base = addr
			return rep, true
		}
		addr += part.Capacity
	}
	return MemoryReport{}, false
}

// Deallocate frees the partition starting at proc's base address.
// Returns false if proc holds no partition.
func (pt *PartitionTable) Deallocate(proc *Process) bool {
	if proc.BaseMemoryLocation == NoMemory {
		return false
	}
	var addr int64
	for i := range pt.partitions {
		part := &pt.partitions[i]
		if addr == proc.BaseMemoryLocation && part.Occupied {
			part.Occupied = false
			part.Used = 0
			part.Owner = 0
			proc.BaseMemoryLocation = NoMemory
			return true
		}
		addr += part.Capacity
	}
	return false
}

// Snapshot computes the current memory metrics.
func (pt *PartitionTable) Snapshot() MemoryReport {
	rep := MemoryReport{Base: NoMemory}
	for _, p := range pt.partitions {
		if p.Occupied {
			rep.UsedMemory += p.Used
			rep.UsedPartitions++
		} else {
			rep.FreePartitions++
			rep.FreeUsableMemory += p.Capacity
		}
	}
	rep.FreeMemory = pt.TotalCapacity() - rep.UsedMemory
	return rep
}

func (pt *PartitionTable) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, p := range pt.partitions {
		if i > 0 {
			sb.WriteString(" ")
		}
		if p.Occupied {
			fmt.Fprintf(&sb, "%d/%d(pid %d)", p.Used, p.Capacity, p.Owner)
		} else {
			fmt.Fprintf(&sb, "0/%d", p.Capacity)
		}
	}
	sb.WriteString("]")
	return sb.String()
}
