package sim

import (
	"errors"
	"fmt"
)

// ValidateWorkload checks every entry before a simulation starts and reports
// all violations at once. table is nil when memory management is off.
//
// A zero I/O frequency is not an error; NewProcess normalizes it.
func ValidateWorkload(entries []WorkloadEntry, table *PartitionTable) error {
	if len(entries) == 0 {
		return ErrEmptyWorkload
	}

	var largest int64
	if table != nil {
		largest = table.LargestPartition()
	}

	var errs []error
	seen := make(map[int]bool, len(entries))
	for _, e := range entries {
		if seen[e.PID] {
			errs = append(errs, &ProcessError{PID: e.PID, Err: ErrDuplicatePID})
		}
		seen[e.PID] = true

		if table != nil && e.Size > largest {
			errs = append(errs, &ProcessError{
				PID:    e.PID,
				Err:    ErrOversizedProcess,
				Detail: fmt.Sprintf("requires %d but the largest partition is %d", e.Size, largest),
			})
		}
		if e.ArrivalTime < 0 || e.CPUTime < 0 || e.IOFrequency < 0 || e.IODuration < 0 || e.Size < 0 {
			errs = append(errs, &ProcessError{PID: e.PID, Err: ErrInvalidNegativeField, Detail: negativeFields(e)})
		}
		if e.CPUTime == 0 {
			errs = append(errs, &ProcessError{PID: e.PID, Err: ErrZeroBurstTime})
		}
	}
	return errors.Join(errs...)
}

func negativeFields(e WorkloadEntry) string {
	fields := []struct {
		name string
		v    int64
	}{
		{"arrival_time", e.ArrivalTime},
		{"cpu_time", e.CPUTime},
		{"io_frequency", e.IOFrequency},
		{"io_duration", e.IODuration},
		{"size", e.Size},
	}
	out := ""
	for _, f := range fields {
		if f.v < 0 {
			if out != "" {
				out += ", "
			}
			out += fmt.Sprintf("%s=%d", f.name, f.v)
		}
	}
	return out
}
