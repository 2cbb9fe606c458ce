package workload

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/kernel-sim/kernel-sim/sim"
)

// textFields is the number of integers per line in the text format:
// pid arrival cpu_time io_frequency io_duration priority size.
const textFields = 7

// ParseText reads the text workload format. Fields are separated by
// whitespace or commas; blank lines and lines starting with # are skipped.
func ParseText(r io.Reader) ([]sim.WorkloadEntry, error) {
	var entries []sim.WorkloadEntry
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.FieldsFunc(line, func(c rune) bool {
			return unicode.IsSpace(c) || c == ','
		})
		if len(fields) != textFields {
			return nil, fmt.Errorf("line %d: expected %d fields, got %d", lineNo, textFields, len(fields))
		}
		vals := make([]int64, textFields)
		for i, f := range fields {
			v, err := strconv.ParseInt(f, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d field %d: %w", lineNo, i+1, err)
			}
			vals[i] = v
		}
		entries = append(entries, sim.WorkloadEntry{
			PID:         int(vals[0]),
			ArrivalTime: vals[1],
			CPUTime:     vals[2],
			IOFrequency: vals[3],
			IODuration:  vals[4],
			Priority:    vals[5],
			Size:        vals[6],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading workload: %w", err)
	}
	return entries, nil
}

// Format writes entries in the text workload format, one line per process.
func Format(w io.Writer, entries []sim.WorkloadEntry) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		if _, err := fmt.Fprintf(bw, "%d %d %d %d %d %d %d\n",
			e.PID, e.ArrivalTime, e.CPUTime, e.IOFrequency, e.IODuration, e.Priority, e.Size); err != nil {
			return fmt.Errorf("writing pid %d: %w", e.PID, err)
		}
	}
	return bw.Flush()
}
