// Package report renders simulation results for people: the transition log,
// the summary report, and tables comparing processes or policies.
// One tick is reported as one ms.
package report

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/kernel-sim/kernel-sim/sim"
	"github.com/kernel-sim/kernel-sim/sim/trace"
)

// WriteLog writes the event log: a column header, then every transition and
// allocation report in occurrence order.
func WriteLog(w io.Writer, st *trace.SimulationTrace) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%-14s %-14s %-14s %-14s\n\n", "Time", "PID", "Old State", "New State")
	if st != nil {
		for _, ev := range st.Events {
			switch ev.Type {
			case trace.EventTransition:
				t := ev.Transition
				fmt.Fprintf(bw, "%-14d %-14d %-14s %s\n\n", t.Clock, t.PID, t.From, t.To)
			case trace.EventAllocation:
				writeAllocation(bw, ev.Allocation)
			}
		}
	}
	return bw.Flush()
}

func writeAllocation(w io.Writer, a *trace.AllocationRecord) {
	fmt.Fprintf(w, "MEMORY HAS BEEN ALLOCATED TO PROCESS %d\n", a.PID)
	fmt.Fprintf(w, "Total used memory: %d Mb\n", a.UsedMemory)
	fmt.Fprintf(w, "Used memory portions: %d\nFree memory portions: %d\n", a.UsedPartitions, a.FreePartitions)
	fmt.Fprintf(w, "Total amount of free memory: %d Mb\n", a.FreeMemory)
	fmt.Fprintf(w, "Total amount of free usable memory: %d Mb\n\n", a.FreeUsableMemory)
}

// WriteSummary writes the end-of-run report. The response time line is
// omitted when no I/O happened.
func WriteSummary(w io.Writer, s sim.Summary) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "\n\nNUMBER OF PROCESSES >>> %d\n\n", s.Processes)
	fmt.Fprintf(bw, "THROUGHPUT >>> %.2f ms/process\n\n", s.Throughput)
	fmt.Fprintf(bw, "AVERAGE TURNAROUND TIME >>> %.2f ms/process\n\n", s.AvgTurnaround)
	fmt.Fprintf(bw, "TOTAL WAIT TIME >>> %d ms\n\n", s.TotalWait)
	fmt.Fprintf(bw, "AVERAGE WAIT TIME >>> %.2f ms/process\n\n", s.AvgWait)
	fmt.Fprintf(bw, "AVERAGE CPU BURST TIME >>> %.2f ms/process\n\n", s.AvgCPUBurst)
	if s.ResponseTimeDefined {
		fmt.Fprintf(bw, "AVERAGE RESPONSE TIME >>> %.2f ms\n", s.AvgResponse)
	}
	return bw.Flush()
}

// WriteProcessTable writes one row per terminated process.
func WriteProcessTable(w io.Writer, outcomes []sim.ProcessOutcome) {
	rows := make([][]string, 0, len(outcomes))
	for _, o := range outcomes {
		rows = append(rows, []string{
			strconv.Itoa(o.PID),
			strconv.FormatInt(o.Priority, 10),
			strconv.FormatInt(o.Burst, 10),
			strconv.FormatInt(o.Arrival, 10),
			strconv.FormatInt(o.Exit, 10),
			strconv.FormatInt(o.Turnaround, 10),
			strconv.Itoa(o.IOEvents),
			strconv.Itoa(o.Preemptions),
		})
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"PID", "Priority", "Burst", "Arrival", "Exit", "Turnaround", "I/O", "Preempted"})
	table.AppendBulk(rows)
	table.Render()
}

// WriteComparison writes one row per policy run.
func WriteComparison(w io.Writer, summaries []sim.Summary) {
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		response := "-"
		if s.ResponseTimeDefined {
			response = fmt.Sprintf("%.2f", s.AvgResponse)
		}
		rows = append(rows, []string{
			s.Scheduler,
			s.Memory,
			fmt.Sprintf("%.2f", s.Throughput),
			fmt.Sprintf("%.2f", s.AvgTurnaround),
			strconv.FormatInt(s.TotalWait, 10),
			fmt.Sprintf("%.2f", s.AvgWait),
			fmt.Sprintf("%.2f", s.AvgCPUBurst),
			response,
			strconv.FormatInt(s.Preemptions, 10),
		})
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Scheduler", "Memory", "Throughput", "Avg Turnaround", "Total Wait", "Avg Wait", "Avg Burst", "Avg Response", "Preemptions"})
	table.AppendBulk(rows)
	table.Render()
}
