// Package sim provides the discrete-time process scheduler simulation engine.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - process.go: Process record and lifecycle states (NEW → READY → RUNNING → WAITING/TERMINATED)
//   - queue.go: StateQueue, the ownership-transferring container for one lifecycle state
//   - transition.go: TransitionKind and the Recorder every lifecycle move passes through
//   - simulator.go: the per-tick loop (arrival, admission, dispatch, execution, I/O completion)
//
// # Policies
//
//   - scheduler.go: SchedulingPolicy placement into READY (fcfs, priority, round-robin)
//   - memory.go: first-fit fixed partitions gating admission (layout-a, layout-b)
//
// Round-robin places like fcfs; time slicing comes from the driver's quantum check.
//
// # Sub-packages
//   - sim/trace/: the event log (transitions and allocation reports)
//   - sim/workload/: workload parsing and seeded generation
//   - sim/report/: text log, summary report and comparison tables
//
// Simulated time is an explicit tick counter held by Simulator. Everything is
// single-threaded and deterministic: the same workload and RunConfig always
// produce the same event log.
package sim
