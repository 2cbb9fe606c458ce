// sim/simulator.go
package sim

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
)

// Simulator is the core object that holds simulation time, the state queues and the tick loop.
type Simulator struct {
	// Clock is the current tick. Components that need "now" receive it as a parameter.
	Clock  int64
	Config RunConfig
	Policy SchedulingPolicy

	// One queue per lifecycle state. A process is owned by exactly one of them.
	New        *StateQueue
	Ready      *StateQueue
	Running    *StateQueue
	Waiting    *StateQueue
	Terminated *StateQueue
	// admission is the scratch queue used to lift a process out of the middle of NEW.
	admission *StateQueue

	// Memory is nil when memory management is off.
	Memory  *PartitionTable
	Metrics *Metrics

	recorder *Recorder
	quantum  int64

	// arrivals holds every process sorted by arrival tick (workload order for ties).
	arrivals    []*Process
	nextArrival int

	// ioCompletion is the single completion tick shared by the whole WAITING queue.
	// Only the head's deadline is honored.
	ioCompletion int64
}

// NewSimulator validates the configuration and workload and builds a simulator
// ready to run. No tick runs on invalid input; all workload violations are
// reported together. sink may be nil to discard the event log.
func NewSimulator(cfg RunConfig, workload []WorkloadEntry, sink EventSink) (*Simulator, error) {
	cfg = NewRunConfig(cfg.Scheduler, cfg.Quantum, cfg.Memory)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid run config: %w", err)
	}
	table, err := NewPartitionTableForMode(cfg.Memory)
	if err != nil {
		return nil, err
	}
	if err := ValidateWorkload(workload, table); err != nil {
		return nil, fmt.Errorf("invalid workload: %w", err)
	}

	s := &Simulator{
		Clock:      0,
		Config:     cfg,
		Policy:     NewScheduler(cfg.Scheduler),
		New:        NewStateQueue(StateNew),
		Ready:      NewStateQueue(StateReady),
		Running:    NewStateQueue(StateRunning),
		Waiting:    NewStateQueue(StateWaiting),
		Terminated: NewStateQueue(StateTerminated),
		admission:  NewStateQueue(""),
		Memory:     table,
		Metrics:    NewMetrics(len(workload)),
		recorder:   NewRecorder(sink),
		quantum:    cfg.EffectiveQuantum(),
		arrivals:   make([]*Process, 0, len(workload)),
	}
	for _, e := range workload {
		p := NewProcess(e)
		s.Metrics.TotalCPUBurst += p.InitialCPUTime
		s.arrivals = append(s.arrivals, p)
	}
	sort.SliceStable(s.arrivals, func(i, j int) bool {
		return s.arrivals[i].ArrivalTime < s.arrivals[j].ArrivalTime
	})
	return s, nil
}

// Done reports whether every process has terminated.
func (sim *Simulator) Done() bool {
	return sim.Metrics.TerminatedProcesses >= sim.Metrics.TotalProcesses
}

// Run executes ticks until every process has terminated.
func (sim *Simulator) Run() {
	logrus.Infof("Starting simulation: scheduler=%s quantum=%d memory=%s processes=%d",
		sim.Config.Scheduler, sim.Config.Quantum, sim.Config.Memory, sim.Metrics.TotalProcesses)
	for !sim.Done() {
		sim.Step()
	}
	logrus.Infof("[tick %07d] Simulation ended", sim.Metrics.FinalTick)
}

// Summary returns the end-of-run report labeled with this run's configuration.
func (sim *Simulator) Summary() Summary {
	s := sim.Metrics.Summary()
	s.Scheduler = sim.Config.Scheduler
	s.Memory = sim.Config.Memory
	return s
}

// Step simulates one tick at sim.Clock and advances the clock.
// Within a tick the order is fixed: sampling, arrival, admission, dispatch,
// execution, I/O completion.
func (sim *Simulator) Step() {
	now := sim.Clock
	logrus.Debugf("[tick %07d] new=%v ready=%v running=%v waiting=%v",
		now, sim.New, sim.Ready, sim.Running, sim.Waiting)

	sim.sample()
	sim.arrive(now)
	sim.admit(now)
	sim.dispatch(now)
	sim.execute(now)
	sim.completeIO(now)

	sim.Clock++
}

func (sim *Simulator) sample() {
	sim.Metrics.TotalWait += int64(sim.Ready.Len())
	if sim.Waiting.Len() == 0 {
		sim.Metrics.InterIOTicks++
	}
}

func (sim *Simulator) arrive(now int64) {
	for sim.nextArrival < len(sim.arrivals) && sim.arrivals[sim.nextArrival].ArrivalTime == now {
		p := sim.arrivals[sim.nextArrival]
		logrus.Debugf("[tick %07d] << Arrival: pid %d", now, p.PID)
		sim.New.Enqueue(p)
		sim.nextArrival++
	}
}

// admit moves processes from NEW to READY. With memory management on, each
// NEW process is tried in queue order; those that do not fit stay in place
// for a later tick.
func (sim *Simulator) admit(now int64) {
	if sim.Memory == nil {
		for sim.New.Len() > 0 {
			sim.Policy.Place(now, Admitted, sim.New, sim.Ready, sim.recorder)
		}
		return
	}
	if sim.Memory.FreePartitions() == 0 {
		return
	}
	i := 0
	for i < sim.New.Len() {
		p := sim.New.Items()[i]
		rep, ok := sim.Memory.Allocate(p)
		if !ok {
			i++
			continue
		}
		sim.recorder.Allocation(now, p.PID, rep)
		if i == 0 {
			sim.Policy.Place(now, Admitted, sim.New, sim.Ready, sim.recorder)
		} else {
			sim.admission.Enqueue(sim.New.RemoveAt(i))
			sim.Policy.Place(now, Admitted, sim.admission, sim.Ready, sim.recorder)
		}
	}
}

func (sim *Simulator) dispatch(now int64) {
	if sim.Running.Len() > 0 || sim.Ready.Len() == 0 {
		return
	}
	sim.recorder.Transition(now, Dispatched, sim.Ready, sim.Running)
	sim.Running.Peek().CPUArrivalTime = now
}

// execute applies exactly one rule to the running process, in priority order:
// exit, I/O request, quantum expiry, one tick of work.
func (sim *Simulator) execute(now int64) {
	p := sim.Running.Peek()
	if p == nil {
		return
	}
	switch {
	case p.RemainingCPUTime == 0:
		turnaround := now - p.ArrivalTime
		sim.Metrics.TotalTurnaround += turnaround
		sim.recorder.Transition(now, Exited, sim.Running, sim.Terminated)
		if sim.Memory != nil {
			sim.Memory.Deallocate(p)
		}
		sim.Metrics.Outcomes = append(sim.Metrics.Outcomes, ProcessOutcome{
			PID:         p.PID,
			Priority:    p.Priority,
			Arrival:     p.ArrivalTime,
			Burst:       p.InitialCPUTime,
			Exit:        now,
			Turnaround:  turnaround,
			IOEvents:    p.IOEvents,
			Preemptions: p.Preemptions,
		})
		sim.Terminated.PopFront(true)
		sim.Metrics.TerminatedProcesses++
		sim.Metrics.FinalTick = now
		logrus.Infof("[tick %07d] Finished pid %d, turnaround %d", now, p.PID, turnaround)

	case p.TimeUntilIO == 0:
		p.TimeUntilIO = p.IOFrequency
		p.IOEvents++
		sim.Metrics.IOEvents++
		sim.recorder.Transition(now, Blocked, sim.Running, sim.Waiting)
		if sim.Waiting.Len() == 1 {
			sim.ioCompletion = now + p.IODuration
		}

	case now-p.CPUArrivalTime > sim.quantum:
		p.Preemptions++
		sim.Metrics.Preemptions++
		sim.Policy.Place(now, Preempted, sim.Running, sim.Ready, sim.recorder)

	default:
		p.RemainingCPUTime--
		p.TimeUntilIO--
	}
}

// completeIO releases the WAITING head once the shared completion tick is reached
// and re-arms the deadline from the new head's I/O duration.
func (sim *Simulator) completeIO(now int64) {
	if sim.Waiting.Len() == 0 || now < sim.ioCompletion {
		return
	}
	sim.Policy.Place(now, Unblocked, sim.Waiting, sim.Ready, sim.recorder)
	if next := sim.Waiting.Peek(); next != nil {
		sim.ioCompletion = now + next.IODuration
	}
}
