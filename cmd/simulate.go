package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kernel-sim/kernel-sim/sim"
	"github.com/kernel-sim/kernel-sim/sim/report"
	"github.com/kernel-sim/kernel-sim/sim/trace"
	"github.com/kernel-sim/kernel-sim/sim/workload"
)

type runOptions struct {
	WorkloadPath string
	OutputPath   string
	ResultsPath  string
	ShowTable    bool
	Config       sim.RunConfig
}

func defaultGenerateFlags() workload.GeneratorConfig {
	return workload.DefaultGeneratorConfig()
}

// resolveRunConfig merges flag values with an optional config file.
// File values replace flag defaults; flags the user set explicitly win over the file.
func resolveRunConfig(cmd *cobra.Command, path, scheduler string, quantum int64, memory string) (sim.RunConfig, error) {
	cfg := sim.NewRunConfig(scheduler, quantum, memory)
	if path != "" {
		file, err := sim.LoadRunConfigFile(path)
		if err != nil {
			return sim.RunConfig{}, err
		}
		merged := file.ApplyTo(cfg)
		if cmd != nil && cmd.Flags().Changed("scheduler") {
			merged.Scheduler = scheduler
		}
		if cmd != nil && cmd.Flags().Changed("quantum") {
			merged.Quantum = quantum
		}
		if cmd != nil && cmd.Flags().Changed("memory") {
			merged.Memory = memory
		}
		cfg = sim.NewRunConfig(merged.Scheduler, merged.Quantum, merged.Memory)
	}
	if err := cfg.Validate(); err != nil {
		return sim.RunConfig{}, err
	}
	return cfg, nil
}

// runSimulation loads the workload, runs one simulation, writes the log file
// and prints the summary to stdout.
func runSimulation(stdout io.Writer, opts runOptions) error {
	entries, err := workload.Load(opts.WorkloadPath)
	if err != nil {
		return err
	}

	st := trace.NewSimulationTrace()
	s, err := sim.NewSimulator(opts.Config, entries, st)
	if err != nil {
		logValidationErrors(err)
		return err
	}
	s.Run()
	summary := s.Summary()

	if err := writeOutputFile(opts.OutputPath, st, summary); err != nil {
		return err
	}
	if err := report.WriteSummary(stdout, summary); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	if opts.ShowTable {
		report.WriteProcessTable(stdout, s.Metrics.Outcomes)
	}
	if opts.ResultsPath != "" {
		if err := saveResults(opts.ResultsPath, summary); err != nil {
			return err
		}
	}
	ts := trace.Summarize(st)
	logrus.Infof("Recorded %d transitions for %d processes, %d allocations",
		ts.TotalTransitions, ts.UniqueProcesses, ts.Allocations)
	return nil
}

func writeOutputFile(path string, st *trace.SimulationTrace, summary sim.Summary) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			logrus.Errorf("Error closing file %s: %v", path, closeErr)
		}
	}()
	if err := report.WriteLog(file, st); err != nil {
		return fmt.Errorf("writing transition log: %w", err)
	}
	if err := report.WriteSummary(file, summary); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	logrus.Debugf("Successfully wrote to '%s'", path)
	return nil
}

func saveResults(path string, summary sim.Summary) error {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling results: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing results: %w", err)
	}
	return nil
}

// logValidationErrors prints each workload violation on its own line.
func logValidationErrors(err error) {
	joined, ok := errors.Unwrap(err).(interface{ Unwrap() []error })
	if !ok {
		logrus.Error(err)
		return
	}
	for _, e := range joined.Unwrap() {
		logrus.Errorf("ERROR >>> %v", e)
	}
}

// compareSchedulers runs every scheduler on fresh copies of the workload.
func compareSchedulers(stdout io.Writer, path string, base sim.RunConfig) error {
	entries, err := workload.Load(path)
	if err != nil {
		return err
	}
	summaries := make([]sim.Summary, 0, len(sim.SchedulerNames))
	for _, name := range sim.SchedulerNames {
		cfg := sim.NewRunConfig(name, base.Quantum, base.Memory)
		s, err := sim.NewSimulator(cfg, entries, nil)
		if err != nil {
			logValidationErrors(err)
			return err
		}
		s.Run()
		summaries = append(summaries, s.Summary())
	}
	report.WriteComparison(stdout, summaries)
	return nil
}

func generateWorkload(stdout io.Writer, path string, cfg workload.GeneratorConfig) error {
	entries, err := workload.Generate(cfg)
	if err != nil {
		return err
	}
	if path == "" {
		return workload.Format(stdout, entries)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating workload file: %w", err)
	}
	defer func() { _ = file.Close() }()
	if err := workload.Format(file, entries); err != nil {
		return err
	}
	logrus.Infof("Wrote %d processes to %s", len(entries), path)
	return nil
}
