package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	logLevel string // Log verbosity level

	// CLI flags shared by run and compare
	workloadPath   string // Workload file (text or YAML)
	configPath     string // Optional run config file (YAML or HCL)
	schedulerName  string // fcfs, priority, round-robin
	quantum        int64  // Round-robin quantum in ticks
	memoryMode     string // off, layout-a, layout-b
	outputPath     string // Transition log + summary destination
	resultsPath    string // Optional JSON summary destination
	showTable      bool   // Print the per-process table
	generateConfig = defaultGenerateFlags()
	generateOut    string
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "kernel-sim",
	Short: "Discrete-time simulator for process scheduling policies",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// runCmd executes one simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the scheduler simulation",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := resolveRunConfig(cmd, configPath, schedulerName, quantum, memoryMode)
		if err != nil {
			logrus.Fatalf("Invalid run configuration: %v", err)
		}
		opts := runOptions{
			WorkloadPath: workloadPath,
			OutputPath:   outputPath,
			ResultsPath:  resultsPath,
			ShowTable:    showTable,
			Config:       cfg,
		}
		if err := runSimulation(cmd.OutOrStdout(), opts); err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		logrus.Info("Simulation complete.")
	},
}

// compareCmd runs every scheduler on the same workload
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Run all scheduling policies on one workload and compare them",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := resolveRunConfig(cmd, configPath, "", quantum, memoryMode)
		if err != nil {
			logrus.Fatalf("Invalid run configuration: %v", err)
		}
		if err := compareSchedulers(cmd.OutOrStdout(), workloadPath, cfg); err != nil {
			logrus.Fatalf("Comparison failed: %v", err)
		}
	},
}

// generateCmd writes a synthetic workload
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a synthetic workload in the text format",
	Run: func(cmd *cobra.Command, args []string) {
		if err := generateWorkload(cmd.OutOrStdout(), generateOut, generateConfig); err != nil {
			logrus.Fatalf("Generation failed: %v", err)
		}
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	for _, c := range []*cobra.Command{runCmd, compareCmd} {
		c.Flags().StringVar(&workloadPath, "workload", "", "Workload file (text: 7 integers per line, or .yaml)")
		c.Flags().StringVar(&configPath, "config", "", "Run config file (.yaml or .hcl); explicit flags take precedence")
		c.Flags().Int64Var(&quantum, "quantum", 5, "Round-robin quantum in ticks (ignored by other schedulers)")
		c.Flags().StringVar(&memoryMode, "memory", "off", "Memory management: off, layout-a (500,250,150,100), layout-b (300,300,350,50)")
		_ = c.MarkFlagRequired("workload")
	}
	runCmd.Flags().StringVar(&schedulerName, "scheduler", "fcfs", "Scheduler: fcfs, priority, round-robin")
	runCmd.Flags().StringVar(&outputPath, "output", "output.txt", "Transition log and summary output file")
	runCmd.Flags().StringVar(&resultsPath, "results", "", "Write the summary as JSON to this file")
	runCmd.Flags().BoolVar(&showTable, "table", false, "Print a per-process table")

	generateCmd.Flags().IntVar(&generateConfig.Count, "count", generateConfig.Count, "Number of processes")
	generateCmd.Flags().Int64Var(&generateConfig.Seed, "seed", generateConfig.Seed, "Seed for workload generation")
	generateCmd.Flags().Int64Var(&generateConfig.MaxArrival, "max-arrival", generateConfig.MaxArrival, "Latest arrival tick")
	generateCmd.Flags().Int64Var(&generateConfig.MaxCPU, "max-cpu", generateConfig.MaxCPU, "Largest CPU time")
	generateCmd.Flags().Int64Var(&generateConfig.MaxIOFrequency, "max-io-frequency", generateConfig.MaxIOFrequency, "Largest I/O frequency (0 disables I/O)")
	generateCmd.Flags().Int64Var(&generateConfig.MaxIODuration, "max-io-duration", generateConfig.MaxIODuration, "Largest I/O duration")
	generateCmd.Flags().Int64Var(&generateConfig.MaxPriority, "max-priority", generateConfig.MaxPriority, "Largest priority value")
	generateCmd.Flags().Int64Var(&generateConfig.MaxSize, "max-size", generateConfig.MaxSize, "Largest process size")
	generateCmd.Flags().StringVar(&generateOut, "out", "", "Output file (default stdout)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(generateCmd)
}
