package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/slicesim/slicesim/internal/observability"
	"github.com/slicesim/slicesim/sim"
)

var (
	// CLI flags for the run subcommand
	scenarioPath string // Path to a YAML scenario; empty = built-in reference deployment
	seed         int64  // Master seed for all stochastic subsystems
	ticks        int    // Number of simulation steps
	ueCount      int    // UE population override
	logLevel     string // Log verbosity level
	metricsAddr  string // Optional Prometheus listen address
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "slicesim",
	Short: "Tick-driven simulator for RAN slice admission and allocation",
}

// loadScenario resolves the scenario from flags: an explicit YAML file, or
// the built-in reference deployment, with flag overrides applied on top.
func loadScenario(flags *cobra.Command) (*sim.ScenarioSpec, error) {
	var spec *sim.ScenarioSpec
	if scenarioPath != "" {
		loaded, err := sim.LoadScenarioSpec(scenarioPath)
		if err != nil {
			return nil, err
		}
		spec = loaded
	} else {
		spec = sim.DefaultScenario()
	}

	if flags.Flags().Changed("seed") {
		spec.Seed = seed
	}
	if flags.Flags().Changed("ticks") {
		spec.Ticks = ticks
	}
	if flags.Flags().Changed("ues") {
		spec.UEs.Count = ueCount
	}
	return spec, nil
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the RAN slicing simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		spec, err := loadScenario(cmd)
		if err != nil {
			logrus.Fatalf("Failed to load scenario: %v", err)
		}

		logrus.Infof("Starting simulation: %d stations, %d slices, %d UEs, %d ticks, seed=%d",
			len(spec.Stations), len(spec.Slices), spec.UEs.Count, spec.Ticks, spec.Seed)

		simulator, err := sim.BuildSimulator(spec)
		if err != nil {
			logrus.Fatalf("Failed to bootstrap simulation: %v", err)
		}
		simulator.AddReporter(sim.ConsoleReporter{})

		if metricsAddr != "" {
			collector, err := observability.NewSimCollector(nil, simulator.Slices, simulator.Metrics)
			if err != nil {
				logrus.Fatalf("Failed to set up metrics: %v", err)
			}
			collector.Serve(metricsAddr)
			simulator.AddReporter(collector)
			logrus.Infof("Serving Prometheus metrics on %s", metricsAddr)
		}

		simulator.Run()
		simulator.Metrics.Print(simulator.Config.Ticks)

		logrus.Info("Simulation complete.")
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
	runCmd.Flags().StringVar(&scenarioPath, "scenario", "", "Path to a YAML scenario file (default: built-in reference deployment)")
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Master seed for deterministic runs")
	runCmd.Flags().IntVar(&ticks, "ticks", 10, "Number of simulation steps")
	runCmd.Flags().IntVar(&ueCount, "ues", 50, "UE population size override")
	runCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "Listen address for Prometheus /metrics (disabled when empty)")

	rootCmd.AddCommand(runCmd)
}
