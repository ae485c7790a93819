package cmd

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bank-sim/bank-sim/sim"
	"github.com/bank-sim/bank-sim/sim/experiment"
	"github.com/bank-sim/bank-sim/sim/trace"
)

var (
	// CLI flags for the run
	seed              int64  // Seed for the simulation's random source
	simulationHorizon int64  // Total simulation time (in ticks)
	logLevel          string // Log verbosity level
	replications      int    // Number of independent replications
	resultsPath       string // Optional YAML results file
	histogramPath     string // Optional PNG histogram of time-in-system
	traceLevel        string // Event trace verbosity

	// CLI flags for the bank model
	arrivalMean     float64 // Mean inter-arrival gap (in ticks)
	serviceTime     int64   // Service time per transaction (in ticks)
	minTransactions int     // Min transactions per client
	maxTransactions int     // Max transactions per client
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "bank-sim",
	Short: "Discrete-event simulator for a two-stage bank queue",
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the bank simulation",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if !trace.IsValidTraceLevel(traceLevel) {
			logrus.Fatalf("Invalid trace level: %s", traceLevel)
		}

		cfg := sim.Config{
			ArrivalMean:               arrivalMean,
			ServiceTimePerTransaction: serviceTime,
			MinTransactions:           minTransactions,
			MaxTransactions:           maxTransactions,
		}
		if err := cfg.Validate(); err != nil {
			logrus.Fatalf("Invalid model parameters: %v", err)
		}

		logrus.Infof("Starting simulation with horizon=%d ticks, seed=%d, replications=%d, arrivalMean=%v, serviceTime=%d",
			simulationHorizon, seed, replications, arrivalMean, serviceTime)
		startTime := time.Now()

		report, err := runSimulation(experiment.Options{
			Config:       cfg,
			Horizon:      simulationHorizon,
			Seed:         seed,
			Replications: replications,
			Trace:        trace.TraceConfig{Level: trace.TraceLevel(traceLevel)},
		})
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		report.Print()

		if resultsPath != "" {
			if err := report.WriteYAML(resultsPath); err != nil {
				logrus.Fatalf("Failed to write results: %v", err)
			}
			logrus.Infof("Results written to %s", resultsPath)
		}
		if histogramPath != "" {
			if err := report.SaveHistogram(histogramPath); err != nil {
				logrus.Fatalf("Failed to write histogram: %v", err)
			}
			logrus.Infof("Histogram written to %s", histogramPath)
		}

		logrus.Infof("Simulation complete in %s.", time.Since(startTime))
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
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for the simulation's random source")
	runCmd.Flags().Int64Var(&simulationHorizon, "horizon", 90000, "Total simulation horizon (in ticks)")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().IntVar(&replications, "replications", 1, "Number of independent replications")
	runCmd.Flags().StringVar(&resultsPath, "results", "", "Write results as YAML to this file")
	runCmd.Flags().StringVar(&histogramPath, "histogram", "", "Write a PNG histogram of time-in-system to this file")
	runCmd.Flags().StringVar(&traceLevel, "trace-level", "none", "Event trace level (none, events)")

	// Bank model
	runCmd.Flags().Float64Var(&arrivalMean, "arrival-mean", sim.DefaultArrivalMean, "Mean gap between client arrivals (in ticks)")
	runCmd.Flags().Int64Var(&serviceTime, "service-time", sim.DefaultServiceTimePerTransaction, "Service time per transaction (in ticks)")
	runCmd.Flags().IntVar(&minTransactions, "min-transactions", sim.DefaultMinTransactions, "Minimum transactions per client")
	runCmd.Flags().IntVar(&maxTransactions, "max-transactions", sim.DefaultMaxTransactions, "Maximum transactions per client")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
