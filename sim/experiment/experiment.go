// Package experiment runs independent replications of the bank simulation
// and estimates the steady-state average time-in-system across them.
package experiment

import (
	"errors"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"

	"github.com/bank-sim/bank-sim/sim"
	"github.com/bank-sim/bank-sim/sim/trace"
)

// z95 is the two-sided 95% standard normal quantile.
const z95 = 1.959963984540054

// Options describes one experiment.
type Options struct {
	Config       sim.Config
	Horizon      int64 // each replication covers [0, Horizon)
	Seed         int64
	Replications int
	Trace        trace.TraceConfig // applied to every replication
}

// Summary aggregates the replications of one experiment.
type Summary struct {
	Seed         int64          `yaml:"seed" json:"seed"`
	Horizon      int64          `yaml:"horizon" json:"horizon"`
	Replications []sim.Snapshot `yaml:"replications" json:"replications"`

	// SystemTimes pools time-in-system of every served client across replications.
	SystemTimes []int64 `yaml:"-" json:"-"`
	// Traces holds one summary per replication when tracing is enabled.
	Traces []*trace.TraceSummary `yaml:"traces,omitempty" json:"traces,omitempty"`

	// Estimates over replications that served at least one client.
	Used                     int     `yaml:"used" json:"used"`
	Skipped                  int     `yaml:"skipped" json:"skipped"` // replications with no served client
	MeanTimeInSystem         float64 `yaml:"mean_time_in_system" json:"mean_time_in_system"`
	StdDevTimeInSystem       float64 `yaml:"stddev_time_in_system" json:"stddev_time_in_system"`
	ConfidenceHalfWidth95    float64 `yaml:"confidence_half_width_95" json:"confidence_half_width_95"`
	MeanClientsServed        float64 `yaml:"mean_clients_served" json:"mean_clients_served"`
	MeanTransactionsPerVisit float64 `yaml:"mean_transactions_per_visit" json:"mean_transactions_per_visit"`
}

// Run simulates opts.Replications independent runs. With a single replication
// the run draws from the master seed directly, so it matches a plain simulation
// with the same seed; otherwise replication i uses its own RNG subsystem.
func Run(opts Options) (*Summary, error) {
	if opts.Replications < 1 {
		return nil, fmt.Errorf("replications must be >= 1, got %d", opts.Replications)
	}
	if opts.Horizon < 0 {
		return nil, fmt.Errorf("horizon must be >= 0, got %d", opts.Horizon)
	}

	rng := sim.NewPartitionedRNG(sim.NewSimulationKey(opts.Seed))
	logrus.Infof("running %d replication(s), key=%d, horizon=%d", opts.Replications, rng.Key(), opts.Horizon)
	summary := &Summary{
		Seed:         opts.Seed,
		Horizon:      opts.Horizon,
		Replications: make([]sim.Snapshot, 0, opts.Replications),
		SystemTimes:  make([]int64, 0),
	}

	for i := 0; i < opts.Replications; i++ {
		subsystem := sim.SubsystemArrivals
		if opts.Replications > 1 {
			subsystem = sim.SubsystemReplication(i)
		}
		s, err := sim.NewSimulator(opts.Config, rng.ForSubsystem(subsystem))
		if err != nil {
			return nil, err
		}
		s.EnableTrace(opts.Trace)
		if err := s.Run(opts.Horizon); err != nil {
			return nil, fmt.Errorf("replication %d: %w", i, err)
		}
		snap := s.Snapshot()
		logrus.Debugf("replication %d: served=%d avg=%.2f", i, snap.ClientsServed, snap.AverageTimeInSystem)
		summary.Replications = append(summary.Replications, snap)
		summary.SystemTimes = append(summary.SystemTimes, s.Stats.SystemTimes...)
		if st := s.Trace(); st != nil {
			summary.Traces = append(summary.Traces, trace.Summarize(st))
		}
	}

	summarize(summary)
	return summary, nil
}

// ErrNoEstimate is returned by Estimate when no replication served a client.
var ErrNoEstimate = errors.New("no replication served a client")

// Estimate returns the mean average time-in-system and its 95% half-width.
func (s *Summary) Estimate() (mean, halfWidth float64, err error) {
	if s.Used == 0 {
		return math.NaN(), math.NaN(), ErrNoEstimate
	}
	return s.MeanTimeInSystem, s.ConfidenceHalfWidth95, nil
}

func summarize(s *Summary) {
	avgs := make([]float64, 0, len(s.Replications))
	served := make([]float64, 0, len(s.Replications))
	transactions, clients := 0, 0
	for _, r := range s.Replications {
		served = append(served, float64(r.ClientsServed))
		if r.ClientsServed == 0 {
			s.Skipped++
			continue
		}
		avgs = append(avgs, r.AverageTimeInSystem)
		transactions += r.TransactionsCompleted
		clients += r.ClientsServed
	}
	s.MeanClientsServed = stat.Mean(served, nil)
	s.Used = len(avgs)

	s.MeanTimeInSystem = math.NaN()
	s.StdDevTimeInSystem = math.NaN()
	s.ConfidenceHalfWidth95 = math.NaN()
	s.MeanTransactionsPerVisit = math.NaN()
	if clients > 0 {
		s.MeanTransactionsPerVisit = float64(transactions) / float64(clients)
	}
	switch len(avgs) {
	case 0:
	case 1:
		s.MeanTimeInSystem = avgs[0]
		s.StdDevTimeInSystem = 0
		s.ConfidenceHalfWidth95 = 0
	default:
		s.MeanTimeInSystem, s.StdDevTimeInSystem = stat.MeanStdDev(avgs, nil)
		s.ConfidenceHalfWidth95 = z95 * s.StdDevTimeInSystem / math.Sqrt(float64(len(avgs)))
	}
}
